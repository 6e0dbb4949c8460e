package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/farmaplus/farmacia-api/internal/domain/entity"
)

func TestEstadoPedido_Transiciones(t *testing.T) {
	casos := []struct {
		desde, hacia entity.EstadoPedido
		permitida    bool
	}{
		{entity.EstadoBorrador, entity.EstadoEnviado, true},
		{entity.EstadoEnviado, entity.EstadoConfirmado, true},
		{entity.EstadoConfirmado, entity.EstadoEnTransito, true},
		{entity.EstadoEnTransito, entity.EstadoRecibido, true},
		// RECIBIDO es alcanzable desde cualquier estado no terminal
		{entity.EstadoBorrador, entity.EstadoRecibido, true},
		{entity.EstadoEnviado, entity.EstadoRecibido, true},
		// CANCELADO desde cualquier estado no terminal
		{entity.EstadoBorrador, entity.EstadoCancelado, true},
		{entity.EstadoEnTransito, entity.EstadoCancelado, true},
		// retrocesos y saltos no permitidos
		{entity.EstadoEnviado, entity.EstadoBorrador, false},
		{entity.EstadoBorrador, entity.EstadoConfirmado, false},
		{entity.EstadoBorrador, entity.EstadoEnTransito, false},
		// terminales sin salidas
		{entity.EstadoRecibido, entity.EstadoCancelado, false},
		{entity.EstadoRecibido, entity.EstadoEnviado, false},
		{entity.EstadoCancelado, entity.EstadoRecibido, false},
		{entity.EstadoCancelado, entity.EstadoCancelado, false},
		// destino desconocido
		{entity.EstadoBorrador, entity.EstadoPedido("PERDIDO"), false},
	}
	for _, c := range casos {
		assert.Equalf(t, c.permitida, c.desde.PuedeTransicionarA(c.hacia),
			"%s -> %s", c.desde, c.hacia)
	}
}

func TestEstadoPedido_Terminal(t *testing.T) {
	assert.True(t, entity.EstadoRecibido.Terminal())
	assert.True(t, entity.EstadoCancelado.Terminal())
	assert.False(t, entity.EstadoEnTransito.Terminal())
}

func TestPedido_CalcularTotal(t *testing.T) {
	p := &entity.Pedido{
		IVA:       decimal.NewFromInt(21),
		Descuento: decimal.NewFromInt(5),
		Detalles: []entity.DetallePedido{
			{Cantidad: 4, PrecioUnitario: decimal.NewFromInt(10)},                                      // 40
			{Cantidad: 2, PrecioUnitario: decimal.NewFromFloat(7.50), Descuento: decimal.NewFromInt(3)}, // 12
		},
	}
	p.CalcularTotal()
	assert.True(t, p.Subtotal.Equal(decimal.NewFromInt(52)), "subtotal = %s", p.Subtotal)
	assert.True(t, p.Total.Equal(decimal.NewFromInt(68)), "total = subtotal + IVA - descuento, fue %s", p.Total)
}

func TestVenta_CalcularTotal(t *testing.T) {
	v := &entity.Venta{
		Descuento: decimal.NewFromInt(2),
		Detalles: []entity.DetalleVenta{
			{Cantidad: 3, PrecioUnitario: decimal.NewFromFloat(4.20)}, // 12.60
			{Cantidad: 1, PrecioUnitario: decimal.NewFromFloat(9.95)}, // 9.95
		},
	}
	v.CalcularTotal()
	assert.True(t, v.Subtotal.Equal(decimal.NewFromFloat(22.55)))
	assert.True(t, v.Total.Equal(decimal.NewFromFloat(20.55)))
}
