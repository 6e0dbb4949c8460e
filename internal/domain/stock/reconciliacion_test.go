package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmaplus/farmacia-api/internal/domain"
	"github.com/farmaplus/farmacia-api/internal/domain/entity"
	"github.com/farmaplus/farmacia-api/internal/domain/stock"
)

func producto(unidades int) *entity.Producto {
	return &entity.Producto{ID: "p1", Nombre: "Paracetamol 500mg", Stock: unidades, StockMinimo: 10, Activo: true}
}

func TestAplicarVenta_DescuentaStock(t *testing.T) {
	p := producto(3)
	require.NoError(t, stock.AplicarVenta(p, 3))
	assert.Equal(t, 0, p.Stock)
}

func TestAplicarVenta_StockInsuficienteNoMuta(t *testing.T) {
	p := producto(0)
	err := stock.AplicarVenta(p, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 0, p.Stock, "el stock no debe mutar cuando la venta se rechaza")
}

func TestAplicarVenta_CantidadInvalida(t *testing.T) {
	p := producto(5)
	assert.ErrorIs(t, stock.AplicarVenta(p, 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, stock.AplicarVenta(p, -2), domain.ErrInvalidInput)
	assert.Equal(t, 5, p.Stock)
}

func TestRevertirVenta_RoundTrip(t *testing.T) {
	p := producto(7)
	require.NoError(t, stock.AplicarVenta(p, 4))
	stock.RevertirVenta(p, 4)
	assert.Equal(t, 7, p.Stock, "revertir y aplicar la misma cantidad debe restaurar el stock original")
}

func TestRevertirVenta_SinTecho(t *testing.T) {
	p := producto(1000)
	stock.RevertirVenta(p, 500)
	assert.Equal(t, 1500, p.Stock)
}

func TestAplicarRecepcion_CantidadPorDefecto(t *testing.T) {
	p := producto(2)
	det := &entity.DetallePedido{ProductoID: p.ID, Cantidad: 5}
	recibida := stock.AplicarRecepcion(det, p)
	assert.Equal(t, 5, recibida)
	assert.Equal(t, 7, p.Stock)
	assert.True(t, det.Recibido)
	assert.Equal(t, 5, det.CantidadRecibida)
}

func TestAplicarRecepcion_CantidadParcial(t *testing.T) {
	p := producto(0)
	det := &entity.DetallePedido{ProductoID: p.ID, Cantidad: 10, CantidadRecibida: 4}
	recibida := stock.AplicarRecepcion(det, p)
	assert.Equal(t, 4, recibida)
	assert.Equal(t, 4, p.Stock)
	assert.True(t, det.Recibido)
}

func TestAplicarRecepcion_SinProducto(t *testing.T) {
	det := &entity.DetallePedido{NombreProducto: "Ibuprofeno 600mg", Cantidad: 12}
	recibida := stock.AplicarRecepcion(det, nil)
	assert.Equal(t, 12, recibida)
	assert.True(t, det.Recibido, "la línea sin producto igualmente queda recibida")
	assert.Equal(t, 12, det.CantidadRecibida)
}
