package alertas_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmaplus/farmacia-api/internal/domain/alertas"
	"github.com/farmaplus/farmacia-api/internal/domain/entity"
)

// Fecha fija para que los cortes de caducidad sean deterministas.
var hoy = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func fecha(anios, meses, dias int) *time.Time {
	f := hoy.AddDate(anios, meses, dias)
	return &f
}

func TestDetectarStockBajo(t *testing.T) {
	productos := []*entity.Producto{
		{ID: "p1", Nombre: "Paracetamol", Stock: 3, StockMinimo: 10, Activo: true},
		{ID: "p2", Nombre: "Ibuprofeno", Stock: 10, StockMinimo: 10, Activo: true}, // en el límite: alerta
		{ID: "p3", Nombre: "Amoxicilina", Stock: 50, StockMinimo: 10, Activo: true},
		{ID: "p4", Nombre: "Descatalogado", Stock: 0, StockMinimo: 10, Activo: false},
	}
	out := alertas.DetectarStockBajo(productos, hoy)
	require.Len(t, out, 2)
	assert.Equal(t, "p1", out[0].EntidadID)
	assert.Equal(t, "p2", out[1].EntidadID)
	assert.Equal(t, entity.AlertaStockBajo, out[0].Tipo)
	assert.False(t, out[0].Critica, "stock bajo no es crítico")
	assert.Contains(t, out[0].Detalle, "Stock actual: 3")
}

func TestDetectarCaducados_VenceHoyNoEsCaducado(t *testing.T) {
	productos := []*entity.Producto{
		{ID: "p1", Nombre: "Jarabe", FechaVencimiento: fecha(0, 0, -5), Activo: true},
		{ID: "p2", Nombre: "Gotas", FechaVencimiento: fecha(0, 0, 0), Activo: true}, // vence hoy
		{ID: "p3", Nombre: "Crema", FechaVencimiento: fecha(0, 0, 5), Activo: true},
	}
	caducados := alertas.DetectarCaducados(productos, hoy)
	require.Len(t, caducados, 1)
	assert.Equal(t, "p1", caducados[0].EntidadID)
	assert.True(t, caducados[0].Critica)
	assert.Contains(t, caducados[0].Detalle, "hace 5 días")

	proximos := alertas.DetectarProximosACaducar(productos, hoy, 30)
	require.Len(t, proximos, 2)
	assert.Equal(t, "p2", proximos[0].EntidadID, "vencer hoy cuenta como próximo a caducar")
	assert.Equal(t, "p3", proximos[1].EntidadID)
	assert.False(t, proximos[0].Critica)
}

func TestDetectarProximosACaducar_Ventana(t *testing.T) {
	productos := []*entity.Producto{
		{ID: "dentro", Nombre: "A", FechaVencimiento: fecha(0, 0, 29), Activo: true},
		{ID: "fuera", Nombre: "B", FechaVencimiento: fecha(0, 0, 30), Activo: true},
		{ID: "sin-fecha", Nombre: "C", Activo: true},
	}
	out := alertas.DetectarProximosACaducar(productos, hoy, 30)
	require.Len(t, out, 1)
	assert.Equal(t, "dentro", out[0].EntidadID)
	assert.Contains(t, out[0].Detalle, "Caduca en 29 días")
}

func pedidoPendiente(id string, diasAtras int, estado entity.EstadoPedido) alertas.PedidoConProveedor {
	return alertas.PedidoConProveedor{
		Pedido: &entity.Pedido{
			ID:           id,
			NumeroPedido: "PED-20250301-" + id,
			FechaPedido:  hoy.AddDate(0, 0, -diasAtras),
			Estado:       estado,
			Total:        decimal.NewFromInt(120),
			Activo:       true,
		},
		Empresa: "Distribuciones Galeno S.L.",
	}
}

func TestDetectarPedidosPendientesYRetrasados(t *testing.T) {
	pedidos := []alertas.PedidoConProveedor{
		pedidoPendiente("0001", 10, entity.EstadoEnviado),   // pendiente y retrasado
		pedidoPendiente("0002", 2, entity.EstadoConfirmado), // solo pendiente
		pedidoPendiente("0003", 20, entity.EstadoRecibido),  // terminal: nada
		pedidoPendiente("0004", 20, entity.EstadoCancelado), // terminal: nada
	}

	pendientes := alertas.DetectarPedidosPendientes(pedidos, hoy)
	require.Len(t, pendientes, 2)
	assert.False(t, pendientes[0].Critica)
	assert.Contains(t, pendientes[0].Detalle, "Distribuciones Galeno")

	retrasados := alertas.DetectarPedidosRetrasados(pedidos, hoy, 7)
	require.Len(t, retrasados, 1)
	assert.Equal(t, "0001", retrasados[0].EntidadID)
	assert.True(t, retrasados[0].Critica)
	assert.Contains(t, retrasados[0].Detalle, "hace 10 días")

	// el pedido retrasado aparece en ambas listas, no solo en la de retrasados
	ids := []string{pendientes[0].EntidadID, pendientes[1].EntidadID}
	assert.Contains(t, ids, "0001")
}

func TestDetectarPedidosRetrasados_LimiteExacto(t *testing.T) {
	// justo 7 días no es retraso; hace falta más de 7
	pedidos := []alertas.PedidoConProveedor{pedidoPendiente("0007", 7, entity.EstadoEnviado)}
	assert.Empty(t, alertas.DetectarPedidosRetrasados(pedidos, hoy, 7))

	pedidos = []alertas.PedidoConProveedor{pedidoPendiente("0008", 8, entity.EstadoEnviado)}
	assert.Len(t, alertas.DetectarPedidosRetrasados(pedidos, hoy, 7), 1)
}

func TestOrdenar_CriticasPrimeroLuegoFechaDesc(t *testing.T) {
	lista := []entity.Alerta{
		{Tipo: entity.AlertaStockBajo, Fecha: hoy.Add(2 * time.Hour)},
		{Tipo: entity.AlertaProductoCaducado, Fecha: hoy, Critica: true},
		{Tipo: entity.AlertaProximoCaducar, Fecha: hoy.Add(3 * time.Hour)},
		{Tipo: entity.AlertaPedidoRetrasado, Fecha: hoy.Add(time.Hour), Critica: true},
	}
	alertas.Ordenar(lista)
	assert.True(t, lista[0].Critica)
	assert.True(t, lista[1].Critica)
	assert.Equal(t, entity.AlertaPedidoRetrasado, lista[0].Tipo, "entre críticas manda la fecha más reciente")
	assert.Equal(t, entity.AlertaProximoCaducar, lista[2].Tipo)
	assert.Equal(t, entity.AlertaStockBajo, lista[3].Tipo)
}
