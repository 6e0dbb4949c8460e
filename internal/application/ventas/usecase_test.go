package ventas

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmaplus/farmacia-api/internal/application/dto"
	"github.com/farmaplus/farmacia-api/internal/domain"
	"github.com/farmaplus/farmacia-api/internal/domain/entity"
	"github.com/farmaplus/farmacia-api/internal/infrastructure/memoria"
)

var hoy = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*memoria.Store, *UseCase) {
	t.Helper()
	store := memoria.NewStore()
	uc := NewUseCase(memoria.NewTxRunner(store), store.Ventas(), func() time.Time { return hoy })
	return store, uc
}

func sembrarProducto(t *testing.T, store *memoria.Store, id, nombre string, precio string, stock int) {
	t.Helper()
	p := &entity.Producto{
		ID:          id,
		Nombre:      nombre,
		Codigo:      "C-" + id,
		Precio:      decimal.RequireFromString(precio),
		Stock:       stock,
		StockMinimo: 5,
		Activo:      true,
	}
	require.NoError(t, store.Productos().Create(p))
}

func TestRegistrarVenta(t *testing.T) {
	store, uc := setup(t)
	sembrarProducto(t, store, "p1", "Paracetamol 500mg", "2.50", 20)
	sembrarProducto(t, store, "p2", "Ibuprofeno 400mg", "3.00", 8)

	venta, err := uc.RegistrarVenta(context.Background(), "u1", &dto.CreateVentaRequest{
		Detalles: []dto.LineaVentaRequest{
			{ProductoID: "p1", Cantidad: 4},
			{ProductoID: "p2", Cantidad: 2, Descuento: decimal.RequireFromString("0.50")},
		},
		Descuento:  decimal.RequireFromString("1.00"),
		MetodoPago: entity.PagoEfectivo,
	})
	require.NoError(t, err)
	require.NotNil(t, venta)

	// 4×2.50 + (2×3.00 − 0.50) = 15.50; total = 15.50 − 1.00
	assert.True(t, venta.Subtotal.Equal(decimal.RequireFromString("15.50")), "subtotal %s", venta.Subtotal)
	assert.True(t, venta.Total.Equal(decimal.RequireFromString("14.50")), "total %s", venta.Total)
	assert.Equal(t, "Paracetamol 500mg", venta.Detalles[0].NombreProducto)
	assert.True(t, venta.Activo)

	p1, _ := store.Productos().GetByID("p1")
	p2, _ := store.Productos().GetByID("p2")
	assert.Equal(t, 16, p1.Stock)
	assert.Equal(t, 6, p2.Stock)

	guardada, err := uc.ObtenerPorID(venta.ID)
	require.NoError(t, err)
	assert.Len(t, guardada.Detalles, 2)
}

func TestRegistrarVentaStockInsuficienteNoMutaNada(t *testing.T) {
	store, uc := setup(t)
	sembrarProducto(t, store, "p1", "Paracetamol 500mg", "2.50", 20)
	sembrarProducto(t, store, "p2", "Ibuprofeno 400mg", "3.00", 3)

	_, err := uc.RegistrarVenta(context.Background(), "u1", &dto.CreateVentaRequest{
		Detalles: []dto.LineaVentaRequest{
			{ProductoID: "p1", Cantidad: 5},
			{ProductoID: "p2", Cantidad: 4}, // solo hay 3
		},
		MetodoPago: entity.PagoTarjeta,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// la primera línea era servible pero la venta entera se rechaza
	p1, _ := store.Productos().GetByID("p1")
	p2, _ := store.Productos().GetByID("p2")
	assert.Equal(t, 20, p1.Stock)
	assert.Equal(t, 3, p2.Stock)

	ventas, err := uc.ListarActivas()
	require.NoError(t, err)
	assert.Empty(t, ventas)
}

func TestRegistrarVentaAgregaCantidadesPorProducto(t *testing.T) {
	store, uc := setup(t)
	sembrarProducto(t, store, "p1", "Paracetamol 500mg", "2.50", 10)

	// cada línea cabe por separado, la suma (12) no
	_, err := uc.RegistrarVenta(context.Background(), "u1", &dto.CreateVentaRequest{
		Detalles: []dto.LineaVentaRequest{
			{ProductoID: "p1", Cantidad: 7},
			{ProductoID: "p1", Cantidad: 5},
		},
		MetodoPago: entity.PagoEfectivo,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	p1, _ := store.Productos().GetByID("p1")
	assert.Equal(t, 10, p1.Stock)
}

func TestRegistrarVentaValidaciones(t *testing.T) {
	store, uc := setup(t)
	sembrarProducto(t, store, "p1", "Paracetamol 500mg", "2.50", 10)

	casos := []struct {
		nombre string
		req    dto.CreateVentaRequest
	}{
		{"sin líneas", dto.CreateVentaRequest{MetodoPago: entity.PagoEfectivo}},
		{"cantidad cero", dto.CreateVentaRequest{
			Detalles:   []dto.LineaVentaRequest{{ProductoID: "p1", Cantidad: 0}},
			MetodoPago: entity.PagoEfectivo,
		}},
		{"método de pago desconocido", dto.CreateVentaRequest{
			Detalles:   []dto.LineaVentaRequest{{ProductoID: "p1", Cantidad: 1}},
			MetodoPago: "CHEQUE",
		}},
		{"descuento negativo", dto.CreateVentaRequest{
			Detalles:   []dto.LineaVentaRequest{{ProductoID: "p1", Cantidad: 1}},
			Descuento:  decimal.RequireFromString("-1"),
			MetodoPago: entity.PagoEfectivo,
		}},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := uc.RegistrarVenta(context.Background(), "u1", &c.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRegistrarVentaProductoInexistente(t *testing.T) {
	_, uc := setup(t)
	_, err := uc.RegistrarVenta(context.Background(), "u1", &dto.CreateVentaRequest{
		Detalles:   []dto.LineaVentaRequest{{ProductoID: "nope", Cantidad: 1}},
		MetodoPago: entity.PagoEfectivo,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAnularVentaRestauraStock(t *testing.T) {
	store, uc := setup(t)
	sembrarProducto(t, store, "p1", "Paracetamol 500mg", "2.50", 20)

	venta, err := uc.RegistrarVenta(context.Background(), "u1", &dto.CreateVentaRequest{
		Detalles:   []dto.LineaVentaRequest{{ProductoID: "p1", Cantidad: 6}},
		MetodoPago: entity.PagoEfectivo,
	})
	require.NoError(t, err)

	anulada, err := uc.AnularVenta(context.Background(), venta.ID, "cliente devolvió el producto")
	require.NoError(t, err)
	assert.False(t, anulada.Activo)
	assert.Contains(t, anulada.Observaciones, "ANULADA: cliente devolvió el producto")

	p1, _ := store.Productos().GetByID("p1")
	assert.Equal(t, 20, p1.Stock)

	// anular dos veces no duplica la restauración
	_, err = uc.AnularVenta(context.Background(), venta.ID, "otra vez")
	require.ErrorIs(t, err, domain.ErrVentaAnulada)
	p1, _ = store.Productos().GetByID("p1")
	assert.Equal(t, 20, p1.Stock)
}

func TestAnularVentaInexistente(t *testing.T) {
	_, uc := setup(t)
	_, err := uc.AnularVenta(context.Background(), "nope", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEstadisticasDelDia(t *testing.T) {
	store, uc := setup(t)
	sembrarProducto(t, store, "p1", "Paracetamol 500mg", "2.00", 100)

	for i := 0; i < 3; i++ {
		_, err := uc.RegistrarVenta(context.Background(), "u1", &dto.CreateVentaRequest{
			Detalles:   []dto.LineaVentaRequest{{ProductoID: "p1", Cantidad: 2}},
			MetodoPago: entity.PagoEfectivo,
		})
		require.NoError(t, err)
	}

	stats, err := uc.EstadisticasDelDia()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.NumeroVentas)
	assert.Equal(t, 6, stats.ProductosVendidos)
	assert.True(t, stats.TotalVentas.Equal(decimal.RequireFromString("12")), "total %s", stats.TotalVentas)
	assert.True(t, stats.PromedioVenta.Equal(decimal.RequireFromString("4")), "promedio %s", stats.PromedioVenta)
}

func TestListarPorRangoInvalido(t *testing.T) {
	_, uc := setup(t)
	_, err := uc.ListarPorRango(hoy, hoy.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
