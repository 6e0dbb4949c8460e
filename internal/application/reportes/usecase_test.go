package reportes

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appalertas "github.com/farmaplus/farmacia-api/internal/application/alertas"
	"github.com/farmaplus/farmacia-api/internal/application/dto"
	"github.com/farmaplus/farmacia-api/internal/application/pedidos"
	"github.com/farmaplus/farmacia-api/internal/application/ventas"
	"github.com/farmaplus/farmacia-api/internal/domain"
	"github.com/farmaplus/farmacia-api/internal/domain/entity"
	"github.com/farmaplus/farmacia-api/internal/infrastructure/memoria"
)

var hoy = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

type pdfStub struct{ llamadas int }

func (s *pdfStub) ReporteVentas(*dto.ReporteVentasResponse) ([]byte, error) {
	s.llamadas++
	return []byte("%PDF-ventas"), nil
}

func (s *pdfStub) ReporteInventario(*dto.ReporteInventarioResponse) ([]byte, error) {
	s.llamadas++
	return []byte("%PDF-inventario"), nil
}

type csvStub struct{}

func (csvStub) Inventario(*dto.ReporteInventarioResponse) ([]byte, error) {
	return []byte("codigo;nombre\n"), nil
}

func (csvStub) Ventas(*dto.ReporteVentasResponse) ([]byte, error) {
	return []byte("fecha;total\n"), nil
}

func setup(t *testing.T) (*memoria.Store, *UseCase, *pdfStub) {
	t.Helper()
	store := memoria.NewStore()
	reloj := func() time.Time { return hoy }
	tx := memoria.NewTxRunner(store)
	ventasUC := ventas.NewUseCase(tx, store.Ventas(), reloj)
	pedidosUC := pedidos.NewUseCase(tx, store.Pedidos(), store.Proveedores(), reloj)
	alertasUC := appalertas.NewUseCase(store.Productos(), store.Pedidos(), store.Proveedores(), appalertas.Config{}, reloj)
	pdf := &pdfStub{}
	uc := NewUseCase(ventasUC, pedidosUC, alertasUC, store.Productos(), store.Ventas(), pdf, csvStub{}, reloj)
	return store, uc, pdf
}

func sembrar(t *testing.T, store *memoria.Store, ventasUC *ventas.UseCase) {
	t.Helper()
	require.NoError(t, store.Productos().Create(&entity.Producto{
		ID: "p1", Nombre: "Paracetamol 500mg", Codigo: "PAR-500", Categoria: "Analgésicos",
		Precio: decimal.RequireFromString("2.50"), Stock: 40, StockMinimo: 10, Activo: true,
	}))
	_, err := ventasUC.RegistrarVenta(context.Background(), "u1", &dto.CreateVentaRequest{
		Detalles:   []dto.LineaVentaRequest{{ProductoID: "p1", Cantidad: 4}},
		MetodoPago: entity.PagoEfectivo,
	})
	require.NoError(t, err)
	_, err = ventasUC.RegistrarVenta(context.Background(), "u1", &dto.CreateVentaRequest{
		Detalles:   []dto.LineaVentaRequest{{ProductoID: "p1", Cantidad: 2}},
		MetodoPago: entity.PagoTarjeta,
	})
	require.NoError(t, err)
}

func TestReporteVentas(t *testing.T) {
	store, uc, _ := setup(t)
	sembrar(t, store, uc.ventasUC)

	reporte, err := uc.ReporteVentas(hoy.AddDate(0, 0, -1), hoy.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, reporte.Ventas, 2)
	assert.Equal(t, 2, reporte.Estadisticas.NumeroVentas)
	assert.Equal(t, 6, reporte.Estadisticas.ProductosVendidos)
	assert.True(t, reporte.TotalesPorMetodo[entity.PagoEfectivo].Equal(decimal.RequireFromString("10")))
	assert.True(t, reporte.TotalesPorMetodo[entity.PagoTarjeta].Equal(decimal.RequireFromString("5")))
}

func TestReporteVentasRangoInvalido(t *testing.T) {
	_, uc, _ := setup(t)
	_, err := uc.ReporteVentas(hoy, hoy.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReporteInventario(t *testing.T) {
	store, uc, _ := setup(t)
	require.NoError(t, store.Productos().Create(&entity.Producto{
		ID: "p1", Nombre: "Paracetamol 500mg", Codigo: "PAR-500",
		Precio: decimal.RequireFromString("2.50"), Stock: 40, StockMinimo: 10, Activo: true,
	}))
	require.NoError(t, store.Productos().Create(&entity.Producto{
		ID: "p2", Nombre: "Vendas", Codigo: "VEN-1",
		Precio: decimal.RequireFromString("1.00"), Stock: 3, StockMinimo: 5, Activo: true,
	}))

	reporte, err := uc.ReporteInventario()
	require.NoError(t, err)
	require.Len(t, reporte.Lineas, 2)
	assert.Equal(t, 43, reporte.Unidades)
	assert.True(t, reporte.ValorTotal.Equal(decimal.RequireFromString("103")), "valor %s", reporte.ValorTotal)

	for _, l := range reporte.Lineas {
		if l.Codigo == "VEN-1" {
			assert.True(t, l.StockBajo)
		}
	}
}

func TestReportesPDFDelegaEnElGenerador(t *testing.T) {
	store, uc, pdf := setup(t)
	sembrar(t, store, uc.ventasUC)

	raw, err := uc.ReporteVentasPDF(hoy.AddDate(0, 0, -1), hoy.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-ventas"), raw)

	raw, err = uc.ReporteInventarioPDF()
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-inventario"), raw)
	assert.Equal(t, 2, pdf.llamadas)
}

func TestDashboard(t *testing.T) {
	store, uc, _ := setup(t)
	sembrar(t, store, uc.ventasUC)
	require.NoError(t, store.Proveedores().Create(&entity.Proveedor{
		ID: "prov1", Empresa: "Farma SL", Activo: true,
	}))
	_, err := uc.pedidosUC.Crear(context.Background(), "u1", &dto.CreatePedidoRequest{
		ProveedorID: "prov1",
		Detalles:    []dto.LineaPedidoRequest{{NombreProducto: "Gasas", Cantidad: 5, PrecioUnitario: decimal.RequireFromString("0.50")}},
	})
	require.NoError(t, err)

	panel, err := uc.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, 2, panel.VentasHoy.NumeroVentas)
	assert.Equal(t, 1, panel.Pedidos.Pendientes)
	assert.Equal(t, 1, panel.Alertas.PedidosPendientes)
}
