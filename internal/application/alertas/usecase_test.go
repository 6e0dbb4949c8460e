package alertas

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmaplus/farmacia-api/internal/domain/entity"
	"github.com/farmaplus/farmacia-api/internal/infrastructure/memoria"
)

var hoy = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func fecha(dias int) *time.Time {
	f := hoy.AddDate(0, 0, dias)
	return &f
}

func setup(t *testing.T) (*memoria.Store, *UseCase) {
	t.Helper()
	store := memoria.NewStore()
	uc := NewUseCase(store.Productos(), store.Pedidos(), store.Proveedores(), Config{}, func() time.Time { return hoy })
	return store, uc
}

func TestObtenerTodasCombinaLasCincoReglas(t *testing.T) {
	store, uc := setup(t)

	require.NoError(t, store.Productos().Create(&entity.Producto{
		ID: "p1", Nombre: "Paracetamol", Codigo: "C1",
		Precio: decimal.New(1, 0), Stock: 2, StockMinimo: 10, Activo: true,
	}))
	require.NoError(t, store.Productos().Create(&entity.Producto{
		ID: "p2", Nombre: "Caducado", Codigo: "C2",
		Precio: decimal.New(1, 0), Stock: 50, StockMinimo: 10,
		FechaVencimiento: fecha(-3), Activo: true,
	}))
	require.NoError(t, store.Productos().Create(&entity.Producto{
		ID: "p3", Nombre: "Por caducar", Codigo: "C3",
		Precio: decimal.New(1, 0), Stock: 50, StockMinimo: 10,
		FechaVencimiento: fecha(10), Activo: true,
	}))
	require.NoError(t, store.Proveedores().Create(&entity.Proveedor{
		ID: "prov1", Empresa: "Farma SL", Activo: true,
	}))
	require.NoError(t, store.Pedidos().Create(&entity.Pedido{
		ID: "ped1", ProveedorID: "prov1", NumeroPedido: "PED-20250301-0001",
		FechaPedido: hoy.AddDate(0, 0, -9), Estado: entity.EstadoEnviado,
		Total: decimal.New(100, 0), Activo: true,
	}))

	alertas, err := uc.ObtenerTodas()
	require.NoError(t, err)

	// p1 stock bajo, p2 caducado, p3 próximo, ped1 pendiente Y retrasado
	require.Len(t, alertas, 5)

	// críticas primero
	assert.True(t, alertas[0].Critica)
	assert.True(t, alertas[1].Critica)
	assert.False(t, alertas[2].Critica)

	tipos := make(map[entity.TipoAlerta]int)
	for _, a := range alertas {
		tipos[a.Tipo]++
	}
	assert.Equal(t, 1, tipos[entity.AlertaStockBajo])
	assert.Equal(t, 1, tipos[entity.AlertaProductoCaducado])
	assert.Equal(t, 1, tipos[entity.AlertaProximoCaducar])
	assert.Equal(t, 1, tipos[entity.AlertaPedidoPendiente])
	assert.Equal(t, 1, tipos[entity.AlertaPedidoRetrasado])
}

func TestObtenerTodasResuelveEmpresaDelProveedor(t *testing.T) {
	store, uc := setup(t)
	require.NoError(t, store.Proveedores().Create(&entity.Proveedor{
		ID: "prov1", Empresa: "Farma SL", Activo: true,
	}))
	require.NoError(t, store.Pedidos().Create(&entity.Pedido{
		ID: "ped1", ProveedorID: "prov1", NumeroPedido: "PED-20250314-0001",
		FechaPedido: hoy.AddDate(0, 0, -1), Estado: entity.EstadoBorrador,
		Total: decimal.New(50, 0), Activo: true,
	}))

	alertas, err := uc.ObtenerTodas()
	require.NoError(t, err)
	require.Len(t, alertas, 1)
	assert.Contains(t, alertas[0].Detalle, "Farma SL")
}

func TestObtenerCriticasFiltra(t *testing.T) {
	store, uc := setup(t)
	require.NoError(t, store.Productos().Create(&entity.Producto{
		ID: "p1", Nombre: "Stock bajo", Codigo: "C1",
		Precio: decimal.New(1, 0), Stock: 1, StockMinimo: 10, Activo: true,
	}))
	require.NoError(t, store.Productos().Create(&entity.Producto{
		ID: "p2", Nombre: "Caducado", Codigo: "C2",
		Precio: decimal.New(1, 0), Stock: 50, StockMinimo: 10,
		FechaVencimiento: fecha(-1), Activo: true,
	}))

	criticas, err := uc.ObtenerCriticas()
	require.NoError(t, err)
	require.Len(t, criticas, 1)
	assert.Equal(t, entity.AlertaProductoCaducado, criticas[0].Tipo)
}

func TestObtenerEstadisticas(t *testing.T) {
	store, uc := setup(t)
	require.NoError(t, store.Productos().Create(&entity.Producto{
		ID: "p1", Nombre: "Stock bajo", Codigo: "C1",
		Precio: decimal.New(1, 0), Stock: 0, StockMinimo: 10, Activo: true,
	}))
	require.NoError(t, store.Productos().Create(&entity.Producto{
		ID: "p2", Nombre: "Caducado", Codigo: "C2",
		Precio: decimal.New(1, 0), Stock: 50, StockMinimo: 10,
		FechaVencimiento: fecha(-2), Activo: true,
	}))

	stats, err := uc.ObtenerEstadisticas()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Criticas)
	assert.Equal(t, 1, stats.StockBajo)
	assert.Equal(t, 1, stats.Caducados)
	assert.Equal(t, 0, stats.PedidosPendientes)
}

func TestProductoInactivoNoGeneraAlertas(t *testing.T) {
	store, uc := setup(t)
	require.NoError(t, store.Productos().Create(&entity.Producto{
		ID: "p1", Nombre: "Descatalogado", Codigo: "C1",
		Precio: decimal.New(1, 0), Stock: 0, StockMinimo: 10,
		FechaVencimiento: fecha(-30), Activo: false,
	}))

	alertas, err := uc.ObtenerTodas()
	require.NoError(t, err)
	assert.Empty(t, alertas)
}
