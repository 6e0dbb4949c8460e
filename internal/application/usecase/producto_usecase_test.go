package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmaplus/farmacia-api/internal/application/dto"
	"github.com/farmaplus/farmacia-api/internal/domain"
	"github.com/farmaplus/farmacia-api/internal/infrastructure/memoria"
)

func TestProductoCreate(t *testing.T) {
	uc := NewProductoUseCase(memoria.NewStore().Productos())

	out, err := uc.Create(dto.CreateProductoRequest{
		Nombre: "Paracetamol 500mg",
		Codigo: "PAR-500",
		Precio: decimal.RequireFromString("2.50"),
		Stock:  40,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, 10, out.StockMinimo, "sin umbral propio aplica el mínimo por defecto")
	assert.True(t, out.Activo)

	// código duplicado
	_, err = uc.Create(dto.CreateProductoRequest{
		Nombre: "Otro", Codigo: "PAR-500", Precio: decimal.RequireFromString("1.00"),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductoCreateValidaciones(t *testing.T) {
	uc := NewProductoUseCase(memoria.NewStore().Productos())

	casos := []struct {
		nombre string
		in     dto.CreateProductoRequest
	}{
		{"sin nombre", dto.CreateProductoRequest{Codigo: "X-1"}},
		{"sin código", dto.CreateProductoRequest{Nombre: "X"}},
		{"precio negativo", dto.CreateProductoRequest{
			Nombre: "X", Codigo: "X-1", Precio: decimal.RequireFromString("-1"),
		}},
		{"precio cero", dto.CreateProductoRequest{Nombre: "X", Codigo: "X-1"}},
		{"stock negativo", dto.CreateProductoRequest{
			Nombre: "X", Codigo: "X-1", Precio: decimal.RequireFromString("1.00"), Stock: -1,
		}},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := uc.Create(c.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestProductoUpdateNoTocaStock(t *testing.T) {
	store := memoria.NewStore()
	uc := NewProductoUseCase(store.Productos())

	creado, err := uc.Create(dto.CreateProductoRequest{
		Nombre: "Ibuprofeno 600mg",
		Codigo: "IBU-600",
		Precio: decimal.RequireFromString("3.75"),
		Stock:  12,
	})
	require.NoError(t, err)

	nuevoPrecio := decimal.RequireFromString("4.10")
	nuevoNombre := "Ibuprofeno 600mg cápsulas"
	out, err := uc.Update(creado.ID, dto.UpdateProductoRequest{
		Nombre: &nuevoNombre,
		Precio: &nuevoPrecio,
	})
	require.NoError(t, err)
	assert.Equal(t, nuevoNombre, out.Nombre)
	assert.True(t, nuevoPrecio.Equal(out.Precio))
	assert.Equal(t, 12, out.Stock, "el stock no se edita desde el CRUD")
}

func TestProductoUpdateInexistente(t *testing.T) {
	uc := NewProductoUseCase(memoria.NewStore().Productos())
	nombre := "X"
	_, err := uc.Update("no-existe", dto.UpdateProductoRequest{Nombre: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductoBuscar(t *testing.T) {
	uc := NewProductoUseCase(memoria.NewStore().Productos())

	_, err := uc.Create(dto.CreateProductoRequest{
		Nombre: "Paracetamol 500mg", Codigo: "PAR-500",
		Precio: decimal.RequireFromString("2.50"), Categoria: "Analgésicos",
	})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProductoRequest{
		Nombre: "Amoxicilina 750mg", Codigo: "AMX-750",
		Precio: decimal.RequireFromString("5.20"), Categoria: "Antibióticos",
	})
	require.NoError(t, err)

	porNombre, err := uc.Buscar("paracet", "", "")
	require.NoError(t, err)
	require.Equal(t, 1, porNombre.Total)
	assert.Equal(t, "PAR-500", porNombre.Items[0].Codigo)

	porCategoria, err := uc.Buscar("", "Antibióticos", "")
	require.NoError(t, err)
	require.Equal(t, 1, porCategoria.Total)
	assert.Equal(t, "AMX-750", porCategoria.Items[0].Codigo)

	todos, err := uc.Buscar("", "", "")
	require.NoError(t, err)
	assert.Equal(t, 2, todos.Total)
}

func TestProductoDeleteDesactiva(t *testing.T) {
	store := memoria.NewStore()
	uc := NewProductoUseCase(store.Productos())

	creado, err := uc.Create(dto.CreateProductoRequest{
		Nombre: "Omeprazol 20mg", Codigo: "OME-20",
		Precio: decimal.RequireFromString("6.00"),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(creado.ID))

	lista, err := uc.List()
	require.NoError(t, err)
	assert.Equal(t, 0, lista.Total)

	// sigue recuperable por ID para el histórico
	p, err := store.Productos().GetByID(creado.ID)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.False(t, p.Activo)
}

func TestProductoCaducadosYProximos(t *testing.T) {
	uc := NewProductoUseCase(memoria.NewStore().Productos())

	pasada := time.Now().AddDate(0, 0, -3)
	cercana := time.Now().AddDate(0, 0, 10)
	lejana := time.Now().AddDate(1, 0, 0)

	for _, c := range []struct {
		codigo string
		fecha  *time.Time
	}{
		{"CAD-1", &pasada},
		{"PROX-1", &cercana},
		{"OK-1", &lejana},
	} {
		_, err := uc.Create(dto.CreateProductoRequest{
			Nombre: c.codigo, Codigo: c.codigo,
			Precio: decimal.RequireFromString("1.00"), FechaVencimiento: c.fecha,
		})
		require.NoError(t, err)
	}

	caducados, err := uc.Caducados()
	require.NoError(t, err)
	require.Equal(t, 1, caducados.Total)
	assert.Equal(t, "CAD-1", caducados.Items[0].Codigo)

	proximos, err := uc.ProximosACaducar()
	require.NoError(t, err)
	require.Equal(t, 1, proximos.Total)
	assert.Equal(t, "PROX-1", proximos.Items[0].Codigo)
}
