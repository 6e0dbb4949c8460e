package pedidos

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
	uc := NewUseCase(memoria.NewTxRunner(store), store.Pedidos(), store.Proveedores(), func() time.Time { return hoy })
	require.NoError(t, store.Proveedores().Create(&entity.Proveedor{
		ID:      "prov1",
		Empresa: "Distribuciones Farma SL",
		Activo:  true,
	}))
	return store, uc
}

func crearPedido(t *testing.T, uc *UseCase, lineas ...dto.LineaPedidoRequest) *entity.Pedido {
	t.Helper()
	if len(lineas) == 0 {
		lineas = []dto.LineaPedidoRequest{{
			NombreProducto: "Amoxicilina 500mg",
			CodigoProducto: "AMX-500",
			Cantidad:       10,
			PrecioUnitario: decimal.RequireFromString("1.20"),
		}}
	}
	pedido, err := uc.Crear(context.Background(), "u1", &dto.CreatePedidoRequest{
		ProveedorID: "prov1",
		Detalles:    lineas,
	})
	require.NoError(t, err)
	return pedido
}

func TestCrearPedido(t *testing.T) {
	_, uc := setup(t)
	pedido, err := uc.Crear(context.Background(), "u1", &dto.CreatePedidoRequest{
		ProveedorID: "prov1",
		Detalles: []dto.LineaPedidoRequest{
			{NombreProducto: "Amoxicilina 500mg", Cantidad: 10, PrecioUnitario: decimal.RequireFromString("1.20")},
			{NombreProducto: "Omeprazol 20mg", Cantidad: 5, PrecioUnitario: decimal.RequireFromString("2.00"), Descuento: decimal.RequireFromString("1.00")},
		},
		IVA:       decimal.RequireFromString("4.41"),
		Descuento: decimal.RequireFromString("2.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.EstadoBorrador, pedido.Estado)
	assert.Equal(t, "PED-20250315-0001", pedido.NumeroPedido)
	// 12.00 + 9.00 = 21.00; total = 21.00 + 4.41 − 2.00
	assert.True(t, pedido.Subtotal.Equal(decimal.RequireFromString("21.00")), "subtotal %s", pedido.Subtotal)
	assert.True(t, pedido.Total.Equal(decimal.RequireFromString("23.41")), "total %s", pedido.Total)

	segundo := crearPedido(t, uc)
	assert.Equal(t, "PED-20250315-0002", segundo.NumeroPedido)
}

func TestCrearPedidoValidaciones(t *testing.T) {
	_, uc := setup(t)
	ctx := context.Background()

	_, err := uc.Crear(ctx, "u1", &dto.CreatePedidoRequest{ProveedorID: "prov1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Crear(ctx, "u1", &dto.CreatePedidoRequest{
		ProveedorID: "nope",
		Detalles:    []dto.LineaPedidoRequest{{NombreProducto: "X", Cantidad: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Crear(ctx, "u1", &dto.CreatePedidoRequest{
		ProveedorID: "prov1",
		Detalles:    []dto.LineaPedidoRequest{{NombreProducto: "X", Cantidad: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// precio unitario cero: la línea no es válida
	_, err = uc.Crear(ctx, "u1", &dto.CreatePedidoRequest{
		ProveedorID: "prov1",
		Detalles:    []dto.LineaPedidoRequest{{NombreProducto: "X", Cantidad: 1, PrecioUnitario: decimal.Zero}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// línea sin producto ni nombre
	_, err = uc.Crear(ctx, "u1", &dto.CreatePedidoRequest{
		ProveedorID: "prov1",
		Detalles:    []dto.LineaPedidoRequest{{Cantidad: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCambiarEstadoAvanzaLaCadena(t *testing.T) {
	_, uc := setup(t)
	pedido := crearPedido(t, uc)
	ctx := context.Background()

	for _, destino := range []entity.EstadoPedido{
		entity.EstadoEnviado, entity.EstadoConfirmado, entity.EstadoEnTransito,
	} {
		actualizado, err := uc.CambiarEstado(ctx, pedido.ID, destino)
		require.NoError(t, err)
		assert.Equal(t, destino, actualizado.Estado)
	}

	// saltarse un paso no está permitido
	otro := crearPedido(t, uc)
	_, err := uc.CambiarEstado(ctx, otro.ID, entity.EstadoConfirmado)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = uc.CambiarEstado(ctx, otro.ID, "INVENTADO")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecibirPedidoActualizaStock(t *testing.T) {
	store, uc := setup(t)
	require.NoError(t, store.Productos().Create(&entity.Producto{
		ID: "p1", Nombre: "Amoxicilina 500mg", Codigo: "AMX-500",
		Precio: decimal.RequireFromString("3.50"), Stock: 2, StockMinimo: 5, Activo: true,
	}))
	pedido := crearPedido(t, uc,
		dto.LineaPedidoRequest{ProductoID: "p1", NombreProducto: "Amoxicilina 500mg", Cantidad: 10, PrecioUnitario: decimal.RequireFromString("1.20")},
		dto.LineaPedidoRequest{NombreProducto: "Producto nuevo sin alta", Cantidad: 4, PrecioUnitario: decimal.RequireFromString("0.80")},
	)

	recibido, err := uc.Recibir(context.Background(), pedido.ID, map[string]int{
		pedido.Detalles[0].ID: 8, // llegaron 8 de 10
	})
	require.NoError(t, err)

	assert.Equal(t, entity.EstadoRecibido, recibido.Estado)
	require.NotNil(t, recibido.FechaEntregaReal)
	assert.True(t, recibido.FechaEntregaReal.Equal(hoy))

	// línea 1: cantidad indicada; línea 2: sin indicar, se recibe completa
	assert.True(t, recibido.Detalles[0].Recibido)
	assert.Equal(t, 8, recibido.Detalles[0].CantidadRecibida)
	assert.True(t, recibido.Detalles[1].Recibido)
	assert.Equal(t, 4, recibido.Detalles[1].CantidadRecibida)

	p1, _ := store.Productos().GetByID("p1")
	assert.Equal(t, 10, p1.Stock) // 2 + 8; la línea sin producto no toca stock
}

func TestRecibirPedidoTerminalFalla(t *testing.T) {
	_, uc := setup(t)
	pedido := crearPedido(t, uc)
	ctx := context.Background()

	_, err := uc.Recibir(ctx, pedido.ID, nil)
	require.NoError(t, err)

	_, err = uc.Recibir(ctx, pedido.ID, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCancelarPedido(t *testing.T) {
	_, uc := setup(t)
	pedido := crearPedido(t, uc)
	ctx := context.Background()

	cancelado, err := uc.Cancelar(ctx, pedido.ID, "proveedor sin existencias")
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoCancelado, cancelado.Estado)
	assert.Contains(t, cancelado.Observaciones, "CANCELADO: proveedor sin existencias")

	// cancelar un pedido ya terminal falla
	_, err = uc.Cancelar(ctx, pedido.ID, "de nuevo")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCancelarPedidoRecibidoFalla(t *testing.T) {
	_, uc := setup(t)
	pedido := crearPedido(t, uc)
	ctx := context.Background()

	_, err := uc.Recibir(ctx, pedido.ID, nil)
	require.NoError(t, err)

	_, err = uc.Cancelar(ctx, pedido.ID, "tarde")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestActualizarSoloEnBorrador(t *testing.T) {
	_, uc := setup(t)
	pedido := crearPedido(t, uc)
	ctx := context.Background()

	obs := "urgente"
	actualizado, err := uc.Actualizar(ctx, pedido.ID, &dto.UpdatePedidoRequest{Observaciones: &obs})
	require.NoError(t, err)
	assert.Equal(t, "urgente", actualizado.Observaciones)

	_, err = uc.CambiarEstado(ctx, pedido.ID, entity.EstadoEnviado)
	require.NoError(t, err)

	_, err = uc.Actualizar(ctx, pedido.ID, &dto.UpdatePedidoRequest{Observaciones: &obs})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestEliminarPedido(t *testing.T) {
	_, uc := setup(t)
	ctx := context.Background()

	borrador := crearPedido(t, uc)
	require.NoError(t, uc.Eliminar(ctx, borrador.ID))

	enCurso := crearPedido(t, uc)
	_, err := uc.CambiarEstado(ctx, enCurso.ID, entity.EstadoEnviado)
	require.NoError(t, err)
	assert.ErrorIs(t, uc.Eliminar(ctx, enCurso.ID), domain.ErrInvalidTransition)
}

func TestEstadisticas(t *testing.T) {
	_, uc := setup(t)
	ctx := context.Background()

	crearPedido(t, uc) // queda en borrador
	recibir := crearPedido(t, uc)
	_, err := uc.Recibir(ctx, recibir.ID, nil)
	require.NoError(t, err)
	cancelar := crearPedido(t, uc)
	_, err = uc.Cancelar(ctx, cancelar.ID, "")
	require.NoError(t, err)

	stats, err := uc.Estadisticas()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Pendientes)
	assert.Equal(t, 1, stats.Recibidos)
	assert.Equal(t, 1, stats.Cancelados)
}
