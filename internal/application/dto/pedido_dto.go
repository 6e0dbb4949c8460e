package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineaPedidoRequest una línea del pedido entrante. ProductoID puede ir
// vacío cuando el producto aún no está dado de alta en el catálogo.
type LineaPedidoRequest struct {
	ProductoID     string          `json:"producto_id"`
	NombreProducto string          `json:"nombre_producto"`
	CodigoProducto string          `json:"codigo_producto"`
	Cantidad       int             `json:"cantidad" validate:"required,min=1"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Descuento      decimal.Decimal `json:"descuento"`
	Observaciones  string          `json:"observaciones"`
}

// CreatePedidoRequest entrada para crear un pedido a proveedor.
type CreatePedidoRequest struct {
	ProveedorID          string               `json:"proveedor_id" validate:"required"`
	FechaEntregaEstimada *time.Time           `json:"fecha_entrega_estimada"`
	Detalles             []LineaPedidoRequest `json:"detalles" validate:"required,min=1,dive"`
	IVA                  decimal.Decimal      `json:"iva"`
	Descuento            decimal.Decimal      `json:"descuento"`
	Observaciones        string               `json:"observaciones"`
}

// UpdatePedidoRequest entrada para modificar un pedido aún editable.
type UpdatePedidoRequest struct {
	FechaEntregaEstimada *time.Time           `json:"fecha_entrega_estimada"`
	Detalles             []LineaPedidoRequest `json:"detalles" validate:"omitempty,min=1,dive"`
	IVA                  *decimal.Decimal     `json:"iva"`
	Descuento            *decimal.Decimal     `json:"descuento"`
	Observaciones        *string              `json:"observaciones"`
}

// CambiarEstadoRequest entrada para una transición de estado.
type CambiarEstadoRequest struct {
	Estado string `json:"estado" validate:"required"`
}

// CancelarPedidoRequest entrada para cancelar un pedido.
type CancelarPedidoRequest struct {
	Motivo string `json:"motivo"`
}

// RecibirPedidoRequest cantidades realmente recibidas por línea (opcional;
// una línea ausente se recibe completa).
type RecibirPedidoRequest struct {
	CantidadesRecibidas map[string]int `json:"cantidades_recibidas"` // detalle_id -> cantidad
}

// DetallePedidoResponse salida de una línea de pedido.
type DetallePedidoResponse struct {
	ID               string          `json:"id"`
	ProductoID       string          `json:"producto_id,omitempty"`
	NombreProducto   string          `json:"nombre_producto"`
	CodigoProducto   string          `json:"codigo_producto"`
	Cantidad         int             `json:"cantidad"`
	PrecioUnitario   decimal.Decimal `json:"precio_unitario"`
	Descuento        decimal.Decimal `json:"descuento"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	Recibido         bool            `json:"recibido"`
	CantidadRecibida int             `json:"cantidad_recibida"`
}

// PedidoResponse salida de un pedido.
type PedidoResponse struct {
	ID                   string                  `json:"id"`
	ProveedorID          string                  `json:"proveedor_id"`
	NumeroPedido         string                  `json:"numero_pedido"`
	FechaPedido          time.Time               `json:"fecha_pedido"`
	FechaEntregaEstimada *time.Time              `json:"fecha_entrega_estimada,omitempty"`
	FechaEntregaReal     *time.Time              `json:"fecha_entrega_real,omitempty"`
	Estado               string                  `json:"estado"`
	EstadoDescripcion    string                  `json:"estado_descripcion"`
	Detalles             []DetallePedidoResponse `json:"detalles"`
	Subtotal             decimal.Decimal         `json:"subtotal"`
	IVA                  decimal.Decimal         `json:"iva"`
	Descuento            decimal.Decimal         `json:"descuento"`
	Total                decimal.Decimal         `json:"total"`
	Observaciones        string                  `json:"observaciones,omitempty"`
	Activo               bool                    `json:"activo"`
}

// PedidoListResponse lista de pedidos.
type PedidoListResponse struct {
	Items []PedidoResponse `json:"items"`
	Total int              `json:"total"`
}

// EstadisticasPedidosResponse conteo de pedidos por situación.
type EstadisticasPedidosResponse struct {
	Pendientes int `json:"pendientes"`
	Recibidos  int `json:"recibidos"`
	Cancelados int `json:"cancelados"`
}
