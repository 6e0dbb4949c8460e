package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineaVentaRequest una línea de la venta entrante.
type LineaVentaRequest struct {
	ProductoID string          `json:"producto_id" validate:"required"`
	Cantidad   int             `json:"cantidad" validate:"required,min=1"`
	Descuento  decimal.Decimal `json:"descuento"`
}

// CreateVentaRequest entrada para registrar una venta. El precio unitario
// se toma del catálogo en el momento de la venta.
type CreateVentaRequest struct {
	Detalles      []LineaVentaRequest `json:"detalles" validate:"required,min=1,dive"`
	Descuento     decimal.Decimal     `json:"descuento"`
	MetodoPago    string              `json:"metodo_pago" validate:"required,oneof=EFECTIVO TARJETA TRANSFERENCIA"`
	Cliente       string              `json:"cliente"`
	Observaciones string              `json:"observaciones"`
}

// AnularVentaRequest entrada para anular una venta.
type AnularVentaRequest struct {
	Motivo string `json:"motivo"`
}

// DetalleVentaResponse salida de una línea de venta.
type DetalleVentaResponse struct {
	ProductoID     string          `json:"producto_id"`
	NombreProducto string          `json:"nombre_producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Descuento      decimal.Decimal `json:"descuento"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// VentaResponse salida de una venta.
type VentaResponse struct {
	ID            string                 `json:"id"`
	Fecha         time.Time              `json:"fecha"`
	Detalles      []DetalleVentaResponse `json:"detalles"`
	Subtotal      decimal.Decimal        `json:"subtotal"`
	Descuento     decimal.Decimal        `json:"descuento"`
	Total         decimal.Decimal        `json:"total"`
	MetodoPago    string                 `json:"metodo_pago"`
	Cliente       string                 `json:"cliente,omitempty"`
	Observaciones string                 `json:"observaciones,omitempty"`
	UsuarioID     string                 `json:"usuario_id"`
	Activo        bool                   `json:"activo"`
}

// VentaListResponse lista de ventas.
type VentaListResponse struct {
	Items []VentaResponse `json:"items"`
	Total int             `json:"total"`
}

// EstadisticasVentasResponse resumen de ventas de un período.
type EstadisticasVentasResponse struct {
	TotalVentas       decimal.Decimal `json:"total_ventas"`
	NumeroVentas      int             `json:"numero_ventas"`
	PromedioVenta     decimal.Decimal `json:"promedio_venta"`
	ProductosVendidos int             `json:"productos_vendidos"`
}
