package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto.
type CreateProductoRequest struct {
	Nombre           string          `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion      string          `json:"descripcion"`
	Codigo           string          `json:"codigo" validate:"required,min=1,max=50"`
	Precio           decimal.Decimal `json:"precio"`
	Stock            int             `json:"stock" validate:"min=0"`
	StockMinimo      *int            `json:"stock_minimo"` // nil = por defecto
	Laboratorio      string          `json:"laboratorio"`
	Categoria        string          `json:"categoria"`
	FechaVencimiento *time.Time      `json:"fecha_vencimiento"`
	RequiereReceta   bool            `json:"requiere_receta"`
}

// UpdateProductoRequest entrada para actualizar un producto (el stock se
// maneja vía ventas y recepciones de pedido, no aquí).
type UpdateProductoRequest struct {
	Nombre           *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Descripcion      *string          `json:"descripcion"`
	Precio           *decimal.Decimal `json:"precio"`
	StockMinimo      *int             `json:"stock_minimo"`
	Laboratorio      *string          `json:"laboratorio"`
	Categoria        *string          `json:"categoria"`
	FechaVencimiento *time.Time       `json:"fecha_vencimiento"`
	RequiereReceta   *bool            `json:"requiere_receta"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID               string          `json:"id"`
	Nombre           string          `json:"nombre"`
	Descripcion      string          `json:"descripcion"`
	Codigo           string          `json:"codigo"`
	Precio           decimal.Decimal `json:"precio"`
	Stock            int             `json:"stock"`
	StockMinimo      int             `json:"stock_minimo"`
	StockBajo        bool            `json:"stock_bajo"`
	Laboratorio      string          `json:"laboratorio"`
	Categoria        string          `json:"categoria"`
	FechaVencimiento *time.Time      `json:"fecha_vencimiento,omitempty"`
	RequiereReceta   bool            `json:"requiere_receta"`
	Activo           bool            `json:"activo"`
	FechaCreacion    time.Time       `json:"fecha_creacion"`
}

// ProductoListResponse lista de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Total int                `json:"total"`
}
