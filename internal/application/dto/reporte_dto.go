package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReporteVentasResponse resumen de ventas de un rango de fechas.
type ReporteVentasResponse struct {
	Desde            time.Time                  `json:"desde"`
	Hasta            time.Time                  `json:"hasta"`
	Ventas           []VentaResponse            `json:"ventas"`
	Estadisticas     EstadisticasVentasResponse `json:"estadisticas"`
	TotalesPorMetodo map[string]decimal.Decimal `json:"totales_por_metodo"`
}

// LineaInventarioResponse una fila del reporte de inventario valorizado.
type LineaInventarioResponse struct {
	ProductoID  string          `json:"producto_id"`
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	Categoria   string          `json:"categoria"`
	Stock       int             `json:"stock"`
	StockMinimo int             `json:"stock_minimo"`
	Precio      decimal.Decimal `json:"precio"`
	Valor       decimal.Decimal `json:"valor"` // precio × stock
	StockBajo   bool            `json:"stock_bajo"`
}

// ReporteInventarioResponse inventario valorizado completo.
type ReporteInventarioResponse struct {
	Fecha      time.Time                 `json:"fecha"`
	Lineas     []LineaInventarioResponse `json:"lineas"`
	ValorTotal decimal.Decimal           `json:"valor_total"`
	Unidades   int                       `json:"unidades"`
}

// DashboardResponse resumen para el panel principal.
type DashboardResponse struct {
	VentasHoy EstadisticasVentasResponse  `json:"ventas_hoy"`
	Pedidos   EstadisticasPedidosResponse `json:"pedidos"`
	Alertas   EstadisticasAlertasResponse `json:"alertas"`
}
