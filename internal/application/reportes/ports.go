package reportes

import "github.com/farmaplus/farmacia-api/internal/application/dto"

// GeneradorPDF convierte un reporte ya calculado en un documento PDF.
type GeneradorPDF interface {
	ReporteVentas(r *dto.ReporteVentasResponse) ([]byte, error)
	ReporteInventario(r *dto.ReporteInventarioResponse) ([]byte, error)
}

// ExportadorCSV convierte un reporte ya calculado en un CSV apto para la
// hoja de cálculo de la gestoría (codificación heredada incluida).
type ExportadorCSV interface {
	Inventario(r *dto.ReporteInventarioResponse) ([]byte, error)
	Ventas(r *dto.ReporteVentasResponse) ([]byte, error)
}
