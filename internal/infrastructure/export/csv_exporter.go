// Package export exporta reportes a CSV. La gestoría importa los ficheros
// en una hoja de cálculo antigua que espera ISO-8859-1 y punto y coma como
// separador, de ahí la transcodificación al escribir.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/farmaplus/farmacia-api/internal/application/dto"
	"github.com/farmaplus/farmacia-api/internal/application/reportes"
)

// CSVExporter implementa reportes.ExportadorCSV emitiendo ISO-8859-1.
type CSVExporter struct{}

var _ reportes.ExportadorCSV = (*CSVExporter)(nil)

// NewCSVExporter construye el exportador.
func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

// Inventario exporta el inventario valorizado, una fila por producto.
func (e *CSVExporter) Inventario(r *dto.ReporteInventarioResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(transform.NewWriter(&buf, charmap.ISO8859_1.NewEncoder()))
	w.Comma = ';'

	if err := w.Write([]string{
		"codigo", "nombre", "categoria", "stock", "stock_minimo", "precio", "valor", "stock_bajo",
	}); err != nil {
		return nil, fmt.Errorf("export: cabecera csv: %w", err)
	}
	for _, l := range r.Lineas {
		if err := w.Write([]string{
			l.Codigo,
			l.Nombre,
			l.Categoria,
			strconv.Itoa(l.Stock),
			strconv.Itoa(l.StockMinimo),
			l.Precio.StringFixed(2),
			l.Valor.StringFixed(2),
			strconv.FormatBool(l.StockBajo),
		}); err != nil {
			return nil, fmt.Errorf("export: fila csv: %w", err)
		}
	}
	if err := w.Write([]string{
		"TOTAL", "", "", strconv.Itoa(r.Unidades), "", "", r.ValorTotal.StringFixed(2), "",
	}); err != nil {
		return nil, fmt.Errorf("export: fila de totales: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export: volcar csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Ventas exporta el reporte de ventas, una fila por venta.
func (e *CSVExporter) Ventas(r *dto.ReporteVentasResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(transform.NewWriter(&buf, charmap.ISO8859_1.NewEncoder()))
	w.Comma = ';'

	if err := w.Write([]string{
		"fecha", "metodo_pago", "cliente", "lineas", "subtotal", "descuento", "total",
	}); err != nil {
		return nil, fmt.Errorf("export: cabecera csv: %w", err)
	}
	for _, v := range r.Ventas {
		if err := w.Write([]string{
			v.Fecha.Format("2006-01-02 15:04"),
			v.MetodoPago,
			v.Cliente,
			strconv.Itoa(len(v.Detalles)),
			v.Subtotal.StringFixed(2),
			v.Descuento.StringFixed(2),
			v.Total.StringFixed(2),
		}); err != nil {
			return nil, fmt.Errorf("export: fila csv: %w", err)
		}
	}
	if err := w.Write([]string{
		"TOTAL", "", "", strconv.Itoa(r.Estadisticas.NumeroVentas), "", "",
		r.Estadisticas.TotalVentas.StringFixed(2),
	}); err != nil {
		return nil, fmt.Errorf("export: fila de totales: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export: volcar csv: %w", err)
	}
	return buf.Bytes(), nil
}
