// Package pdf rinde los reportes de gestión de la farmacia con Maroto v2.
//
// Layout de la página A4 (ambos reportes):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha / Rango               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una fila por venta o por producto                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: resumen del período / valor del inventario        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/farmaplus/farmacia-api/internal/application/dto"
	"github.com/farmaplus/farmacia-api/internal/application/reportes"
)

var (
	colorPrimario = &props.Color{Red: 0, Green: 105, Blue: 92}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReporteGenerator implementa reportes.GeneradorPDF usando Maroto v2.
type MarotoReporteGenerator struct{}

var _ reportes.GeneradorPDF = (*MarotoReporteGenerator)(nil)

// NewMarotoReporteGenerator construye el generador.
func NewMarotoReporteGenerator() *MarotoReporteGenerator { return &MarotoReporteGenerator{} }

func nuevoDocumento(titulo string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(titulo, true).
		Build()
	return maroto.New(cfg)
}

// ReporteVentas genera el PDF del reporte de ventas de un rango.
func (g *MarotoReporteGenerator) ReporteVentas(r *dto.ReporteVentasResponse) ([]byte, error) {
	m := nuevoDocumento("Reporte de Ventas")

	rango := fmt.Sprintf("%s — %s", r.Desde.Format("02/01/2006"), r.Hasta.Format("02/01/2006"))
	m.AddRows(tituloRow("REPORTE DE VENTAS", rango))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.5}))

	m.AddRows(cabeceraTabla(
		celda{"Fecha", 2, align.Left},
		celda{"Líneas", 1, align.Center},
		celda{"Método de pago", 3, align.Left},
		celda{"Cliente", 3, align.Left},
		celda{"Total", 3, align.Right},
	))
	for _, v := range r.Ventas {
		m.AddRows(row.New(6).Add(
			colTexto(v.Fecha.Format("02/01 15:04"), 2, align.Left),
			colTexto(fmt.Sprintf("%d", len(v.Detalles)), 1, align.Center),
			colTexto(v.MetodoPago, 3, align.Left),
			colTexto(valorODefecto(v.Cliente, "—"), 3, align.Left),
			colTexto("€"+v.Total.StringFixed(2), 3, align.Right),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))
	m.AddRows(row.New(16).Add(
		col.New(6).Add(
			text.New(fmt.Sprintf("Ventas: %d", r.Estadisticas.NumeroVentas), props.Text{Size: 9, Top: 1}),
			text.New(fmt.Sprintf("Unidades vendidas: %d", r.Estadisticas.ProductosVendidos), props.Text{Size: 9, Top: 6}),
			text.New("Ticket medio: €"+r.Estadisticas.PromedioVenta.StringFixed(2), props.Text{Size: 9, Top: 11}),
		),
		col.New(6).Add(
			text.New("TOTAL DEL PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimario, Top: 1,
			}),
			text.New("€"+r.Estadisticas.TotalVentas.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Right, Color: colorPrimario, Top: 7,
			}),
		),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte de ventas: %w", err)
	}
	return doc.GetBytes(), nil
}

// ReporteInventario genera el PDF del inventario valorizado.
func (g *MarotoReporteGenerator) ReporteInventario(r *dto.ReporteInventarioResponse) ([]byte, error) {
	m := nuevoDocumento("Inventario Valorizado")

	m.AddRows(tituloRow("INVENTARIO VALORIZADO", "A fecha "+r.Fecha.Format("02/01/2006")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.5}))

	m.AddRows(cabeceraTabla(
		celda{"Código", 2, align.Left},
		celda{"Producto", 4, align.Left},
		celda{"Stock", 1, align.Center},
		celda{"Mín.", 1, align.Center},
		celda{"Precio", 2, align.Right},
		celda{"Valor", 2, align.Right},
	))
	for _, l := range r.Lineas {
		nombre := l.Nombre
		if l.StockBajo {
			nombre += " (!)"
		}
		m.AddRows(row.New(6).Add(
			colTexto(l.Codigo, 2, align.Left),
			colTexto(nombre, 4, align.Left),
			colTexto(fmt.Sprintf("%d", l.Stock), 1, align.Center),
			colTexto(fmt.Sprintf("%d", l.StockMinimo), 1, align.Center),
			colTexto("€"+l.Precio.StringFixed(2), 2, align.Right),
			colTexto("€"+l.Valor.StringFixed(2), 2, align.Right),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))
	m.AddRows(row.New(12).Add(
		col.New(6).Add(
			text.New(fmt.Sprintf("Referencias: %d   |   Unidades: %d", len(r.Lineas), r.Unidades),
				props.Text{Size: 9, Top: 2}),
		),
		col.New(6).Add(
			text.New("VALOR TOTAL: €"+r.ValorTotal.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorPrimario, Top: 2,
			}),
		),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar inventario valorizado: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

type celda struct {
	etiqueta string
	ancho    int
	alinear  align.Type
}

func tituloRow(titulo, subtitulo string) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimario, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(subtitulo, props.Text{
				Size: 9, Align: align.Right, Color: colorGris, Top: 4,
			}),
		),
	)
}

func cabeceraTabla(celdas ...celda) core.Row {
	cols := make([]core.Col, 0, len(celdas))
	for _, c := range celdas {
		cols = append(cols, col.New(c.ancho).Add(text.New(c.etiqueta, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.alinear,
			Color: colorPrimario, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

func colTexto(valor string, ancho int, alinear align.Type) core.Col {
	return col.New(ancho).Add(text.New(valor, props.Text{
		Size: 8, Align: alinear, Top: 1, Left: 1, Right: 1,
	}))
}

func valorODefecto(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
