package export

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/farmaplus/farmacia-api/internal/application/dto"
)

func TestInventarioCSV(t *testing.T) {
	reporte := &dto.ReporteInventarioResponse{
		Fecha: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Lineas: []dto.LineaInventarioResponse{
			{
				Codigo:      "IBU-600",
				Nombre:      "Ibuprofeno 600mg cápsulas",
				Categoria:   "Analgésicos",
				Stock:       12,
				StockMinimo: 10,
				Precio:      decimal.RequireFromString("3.75"),
				Valor:       decimal.RequireFromString("45.00"),
			},
		},
		ValorTotal: decimal.RequireFromString("45.00"),
		Unidades:   12,
	}

	raw, err := NewCSVExporter().Inventario(reporte)
	require.NoError(t, err)

	// el fichero sale en ISO-8859-1: los acentos ocupan un solo byte
	assert.Contains(t, string(raw), "Analg\xe9sicos")

	decodificado, _, err := transform.String(charmap.ISO8859_1.NewDecoder(), string(raw))
	require.NoError(t, err)
	lineas := strings.Split(strings.TrimSpace(decodificado), "\n")
	require.Len(t, lineas, 3) // cabecera + producto + totales
	assert.Equal(t, "codigo;nombre;categoria;stock;stock_minimo;precio;valor;stock_bajo", lineas[0])
	assert.Contains(t, lineas[1], "Ibuprofeno 600mg cápsulas")
	assert.Contains(t, lineas[1], "3.75;45.00;false")
	assert.Contains(t, lineas[2], "TOTAL;;;12;;;45.00;")
}

func TestVentasCSV(t *testing.T) {
	reporte := &dto.ReporteVentasResponse{
		Desde: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Hasta: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Ventas: []dto.VentaResponse{
			{
				Fecha:      time.Date(2025, 3, 10, 11, 30, 0, 0, time.UTC),
				MetodoPago: "EFECTIVO",
				Cliente:    "José García",
				Detalles:   []dto.DetalleVentaResponse{{Cantidad: 2}},
				Subtotal:   decimal.RequireFromString("7.50"),
				Descuento:  decimal.Zero,
				Total:      decimal.RequireFromString("7.50"),
			},
		},
		Estadisticas: dto.EstadisticasVentasResponse{
			TotalVentas:  decimal.RequireFromString("7.50"),
			NumeroVentas: 1,
		},
	}

	raw, err := NewCSVExporter().Ventas(reporte)
	require.NoError(t, err)

	assert.Contains(t, string(raw), "Jos\xe9 Garc\xeda")

	decodificado, _, err := transform.String(charmap.ISO8859_1.NewDecoder(), string(raw))
	require.NoError(t, err)
	lineas := strings.Split(strings.TrimSpace(decodificado), "\n")
	require.Len(t, lineas, 3) // cabecera + venta + totales
	assert.Equal(t, "fecha;metodo_pago;cliente;lineas;subtotal;descuento;total", lineas[0])
	assert.Contains(t, lineas[1], "2025-03-10 11:30;EFECTIVO;José García;1;7.50;0.00;7.50")
	assert.Contains(t, lineas[2], "TOTAL;;;1;;;7.50")
}
