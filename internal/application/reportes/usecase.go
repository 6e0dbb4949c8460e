// Package reportes arma los reportes de gestión: ventas por rango,
// inventario valorizado y el resumen del panel principal. Los cálculos
// viven aquí; PDF y CSV son salidas intercambiables detrás de puertos.
package reportes

import (
	"time"

	"github.com/shopspring/decimal"

	appalertas "github.com/farmaplus/farmacia-api/internal/application/alertas"
	"github.com/farmaplus/farmacia-api/internal/application/dto"
	"github.com/farmaplus/farmacia-api/internal/application/pedidos"
	"github.com/farmaplus/farmacia-api/internal/application/ventas"
	"github.com/farmaplus/farmacia-api/internal/domain"
	"github.com/farmaplus/farmacia-api/internal/domain/repository"
)

// UseCase caso de uso de reportes y dashboard.
type UseCase struct {
	ventasUC     *ventas.UseCase
	pedidosUC    *pedidos.UseCase
	alertasUC    *appalertas.UseCase
	productoRepo repository.ProductoRepository
	ventaRepo    repository.VentaRepository
	pdf          GeneradorPDF
	csv          ExportadorCSV
	ahora        func() time.Time
}

// NewUseCase construye el caso de uso. ahora permite inyectar un reloj fijo
// en tests; nil usa time.Now.
func NewUseCase(
	ventasUC *ventas.UseCase,
	pedidosUC *pedidos.UseCase,
	alertasUC *appalertas.UseCase,
	productoRepo repository.ProductoRepository,
	ventaRepo repository.VentaRepository,
	pdf GeneradorPDF,
	csv ExportadorCSV,
	ahora func() time.Time,
) *UseCase {
	if ahora == nil {
		ahora = time.Now
	}
	return &UseCase{
		ventasUC:     ventasUC,
		pedidosUC:    pedidosUC,
		alertasUC:    alertasUC,
		productoRepo: productoRepo,
		ventaRepo:    ventaRepo,
		pdf:          pdf,
		csv:          csv,
		ahora:        ahora,
	}
}

// ReporteVentas calcula el reporte de ventas del rango [desde, hasta).
func (uc *UseCase) ReporteVentas(desde, hasta time.Time) (*dto.ReporteVentasResponse, error) {
	if hasta.Before(desde) {
		return nil, domain.ErrInvalidInput
	}
	lista, err := uc.ventaRepo.ListPorRango(desde, hasta)
	if err != nil {
		return nil, err
	}
	stats, err := uc.ventasUC.EstadisticasPorRango(desde, hasta)
	if err != nil {
		return nil, err
	}
	porMetodo := make(map[string]decimal.Decimal)
	for _, v := range lista {
		acumulado, ok := porMetodo[v.MetodoPago]
		if !ok {
			acumulado = decimal.Zero
		}
		porMetodo[v.MetodoPago] = acumulado.Add(v.Total)
	}
	return &dto.ReporteVentasResponse{
		Desde:            desde,
		Hasta:            hasta,
		Ventas:           ventas.ToListResponse(lista).Items,
		Estadisticas:     *stats,
		TotalesPorMetodo: porMetodo,
	}, nil
}

// ReporteVentasPDF calcula el reporte de ventas y lo rinde como PDF.
func (uc *UseCase) ReporteVentasPDF(desde, hasta time.Time) ([]byte, error) {
	reporte, err := uc.ReporteVentas(desde, hasta)
	if err != nil {
		return nil, err
	}
	return uc.pdf.ReporteVentas(reporte)
}

// ReporteVentasCSV calcula el reporte de ventas y lo exporta como CSV.
func (uc *UseCase) ReporteVentasCSV(desde, hasta time.Time) ([]byte, error) {
	reporte, err := uc.ReporteVentas(desde, hasta)
	if err != nil {
		return nil, err
	}
	return uc.csv.Ventas(reporte)
}

// ReporteInventario calcula el inventario valorizado a fecha de hoy.
func (uc *UseCase) ReporteInventario() (*dto.ReporteInventarioResponse, error) {
	productos, err := uc.productoRepo.ListActivos()
	if err != nil {
		return nil, err
	}
	reporte := &dto.ReporteInventarioResponse{
		Fecha:      uc.ahora(),
		Lineas:     make([]dto.LineaInventarioResponse, 0, len(productos)),
		ValorTotal: decimal.Zero,
	}
	for _, p := range productos {
		valor := p.Precio.Mul(decimal.NewFromInt(int64(p.Stock)))
		reporte.Lineas = append(reporte.Lineas, dto.LineaInventarioResponse{
			ProductoID:  p.ID,
			Codigo:      p.Codigo,
			Nombre:      p.Nombre,
			Categoria:   p.Categoria,
			Stock:       p.Stock,
			StockMinimo: p.StockMinimo,
			Precio:      p.Precio,
			Valor:       valor,
			StockBajo:   p.StockBajo(),
		})
		reporte.ValorTotal = reporte.ValorTotal.Add(valor)
		reporte.Unidades += p.Stock
	}
	return reporte, nil
}

// ReporteInventarioPDF calcula el inventario valorizado y lo rinde como PDF.
func (uc *UseCase) ReporteInventarioPDF() ([]byte, error) {
	reporte, err := uc.ReporteInventario()
	if err != nil {
		return nil, err
	}
	return uc.pdf.ReporteInventario(reporte)
}

// ReporteInventarioCSV calcula el inventario valorizado y lo exporta a CSV.
func (uc *UseCase) ReporteInventarioCSV() ([]byte, error) {
	reporte, err := uc.ReporteInventario()
	if err != nil {
		return nil, err
	}
	return uc.csv.Inventario(reporte)
}

// Dashboard arma el resumen del panel: ventas del día, pedidos por situación
// y alertas vigentes.
func (uc *UseCase) Dashboard() (*dto.DashboardResponse, error) {
	ventasHoy, err := uc.ventasUC.EstadisticasDelDia()
	if err != nil {
		return nil, err
	}
	pedidosStats, err := uc.pedidosUC.Estadisticas()
	if err != nil {
		return nil, err
	}
	alertasStats, err := uc.alertasUC.ObtenerEstadisticas()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		VentasHoy: *ventasHoy,
		Pedidos:   *pedidosStats,
		Alertas:   *alertasStats,
	}, nil
}
