package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/farmaplus/farmacia-api/internal/application/reportes"
)

// ReporteHandler expone los reportes en JSON, PDF y CSV (protegido).
type ReporteHandler struct {
	uc *reportes.UseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *reportes.UseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// Ventas godoc
// @Summary      Reporte de ventas de un rango de fechas
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  true  "Fecha inicial (2006-01-02)"
// @Param        hasta  query  string  true  "Fecha final, exclusiva (2006-01-02)"
// @Success      200  {object}  dto.ReporteVentasResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/ventas [get]
func (h *ReporteHandler) Ventas(c *fiber.Ctx) error {
	desde, hasta, err := rangoReporte(c)
	if err != nil {
		return responderError(c, err)
	}
	out, err := h.uc.ReporteVentas(desde, hasta)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// VentasPDF godoc
// @Summary      Reporte de ventas en PDF
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Param        desde  query  string  true  "Fecha inicial (2006-01-02)"
// @Param        hasta  query  string  true  "Fecha final, exclusiva (2006-01-02)"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/ventas/pdf [get]
func (h *ReporteHandler) VentasPDF(c *fiber.Ctx) error {
	desde, hasta, err := rangoReporte(c)
	if err != nil {
		return responderError(c, err)
	}
	data, err := h.uc.ReporteVentasPDF(desde, hasta)
	if err != nil {
		return responderError(c, err)
	}
	nombre := fmt.Sprintf("ventas_%s_%s.pdf", desde.Format("20060102"), hasta.Format("20060102"))
	return enviarArchivo(c, data, "application/pdf", nombre)
}

// VentasCSV godoc
// @Summary      Reporte de ventas en CSV (latin-1, separado por punto y coma)
// @Tags         reportes
// @Security     Bearer
// @Produce      text/csv
// @Param        desde  query  string  true  "Fecha inicial (2006-01-02)"
// @Param        hasta  query  string  true  "Fecha final, exclusiva (2006-01-02)"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/ventas/csv [get]
func (h *ReporteHandler) VentasCSV(c *fiber.Ctx) error {
	desde, hasta, err := rangoReporte(c)
	if err != nil {
		return responderError(c, err)
	}
	data, err := h.uc.ReporteVentasCSV(desde, hasta)
	if err != nil {
		return responderError(c, err)
	}
	nombre := fmt.Sprintf("ventas_%s_%s.csv", desde.Format("20060102"), hasta.Format("20060102"))
	return enviarArchivo(c, data, "text/csv; charset=ISO-8859-1", nombre)
}

// Inventario godoc
// @Summary      Reporte de inventario valorado
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReporteInventarioResponse
// @Router       /api/reportes/inventario [get]
func (h *ReporteHandler) Inventario(c *fiber.Ctx) error {
	out, err := h.uc.ReporteInventario()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// InventarioPDF godoc
// @Summary      Reporte de inventario en PDF
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  file
// @Router       /api/reportes/inventario/pdf [get]
func (h *ReporteHandler) InventarioPDF(c *fiber.Ctx) error {
	data, err := h.uc.ReporteInventarioPDF()
	if err != nil {
		return responderError(c, err)
	}
	return enviarArchivo(c, data, "application/pdf", "inventario.pdf")
}

// InventarioCSV godoc
// @Summary      Inventario en CSV (latin-1, separado por punto y coma)
// @Tags         reportes
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {file}  file
// @Router       /api/reportes/inventario/csv [get]
func (h *ReporteHandler) InventarioCSV(c *fiber.Ctx) error {
	data, err := h.uc.ReporteInventarioCSV()
	if err != nil {
		return responderError(c, err)
	}
	return enviarArchivo(c, data, "text/csv; charset=ISO-8859-1", "inventario.csv")
}

// Dashboard godoc
// @Summary      Resumen del día: ventas, pedidos y alertas
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/reportes/dashboard [get]
func (h *ReporteHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

func rangoReporte(c *fiber.Ctx) (time.Time, time.Time, error) {
	desde, err := parseFecha(c.Query("desde"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	hasta, err := parseFecha(c.Query("hasta"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return desde, hasta, nil
}

func enviarArchivo(c *fiber.Ctx, data []byte, contentType, nombre string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, nombre))
	return c.Send(data)
}
