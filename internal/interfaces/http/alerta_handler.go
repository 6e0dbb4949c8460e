package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmaplus/farmacia-api/internal/application/alertas"
	"github.com/farmaplus/farmacia-api/internal/application/dto"
)

// AlertaHandler expone las alertas operativas evaluadas bajo demanda
// (protegido).
type AlertaHandler struct {
	uc *alertas.UseCase
}

// NewAlertaHandler construye el handler.
func NewAlertaHandler(uc *alertas.UseCase) *AlertaHandler {
	return &AlertaHandler{uc: uc}
}

// List godoc
// @Summary      Todas las alertas vigentes, críticas primero
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertaListResponse
// @Router       /api/alertas [get]
func (h *AlertaHandler) List(c *fiber.Ctx) error {
	lista, err := h.uc.ObtenerTodas()
	if err != nil {
		return responderError(c, err)
	}
	items := alertas.ToResponse(lista)
	return c.JSON(dto.AlertaListResponse{Items: items, Total: len(items)})
}

// ListCriticas godoc
// @Summary      Solo las alertas críticas (caducidades y retrasos)
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertaListResponse
// @Router       /api/alertas/criticas [get]
func (h *AlertaHandler) ListCriticas(c *fiber.Ctx) error {
	lista, err := h.uc.ObtenerCriticas()
	if err != nil {
		return responderError(c, err)
	}
	items := alertas.ToResponse(lista)
	return c.JSON(dto.AlertaListResponse{Items: items, Total: len(items)})
}

// Estadisticas godoc
// @Summary      Conteo de alertas por tipo
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EstadisticasAlertasResponse
// @Router       /api/alertas/estadisticas [get]
func (h *AlertaHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.ObtenerEstadisticas()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
