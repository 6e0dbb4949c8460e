package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmaplus/farmacia-api/internal/application/dto"
	"github.com/farmaplus/farmacia-api/internal/application/ventas"
)

// VentaHandler maneja el registro y consulta de ventas (protegido).
type VentaHandler struct {
	uc *ventas.UseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *ventas.UseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar una venta (descuenta stock de forma atómica)
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVentaRequest  true  "Líneas de venta"
// @Success      201   {object}  dto.VentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Stock insuficiente"
// @Router       /api/ventas [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	v, err := h.uc.RegistrarVenta(c.UserContext(), GetUserID(c), &in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ventas.ToResponse(v))
}

// List godoc
// @Summary      Listar ventas activas (opcionalmente por rango o método de pago)
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        desde        query  string  false  "Fecha inicial (2006-01-02)"
// @Param        hasta        query  string  false  "Fecha final, exclusiva (2006-01-02)"
// @Param        metodo_pago  query  string  false  "EFECTIVO, TARJETA o TRANSFERENCIA"
// @Success      200  {object}  dto.VentaListResponse
// @Router       /api/ventas [get]
func (h *VentaHandler) List(c *fiber.Ctx) error {
	if c.Query("desde") != "" || c.Query("hasta") != "" {
		desde, err := parseFecha(c.Query("desde"))
		if err != nil {
			return responderError(c, err)
		}
		hasta, err := parseFecha(c.Query("hasta"))
		if err != nil {
			return responderError(c, err)
		}
		lista, err := h.uc.ListarPorRango(desde, hasta)
		if err != nil {
			return responderError(c, err)
		}
		return c.JSON(ventas.ToListResponse(lista))
	}
	if mp := c.Query("metodo_pago"); mp != "" {
		lista, err := h.uc.ListarPorMetodoPago(mp)
		if err != nil {
			return responderError(c, err)
		}
		return c.JSON(ventas.ToListResponse(lista))
	}
	lista, err := h.uc.ListarActivas()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(ventas.ToListResponse(lista))
}

// ListDelDia godoc
// @Summary      Ventas del día en curso
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.VentaListResponse
// @Router       /api/ventas/dia [get]
func (h *VentaHandler) ListDelDia(c *fiber.Ctx) error {
	lista, err := h.uc.ListarDelDia()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(ventas.ToListResponse(lista))
}

// ListUltimas godoc
// @Summary      Últimas n ventas (10 por defecto)
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        n  query  int  false  "Número de ventas"
// @Success      200  {object}  dto.VentaListResponse
// @Router       /api/ventas/ultimas [get]
func (h *VentaHandler) ListUltimas(c *fiber.Ctx) error {
	lista, err := h.uc.ListarUltimas(c.QueryInt("n"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(ventas.ToListResponse(lista))
}

// Estadisticas godoc
// @Summary      Estadísticas de ventas del día en curso
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EstadisticasVentasResponse
// @Router       /api/ventas/estadisticas [get]
func (h *VentaHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.EstadisticasDelDia()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.VentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	v, err := h.uc.ObtenerPorID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(ventas.ToResponse(v))
}

// Anular godoc
// @Summary      Anular una venta y restaurar el stock vendido
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.AnularVentaRequest  true  "Motivo de la anulación"
// @Success      200   {object}  dto.VentaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Venta ya anulada"
// @Router       /api/ventas/{id}/anular [post]
func (h *VentaHandler) Anular(c *fiber.Ctx) error {
	var in dto.AnularVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	v, err := h.uc.AnularVenta(c.UserContext(), c.Params("id"), in.Motivo)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(ventas.ToResponse(v))
}
