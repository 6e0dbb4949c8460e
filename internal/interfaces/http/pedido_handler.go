package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/farmaplus/farmacia-api/internal/application/dto"
	"github.com/farmaplus/farmacia-api/internal/application/pedidos"
	"github.com/farmaplus/farmacia-api/internal/domain/entity"
)

// PedidoHandler maneja el ciclo de vida de los pedidos a proveedor (protegido).
type PedidoHandler struct {
	uc *pedidos.UseCase
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(uc *pedidos.UseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido a proveedor (nace en borrador)
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePedidoRequest  true  "Datos del pedido"
// @Success      201   {object}  dto.PedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pedidos [post]
func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p, err := h.uc.Crear(c.UserContext(), GetUserID(c), &in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(pedidos.ToResponse(p))
}

// List godoc
// @Summary      Listar pedidos activos (opcionalmente por estado)
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "BORRADOR, ENVIADO, CONFIRMADO, EN_TRANSITO, RECIBIDO o CANCELADO"
// @Success      200  {object}  dto.PedidoListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pedidos [get]
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	if e := c.Query("estado"); e != "" {
		lista, err := h.uc.ListarPorEstado(entity.EstadoPedido(strings.ToUpper(e)))
		if err != nil {
			return responderError(c, err)
		}
		return c.JSON(pedidos.ToListResponse(lista))
	}
	lista, err := h.uc.ListarActivos()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(pedidos.ToListResponse(lista))
}

// ListPendientes godoc
// @Summary      Pedidos en curso (ni recibidos ni cancelados)
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PedidoListResponse
// @Router       /api/pedidos/pendientes [get]
func (h *PedidoHandler) ListPendientes(c *fiber.Ctx) error {
	lista, err := h.uc.ListarPendientes()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(pedidos.ToListResponse(lista))
}

// Estadisticas godoc
// @Summary      Conteo de pedidos por situación
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EstadisticasPedidosResponse
// @Router       /api/pedidos/estadisticas [get]
func (h *PedidoHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estadisticas()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido por ID
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.PedidoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [get]
func (h *PedidoHandler) GetByID(c *fiber.Ctx) error {
	p, err := h.uc.ObtenerPorID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(pedidos.ToResponse(p))
}

// Update godoc
// @Summary      Modificar un pedido en borrador
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdatePedidoRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PedidoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "El pedido ya no es editable"
// @Router       /api/pedidos/{id} [put]
func (h *PedidoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p, err := h.uc.Actualizar(c.UserContext(), c.Params("id"), &in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(pedidos.ToResponse(p))
}

// CambiarEstado godoc
// @Summary      Transicionar el estado del pedido
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.CambiarEstadoRequest  true  "Estado destino"
// @Success      200   {object}  dto.PedidoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Transición no permitida"
// @Router       /api/pedidos/{id}/estado [put]
func (h *PedidoHandler) CambiarEstado(c *fiber.Ctx) error {
	var in dto.CambiarEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p, err := h.uc.CambiarEstado(c.UserContext(), c.Params("id"), entity.EstadoPedido(strings.ToUpper(in.Estado)))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(pedidos.ToResponse(p))
}

// Recibir godoc
// @Summary      Recibir el pedido e incorporar las cantidades al stock
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.RecibirPedidoRequest  false  "Cantidades recibidas por línea"
// @Success      200   {object}  dto.PedidoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Transición no permitida"
// @Router       /api/pedidos/{id}/recibir [post]
func (h *PedidoHandler) Recibir(c *fiber.Ctx) error {
	var in dto.RecibirPedidoRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	p, err := h.uc.Recibir(c.UserContext(), c.Params("id"), in.CantidadesRecibidas)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(pedidos.ToResponse(p))
}

// Cancelar godoc
// @Summary      Cancelar el pedido
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.CancelarPedidoRequest  false  "Motivo de la cancelación"
// @Success      200   {object}  dto.PedidoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "El pedido ya es terminal"
// @Router       /api/pedidos/{id}/cancelar [post]
func (h *PedidoHandler) Cancelar(c *fiber.Ctx) error {
	var in dto.CancelarPedidoRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	p, err := h.uc.Cancelar(c.UserContext(), c.Params("id"), in.Motivo)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(pedidos.ToResponse(p))
}

// Delete godoc
// @Summary      Desactivar pedido (solo borradores o terminales)
// @Tags         pedidos
// @Security     Bearer
// @Param        id  path  string  true  "ID del pedido"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [delete]
func (h *PedidoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.UserContext(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
