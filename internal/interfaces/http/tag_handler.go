package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ordenes-api/internal/application/dto"
	"github.com/jhoicas/Ordenes-api/internal/application/tags"
)

// TagHandler maneja las peticiones HTTP del catálogo de etiquetas y sus
// asignaciones a líneas.
type TagHandler struct {
	uc *tags.UseCase
}

// NewTagHandler construye el handler.
func NewTagHandler(uc *tags.UseCase) *TagHandler {
	return &TagHandler{uc: uc}
}

// List godoc
// @Summary      Catálogo de etiquetas
// @Tags         tags
// @Produce      json
// @Success      200  {array}   dto.TagDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/tags [get]
func (h *TagHandler) List(c *fiber.Ctx) error {
	res, err := h.uc.List(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(res)
}

// Create godoc
// @Summary      Crear una etiqueta
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTagRequest  true  "name, color, description"
// @Success      201  {object}  dto.TagDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/tags [post]
func (h *TagHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTagRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// BatchAssign godoc
// @Summary      Asignar una etiqueta a varias líneas
// @Description  Las inserciones son secuenciales y no atómicas: ante un fallo
//
//	se responde 409 con las líneas ya aplicadas, la línea del fallo
//	y su mensaje.
//
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la etiqueta"
// @Param        body  body  dto.BatchAssignRequest  true  "line_ids"
// @Success      200  {object}  dto.BatchAssignResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.BatchAssignResponse
// @Router       /api/tags/{id}/assign [post]
func (h *TagHandler) BatchAssign(c *fiber.Ctx) error {
	var in dto.BatchAssignRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.BatchAssign(c.Context(), c.Params("id"), in.LineIDs)
	if err != nil {
		// Fallo parcial: el resultado acompaña al error para reportar
		// qué líneas sí quedaron etiquetadas.
		if res != nil {
			return c.Status(fiber.StatusConflict).JSON(res)
		}
		return respondDomainError(c, err)
	}
	return c.JSON(res)
}

// Unassign godoc
// @Summary      Quitar una etiqueta de una línea
// @Tags         tags
// @Produce      json
// @Param        lineID  path  string  true  "ID de la línea"
// @Param        tagID   path  string  true  "ID de la etiqueta"
// @Success      204  "sin contenido"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/lines/{lineID}/tags/{tagID} [delete]
func (h *TagHandler) Unassign(c *fiber.Ctx) error {
	if err := h.uc.Unassign(c.Context(), c.Params("lineID"), c.Params("tagID")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
