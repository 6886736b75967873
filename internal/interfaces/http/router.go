package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ordenes-api/internal/application/documents"
	"github.com/jhoicas/Ordenes-api/internal/application/dto"
	"github.com/jhoicas/Ordenes-api/internal/application/orders"
	"github.com/jhoicas/Ordenes-api/internal/application/tags"
	"github.com/jhoicas/Ordenes-api/internal/domain"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DetailUC  *orders.DetailUseCase
	RelatedUC *orders.RelatedUseCase
	PDFUC     *documents.PDFUseCase
	TagUC     *tags.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	orderHandler := NewOrderHandler(deps.DetailUC, deps.RelatedUC, deps.PDFUC)
	ordersGroup := api.Group("/orders")
	ordersGroup.Get("/:type/:id", orderHandler.GetDetail)
	ordersGroup.Get("/:type/:id/related", orderHandler.GetRelated)
	ordersGroup.Get("/:type/:id/history", orderHandler.GetHistory)
	ordersGroup.Get("/:type/:id/invoices", orderHandler.GetInvoices)
	ordersGroup.Get("/:type/:id/pdf", orderHandler.GetPDF)

	tagHandler := NewTagHandler(deps.TagUC)
	tagsGroup := api.Group("/tags")
	tagsGroup.Get("/", tagHandler.List)
	tagsGroup.Post("/", tagHandler.Create)
	tagsGroup.Post("/:id/assign", tagHandler.BatchAssign)

	api.Delete("/lines/:lineID/tags/:tagID", tagHandler.Unassign)
}

// respondDomainError traduce errores de dominio a estados HTTP con cuerpo
// legible; cualquier otro error es un 500 con su mensaje.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidDocType), errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documento no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
