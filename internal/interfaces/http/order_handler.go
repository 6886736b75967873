package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ordenes-api/internal/application/documents"
	"github.com/jhoicas/Ordenes-api/internal/application/orders"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

// OrderHandler maneja las peticiones HTTP de documentos comerciales.
type OrderHandler struct {
	detail  *orders.DetailUseCase
	related *orders.RelatedUseCase
	pdf     *documents.PDFUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(detail *orders.DetailUseCase, related *orders.RelatedUseCase, pdf *documents.PDFUseCase) *OrderHandler {
	return &OrderHandler{detail: detail, related: related, pdf: pdf}
}

// parseDocType acepta el tipo en el path en cualquier caja (so, SO, po...).
func parseDocType(c *fiber.Ctx) entity.DocType {
	return entity.DocType(strings.ToUpper(c.Params("type")))
}

// GetDetail godoc
// @Summary      Detalle de un documento comercial
// @Description  Cabecera, líneas con métricas de cumplimiento/facturación,
//
//	indicador de faltantes y acciones siguientes disponibles.
//
// @Tags         orders
// @Produce      json
// @Param        type  path  string  true  "Tipo de documento (so, po, to)"
// @Param        id    path  string  true  "ID del documento (UUID)"
// @Success      200  {object}  dto.OrderDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{type}/{id} [get]
func (h *OrderHandler) GetDetail(c *fiber.Ctx) error {
	res, err := h.detail.GetOrderDetail(c.Context(), parseDocType(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(res)
}

// GetRelated godoc
// @Summary      Movimientos relacionados con el documento
// @Tags         orders
// @Produce      json
// @Param        type  path  string  true  "Tipo de documento (so, po, to)"
// @Param        id    path  string  true  "ID del documento (UUID)"
// @Success      200  {array}   dto.RelatedMovementDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{type}/{id}/related [get]
func (h *OrderHandler) GetRelated(c *fiber.Ctx) error {
	res, err := h.related.ListRelated(c.Context(), parseDocType(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(res)
}

// GetHistory godoc
// @Summary      Historial del documento (movimientos y facturas)
// @Tags         orders
// @Produce      json
// @Param        type  path  string  true  "Tipo de documento (so, po, to)"
// @Param        id    path  string  true  "ID del documento (UUID)"
// @Success      200  {array}   dto.HistoryEntryDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{type}/{id}/history [get]
func (h *OrderHandler) GetHistory(c *fiber.Ctx) error {
	res, err := h.related.ListHistory(c.Context(), parseDocType(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(res)
}

// GetInvoices godoc
// @Summary      Líneas de factura del documento (solo órdenes de venta)
// @Tags         orders
// @Produce      json
// @Param        type  path  string  true  "Tipo de documento (so, po, to)"
// @Param        id    path  string  true  "ID del documento (UUID)"
// @Success      200  {array}   dto.InvoiceLineDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{type}/{id}/invoices [get]
func (h *OrderHandler) GetInvoices(c *fiber.Ctx) error {
	res, err := h.related.ListInvoices(c.Context(), parseDocType(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(res)
}

// GetPDF godoc
// @Summary      Documento imprimible (PDF)
// @Tags         orders
// @Produce      application/pdf
// @Param        type  path  string  true  "Tipo de documento (so, po, to)"
// @Param        id    path  string  true  "ID del documento (UUID)"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{type}/{id}/pdf [get]
func (h *OrderHandler) GetPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.pdf.GenerateOrderPDF(c.Context(), parseDocType(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}
