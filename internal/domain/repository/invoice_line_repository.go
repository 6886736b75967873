package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

// InvoiceLineRepository define el puerto de lectura de líneas de factura
// asociadas a líneas de orden de venta.
type InvoiceLineRepository interface {
	// TotalsByLineIDs suma qty_invoiced por línea de orden de venta. Líneas
	// sin facturas no aparecen en el mapa (ausencia = cero).
	TotalsByLineIDs(ctx context.Context, lineIDs []string) (map[string]decimal.Decimal, error)
	// ListByOrder devuelve las líneas de factura de todas las líneas del
	// documento, ordenadas por fecha de factura descendente.
	ListByOrder(ctx context.Context, orderID string) ([]*entity.InvoiceLine, error)
}
