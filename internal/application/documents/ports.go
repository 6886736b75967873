// Package documents genera la representación imprimible de un documento
// comercial.
package documents

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

// LineForPDF línea ya resuelta para el render: cantidades y estado de
// cumplimiento calculados.
type LineForPDF struct {
	LineNo      int
	ItemName    string
	ItemSKU     string
	QtyOrdered  decimal.Decimal
	Fulfilled   decimal.Decimal
	Percentage  int
	StatusLabel string
}

// OrderPDFGenerator puerto de render del documento imprimible.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.Order, lines []LineForPDF) ([]byte, error)
}
