package documents

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/fulfillment"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

// PDFUseCase arma los datos del documento imprimible y delega el render en el
// generador.
type PDFUseCase struct {
	orderRepo repository.OrderRepository
	generator OrderPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(orderRepo repository.OrderRepository, generator OrderPDFGenerator) *PDFUseCase {
	return &PDFUseCase{orderRepo: orderRepo, generator: generator}
}

// GenerateOrderPDF genera el PDF del documento y devuelve sus bytes.
func (uc *PDFUseCase) GenerateOrderPDF(ctx context.Context, docType entity.DocType, id string) ([]byte, error) {
	if !docType.IsValid() {
		return nil, domain.ErrInvalidDocType
	}
	order, err := uc.orderRepo.GetByIDAndType(ctx, id, docType)
	if err != nil {
		return nil, fmt.Errorf("obtener documento: %w", err)
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.orderRepo.ListLines(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("listar líneas: %w", err)
	}

	pdfLines := make([]LineForPDF, 0, len(lines))
	for _, line := range lines {
		fulfilled, pct := fulfillment.LineProgress(*line)
		pdfLines = append(pdfLines, LineForPDF{
			LineNo:      line.LineNo,
			ItemName:    line.ItemName,
			ItemSKU:     line.ItemSKU,
			QtyOrdered:  line.QtyOrdered,
			Fulfilled:   fulfilled,
			Percentage:  pct,
			StatusLabel: fulfillment.ClassifyFulfillment(pct).Label,
		})
	}
	return uc.generator.GenerateOrderPDF(ctx, order, pdfLines)
}
