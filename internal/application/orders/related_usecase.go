package orders

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/Ordenes-api/internal/application/dto"
	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/actions"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

// RelatedUseCase resuelve las vistas secundarias de un documento: movimientos
// relacionados, historial y líneas de factura. Cada consulta es independiente
// de las demás y falla por separado; ninguna bloquea el detalle principal.
type RelatedUseCase struct {
	orderRepo       repository.OrderRepository
	movementRepo    repository.MovementRepository
	invoiceLineRepo repository.InvoiceLineRepository
}

// NewRelatedUseCase construye el caso de uso.
func NewRelatedUseCase(
	orderRepo repository.OrderRepository,
	movementRepo repository.MovementRepository,
	invoiceLineRepo repository.InvoiceLineRepository,
) *RelatedUseCase {
	return &RelatedUseCase{orderRepo: orderRepo, movementRepo: movementRepo, invoiceLineRepo: invoiceLineRepo}
}

// requireOrder valida que el documento exista con el tipo pedido.
func (uc *RelatedUseCase) requireOrder(ctx context.Context, docType entity.DocType, id string) (*entity.Order, error) {
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
	return order, nil
}

// ListRelated devuelve los movimientos alcanzables desde el documento vía
// fulfillment links, clasificados para presentación.
func (uc *RelatedUseCase) ListRelated(ctx context.Context, docType entity.DocType, id string) ([]dto.RelatedMovementDTO, error) {
	order, err := uc.requireOrder(ctx, docType, id)
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.ListRelatedByOrder(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos relacionados: %w", err)
	}

	out := make([]dto.RelatedMovementDTO, 0, len(movements))
	for _, m := range movements {
		aff, _ := actions.ClassifyRelated(m.DocType)
		out = append(out, dto.RelatedMovementDTO{
			ID:             m.ID,
			DocType:        m.DocType,
			Label:          actions.RelatedLabel(m.DocType),
			DocNo:          m.DocNo,
			Status:         m.Status,
			PhysicalStatus: m.PhysicalStatus,
			Icon:           aff.Icon,
			Color:          aff.Color,
			Route:          actions.RecordRoute(m.DocType, m.ID),
			MovementDate:   m.MovementDate,
		})
	}
	return out, nil
}

// ListInvoices devuelve las líneas de factura del documento. Solo las órdenes
// de venta se facturan; para los demás tipos la lista es vacía.
func (uc *RelatedUseCase) ListInvoices(ctx context.Context, docType entity.DocType, id string) ([]dto.InvoiceLineDTO, error) {
	order, err := uc.requireOrder(ctx, docType, id)
	if err != nil {
		return nil, err
	}
	if order.DocType != entity.DocTypeSalesOrder {
		return []dto.InvoiceLineDTO{}, nil
	}
	invLines, err := uc.invoiceLineRepo.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("listar líneas de factura: %w", err)
	}
	out := make([]dto.InvoiceLineDTO, 0, len(invLines))
	for _, il := range invLines {
		out = append(out, dto.InvoiceLineDTO{
			ID:          il.ID,
			InvoiceID:   il.InvoiceID,
			InvoiceNo:   il.InvoiceNo,
			SOLineID:    il.SOLineID,
			QtyInvoiced: il.QtyInvoiced,
			UnitPrice:   il.UnitPrice,
			Amount:      il.Amount,
			InvoiceDate: il.InvoiceDate,
		})
	}
	return out, nil
}

// ListHistory mezcla movimientos y facturas en una línea de tiempo, más
// reciente primero.
func (uc *RelatedUseCase) ListHistory(ctx context.Context, docType entity.DocType, id string) ([]dto.HistoryEntryDTO, error) {
	order, err := uc.requireOrder(ctx, docType, id)
	if err != nil {
		return nil, err
	}

	movements, err := uc.movementRepo.ListRelatedByOrder(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos para historial: %w", err)
	}

	entries := make([]dto.HistoryEntryDTO, 0, len(movements))
	for _, m := range movements {
		entries = append(entries, dto.HistoryEntryDTO{
			At:          m.MovementDate,
			Kind:        "movement",
			RefID:       m.ID,
			DocNo:       m.DocNo,
			Description: actions.RelatedLabel(m.DocType) + " " + m.DocNo,
			Route:       actions.RecordRoute(m.DocType, m.ID),
		})
	}

	if order.DocType == entity.DocTypeSalesOrder {
		invLines, err := uc.invoiceLineRepo.ListByOrder(ctx, order.ID)
		if err != nil {
			return nil, fmt.Errorf("listar facturas para historial: %w", err)
		}
		for _, il := range invLines {
			entries = append(entries, dto.HistoryEntryDTO{
				At:          il.InvoiceDate,
				Kind:        "invoice",
				RefID:       il.InvoiceID,
				DocNo:       il.InvoiceNo,
				Description: "Invoice " + il.InvoiceNo,
				Route:       "/invoices/" + il.InvoiceID,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].At.After(entries[j].At)
	})
	return entries, nil
}
