package orders

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/application/dto"
	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/actions"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/fulfillment"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
	"github.com/jhoicas/Ordenes-api/pkg/logger"
)

// DetailUseCase arma el agregado completo de un documento comercial: cabecera,
// líneas con métricas de cumplimiento/facturación, indicador de faltantes y
// acciones siguientes. No posee reglas propias: normaliza lo que devuelven los
// repositorios y delega el cómputo en los paquetes de dominio.
type DetailUseCase struct {
	orderRepo       repository.OrderRepository
	invoiceLineRepo repository.InvoiceLineRepository
	log             *logger.Logger
}

// NewDetailUseCase construye el caso de uso.
func NewDetailUseCase(
	orderRepo repository.OrderRepository,
	invoiceLineRepo repository.InvoiceLineRepository,
	log *logger.Logger,
) *DetailUseCase {
	return &DetailUseCase{orderRepo: orderRepo, invoiceLineRepo: invoiceLineRepo, log: log}
}

// GetOrderDetail obtiene cabecera y líneas (lectura atómica: cualquier fallo
// ahí es terminal) y luego los totales facturados para órdenes de venta. Un
// fallo en los totales facturados no bloquea el contenido principal: se
// registra y las métricas de facturación se omiten de la respuesta.
func (uc *DetailUseCase) GetOrderDetail(ctx context.Context, docType entity.DocType, id string) (*dto.OrderDetailResponse, error) {
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

	var invoicedTotals map[string]decimal.Decimal
	if order.DocType == entity.DocTypeSalesOrder && len(lines) > 0 {
		ids := make([]string, len(lines))
		for i, l := range lines {
			ids[i] = l.ID
		}
		totals, err := uc.invoiceLineRepo.TotalsByLineIDs(ctx, ids)
		if err != nil {
			uc.log.Warn().Err(err).Str("order_id", order.ID).
				Msg("totales facturados no disponibles, se omiten métricas de facturación")
		} else {
			invoicedTotals = totals
			// Consulta exitosa sin filas: facturado cero, no degradación.
			if invoicedTotals == nil {
				invoicedTotals = map[string]decimal.Decimal{}
			}
		}
	}

	return assembleDetail(order, lines, invoicedTotals), nil
}

// assembleDetail normaliza el resultado crudo de los repositorios al agregado
// de vista. Función pura: probada con fixtures en memoria.
func assembleDetail(order *entity.Order, lines []*entity.OrderLine, invoicedTotals map[string]decimal.Decimal) *dto.OrderDetailResponse {
	out := &dto.OrderDetailResponse{
		Header: dto.OrderHeaderDTO{
			ID:             order.ID,
			DocType:        string(order.DocType),
			DocNo:          order.DocNo,
			Status:         order.Status,
			CustomerID:     order.CustomerID,
			SupplierID:     order.SupplierID,
			WarehouseID:    order.WarehouseID,
			ToWarehouseID:  order.ToWarehouseID,
			PaymentTermsID: order.PaymentTermsID,
			OrderDate:      order.OrderDate,
			ExpectedDate:   order.ExpectedDate,
			Notes:          order.Notes,
		},
		Lines:          make([]dto.OrderLineDTO, 0, len(lines)),
		HasUnfulfilled: fulfillment.HasUnfulfilled(lines),
	}

	for _, line := range lines {
		fulfilled, pct := fulfillment.LineProgress(*line)
		lineDTO := dto.OrderLineDTO{
			ID:          line.ID,
			LineNo:      line.LineNo,
			ItemID:      line.ItemID,
			ItemName:    line.ItemName,
			ItemSKU:     line.ItemSKU,
			WarehouseID: line.WarehouseID,
			QtyOrdered:  line.QtyOrdered,
			LotNumber:   line.LotNumber,
			ExpiryDate:  line.ExpiryDate,
			Fulfilled:   fulfilled,
			Fulfillment: progressDTO(pct, fulfillment.ClassifyFulfillment(pct)),
			Tags:        tagDTOs(line.Tags),
		}
		// Métricas de facturación solo para órdenes de venta con totales
		// disponibles; la ausencia de facturas cuenta como cero.
		if order.DocType == entity.DocTypeSalesOrder && invoicedTotals != nil {
			invoiced, invPct := fulfillment.InvoicedProgress(*line, invoicedTotals[line.ID])
			invProgress := progressDTO(invPct, fulfillment.ClassifyInvoiced(invPct))
			lineDTO.Invoiced = &invoiced
			lineDTO.Invoicing = &invProgress
		}

		out.Lines = append(out.Lines, lineDTO)
	}

	for _, a := range actions.Resolve(order.DocType, order.Status, out.HasUnfulfilled, order.ID) {
		out.Actions = append(out.Actions, dto.ActionDTO{
			Command: string(a.Command),
			Label:   a.Label,
			Route:   a.Route,
		})
	}
	return out
}

func progressDTO(pct int, p fulfillment.Progress) dto.ProgressDTO {
	return dto.ProgressDTO{
		Percentage: pct,
		State:      string(p.State),
		Label:      p.Label,
		Severity:   int(p.Severity),
	}
}

func tagDTOs(tags []entity.Tag) []dto.TagDTO {
	out := make([]dto.TagDTO, 0, len(tags))
	for _, t := range tags {
		out = append(out, dto.TagDTO{ID: t.ID, Name: t.Name, Color: t.Color, Description: t.Description})
	}
	return out
}
