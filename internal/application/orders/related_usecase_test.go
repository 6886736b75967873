package orders_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ordenes-api/internal/application/orders"
	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

type fakeMovementRepo struct {
	movements []*entity.Movement
	err       error
}

func (f *fakeMovementRepo) ListRelatedByOrder(_ context.Context, orderID string) ([]*entity.Movement, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.movements, nil
}

func movement(id, docType, docNo string, day int) *entity.Movement {
	return &entity.Movement{
		ID:           id,
		DocType:      docType,
		DocNo:        docNo,
		Status:       "Posted",
		WarehouseID:  "wh-1",
		MovementDate: time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC),
	}
}

func TestListRelated_ClasificaMovimientos(t *testing.T) {
	orderRepo := &fakeOrderRepo{order: salesOrder("Partially Shipped")}
	movRepo := &fakeMovementRepo{movements: []*entity.Movement{
		movement("mv-1", "Shipment", "SH-001", 12),
		movement("mv-2", "Return_In", "RI-001", 14),
		movement("mv-3", "Adjustment", "ADJ-001", 15),
	}}
	uc := orders.NewRelatedUseCase(orderRepo, movRepo, &fakeInvoiceLineRepo{})

	got, err := uc.ListRelated(context.Background(), entity.DocTypeSalesOrder, "so-1")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "truck", got[0].Icon)
	assert.Equal(t, "/shipments/mv-1", got[0].Route)

	assert.Equal(t, "Return (Inbound)", got[1].Label)
	assert.Equal(t, "/returns/mv-2", got[1].Route)

	// Adjustment navega pero con presentación genérica.
	assert.Equal(t, "document", got[2].Icon)
	assert.Equal(t, "/adjustments/mv-3", got[2].Route)
}

func TestListRelated_DocumentoInexistente(t *testing.T) {
	uc := orders.NewRelatedUseCase(&fakeOrderRepo{}, &fakeMovementRepo{}, &fakeInvoiceLineRepo{})

	_, err := uc.ListRelated(context.Background(), entity.DocTypeSalesOrder, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Las facturas solo existen para órdenes de venta; otros tipos devuelven
// lista vacía sin consultar el repositorio.
func TestListInvoices_SoloVentas(t *testing.T) {
	po := &entity.Order{ID: "po-1", DocType: entity.DocTypePurchaseOrder, DocNo: "PO-1", Status: "Received"}
	uc := orders.NewRelatedUseCase(&fakeOrderRepo{order: po}, &fakeMovementRepo{}, &fakeInvoiceLineRepo{})

	got, err := uc.ListInvoices(context.Background(), entity.DocTypePurchaseOrder, "po-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListInvoices_OrdenDeVenta(t *testing.T) {
	invRepo := &fakeInvoiceLineRepo{lines: []*entity.InvoiceLine{{
		ID:          "il-1",
		InvoiceID:   "inv-1",
		InvoiceNo:   "F-001",
		SOLineID:    "l2",
		QtyInvoiced: decimal.NewFromInt(5),
		InvoiceDate: time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
	}}}
	uc := orders.NewRelatedUseCase(&fakeOrderRepo{order: salesOrder("Partially Shipped")}, &fakeMovementRepo{}, invRepo)

	got, err := uc.ListInvoices(context.Background(), entity.DocTypeSalesOrder, "so-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "F-001", got[0].InvoiceNo)
	assert.Equal(t, "5", got[0].QtyInvoiced.String())
}

// El historial mezcla movimientos y facturas, más reciente primero.
func TestListHistory_OrdenCronologico(t *testing.T) {
	movRepo := &fakeMovementRepo{movements: []*entity.Movement{
		movement("mv-1", "Shipment", "SH-001", 12),
	}}
	invRepo := &fakeInvoiceLineRepo{lines: []*entity.InvoiceLine{{
		ID:          "il-1",
		InvoiceID:   "inv-1",
		InvoiceNo:   "F-001",
		SOLineID:    "l1",
		InvoiceDate: time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC),
	}}}
	uc := orders.NewRelatedUseCase(&fakeOrderRepo{order: salesOrder("Partially Shipped")}, movRepo, invRepo)

	got, err := uc.ListHistory(context.Background(), entity.DocTypeSalesOrder, "so-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "invoice", got[0].Kind, "la factura es más reciente que el despacho")
	assert.Equal(t, "movement", got[1].Kind)
	assert.Equal(t, "/invoices/inv-1", got[0].Route)
}
