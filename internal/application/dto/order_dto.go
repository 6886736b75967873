package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProgressDTO clasificación de un porcentaje de avance para presentación.
type ProgressDTO struct {
	Percentage int    `json:"percentage"`
	State      string `json:"state"`    // not_started, partial, complete
	Label      string `json:"label"`    // Not Started / Not Invoiced, Partial, Complete
	Severity   int    `json:"severity"` // 0 < 1 < 2, énfasis visual creciente
}

// ActionDTO acción siguiente disponible sobre el documento.
type ActionDTO struct {
	Command string `json:"command"`
	Label   string `json:"label"`
	Route   string `json:"route"`
}

// TagDTO etiqueta asignada a una línea o entrada del catálogo.
type TagDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
}

// OrderHeaderDTO cabecera del documento comercial.
type OrderHeaderDTO struct {
	ID             string     `json:"id"`
	DocType        string     `json:"doc_type"`
	DocNo          string     `json:"doc_no"`
	Status         string     `json:"status"`
	CustomerID     *string    `json:"customer_id,omitempty"`
	SupplierID     *string    `json:"supplier_id,omitempty"`
	WarehouseID    string     `json:"warehouse_id"`
	ToWarehouseID  *string    `json:"to_warehouse_id,omitempty"`
	PaymentTermsID *string    `json:"payment_terms_id,omitempty"`
	OrderDate      time.Time  `json:"order_date"`
	ExpectedDate   *time.Time `json:"expected_date,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

// OrderLineDTO línea con métricas de cumplimiento y, para órdenes de venta,
// de facturación. Los campos de facturación son nil cuando no aplican o
// cuando la consulta de totales facturados falló (degradación visible, no
// bloqueo del contenido principal).
type OrderLineDTO struct {
	ID          string           `json:"id"`
	LineNo      int              `json:"line_no"`
	ItemID      string           `json:"item_id"`
	ItemName    string           `json:"item_name"`
	ItemSKU     string           `json:"item_sku,omitempty"`
	WarehouseID *string          `json:"warehouse_id,omitempty"`
	QtyOrdered  decimal.Decimal  `json:"qty_ordered"`
	LotNumber   *string          `json:"lot_number,omitempty"`
	ExpiryDate  *time.Time       `json:"expiry_date,omitempty"`
	Fulfilled   decimal.Decimal  `json:"fulfilled"`
	Fulfillment ProgressDTO      `json:"fulfillment"`
	Invoiced    *decimal.Decimal `json:"invoiced,omitempty"`
	Invoicing   *ProgressDTO     `json:"invoicing,omitempty"`
	Tags        []TagDTO         `json:"tags"`
}

// OrderDetailResponse agregado completo del documento: cabecera, líneas con
// métricas y acciones siguientes derivadas.
type OrderDetailResponse struct {
	Header         OrderHeaderDTO `json:"header"`
	Lines          []OrderLineDTO `json:"lines"`
	HasUnfulfilled bool           `json:"has_unfulfilled"`
	Actions        []ActionDTO    `json:"actions"`
}

// RelatedMovementDTO movimiento físico vinculado al documento, ya clasificado
// para presentación. Route vacío = navegación no disponible para el tipo.
type RelatedMovementDTO struct {
	ID             string    `json:"id"`
	DocType        string    `json:"doc_type"`
	Label          string    `json:"label"`
	DocNo          string    `json:"doc_no"`
	Status         string    `json:"status"`
	PhysicalStatus string    `json:"physical_status,omitempty"`
	Icon           string    `json:"icon"`
	Color          string    `json:"color"`
	Route          string    `json:"route,omitempty"`
	MovementDate   time.Time `json:"movement_date"`
}

// HistoryEntryDTO entrada del historial del documento (movimientos y
// facturas mezclados cronológicamente, más reciente primero).
type HistoryEntryDTO struct {
	At          time.Time `json:"at"`
	Kind        string    `json:"kind"` // movement | invoice
	RefID       string    `json:"ref_id"`
	DocNo       string    `json:"doc_no"`
	Description string    `json:"description"`
	Route       string    `json:"route,omitempty"`
}

// InvoiceLineDTO línea de factura asociada a una línea del documento.
type InvoiceLineDTO struct {
	ID          string          `json:"id"`
	InvoiceID   string          `json:"invoice_id"`
	InvoiceNo   string          `json:"invoice_no"`
	SOLineID    string          `json:"so_line_id"`
	QtyInvoiced decimal.Decimal `json:"qty_invoiced"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
	InvoiceDate time.Time       `json:"invoice_date"`
}
