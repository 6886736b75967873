package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceLine registra cantidad facturada contra una línea de orden de venta.
// Varias líneas de factura pueden referenciar la misma línea de la orden
// (facturación parcial en el tiempo); el total facturado es la suma.
type InvoiceLine struct {
	ID          string
	InvoiceID   string
	InvoiceNo   string
	SOLineID    string
	QtyInvoiced decimal.Decimal
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
	InvoiceDate time.Time
	CreatedAt   time.Time
}
