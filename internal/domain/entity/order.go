package entity

import "time"

// DocType tipo de documento comercial. Inmutable una vez creado el documento.
type DocType string

const (
	DocTypeSalesOrder    DocType = "SO" // orden de venta
	DocTypePurchaseOrder DocType = "PO" // orden de compra
	DocTypeTransferOrder DocType = "TO" // orden de traslado entre bodegas
)

// IsValid indica si el tipo de documento es uno de los conocidos.
func (t DocType) IsValid() bool {
	switch t {
	case DocTypeSalesOrder, DocTypePurchaseOrder, DocTypeTransferOrder:
		return true
	}
	return false
}

// Estados cerrados por tipo de documento. El estado se persiste como texto pero
// el dominio solo razona sobre estos valores; un valor fuera del conjunto no
// produce acciones (nunca un fallo).
type (
	// SOStatus estado de una orden de venta.
	SOStatus string
	// POStatus estado de una orden de compra.
	POStatus string
	// TOStatus estado de una orden de traslado.
	TOStatus string
)

const (
	SOStatusPendingShipment  SOStatus = "Pending Shipment"
	SOStatusPartiallyShipped SOStatus = "Partially Shipped"
	SOStatusShipped          SOStatus = "Shipped"
	SOStatusCanceled         SOStatus = "Canceled"

	POStatusPendingReceipt    POStatus = "Pending Receipt"
	POStatusPartiallyReceived POStatus = "Partially Received"
	POStatusReceived          POStatus = "Received"
	POStatusCanceled          POStatus = "Canceled"

	TOStatusOpen      TOStatus = "Open"
	TOStatusCompleted TOStatus = "Completed"
	TOStatusCanceled  TOStatus = "Canceled"
)

// Order representa la cabecera de un documento comercial (SO, PO o TO).
// Las referencias opcionales (cliente, proveedor, bodega destino, términos de
// pago) se modelan como punteros: ausencia de la relación = nil, nunca error.
type Order struct {
	ID             string
	DocType        DocType
	DocNo          string
	Status         string // valor dentro del enum del tipo correspondiente
	CustomerID     *string
	SupplierID     *string
	WarehouseID    string
	ToWarehouseID  *string // solo TO: bodega destino
	PaymentTermsID *string
	OrderDate      time.Time
	ExpectedDate   *time.Time
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
