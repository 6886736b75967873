package entity

import "time"

// Tipos de movimiento físico de bodega.
const (
	MovementTypeShipment   = "Shipment"   // despacho a cliente
	MovementTypeReceipt    = "Receipt"    // recepción de proveedor
	MovementTypeTransfer   = "Transfer"   // traslado entre bodegas
	MovementTypeReturnIn   = "Return_In"  // devolución entrante (de cliente)
	MovementTypeReturnOut  = "Return_Out" // devolución saliente (a proveedor)
	MovementTypeAdjustment = "Adjustment" // ajuste de inventario
)

// Movement representa la cabecera de una transacción física de bodega. Se
// relaciona con las líneas comerciales solo de forma indirecta, vía
// FulfillmentLink → línea de movimiento.
type Movement struct {
	ID             string
	DocType        string // MovementType*
	DocNo          string
	Status         string
	PhysicalStatus string // estado físico (ej. In Transit, Delivered)
	WarehouseID    string
	ToWarehouseID  *string // solo Transfer
	MovementDate   time.Time
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
