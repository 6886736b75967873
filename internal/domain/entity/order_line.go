package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine representa una línea de un documento comercial. Pertenece a
// exactamente una cabecera; LineNo es único dentro de la cabecera y define el
// orden de presentación.
type OrderLine struct {
	ID          string
	OrderID     string
	LineNo      int
	ItemID      string
	ItemName    string
	ItemSKU     string
	WarehouseID *string // bodega específica de la línea; nil = la de la cabecera
	QtyOrdered  decimal.Decimal // unidades base, no negativa
	LotNumber   *string
	ExpiryDate  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Asociaciones cargadas por el repositorio al listar líneas.
	Tags  []Tag
	Links []FulfillmentLink
}

// FulfillmentLink asocia una línea comercial con una línea de movimiento
// físico, registrando cuánta cantidad de la línea satisface ese movimiento.
// La suma de QtyLinkedBase de una línea no debería exceder QtyOrdered, pero
// esa invariante se asume externa: el dominio tolera el exceso (sobre-entrega).
type FulfillmentLink struct {
	ID             string
	LineID         string
	MovementID     string
	MovementLineID string
	QtyLinkedBase  decimal.Decimal // unidades base, no negativa
	CreatedAt      time.Time
}
