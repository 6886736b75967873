// Package fulfillment contiene la lógica pura de avance de cumplimiento y
// facturación de líneas comerciales (servicio de dominio, sin dependencias de
// infraestructura). Todas las funciones son deterministas y se prueban con
// fixtures en memoria.
package fulfillment

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// FulfilledQty suma las cantidades enlazadas de los fulfillment links de una
// línea. Un conjunto vacío (o nil) suma cero.
func FulfilledQty(links []entity.FulfillmentLink) decimal.Decimal {
	total := decimal.Zero
	for _, l := range links {
		total = total.Add(l.QtyLinkedBase)
	}
	return total
}

// Percentage calcula round(part/whole * 100) como entero. Si whole es cero
// devuelve 0: ningún documento con cantidad ordenada cero debería llegar aquí,
// pero la división no debe fallar. No se recorta a 100: un porcentaje mayor
// representa sobre-entrega y se muestra tal cual.
func Percentage(part, whole decimal.Decimal) int {
	if whole.IsZero() {
		return 0
	}
	return int(part.Div(whole).Mul(oneHundred).Round(0).IntPart())
}

// LineProgress avance de cumplimiento de una línea: cantidad satisfecha por
// movimientos físicos y porcentaje sobre la cantidad ordenada.
func LineProgress(line entity.OrderLine) (fulfilled decimal.Decimal, pct int) {
	fulfilled = FulfilledQty(line.Links)
	return fulfilled, Percentage(fulfilled, line.QtyOrdered)
}

// InvoicedProgress avance de facturación de una línea dado el total facturado
// externo (suma de todas las líneas de factura que la referencian). Solo tiene
// sentido para órdenes de venta.
func InvoicedProgress(line entity.OrderLine, invoiced decimal.Decimal) (decimal.Decimal, int) {
	return invoiced, Percentage(invoiced, line.QtyOrdered)
}

// HasUnfulfilled indica si alguna línea está por debajo del 100% de
// cumplimiento. Corta en la primera línea incompleta.
func HasUnfulfilled(lines []*entity.OrderLine) bool {
	for _, line := range lines {
		if _, pct := LineProgress(*line); pct < 100 {
			return true
		}
	}
	return false
}
