// Package actions deriva las acciones siguientes disponibles para un documento
// comercial y clasifica los registros de movimiento relacionados para su
// presentación. Es la tabla de reglas de negocio del sistema: qué puede hacer
// el usuario a continuación depende únicamente del tipo de documento, su
// estado y si queda cantidad por cumplir.
package actions

import (
	"fmt"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

// Command identificador opaco de una acción; el llamador decide cómo
// ejecutarla (normalmente navegando a la ruta de creación).
type Command string

const (
	CommandReceive          Command = "receive"
	CommandReceiveRemaining Command = "receive_remaining"
	CommandReturn           Command = "return"
	CommandShip             Command = "ship"
	CommandShipRemaining    Command = "ship_remaining"
	CommandTransfer         Command = "transfer"
	CommandCreateInvoice    Command = "create_invoice"
)

// Action acción disponible sobre un documento: comando opaco, etiqueta legible
// y ruta de creación del documento siguiente. El resolver no ejecuta nada; el
// llamador navega y refresca estado después.
type Action struct {
	Command Command
	Label   string
	Route   string
}

// Resolve deriva la lista ordenada de acciones disponibles para un documento.
// Es un mapeo puro sin efectos: tipo de documento desconocido o estado fuera
// del enum producen lista vacía, nunca un fallo.
//
// Reglas por tipo:
//   - PO: Pending Receipt → Receive; Partially Received → Receive Remaining;
//     Received → Return; otro → nada.
//   - SO: Pending Shipment/Partially Shipped con líneas incompletas → Ship /
//     Ship Remaining; cualquier estado distinto de Canceled agrega además
//     Create Invoice.
//   - TO: Open → Transfer; otro → nada.
func Resolve(docType entity.DocType, status string, hasUnfulfilled bool, orderID string) []Action {
	switch docType {
	case entity.DocTypePurchaseOrder:
		return resolvePurchase(entity.POStatus(status), orderID)
	case entity.DocTypeSalesOrder:
		return resolveSales(entity.SOStatus(status), hasUnfulfilled, orderID)
	case entity.DocTypeTransferOrder:
		return resolveTransfer(entity.TOStatus(status), orderID)
	}
	return nil
}

func resolvePurchase(status entity.POStatus, orderID string) []Action {
	switch status {
	case entity.POStatusPendingReceipt:
		return []Action{{
			Command: CommandReceive,
			Label:   "Receive",
			Route:   creationRoute("receipts", "po", orderID),
		}}
	case entity.POStatusPartiallyReceived:
		return []Action{{
			Command: CommandReceiveRemaining,
			Label:   "Receive Remaining",
			Route:   creationRoute("receipts", "po", orderID),
		}}
	case entity.POStatusReceived:
		return []Action{{
			Command: CommandReturn,
			Label:   "Return",
			Route:   creationRoute("returns", "po", orderID),
		}}
	case entity.POStatusCanceled:
		return nil
	}
	return nil
}

func resolveSales(status entity.SOStatus, hasUnfulfilled bool, orderID string) []Action {
	// Canceled suprime todo, incluida la facturación.
	if status == entity.SOStatusCanceled {
		return nil
	}

	var out []Action
	// Rama de despacho: solo si queda cantidad por despachar.
	if hasUnfulfilled {
		switch status {
		case entity.SOStatusPendingShipment:
			out = append(out, Action{
				Command: CommandShip,
				Label:   "Ship",
				Route:   creationRoute("shipments", "so", orderID),
			})
		case entity.SOStatusPartiallyShipped:
			out = append(out, Action{
				Command: CommandShipRemaining,
				Label:   "Ship Remaining",
				Route:   creationRoute("shipments", "so", orderID),
			})
		}
	}
	// Facturación: aditiva e independiente de la rama de despacho.
	out = append(out, Action{
		Command: CommandCreateInvoice,
		Label:   "Create Invoice",
		Route:   creationRoute("invoices", "so", orderID),
	})
	return out
}

func resolveTransfer(status entity.TOStatus, orderID string) []Action {
	if status == entity.TOStatusOpen {
		return []Action{{
			Command: CommandTransfer,
			Label:   "Transfer",
			Route:   creationRoute("transfers", "to", orderID),
		}}
	}
	return nil
}

// creationRoute construye la ruta opaca de creación: lista + /new?<query>.
func creationRoute(listPath, param, orderID string) string {
	return fmt.Sprintf("/%s/new?%s=%s", listPath, param, orderID)
}
