package actions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ordenes-api/internal/domain/actions"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

const testOrderID = "ord-1"

func labels(list []actions.Action) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.Label)
	}
	return out
}

// Tabla de resolución para órdenes de compra: una sola acción por estado, sin
// influencia del cumplimiento de líneas.
func TestResolve_OrdenDeCompra(t *testing.T) {
	cases := []struct {
		status      string
		unfulfilled bool
		want        []string
	}{
		{"Pending Receipt", true, []string{"Receive"}},
		{"Pending Receipt", false, []string{"Receive"}},
		{"Partially Received", true, []string{"Receive Remaining"}},
		{"Partially Received", false, []string{"Receive Remaining"}},
		{"Received", false, []string{"Return"}},
		{"Canceled", true, nil},
		{"Shipped", true, nil}, // estado fuera del enum PO: sin acciones
	}
	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			got := actions.Resolve(entity.DocTypePurchaseOrder, tc.status, tc.unfulfilled, testOrderID)
			assert.Equal(t, tc.want, labelsOrNil(got))
		})
	}
}

// Órdenes de venta: la rama de despacho depende de que existan líneas
// incompletas; Create Invoice es aditiva salvo cancelación.
func TestResolve_OrdenDeVenta(t *testing.T) {
	cases := []struct {
		name        string
		status      string
		unfulfilled bool
		want        []string
	}{
		{"pendiente con faltantes", "Pending Shipment", true, []string{"Ship", "Create Invoice"}},
		{"pendiente sin faltantes", "Pending Shipment", false, []string{"Create Invoice"}},
		{"parcial con faltantes", "Partially Shipped", true, []string{"Ship Remaining", "Create Invoice"}},
		{"parcial sin faltantes", "Partially Shipped", false, []string{"Create Invoice"}},
		{"despachada", "Shipped", false, []string{"Create Invoice"}},
		{"cancelada suprime facturación", "Canceled", true, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := actions.Resolve(entity.DocTypeSalesOrder, tc.status, tc.unfulfilled, testOrderID)
			assert.Equal(t, tc.want, labelsOrNil(got))
		})
	}
}

func TestResolve_OrdenDeTraslado(t *testing.T) {
	got := actions.Resolve(entity.DocTypeTransferOrder, "Open", false, testOrderID)
	assert.Equal(t, []string{"Transfer"}, labels(got))

	assert.Empty(t, actions.Resolve(entity.DocTypeTransferOrder, "Closed", true, testOrderID))
	assert.Empty(t, actions.Resolve(entity.DocTypeTransferOrder, "Completed", true, testOrderID))
}

// Tipo de documento desconocido produce lista vacía, nunca un fallo.
func TestResolve_TipoDesconocido(t *testing.T) {
	assert.Empty(t, actions.Resolve(entity.DocType("XX"), "Open", true, testOrderID))
}

// Las rutas de creación son lista + /new?<query> con el parámetro del tipo.
func TestResolve_RutasDeCreacion(t *testing.T) {
	recv := actions.Resolve(entity.DocTypePurchaseOrder, "Pending Receipt", false, "po-9")
	require.Len(t, recv, 1)
	assert.Equal(t, actions.CommandReceive, recv[0].Command)
	assert.Equal(t, "/receipts/new?po=po-9", recv[0].Route)

	sale := actions.Resolve(entity.DocTypeSalesOrder, "Pending Shipment", true, "so-3")
	require.Len(t, sale, 2)
	assert.Equal(t, "/shipments/new?so=so-3", sale[0].Route)
	assert.Equal(t, "/invoices/new?so=so-3", sale[1].Route)

	tr := actions.Resolve(entity.DocTypeTransferOrder, "Open", false, "to-7")
	require.Len(t, tr, 1)
	assert.Equal(t, "/transfers/new?to=to-7", tr[0].Route)
}

func labelsOrNil(list []actions.Action) []string {
	if len(list) == 0 {
		return nil
	}
	return labels(list)
}
