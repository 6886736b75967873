package actions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Ordenes-api/internal/domain/actions"
)

func TestClassifyRelated_TiposConocidos(t *testing.T) {
	aff, route := actions.ClassifyRelated("Shipment")
	assert.Equal(t, "truck", aff.Icon)
	assert.Equal(t, "blue", aff.Color)
	assert.Equal(t, "shipments", route)

	aff, route = actions.ClassifyRelated("Receipt")
	assert.Equal(t, "package", aff.Icon)
	assert.Equal(t, "receipts", route)
}

// Ambas devoluciones comparten la lista "returns" pero conservan etiquetas de
// presentación distintas.
func TestClassifyRelated_DevolucionesCompartenRuta(t *testing.T) {
	_, inRoute := actions.ClassifyRelated("Return_In")
	_, outRoute := actions.ClassifyRelated("Return_Out")
	assert.Equal(t, "returns", inRoute)
	assert.Equal(t, "returns", outRoute)

	assert.NotEqual(t, actions.RelatedLabel("Return_In"), actions.RelatedLabel("Return_Out"))
}

// Adjustment tiene ruta de lista pero presentación genérica (las tablas son
// independientes).
func TestClassifyRelated_AjusteSinAfordancePropia(t *testing.T) {
	aff, route := actions.ClassifyRelated("Adjustment")
	assert.Equal(t, "adjustments", route)
	assert.Equal(t, "document", aff.Icon)
	assert.Equal(t, "gray", aff.Color)
}

// Tipos desconocidos: presentación genérica y sin ruta (la navegación es un
// no-op).
func TestClassifyRelated_TipoDesconocido(t *testing.T) {
	aff, route := actions.ClassifyRelated("Teleport")
	assert.Equal(t, "document", aff.Icon)
	assert.Equal(t, "gray", aff.Color)
	assert.Empty(t, route)

	assert.Empty(t, actions.RecordRoute("Teleport", "mv-1"))
	assert.Equal(t, "Teleport", actions.RelatedLabel("Teleport"))
}

func TestRecordRoute(t *testing.T) {
	assert.Equal(t, "/shipments/mv-1", actions.RecordRoute("Shipment", "mv-1"))
	assert.Equal(t, "/returns/mv-2", actions.RecordRoute("Return_Out", "mv-2"))
}
