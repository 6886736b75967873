package actions

// Affordance presentación de un registro de movimiento relacionado: categoría
// de ícono y de color para la lista de documentos vinculados.
type Affordance struct {
	Icon  string
	Color string
}

// genericAffordance presentación por defecto para tipos desconocidos.
var genericAffordance = Affordance{Icon: "document", Color: "gray"}

// affordances ícono y color por tipo de movimiento. Adjustment no tiene
// entrada propia: cae al genérico aunque sí tiene ruta de lista.
var affordances = map[string]Affordance{
	"Shipment":   {Icon: "truck", Color: "blue"},
	"Receipt":    {Icon: "package", Color: "green"},
	"Transfer":   {Icon: "swap", Color: "purple"},
	"Return_In":  {Icon: "arrow-down-left", Color: "orange"},
	"Return_Out": {Icon: "arrow-up-right", Color: "orange"},
}

// listRoutes segmento de ruta de la lista navegable por tipo de movimiento.
// Tabla independiente de affordances: Return_In y Return_Out comparten la
// lista "returns" pese a ser tipos distintos, y Adjustment tiene lista pero
// presentación genérica.
var listRoutes = map[string]string{
	"Shipment":   "shipments",
	"Receipt":    "receipts",
	"Transfer":   "transfers",
	"Return_In":  "returns",
	"Return_Out": "returns",
	"Adjustment": "adjustments",
}

// displayLabels etiqueta legible por tipo; el tipo desconocido se muestra tal
// cual llegó.
var displayLabels = map[string]string{
	"Shipment":   "Shipment",
	"Receipt":    "Receipt",
	"Transfer":   "Transfer",
	"Return_In":  "Return (Inbound)",
	"Return_Out": "Return (Outbound)",
	"Adjustment": "Adjustment",
}

// ClassifyRelated resuelve presentación y destino de navegación para un tipo
// de movimiento. Tipos desconocidos reciben presentación genérica y ruta
// vacía (el intento de navegación es un no-op para el llamador).
func ClassifyRelated(movementDocType string) (Affordance, string) {
	aff, ok := affordances[movementDocType]
	if !ok {
		aff = genericAffordance
	}
	return aff, listRoutes[movementDocType]
}

// RelatedLabel etiqueta de presentación del tipo de movimiento.
func RelatedLabel(movementDocType string) string {
	if label, ok := displayLabels[movementDocType]; ok {
		return label
	}
	return movementDocType
}

// RecordRoute ruta de navegación a un registro concreto: lista + /{id}.
// Ruta vacía si el tipo no tiene lista conocida.
func RecordRoute(movementDocType, id string) string {
	segment, ok := listRoutes[movementDocType]
	if !ok {
		return ""
	}
	return "/" + segment + "/" + id
}
