package dto

// CreateTagRequest body para POST /api/tags.
type CreateTagRequest struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
}

// BatchAssignRequest body para POST /api/tags/:id/assign: líneas seleccionadas
// a etiquetar.
type BatchAssignRequest struct {
	LineIDs []string `json:"line_ids"`
}

// BatchAssignResponse resultado de una asignación por lotes. Las inserciones
// son secuenciales y no atómicas: ante un fallo se detiene el lote, las líneas
// ya etiquetadas se conservan y se reportan en Applied junto con la línea y el
// mensaje del fallo.
type BatchAssignResponse struct {
	Applied  []string `json:"applied"`
	FailedAt string   `json:"failed_at,omitempty"`
	Error    string   `json:"error,omitempty"`
}
