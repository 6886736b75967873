package entity

import "time"

// Tag etiqueta asignable a líneas de documentos (muchos a muchos). Su ciclo de
// vida es independiente de los documentos que la usan.
type Tag struct {
	ID          string
	Name        string
	Color       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
