package repository

import (
	"context"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

// TagRepository define el puerto del catálogo de etiquetas y sus asignaciones
// a líneas (muchos a muchos).
type TagRepository interface {
	List(ctx context.Context) ([]*entity.Tag, error)
	GetByID(ctx context.Context, id string) (*entity.Tag, error)
	Create(ctx context.Context, tag *entity.Tag) error
	// Assign inserta el par (línea, etiqueta). ErrDuplicate si ya existe.
	Assign(ctx context.Context, lineID, tagID string) error
	// Unassign elimina el par; eliminar un par inexistente no es error.
	Unassign(ctx context.Context, lineID, tagID string) error
}
