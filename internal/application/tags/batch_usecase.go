// Package tags implementa el catálogo de etiquetas y su asignación a líneas
// de documentos.
package tags

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Ordenes-api/internal/application/dto"
	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

// UseCase catálogo de etiquetas y asignación por lotes.
type UseCase struct {
	tagRepo repository.TagRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(tagRepo repository.TagRepository) *UseCase {
	return &UseCase{tagRepo: tagRepo}
}

// List devuelve el catálogo completo de etiquetas.
func (uc *UseCase) List(ctx context.Context) ([]dto.TagDTO, error) {
	tags, err := uc.tagRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar etiquetas: %w", err)
	}
	out := make([]dto.TagDTO, 0, len(tags))
	for _, t := range tags {
		out = append(out, dto.TagDTO{ID: t.ID, Name: t.Name, Color: t.Color, Description: t.Description})
	}
	return out, nil
}

// Create registra una etiqueta nueva en el catálogo.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateTagRequest) (*dto.TagDTO, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	tag := &entity.Tag{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Color:       in.Color,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return &dto.TagDTO{ID: tag.ID, Name: tag.Name, Color: tag.Color, Description: tag.Description}, nil
}

// BatchAssign asigna una etiqueta a varias líneas, una inserción por línea y
// en orden. El lote no es atómico: el primer fallo detiene las inserciones
// restantes, las ya aplicadas se conservan y el resultado reporta qué líneas
// quedaron etiquetadas junto con la línea y el error del fallo.
func (uc *UseCase) BatchAssign(ctx context.Context, tagID string, lineIDs []string) (*dto.BatchAssignResponse, error) {
	if tagID == "" || len(lineIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	tag, err := uc.tagRepo.GetByID(ctx, tagID)
	if err != nil {
		return nil, fmt.Errorf("obtener etiqueta: %w", err)
	}
	if tag == nil {
		return nil, domain.ErrNotFound
	}

	result := &dto.BatchAssignResponse{Applied: make([]string, 0, len(lineIDs))}
	for _, lineID := range lineIDs {
		if err := uc.tagRepo.Assign(ctx, lineID, tagID); err != nil {
			result.FailedAt = lineID
			result.Error = err.Error()
			return result, fmt.Errorf("asignar etiqueta a línea %s: %w", lineID, err)
		}
		result.Applied = append(result.Applied, lineID)
	}
	return result, nil
}

// Unassign elimina la asignación (línea, etiqueta). Quitar un par inexistente
// no es error.
func (uc *UseCase) Unassign(ctx context.Context, lineID, tagID string) error {
	if lineID == "" || tagID == "" {
		return domain.ErrInvalidInput
	}
	return uc.tagRepo.Unassign(ctx, lineID, tagID)
}
