package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

var _ repository.TagRepository = (*TagRepo)(nil)

// TagRepo implementación del puerto TagRepository sobre PostgreSQL.
type TagRepo struct {
	pool *pgxpool.Pool
}

// NewTagRepository construye el adaptador del catálogo de etiquetas.
func NewTagRepository(pool *pgxpool.Pool) *TagRepo {
	return &TagRepo{pool: pool}
}

// List devuelve el catálogo ordenado por nombre.
func (r *TagRepo) List(ctx context.Context) ([]*entity.Tag, error) {
	query := `
		SELECT id, name, color, description, created_at, updated_at
		FROM tags ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	var list []*entity.Tag
	for rows.Next() {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// GetByID obtiene una etiqueta por ID; (nil, nil) si no existe.
func (r *TagRepo) GetByID(ctx context.Context, id string) (*entity.Tag, error) {
	query := `
		SELECT id, name, color, description, created_at, updated_at
		FROM tags WHERE id = $1`
	var t entity.Tag
	err := r.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.Color, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return &t, nil
}

// Create persiste una etiqueta nueva. Nombre repetido -> ErrDuplicate.
func (r *TagRepo) Create(ctx context.Context, tag *entity.Tag) error {
	query := `
		INSERT INTO tags (id, name, color, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		tag.ID, tag.Name, tag.Color, tag.Description, tag.CreatedAt, tag.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

// Assign inserta el par (línea, etiqueta). Par repetido -> ErrDuplicate.
func (r *TagRepo) Assign(ctx context.Context, lineID, tagID string) error {
	query := `INSERT INTO line_tags (line_id, tag_id) VALUES ($1, $2)`
	_, err := r.pool.Exec(ctx, query, lineID, tagID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("assign tag: %w", err)
	}
	return nil
}

// Unassign elimina el par; un par inexistente no es error.
func (r *TagRepo) Unassign(ctx context.Context, lineID, tagID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM line_tags WHERE line_id = $1 AND tag_id = $2`, lineID, tagID)
	if err != nil {
		return fmt.Errorf("unassign tag: %w", err)
	}
	return nil
}

// isUniqueViolation detecta el código 23505 (unique_violation) de PostgreSQL.
// Único punto del adaptador que distingue duplicados de otros fallos.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
