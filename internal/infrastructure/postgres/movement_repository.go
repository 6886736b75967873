package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
type MovementRepo struct {
	pool *pgxpool.Pool
}

// NewMovementRepository construye el adaptador de lectura de movimientos.
func NewMovementRepository(pool *pgxpool.Pool) *MovementRepo {
	return &MovementRepo{pool: pool}
}

// ListRelatedByOrder recorre fulfillment links -> líneas de movimiento ->
// cabeceras, sin duplicados, más reciente primero.
func (r *MovementRepo) ListRelatedByOrder(ctx context.Context, orderID string) ([]*entity.Movement, error) {
	query := `
		SELECT DISTINCT m.id, m.doc_type, m.doc_no, m.status, m.physical_status,
		       m.warehouse_id, m.to_warehouse_id, m.movement_date, m.notes,
		       m.created_at, m.updated_at
		FROM movements m
		JOIN movement_lines ml ON ml.movement_id = m.id
		JOIN fulfillment_links fl ON fl.movement_line_id = ml.id
		JOIN order_lines ol ON ol.id = fl.line_id
		WHERE ol.order_id = $1
		ORDER BY m.movement_date DESC`
	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list related movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(
			&m.ID, &m.DocType, &m.DocNo, &m.Status, &m.PhysicalStatus,
			&m.WarehouseID, &m.ToWarehouseID, &m.MovementDate, &m.Notes,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
