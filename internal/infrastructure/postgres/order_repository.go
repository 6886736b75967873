package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construye el adaptador de lectura de documentos.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// GetByIDAndType obtiene la cabecera por ID, filtrando por tipo: un documento
// existente con otro tipo se reporta como ausencia, no como otro documento.
func (r *OrderRepo) GetByIDAndType(ctx context.Context, id string, docType entity.DocType) (*entity.Order, error) {
	query := `
		SELECT id, doc_type, doc_no, status, customer_id, supplier_id, warehouse_id,
		       to_warehouse_id, payment_terms_id, order_date, expected_date, notes,
		       created_at, updated_at
		FROM orders WHERE id = $1 AND doc_type = $2`
	var o entity.Order
	err := r.pool.QueryRow(ctx, query, id, string(docType)).Scan(
		&o.ID, &o.DocType, &o.DocNo, &o.Status, &o.CustomerID, &o.SupplierID,
		&o.WarehouseID, &o.ToWarehouseID, &o.PaymentTermsID, &o.OrderDate,
		&o.ExpectedDate, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// ListLines devuelve las líneas ordenadas por line_no con sus etiquetas y
// fulfillment links cargados (tres consultas, sin N+1).
func (r *OrderRepo) ListLines(ctx context.Context, orderID string) ([]*entity.OrderLine, error) {
	query := `
		SELECT id, order_id, line_no, item_id, item_name, item_sku, warehouse_id,
		       qty_ordered, lot_number, expiry_date, created_at, updated_at
		FROM order_lines WHERE order_id = $1 ORDER BY line_no`
	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()

	var lines []*entity.OrderLine
	byID := make(map[string]*entity.OrderLine)
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(
			&l.ID, &l.OrderID, &l.LineNo, &l.ItemID, &l.ItemName, &l.ItemSKU,
			&l.WarehouseID, &l.QtyOrdered, &l.LotNumber, &l.ExpiryDate,
			&l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, &l)
		byID[l.ID] = &l
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	if len(lines) == 0 {
		return lines, nil
	}

	ids := make([]string, len(lines))
	for i, l := range lines {
		ids[i] = l.ID
	}
	if err := r.loadLinks(ctx, ids, byID); err != nil {
		return nil, err
	}
	if err := r.loadTags(ctx, ids, byID); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *OrderRepo) loadLinks(ctx context.Context, lineIDs []string, byID map[string]*entity.OrderLine) error {
	query := `
		SELECT fl.id, fl.line_id, ml.movement_id, fl.movement_line_id,
		       fl.qty_linked_base, fl.created_at
		FROM fulfillment_links fl
		JOIN movement_lines ml ON ml.id = fl.movement_line_id
		WHERE fl.line_id = ANY($1)
		ORDER BY fl.created_at`
	rows, err := r.pool.Query(ctx, query, lineIDs)
	if err != nil {
		return fmt.Errorf("list fulfillment links: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var fl entity.FulfillmentLink
		if err := rows.Scan(&fl.ID, &fl.LineID, &fl.MovementID, &fl.MovementLineID, &fl.QtyLinkedBase, &fl.CreatedAt); err != nil {
			return fmt.Errorf("scan fulfillment link: %w", err)
		}
		if line, ok := byID[fl.LineID]; ok {
			line.Links = append(line.Links, fl)
		}
	}
	return rows.Err()
}

func (r *OrderRepo) loadTags(ctx context.Context, lineIDs []string, byID map[string]*entity.OrderLine) error {
	query := `
		SELECT lt.line_id, t.id, t.name, t.color, t.description, t.created_at, t.updated_at
		FROM line_tags lt
		JOIN tags t ON t.id = lt.tag_id
		WHERE lt.line_id = ANY($1)
		ORDER BY t.name`
	rows, err := r.pool.Query(ctx, query, lineIDs)
	if err != nil {
		return fmt.Errorf("list line tags: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var lineID string
		var t entity.Tag
		if err := rows.Scan(&lineID, &t.ID, &t.Name, &t.Color, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return fmt.Errorf("scan line tag: %w", err)
		}
		if line, ok := byID[lineID]; ok {
			line.Tags = append(line.Tags, t)
		}
	}
	return rows.Err()
}
