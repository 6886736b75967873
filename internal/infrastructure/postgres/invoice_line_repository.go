package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
)

var _ repository.InvoiceLineRepository = (*InvoiceLineRepo)(nil)

// InvoiceLineRepo implementación del puerto InvoiceLineRepository sobre
// PostgreSQL.
type InvoiceLineRepo struct {
	pool *pgxpool.Pool
}

// NewInvoiceLineRepository construye el adaptador de lectura de facturación.
func NewInvoiceLineRepository(pool *pgxpool.Pool) *InvoiceLineRepo {
	return &InvoiceLineRepo{pool: pool}
}

// TotalsByLineIDs suma qty_invoiced por línea. Las líneas sin facturas no
// aparecen en el resultado.
func (r *InvoiceLineRepo) TotalsByLineIDs(ctx context.Context, lineIDs []string) (map[string]decimal.Decimal, error) {
	totals := make(map[string]decimal.Decimal, len(lineIDs))
	if len(lineIDs) == 0 {
		return totals, nil
	}
	query := `
		SELECT so_line_id, SUM(qty_invoiced)
		FROM invoice_lines
		WHERE so_line_id = ANY($1)
		GROUP BY so_line_id`
	rows, err := r.pool.Query(ctx, query, lineIDs)
	if err != nil {
		return nil, fmt.Errorf("sum invoiced by line: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var lineID string
		var total decimal.Decimal
		if err := rows.Scan(&lineID, &total); err != nil {
			return nil, fmt.Errorf("scan invoiced total: %w", err)
		}
		totals[lineID] = total
	}
	return totals, rows.Err()
}

// ListByOrder devuelve las líneas de factura de todas las líneas del
// documento, más reciente primero.
func (r *InvoiceLineRepo) ListByOrder(ctx context.Context, orderID string) ([]*entity.InvoiceLine, error) {
	query := `
		SELECT il.id, il.invoice_id, il.invoice_no, il.so_line_id, il.qty_invoiced,
		       il.unit_price, il.amount, il.invoice_date, il.created_at
		FROM invoice_lines il
		JOIN order_lines ol ON ol.id = il.so_line_id
		WHERE ol.order_id = $1
		ORDER BY il.invoice_date DESC, il.created_at DESC`
	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	defer rows.Close()

	var list []*entity.InvoiceLine
	for rows.Next() {
		var il entity.InvoiceLine
		if err := rows.Scan(
			&il.ID, &il.InvoiceID, &il.InvoiceNo, &il.SOLineID, &il.QtyInvoiced,
			&il.UnitPrice, &il.Amount, &il.InvoiceDate, &il.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		list = append(list, &il)
	}
	return list, rows.Err()
}
