package repository

import (
	"context"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

// MovementRepository define el puerto de lectura de movimientos físicos de
// bodega relacionados con documentos comerciales.
type MovementRepository interface {
	// ListRelatedByOrder devuelve las cabeceras de movimiento alcanzables
	// desde las líneas del documento vía fulfillment links, sin duplicados,
	// ordenadas por fecha de movimiento descendente.
	ListRelatedByOrder(ctx context.Context, orderID string) ([]*entity.Movement, error)
}
