package repository

import (
	"context"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

// OrderRepository define el puerto de lectura de documentos comerciales (DIP).
// El dominio trata los documentos como modelos de lectura inmutables durante
// un cómputo; la creación y las transiciones de estado ocurren fuera.
type OrderRepository interface {
	// GetByIDAndType devuelve la cabecera si existe y su tipo coincide;
	// (nil, nil) si no existe o el tipo no corresponde.
	GetByIDAndType(ctx context.Context, id string, docType entity.DocType) (*entity.Order, error)
	// ListLines devuelve las líneas del documento ordenadas por line_no,
	// con etiquetas y fulfillment links ya cargados. Relaciones opcionales
	// ausentes quedan como nil/vacío, nunca como error.
	ListLines(ctx context.Context, orderID string) ([]*entity.OrderLine, error)
}
