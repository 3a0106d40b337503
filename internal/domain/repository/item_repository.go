package repository

import (
	"context"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para el estado actual de los ítems (Item Store).
// GetByID y GetForUpdate devuelven (nil, nil) si el ítem no existe; los ítems eliminados
// lógicamente se devuelven con DeletedAt != nil. List los excluye salvo ItemQuery.IncludingDeleted.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id int64) (*entity.InventoryItem, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); solo tiene sentido dentro de una transacción.
	GetForUpdate(ctx context.Context, id int64) (*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	UpdateStock(ctx context.Context, id, quantity, stockValue int64) error
	SoftDelete(ctx context.Context, id int64, at time.Time) error
	List(ctx context.Context, q ItemQuery) ([]*entity.InventoryItem, error)
}
