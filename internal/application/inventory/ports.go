package inventory

import (
	"context"

	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback: la escritura del ítem y la del ledger son todo o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		logRepo repository.InventoryLogRepository,
	) error) error
}
