package repository

import (
	"context"

	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InventoryLogRepository define el puerto de persistencia del ledger. Es append-only:
// no expone Update ni Delete.
type InventoryLogRepository interface {
	// Create inserta la entrada y asigna ID (y Timestamp si viene vacío).
	Create(ctx context.Context, entry *entity.InventoryLogEntry) error
	// ListByItem devuelve las entradas del ítem ordenadas por timestamp descendente.
	ListByItem(ctx context.Context, itemID int64, limit int) ([]*entity.InventoryLogEntry, error)
}

// LedgerReader consultas de solo lectura del ledger para el motor de reportes.
// Las implementaciones excluyen entradas de ítems eliminados.
type LedgerReader interface {
	// Entries devuelve las entradas que cumplen q, ordenadas por date_stamp y timestamp ascendentes.
	Entries(ctx context.Context, q LedgerQuery) ([]*entity.InventoryLogEntry, error)
	// AverageQuantities promedia quantity_after por ítem sobre las entradas que cumplen q.
	// Ítems sin lecturas no aparecen en el mapa.
	AverageQuantities(ctx context.Context, q LedgerQuery) (map[int64]decimal.Decimal, error)
}
