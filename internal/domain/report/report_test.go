package report_test

import (
	"time"

	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures compartidos
// ──────────────────────────────────────────────────────────────────────────────

var day1 = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func item(id int64, cat entity.Category, sub entity.Subcategory, name string, qty, cost int64) *entity.InventoryItem {
	return &entity.InventoryItem{
		ID:          id,
		Category:    cat,
		Subcategory: sub,
		Name:        name,
		Unit:        "unit",
		Quantity:    qty,
		Cost:        cost,
		StockValue:  qty * cost,
	}
}

// entry construye una entrada con cantidades y valores antes/después.
func entry(id, itemID int64, action entity.LogAction, qb, qa, vb, va int64, reason string, at time.Time) *entity.InventoryLogEntry {
	return &entity.InventoryLogEntry{
		ID:             id,
		ItemID:         itemID,
		Action:         action,
		QuantityBefore: ptr(qb),
		QuantityAfter:  ptr(qa),
		ValueBefore:    ptr(vb),
		ValueAfter:     ptr(va),
		Reason:         reason,
		Timestamp:      at,
		DateStamp:      entity.DateOf(at),
	}
}
