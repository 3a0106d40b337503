package report

import (
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
)

// StockRow movimiento de existencias de un ítem en el rango.
type StockRow struct {
	ItemRef
	InitialStock int64 `json:"initial_stock"`
	Sales        int64 `json:"sales"`
	Waste        int64 `json:"waste"`
	Balance      int64 `json:"balance"`
	StockValue   int64 `json:"stock_value"`
}

// Stock reconstruye el stock inicial del rango a partir del actual:
//
//	sales   = Σ(before − after) sobre stock_removed
//	waste   = Σ(before − after) sobre count_adjustment con after < before
//	initial = actual + sales + waste
//	balance = actual
//
// Todos los ítems aparecen, con ceros si no tuvieron actividad.
func Stock(items []*entity.InventoryItem, entries []*entity.InventoryLogEntry) []StockRow {
	sales := make(map[int64]int64)
	waste := make(map[int64]int64)
	for _, e := range entries {
		switch e.Action {
		case entity.ActionStockRemoved:
			sales[e.ItemID] += e.QuantityDecrease()
		case entity.ActionCountAdjustment:
			if d := e.QuantityDecrease(); d > 0 {
				waste[e.ItemID] += d
			}
		}
	}

	sorted := sortedItems(items)
	rows := make([]StockRow, 0, len(sorted))
	for _, it := range sorted {
		s, w := sales[it.ID], waste[it.ID]
		rows = append(rows, StockRow{
			ItemRef:      refOf(it),
			InitialStock: it.Quantity + s + w,
			Sales:        s,
			Waste:        w,
			Balance:      it.Quantity,
			StockValue:   it.StockValue,
		})
	}
	return rows
}
