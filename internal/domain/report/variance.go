package report

import (
	"sort"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
)

// VarianceRow variación neta de un ítem en un día calendario.
type VarianceRow struct {
	ItemRef
	Date          time.Time `json:"date"`
	Added         int64     `json:"added"`
	Removed       int64     `json:"removed"`
	Adjusted      int64     `json:"adjusted"`
	DailyVariance int64     `json:"daily_variance"`
	Entries       int       `json:"entries"`
}

type varianceKey struct {
	itemID int64
	day    time.Time
}

// Variance agrupa las entradas por (ítem, date_stamp). Cada grupo con al menos una entrada
// produce una fila; las acciones que no son stock_added, stock_removed ni count_adjustment
// cuentan como actividad pero no suman.
//
//	added    = Σ(after − before) sobre stock_added
//	removed  = Σ(before − after) sobre stock_removed
//	adjusted = Σ|after − before| sobre count_adjustment
//	daily_variance = added − removed + adjusted
//
// Orden: día descendente, luego categoría, nombre e id.
func Variance(items []*entity.InventoryItem, entries []*entity.InventoryLogEntry) []VarianceRow {
	idx := indexItems(items)
	groups := make(map[varianceKey]*VarianceRow)

	for _, e := range entries {
		it, ok := idx[e.ItemID]
		if !ok {
			continue
		}
		key := varianceKey{itemID: e.ItemID, day: entity.DateOf(e.DateStamp)}
		row, ok := groups[key]
		if !ok {
			row = &VarianceRow{ItemRef: refOf(it), Date: key.day}
			groups[key] = row
		}
		row.Entries++
		switch e.Action {
		case entity.ActionStockAdded:
			row.Added += e.QuantityIncrease()
		case entity.ActionStockRemoved:
			row.Removed += e.QuantityDecrease()
		case entity.ActionCountAdjustment:
			d := e.QuantityIncrease()
			if d < 0 {
				d = -d
			}
			row.Adjusted += d
		}
	}

	rows := make([]VarianceRow, 0, len(groups))
	for _, r := range groups {
		r.DailyVariance = r.Added - r.Removed + r.Adjusted
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.After(rows[j].Date)
		}
		return lessRef(rows[i].ItemRef, rows[j].ItemRef)
	})
	return rows
}
