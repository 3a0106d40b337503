package report

import (
	"sort"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
)

// WasteRow una salida de stock registrada como merma.
type WasteRow struct {
	ItemRef
	EntryID   int64     `json:"entry_id"`
	Date      time.Time `json:"date"`
	Timestamp time.Time `json:"timestamp"`
	Quantity  int64     `json:"quantity"`
	Value     int64     `json:"value"`
	Notes     string    `json:"notes,omitempty"`
	UserName  string    `json:"user_name,omitempty"`
}

// WasteReport filas de merma más totales.
type WasteReport struct {
	Rows          []WasteRow `json:"rows"`
	TotalQuantity int64      `json:"total_quantity"`
	TotalValue    int64      `json:"total_value"`
}

// Waste selecciona las entradas stock_removed con motivo "waste".
// quantity = before − after, value = valueBefore − valueAfter. Orden: más reciente primero.
func Waste(items []*entity.InventoryItem, entries []*entity.InventoryLogEntry) WasteReport {
	idx := indexItems(items)
	rep := WasteReport{Rows: []WasteRow{}}

	for _, e := range entries {
		if e.Action != entity.ActionStockRemoved || !e.HasReason(entity.ReasonWaste) {
			continue
		}
		it, ok := idx[e.ItemID]
		if !ok {
			continue
		}
		row := WasteRow{
			ItemRef:   refOf(it),
			EntryID:   e.ID,
			Date:      entity.DateOf(e.DateStamp),
			Timestamp: e.Timestamp,
			Quantity:  e.QuantityDecrease(),
			Value:     e.ValueDecrease(),
			Notes:     e.Notes,
			UserName:  e.UserName,
		}
		rep.TotalQuantity += row.Quantity
		rep.TotalValue += row.Value
		rep.Rows = append(rep.Rows, row)
	}

	sort.SliceStable(rep.Rows, func(i, j int) bool {
		a, b := rep.Rows[i], rep.Rows[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.After(b.Timestamp)
		}
		return a.EntryID > b.EntryID
	})
	return rep
}
