package inventory

import (
	"sort"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
)

// Suggestion ítem bajo su mínimo con la cantidad sugerida de pedido.
type Suggestion struct {
	Item              *entity.InventoryItem
	Deficit           int64
	SuggestedOrderQty int64
}

// LowStock devuelve los ítems con mínimo configurado y cantidad <= mínimo.
// Cantidad sugerida: OrderQuantity si está definida; si no, 2×mínimo − cantidad.
// Orden: mayor déficit primero, luego nombre.
func LowStock(items []*entity.InventoryItem) []Suggestion {
	out := make([]Suggestion, 0)
	for _, it := range items {
		if it == nil || it.IsDeleted() || !it.IsLowStock() {
			continue
		}
		minimum := *it.MinimumStockLevel
		qty := 2*minimum - it.Quantity
		if it.OrderQuantity != nil && *it.OrderQuantity > 0 {
			qty = *it.OrderQuantity
		}
		out = append(out, Suggestion{
			Item:              it,
			Deficit:           minimum - it.Quantity,
			SuggestedOrderQty: qty,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Deficit != out[j].Deficit {
			return out[i].Deficit > out[j].Deficit
		}
		return out[i].Item.Name < out[j].Item.Name
	})
	return out
}

// Expiring devuelve los ítems perecederos vencidos o que vencen dentro de days días,
// el vencimiento más próximo primero.
func Expiring(items []*entity.InventoryItem, today time.Time, days int) []*entity.InventoryItem {
	out := make([]*entity.InventoryItem, 0)
	for _, it := range items {
		if it == nil || it.IsDeleted() {
			continue
		}
		if it.ExpiryStatusAt(today, days) != entity.ExpiryValid {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExpiryDate.Before(*out[j].ExpiryDate)
	})
	return out
}
