// Package report contiene las agregaciones puras del motor de reportes: reciben una foto de los
// ítems y las filas del ledger ya filtradas por rango y devuelven filas listas para presentar.
// No acceden a la base de datos ni mutan su entrada.
package report

import (
	"sort"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ItemRef datos descriptivos del ítem que acompañan cada fila de reporte.
type ItemRef struct {
	ItemID      int64              `json:"item_id"`
	Name        string             `json:"name"`
	Category    entity.Category    `json:"category"`
	Subcategory entity.Subcategory `json:"subcategory"`
	Unit        string             `json:"unit"`
}

func refOf(it *entity.InventoryItem) ItemRef {
	return ItemRef{
		ItemID:      it.ID,
		Name:        it.Name,
		Category:    it.Category,
		Subcategory: it.Subcategory,
		Unit:        it.Unit,
	}
}

// indexItems arma el lookup id → ítem. Los ítems eliminados quedan fuera, y con ellos
// sus entradas de ledger.
func indexItems(items []*entity.InventoryItem) map[int64]*entity.InventoryItem {
	idx := make(map[int64]*entity.InventoryItem, len(items))
	for _, it := range items {
		if it == nil || it.IsDeleted() {
			continue
		}
		idx[it.ID] = it
	}
	return idx
}

// sortedItems devuelve los ítems vivos ordenados por categoría, nombre e id.
func sortedItems(items []*entity.InventoryItem) []*entity.InventoryItem {
	out := make([]*entity.InventoryItem, 0, len(items))
	for _, it := range items {
		if it != nil && !it.IsDeleted() {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return lessRef(refOf(out[i]), refOf(out[j]))
	})
	return out
}

func lessRef(a, b ItemRef) bool {
	if a.Category != b.Category {
		return a.Category < b.Category
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.ItemID < b.ItemID
}

// percent calcula num/den*100 a 2 decimales; 0 cuando den es 0.
func percent(num, den int64) decimal.Decimal {
	if den == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(num).Div(decimal.NewFromInt(den)).Mul(hundred).Round(2)
}

func sameDay(a, b time.Time) bool {
	return entity.DateOf(a).Equal(entity.DateOf(b))
}
