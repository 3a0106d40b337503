package report

import (
	"time"

	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
)

// CategorySummary totales de una categoría.
type CategorySummary struct {
	Category   entity.Category `json:"category"`
	ItemCount  int             `json:"item_count"`
	Quantity   int64           `json:"quantity"`
	StockValue int64           `json:"stock_value"`
}

// DashboardSummary resumen del inventario a la fecha.
type DashboardSummary struct {
	Date              time.Time         `json:"date"`
	TotalItems        int               `json:"total_items"`
	TotalStockValue   int64             `json:"total_stock_value"`
	FixedAssetValue   int64             `json:"fixed_asset_value"`
	LowStockCount     int               `json:"low_stock_count"`
	ExpiringSoonCount int               `json:"expiring_soon_count"`
	ExpiredCount      int               `json:"expired_count"`
	TodayAdded        int64             `json:"today_added"`
	TodayRemoved      int64             `json:"today_removed"`
	Categories        []CategorySummary `json:"categories"`
}

// Dashboard resume la foto actual y la actividad del día. entries puede traer más días;
// solo cuentan las entradas cuyo date_stamp es today. Las cuatro categorías aparecen siempre.
func Dashboard(
	items []*entity.InventoryItem,
	entries []*entity.InventoryLogEntry,
	today time.Time,
	warningDays int,
) DashboardSummary {
	sum := DashboardSummary{Date: entity.DateOf(today)}

	byCat := make(map[entity.Category]*CategorySummary)
	for _, c := range entity.Categories() {
		sum.Categories = append(sum.Categories, CategorySummary{Category: c})
	}
	for i := range sum.Categories {
		byCat[sum.Categories[i].Category] = &sum.Categories[i]
	}

	idx := indexItems(items)
	for _, it := range idx {
		sum.TotalItems++
		sum.TotalStockValue += it.StockValue
		if it.IsFixedAsset {
			sum.FixedAssetValue += it.StockValue
		}
		if it.IsLowStock() {
			sum.LowStockCount++
		}
		switch it.ExpiryStatusAt(today, warningDays) {
		case entity.ExpiryExpiringSoon:
			sum.ExpiringSoonCount++
		case entity.ExpiryExpired:
			sum.ExpiredCount++
		}
		if c, ok := byCat[it.Category]; ok {
			c.ItemCount++
			c.Quantity += it.Quantity
			c.StockValue += it.StockValue
		}
	}

	for _, e := range entries {
		if _, ok := idx[e.ItemID]; !ok || !sameDay(e.DateStamp, today) {
			continue
		}
		switch e.Action {
		case entity.ActionStockAdded:
			sum.TodayAdded += e.QuantityIncrease()
		case entity.ActionStockRemoved:
			sum.TodayRemoved += e.QuantityDecrease()
		}
	}
	return sum
}
