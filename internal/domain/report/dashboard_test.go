package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/report"
)

func TestDashboard_Resumen(t *testing.T) {
	today := day1.Add(10 * time.Hour)

	milk := item(1, entity.CategoryKitchen, entity.SubDairy, "Leche", 2, 100)
	milk.MinimumStockLevel = ptr(int64(5))
	milk.ExpiryDate = ptr(day1.AddDate(0, 0, 3))

	yogurt := item(2, entity.CategoryKitchen, entity.SubDairy, "Yogur", 10, 50)
	yogurt.ExpiryDate = ptr(day1.AddDate(0, 0, -1))

	sofa := item(3, entity.CategoryFixedAssets, entity.SubFurniture, "Sofá", 1, 90000)
	sofa.IsFixedAsset = true
	sofa.AssetLocation = ptr("Lobby")

	entries := []*entity.InventoryLogEntry{
		entry(1, 1, entity.ActionStockRemoved, 6, 2, 600, 200, "sale", today),
		entry(2, 2, entity.ActionStockAdded, 4, 10, 200, 500, "", today),
		entry(3, 2, entity.ActionStockAdded, 0, 4, 0, 200, "", day1.AddDate(0, 0, -1)),
	}

	sum := report.Dashboard([]*entity.InventoryItem{milk, yogurt, sofa}, entries, today, 7)

	assert.Equal(t, 3, sum.TotalItems)
	assert.Equal(t, int64(200+500+90000), sum.TotalStockValue)
	assert.Equal(t, int64(90000), sum.FixedAssetValue)
	assert.Equal(t, 1, sum.LowStockCount)
	assert.Equal(t, 1, sum.ExpiringSoonCount)
	assert.Equal(t, 1, sum.ExpiredCount)
	assert.Equal(t, int64(6), sum.TodayAdded)
	assert.Equal(t, int64(4), sum.TodayRemoved)

	require.Len(t, sum.Categories, len(entity.Categories()))
	for _, c := range sum.Categories {
		switch c.Category {
		case entity.CategoryKitchen:
			assert.Equal(t, 2, c.ItemCount)
			assert.Equal(t, int64(12), c.Quantity)
		case entity.CategoryFixedAssets:
			assert.Equal(t, 1, c.ItemCount)
		default:
			assert.Zero(t, c.ItemCount)
		}
	}
}
