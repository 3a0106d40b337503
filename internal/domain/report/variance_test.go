package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/report"
)

// Ítem en 10, +5 y luego −3 el mismo día → added 5, removed 3, adjusted 0, variance 2.
func TestVariance_EntradaYSalidaMismoDia(t *testing.T) {
	beer := item(1, entity.CategoryBeerRoom, entity.SubBottledBeer, "Club Colombia", 12, 300)
	entries := []*entity.InventoryLogEntry{
		entry(1, 1, entity.ActionStockAdded, 10, 15, 3000, 4500, "delivery", day1.Add(9*time.Hour)),
		entry(2, 1, entity.ActionStockRemoved, 15, 12, 4500, 3600, "sale", day1.Add(18*time.Hour)),
	}

	rows := report.Variance([]*entity.InventoryItem{beer}, entries)

	require.Len(t, rows, 1)
	assert.Equal(t, int64(5), rows[0].Added)
	assert.Equal(t, int64(3), rows[0].Removed)
	assert.Equal(t, int64(0), rows[0].Adjusted)
	assert.Equal(t, int64(2), rows[0].DailyVariance)
	assert.Equal(t, 2, rows[0].Entries)
	assert.Equal(t, day1, rows[0].Date)
}

func TestVariance_AjusteCuentaEnValorAbsoluto(t *testing.T) {
	kit := item(1, entity.CategoryKitchen, entity.SubDairy, "Leche", 4, 0)
	entries := []*entity.InventoryLogEntry{
		entry(1, 1, entity.ActionCountAdjustment, 6, 4, 1200, 800, "", day1),
	}

	rows := report.Variance([]*entity.InventoryItem{kit}, entries)

	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].Adjusted)
	assert.Equal(t, rows[0].Added-rows[0].Removed+rows[0].Adjusted, rows[0].DailyVariance)
}

func TestVariance_OrdenDiaDescCategoriaNombre(t *testing.T) {
	items := []*entity.InventoryItem{
		item(1, entity.CategoryKitchen, entity.SubProduce, "Tomate", 1, 1),
		item(2, entity.CategoryBeerRoom, entity.SubCraftBeer, "Stout", 1, 1),
		item(3, entity.CategoryBeerRoom, entity.SubCraftBeer, "Ale", 1, 1),
	}
	day2 := day1.AddDate(0, 0, 1)
	entries := []*entity.InventoryLogEntry{
		entry(1, 1, entity.ActionStockAdded, 0, 1, 0, 1, "", day1),
		entry(2, 2, entity.ActionStockAdded, 0, 1, 0, 1, "", day2),
		entry(3, 3, entity.ActionStockAdded, 0, 1, 0, 1, "", day2),
		entry(4, 1, entity.ActionStockAdded, 0, 1, 0, 1, "", day2),
	}

	rows := report.Variance(items, entries)

	require.Len(t, rows, 4)
	got := make([]string, 0, len(rows))
	for _, r := range rows {
		got = append(got, r.Date.Format("02")+" "+r.Name)
	}
	assert.Equal(t, []string{"11 Ale", "11 Stout", "11 Tomate", "10 Tomate"}, got)
}

func TestVariance_IgnoraItemsEliminados(t *testing.T) {
	gone := item(1, entity.CategoryKitchen, entity.SubMeat, "Res", 0, 100)
	gone.DeletedAt = ptr(day1)
	entries := []*entity.InventoryLogEntry{
		entry(1, 1, entity.ActionStockRemoved, 5, 0, 500, 0, "waste", day1),
	}

	assert.Empty(t, report.Variance([]*entity.InventoryItem{gone}, entries))
}
