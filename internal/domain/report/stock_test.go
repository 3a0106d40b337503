package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/report"
)

func TestStock_ReconstruyeStockInicial(t *testing.T) {
	choc := item(1, entity.CategoryChocolateRoom, entity.SubChocolates, "Bombones", 6, 150)
	idle := item(2, entity.CategoryChocolateRoom, entity.SubPackaging, "Cajas", 40, 20)
	entries := []*entity.InventoryLogEntry{
		entry(1, 1, entity.ActionStockRemoved, 12, 9, 1800, 1350, "sale", day1),
		entry(2, 1, entity.ActionCountAdjustment, 9, 7, 1350, 1050, "", day1),
		entry(3, 1, entity.ActionStockRemoved, 7, 6, 1050, 900, "waste", day1),
		entry(4, 1, entity.ActionCountAdjustment, 6, 6, 900, 850, "", day1),
	}

	rows := report.Stock([]*entity.InventoryItem{choc, idle}, entries)

	require.Len(t, rows, 2)
	assert.Equal(t, "Bombones", rows[0].Name)
	assert.Equal(t, int64(4), rows[0].Sales)
	assert.Equal(t, int64(2), rows[0].Waste)
	assert.Equal(t, int64(12), rows[0].InitialStock)
	assert.Equal(t, int64(6), rows[0].Balance)

	assert.Equal(t, report.StockRow{
		ItemRef:      report.ItemRef{ItemID: 2, Name: "Cajas", Category: entity.CategoryChocolateRoom, Subcategory: entity.SubPackaging, Unit: "unit"},
		InitialStock: 40,
		Balance:      40,
		StockValue:   800,
	}, rows[1])
}

// Dos llamadas con los mismos datos devuelven filas idénticas.
func TestStock_Idempotente(t *testing.T) {
	items := []*entity.InventoryItem{
		item(3, entity.CategoryKitchen, entity.SubDryGoods, "Arroz", 50, 30),
		item(1, entity.CategoryBeerRoom, entity.SubDraftBeer, "Barril", 2, 9000),
		item(2, entity.CategoryKitchen, entity.SubDryGoods, "Arroz", 10, 30),
	}
	entries := []*entity.InventoryLogEntry{
		entry(1, 3, entity.ActionStockRemoved, 60, 50, 1800, 1500, "sale", day1),
		entry(2, 1, entity.ActionStockRemoved, 3, 2, 27000, 18000, "sale", day1.Add(time.Hour)),
	}

	first := report.Stock(items, entries)
	second := report.Stock(items, entries)

	assert.Equal(t, first, second)
	require.Len(t, first, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{first[0].ItemID, first[1].ItemID, first[2].ItemID})
}
