package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
)

func TestParseSubcategory_RechazaCombinacionInvalida(t *testing.T) {
	sub, err := entity.ParseSubcategory(entity.CategoryBeerRoom, " Craft_Beer ")
	require.NoError(t, err)
	assert.Equal(t, entity.SubCraftBeer, sub)

	_, err = entity.ParseSubcategory(entity.CategoryKitchen, "craft_beer")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = entity.ParseCategory("spa")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategories_CadaUnaTieneSubcategorias(t *testing.T) {
	for _, c := range entity.Categories() {
		subs := c.Subcategories()
		require.NotEmpty(t, subs, string(c))
		for _, s := range subs {
			assert.True(t, c.Allows(s))
		}
	}
}

func TestDeriveExpiry_SumaVidaUtil(t *testing.T) {
	two := 2
	weeks := entity.ShelfLifeWeeks
	it := &entity.InventoryItem{
		PurchaseDate:   time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC),
		ShelfLifeValue: &two,
		ShelfLifeUnit:  &weeks,
	}

	it.DeriveExpiry()

	require.NotNil(t, it.ExpiryDate)
	assert.Equal(t, time.Date(2024, 2, 13, 0, 0, 0, 0, time.UTC), *it.ExpiryDate)
}

func TestDeriveExpiry_ActivoFijoSinVencimiento(t *testing.T) {
	one := 1
	years := entity.ShelfLifeYears
	it := &entity.InventoryItem{
		IsFixedAsset:   true,
		PurchaseDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ShelfLifeValue: &one,
		ShelfLifeUnit:  &years,
	}

	it.DeriveExpiry()

	assert.Nil(t, it.ExpiryDate)
	assert.Nil(t, it.ShelfLifeValue)
	assert.Nil(t, it.ShelfLifeUnit)
}

func TestExpiryStatusAt(t *testing.T) {
	today := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
	exp := func(days int) *entity.InventoryItem {
		d := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
		return &entity.InventoryItem{ExpiryDate: &d}
	}

	assert.Equal(t, entity.ExpiryExpired, exp(-1).ExpiryStatusAt(today, 7))
	assert.Equal(t, entity.ExpiryExpiringSoon, exp(0).ExpiryStatusAt(today, 7))
	assert.Equal(t, entity.ExpiryExpiringSoon, exp(7).ExpiryStatusAt(today, 7))
	assert.Equal(t, entity.ExpiryValid, exp(8).ExpiryStatusAt(today, 7))
	assert.Equal(t, entity.ExpiryValid, (&entity.InventoryItem{}).ExpiryStatusAt(today, 7))
}

func TestValidate_ActivoFijoRequiereUbicacion(t *testing.T) {
	it := &entity.InventoryItem{
		Name:         "Televisor",
		Category:     entity.CategoryFixedAssets,
		Subcategory:  entity.SubElectronics,
		IsFixedAsset: true,
	}
	assert.ErrorIs(t, it.Validate(), domain.ErrInvalidInput)

	room := "Habitación 204"
	it.AssetLocation = &room
	assert.NoError(t, it.Validate())
}

func TestValidate_CantidadNegativa(t *testing.T) {
	it := &entity.InventoryItem{
		Name:        "Cerveza",
		Category:    entity.CategoryBeerRoom,
		Subcategory: entity.SubCannedBeer,
		Quantity:    -1,
	}
	assert.ErrorIs(t, it.Validate(), domain.ErrInvalidInput)
}

func TestLogEntry_HasReasonIgnoraMayusculas(t *testing.T) {
	e := &entity.InventoryLogEntry{Reason: "  Waste "}
	assert.True(t, e.HasReason(entity.ReasonWaste))
	assert.False(t, e.HasReason(entity.ReasonSale))

	_, err := entity.ParseLogAction("stock_moved")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
