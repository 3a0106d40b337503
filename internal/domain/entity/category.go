package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/hotel-inventory/internal/domain"
)

// Category es el área del hotel a la que pertenece un ítem (conjunto cerrado).
type Category string

// Categorías de inventario.
const (
	CategoryChocolateRoom Category = "chocolate_room"
	CategoryBeerRoom      Category = "beer_room"
	CategoryFixedAssets   Category = "fixed_assets"
	CategoryKitchen       Category = "kitchen"
)

// Subcategory es válida solo dentro de su categoría; ver ParseSubcategory.
type Subcategory string

// Subcategorías por categoría.
const (
	SubChocolates   Subcategory = "chocolates"
	SubTruffles     Subcategory = "truffles"
	SubPralines     Subcategory = "pralines"
	SubBars         Subcategory = "bars"
	SubHotChocolate Subcategory = "hot_chocolate"
	SubPackaging    Subcategory = "packaging"
	SubDraftBeer    Subcategory = "draft_beer"
	SubBottledBeer  Subcategory = "bottled_beer"
	SubCannedBeer   Subcategory = "canned_beer"
	SubCraftBeer    Subcategory = "craft_beer"
	SubSpirits      Subcategory = "spirits"
	SubSoftDrinks   Subcategory = "soft_drinks"
	SubSnacks       Subcategory = "snacks"
	SubFurniture    Subcategory = "furniture"
	SubEquipment    Subcategory = "equipment"
	SubElectronics  Subcategory = "electronics"
	SubLinens       Subcategory = "linens"
	SubDecor        Subcategory = "decor"
	SubProduce      Subcategory = "produce"
	SubDairy        Subcategory = "dairy"
	SubMeat         Subcategory = "meat"
	SubSeafood      Subcategory = "seafood"
	SubDryGoods     Subcategory = "dry_goods"
	SubBeverages    Subcategory = "beverages"
	SubSpices       Subcategory = "spices"
	SubCleaning     Subcategory = "cleaning_supplies"
)

var categoryOrder = []Category{
	CategoryChocolateRoom,
	CategoryBeerRoom,
	CategoryFixedAssets,
	CategoryKitchen,
}

var subcategoriesByCategory = map[Category][]Subcategory{
	CategoryChocolateRoom: {SubChocolates, SubTruffles, SubPralines, SubBars, SubHotChocolate, SubPackaging},
	CategoryBeerRoom:      {SubDraftBeer, SubBottledBeer, SubCannedBeer, SubCraftBeer, SubSpirits, SubSoftDrinks, SubSnacks},
	CategoryFixedAssets:   {SubFurniture, SubEquipment, SubElectronics, SubLinens, SubDecor},
	CategoryKitchen:       {SubProduce, SubDairy, SubMeat, SubSeafood, SubDryGoods, SubBeverages, SubSpices, SubCleaning},
}

// Categories devuelve todas las categorías en orden de presentación.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Valid indica si la categoría pertenece al conjunto cerrado.
func (c Category) Valid() bool {
	_, ok := subcategoriesByCategory[c]
	return ok
}

// Subcategories devuelve las subcategorías permitidas para la categoría.
func (c Category) Subcategories() []Subcategory {
	subs := subcategoriesByCategory[c]
	out := make([]Subcategory, len(subs))
	copy(out, subs)
	return out
}

// Allows indica si sub pertenece a la categoría.
func (c Category) Allows(sub Subcategory) bool {
	for _, s := range subcategoriesByCategory[c] {
		if s == sub {
			return true
		}
	}
	return false
}

// ParseCategory normaliza y valida una categoría recibida en el borde (HTTP, CSV, etc.).
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: categoría desconocida %q", domain.ErrInvalidInput, raw)
	}
	return c, nil
}

// ParseSubcategory valida que la subcategoría exista dentro de la categoría dada,
// de modo que una combinación inválida nunca llega al dominio.
func ParseSubcategory(c Category, raw string) (Subcategory, error) {
	sub := Subcategory(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Allows(sub) {
		return "", fmt.Errorf("%w: subcategoría %q no pertenece a %s", domain.ErrInvalidInput, raw, c)
	}
	return sub, nil
}
