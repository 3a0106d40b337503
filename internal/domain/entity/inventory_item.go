package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/domain"
)

// ShelfLifeUnit unidad de la vida útil de un ítem perecedero.
type ShelfLifeUnit string

const (
	ShelfLifeDays   ShelfLifeUnit = "days"
	ShelfLifeWeeks  ShelfLifeUnit = "weeks"
	ShelfLifeMonths ShelfLifeUnit = "months"
	ShelfLifeYears  ShelfLifeUnit = "years"
)

// ParseShelfLifeUnit valida la unidad de vida útil.
func ParseShelfLifeUnit(raw string) (ShelfLifeUnit, error) {
	u := ShelfLifeUnit(strings.ToLower(strings.TrimSpace(raw)))
	switch u {
	case ShelfLifeDays, ShelfLifeWeeks, ShelfLifeMonths, ShelfLifeYears:
		return u, nil
	}
	return "", fmt.Errorf("%w: unidad de vida útil desconocida %q", domain.ErrInvalidInput, raw)
}

// ExpiryStatus estado de vencimiento derivado de ExpiryDate frente a la fecha actual.
type ExpiryStatus string

const (
	ExpiryValid        ExpiryStatus = "valid"
	ExpiryExpiringSoon ExpiryStatus = "expiring_soon"
	ExpiryExpired      ExpiryStatus = "expired"
)

// InventoryItem estado actual de un ítem de inventario del hotel.
// Cost, SellingPrice y StockValue están en unidades menores de moneda (centavos).
// StockValue se mantiene coherente con Quantity en cada mutación (ver inventory.ValueAfter).
type InventoryItem struct {
	ID                int64
	Category          Category
	Subcategory       Subcategory
	Name              string
	Brand             *string
	Quantity          int64
	Unit              string
	PurchaseDate      time.Time // fecha calendario
	ShelfLifeValue    *int
	ShelfLifeUnit     *ShelfLifeUnit
	ExpiryDate        *time.Time // derivada de PurchaseDate + vida útil
	Cost              int64      // costo unitario; 0 = no registrado
	SellingPrice      *int64
	IsFixedAsset      bool
	AssetLocation     *string
	MinimumStockLevel *int64
	OrderQuantity     *int64
	StockValue        int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time // borrado lógico; el historial del ledger conserva la referencia
}

// IsDeleted indica si el ítem fue eliminado lógicamente.
func (i *InventoryItem) IsDeleted() bool {
	return i.DeletedAt != nil
}

// Validate verifica las invariantes de un ítem antes de persistirlo.
func (i *InventoryItem) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if !i.Category.Valid() {
		return fmt.Errorf("%w: categoría inválida", domain.ErrInvalidInput)
	}
	if !i.Category.Allows(i.Subcategory) {
		return fmt.Errorf("%w: subcategoría %q no pertenece a %s", domain.ErrInvalidInput, i.Subcategory, i.Category)
	}
	if i.Quantity < 0 {
		return fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrInvalidInput)
	}
	if i.Cost < 0 || i.StockValue < 0 {
		return fmt.Errorf("%w: cost y stock_value no pueden ser negativos", domain.ErrInvalidInput)
	}
	if i.SellingPrice != nil && *i.SellingPrice < 0 {
		return fmt.Errorf("%w: selling_price no puede ser negativo", domain.ErrInvalidInput)
	}
	if i.MinimumStockLevel != nil && *i.MinimumStockLevel < 0 {
		return fmt.Errorf("%w: minimum_stock_level no puede ser negativo", domain.ErrInvalidInput)
	}
	if i.OrderQuantity != nil && *i.OrderQuantity < 0 {
		return fmt.Errorf("%w: order_quantity no puede ser negativo", domain.ErrInvalidInput)
	}
	if i.IsFixedAsset {
		if i.AssetLocation == nil || strings.TrimSpace(*i.AssetLocation) == "" {
			return fmt.Errorf("%w: asset_location es requerido para activos fijos", domain.ErrInvalidInput)
		}
		return nil
	}
	if (i.ShelfLifeValue == nil) != (i.ShelfLifeUnit == nil) {
		return fmt.Errorf("%w: shelf_life_value y shelf_life_unit van juntos", domain.ErrInvalidInput)
	}
	if i.ShelfLifeValue != nil && *i.ShelfLifeValue <= 0 {
		return fmt.Errorf("%w: shelf_life_value debe ser positivo", domain.ErrInvalidInput)
	}
	return nil
}

// DeriveExpiry recalcula ExpiryDate. Los activos fijos nunca llevan vida útil ni vencimiento.
func (i *InventoryItem) DeriveExpiry() {
	if i.IsFixedAsset {
		i.ShelfLifeValue = nil
		i.ShelfLifeUnit = nil
		i.ExpiryDate = nil
		return
	}
	if i.ShelfLifeValue == nil || i.ShelfLifeUnit == nil || i.PurchaseDate.IsZero() {
		i.ExpiryDate = nil
		return
	}
	exp := ExpiryDateFor(i.PurchaseDate, *i.ShelfLifeValue, *i.ShelfLifeUnit)
	i.ExpiryDate = &exp
}

// ExpiryStatusAt deriva el estado de vencimiento respecto a today (fecha calendario).
// Ítems sin fecha de vencimiento se consideran válidos.
func (i *InventoryItem) ExpiryStatusAt(today time.Time, warningDays int) ExpiryStatus {
	if i.IsFixedAsset || i.ExpiryDate == nil {
		return ExpiryValid
	}
	day := DateOf(today)
	exp := DateOf(*i.ExpiryDate)
	if exp.Before(day) {
		return ExpiryExpired
	}
	if !exp.After(day.AddDate(0, 0, warningDays)) {
		return ExpiryExpiringSoon
	}
	return ExpiryValid
}

// IsLowStock indica si la cantidad está en o por debajo del mínimo configurado.
func (i *InventoryItem) IsLowStock() bool {
	return i.MinimumStockLevel != nil && i.Quantity <= *i.MinimumStockLevel
}

// ExpiryDateFor suma la vida útil a la fecha de compra.
func ExpiryDateFor(purchase time.Time, value int, unit ShelfLifeUnit) time.Time {
	d := DateOf(purchase)
	switch unit {
	case ShelfLifeWeeks:
		return d.AddDate(0, 0, 7*value)
	case ShelfLifeMonths:
		return d.AddDate(0, value, 0)
	case ShelfLifeYears:
		return d.AddDate(value, 0, 0)
	default:
		return d.AddDate(0, 0, value)
	}
}

// DateOf trunca t a su fecha calendario (en la zona de t) y la expresa como medianoche UTC,
// que es como pgx devuelve las columnas DATE.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
