package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/application/dto"
	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// ToItemResponse convierte la entidad en DTO con el estado de vencimiento derivado a today.
func ToItemResponse(it *entity.InventoryItem, today time.Time, warningDays int) dto.ItemResponse {
	out := dto.ItemResponse{
		ID:                it.ID,
		Category:          string(it.Category),
		Subcategory:       string(it.Subcategory),
		Name:              it.Name,
		Brand:             it.Brand,
		Quantity:          it.Quantity,
		Unit:              it.Unit,
		ShelfLifeValue:    it.ShelfLifeValue,
		ExpiryStatus:      string(it.ExpiryStatusAt(today, warningDays)),
		Cost:              it.Cost,
		SellingPrice:      it.SellingPrice,
		IsFixedAsset:      it.IsFixedAsset,
		AssetLocation:     it.AssetLocation,
		MinimumStockLevel: it.MinimumStockLevel,
		OrderQuantity:     it.OrderQuantity,
		StockValue:        it.StockValue,
		CreatedAt:         it.CreatedAt,
		UpdatedAt:         it.UpdatedAt,
		DeletedAt:         it.DeletedAt,
	}
	if !it.PurchaseDate.IsZero() {
		out.PurchaseDate = it.PurchaseDate.Format(dateLayout)
	}
	if it.ShelfLifeUnit != nil {
		u := string(*it.ShelfLifeUnit)
		out.ShelfLifeUnit = &u
	}
	if it.ExpiryDate != nil {
		d := it.ExpiryDate.Format(dateLayout)
		out.ExpiryDate = &d
	}
	return out
}

// ToLogEntryResponse convierte una entrada del ledger en DTO.
func ToLogEntryResponse(e *entity.InventoryLogEntry) dto.LogEntryResponse {
	return dto.LogEntryResponse{
		ID:             e.ID,
		ItemID:         e.ItemID,
		Timestamp:      e.Timestamp,
		Action:         string(e.Action),
		QuantityBefore: e.QuantityBefore,
		QuantityAfter:  e.QuantityAfter,
		ValueBefore:    e.ValueBefore,
		ValueAfter:     e.ValueAfter,
		Reason:         e.Reason,
		Notes:          e.Notes,
		UserID:         e.UserID,
		UserName:       e.UserName,
		DateStamp:      e.DateStamp.Format(dateLayout),
	}
}

// parseDate interpreta YYYY-MM-DD; vacío devuelve def.
func parseDate(field, raw string, def time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s debe tener formato YYYY-MM-DD", domain.ErrInvalidInput, field)
	}
	return t, nil
}

func parseShelfLifeUnit(raw *string) (*entity.ShelfLifeUnit, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	u, err := entity.ParseShelfLifeUnit(*raw)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
