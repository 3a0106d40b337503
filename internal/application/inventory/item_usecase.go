package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/hotel-inventory/internal/application/dto"
	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/inventory"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
)

const (
	defaultLogLimit = 100
	maxLogLimit     = 500
)

// ItemUseCase altas, ediciones, bajas y consultas de ítems.
// Toda mutación escribe su entrada de ledger en la misma transacción que el ítem.
type ItemUseCase struct {
	txRunner    TxRunner
	itemRepo    repository.ItemRepository
	logRepo     repository.InventoryLogRepository
	ledger      *LedgerWriter
	warningDays int
}

// NewItemUseCase construye el caso de uso. itemRepo y logRepo se usan para lecturas fuera de tx.
func NewItemUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	logRepo repository.InventoryLogRepository,
	ledger *LedgerWriter,
	warningDays int,
) *ItemUseCase {
	if warningDays <= 0 {
		warningDays = 7
	}
	return &ItemUseCase{
		txRunner:    txRunner,
		itemRepo:    itemRepo,
		logRepo:     logRepo,
		ledger:      ledger,
		warningDays: warningDays,
	}
}

// AddItem crea el ítem con StockValue = Quantity × Cost y registra item_created.
func (uc *ItemUseCase) AddItem(ctx context.Context, req dto.CreateItemRequest, actor dto.Actor) (*dto.ItemResponse, error) {
	cat, err := entity.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	sub, err := entity.ParseSubcategory(cat, req.Subcategory)
	if err != nil {
		return nil, err
	}
	purchase, err := parseDate("purchase_date", req.PurchaseDate, uc.ledger.Today())
	if err != nil {
		return nil, err
	}
	unit, err := parseShelfLifeUnit(req.ShelfLifeUnit)
	if err != nil {
		return nil, err
	}

	item := &entity.InventoryItem{
		Category:          cat,
		Subcategory:       sub,
		Name:              strings.TrimSpace(req.Name),
		Brand:             req.Brand,
		Quantity:          req.Quantity,
		Unit:              strings.TrimSpace(req.Unit),
		PurchaseDate:      entity.DateOf(purchase),
		ShelfLifeValue:    req.ShelfLifeValue,
		ShelfLifeUnit:     unit,
		Cost:              req.Cost,
		SellingPrice:      req.SellingPrice,
		IsFixedAsset:      req.IsFixedAsset,
		AssetLocation:     req.AssetLocation,
		MinimumStockLevel: req.MinimumStockLevel,
		OrderQuantity:     req.OrderQuantity,
		StockValue:        req.Quantity * req.Cost,
	}
	item.DeriveExpiry()
	if err := item.Validate(); err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, logRepo repository.InventoryLogRepository) error {
		if err := itemRepo.Create(ctx, item); err != nil {
			return err
		}
		_, err := uc.ledger.Append(ctx, logRepo, LedgerInput{
			ItemID:         item.ID,
			Action:         entity.ActionItemCreated,
			QuantityBefore: i64(0),
			QuantityAfter:  i64(item.Quantity),
			ValueBefore:    i64(0),
			ValueAfter:     i64(item.StockValue),
			UserID:         actor.UserID,
			UserName:       actor.UserName,
		})
		return err
	})
	if err != nil {
		err = domain.WrapStorage("crear ítem", err)
		logFailure(err, 0, "crear ítem")
		return nil, err
	}

	log.Info().Int64("item_id", item.ID).Str("category", string(cat)).Str("name", item.Name).Msg("ítem creado")
	out := ToItemResponse(item, uc.ledger.Today(), uc.warningDays)
	return &out, nil
}

// UpdateItem edita campos descriptivos y de precio. La cantidad no se toca aquí.
// Si cambia Cost (y es > 0), StockValue se recalcula a Quantity × Cost.
func (uc *ItemUseCase) UpdateItem(ctx context.Context, id int64, req dto.UpdateItemRequest, actor dto.Actor) (*dto.ItemResponse, error) {
	var updated *entity.InventoryItem
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, logRepo repository.InventoryLogRepository) error {
		item, err := lockItem(ctx, itemRepo, id)
		if err != nil {
			return err
		}
		valueBefore := item.StockValue
		changed, err := applyUpdate(item, req)
		if err != nil {
			return err
		}
		if len(changed) == 0 {
			updated = item
			return nil
		}
		item.DeriveExpiry()
		if err := item.Validate(); err != nil {
			return err
		}
		item.UpdatedAt = uc.ledger.Now()
		if err := itemRepo.Update(ctx, item); err != nil {
			return err
		}
		if _, err := uc.ledger.Append(ctx, logRepo, LedgerInput{
			ItemID:         item.ID,
			Action:         entity.ActionItemUpdated,
			QuantityBefore: i64(item.Quantity),
			QuantityAfter:  i64(item.Quantity),
			ValueBefore:    i64(valueBefore),
			ValueAfter:     i64(item.StockValue),
			Notes:          "campos: " + strings.Join(changed, ", "),
			UserID:         actor.UserID,
			UserName:       actor.UserName,
		}); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		err = domain.WrapStorage("actualizar ítem", err)
		logFailure(err, id, "actualizar ítem")
		return nil, err
	}
	log.Info().Int64("item_id", id).Msg("ítem actualizado")
	out := ToItemResponse(updated, uc.ledger.Today(), uc.warningDays)
	return &out, nil
}

// applyUpdate aplica los campos presentes en req y devuelve sus nombres.
func applyUpdate(item *entity.InventoryItem, req dto.UpdateItemRequest) ([]string, error) {
	var changed []string

	if req.Category != nil {
		cat, err := entity.ParseCategory(*req.Category)
		if err != nil {
			return nil, err
		}
		if cat != item.Category {
			item.Category = cat
			changed = append(changed, "category")
		}
	}
	if req.Subcategory != nil {
		sub, err := entity.ParseSubcategory(item.Category, *req.Subcategory)
		if err != nil {
			return nil, err
		}
		if sub != item.Subcategory {
			item.Subcategory = sub
			changed = append(changed, "subcategory")
		}
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) != item.Name {
		item.Name = strings.TrimSpace(*req.Name)
		changed = append(changed, "name")
	}
	if req.Brand != nil && !eqPtr(req.Brand, item.Brand) {
		item.Brand = req.Brand
		changed = append(changed, "brand")
	}
	if req.Unit != nil && strings.TrimSpace(*req.Unit) != item.Unit {
		item.Unit = strings.TrimSpace(*req.Unit)
		changed = append(changed, "unit")
	}
	if req.PurchaseDate != nil {
		d, err := parseDate("purchase_date", *req.PurchaseDate, item.PurchaseDate)
		if err != nil {
			return nil, err
		}
		if !d.Equal(item.PurchaseDate) {
			item.PurchaseDate = entity.DateOf(d)
			changed = append(changed, "purchase_date")
		}
	}
	if req.ShelfLifeValue != nil && !eqPtr(req.ShelfLifeValue, item.ShelfLifeValue) {
		item.ShelfLifeValue = req.ShelfLifeValue
		changed = append(changed, "shelf_life_value")
	}
	if req.ShelfLifeUnit != nil {
		unit, err := parseShelfLifeUnit(req.ShelfLifeUnit)
		if err != nil {
			return nil, err
		}
		if !eqPtr(unit, item.ShelfLifeUnit) {
			item.ShelfLifeUnit = unit
			changed = append(changed, "shelf_life_unit")
		}
	}
	if req.Cost != nil && *req.Cost != item.Cost {
		if *req.Cost < 0 {
			return nil, fmt.Errorf("%w: cost no puede ser negativo", domain.ErrInvalidInput)
		}
		item.Cost = *req.Cost
		if item.Cost > 0 {
			item.StockValue = item.Quantity * item.Cost
		}
		changed = append(changed, "cost")
	}
	if req.SellingPrice != nil && !eqPtr(req.SellingPrice, item.SellingPrice) {
		item.SellingPrice = req.SellingPrice
		changed = append(changed, "selling_price")
	}
	if req.IsFixedAsset != nil && *req.IsFixedAsset != item.IsFixedAsset {
		item.IsFixedAsset = *req.IsFixedAsset
		changed = append(changed, "is_fixed_asset")
	}
	if req.AssetLocation != nil && !eqPtr(req.AssetLocation, item.AssetLocation) {
		item.AssetLocation = req.AssetLocation
		changed = append(changed, "asset_location")
	}
	if req.MinimumStockLevel != nil && !eqPtr(req.MinimumStockLevel, item.MinimumStockLevel) {
		item.MinimumStockLevel = req.MinimumStockLevel
		changed = append(changed, "minimum_stock_level")
	}
	if req.OrderQuantity != nil && !eqPtr(req.OrderQuantity, item.OrderQuantity) {
		item.OrderQuantity = req.OrderQuantity
		changed = append(changed, "order_quantity")
	}
	return changed, nil
}

// eqPtr compara los valores apuntados; dos nil son iguales.
func eqPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// DeleteItem elimina lógicamente el ítem y registra item_deleted. Su historial se conserva.
func (uc *ItemUseCase) DeleteItem(ctx context.Context, id int64, actor dto.Actor) error {
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, logRepo repository.InventoryLogRepository) error {
		item, err := lockItem(ctx, itemRepo, id)
		if err != nil {
			return err
		}
		if err := itemRepo.SoftDelete(ctx, id, uc.ledger.Now()); err != nil {
			return err
		}
		_, err = uc.ledger.Append(ctx, logRepo, LedgerInput{
			ItemID:         id,
			Action:         entity.ActionItemDeleted,
			QuantityBefore: i64(item.Quantity),
			ValueBefore:    i64(item.StockValue),
			UserID:         actor.UserID,
			UserName:       actor.UserName,
		})
		return err
	})
	if err != nil {
		err = domain.WrapStorage("eliminar ítem", err)
		logFailure(err, id, "eliminar ítem")
		return err
	}
	log.Info().Int64("item_id", id).Msg("ítem eliminado")
	return nil
}

// GetItem devuelve un ítem no eliminado.
func (uc *ItemUseCase) GetItem(ctx context.Context, id int64) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.WrapStorage("obtener ítem", err)
	}
	if item == nil || item.IsDeleted() {
		return nil, fmt.Errorf("%w: ítem %d", domain.ErrNotFound, id)
	}
	out := ToItemResponse(item, uc.ledger.Today(), uc.warningDays)
	return &out, nil
}

// ListItems lista los ítems no eliminados según el filtro.
func (uc *ItemUseCase) ListItems(ctx context.Context, f dto.ItemFilter) (*dto.ItemListResponse, error) {
	f.DefaultPage()
	q, err := repository.ParseItemQuery(f.Category, f.Subcategory)
	if err != nil {
		return nil, err
	}
	q = q.WithSearch(strings.TrimSpace(f.Search)).WithPage(f.Limit, f.Offset)
	if f.IncludeFixedAssets != nil && !*f.IncludeFixedAssets {
		q = q.WithoutFixedAssets()
	}

	items, err := uc.itemRepo.List(ctx, q)
	if err != nil {
		return nil, domain.WrapStorage("listar ítems", err)
	}
	today := uc.ledger.Today()
	out := &dto.ItemListResponse{
		Items: make([]dto.ItemResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}
	for _, it := range items {
		out.Items = append(out.Items, ToItemResponse(it, today, uc.warningDays))
	}
	return out, nil
}

// LowStock lista los ítems en o bajo su mínimo con la cantidad sugerida de pedido.
func (uc *ItemUseCase) LowStock(ctx context.Context, category string) ([]dto.LowStockItemDTO, error) {
	q, err := repository.ParseItemQuery(category, "")
	if err != nil {
		return nil, err
	}
	items, err := uc.itemRepo.List(ctx, q)
	if err != nil {
		return nil, domain.WrapStorage("stock bajo", err)
	}
	today := uc.ledger.Today()
	suggestions := inventory.LowStock(items)
	out := make([]dto.LowStockItemDTO, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, dto.LowStockItemDTO{
			Item:              ToItemResponse(s.Item, today, uc.warningDays),
			Deficit:           s.Deficit,
			SuggestedOrderQty: s.SuggestedOrderQty,
			EstimatedCost:     s.SuggestedOrderQty * s.Item.Cost,
		})
	}
	return out, nil
}

// Expiring lista los ítems perecederos vencidos o por vencer en days días (0 = umbral configurado).
func (uc *ItemUseCase) Expiring(ctx context.Context, days int) ([]dto.ItemResponse, error) {
	if days <= 0 {
		days = uc.warningDays
	}
	items, err := uc.itemRepo.List(ctx, repository.NewItemQuery().WithoutFixedAssets())
	if err != nil {
		return nil, domain.WrapStorage("ítems por vencer", err)
	}
	today := uc.ledger.Today()
	expiring := inventory.Expiring(items, today, days)
	out := make([]dto.ItemResponse, 0, len(expiring))
	for _, it := range expiring {
		out = append(out, ToItemResponse(it, today, days))
	}
	return out, nil
}

// GetItemLogs devuelve el historial del ítem, más reciente primero. Los ítems eliminados
// conservan su historial; solo un id inexistente da ErrNotFound.
func (uc *ItemUseCase) GetItemLogs(ctx context.Context, itemID int64, limit int) ([]dto.LogEntryResponse, error) {
	if limit <= 0 {
		limit = defaultLogLimit
	}
	if limit > maxLogLimit {
		limit = maxLogLimit
	}
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, domain.WrapStorage("historial", err)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: ítem %d", domain.ErrNotFound, itemID)
	}
	entries, err := uc.logRepo.ListByItem(ctx, itemID, limit)
	if err != nil {
		return nil, domain.WrapStorage("historial", err)
	}
	out := make([]dto.LogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToLogEntryResponse(e))
	}
	return out, nil
}
