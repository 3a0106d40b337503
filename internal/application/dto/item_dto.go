package dto

import "time"

// CreateItemRequest body para POST /api/items.
// Fechas en formato YYYY-MM-DD; montos en unidades menores de moneda.
type CreateItemRequest struct {
	Category          string  `json:"category"`
	Subcategory       string  `json:"subcategory"`
	Name              string  `json:"name"`
	Brand             *string `json:"brand,omitempty"`
	Quantity          int64   `json:"quantity"`
	Unit              string  `json:"unit"`
	PurchaseDate      string  `json:"purchase_date"`
	ShelfLifeValue    *int    `json:"shelf_life_value,omitempty"`
	ShelfLifeUnit     *string `json:"shelf_life_unit,omitempty"`
	Cost              int64   `json:"cost"`
	SellingPrice      *int64  `json:"selling_price,omitempty"`
	IsFixedAsset      bool    `json:"is_fixed_asset"`
	AssetLocation     *string `json:"asset_location,omitempty"`
	MinimumStockLevel *int64  `json:"minimum_stock_level,omitempty"`
	OrderQuantity     *int64  `json:"order_quantity,omitempty"`
	UserName          string  `json:"user_name,omitempty"`
}

// UpdateItemRequest body para PUT /api/items/:id. Campos nil no se modifican.
// La cantidad no es editable aquí: solo cambia vía POST /api/items/:id/count.
type UpdateItemRequest struct {
	Category          *string `json:"category,omitempty"`
	Subcategory       *string `json:"subcategory,omitempty"`
	Name              *string `json:"name,omitempty"`
	Brand             *string `json:"brand,omitempty"`
	Unit              *string `json:"unit,omitempty"`
	PurchaseDate      *string `json:"purchase_date,omitempty"`
	ShelfLifeValue    *int    `json:"shelf_life_value,omitempty"`
	ShelfLifeUnit     *string `json:"shelf_life_unit,omitempty"`
	Cost              *int64  `json:"cost,omitempty"`
	SellingPrice      *int64  `json:"selling_price,omitempty"`
	IsFixedAsset      *bool   `json:"is_fixed_asset,omitempty"`
	AssetLocation     *string `json:"asset_location,omitempty"`
	MinimumStockLevel *int64  `json:"minimum_stock_level,omitempty"`
	OrderQuantity     *int64  `json:"order_quantity,omitempty"`
	UserName          string  `json:"user_name,omitempty"`
}

// ItemFilter query de GET /api/items.
type ItemFilter struct {
	Category           string `query:"category"`
	Subcategory        string `query:"subcategory"`
	Search             string `query:"search"`
	IncludeFixedAssets *bool  `query:"include_fixed_assets"`
	PageRequest
}

// ItemResponse representación de un ítem para la API.
type ItemResponse struct {
	ID                int64      `json:"id"`
	Category          string     `json:"category"`
	Subcategory       string     `json:"subcategory"`
	Name              string     `json:"name"`
	Brand             *string    `json:"brand,omitempty"`
	Quantity          int64      `json:"quantity"`
	Unit              string     `json:"unit"`
	PurchaseDate      string     `json:"purchase_date,omitempty"`
	ShelfLifeValue    *int       `json:"shelf_life_value,omitempty"`
	ShelfLifeUnit     *string    `json:"shelf_life_unit,omitempty"`
	ExpiryDate        *string    `json:"expiry_date,omitempty"`
	ExpiryStatus      string     `json:"expiry_status"`
	Cost              int64      `json:"cost"`
	SellingPrice      *int64     `json:"selling_price,omitempty"`
	IsFixedAsset      bool       `json:"is_fixed_asset"`
	AssetLocation     *string    `json:"asset_location,omitempty"`
	MinimumStockLevel *int64     `json:"minimum_stock_level,omitempty"`
	OrderQuantity     *int64     `json:"order_quantity,omitempty"`
	StockValue        int64      `json:"stock_value"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	DeletedAt         *time.Time `json:"deleted_at,omitempty"`
}

// ItemListResponse página de ítems.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LowStockItemDTO ítem bajo su mínimo con la cantidad sugerida de pedido.
type LowStockItemDTO struct {
	Item              ItemResponse `json:"item"`
	Deficit           int64        `json:"deficit"`
	SuggestedOrderQty int64        `json:"suggested_order_qty"`
	EstimatedCost     int64        `json:"estimated_cost"` // SuggestedOrderQty * Cost
}
