package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, category, subcategory, name, brand, quantity, unit, purchase_date,
	shelf_life_value, shelf_life_unit, expiry_date, cost, selling_price, is_fixed_asset,
	asset_location, minimum_stock_level, order_quantity, stock_value, created_at, updated_at, deleted_at`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para ítems. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un ítem nuevo y asigna ID, CreatedAt y UpdatedAt.
func (r *ItemRepo) Create(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (category, subcategory, name, brand, quantity, unit, purchase_date,
			shelf_life_value, shelf_life_unit, expiry_date, cost, selling_price, is_fixed_asset,
			asset_location, minimum_stock_level, order_quantity, stock_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		string(it.Category), string(it.Subcategory), it.Name, it.Brand, it.Quantity, it.Unit, it.PurchaseDate,
		it.ShelfLifeValue, shelfUnitArg(it.ShelfLifeUnit), it.ExpiryDate, it.Cost, it.SellingPrice, it.IsFixedAsset,
		it.AssetLocation, it.MinimumStockLevel, it.OrderQuantity, it.StockValue,
	).Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID, incluidos los eliminados lógicamente.
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	it, err := scanItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// GetForUpdate obtiene el ítem bloqueando la fila hasta el fin de la transacción.
func (r *ItemRepo) GetForUpdate(ctx context.Context, id int64) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1 FOR UPDATE`
	it, err := scanItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item for update: %w", err)
	}
	return it, nil
}

// Update persiste los campos editables del ítem (no toca quantity).
func (r *ItemRepo) Update(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items SET
			category = $2, subcategory = $3, name = $4, brand = $5, unit = $6, purchase_date = $7,
			shelf_life_value = $8, shelf_life_unit = $9, expiry_date = $10, cost = $11, selling_price = $12,
			is_fixed_asset = $13, asset_location = $14, minimum_stock_level = $15, order_quantity = $16,
			stock_value = $17, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query,
		it.ID, string(it.Category), string(it.Subcategory), it.Name, it.Brand, it.Unit, it.PurchaseDate,
		it.ShelfLifeValue, shelfUnitArg(it.ShelfLifeUnit), it.ExpiryDate, it.Cost, it.SellingPrice,
		it.IsFixedAsset, it.AssetLocation, it.MinimumStockLevel, it.OrderQuantity, it.StockValue,
	).Scan(&it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isCheckViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// UpdateStock fija cantidad y valor del stock.
func (r *ItemRepo) UpdateStock(ctx context.Context, id, quantity, stockValue int64) error {
	query := `
		UPDATE inventory_items SET quantity = $2, stock_value = $3, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.q.Exec(ctx, query, id, quantity, stockValue)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el ítem como eliminado. El historial del ledger se conserva.
func (r *ItemRepo) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE inventory_items SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.q.Exec(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("soft delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve los ítems que cumplen q ordenados por categoría, nombre e id.
func (r *ItemRepo) List(ctx context.Context, q repository.ItemQuery) ([]*entity.InventoryItem, error) {
	where, args := itemWhere(q)
	query := `SELECT ` + itemColumns + ` FROM inventory_items` + where + ` ORDER BY category, name, id`
	if q.Limit() > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", q.Limit(), max(q.Offset(), 0))
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// itemWhere traduce el ItemQuery a la cláusula WHERE y sus argumentos.
func itemWhere(q repository.ItemQuery) (string, []any) {
	var ph placeholders
	var conds []string
	if !q.IncludesDeleted() {
		conds = append(conds, "deleted_at IS NULL")
	}
	if c := q.Category(); c != "" {
		conds = append(conds, "category = "+ph.add(string(c)))
	}
	if s := q.Subcategory(); s != "" {
		conds = append(conds, "subcategory = "+ph.add(string(s)))
	}
	if s := strings.TrimSpace(q.Search()); s != "" {
		p := ph.add("%" + escapeLike(s) + "%")
		conds = append(conds, "(name ILIKE "+p+" OR brand ILIKE "+p+")")
	}
	if q.ExcludesFixedAssets() {
		conds = append(conds, "is_fixed_asset = FALSE")
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), ph.args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func shelfUnitArg(u *entity.ShelfLifeUnit) *string {
	if u == nil {
		return nil
	}
	s := string(*u)
	return &s
}

// scanItem lee una fila con itemColumns.
func scanItem(row pgx.Row) (*entity.InventoryItem, error) {
	var (
		it          entity.InventoryItem
		category    string
		subcategory string
		shelfUnit   *string
	)
	err := row.Scan(
		&it.ID, &category, &subcategory, &it.Name, &it.Brand, &it.Quantity, &it.Unit, &it.PurchaseDate,
		&it.ShelfLifeValue, &shelfUnit, &it.ExpiryDate, &it.Cost, &it.SellingPrice, &it.IsFixedAsset,
		&it.AssetLocation, &it.MinimumStockLevel, &it.OrderQuantity, &it.StockValue,
		&it.CreatedAt, &it.UpdatedAt, &it.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	it.Category = entity.Category(category)
	it.Subcategory = entity.Subcategory(subcategory)
	if shelfUnit != nil {
		u := entity.ShelfLifeUnit(*shelfUnit)
		it.ShelfLifeUnit = &u
	}
	return &it, nil
}
