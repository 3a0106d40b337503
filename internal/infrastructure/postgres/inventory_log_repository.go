package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
)

var _ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)

const logColumns = `l.id, l.item_id, l.timestamp, l.action, l.quantity_before, l.quantity_after,
	l.value_before, l.value_after, l.reason, l.notes, l.user_id, l.user_name, l.date_stamp`

// InventoryLogRepo adaptador append-only del ledger sobre PostgreSQL.
type InventoryLogRepo struct {
	q Querier
}

// NewInventoryLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryLogRepository(q Querier) *InventoryLogRepo {
	return &InventoryLogRepo{q: q}
}

// Create inserta la entrada y asigna ID. Si Timestamp viene vacío lo fija la base.
func (r *InventoryLogRepo) Create(ctx context.Context, e *entity.InventoryLogEntry) error {
	query := `
		INSERT INTO inventory_logs (item_id, timestamp, action, quantity_before, quantity_after,
			value_before, value_after, reason, notes, user_id, user_name, date_stamp)
		VALUES ($1, COALESCE($2, NOW()), $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, timestamp`
	var ts any
	if !e.Timestamp.IsZero() {
		ts = e.Timestamp
	}
	err := r.q.QueryRow(ctx, query,
		e.ItemID, ts, string(e.Action), e.QuantityBefore, e.QuantityAfter,
		e.ValueBefore, e.ValueAfter, e.Reason, e.Notes, e.UserID, e.UserName, e.DateStamp,
	).Scan(&e.ID, &e.Timestamp)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: ítem %d", domain.ErrNotFound, e.ItemID)
		}
		return fmt.Errorf("insert inventory log: %w", err)
	}
	return nil
}

// ListByItem devuelve hasta limit entradas del ítem, más recientes primero.
func (r *InventoryLogRepo) ListByItem(ctx context.Context, itemID int64, limit int) ([]*entity.InventoryLogEntry, error) {
	query := `SELECT ` + logColumns + ` FROM inventory_logs l WHERE l.item_id = $1 ORDER BY l.timestamp DESC, l.id DESC`
	args := []any{itemID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory logs: %w", err)
	}
	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]*entity.InventoryLogEntry, error) {
	defer rows.Close()
	list := []*entity.InventoryLogEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory log: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanEntry(row pgx.Row) (*entity.InventoryLogEntry, error) {
	var (
		e      entity.InventoryLogEntry
		action string
	)
	err := row.Scan(
		&e.ID, &e.ItemID, &e.Timestamp, &action, &e.QuantityBefore, &e.QuantityAfter,
		&e.ValueBefore, &e.ValueAfter, &e.Reason, &e.Notes, &e.UserID, &e.UserName, &e.DateStamp,
	)
	if err != nil {
		return nil, err
	}
	e.Action = entity.LogAction(action)
	return &e, nil
}
