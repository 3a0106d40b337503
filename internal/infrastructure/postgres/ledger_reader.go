package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
)

var _ repository.LedgerReader = (*LedgerReader)(nil)

// LedgerReader consultas de reportes sobre el ledger. Se construye con el pool: los reportes
// leen en read committed y no pasan por el TxRunner.
type LedgerReader struct {
	q Querier
}

// NewLedgerReader construye el lector.
func NewLedgerReader(q Querier) *LedgerReader {
	return &LedgerReader{q: q}
}

// Entries devuelve las entradas que cumplen q en orden cronológico.
func (r *LedgerReader) Entries(ctx context.Context, q repository.LedgerQuery) ([]*entity.InventoryLogEntry, error) {
	where, args := ledgerWhere(q)
	query := `SELECT ` + logColumns + `
		FROM inventory_logs l
		JOIN inventory_items i ON i.id = l.item_id` + where + `
		ORDER BY l.date_stamp, l.timestamp, l.id`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ledger entries: %w", err)
	}
	return collectEntries(rows)
}

// AverageQuantities promedio de quantity_after por ítem. AVG devuelve NUMERIC, que el codec
// pgx-shopspring-decimal escanea directo a decimal.Decimal.
func (r *LedgerReader) AverageQuantities(ctx context.Context, q repository.LedgerQuery) (map[int64]decimal.Decimal, error) {
	where, args := ledgerWhere(q)
	query := `SELECT l.item_id, AVG(l.quantity_after)
		FROM inventory_logs l
		JOIN inventory_items i ON i.id = l.item_id` + where + ` AND l.quantity_after IS NOT NULL
		GROUP BY l.item_id`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ledger averages: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]decimal.Decimal)
	for rows.Next() {
		var (
			itemID int64
			avg    decimal.Decimal
		)
		if err := rows.Scan(&itemID, &avg); err != nil {
			return nil, fmt.Errorf("scan ledger average: %w", err)
		}
		out[itemID] = avg
	}
	return out, rows.Err()
}

// ledgerWhere traduce el LedgerQuery a SQL. Siempre excluye ítems eliminados, así que la
// cláusula nunca queda vacía.
func ledgerWhere(q repository.LedgerQuery) (string, []any) {
	var ph placeholders
	conds := []string{"i.deleted_at IS NULL"}
	if from := q.From(); from != nil {
		conds = append(conds, "l.date_stamp >= "+ph.add(*from))
	}
	if to := q.To(); to != nil {
		conds = append(conds, "l.date_stamp <= "+ph.add(*to))
	}
	if c := q.Category(); c != "" {
		conds = append(conds, "i.category = "+ph.add(string(c)))
	}
	if s := q.Subcategory(); s != "" {
		conds = append(conds, "i.subcategory = "+ph.add(string(s)))
	}
	if actions := q.Actions(); len(actions) > 0 {
		names := make([]string, len(actions))
		for i, a := range actions {
			names[i] = string(a)
		}
		conds = append(conds, "l.action = ANY("+ph.add(names)+")")
	}
	if reason := strings.ToLower(strings.TrimSpace(q.Reason())); reason != "" {
		conds = append(conds, "LOWER(TRIM(l.reason)) = "+ph.add(reason))
	}
	return " WHERE " + strings.Join(conds, " AND "), ph.args
}
