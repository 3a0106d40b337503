package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/domain"
)

// LogAction tipo de transición registrada en el ledger (conjunto cerrado).
type LogAction string

const (
	ActionCountAdjustment LogAction = "count_adjustment" // ajuste de valor sin cambio de cantidad
	ActionStockAdded      LogAction = "stock_added"
	ActionStockRemoved    LogAction = "stock_removed"
	ActionItemCreated     LogAction = "item_created"
	ActionItemUpdated     LogAction = "item_updated"
	ActionItemDeleted     LogAction = "item_deleted"
)

// Motivos que los reportes distinguen dentro de stock_removed.
const (
	ReasonSale  = "sale"
	ReasonWaste = "waste"
)

// Valid indica si la acción pertenece al conjunto cerrado.
func (a LogAction) Valid() bool {
	switch a {
	case ActionCountAdjustment, ActionStockAdded, ActionStockRemoved,
		ActionItemCreated, ActionItemUpdated, ActionItemDeleted:
		return true
	}
	return false
}

// ParseLogAction valida una acción recibida en el borde.
func ParseLogAction(raw string) (LogAction, error) {
	a := LogAction(strings.ToLower(strings.TrimSpace(raw)))
	if !a.Valid() {
		return "", fmt.Errorf("%w: acción de ledger desconocida %q", domain.ErrInvalidInput, raw)
	}
	return a, nil
}

// InventoryLogEntry registro inmutable de una transición de estado de un ítem.
// Solo se inserta; nunca se actualiza ni se borra.
type InventoryLogEntry struct {
	ID             int64
	ItemID         int64
	Timestamp      time.Time
	Action         LogAction
	QuantityBefore *int64
	QuantityAfter  *int64
	ValueBefore    *int64
	ValueAfter     *int64
	Reason         string
	Notes          string
	UserID         string
	UserName       string
	DateStamp      time.Time // fecha calendario del hotel; clave de agrupación diaria
}

// QuantityDecrease devuelve QuantityBefore - QuantityAfter (campos ausentes cuentan como 0).
func (e *InventoryLogEntry) QuantityDecrease() int64 {
	return orZero(e.QuantityBefore) - orZero(e.QuantityAfter)
}

// QuantityIncrease devuelve QuantityAfter - QuantityBefore.
func (e *InventoryLogEntry) QuantityIncrease() int64 {
	return orZero(e.QuantityAfter) - orZero(e.QuantityBefore)
}

// ValueDecrease devuelve ValueBefore - ValueAfter.
func (e *InventoryLogEntry) ValueDecrease() int64 {
	return orZero(e.ValueBefore) - orZero(e.ValueAfter)
}

// HasReason compara el motivo sin distinguir mayúsculas ni espacios.
func (e *InventoryLogEntry) HasReason(reason string) bool {
	return strings.EqualFold(strings.TrimSpace(e.Reason), reason)
}

func orZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
