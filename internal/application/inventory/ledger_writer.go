package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
)

// LedgerInput payload de una entrada del ledger. Los campos antes/después son opcionales
// porque no todas las acciones los llenan.
type LedgerInput struct {
	ItemID         int64
	Action         entity.LogAction
	QuantityBefore *int64
	QuantityAfter  *int64
	ValueBefore    *int64
	ValueAfter     *int64
	Reason         string
	Notes          string
	UserID         string
	UserName       string
}

// LedgerWriter construye y persiste entradas del ledger. DateStamp es la fecha calendario del
// instante de creación en la zona horaria del hotel, independiente de la hora del día.
type LedgerWriter struct {
	now func() time.Time
	loc *time.Location
}

// NewLedgerWriter construye el writer con el reloj del sistema. loc nil equivale a UTC.
func NewLedgerWriter(loc *time.Location) *LedgerWriter {
	if loc == nil {
		loc = time.UTC
	}
	return &LedgerWriter{now: time.Now, loc: loc}
}

// WithClock reemplaza el reloj (tests).
func (w *LedgerWriter) WithClock(now func() time.Time) *LedgerWriter {
	return &LedgerWriter{now: now, loc: w.loc}
}

// Now instante actual en la zona del hotel.
func (w *LedgerWriter) Now() time.Time {
	return w.now().In(w.loc)
}

// Today fecha calendario actual del hotel.
func (w *LedgerWriter) Today() time.Time {
	return entity.DateOf(w.Now())
}

// Append valida la acción y persiste la entrada con repo (normalmente atado a la tx del caller).
// Devuelve la entrada con id y timestamp asignados.
func (w *LedgerWriter) Append(ctx context.Context, repo repository.InventoryLogRepository, in LedgerInput) (*entity.InventoryLogEntry, error) {
	if !in.Action.Valid() {
		return nil, fmt.Errorf("%w: acción de ledger desconocida %q", domain.ErrInvalidInput, in.Action)
	}
	if in.ItemID <= 0 {
		return nil, fmt.Errorf("%w: item_id es requerido", domain.ErrInvalidInput)
	}

	now := w.Now()
	entry := &entity.InventoryLogEntry{
		ItemID:         in.ItemID,
		Timestamp:      now,
		Action:         in.Action,
		QuantityBefore: in.QuantityBefore,
		QuantityAfter:  in.QuantityAfter,
		ValueBefore:    in.ValueBefore,
		ValueAfter:     in.ValueAfter,
		Reason:         strings.TrimSpace(in.Reason),
		Notes:          strings.TrimSpace(in.Notes),
		UserID:         in.UserID,
		UserName:       strings.TrimSpace(in.UserName),
		DateStamp:      entity.DateOf(now),
	}
	if err := repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func i64(v int64) *int64 { return &v }
