package report_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hotel-inventory/internal/application/dto"
	"github.com/jhoicas/hotel-inventory/internal/application/report"
	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	domreport "github.com/jhoicas/hotel-inventory/internal/domain/report"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de solo lectura
// ──────────────────────────────────────────────────────────────────────────────

type fakeItems struct {
	repository.ItemRepository // solo List se usa en reportes
	rows                      []*entity.InventoryItem
	err                       error

	mu   sync.Mutex
	last repository.ItemQuery
}

func (f *fakeItems) List(_ context.Context, q repository.ItemQuery) ([]*entity.InventoryItem, error) {
	f.mu.Lock()
	f.last = q
	f.mu.Unlock()
	return f.rows, f.err
}

type fakeLedger struct {
	rows []*entity.InventoryLogEntry
	avgs map[int64]decimal.Decimal
	err  error

	mu   sync.Mutex
	last repository.LedgerQuery
}

func (f *fakeLedger) Entries(_ context.Context, q repository.LedgerQuery) ([]*entity.InventoryLogEntry, error) {
	f.mu.Lock()
	f.last = q
	f.mu.Unlock()
	return f.rows, f.err
}

func (f *fakeLedger) AverageQuantities(_ context.Context, _ repository.LedgerQuery) (map[int64]decimal.Decimal, error) {
	return f.avgs, f.err
}

var clock = func() time.Time { return time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC) }

func i64(v int64) *int64 { return &v }

func newUseCase(items *fakeItems, ledger *fakeLedger) *report.ReportUseCase {
	return report.NewReportUseCase(items, ledger, time.UTC, 30, 7).WithClock(clock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestVariance_ConstruyeConsultaConFechasYCategoria(t *testing.T) {
	items := &fakeItems{rows: []*entity.InventoryItem{
		{ID: 1, Category: entity.CategoryBeerRoom, Subcategory: entity.SubSnacks, Name: "Maní"},
	}}
	ledger := &fakeLedger{rows: []*entity.InventoryLogEntry{
		{ID: 1, ItemID: 1, Action: entity.ActionStockAdded, QuantityBefore: i64(0), QuantityAfter: i64(4),
			DateStamp: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
	}}
	uc := newUseCase(items, ledger)

	out, err := uc.Variance(context.Background(), dto.ReportQuery{StartDate: "2024-03-01", EndDate: "2024-03-05", Category: "Beer_Room"})

	require.NoError(t, err)
	assert.Equal(t, dto.PeriodDTO{StartDate: "2024-03-01", EndDate: "2024-03-05"}, out.Period)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, int64(4), out.Rows[0].DailyVariance)

	assert.Equal(t, entity.CategoryBeerRoom, items.last.Category())
	assert.Equal(t, entity.CategoryBeerRoom, ledger.last.Category())
	require.NotNil(t, ledger.last.From())
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *ledger.last.From())
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), *ledger.last.To())
}

func TestReportes_RangoPorDefectoTreintaDias(t *testing.T) {
	uc := newUseCase(&fakeItems{}, &fakeLedger{})

	out, err := uc.Stock(context.Background(), dto.ReportQuery{})

	require.NoError(t, err)
	assert.Equal(t, dto.PeriodDTO{StartDate: "2024-02-09", EndDate: "2024-03-10"}, out.Period)
	assert.NotNil(t, out.Rows)
}

func TestReportes_InicioPosteriorAlFin(t *testing.T) {
	uc := newUseCase(&fakeItems{}, &fakeLedger{})

	_, err := uc.Sales(context.Background(), dto.ReportQuery{StartDate: "2024-03-09", EndDate: "2024-03-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Waste(context.Background(), dto.ReportQuery{StartDate: "01/03/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Profit(context.Background(), dto.ReportQuery{Category: "kitchen", Subcategory: "craft_beer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Merma y ventas piden al ledger solo las salidas con su motivo.
func TestReportes_FiltranMotivoEnElLedger(t *testing.T) {
	ctx := context.Background()
	ledger := &fakeLedger{}
	uc := newUseCase(&fakeItems{}, ledger)

	_, err := uc.Waste(ctx, dto.ReportQuery{})
	require.NoError(t, err)
	assert.Equal(t, entity.ReasonWaste, ledger.last.Reason())
	assert.Equal(t, []entity.LogAction{entity.ActionStockRemoved}, ledger.last.Actions())

	_, err = uc.Sales(ctx, dto.ReportQuery{Category: "beer_room"})
	require.NoError(t, err)
	assert.Equal(t, entity.ReasonSale, ledger.last.Reason())
	assert.Equal(t, []entity.LogAction{entity.ActionStockRemoved}, ledger.last.Actions())
	assert.Equal(t, entity.CategoryBeerRoom, ledger.last.Category())

	_, err = uc.Profit(ctx, dto.ReportQuery{})
	require.NoError(t, err)
	assert.Equal(t, entity.ReasonSale, ledger.last.Reason())

	_, err = uc.Stock(ctx, dto.ReportQuery{})
	require.NoError(t, err)
	assert.Empty(t, ledger.last.Reason())
}

// Un fallo de consulta se devuelve como error de almacenamiento estructurado.
func TestReportes_FalloDeConsulta(t *testing.T) {
	boom := errors.New("conexión cerrada")
	uc := newUseCase(&fakeItems{}, &fakeLedger{err: boom})

	_, err := uc.Stock(context.Background(), dto.ReportQuery{})

	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.ErrorIs(t, err, boom)
}

func TestTurnover_PeriodoTrimestral(t *testing.T) {
	items := &fakeItems{rows: []*entity.InventoryItem{
		{ID: 3, Category: entity.CategoryChocolateRoom, Subcategory: entity.SubTruffles, Name: "Trufas", Quantity: 4},
	}}
	ledger := &fakeLedger{
		rows: []*entity.InventoryLogEntry{
			{ID: 1, ItemID: 3, Action: entity.ActionStockRemoved, QuantityBefore: i64(16), QuantityAfter: i64(4)},
		},
		avgs: map[int64]decimal.Decimal{3: decimal.NewFromInt(4)},
	}
	uc := newUseCase(items, ledger)

	out, err := uc.Turnover(context.Background(), dto.ReportQuery{Period: "quarter"})

	require.NoError(t, err)
	assert.Equal(t, "quarter", out.PeriodKind)
	assert.Equal(t, dto.PeriodDTO{StartDate: "2023-12-10", EndDate: "2024-03-10"}, out.Period)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, domreport.RatingAverage, out.Rows[0].Rating)
	assert.Equal(t, []entity.LogAction{entity.ActionStockRemoved}, ledger.last.Actions())

	_, err = uc.Turnover(context.Background(), dto.ReportQuery{Period: "week"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDashboard_EtiquetaYResumen(t *testing.T) {
	items := &fakeItems{rows: []*entity.InventoryItem{
		{ID: 1, Category: entity.CategoryKitchen, Subcategory: entity.SubDairy, Name: "Leche", Quantity: 3, StockValue: 900},
	}}
	uc := newUseCase(items, &fakeLedger{})

	out, err := uc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "10 de Marzo 2024", out.DateLabel)
	assert.Equal(t, 1, out.TotalItems)
	assert.Equal(t, int64(900), out.TotalStockValue)
}
