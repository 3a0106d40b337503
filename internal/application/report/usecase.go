// Package report orquesta el motor de reportes: valida filtros, arma una consulta inmutable por
// reporte, lee en paralelo ítems y ledger (pool, read committed) y delega la agregación al dominio.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/application/dto"
	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/report"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// ReportUseCase genera los reportes de solo lectura. Nunca usa el TxRunner.
type ReportUseCase struct {
	itemRepo    repository.ItemRepository
	ledger      repository.LedgerReader
	now         func() time.Time
	loc         *time.Location
	defaultDays int
	warningDays int
}

// NewReportUseCase construye el caso de uso. defaultDays es el rango por defecto cuando no se
// envían fechas; warningDays el umbral de "por vencer" del dashboard.
func NewReportUseCase(
	itemRepo repository.ItemRepository,
	ledger repository.LedgerReader,
	loc *time.Location,
	defaultDays, warningDays int,
) *ReportUseCase {
	if loc == nil {
		loc = time.UTC
	}
	if defaultDays <= 0 {
		defaultDays = 30
	}
	if warningDays <= 0 {
		warningDays = 7
	}
	return &ReportUseCase{
		itemRepo:    itemRepo,
		ledger:      ledger,
		now:         time.Now,
		loc:         loc,
		defaultDays: defaultDays,
		warningDays: warningDays,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *ReportUseCase) WithClock(now func() time.Time) *ReportUseCase {
	c := *uc
	c.now = now
	return &c
}

func (uc *ReportUseCase) today() time.Time {
	return entity.DateOf(uc.now().In(uc.loc))
}

// Variance reporte de variación diaria por ítem.
func (uc *ReportUseCase) Variance(ctx context.Context, q dto.ReportQuery) (*dto.VarianceReportDTO, error) {
	f, err := uc.parseFilter(q)
	if err != nil {
		return nil, err
	}
	snap, err := uc.load(ctx, f.items, f.ledger)
	if err != nil {
		return nil, err
	}
	return &dto.VarianceReportDTO{
		Period: f.period(),
		Rows:   report.Variance(snap.items, snap.entries),
	}, nil
}

// Turnover rotación por ítem sobre el período móvil (month | quarter | year).
func (uc *ReportUseCase) Turnover(ctx context.Context, q dto.ReportQuery) (*dto.TurnoverReportDTO, error) {
	period, err := report.ParsePeriod(q.Period)
	if err != nil {
		return nil, err
	}
	from, to := period.Range(uc.today())
	itemQ, err := repository.ParseItemQuery(q.Category, q.Subcategory)
	if err != nil {
		return nil, err
	}
	ledgerQ := ledgerQueryFrom(itemQ).Between(from, to)

	// Tres lecturas independientes en paralelo
	type avgResult struct {
		avgs map[int64]decimal.Decimal
		err  error
	}
	avgCh := make(chan avgResult, 1)
	go func() {
		avgs, err := uc.ledger.AverageQuantities(ctx, ledgerQ)
		avgCh <- avgResult{avgs, err}
	}()
	snap, err := uc.load(ctx, itemQ, ledgerQ.WithActions(entity.ActionStockRemoved))
	avg := <-avgCh
	if err != nil {
		return nil, err
	}
	if avg.err != nil {
		return nil, domain.WrapStorage("rotación: promedios", avg.err)
	}

	return &dto.TurnoverReportDTO{
		Period:     dto.PeriodDTO{StartDate: from.Format(dateLayout), EndDate: to.Format(dateLayout)},
		PeriodKind: string(period),
		Rows:       report.Turnover(snap.items, snap.entries, avg.avgs),
	}, nil
}

// Waste reporte de merma (stock_removed con motivo "waste").
func (uc *ReportUseCase) Waste(ctx context.Context, q dto.ReportQuery) (*dto.WasteReportDTO, error) {
	f, err := uc.parseFilter(q)
	if err != nil {
		return nil, err
	}
	snap, err := uc.load(ctx, f.items, f.ledger.
		WithActions(entity.ActionStockRemoved).
		WithReason(entity.ReasonWaste))
	if err != nil {
		return nil, err
	}
	return &dto.WasteReportDTO{
		Period:      f.period(),
		WasteReport: report.Waste(snap.items, snap.entries),
	}, nil
}

// Stock reporte de existencias: stock inicial reconstruido, ventas, merma y saldo.
func (uc *ReportUseCase) Stock(ctx context.Context, q dto.ReportQuery) (*dto.StockReportDTO, error) {
	f, err := uc.parseFilter(q)
	if err != nil {
		return nil, err
	}
	snap, err := uc.load(ctx, f.items, f.ledger.WithActions(entity.ActionStockRemoved, entity.ActionCountAdjustment))
	if err != nil {
		return nil, err
	}
	return &dto.StockReportDTO{
		Period: f.period(),
		Rows:   report.Stock(snap.items, snap.entries),
	}, nil
}

// Sales reporte de ventas con costo por ítem.
func (uc *ReportUseCase) Sales(ctx context.Context, q dto.ReportQuery) (*dto.SalesReportDTO, error) {
	f, err := uc.parseFilter(q)
	if err != nil {
		return nil, err
	}
	snap, err := uc.load(ctx, f.items, salesQuery(f.ledger))
	if err != nil {
		return nil, err
	}
	return &dto.SalesReportDTO{Period: f.period(), SalesReport: report.Sales(snap.items, snap.entries)}, nil
}

// Profit reporte de utilidad con el costo realizado según el ledger.
func (uc *ReportUseCase) Profit(ctx context.Context, q dto.ReportQuery) (*dto.SalesReportDTO, error) {
	f, err := uc.parseFilter(q)
	if err != nil {
		return nil, err
	}
	snap, err := uc.load(ctx, f.items, salesQuery(f.ledger))
	if err != nil {
		return nil, err
	}
	return &dto.SalesReportDTO{Period: f.period(), SalesReport: report.Profit(snap.items, snap.entries)}, nil
}

// Dashboard resumen del inventario y de la actividad de hoy.
func (uc *ReportUseCase) Dashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	today := uc.today()
	snap, err := uc.load(ctx, repository.NewItemQuery(), repository.NewLedgerQuery().Between(today, today))
	if err != nil {
		return nil, err
	}
	return &dto.DashboardDTO{
		DashboardSummary: report.Dashboard(snap.items, snap.entries, today, uc.warningDays),
		DateLabel:        dayLabel(today),
	}, nil
}

// ── Lectura paralela ───────────────────────────────────────────────────────

type snapshot struct {
	items   []*entity.InventoryItem
	entries []*entity.InventoryLogEntry
}

// load lee ítems y entradas del ledger en paralelo (llamadas independientes).
func (uc *ReportUseCase) load(ctx context.Context, itemQ repository.ItemQuery, ledgerQ repository.LedgerQuery) (*snapshot, error) {
	type itemsResult struct {
		rows []*entity.InventoryItem
		err  error
	}
	type entriesResult struct {
		rows []*entity.InventoryLogEntry
		err  error
	}
	itemsCh := make(chan itemsResult, 1)
	entriesCh := make(chan entriesResult, 1)

	go func() {
		rows, err := uc.itemRepo.List(ctx, itemQ)
		itemsCh <- itemsResult{rows, err}
	}()
	go func() {
		rows, err := uc.ledger.Entries(ctx, ledgerQ)
		entriesCh <- entriesResult{rows, err}
	}()

	items := <-itemsCh
	entries := <-entriesCh

	if items.err != nil {
		return nil, domain.WrapStorage("reporte: ítems", items.err)
	}
	if entries.err != nil {
		return nil, domain.WrapStorage("reporte: ledger", entries.err)
	}
	return &snapshot{items: items.rows, entries: entries.rows}, nil
}

// ── Filtros ────────────────────────────────────────────────────────────────

type filter struct {
	from, to time.Time
	items    repository.ItemQuery
	ledger   repository.LedgerQuery
}

func (f filter) period() dto.PeriodDTO {
	return dto.PeriodDTO{StartDate: f.from.Format(dateLayout), EndDate: f.to.Format(dateLayout)}
}

// parseFilter valida fechas y categoría y construye una sola vez las consultas del reporte.
func (uc *ReportUseCase) parseFilter(q dto.ReportQuery) (filter, error) {
	from, to, err := parsePeriod(q.StartDate, q.EndDate, uc.today(), uc.defaultDays)
	if err != nil {
		return filter{}, err
	}
	itemQ, err := repository.ParseItemQuery(q.Category, q.Subcategory)
	if err != nil {
		return filter{}, err
	}
	return filter{
		from:   from,
		to:     to,
		items:  itemQ,
		ledger: ledgerQueryFrom(itemQ).Between(from, to),
	}, nil
}

// parsePeriod convierte YYYY-MM-DD en fechas inclusive. Sin fin se usa hoy; sin inicio,
// fin − defaultDays. Inicio posterior al fin es entrada inválida.
func parsePeriod(startStr, endStr string, today time.Time, defaultDays int) (time.Time, time.Time, error) {
	end := today
	if s := strings.TrimSpace(endStr); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
		}
		end = t
	}
	start := end.AddDate(0, 0, -defaultDays)
	if s := strings.TrimSpace(startStr); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
		}
		start = t
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date posterior a end_date", domain.ErrInvalidInput)
	}
	return start, end, nil
}

// ledgerQueryFrom replica en el ledger el filtro de categoría de los ítems.
func ledgerQueryFrom(itemQ repository.ItemQuery) repository.LedgerQuery {
	return repository.NewLedgerQuery().
		WithCategory(itemQ.Category()).
		WithSubcategory(itemQ.Subcategory())
}

// salesQuery restringe el ledger a las salidas por venta; Sales y Profit leen lo mismo.
func salesQuery(q repository.LedgerQuery) repository.LedgerQuery {
	return q.WithActions(entity.ActionStockRemoved).WithReason(entity.ReasonSale)
}

// dayLabel devuelve una etiqueta legible del día, ej: "10 de Marzo 2024".
func dayLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%d de %s %d", t.Day(), months[t.Month()-1], t.Year())
}
