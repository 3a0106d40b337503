package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Period ventana móvil del reporte de rotación, terminando hoy.
type Period string

const (
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// ParsePeriod valida el período; vacío equivale a month.
func ParsePeriod(raw string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(raw)))
	switch p {
	case "":
		return PeriodMonth, nil
	case PeriodMonth, PeriodQuarter, PeriodYear:
		return p, nil
	}
	return "", fmt.Errorf("%w: período %q (use month, quarter o year)", domain.ErrInvalidInput, raw)
}

// Months duración del período en meses.
func (p Period) Months() int {
	switch p {
	case PeriodQuarter:
		return 3
	case PeriodYear:
		return 12
	default:
		return 1
	}
}

// Range devuelve [today − Months, today] como fechas calendario.
func (p Period) Range(today time.Time) (from, to time.Time) {
	to = entity.DateOf(today)
	return to.AddDate(0, -p.Months(), 0), to
}

// Rating calificación cualitativa de la rotación.
type Rating string

const (
	RatingExcellent Rating = "Excellent"
	RatingGood      Rating = "Good"
	RatingAverage   Rating = "Average"
	RatingLow       Rating = "Low"
	RatingNoData    Rating = "No Data"
)

var (
	six  = decimal.NewFromInt(6)
	four = decimal.NewFromInt(4)
	two  = decimal.NewFromInt(2)
)

// RateTurnover aplica los umbrales ≥6, ≥4, ≥2 y >0.
func RateTurnover(rate decimal.Decimal) Rating {
	switch {
	case rate.GreaterThanOrEqual(six):
		return RatingExcellent
	case rate.GreaterThanOrEqual(four):
		return RatingGood
	case rate.GreaterThanOrEqual(two):
		return RatingAverage
	case rate.IsPositive():
		return RatingLow
	default:
		return RatingNoData
	}
}

// TurnoverRow rotación de un ítem en el período.
type TurnoverRow struct {
	ItemRef
	CurrentQuantity  int64           `json:"current_quantity"`
	TotalConsumed    int64           `json:"total_consumed"`
	AverageInventory decimal.Decimal `json:"average_inventory"`
	TurnoverRate     decimal.Decimal `json:"turnover_rate"`
	Rating           Rating          `json:"rating"`
}

// Turnover calcula la rotación por ítem. averages trae el promedio de quantity_after dentro del
// período por ítem; si un ítem no tiene lecturas se usa su cantidad actual.
// turnover_rate = total_consumed / average_inventory (2 decimales), 0 si el promedio es 0.
// Todos los ítems de la foto aparecen, con ceros si no tuvieron actividad.
func Turnover(
	items []*entity.InventoryItem,
	entries []*entity.InventoryLogEntry,
	averages map[int64]decimal.Decimal,
) []TurnoverRow {
	consumed := make(map[int64]int64)
	for _, e := range entries {
		if e.Action == entity.ActionStockRemoved {
			consumed[e.ItemID] += e.QuantityDecrease()
		}
	}

	sorted := sortedItems(items)
	rows := make([]TurnoverRow, 0, len(sorted))
	for _, it := range sorted {
		avg, ok := averages[it.ID]
		if !ok {
			avg = decimal.NewFromInt(it.Quantity)
		}
		total := consumed[it.ID]
		// La calificación usa la tasa exacta; solo la tasa mostrada se redondea.
		rate := decimal.Zero
		if avg.IsPositive() {
			rate = decimal.NewFromInt(total).Div(avg)
		}
		rows = append(rows, TurnoverRow{
			ItemRef:          refOf(it),
			CurrentQuantity:  it.Quantity,
			TotalConsumed:    total,
			AverageInventory: avg.Round(2),
			TurnoverRate:     rate.Round(2),
			Rating:           RateTurnover(rate),
		})
	}
	return rows
}
