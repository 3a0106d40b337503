// Package export formatea reportes ya calculados como tablas y los serializa a CSV,
// SpreadsheetML (Excel 2003 XML) o PDF. No contiene lógica de negocio.
package export

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/hotel-inventory/internal/application/dto"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/report"
)

// Table reporte listo para serializar. Las celdas son string, int, int64 o decimal.Decimal;
// los tipos numéricos se exportan como número en la hoja de cálculo.
type Table struct {
	Title    string
	Subtitle string
	Headers  []string
	Rows     [][]interface{}
	Footer   []interface{} // fila de totales opcional
}

// money convierte unidades menores a unidades de moneda con 2 decimales.
func money(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}

// Label convierte un identificador snake_case en etiqueta legible: "beer_room" → "Beer Room".
func Label(s string) string {
	return cases.Title(language.Spanish).String(strings.ReplaceAll(s, "_", " "))
}

func categoryCells(ref report.ItemRef) []interface{} {
	return []interface{}{Label(string(ref.Category)), Label(string(ref.Subcategory)), ref.Name}
}

func periodSubtitle(p dto.PeriodDTO) string {
	return fmt.Sprintf("Del %s al %s", p.StartDate, p.EndDate)
}

func row(head []interface{}, rest ...interface{}) []interface{} {
	return append(append([]interface{}{}, head...), rest...)
}

// VarianceTable tabla del reporte de variación.
func VarianceTable(r *dto.VarianceReportDTO) Table {
	t := Table{
		Title:    "Reporte de variación",
		Subtitle: periodSubtitle(r.Period),
		Headers:  []string{"Fecha", "Categoría", "Subcategoría", "Ítem", "Entradas", "Salidas", "Ajustes", "Variación"},
	}
	for _, v := range r.Rows {
		t.Rows = append(t.Rows, row(
			append([]interface{}{v.Date.Format("2006-01-02")}, categoryCells(v.ItemRef)...),
			v.Added, v.Removed, v.Adjusted, v.DailyVariance,
		))
	}
	return t
}

// TurnoverTable tabla del reporte de rotación.
func TurnoverTable(r *dto.TurnoverReportDTO) Table {
	t := Table{
		Title:    "Rotación de inventario (" + Label(r.PeriodKind) + ")",
		Subtitle: periodSubtitle(r.Period),
		Headers:  []string{"Categoría", "Subcategoría", "Ítem", "Cantidad actual", "Consumo", "Inventario promedio", "Rotación", "Calificación"},
	}
	for _, v := range r.Rows {
		t.Rows = append(t.Rows, row(categoryCells(v.ItemRef),
			v.CurrentQuantity, v.TotalConsumed, v.AverageInventory, v.TurnoverRate, string(v.Rating)))
	}
	return t
}

// WasteTable tabla del reporte de merma.
func WasteTable(r *dto.WasteReportDTO) Table {
	t := Table{
		Title:    "Reporte de merma",
		Subtitle: periodSubtitle(r.Period),
		Headers:  []string{"Fecha", "Categoría", "Subcategoría", "Ítem", "Cantidad", "Valor", "Notas", "Usuario"},
	}
	for _, v := range r.Rows {
		t.Rows = append(t.Rows, row(
			append([]interface{}{v.Date.Format("2006-01-02")}, categoryCells(v.ItemRef)...),
			v.Quantity, money(v.Value), v.Notes, v.UserName,
		))
	}
	t.Footer = []interface{}{"Total", "", "", "", r.TotalQuantity, money(r.TotalValue), "", ""}
	return t
}

// StockTable tabla del reporte de existencias.
func StockTable(r *dto.StockReportDTO) Table {
	t := Table{
		Title:    "Reporte de existencias",
		Subtitle: periodSubtitle(r.Period),
		Headers:  []string{"Categoría", "Subcategoría", "Ítem", "Unidad", "Stock inicial", "Ventas", "Merma", "Saldo", "Valor"},
	}
	var total int64
	for _, v := range r.Rows {
		t.Rows = append(t.Rows, row(categoryCells(v.ItemRef),
			v.Unit, v.InitialStock, v.Sales, v.Waste, v.Balance, money(v.StockValue)))
		total += v.StockValue
	}
	t.Footer = []interface{}{"Total", "", "", "", "", "", "", "", money(total)}
	return t
}

// SalesTable tabla de los reportes de ventas y utilidad; title distingue cuál.
func SalesTable(title string, r *dto.SalesReportDTO) Table {
	t := Table{
		Title:    title,
		Subtitle: periodSubtitle(r.Period),
		Headers:  []string{"Categoría", "Subcategoría", "Ítem", "Vendidos", "Ingresos", "Costo", "Utilidad", "Margen %"},
	}
	for _, v := range r.Rows {
		t.Rows = append(t.Rows, row(categoryCells(v.ItemRef),
			v.QuantitySold, money(v.Revenue), money(v.CostValue), money(v.Profit), v.ProfitMargin))
	}
	s := r.Summary
	t.Footer = []interface{}{"Total", "", "", s.TotalQuantity, money(s.TotalRevenue), money(s.TotalCostValue), money(s.TotalProfit), s.ProfitMargin}
	return t
}

// FormatCell representación textual de una celda (CSV y PDF).
func FormatCell(v interface{}) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case decimal.Decimal:
		return c.StringFixed(2)
	case entity.Category:
		return Label(string(c))
	default:
		return fmt.Sprint(c)
	}
}
