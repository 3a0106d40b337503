package dto

import "github.com/jhoicas/hotel-inventory/internal/domain/report"

// ReportQuery filtros comunes de GET /api/reports/*. Fechas YYYY-MM-DD, ambos extremos inclusive.
type ReportQuery struct {
	StartDate   string `query:"start_date"`
	EndDate     string `query:"end_date"`
	Category    string `query:"category"`
	Subcategory string `query:"subcategory"`
	Period      string `query:"period"` // solo turnover: month | quarter | year
	Format      string `query:"format"` // solo export: csv | xls | pdf
}

// PeriodDTO rango efectivo usado por un reporte.
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// VarianceReportDTO respuesta del reporte de variación.
type VarianceReportDTO struct {
	Period PeriodDTO            `json:"period"`
	Rows   []report.VarianceRow `json:"rows"`
}

// TurnoverReportDTO respuesta del reporte de rotación.
type TurnoverReportDTO struct {
	Period     PeriodDTO            `json:"period"`
	PeriodKind string               `json:"period_kind"`
	Rows       []report.TurnoverRow `json:"rows"`
}

// WasteReportDTO respuesta del reporte de merma.
type WasteReportDTO struct {
	Period PeriodDTO `json:"period"`
	report.WasteReport
}

// StockReportDTO respuesta del reporte de existencias.
type StockReportDTO struct {
	Period PeriodDTO         `json:"period"`
	Rows   []report.StockRow `json:"rows"`
}

// SalesReportDTO respuesta de los reportes de ventas y de utilidad.
type SalesReportDTO struct {
	Period PeriodDTO `json:"period"`
	report.SalesReport
}

// DashboardDTO resumen del inventario para el tablero.
type DashboardDTO struct {
	report.DashboardSummary
	DateLabel string `json:"date_label"`
}
