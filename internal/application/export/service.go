package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/hotel-inventory/internal/application/dto"
	"github.com/jhoicas/hotel-inventory/internal/domain"
)

// ReportSource reportes que se pueden exportar (implementado por report.ReportUseCase).
type ReportSource interface {
	Variance(ctx context.Context, q dto.ReportQuery) (*dto.VarianceReportDTO, error)
	Turnover(ctx context.Context, q dto.ReportQuery) (*dto.TurnoverReportDTO, error)
	Waste(ctx context.Context, q dto.ReportQuery) (*dto.WasteReportDTO, error)
	Stock(ctx context.Context, q dto.ReportQuery) (*dto.StockReportDTO, error)
	Sales(ctx context.Context, q dto.ReportQuery) (*dto.SalesReportDTO, error)
	Profit(ctx context.Context, q dto.ReportQuery) (*dto.SalesReportDTO, error)
}

// ReportPDFGenerator puerto para renderizar una tabla como PDF.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, t Table) ([]byte, error)
}

// Format formato de exportación.
type Format string

const (
	FormatCSV Format = "csv"
	FormatXLS Format = "xls"
	FormatPDF Format = "pdf"
)

// ParseFormat valida el formato; vacío equivale a csv.
func ParseFormat(raw string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(raw)))
	switch f {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatXLS, FormatPDF:
		return f, nil
	}
	return "", fmt.Errorf("%w: formato %q (use csv, xls o pdf)", domain.ErrInvalidInput, raw)
}

// File resultado de una exportación.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

// Service arma la tabla del reporte pedido y la serializa.
type Service struct {
	reports ReportSource
	pdf     ReportPDFGenerator
}

// NewService construye el servicio. pdf puede ser nil si no se exporta a PDF.
func NewService(reports ReportSource, pdf ReportPDFGenerator) *Service {
	return &Service{reports: reports, pdf: pdf}
}

// Render genera el archivo del reporte kind (variance, turnover, waste, stock, sales, profit).
func (s *Service) Render(ctx context.Context, kind string, q dto.ReportQuery) (*File, error) {
	format, err := ParseFormat(q.Format)
	if err != nil {
		return nil, err
	}
	kind = strings.ToLower(strings.TrimSpace(kind))
	t, period, err := s.table(ctx, kind, q)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	out := &File{Name: fmt.Sprintf("%s_%s_%s.%s", kind, period.StartDate, period.EndDate, format)}
	switch format {
	case FormatCSV:
		out.ContentType = "text/csv; charset=utf-8"
		err = WriteCSV(&buf, t)
	case FormatXLS:
		out.ContentType = "application/vnd.ms-excel"
		err = WriteSpreadsheetML(&buf, t)
	case FormatPDF:
		if s.pdf == nil {
			return nil, fmt.Errorf("%w: exportación PDF no disponible", domain.ErrInvalidInput)
		}
		out.ContentType = "application/pdf"
		var b []byte
		b, err = s.pdf.GenerateReportPDF(ctx, t)
		buf.Write(b)
	}
	if err != nil {
		return nil, fmt.Errorf("export: %s: %w", format, err)
	}
	out.Body = buf.Bytes()
	return out, nil
}

func (s *Service) table(ctx context.Context, kind string, q dto.ReportQuery) (Table, dto.PeriodDTO, error) {
	switch kind {
	case "variance":
		r, err := s.reports.Variance(ctx, q)
		if err != nil {
			return Table{}, dto.PeriodDTO{}, err
		}
		return VarianceTable(r), r.Period, nil
	case "turnover":
		r, err := s.reports.Turnover(ctx, q)
		if err != nil {
			return Table{}, dto.PeriodDTO{}, err
		}
		return TurnoverTable(r), r.Period, nil
	case "waste":
		r, err := s.reports.Waste(ctx, q)
		if err != nil {
			return Table{}, dto.PeriodDTO{}, err
		}
		return WasteTable(r), r.Period, nil
	case "stock":
		r, err := s.reports.Stock(ctx, q)
		if err != nil {
			return Table{}, dto.PeriodDTO{}, err
		}
		return StockTable(r), r.Period, nil
	case "sales":
		r, err := s.reports.Sales(ctx, q)
		if err != nil {
			return Table{}, dto.PeriodDTO{}, err
		}
		return SalesTable("Reporte de ventas", r), r.Period, nil
	case "profit":
		r, err := s.reports.Profit(ctx, q)
		if err != nil {
			return Table{}, dto.PeriodDTO{}, err
		}
		return SalesTable("Reporte de utilidad", r), r.Period, nil
	}
	return Table{}, dto.PeriodDTO{}, fmt.Errorf("%w: reporte %q no exportable", domain.ErrNotFound, kind)
}
