package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hotel-inventory/internal/application/dto"
	"github.com/jhoicas/hotel-inventory/internal/application/export"
	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/report"
)

var period = dto.PeriodDTO{StartDate: "2024-03-01", EndDate: "2024-03-10"}

func wasteDTO() *dto.WasteReportDTO {
	return &dto.WasteReportDTO{
		Period: period,
		WasteReport: report.WasteReport{
			Rows: []report.WasteRow{{
				ItemRef:  report.ItemRef{ItemID: 1, Name: `Leche "entera", 1L`, Category: entity.CategoryKitchen, Subcategory: entity.SubDairy},
				Date:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
				Quantity: 2,
				Value:    1250,
				Notes:    "vencida\nen nevera",
			}},
			TotalQuantity: 2,
			TotalValue:    1250,
		},
	}
}

func TestWriteCSV_EscapaComasComillasYSaltos(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, export.WasteTable(wasteDTO())))

	out := buf.String()
	assert.Contains(t, out, `"Leche ""entera"", 1L"`)
	assert.Contains(t, out, "\"vencida\nen nevera\"")

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // cabecera, fila, totales
	assert.Equal(t, []string{"2024-03-05", "Kitchen", "Dairy", `Leche "entera", 1L`, "2", "12.50", "vencida\nen nevera", ""}, records[1])
	assert.Equal(t, "Total", records[2][0])
	assert.Equal(t, "12.50", records[2][5])
}

func TestWriteSpreadsheetML_TipaNumeros(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteSpreadsheetML(&buf, export.WasteTable(wasteDTO())))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

	ws := doc.FindElement("//Worksheet")
	require.NotNil(t, ws)
	assert.Equal(t, "Reporte de merma", ws.SelectAttrValue("ss:Name", ""))

	rows := doc.FindElements("//Table/Row")
	require.Len(t, rows, 3)

	cells := rows[1].SelectElements("Cell")
	require.Len(t, cells, 8)
	qty := cells[4].SelectElement("Data")
	assert.Equal(t, "Number", qty.SelectAttrValue("ss:Type", ""))
	assert.Equal(t, "2", qty.Text())
	val := cells[5].SelectElement("Data")
	assert.Equal(t, "Number", val.SelectAttrValue("ss:Type", ""))
	assert.Equal(t, "12.5", val.Text())
	assert.Equal(t, "String", cells[3].SelectElement("Data").SelectAttrValue("ss:Type", ""))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Beer Room", export.Label("beer_room"))
	assert.Equal(t, "Craft Beer", export.Label("craft_beer"))
	assert.Equal(t, "12.50", export.FormatCell(decimal.New(1250, -2)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Service
// ──────────────────────────────────────────────────────────────────────────────

type fakeReports struct {
	export.ReportSource
	last dto.ReportQuery
}

func (f *fakeReports) Waste(_ context.Context, q dto.ReportQuery) (*dto.WasteReportDTO, error) {
	f.last = q
	return wasteDTO(), nil
}

func (f *fakeReports) Sales(_ context.Context, q dto.ReportQuery) (*dto.SalesReportDTO, error) {
	f.last = q
	return &dto.SalesReportDTO{Period: period, SalesReport: report.SalesReport{Rows: []report.SalesRow{}}}, nil
}

type fakePDF struct{ title string }

func (f *fakePDF) GenerateReportPDF(_ context.Context, t export.Table) ([]byte, error) {
	f.title = t.Title
	return []byte("%PDF-1.4"), nil
}

func TestService_Render(t *testing.T) {
	reports := &fakeReports{}
	pdf := &fakePDF{}
	svc := export.NewService(reports, pdf)

	f, err := svc.Render(context.Background(), "waste", dto.ReportQuery{Format: "xls", Category: "kitchen"})
	require.NoError(t, err)
	assert.Equal(t, "waste_2024-03-01_2024-03-10.xls", f.Name)
	assert.Equal(t, "application/vnd.ms-excel", f.ContentType)
	assert.Equal(t, "kitchen", reports.last.Category)

	f, err = svc.Render(context.Background(), "sales", dto.ReportQuery{})
	require.NoError(t, err)
	assert.Equal(t, "sales_2024-03-01_2024-03-10.csv", f.Name)
	assert.True(t, strings.HasPrefix(string(f.Body), "Categoría,"))

	f, err = svc.Render(context.Background(), "sales", dto.ReportQuery{Format: "PDF"})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", f.ContentType)
	assert.Equal(t, "Reporte de ventas", pdf.title)
}

func TestService_Render_Errores(t *testing.T) {
	svc := export.NewService(&fakeReports{}, nil)

	_, err := svc.Render(context.Background(), "waste", dto.ReportQuery{Format: "docx"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Render(context.Background(), "dashboard", dto.ReportQuery{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Render(context.Background(), "waste", dto.ReportQuery{Format: "pdf"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
