// Package pdf renderiza los reportes de inventario como PDF con Maroto v2.
//
// Layout de la página A4 horizontal:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Hotel + título del reporte  │  Período + emisión    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: cabecera sobre fondo azul, una fila por registro     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES (si el reporte los tiene)                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/hotel-inventory/internal/application/export"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const gridSize = 12

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa export.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	hotelName string
	now       func() time.Time
}

// NewMarotoReportGenerator construye el generador; hotelName encabeza cada página.
func NewMarotoReportGenerator(hotelName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{hotelName: hotelName, now: time.Now}
}

// GenerateReportPDF genera el PDF de la tabla y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(_ context.Context, t export.Table) ([]byte, error) {
	if len(t.Headers) == 0 || len(t.Headers) > gridSize {
		return nil, fmt.Errorf("pdf: la tabla debe tener entre 1 y %d columnas", gridSize)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(t.Title, true).
		WithAuthor(g.hotelName, true).
		Build()

	m := maroto.New(cfg)
	widths := columnWidths(t)

	m.AddRows(g.headerRow(t))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow(t.Headers, widths))
	for _, r := range t.Rows {
		m.AddRows(tableRow(r, widths, false))
	}
	if len(t.Rows) == 0 {
		m.AddRows(row.New(8).Add(col.New(gridSize).Add(text.New("Sin registros en el período", props.Text{
			Size: 8, Align: align.Center, Top: 2, Color: colorGray,
		}))))
	}

	if len(t.Footer) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(tableRow(t.Footer, widths, true))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: hotel + título (izq) y período + fecha de emisión (der).
func (g *MarotoReportGenerator) headerRow(t export.Table) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(g.hotelName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(t.Title, props.Text{
				Size: 10, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(t.Subtitle, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+g.now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla con fondo azul.
func tableHeaderRow(headers []string, widths []int) core.Row {
	cols := make([]core.Col, len(headers))
	for i, h := range headers {
		cols[i] = col.New(widths[i]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRow: una fila de datos. Los números van a la derecha.
func tableRow(cells []interface{}, widths []int, bold bool) core.Row {
	cols := make([]core.Col, len(widths))
	for i := range widths {
		var v interface{}
		if i < len(cells) {
			v = cells[i]
		}
		p := props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Right: 1}
		if isNumeric(v) {
			p.Align = align.Right
		}
		if bold {
			p.Style = fontstyle.Bold
			p.Color = colorPrimary
		}
		cols[i] = col.New(widths[i]).Add(text.New(formatCell(v), p))
	}
	return row.New(7).Add(cols...)
}

// ── Utilidades ────────────────────────────────────────────────────────────────

// columnWidths reparte las 12 columnas de la grilla: cada columna recibe 1 y el sobrante va
// a las columnas de texto, de izquierda a derecha.
func columnWidths(t export.Table) []int {
	n := len(t.Headers)
	widths := make([]int, n)
	var textCols []int
	for i := range widths {
		widths[i] = 1
		if len(t.Rows) > 0 && i < len(t.Rows[0]) && !isNumeric(t.Rows[0][i]) {
			textCols = append(textCols, i)
		}
	}
	if len(textCols) == 0 {
		for i := range widths {
			textCols = append(textCols, i)
		}
	}
	for extra, k := gridSize-n, 0; extra > 0; extra, k = extra-1, k+1 {
		widths[textCols[k%len(textCols)]]++
	}
	return widths
}

func isNumeric(v interface{}) bool {
	switch v.(type) {
	case int, int64, decimal.Decimal:
		return true
	}
	return false
}

func formatCell(v interface{}) string {
	switch c := v.(type) {
	case int64:
		return formatMoney(fmt.Sprint(c))
	case decimal.Decimal:
		return formatDecimal(c)
	default:
		return export.FormatCell(c)
	}
}

// formatDecimal 1234567.5 → "1.234.567,50".
func formatDecimal(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	out := formatMoney(intPart) + "," + frac
	if d.IsNegative() {
		return "-" + out
	}
	return out
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "1500000" → "1.500.000"
func formatMoney(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
