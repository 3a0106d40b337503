package export

import (
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
)

const nsSpreadsheet = "urn:schemas-microsoft-com:office:spreadsheet"

// WriteSpreadsheetML escribe la tabla como libro Excel 2003 XML (SpreadsheetML), que Excel y
// LibreOffice abren como .xls. Las celdas numéricas se tipan como Number.
func WriteSpreadsheetML(w io.Writer, t Table) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateProcInst("mso-application", `progid="Excel.Sheet"`)

	wb := doc.CreateElement("Workbook")
	wb.CreateAttr("xmlns", nsSpreadsheet)
	wb.CreateAttr("xmlns:ss", nsSpreadsheet)

	styles := wb.CreateElement("Styles")
	header := styles.CreateElement("Style")
	header.CreateAttr("ss:ID", "header")
	header.CreateElement("Font").CreateAttr("ss:Bold", "1")

	ws := wb.CreateElement("Worksheet")
	ws.CreateAttr("ss:Name", sheetName(t.Title))
	table := ws.CreateElement("Table")

	hr := table.CreateElement("Row")
	for _, h := range t.Headers {
		cell := hr.CreateElement("Cell")
		cell.CreateAttr("ss:StyleID", "header")
		writeData(cell, h)
	}
	for _, r := range t.Rows {
		writeRow(table, r)
	}
	if len(t.Footer) > 0 {
		writeRow(table, t.Footer)
	}

	doc.Indent(1)
	_, err := doc.WriteTo(w)
	return err
}

func writeRow(table *etree.Element, r []interface{}) {
	row := table.CreateElement("Row")
	for _, v := range r {
		writeData(row.CreateElement("Cell"), v)
	}
}

func writeData(cell *etree.Element, v interface{}) {
	data := cell.CreateElement("Data")
	switch c := v.(type) {
	case int:
		data.CreateAttr("ss:Type", "Number")
		data.SetText(FormatCell(c))
	case int64:
		data.CreateAttr("ss:Type", "Number")
		data.SetText(FormatCell(c))
	case decimal.Decimal:
		data.CreateAttr("ss:Type", "Number")
		data.SetText(c.String())
	default:
		data.CreateAttr("ss:Type", "String")
		data.SetText(FormatCell(c))
	}
}

// sheetName respeta las reglas de Excel: máximo 31 caracteres y sin []:*?/\.
func sheetName(title string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '-'
		}
		return r
	}, title)
	if r := []rune(name); len(r) > 31 {
		name = string(r[:31])
	}
	if name == "" {
		name = "Reporte"
	}
	return name
}
