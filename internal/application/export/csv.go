package export

import (
	"encoding/csv"
	"io"
)

// WriteCSV escribe la tabla en CSV (RFC 4180): los campos con coma, comillas o saltos de
// línea van entre comillas y las comillas internas se duplican.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return err
	}
	for _, r := range t.Rows {
		if err := cw.Write(formatRow(r)); err != nil {
			return err
		}
	}
	if len(t.Footer) > 0 {
		if err := cw.Write(formatRow(t.Footer)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatRow(r []interface{}) []string {
	out := make([]string, len(r))
	for i, v := range r {
		out[i] = FormatCell(v)
	}
	return out
}
