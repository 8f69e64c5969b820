package session

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// exportHeader is the stable export schema; downstream tooling keys
// off these column names.
var exportHeader = []string{"row_identifier", "column", "value", "measure", "kind"}

// WriteCSV writes measurements as CSV with the stable export header.
func WriteCSV(w io.Writer, measurements []Measurement) error {
	csvw := csv.NewWriter(w)
	if err := csvw.Write(exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, m := range measurements {
		rec := []string{
			strconv.Itoa(m.Row),
			m.Column,
			m.Value,
			m.Measure,
			string(m.Kind),
		}
		if err := csvw.Write(rec); err != nil {
			return fmt.Errorf("write row %d: %w", m.Row, err)
		}
	}
	csvw.Flush()
	return csvw.Error()
}

// ExportCSV writes measurements to a file, creating or truncating it.
func ExportCSV(path string, measurements []Measurement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, measurements); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
