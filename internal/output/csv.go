package output

import (
	"encoding/csv"
	"io"

	"github.com/phyten/contrastx/internal/engine"
)

// WriteCSV renders results as RFC 4180 compliant CSV (including CRLF endings).
func WriteCSV(w io.Writer, results []*engine.Result, layout Layout) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(layout.Headers()); err != nil {
		return err
	}
	for _, r := range results {
		if err := writer.Write(layout.RowValues(r)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
