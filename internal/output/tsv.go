package output

import (
	"io"
	"strings"

	"github.com/phyten/contrastx/internal/engine"
)

var tsvCellReplacer = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

// WriteTSV renders one tab separated row per result after a header row.
func WriteTSV(w io.Writer, results []*engine.Result, layout Layout) error {
	if err := writeTSVRow(w, layout.Headers()); err != nil {
		return err
	}
	for _, r := range results {
		if err := writeTSVRow(w, layout.RowValues(r)); err != nil {
			return err
		}
	}
	return nil
}

func writeTSVRow(w io.Writer, cells []string) error {
	for i := range cells {
		cells[i] = tsvCellReplacer.Replace(cells[i])
	}
	_, err := io.WriteString(w, strings.Join(cells, "\t")+"\n")
	return err
}
