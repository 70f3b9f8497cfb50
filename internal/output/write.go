package output

import (
	"fmt"
	"io"

	"github.com/phyten/contrastx/internal/engine"
)

// Write dispatches to the writer for format, which must already be
// normalized (see opts.NormalizeOutput). single selects an object rather
// than an array for JSON.
func Write(w io.Writer, format string, results []*engine.Result, single bool, table TableOptions) error {
	layout := NewLayout(results)
	switch format {
	case "", "table":
		return WriteTable(w, results, layout, table)
	case "tsv":
		return WriteTSV(w, results, layout)
	case "json":
		return WriteJSON(w, results, single)
	case "ndjson":
		return WriteNDJSON(w, results)
	case "csv":
		return WriteCSV(w, results, layout)
	case "markdown":
		return WriteMarkdownTable(w, results, layout)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
