package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/phyten/contrastx/internal/colornames"
	"github.com/phyten/contrastx/internal/termcolor"
	"github.com/phyten/contrastx/internal/textutil"
)

var nameHeaders = []string{"name", "hex", "rgb"}

func nameRow(e colornames.Entry) []string {
	rgb := strconv.Itoa(int(e.RGB.R)) + "," + strconv.Itoa(int(e.RGB.G)) + "," + strconv.Itoa(int(e.RGB.B))
	return []string{e.Name, e.Hex, rgb}
}

// WriteNames renders the named color table in the given format.
func WriteNames(w io.Writer, format string, entries []colornames.Entry, table TableOptions) error {
	switch format {
	case "", "table":
		return writeNamesTable(w, entries, table)
	case "tsv":
		if err := writeTSVRow(w, append([]string(nil), nameHeaders...)); err != nil {
			return err
		}
		for _, e := range entries {
			if err := writeTSVRow(w, nameRow(e)); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if entries == nil {
			entries = []colornames.Entry{}
		}
		return enc.Encode(entries)
	case "ndjson":
		enc := json.NewEncoder(w)
		for _, e := range entries {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
		return nil
	case "csv":
		writer := csv.NewWriter(w)
		writer.UseCRLF = true
		if err := writer.Write(nameHeaders); err != nil {
			return err
		}
		for _, e := range entries {
			if err := writer.Write(nameRow(e)); err != nil {
				return err
			}
		}
		writer.Flush()
		return writer.Error()
	case "markdown":
		if _, err := io.WriteString(w, "| name | hex | rgb |\n| --- | --- | --- |\n"); err != nil {
			return err
		}
		for _, e := range entries {
			row := nameRow(e)
			if _, err := fmt.Fprintf(w, "| %s | %s | %s |\n", row[0], row[1], row[2]); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func writeNamesTable(w io.Writer, entries []colornames.Entry, opts TableOptions) error {
	width := len("NAME")
	for _, e := range entries {
		if n := textutil.VisibleWidth(e.Name); n > width {
			width = n
		}
	}
	header := textutil.PadRight("NAME", width) + "  HEX"
	if _, err := fmt.Fprintln(w, termcolor.Apply(termcolor.HeaderStyle(), header, opts.Color.Enabled)); err != nil {
		return err
	}
	for _, e := range entries {
		line := textutil.PadRight(e.Name, width) + "  " + swatchPrefix(e.RGB, opts) + e.Hex
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
