package output

import (
	"io"
	"strings"

	"github.com/phyten/contrastx/internal/colorutil"
	"github.com/phyten/contrastx/internal/engine"
	"github.com/phyten/contrastx/internal/termcolor"
	"github.com/phyten/contrastx/internal/textutil"
	"github.com/phyten/contrastx/internal/wcag"
)

const maxColorCellWidth = 28

// TableOptions controls terminal styling of the table writer.
type TableOptions struct {
	Color  termcolor.Settings
	Swatch bool
}

// WriteTable renders an aligned, optionally colored table. Swatches are only
// drawn when colors are enabled.
func WriteTable(w io.Writer, results []*engine.Result, layout Layout, opts TableOptions) error {
	headers := layout.Headers()
	for i := range headers {
		headers[i] = strings.ToUpper(headers[i])
	}
	rows := make([][]string, 0, len(results)+1)
	rows = append(rows, headers)
	for _, r := range results {
		rows = append(rows, styledRow(r, layout, opts))
	}
	widths := textutil.ColumnWidths(rows)
	aligns := columnAligns(layout)

	var b strings.Builder
	for ri, row := range rows {
		b.Reset()
		last := len(row) - 1
		for last > 0 && textutil.VisibleWidth(row[last]) == 0 {
			last--
		}
		for i := 0; i <= last; i++ {
			cell := row[i]
			if i > 0 {
				b.WriteString("  ")
			}
			if ri == 0 {
				padded := textutil.Pad(cell, widths[i], aligns[i])
				if i == last {
					padded = cell
				}
				b.WriteString(termcolor.Apply(termcolor.HeaderStyle(), padded, opts.Color.Enabled))
				continue
			}
			if i == last && aligns[i] == textutil.AlignLeft {
				b.WriteString(cell)
				continue
			}
			b.WriteString(textutil.Pad(cell, widths[i], aligns[i]))
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func columnAligns(layout Layout) []textutil.Align {
	headers := layout.Headers()
	out := make([]textutil.Align, len(headers))
	for i, h := range headers {
		if h == "ratio" || h == "line" {
			out[i] = textutil.AlignRight
		}
	}
	return out
}

func styledRow(r *engine.Result, layout Layout, opts TableOptions) []string {
	plain := layout.RowValues(r)
	enabled := opts.Color.Enabled
	profile := opts.Color.Profile
	scheme := opts.Color.Scheme

	out := make([]string, 0, len(plain))
	i := 0
	if layout.Line {
		out = append(out, plain[i])
		i++
	}
	out = append(out, colorCell(r.Foreground, plain[i], opts))
	out = append(out, colorCell(r.Background, plain[i+1], opts))
	ratio := plain[i+2]
	if r.HasRatio() {
		ratio = termcolor.Apply(termcolor.RatioStyle(*r.Ratio, scheme, profile), ratio, enabled)
	}
	out = append(out, ratio, plain[i+3])
	i += 4
	for _, c := range layout.Criteria {
		res := r.Checks.Get(c)
		out = append(out, termcolor.Apply(termcolor.ResultStyle(res, scheme, profile), plain[i], enabled))
		i++
	}
	if layout.Suggest {
		cell := plain[i]
		if r.Suggestion != nil && r.Suggestion.Color.Valid() {
			cell = swatchPrefix(*r.Suggestion.Color.RGB, opts) + cell
		}
		out = append(out, cell)
		i++
	}
	errCell := plain[i]
	if errCell != "" {
		errCell = termcolor.Apply(termcolor.ResultStyle(wcag.Fail, scheme, profile), errCell, enabled)
	}
	return append(out, errCell)
}

func colorCell(c engine.Color, text string, opts TableOptions) string {
	text = textutil.TruncateByWidth(text, maxColorCellWidth, "…")
	if !c.Valid() {
		if text == "" {
			text = `""`
		}
		return termcolor.Apply(termcolor.Style{Dim: true}, text, opts.Color.Enabled)
	}
	return swatchPrefix(*c.RGB, opts) + text
}

func swatchPrefix(rgb colorutil.RGB, opts TableOptions) string {
	if !opts.Swatch || !opts.Color.Enabled {
		return ""
	}
	return termcolor.Apply(termcolor.SwatchStyle(rgb, opts.Color.Profile), "  ", true) + " "
}
