package output

import (
	"strconv"
	"strings"

	"github.com/phyten/contrastx/internal/engine"
	"github.com/phyten/contrastx/internal/wcag"
)

// Layout fixes the columns shared by every row of one rendering.
type Layout struct {
	Criteria []wcag.Criterion
	Suggest  bool
	Line     bool
}

// NewLayout derives the columns from the results: one per criterion in the
// order of the first result's report, a suggestion column when any result
// carries one, and a line column for batch input.
func NewLayout(results []*engine.Result) Layout {
	var layout Layout
	for _, r := range results {
		if r == nil {
			continue
		}
		if layout.Criteria == nil {
			for _, c := range r.Checks {
				layout.Criteria = append(layout.Criteria, c.Criterion)
			}
		}
		if r.Suggestion != nil {
			layout.Suggest = true
		}
		if r.Line > 0 {
			layout.Line = true
		}
	}
	return layout
}

// Headers returns the lowercase column names.
func (l Layout) Headers() []string {
	out := make([]string, 0, 6+len(l.Criteria))
	if l.Line {
		out = append(out, "line")
	}
	out = append(out, "foreground", "background", "ratio", "band")
	for _, c := range l.Criteria {
		out = append(out, string(c))
	}
	if l.Suggest {
		out = append(out, "suggestion")
	}
	return append(out, "error")
}

// RowValues returns the plain cell values for r in Headers order.
func (l Layout) RowValues(r *engine.Result) []string {
	out := make([]string, 0, 6+len(l.Criteria))
	if l.Line {
		out = append(out, lineText(r.Line))
	}
	out = append(out, colorText(r.Foreground), colorText(r.Background), ratioText(r), r.Band)
	for _, c := range l.Criteria {
		out = append(out, r.Checks.Get(c).String())
	}
	if l.Suggest {
		out = append(out, suggestionText(r.Suggestion))
	}
	return append(out, errorText(r.Errors))
}

func colorText(c engine.Color) string {
	if c.Valid() {
		return c.Hex
	}
	return c.Input
}

func ratioText(r *engine.Result) string {
	if !r.HasRatio() {
		return "-"
	}
	return strconv.FormatFloat(*r.Ratio, 'f', 2, 64)
}

func lineText(line int) string {
	if line <= 0 {
		return ""
	}
	return strconv.Itoa(line)
}

func suggestionText(s *engine.Suggestion) string {
	if s == nil {
		return ""
	}
	text := s.Color.Hex + " (" + strconv.FormatFloat(s.Ratio, 'f', 2, 64) + ")"
	if !s.Reached {
		text += " unreachable"
	}
	return text
}

func errorText(errs []engine.FieldError) string {
	if len(errs) == 0 {
		return ""
	}
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Field + ": " + e.Message
	}
	return strings.Join(parts, "; ")
}
