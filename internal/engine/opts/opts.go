package opts

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/phyten/contrastx/internal/engine"
	"github.com/phyten/contrastx/internal/wcag"
)

const (
	defaultMinRatio = 4.5
)

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}

	outputFormats = []string{"table", "tsv", "json", "ndjson", "csv", "markdown"}
)

// Defaults returns the shared baseline options for both CLI and Web inputs.
func Defaults() engine.Options {
	return engine.Options{
		Foreground: "",
		Background: "",
		Criteria:   wcag.All(),
		Suggest:    false,
		MinRatio:   defaultMinRatio,
	}
}

// ApplyWebQuery copies recognised values from the query string into the
// provided options. Validation happens separately via NormalizeAndValidate.
//
// Colors are taken verbatim (they may contain commas); criteria accept
// repeated parameters and comma separated lists.
func ApplyWebQuery(def engine.Options, q url.Values) (engine.Options, error) {
	out := def

	if raw, ok := lastRawValue(firstPresent(q, "fg", "foreground")); ok {
		out.Foreground = raw
	}
	if raw, ok := lastRawValue(firstPresent(q, "bg", "background")); ok {
		out.Background = raw
	}
	if raw := q["criteria"]; len(raw) > 0 {
		criteria, err := wcag.ParseCriteria(SplitMulti(raw))
		if err != nil {
			return out, err
		}
		out.Criteria = criteria
	}
	if raw, ok := lastLiteralValue(q["suggest"]); ok {
		v, err := ParseBool(raw, "suggest")
		if err != nil {
			return out, err
		}
		out.Suggest = v
	}
	if raw, ok := lastLiteralValue(q["min_ratio"]); ok {
		f, err := ParseFloatInRange(raw, "min_ratio", 1, 21)
		if err != nil {
			return out, err
		}
		out.MinRatio = f
	}

	return out, nil
}

// NormalizeAndValidate ensures the options are canonical and within the allowed ranges.
func NormalizeAndValidate(o *engine.Options) error {
	if len(o.Criteria) == 0 {
		o.Criteria = wcag.All()
	}
	raw := make([]string, len(o.Criteria))
	for i, c := range o.Criteria {
		raw[i] = string(c)
	}
	criteria, err := wcag.ParseCriteria(raw)
	if err != nil {
		return fmt.Errorf("invalid --criteria: %w", err)
	}
	o.Criteria = criteria

	if o.MinRatio == 0 {
		o.MinRatio = defaultMinRatio
	}
	if math.IsNaN(o.MinRatio) || o.MinRatio < 1 || o.MinRatio > 21 {
		return fmt.Errorf("min_ratio must be between 1 and 21")
	}
	return nil
}

// ParseBool converts a string literal into a boolean, accepting multiple synonyms.
func ParseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid value for %s: %q", key, raw)
}

// ParseIntInRange parses a string into an int and ensures it falls within [min, max].
// If max < min, the upper bound is ignored.
func ParseIntInRange(raw, key string, min, max int) (int, error) {
	n, err := parseInt(raw, key)
	if err != nil {
		return 0, err
	}
	if n < min {
		if max >= min {
			return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
		}
		return 0, fmt.Errorf("%s must be >= %d", key, min)
	}
	if max >= min && n > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return n, nil
}

// ParseFloatInRange parses a decimal number and ensures it falls within [min, max].
func ParseFloatInRange(raw, key string, min, max float64) (float64, error) {
	v := strings.TrimSpace(raw)
	f, err := strconv.ParseFloat(v, 64)
	if v == "" || err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid number for %s: %q", key, raw)
	}
	if f < min || f > max {
		return 0, fmt.Errorf("%s must be between %g and %g", key, min, max)
	}
	return f, nil
}

// NormalizeOutput validates and lower-cases the CLI output format value.
func NormalizeOutput(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "":
		return "table", nil
	case "md":
		return "markdown", nil
	case "jsonl":
		return "ndjson", nil
	}
	for _, f := range outputFormats {
		if v == f {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid --output: %s (want one of %s)", value, strings.Join(outputFormats, ", "))
}

// SplitMulti turns repeated query parameters (and comma-separated values) into a flat slice.
func SplitMulti(vals []string) []string {
	var out []string
	for _, raw := range vals {
		for _, piece := range strings.Split(raw, ",") {
			part := strings.TrimSpace(piece)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func parseInt(raw, key string) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	return n, nil
}

func firstPresent(q url.Values, keys ...string) []string {
	for _, k := range keys {
		if vals, ok := q[k]; ok {
			return vals
		}
	}
	return nil
}

func lastLiteralValue(vals []string) (string, bool) {
	flat := SplitMulti(vals)
	if len(flat) == 0 {
		return "", false
	}
	return flat[len(flat)-1], true
}

// lastRawValue keeps the value as typed, including an explicit empty one, so
// a cleared field is reported as empty rather than ignored.
func lastRawValue(vals []string) (string, bool) {
	if len(vals) == 0 {
		return "", false
	}
	return vals[len(vals)-1], true
}
