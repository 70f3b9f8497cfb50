// Package wcag classifies contrast ratios against the WCAG AA/AAA thresholds.
package wcag

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Criterion identifies one row of the threshold table.
type Criterion string

const (
	Graphics  Criterion = "graphics"
	LargeAA   Criterion = "large-aa"
	NormalAA  Criterion = "normal-aa"
	LargeAAA  Criterion = "large-aaa"
	NormalAAA Criterion = "normal-aaa"
)

var thresholds = map[Criterion]float64{
	Graphics:  3,
	LargeAA:   3,
	NormalAA:  4.5,
	LargeAAA:  4.5,
	NormalAAA: 7,
}

// order is the canonical display order.
var order = []Criterion{NormalAA, LargeAA, NormalAAA, LargeAAA, Graphics}

// All returns every criterion in display order.
func All() []Criterion {
	out := make([]Criterion, len(order))
	copy(out, order)
	return out
}

// Threshold returns the minimum passing ratio for c.
func Threshold(c Criterion) (float64, bool) {
	v, ok := thresholds[c]
	return v, ok
}

// Label is the human readable name of c.
func (c Criterion) Label() string {
	switch c {
	case Graphics:
		return "Graphics"
	case LargeAA:
		return "Large text AA"
	case NormalAA:
		return "Normal text AA"
	case LargeAAA:
		return "Large text AAA"
	case NormalAAA:
		return "Normal text AAA"
	default:
		return string(c)
	}
}

// ParseCriterion accepts the short tags ("normal-aa") as well as the long
// ones ("normal-text-AA", "large_text_aaa", "non-text").
func ParseCriterion(raw string) (Criterion, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	v = strings.ReplaceAll(v, "_", "-")
	v = strings.ReplaceAll(v, " ", "-")
	v = strings.ReplaceAll(v, "-text-", "-")
	switch v {
	case "graphics", "non-text", "nontext", "ui":
		return Graphics, nil
	}
	c := Criterion(v)
	if _, ok := thresholds[c]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown criterion: %s", raw)
}

// ParseCriteria parses a list, dropping duplicates. An empty list means all.
func ParseCriteria(raw []string) ([]Criterion, error) {
	if len(raw) == 0 {
		return All(), nil
	}
	seen := make(map[Criterion]struct{}, len(raw))
	out := make([]Criterion, 0, len(raw))
	for _, r := range raw {
		c, err := ParseCriterion(r)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}

// Result is the outcome for a single criterion.
type Result int

const (
	Unset Result = iota
	Fail
	Pass
)

func (r Result) String() string {
	switch r {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	default:
		return "unset"
	}
}

func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Result) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "pass":
		*r = Pass
	case "fail":
		*r = Fail
	case "unset", "":
		*r = Unset
	default:
		return fmt.Errorf("unknown result: %s", b)
	}
	return nil
}

// Available reports whether ratio is a usable contrast ratio.
func Available(ratio float64) bool {
	return !math.IsNaN(ratio) && ratio >= 1
}

// Classify compares ratio with the threshold of c. Unknown criteria and
// unavailable ratios yield Unset.
func Classify(ratio float64, c Criterion) Result {
	limit, ok := thresholds[c]
	if !ok || !Available(ratio) {
		return Unset
	}
	if ratio >= limit {
		return Pass
	}
	return Fail
}

// Check is one evaluated row.
type Check struct {
	Criterion Criterion `json:"criterion"`
	Label     string    `json:"label"`
	Threshold float64   `json:"threshold"`
	Result    Result    `json:"result"`
}

// Report holds the checks for a set of criteria in a stable order.
type Report []Check

// Assess classifies ratio against every criterion.
func Assess(ratio float64) Report {
	return AssessCriteria(ratio, order)
}

// AssessCriteria classifies ratio against the given criteria.
func AssessCriteria(ratio float64, criteria []Criterion) Report {
	out := make(Report, 0, len(criteria))
	for _, c := range criteria {
		limit, _ := Threshold(c)
		out = append(out, Check{Criterion: c, Label: c.Label(), Threshold: limit, Result: Classify(ratio, c)})
	}
	return out
}

// UnsetReport is the report used when no ratio could be computed.
func UnsetReport(criteria []Criterion) Report {
	return AssessCriteria(math.NaN(), criteria)
}

// Get returns the result for c, or Unset when c is not in the report.
func (r Report) Get(c Criterion) Result {
	for _, check := range r {
		if check.Criterion == c {
			return check.Result
		}
	}
	return Unset
}

// Passed reports whether every check in r passed.
func (r Report) Passed() bool {
	if len(r) == 0 {
		return false
	}
	for _, check := range r {
		if check.Result != Pass {
			return false
		}
	}
	return true
}

// Band names the coarse band a ratio falls in.
func Band(ratio float64) string {
	switch {
	case !Available(ratio):
		return "unset"
	case ratio >= 7:
		return "aaa"
	case ratio >= 4.5:
		return "aa"
	case ratio >= 3:
		return "aa-large"
	default:
		return "fail"
	}
}

// MarshalJSON keeps an empty report as [] rather than null.
func (r Report) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Check(r))
}
