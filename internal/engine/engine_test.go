package engine

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/phyten/contrastx/internal/colorparse"
	"github.com/phyten/contrastx/internal/colorutil"
	"github.com/phyten/contrastx/internal/wcag"
)

func TestComputeRatioKnownValues(t *testing.T) {
	black := colorutil.RGB{}
	white := colorutil.RGB{R: 255, G: 255, B: 255}
	if got := ComputeRatio(black, white); got != 21 {
		t.Fatalf("black/white = %v, want 21", got)
	}
	if got := ComputeRatio(white, white); got != 1 {
		t.Fatalf("white/white = %v, want 1", got)
	}
	gray := colorutil.RGB{R: 0x77, G: 0x77, B: 0x77}
	if got := ComputeRatio(gray, white); math.Abs(got-4.48) > 0.02 {
		t.Fatalf("#777/white = %v, want ~4.48", got)
	}
	if ComputeRatio(gray, white) != ComputeRatio(white, gray) {
		t.Fatal("ComputeRatio must be symmetric")
	}
}

func TestParseColorReturnsTypedError(t *testing.T) {
	for _, in := range []string{"#ggg", "rgb(300,0,0)", "hsl(400,0%,0%)", "notacolor"} {
		_, err := ParseColor(in)
		var pe *colorparse.ParseError
		if !errors.As(err, &pe) || pe.Kind != colorparse.KindMalformed {
			t.Fatalf("ParseColor(%q) = %v, want malformed ParseError", in, err)
		}
	}
}

func TestClassifyTags(t *testing.T) {
	cases := []struct {
		ratio     float64
		criterion string
		want      string
	}{
		{3, "large-text-AA", "pass"},
		{3, "graphics", "pass"},
		{4.499, "normal-text-AA", "fail"},
		{7, "normal-text-AAA", "pass"},
		{math.NaN(), "normal-aa", "unset"},
	}
	for _, tc := range cases {
		got, err := Classify(tc.ratio, tc.criterion)
		if err != nil {
			t.Fatalf("Classify(%v, %q): %v", tc.ratio, tc.criterion, err)
		}
		if got != tc.want {
			t.Fatalf("Classify(%v, %q) = %s, want %s", tc.ratio, tc.criterion, got, tc.want)
		}
	}
	if _, err := Classify(5, "bogus"); err == nil {
		t.Fatal("expected error for unknown criterion")
	}
}

func TestRunComputesReport(t *testing.T) {
	res, err := Run(Options{Foreground: "#777777", Background: "white"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.HasRatio() || *res.Ratio != 4.48 {
		t.Fatalf("unexpected ratio: %+v", res.Ratio)
	}
	if res.RatioText != "4.48:1" {
		t.Fatalf("ratio text = %q", res.RatioText)
	}
	if res.Foreground.Format != "hex6" || res.Background.Format != "named" {
		t.Fatalf("formats = %q/%q", res.Foreground.Format, res.Background.Format)
	}
	if res.Background.Hex != "#ffffff" {
		t.Fatalf("background hex = %q", res.Background.Hex)
	}
	// 4.478 rounds to 4.48 for display but still fails normal AA.
	if got := res.Checks.Get(wcag.NormalAA); got != wcag.Fail {
		t.Fatalf("normal-aa = %s, want fail", got)
	}
	if got := res.Checks.Get(wcag.LargeAA); got != wcag.Pass {
		t.Fatalf("large-aa = %s, want pass", got)
	}
	if len(res.Checks) != len(wcag.All()) {
		t.Fatalf("expected all criteria, got %d", len(res.Checks))
	}
	if res.Band != "aa-large" {
		t.Fatalf("band = %q", res.Band)
	}
	if len(res.Errors) != 0 || res.Suggestion != nil {
		t.Fatalf("unexpected extras: %+v %+v", res.Errors, res.Suggestion)
	}
}

func TestRunReportsFieldErrors(t *testing.T) {
	res, err := Run(Options{Foreground: "", Background: "rgb(999,0,0)", Criteria: []wcag.Criterion{wcag.NormalAA}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.HasRatio() {
		t.Fatal("ratio should be absent")
	}
	want := []string{"foreground:empty", "background:malformed"}
	var got []string
	for _, e := range res.Errors {
		got = append(got, e.Field+":"+e.Kind)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("errors = %v, want %v", got, want)
	}
	if res.Background.Format != "rgb" {
		t.Fatalf("background format = %q", res.Background.Format)
	}
	if len(res.Checks) != 1 || res.Checks[0].Result != wcag.Unset {
		t.Fatalf("checks = %+v", res.Checks)
	}
	if res.Band != "unset" || res.Passed() {
		t.Fatalf("band=%q passed=%v", res.Band, res.Passed())
	}
}

func TestFieldErrorKinds(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{err: &colorparse.ParseError{Kind: colorparse.KindEmpty}, want: "empty"},
		{err: fmt.Errorf("fg: %w", &colorparse.ParseError{Kind: colorparse.KindEmpty}), want: "empty"},
		{err: &colorparse.ParseError{Kind: colorparse.KindMalformed, Input: "x"}, want: "malformed"},
		{err: errors.New("boom"), want: "malformed"},
	}
	for _, tc := range cases {
		if got := fieldError("foreground", tc.err); got.Kind != tc.want {
			t.Fatalf("fieldError(%v).Kind = %q, want %q", tc.err, got.Kind, tc.want)
		}
	}
}

func TestRunSuggestion(t *testing.T) {
	res, err := Run(Options{Foreground: "#ff0000", Background: "#ffffff", Suggest: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Suggestion == nil {
		t.Fatal("expected suggestion")
	}
	if !res.Suggestion.Reached || res.Suggestion.Color.Hex != "#000000" || res.Suggestion.Ratio != 21 {
		t.Fatalf("unexpected suggestion: %+v", res.Suggestion)
	}

	res, err = Run(Options{Foreground: "black", Background: "white", Suggest: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Suggestion != nil {
		t.Fatal("passing pair should not get a suggestion")
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	if _, err := Run(Options{Foreground: "#000", Background: "#fff", Criteria: []wcag.Criterion{"nope"}}); err == nil {
		t.Fatal("expected unknown criterion error")
	}
	if _, err := Run(Options{Foreground: "#000", Background: "#fff", MinRatio: 30}); err == nil {
		t.Fatal("expected min_ratio error")
	}
}

func TestRunBatchKeepsOrderAndLines(t *testing.T) {
	pairs, err := ParsePairs(strings.NewReader("# header\n#000,#fff\n\nrgb(1, 2, 3)\twhite\nhsl(0, 0%, 50%); navy\nred blue\n"))
	if err != nil {
		t.Fatalf("ParsePairs: %v", err)
	}
	results, err := RunBatch(pairs, Options{})
	if err != nil {
		t.Fatalf("RunBatch: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	lines := []int{2, 4, 5, 6}
	for i, res := range results {
		if res.Line != lines[i] {
			t.Fatalf("result %d line = %d, want %d", i, res.Line, lines[i])
		}
		if !res.HasRatio() {
			t.Fatalf("result %d has no ratio: %+v", i, res.Errors)
		}
	}
	if *results[0].Ratio != 21 {
		t.Fatalf("first ratio = %v", *results[0].Ratio)
	}

	pairs, err = ParsePairs(strings.NewReader("#comment here\n#000,#fff\n"))
	if err != nil {
		t.Fatalf("ParsePairs: %v", err)
	}
	if len(pairs) != 1 || pairs[0].Line != 2 || pairs[0].Foreground != "#000" {
		t.Fatalf("comment line was read as data: %+v", pairs)
	}
}

func TestParsePairsComments(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{in: "#\n", want: 0},
		{in: "# header\n", want: 0},
		{in: "#comment here\n", want: 0},
		{in: "#TODO: add navy\n", want: 0},
		{in: "#notes,#fff\n", want: 0},
		{in: "// legacy\n", want: 0},
		{in: "#fff #000\n", want: 1},
		{in: "#FFFFFF;#000000\n", want: 1},
		{in: "#abc\twhite\n", want: 1},
	}
	for _, tc := range cases {
		pairs, err := ParsePairs(strings.NewReader(tc.in))
		if err != nil {
			t.Fatalf("ParsePairs(%q): %v", tc.in, err)
		}
		if len(pairs) != tc.want {
			t.Fatalf("ParsePairs(%q) = %+v, want %d pairs", tc.in, pairs, tc.want)
		}
	}
}

func TestParsePairsRejectsSingleColumn(t *testing.T) {
	if _, err := ParsePairs(strings.NewReader("#000\n")); err == nil {
		t.Fatal("expected error for a single color")
	}
}

func TestSplitPairRespectsParentheses(t *testing.T) {
	got := splitPair("rgb(1, 2, 3),hsl(10, 20%, 30%)")
	want := []string{"rgb(1, 2, 3)", "hsl(10, 20%, 30%)"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitPair = %v, want %v", got, want)
	}
}
