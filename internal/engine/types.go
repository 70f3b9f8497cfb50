package engine

import (
	"github.com/phyten/contrastx/internal/colorutil"
	"github.com/phyten/contrastx/internal/wcag"
)

// Color は 1 つの入力色の解析結果を表す
type Color struct {
	Input     string         `json:"input"`
	Format    string         `json:"format,omitempty"`
	RGB       *colorutil.RGB `json:"rgb,omitempty"`
	Hex       string         `json:"hex,omitempty"`
	Luminance *float64       `json:"luminance,omitempty"`
}

// Valid は色が解析済みかどうかを返す
func (c Color) Valid() bool {
	return c.RGB != nil
}

// FieldError は入力欄ごとの解析エラーを表す
type FieldError struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"` // empty|malformed
	Message string `json:"message"`
}

// Suggestion は基準を満たす代替の前景色を表す
type Suggestion struct {
	Color    Color   `json:"color"`
	Ratio    float64 `json:"ratio"`
	MinRatio float64 `json:"min_ratio"`
	Reached  bool    `json:"reached"`
}

// Pair は前景色と背景色の組
type Pair struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
	Line       int    `json:"line,omitempty"`
}

// Options は実行オプション
type Options struct {
	Foreground string
	Background string
	Criteria   []wcag.Criterion
	Suggest    bool
	MinRatio   float64
}

// Result は出力
type Result struct {
	Foreground Color        `json:"foreground"`
	Background Color        `json:"background"`
	Ratio      *float64     `json:"ratio"`
	RatioText  string       `json:"ratio_text,omitempty"`
	Band       string       `json:"band"`
	Checks     wcag.Report  `json:"checks"`
	Suggestion *Suggestion  `json:"suggestion,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
	Line       int          `json:"line,omitempty"`
}

// HasRatio は比率が計算できたかどうかを返す
func (r *Result) HasRatio() bool {
	return r != nil && r.Ratio != nil
}

// Passed は要求されたすべての基準を満たしたかどうかを返す
func (r *Result) Passed() bool {
	return r.HasRatio() && r.Checks.Passed()
}
