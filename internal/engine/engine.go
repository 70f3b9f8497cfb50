package engine

import (
	"fmt"

	"github.com/phyten/contrastx/internal/colorparse"
	"github.com/phyten/contrastx/internal/colorutil"
	"github.com/phyten/contrastx/internal/wcag"
)

const defaultMinRatio = 4.5

// ParseColor は入力文字列を RGB に変換する。失敗時は *colorparse.ParseError を返す。
func ParseColor(text string) (colorutil.RGB, error) {
	return colorparse.Parse(text)
}

// ComputeRatio は 2 色のコントラスト比を小数点以下 2 桁に丸めて返す。
func ComputeRatio(a, b colorutil.RGB) float64 {
	return colorutil.RoundRatio(colorutil.ContrastRatio(a, b))
}

// Classify は比率を基準タグで判定し "pass" / "fail" / "unset" を返す。
func Classify(ratio float64, criterion string) (string, error) {
	c, err := wcag.ParseCriterion(criterion)
	if err != nil {
		return "", err
	}
	return wcag.Classify(ratio, c).String(), nil
}

// Run は前景色と背景色を解析し、コントラスト比と各基準の判定結果を返します。
//
// 入力の解析エラーは Result.Errors に格納され、その場合の判定はすべて unset になります。
// エラーを返すのはオプション自体が不正な場合のみです。
func Run(opts Options) (*Result, error) {
	criteria := opts.Criteria
	if len(criteria) == 0 {
		criteria = wcag.All()
	}
	for _, c := range criteria {
		if _, ok := wcag.Threshold(c); !ok {
			return nil, fmt.Errorf("unknown criterion: %s", c)
		}
	}
	minRatio := opts.MinRatio
	if minRatio == 0 {
		minRatio = defaultMinRatio
	}
	if minRatio < 1 || minRatio > 21 {
		return nil, fmt.Errorf("min_ratio must be between 1 and 21")
	}

	res := &Result{}
	fg, fgErr := describe(opts.Foreground)
	bg, bgErr := describe(opts.Background)
	res.Foreground = fg
	res.Background = bg
	if fgErr != nil {
		res.Errors = append(res.Errors, fieldError("foreground", fgErr))
	}
	if bgErr != nil {
		res.Errors = append(res.Errors, fieldError("background", bgErr))
	}

	if !fg.Valid() || !bg.Valid() {
		res.Band = wcag.Band(0)
		res.Checks = wcag.UnsetReport(criteria)
		return res, nil
	}

	raw := colorutil.RatioOfLuminances(*fg.Luminance, *bg.Luminance)
	rounded := colorutil.RoundRatio(raw)
	res.Ratio = &rounded
	res.RatioText = colorutil.FormatRatio(raw)
	res.Band = wcag.Band(raw)
	res.Checks = wcag.AssessCriteria(raw, criteria)

	if opts.Suggest && raw < minRatio {
		suggested, reached := colorutil.EnsureContrast(*fg.RGB, *bg.RGB, minRatio)
		res.Suggestion = &Suggestion{
			Color:    colorFromRGB(suggested.Hex(), "hex6", suggested),
			Ratio:    ComputeRatio(suggested, *bg.RGB),
			MinRatio: minRatio,
			Reached:  reached,
		}
	}
	return res, nil
}

// RunBatch は複数の組を順番に評価する。
func RunBatch(pairs []Pair, opts Options) ([]*Result, error) {
	out := make([]*Result, 0, len(pairs))
	for _, p := range pairs {
		o := opts
		o.Foreground = p.Foreground
		o.Background = p.Background
		res, err := Run(o)
		if err != nil {
			return nil, err
		}
		res.Line = p.Line
		out = append(out, res)
	}
	return out, nil
}

func describe(input string) (Color, error) {
	rgb, format, err := colorparse.ParseFormat(input)
	if err != nil {
		return Color{Input: input, Format: string(format)}, err
	}
	return colorFromRGB(input, string(format), rgb), nil
}

func colorFromRGB(input, format string, rgb colorutil.RGB) Color {
	lum := colorutil.Luminance(rgb)
	c := rgb
	return Color{Input: input, Format: format, RGB: &c, Hex: rgb.Hex(), Luminance: &lum}
}

func fieldError(field string, err error) FieldError {
	kind := colorparse.KindMalformed
	if colorparse.KindOf(err) == colorparse.KindEmpty {
		kind = colorparse.KindEmpty
	}
	return FieldError{Field: field, Kind: kind.String(), Message: err.Error()}
}
