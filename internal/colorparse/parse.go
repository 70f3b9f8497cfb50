// Package colorparse turns user-typed color text into an RGB triple.
//
// Accepted forms, tried in this order:
//
//	#rgb                 short hex, each digit doubled
//	#rrggbb              hex
//	hsl(H, S%, L%)       H in [0,360], S and L in [0,100]
//	rgb(R, G, B)         each in [0,255]
//	<name>               CSS color keyword
package colorparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/phyten/contrastx/internal/colornames"
	"github.com/phyten/contrastx/internal/colorutil"
)

// Format names a recognised input syntax.
type Format string

const (
	FormatUnknown Format = ""
	FormatHex3    Format = "hex3"
	FormatHex6    Format = "hex6"
	FormatHSL     Format = "hsl"
	FormatRGB     Format = "rgb"
	FormatNamed   Format = "named"
)

var (
	hex3Re = regexp.MustCompile(`^#[0-9a-f]{3}$`)
	hex6Re = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	hslRe  = regexp.MustCompile(`^hsl\s?\(\s?(\d{1,3}),\s?(\d{1,3})%,\s?(\d{1,3})%\)$`)
	rgbRe  = regexp.MustCompile(`^rgb\(\s?(\d{1,3}),\s?(\d{1,3}),\s?(\d{1,3})\)$`)
)

// format pairs a syntax test with the converter for that syntax. match
// returns nil when the input is not in this format; build may still reject
// input whose syntax matched.
type format struct {
	name  Format
	match func(s string) []string
	build func(groups []string) (colorutil.RGB, string)
}

var formats = []format{
	{name: FormatHex3, match: regexMatcher(hex3Re), build: buildHex3},
	{name: FormatHex6, match: regexMatcher(hex6Re), build: buildHex6},
	{name: FormatHSL, match: regexMatcher(hslRe), build: buildHSL},
	{name: FormatRGB, match: regexMatcher(rgbRe), build: buildRGB},
	{name: FormatNamed, match: matchNamed, build: buildNamed},
}

func regexMatcher(re *regexp.Regexp) func(string) []string {
	return re.FindStringSubmatch
}

// Normalize applies the trimming and case folding Parse uses.
func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// Detect reports which format input is written in without validating ranges.
func Detect(input string) Format {
	s := Normalize(input)
	if s == "" {
		return FormatUnknown
	}
	for _, f := range formats {
		if f.match(s) != nil {
			return f.name
		}
	}
	return FormatUnknown
}

// Parse converts input to RGB. The error is always a *ParseError.
func Parse(input string) (colorutil.RGB, error) {
	rgb, _, err := ParseFormat(input)
	return rgb, err
}

// ParseFormat is Parse that also reports the matched format.
func ParseFormat(input string) (colorutil.RGB, Format, error) {
	s := Normalize(input)
	if s == "" {
		return colorutil.RGB{}, FormatUnknown, &ParseError{Kind: KindEmpty, Input: input}
	}
	for _, f := range formats {
		groups := f.match(s)
		if groups == nil {
			continue
		}
		rgb, reason := f.build(groups)
		if reason != "" {
			return colorutil.RGB{}, f.name, &ParseError{Kind: KindMalformed, Input: input, Format: f.name, Reason: reason}
		}
		return rgb, f.name, nil
	}
	return colorutil.RGB{}, FormatUnknown, &ParseError{Kind: KindMalformed, Input: input}
}

// MustParse is Parse for literals known to be valid.
func MustParse(input string) colorutil.RGB {
	rgb, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return rgb
}

func buildHex3(groups []string) (colorutil.RGB, string) {
	var b strings.Builder
	b.WriteByte('#')
	for _, r := range groups[0][1:] {
		b.WriteRune(r)
		b.WriteRune(r)
	}
	return buildHex6([]string{b.String()})
}

func buildHex6(groups []string) (colorutil.RGB, string) {
	s := groups[0]
	var out [3]uint8
	for i := range out {
		n, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return colorutil.RGB{}, err.Error()
		}
		out[i] = uint8(n)
	}
	return colorutil.RGB{R: out[0], G: out[1], B: out[2]}, ""
}

func buildHSL(groups []string) (colorutil.RGB, string) {
	h, _ := strconv.Atoi(groups[1])
	s, _ := strconv.Atoi(groups[2])
	l, _ := strconv.Atoi(groups[3])
	c := HSL{H: float64(h), S: float64(s), L: float64(l)}
	if !c.Valid() {
		return colorutil.RGB{}, fmt.Sprintf("hsl(%d, %d%%, %d%%) out of range: hue 0-360, saturation and lightness 0-100", h, s, l)
	}
	return c.RGB(), ""
}

func buildRGB(groups []string) (colorutil.RGB, string) {
	var out [3]uint8
	for i := range out {
		n, _ := strconv.Atoi(groups[i+1])
		if n > 255 {
			return colorutil.RGB{}, fmt.Sprintf("channel %d out of range 0-255", n)
		}
		out[i] = uint8(n)
	}
	return colorutil.RGB{R: out[0], G: out[1], B: out[2]}, ""
}

func matchNamed(s string) []string {
	if colornames.Has(s) {
		return []string{s}
	}
	return nil
}

func buildNamed(groups []string) (colorutil.RGB, string) {
	rgb, _ := colornames.Lookup(groups[0])
	return rgb, ""
}
