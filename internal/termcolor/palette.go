package termcolor

import (
	"math"

	"github.com/phyten/contrastx/internal/colorutil"
	"github.com/phyten/contrastx/internal/wcag"
)

// basicPalette approximates the xterm defaults for SGR 30-37.
var basicPalette = [8]colorutil.RGB{
	{R: 0, G: 0, B: 0},
	{R: 205, G: 0, B: 0},
	{R: 0, G: 205, B: 0},
	{R: 205, G: 205, B: 0},
	{R: 0, G: 0, B: 238},
	{R: 205, G: 0, B: 205},
	{R: 0, G: 205, B: 205},
	{R: 229, G: 229, B: 229},
}

func HeaderStyle() Style {
	return Style{Bold: true, Underline: true}
}

// ResultStyle colors a pass/fail cell. Light schemes get darker shades that
// stay readable on a near-white terminal background.
func ResultStyle(r wcag.Result, scheme Scheme, profile Profile) Style {
	switch r {
	case wcag.Pass:
		if scheme == SchemeLight {
			return profileStyle(profile, 2, 28, [3]uint8{21, 128, 61}, false)
		}
		return profileStyle(profile, 2, 78, [3]uint8{80, 200, 120}, false)
	case wcag.Fail:
		if scheme == SchemeLight {
			return profileStyle(profile, 1, 124, [3]uint8{185, 28, 28}, true)
		}
		return profileStyle(profile, 1, 203, [3]uint8{248, 113, 113}, true)
	default:
		return Style{Dim: true}
	}
}

func profileStyle(profile Profile, basic, idx256 int, rgb [3]uint8, bold bool) Style {
	switch profile {
	case ProfileTrueColor:
		return Style{Bold: bold, FGTrue: &rgb}
	case ProfileANSI256:
		return Style{Bold: bold, FG256: &idx256}
	default:
		return Style{Bold: bold, FGBasic: &basic}
	}
}

// RatioStyle shades a contrast ratio from red (1:1) through yellow (4.5:1) to
// green (7:1 and above).
func RatioStyle(ratio float64, scheme Scheme, profile Profile) Style {
	if !wcag.Available(ratio) {
		return Style{Dim: true}
	}
	switch profile {
	case ProfileTrueColor, ProfileANSI256:
		r, g, b := gradientRGB(ratio)
		if scheme == SchemeLight {
			r, g, b = darken(r), darken(g), darken(b)
		}
		if profile == ProfileTrueColor {
			rgb := [3]uint8{r, g, b}
			return Style{FGTrue: &rgb}
		}
		idx := rgbToANSI256(r, g, b)
		return Style{FG256: &idx}
	default:
		color := ratioBucketColor(ratio)
		return Style{FGBasic: &color}
	}
}

// SwatchStyle paints the cell background with c and picks black or white
// text on top of it.
func SwatchStyle(c colorutil.RGB, profile Profile) Style {
	text := colorutil.AutoTextColor(c)
	switch profile {
	case ProfileTrueColor:
		bg := [3]uint8{c.R, c.G, c.B}
		fg := [3]uint8{text.R, text.G, text.B}
		return Style{FGTrue: &fg, BGTrue: &bg}
	case ProfileANSI256:
		bg := rgbToANSI256(c.R, c.G, c.B)
		fg := rgbToANSI256(text.R, text.G, text.B)
		return Style{FG256: &fg, BG256: &bg}
	default:
		bg := nearestBasic(c)
		fg := 0
		if text == colorutil.White() {
			fg = 7
		}
		return Style{FGBasic: &fg, BGBasic: &bg}
	}
}

func gradientRGB(ratio float64) (uint8, uint8, uint8) {
	t := (ratio - 1) / 6
	if t <= 0 {
		return 255, 0, 0
	}
	if t >= 1 {
		return 0, 255, 0
	}
	// 4.5:1 sits at t=7/12; keep the yellow midpoint there.
	const mid = 3.5 / 6
	if t < mid {
		g := uint8(math.Round(255 * t / mid))
		return 255, g, 0
	}
	r := uint8(math.Round(255 * (1 - (t-mid)/(1-mid))))
	return r, 255, 0
}

func darken(v uint8) uint8 {
	return uint8(math.Round(float64(v) * 0.6))
}

func ratioBucketColor(ratio float64) int {
	switch {
	case ratio < 3:
		return 1
	case ratio < 4.5:
		return 3
	default:
		return 2
	}
}

func nearestBasic(c colorutil.RGB) int {
	best, bestDist := 0, math.MaxFloat64
	for i, p := range basicPalette {
		dr := float64(c.R) - float64(p.R)
		dg := float64(c.G) - float64(p.G)
		db := float64(c.B) - float64(p.B)
		if d := dr*dr + dg*dg + db*db; d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func rgbToANSI256(r, g, b uint8) int {
	if r == g && g == b {
		if r < 8 {
			return 16
		}
		if r > 248 {
			return 231
		}
		return 232 + (int(r)-8)*24/247
	}
	rr := int(r) * 5 / 255
	gg := int(g) * 5 / 255
	bb := int(b) * 5 / 255
	return 16 + 36*rr + 6*gg + bb
}
