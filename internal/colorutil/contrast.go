package colorutil

import (
	"fmt"
	"math"
)

// RGB is an 8-bit sRGB triple.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

var (
	black = RGB{0, 0, 0}
	white = RGB{255, 255, 255}
)

// Black and White are the extremes AutoTextColor chooses between.
func Black() RGB { return black }
func White() RGB { return white }

// Hex formats the color as lower-case #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func srgbToLinear(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Luminance returns the WCAG relative luminance of rgb in [0,1].
func Luminance(rgb RGB) float64 {
	r := srgbToLinear(float64(rgb.R) / 255.0)
	g := srgbToLinear(float64(rgb.G) / 255.0)
	b := srgbToLinear(float64(rgb.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns (Llighter+0.05)/(Ldarker+0.05) at full precision.
// The argument order does not matter.
func ContrastRatio(fg, bg RGB) float64 {
	return RatioOfLuminances(Luminance(fg), Luminance(bg))
}

// RatioOfLuminances applies the lighter/darker rule to two luminances.
func RatioOfLuminances(l1, l2 float64) float64 {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// RoundRatio rounds a ratio to two decimals for display.
func RoundRatio(ratio float64) float64 {
	return math.Round(ratio*100) / 100
}

// FormatRatio renders a ratio as "N.NN:1".
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f:1", RoundRatio(ratio))
}

func AutoTextColor(bg RGB) RGB {
	crBlack := ContrastRatio(black, bg)
	crWhite := ContrastRatio(white, bg)
	if crBlack >= 4.5 || crBlack >= crWhite {
		return black
	}
	return white
}

// EnsureContrast returns fg when it already reaches minRatio against bg,
// otherwise the better of black and white. The second return value reports
// whether the returned color actually reaches minRatio.
func EnsureContrast(fg, bg RGB, minRatio float64) (RGB, bool) {
	if minRatio <= 0 {
		minRatio = 4.5
	}
	if ContrastRatio(fg, bg) >= minRatio {
		return fg, true
	}
	candidate := AutoTextColor(bg)
	return candidate, ContrastRatio(candidate, bg) >= minRatio
}
