package colorparse

import (
	"math"

	"github.com/phyten/contrastx/internal/colorutil"
)

// HSL holds hue in degrees and saturation/lightness in percent.
type HSL struct {
	H float64
	S float64
	L float64
}

// Valid reports whether the components are inside [0,360] and [0,100].
func (c HSL) Valid() bool {
	return c.H >= 0 && c.H <= 360 &&
		c.S >= 0 && c.S <= 100 &&
		c.L >= 0 && c.L <= 100
}

// RGB converts through chroma and hue-prime. The sector ladder is closed on
// the upper edge of every sector after the first, and the last sector takes
// everything above 5 (including a hue of exactly 360).
func (c HSL) RGB() colorutil.RGB {
	s := c.S / 100
	l := c.L / 100
	chroma := (1 - math.Abs(2*l-1)) * s
	huePrime := c.H / 60
	x := chroma * (1 - math.Abs(math.Mod(huePrime, 2)-1))

	var r1, g1, b1 float64
	switch {
	case huePrime <= 1:
		r1, g1, b1 = chroma, x, 0
	case huePrime <= 2:
		r1, g1, b1 = x, chroma, 0
	case huePrime <= 3:
		r1, g1, b1 = 0, chroma, x
	case huePrime <= 4:
		r1, g1, b1 = 0, x, chroma
	case huePrime <= 5:
		r1, g1, b1 = x, 0, chroma
	default:
		r1, g1, b1 = chroma, 0, x
	}

	m := l - chroma/2
	return colorutil.RGB{R: toByte(r1 + m), G: toByte(g1 + m), B: toByte(b1 + m)}
}

func toByte(v float64) uint8 {
	n := math.Round(v * 255)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}
