package colorutil

import (
	"math"
	"testing"
)

func TestContrastRatio(t *testing.T) {
	cases := []struct {
		name     string
		fg, bg   RGB
		minRatio float64
	}{
		{"blackOnWhite", RGB{0, 0, 0}, RGB{255, 255, 255}, 4.5},
		{"whiteOnBlack", RGB{255, 255, 255}, RGB{0, 0, 0}, 4.5},
		{"darkRedOnWhite", RGB{185, 28, 28}, RGB{255, 255, 255}, 4.5},
		{"amberOnBlack", RGB{245, 158, 11}, RGB{17, 24, 39}, 4.5},
	}
	for _, tc := range cases {
		ratio := ContrastRatio(tc.fg, tc.bg)
		if ratio < tc.minRatio {
			t.Fatalf("%s contrast ratio %.2f < %.2f", tc.name, ratio, tc.minRatio)
		}
	}
}

func TestContrastRatioBlackWhiteIs21(t *testing.T) {
	if got := RoundRatio(ContrastRatio(black, white)); got != 21 {
		t.Fatalf("black/white ratio = %v, want 21", got)
	}
}

func TestContrastRatioSymmetricAndReflexive(t *testing.T) {
	colors := []RGB{
		{0, 0, 0}, {255, 255, 255}, {119, 119, 119}, {255, 0, 0},
		{0, 128, 0}, {12, 200, 250}, {250, 247, 1}, {1, 2, 3},
	}
	for _, a := range colors {
		if got := RoundRatio(ContrastRatio(a, a)); got != 1 {
			t.Fatalf("ratio(%v,%v) = %v, want 1", a, a, got)
		}
		for _, b := range colors {
			if ContrastRatio(a, b) != ContrastRatio(b, a) {
				t.Fatalf("ratio not symmetric for %v/%v", a, b)
			}
		}
	}
}

func TestContrastRatioKnownGray(t *testing.T) {
	got := RoundRatio(ContrastRatio(RGB{0x77, 0x77, 0x77}, white))
	if math.Abs(got-4.48) > 0.02 {
		t.Fatalf("#777777 on white = %v, want ~4.48", got)
	}
}

func TestLuminanceBounds(t *testing.T) {
	if l := Luminance(black); l != 0 {
		t.Fatalf("black luminance = %v", l)
	}
	if l := Luminance(white); math.Abs(l-1) > 1e-9 {
		t.Fatalf("white luminance = %v", l)
	}
	// 10/255 sits below the 0.03928 knee, so the linear segment applies.
	low := Luminance(RGB{10, 10, 10})
	want := (10.0 / 255.0) / 12.92
	if math.Abs(low-want) > 1e-12 {
		t.Fatalf("low luminance = %v, want %v", low, want)
	}
}

func TestRoundAndFormatRatio(t *testing.T) {
	if got := RoundRatio(4.4789); got != 4.48 {
		t.Fatalf("RoundRatio = %v", got)
	}
	if got := FormatRatio(21); got != "21.00:1" {
		t.Fatalf("FormatRatio = %q", got)
	}
}

func TestHex(t *testing.T) {
	if got := (RGB{170, 187, 204}).Hex(); got != "#aabbcc" {
		t.Fatalf("Hex = %q", got)
	}
}

func TestAutoTextColor(t *testing.T) {
	cases := []struct {
		name string
		bg   RGB
		want RGB
	}{
		{"lightBackground", RGB{255, 247, 237}, black},
		{"darkBackground", RGB{15, 23, 42}, white},
		{"medium", RGB{120, 113, 108}, white},
	}
	for _, tc := range cases {
		got := AutoTextColor(tc.bg)
		if got != tc.want {
			t.Fatalf("%s AutoTextColor=%v want %v", tc.name, got, tc.want)
		}
	}
}

func TestEnsureContrastPrefersAutoWhenNeeded(t *testing.T) {
	bg := RGB{255, 255, 255}
	fg := RGB{255, 0, 0}
	ensured, ok := EnsureContrast(fg, bg, 4.5)
	if !ok || ContrastRatio(ensured, bg) < 4.5 {
		t.Fatalf("expected EnsureContrast to meet ratio, got %.2f", ContrastRatio(ensured, bg))
	}
}

func TestEnsureContrastKeepsPassingColor(t *testing.T) {
	fg := RGB{0, 0, 128}
	got, ok := EnsureContrast(fg, white, 4.5)
	if !ok || got != fg {
		t.Fatalf("EnsureContrast replaced a passing color: %v ok=%v", got, ok)
	}
}

func TestEnsureContrastReportsUnreachable(t *testing.T) {
	// No color reaches 21:1 against mid gray.
	_, ok := EnsureContrast(RGB{128, 128, 128}, RGB{119, 119, 119}, 21)
	if ok {
		t.Fatal("expected unreachable ratio to report false")
	}
}
