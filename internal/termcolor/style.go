package termcolor

import (
	"fmt"
	"strings"
)

// Style is one SGR attribute set. For each of the foreground and background
// channels the most specific color wins: true color, then 256, then basic.
type Style struct {
	Bold      bool
	Underline bool
	Dim       bool
	FGBasic   *int
	FG256     *int
	FGTrue    *[3]uint8
	BGBasic   *int
	BG256     *int
	BGTrue    *[3]uint8
}

// IsZero reports whether the style emits no escape codes.
func (s Style) IsZero() bool {
	return len(sgrCodes(s)) == 0
}

func Apply(s Style, text string, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	codes := sgrCodes(s)
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}

func sgrCodes(s Style) []string {
	codes := make([]string, 0, 6)
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Dim {
		codes = append(codes, "2")
	}
	if s.Underline {
		codes = append(codes, "4")
	}
	if code := channelCode(38, 30, s.FGTrue, s.FG256, s.FGBasic); code != "" {
		codes = append(codes, code)
	}
	if code := channelCode(48, 40, s.BGTrue, s.BG256, s.BGBasic); code != "" {
		codes = append(codes, code)
	}
	return codes
}

func channelCode(extended, basicBase int, trueColor *[3]uint8, idx256, basic *int) string {
	switch {
	case trueColor != nil:
		rgb := *trueColor
		return fmt.Sprintf("%d;2;%d;%d;%d", extended, rgb[0], rgb[1], rgb[2])
	case idx256 != nil:
		return fmt.Sprintf("%d;5;%d", extended, *idx256)
	case basic != nil:
		return fmt.Sprintf("%d", basicBase+*basic)
	}
	return ""
}
