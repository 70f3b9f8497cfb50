package engine

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/phyten/contrastx/internal/colorparse"
)

// ParsePairs reads one foreground/background pair per line. Fields are split
// on a tab, a semicolon, or a comma outside parentheses, falling back to
// whitespace outside parentheses. Blank lines, "//" lines and '#' comments
// are skipped. A line whose first field is a hex color ("#fff,#000") is data.
func ParsePairs(r io.Reader) ([]Pair, error) {
	sc := bufio.NewScanner(r)
	var out []Pair
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || isComment(line) {
			continue
		}
		fields := splitPair(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 colors, got %d", lineNo, len(fields))
		}
		out = append(out, Pair{Foreground: fields[0], Background: fields[1], Line: lineNo})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func isComment(line string) bool {
	if strings.HasPrefix(line, "//") {
		return true
	}
	if !strings.HasPrefix(line, "#") {
		return false
	}
	end := strings.IndexAny(line, " \t,;")
	if end < 0 {
		end = len(line)
	}
	switch colorparse.Detect(line[:end]) {
	case colorparse.FormatHex3, colorparse.FormatHex6:
		return false
	}
	return true
}

func splitPair(line string) []string {
	for _, sep := range []rune{'\t', ';', ','} {
		if parts := splitTopLevel(line, func(r rune) bool { return r == sep }); len(parts) > 1 {
			return parts
		}
	}
	return splitTopLevel(line, func(r rune) bool { return r == ' ' })
}

// splitTopLevel splits on runes accepted by isSep that are not inside
// parentheses, dropping empty fields.
func splitTopLevel(s string, isSep func(rune) bool) []string {
	var out []string
	depth := 0
	start := 0
	flush := func(end int) {
		if field := strings.TrimSpace(s[start:end]); field != "" {
			out = append(out, field)
		}
	}
	for i, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0 && isSep(r):
			flush(i)
			start = i + len(string(r))
		}
	}
	flush(len(s))
	return out
}
