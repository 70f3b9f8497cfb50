// Package colornames is the read-only table of CSS color keywords.
package colornames

import (
	"sort"
	"strings"

	xcolornames "golang.org/x/image/colornames"

	"github.com/phyten/contrastx/internal/colorutil"
)

// CSS Color Level 4 adds one keyword on top of the SVG 1.1 set.
var extra = map[string]colorutil.RGB{
	"rebeccapurple": {R: 102, G: 51, B: 153},
}

var (
	table = build()
	names = sortedNames(table)
)

func build() map[string]colorutil.RGB {
	out := make(map[string]colorutil.RGB, len(xcolornames.Map)+len(extra))
	for name, c := range xcolornames.Map {
		out[name] = colorutil.RGB{R: c.R, G: c.G, B: c.B}
	}
	for name, c := range extra {
		out[name] = c
	}
	return out
}

func sortedNames(m map[string]colorutil.RGB) []string {
	out := make([]string, 0, len(m))
	for name := range m {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the RGB value for an exact, lower-case color name.
func Lookup(name string) (colorutil.RGB, bool) {
	c, ok := table[name]
	return c, ok
}

// Has reports whether name is a known keyword.
func Has(name string) bool {
	_, ok := table[name]
	return ok
}

// Names returns every keyword in alphabetical order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Entry pairs a keyword with its value.
type Entry struct {
	Name string        `json:"name"`
	RGB  colorutil.RGB `json:"rgb"`
	Hex  string        `json:"hex"`
}

// Entries returns the full table sorted by name. When prefix is non-empty only
// names starting with it (case-insensitive) are returned.
func Entries(prefix string) []Entry {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	out := make([]Entry, 0, len(names))
	for _, name := range names {
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			continue
		}
		c := table[name]
		out = append(out, Entry{Name: name, RGB: c, Hex: c.Hex()})
	}
	return out
}
