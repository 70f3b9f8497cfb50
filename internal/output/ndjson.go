package output

import (
	"encoding/json"
	"io"

	"github.com/phyten/contrastx/internal/engine"
)

// WriteNDJSON streams results as newline-delimited JSON objects.
func WriteNDJSON(w io.Writer, results []*engine.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes indented JSON. A single check is written as an
// object and a batch as an array.
func WriteJSON(w io.Writer, results []*engine.Result, single bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if single && len(results) == 1 {
		return enc.Encode(results[0])
	}
	if results == nil {
		results = []*engine.Result{}
	}
	return enc.Encode(results)
}
