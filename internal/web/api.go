package web

import (
	"encoding/json"
	"net/http"

	"github.com/phyten/contrastx/internal/colornames"
	"github.com/phyten/contrastx/internal/colorparse"
	"github.com/phyten/contrastx/internal/engine"
	engineopts "github.com/phyten/contrastx/internal/engine/opts"
)

type apiError struct {
	Error string `json:"error"`
}

// CheckHandler serves GET /api/check?fg=&bg=&criteria=&suggest=&min_ratio=.
// Unparsable colors are not an HTTP error: they come back as a 200 result
// with field errors and unset checks. Invalid options yield 400.
func CheckHandler(def engine.Options) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !allowRead(w, r) {
			return
		}
		o, err := engineopts.ApplyWebQuery(def, r.URL.Query())
		if err != nil {
			writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
			return
		}
		if err := engineopts.NormalizeAndValidate(&o); err != nil {
			writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
			return
		}
		res, err := engine.Run(o)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, res)
	})
}

type previewColor struct {
	Input  string `json:"input"`
	Format string `json:"format,omitempty"`
	Hex    string `json:"hex,omitempty"`
}

type previewResult struct {
	Foreground previewColor `json:"foreground"`
	Background previewColor `json:"background"`
}

// PreviewHandler serves GET /api/preview?fg=&bg= for the swatches while the
// user types. It only parses: no ratio, no checks. Format is the syntax the
// input looks like even when its numbers are out of range; Hex is set only
// for colors that parse.
func PreviewHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !allowRead(w, r) {
			return
		}
		q := r.URL.Query()
		writeJSON(w, http.StatusOK, previewResult{
			Foreground: preview(q.Get("fg")),
			Background: preview(q.Get("bg")),
		})
	})
}

func preview(input string) previewColor {
	out := previewColor{Input: input, Format: string(colorparse.Detect(input))}
	if rgb, err := colorparse.Parse(input); err == nil {
		out.Hex = rgb.Hex()
	}
	return out
}

// NamesHandler serves GET /api/names?prefix= with the named color table.
func NamesHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !allowRead(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, colornames.Entries(r.URL.Query().Get("prefix")))
	})
}

func allowRead(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	writeJSON(w, http.StatusMethodNotAllowed, apiError{Error: "method not allowed"})
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	setSecurityHeaders(w)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
