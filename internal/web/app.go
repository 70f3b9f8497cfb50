package web

import (
	_ "embed"
	"html/template"
	"net/http"
	"sync"

	"github.com/phyten/contrastx/internal/engine"
)

const (
	stylesPath  = "/assets/styles.css"
	scriptPath  = "/assets/ui.js"
	checkPath   = "/api/check"
	namesPath   = "/api/names"
	previewPath = "/api/preview"
)

var (
	//go:embed templates/index.html
	indexHTML string
	indexOnce sync.Once
	indexTmpl *template.Template

	//go:embed assets/styles.css
	stylesCSS string

	//go:embed assets/ui.js
	scriptJS string
)

type indexData struct {
	StylesPath  string
	ScriptPath  string
	CheckPath   string
	PreviewPath string
	Foreground  string
	Background  string
}

// Register attaches the page, its assets and the JSON API to mux. def holds
// the server-side defaults (criteria, min ratio) every API request starts from.
func Register(mux *http.ServeMux, def engine.Options) {
	mux.HandleFunc("/", indexHandler)
	mux.HandleFunc(stylesPath, stylesHandler)
	mux.HandleFunc(scriptPath, scriptHandler)
	mux.Handle(checkPath, CheckHandler(def))
	mux.Handle(namesPath, NamesHandler())
	mux.Handle(previewPath, PreviewHandler())
}

// Script returns the embedded UI script.
func Script() string {
	return scriptJS
}

func indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	tmpl := loadTemplate()
	setSecurityHeaders(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Security-Policy", "default-src 'none'; style-src 'self'; script-src 'self'; img-src 'self'; connect-src 'self'; form-action 'self'; base-uri 'none'")
	q := r.URL.Query()
	data := indexData{
		StylesPath:  stylesPath,
		ScriptPath:  scriptPath,
		CheckPath:   checkPath,
		PreviewPath: previewPath,
		Foreground:  q.Get("fg"),
		Background:  q.Get("bg"),
	}
	if err := tmpl.Execute(w, data); err != nil {
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
	}
}

func stylesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write([]byte(stylesCSS))
}

func scriptHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write([]byte(scriptJS))
}

func setSecurityHeaders(w http.ResponseWriter) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Referrer-Policy", "no-referrer")
	w.Header().Set("X-Frame-Options", "DENY")
}

func loadTemplate() *template.Template {
	indexOnce.Do(func() {
		indexTmpl = template.Must(template.New("index").Parse(indexHTML))
	})
	return indexTmpl
}
