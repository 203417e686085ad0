package templates

import (
	"embed"
	"html/template"
	"time"
)

//go:embed pages/*.html
var files embed.FS

// Load parses the embedded page templates. Every page is a named
// template sharing the page_top/sidebar/page_bottom partials.
func Load() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"formatDate": formatDate,
	}).ParseFS(files, "pages/*.html")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02.01.2006 15:04")
}
