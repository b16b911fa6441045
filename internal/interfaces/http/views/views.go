// Package views holds the server-rendered public page.
package views

import (
	"embed"
	"html/template"
	"time"

	"portfolio.backend/internal/domain/entities"
)

//go:embed templates/*.html
var files embed.FS

// IndexTemplate is the name of the homepage template
const IndexTemplate = "index.html"

// Flash is a one-shot notice shown after a redirect
type Flash struct {
	Kind    string
	Message string
}

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// IndexData is what index.html renders
type IndexData struct {
	View  *entities.HomepageView
	Flash *Flash
	Year  int
}

func NewIndexData(view *entities.HomepageView, flash *Flash) IndexData {
	return IndexData{View: view, Flash: flash, Year: time.Now().Year()}
}

// Templates parses the embedded templates. mediaURL turns a stored attachment path into a public URL.
func Templates(mediaURL func(key string) string) (*template.Template, error) {
	funcs := template.FuncMap{
		"media": func(key string) string {
			if key == "" {
				return ""
			}
			return mediaURL(key)
		},
		"issued": func(t time.Time) string {
			return t.Format("Jan 2006")
		},
	}
	return template.New(IndexTemplate).Funcs(funcs).ParseFS(files, "templates/*.html")
}
