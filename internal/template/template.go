package template

import (
	"bytes"
	"io/fs"
	"net/http"
	"time"

	stdtemplate "html/template"

	humanize "github.com/dustin/go-humanize"
)

const viewsPattern = "static/views/*.html"

type Template struct {
	templates *stdtemplate.Template
}

// NewTemplate parses every view under static/views in fsys.
func NewTemplate(fsys fs.FS) (*Template, error) {
	funcMap := stdtemplate.FuncMap{
		"humannumber": func(n int) string {
			return humanize.Comma(int64(n))
		},
		// postedago is empty for unknown dates
		"postedago": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return humanize.Time(*t)
		},
		"isodate": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Format(time.RFC3339)
		},
		"card": func(badge string, job interface{}) map[string]interface{} {
			return map[string]interface{}{
				"Badge": badge,
				"Job":   job,
			}
		},
	}
	tmpl, err := stdtemplate.New("stdtmpl").Funcs(funcMap).ParseFS(fsys, viewsPattern)
	if err != nil {
		return nil, err
	}
	return &Template{templates: tmpl}, nil
}

// Render buffers the output; nothing is written when the template fails.
func (t *Template) Render(w http.ResponseWriter, status int, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := t.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
