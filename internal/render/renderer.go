package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer Вывод сцены, окна результата и страницы в HTML/SVG
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer разбирает встроенные шаблоны
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("render").
		Funcs(template.FuncMap{"num": num}).
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Wheel пишет разметку колеса
func (r *Renderer) Wheel(w io.Writer, scene Scene) error {
	return r.tmpl.ExecuteTemplate(w, "wheel", scene)
}

// Announcer пишет окно результата. Закрытое окно даёт пустой вывод.
func (r *Renderer) Announcer(w io.Writer, d Dialog) error {
	return r.tmpl.ExecuteTemplate(w, "announcer", d)
}

// Page пишет всю страницу
func (r *Renderer) Page(w io.Writer, p Page) error {
	return r.tmpl.ExecuteTemplate(w, "page", p)
}
