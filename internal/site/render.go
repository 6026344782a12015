package site

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/wolfman30/lalalu-site/internal/assets"
	"github.com/wolfman30/lalalu-site/internal/catalog"
)

//go:embed templates/*.html
var templateFS embed.FS

const layout = "templates/base.html"

// renderer holds one template set per page, each layered over the layout.
type renderer struct {
	templates map[string]*template.Template
}

func newRenderer(res assets.Resolver) (*renderer, error) {
	funcs := template.FuncMap{
		"asset": res.URL,
		"price": func(p catalog.Price) string { return "$" + p.String() },
		"add":   func(a, b int) int { return a + b },
		"stars": func(n int) string { return strings.Repeat("★", n) },
		"pillClass": func(c catalog.BadgeColor) string {
			return "pill pill-" + string(c.Resolved())
		},
	}

	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("site: list templates: %w", err)
	}

	r := &renderer{templates: make(map[string]*template.Template, len(names))}
	for _, file := range names {
		if file == layout {
			continue
		}
		name := strings.TrimPrefix(file, "templates/")
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, layout, file)
		if err != nil {
			return nil, fmt.Errorf("site: parse %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}
	return r, nil
}

func (r *renderer) execute(w io.Writer, name string, data any) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("site: unknown template %q", name)
	}
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("site: execute %s: %w", name, err)
	}
	return nil
}
