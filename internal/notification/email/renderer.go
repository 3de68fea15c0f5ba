package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	pkgemail "watchdog/pkg/email"
)

//go:embed templates/*.html
var templateFS embed.FS

const defaultLocale = "en"

// Renderer renders embedded HTML templates named "<template>.<locale>.html".
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"greeting": pkgemail.GreetingName,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Render executes the template for the locale, falling back to English when
// no localized variant exists.
func (r *Renderer) Render(name, locale string, data map[string]any) (string, error) {
	if locale == "" {
		locale = defaultLocale
	}
	t := r.templates.Lookup(fileName(name, locale))
	if t == nil {
		t = r.templates.Lookup(fileName(name, defaultLocale))
	}
	if t == nil {
		return "", fmt.Errorf("email template %q not found", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render email template %q: %w", name, err)
	}
	return buf.String(), nil
}

func fileName(name, locale string) string {
	return strings.TrimSuffix(name, ".html") + "." + locale + ".html"
}
