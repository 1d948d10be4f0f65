package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/page.html
var pageTemplate string

//go:embed static
var staticFS embed.FS

// cssContent and jsContent are the page's stylesheet and script.
var (
	cssContent = mustReadStatic("static/style.css")
	jsContent  = mustReadStatic("static/script.js")
)

func mustReadStatic(name string) []byte {
	data, err := staticFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("site: missing embedded %s: %v", name, err))
	}
	return data
}

// parsePage parses the page template.
func parsePage() (*template.Template, error) {
	tmpl, err := template.New("site").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return tmpl, nil
}

// render executes the page template into a buffer so a failed render never
// produces a partial response.
func render(tmpl *template.Template, data pageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "page", data); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}
	return buf.Bytes(), nil
}
