package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/William-WYL/portfolio/internal/content"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

var templateFuncs = template.FuncMap{
	"markdown": content.Markdown,
	// stagger is the entrance delay of the i-th child of a section.
	"stagger": func(v content.Variant, i int) string {
		return fmt.Sprintf("%.2fs", v.Delay+float64(i)*v.Stagger)
	},
	"seconds": func(f float64) string {
		return fmt.Sprintf("%.2fs", f)
	},
	"add": func(a, b int) int { return a + b },
}

func mustTemplates() *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFiles, "templates/*.html"))
}

func staticFS() http.FileSystem {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
