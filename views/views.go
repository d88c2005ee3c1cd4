// Package views renders the portfolio page and the error pages.
package views

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"label":      label,
	"excerpt":    Excerpt,
	"paragraphs": Paragraphs,
	"menu":       Menu,
	"otherLang":  OtherLang,
	"dir":        TextDir,
}).ParseFS(templateFS, "templates/*.html"))

func component(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return pages.ExecuteTemplate(w, name, data)
	})
}

// Home renders the portfolio page.
func Home(page Page) templ.Component {
	return component("home.html", page)
}

type errorPage struct {
	Lang    string
	Code    int
	Title   string
	Message string
}

// NotFound renders the 404 page.
func NotFound(lang string) templ.Component {
	return component("error.html", errorPage{
		Lang:    lang,
		Code:    404,
		Title:   label(lang, "الصفحة غير موجودة", "Page not found"),
		Message: label(lang, "الصفحة التي تبحث عنها غير موجودة.", "The page you are looking for does not exist."),
	})
}

// ServerError renders the 500 page.
func ServerError(lang string) templ.Component {
	return component("error.html", errorPage{
		Lang:    lang,
		Code:    500,
		Title:   label(lang, "حدث خطأ", "Something went wrong"),
		Message: label(lang, "حدث خطأ أثناء تحميل الموقع", "Error loading the website"),
	})
}
