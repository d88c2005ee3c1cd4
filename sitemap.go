package folio

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// renderSitemap lists the home page once per language. The newest post date
// that parses as YYYY-MM-DD is the last modification.
func (a *App) renderSitemap(c echo.Context) error {
	base := a.Config.URL
	var newest time.Time
	for _, p := range a.Content.BlogPosts() {
		if t, err := time.Parse(time.DateOnly, p.Date); err == nil && t.After(newest) {
			newest = t
		}
	}
	lastMod := ""
	if !newest.IsZero() {
		lastMod = newest.Format(time.DateOnly)
	}
	urls := make([]sitemapURL, 0, len(content.Languages))
	for _, lang := range content.Languages {
		urls = append(urls, sitemapURL{Loc: langURL(base, lang), LastMod: lastMod})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
