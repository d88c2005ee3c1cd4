package folio

import (
	"encoding/xml"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/views"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid"`
}

// postURL links to a post's anchor on the home page.
func postURL(base string, id int64) string {
	return BuildURL(base) + "#post-" + strconv.FormatInt(id, 10)
}

func (a *App) renderRSS(c echo.Context, posts []content.BlogPost) error {
	base := a.Config.URL
	lang := a.currentLang(c)
	text := a.Content.Content().Lang(lang)

	items := make([]rssItem, 0, len(posts))
	// Newest first.
	for i := len(posts) - 1; i >= 0; i-- {
		p := posts[i]
		pubDate := ""
		if t, err := time.Parse(time.DateOnly, p.Date); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		link := postURL(base, p.ID)
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        link,
			Description: views.Excerpt(p.Content, 280),
			PubDate:     pubDate,
			GUID:        link,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       text.SiteTitle,
			Link:        BuildURL(base),
			Description: text.WelcomeSubtitle,
			Language:    lang,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
