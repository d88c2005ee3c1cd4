package folio

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/folio/views"
)

func (a *App) handleHome(c echo.Context) error {
	lang := a.currentLang(c)
	if q := c.QueryParam("lang"); validLang(q) && q != lang {
		if err := savePref(c, "lang", q); err != nil {
			return err
		}
		lang = q
	}
	return Render(c, a.Views.Home(a.page(c, lang)))
}

func (a *App) page(c echo.Context, lang string) views.Page {
	_, hasImage := a.Content.ProfileImage()
	return views.Page{
		Lang:        lang,
		Theme:       currentTheme(c),
		Text:        a.Content.Content().Lang(lang),
		Skills:      a.Content.Skills(),
		Experiences: a.Content.Experiences(),
		Posts:       a.Content.BlogPosts(),
		HasImage:    hasImage,
		EditMode:    a.Content.EditMode(),
		Persistent:  a.Content.Persistent(),
		CSRFToken:   CsrfToken(c),
		SiteURL:     a.Config.URL,
	}
}

func (a *App) handleToggleLang(c echo.Context) error {
	if err := savePref(c, "lang", otherLang(a.currentLang(c))); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) handleToggleTheme(c echo.Context) error {
	next, key := ThemeDark, MsgDarkMode
	if currentTheme(c) == ThemeDark {
		next, key = ThemeLight, MsgLightMode
	}
	if err := savePref(c, "theme", next); err != nil {
		return err
	}
	if wantsJSON(c) {
		return a.jsonNotice(c, http.StatusOK, key, map[string]string{"theme": next})
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// handleProfileImage serves the stored data URI as a plain image response.
func (a *App) handleProfileImage(c echo.Context) error {
	data, ok := a.Content.ProfileImage()
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	mime, raw, err := decodeDataURI(data)
	if err != nil {
		a.Logger.Warn("stored profile image unreadable", zap.Error(err))
		return echo.NewHTTPError(http.StatusNotFound)
	}
	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.Blob(http.StatusOK, mime, raw)
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c)
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Content.BlogPosts())
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	lang := a.currentLang(c)
	api := strings.HasPrefix(c.Request().URL.Path, "/api/")

	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound && !api {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(lang))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error", zap.String("path", c.Request().URL.Path), zap.Error(err))
		if api {
			_ = c.JSON(code, notice{Error: Message(lang, MsgLoadFailed)})
			return
		}
		_ = RenderStatus(c, code, a.Views.ServerError(lang))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

// decodeDataURI splits a base64 data URI into its media type and payload.
func decodeDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, errors.New("not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, errors.New("data URI without payload")
	}
	mime, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return "", nil, errors.New("data URI is not base64")
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return mime, raw, nil
}
