package folio

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"

	"github.com/eringen/folio/content"
)

const prefsSession = "folio_prefs"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

var langMatcher = language.NewMatcher([]language.Tag{language.Arabic, language.English})

// negotiateLang picks ar or en from an Accept-Language header, falling back
// to def when the header names neither.
func negotiateLang(header, def string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return def
	}
	_, idx, conf := langMatcher.Match(tags...)
	if conf == language.No {
		return def
	}
	if idx == 1 {
		return content.LangEnglish
	}
	return content.LangArabic
}

func validLang(lang string) bool {
	return lang == content.LangArabic || lang == content.LangEnglish
}

func otherLang(lang string) string {
	if lang == content.LangEnglish {
		return content.LangArabic
	}
	return content.LangEnglish
}

func prefsFromSession(c echo.Context) (*sessions.Session, error) {
	return session.Get(prefsSession, c)
}

// currentLang returns the visitor's language: the session value when set,
// otherwise the Accept-Language negotiation.
func (a *App) currentLang(c echo.Context) string {
	if sess, err := prefsFromSession(c); err == nil {
		if lang, ok := sess.Values["lang"].(string); ok && validLang(lang) {
			return lang
		}
	}
	return negotiateLang(c.Request().Header.Get("Accept-Language"), a.Config.DefaultLang)
}

func currentTheme(c echo.Context) string {
	if sess, err := prefsFromSession(c); err == nil {
		if theme, ok := sess.Values["theme"].(string); ok && theme == ThemeDark {
			return ThemeDark
		}
	}
	return ThemeLight
}

func savePref(c echo.Context, key, value string) error {
	sess, err := prefsFromSession(c)
	if err != nil {
		return err
	}
	sess.Values[key] = value
	return sess.Save(c.Request(), c.Response())
}
