package folio

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// notice is the JSON body of API responses that carry a notification.
type notice struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// jsonNotice writes data with the localized notification for key.
func (a *App) jsonNotice(c echo.Context, code int, key string, data any) error {
	return c.JSON(code, notice{Message: Message(a.currentLang(c), key), Data: data})
}

// jsonError writes {"error": ...} with the localized notification for key.
func (a *App) jsonError(c echo.Context, code int, key string) error {
	return c.JSON(code, notice{Error: Message(a.currentLang(c), key)})
}
