package folio

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// contactForm is a visitor message. It is logged, not delivered.
type contactForm struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Message string `form:"message" json:"message"`
}

// validate returns the message key of every invalid field, keyed by field.
func (f contactForm) validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = MsgNameRequired
	}
	if email := strings.TrimSpace(f.Email); email == "" || !emailPattern.MatchString(f.Email) {
		errs["email"] = MsgEmailInvalid
	}
	if strings.TrimSpace(f.Message) == "" {
		errs["message"] = MsgMessageRequired
	}
	return errs
}

type contactResponse struct {
	Message string            `json:"message,omitempty"`
	Error   string            `json:"error,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (a *App) handleContact(c echo.Context) error {
	lang := a.currentLang(c)

	if !a.contactLimiter.Allow(c.RealIP()) {
		return c.JSON(http.StatusTooManyRequests, contactResponse{Error: Message(lang, MsgContactRateLimited)})
	}

	var form contactForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, contactResponse{Error: Message(lang, MsgContactFailed)})
	}
	if errs := form.validate(); len(errs) > 0 {
		fields := make(map[string]string, len(errs))
		for field, key := range errs {
			fields[field] = Message(lang, key)
		}
		return c.JSON(http.StatusUnprocessableEntity, contactResponse{
			Error:  Message(lang, MsgContactFailed),
			Fields: fields,
		})
	}

	a.Logger.Info("contact form submitted",
		zap.String("name", strings.TrimSpace(form.Name)),
		zap.String("email", strings.TrimSpace(form.Email)),
		zap.Int("message_len", len(form.Message)),
		zap.String("ip", c.RealIP()),
	)
	return c.JSON(http.StatusOK, contactResponse{Message: Message(lang, MsgContactSent)})
}
