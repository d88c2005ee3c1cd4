package views

import "github.com/eringen/folio/content"

// Page is everything the portfolio page needs for one request.
type Page struct {
	Lang  string // "ar" or "en"
	Theme string // "light" or "dark"

	Text        *content.LangContent
	Skills      []content.Skill
	Experiences []content.Experience
	Posts       []content.BlogPost

	HasImage   bool
	EditMode   bool
	Persistent bool // false when edits only last for this process

	CSRFToken string
	SiteURL   string
}

// Dir returns the text direction for the page language.
func (p Page) Dir() string {
	return TextDir(p.Lang)
}
