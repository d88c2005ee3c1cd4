package views

import (
	"strings"
	"unicode/utf8"

	"github.com/eringen/folio/content"
)

// TextDir returns "rtl" for Arabic and "ltr" otherwise.
func TextDir(lang string) string {
	if lang == content.LangArabic {
		return "rtl"
	}
	return "ltr"
}

// OtherLang returns the language the toggle switches to.
func OtherLang(lang string) string {
	if lang == content.LangEnglish {
		return content.LangArabic
	}
	return content.LangEnglish
}

// Excerpt shortens s to at most n runes on a word boundary.
func Excerpt(s string, n int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:n])
	if i := strings.LastIndexAny(cut, " \n\t"); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut) + "…"
}

// Paragraphs splits text on blank lines, dropping empty chunks.
func Paragraphs(s string) []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// sectionIDs are the page anchors in menu order.
var sectionIDs = []string{"home", "about", "skills", "experience", "blog", "contact"}

// MenuItem is one navigation link.
type MenuItem struct {
	Label  string
	Anchor string
}

// Menu pairs the localized menu labels with the section anchors.
func Menu(labels []string) []MenuItem {
	items := make([]MenuItem, 0, len(sectionIDs))
	for i, id := range sectionIDs {
		if i >= len(labels) {
			break
		}
		items = append(items, MenuItem{Label: labels[i], Anchor: "#" + id})
	}
	return items
}

// label returns the ar or en variant of a fixed UI string.
func label(lang, ar, en string) string {
	if lang == content.LangEnglish {
		return en
	}
	return ar
}
