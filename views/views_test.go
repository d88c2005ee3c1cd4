package views

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/folio/content"
)

func render(t *testing.T, p Page) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Home(p).Render(context.Background(), &buf))
	return buf.String()
}

func TestHomeRendersListsAndEscapes(t *testing.T) {
	c := content.DefaultContent()
	out := render(t, Page{
		Lang:        content.LangEnglish,
		Theme:       "dark",
		Text:        c.Lang(content.LangEnglish),
		Skills:      []content.Skill{{ID: 1, Icon: "fab fa-go", Name: "<Go>"}},
		Experiences: []content.Experience{{ID: 2, Period: "2020", Title: "Engineer", Company: "Acme"}},
		Posts:       []content.BlogPost{{ID: 3, Date: "2024-01-01", Title: "Post", Content: "First.\n\nSecond."}},
		EditMode:    true,
		Persistent:  true,
		CSRFToken:   "tok",
	})

	assert.Contains(t, out, `dir="ltr"`)
	assert.Contains(t, out, `data-theme="dark"`)
	assert.Contains(t, out, `class="edit-mode"`)
	assert.Contains(t, out, "&lt;Go&gt;")
	assert.NotContains(t, out, "<Go>")
	assert.Contains(t, out, `id="post-3"`)
	assert.Contains(t, out, "<p>Second.</p>")
	assert.Contains(t, out, `content="tok"`)
	assert.Contains(t, out, `href="#contact"`)
	assert.NotContains(t, out, `class="banner"`)
}

func TestErrorPages(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NotFound("ar").Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), "الصفحة غير موجودة")
	assert.Contains(t, buf.String(), `dir="rtl"`)

	buf.Reset()
	require.NoError(t, ServerError("en").Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), "Something went wrong")
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", Excerpt("  short ", 10))
	assert.Equal(t, "hello…", Excerpt("hello wonderful world", 12))
	assert.Equal(t, "مرحبا…", Excerpt("مرحبا بالعالم الجميل", 10))
}

func TestParagraphsAndMenu(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Paragraphs("a\r\n\r\n\n\nb\n\n"))
	assert.Nil(t, Paragraphs("   "))

	items := Menu([]string{"Home", "About"})
	require.Len(t, items, 2)
	assert.Equal(t, MenuItem{Label: "About", Anchor: "#about"}, items[1])
}
