package folio

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base string
		segs []string
		want string
	}{
		{"https://example.com", nil, "https://example.com"},
		{"https://example.com", []string{"feed.xml"}, "https://example.com/feed.xml/"},
		{"https://example.com/site/", []string{"a", "b"}, "https://example.com/site/a/b/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BuildURL(tt.base, tt.segs...))
	}
	assert.Equal(t, "https://example.com?lang=en", langURL("https://example.com", "en"))
}

func TestNegotiateLang(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", "ar"},
		{"en-US,en;q=0.9", "en"},
		{"ar-EG", "ar"},
		{"fr-FR,en;q=0.5", "en"},
		{"de-DE", "ar"},
		{"!!garbage", "ar"},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, negotiateLang(tt.header, "ar"))
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Error saving skills!", Message("en", MsgSkillsSaveFailed))
	assert.Equal(t, "حدث خطأ في حفظ المهارات!", Message("ar", MsgSkillsSaveFailed))
	assert.Equal(t, "حدث خطأ في حفظ المهارات!", Message("fr", MsgSkillsSaveFailed))
	assert.Equal(t, "unknown_key", Message("en", "unknown_key"))
	for key, m := range messages {
		assert.NotEmpty(t, m[0], key)
		assert.NotEmpty(t, m[1], key)
	}
}

func TestDecodeDataURI(t *testing.T) {
	mime, raw, err := decodeDataURI("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, []byte("hello"), raw)

	for _, bad := range []string{"hello", "data:image/png;base64", "data:image/png,hello", "data:image/png;base64,***"} {
		_, _, err := decodeDataURI(bad)
		assert.Error(t, err, bad)
	}
}

func TestProcessImageKeepsSmallImages(t *testing.T) {
	uri, err := processImage(bytes.NewReader(pngFixture(t, 120, 80)))
	require.NoError(t, err)
	mime, raw, err := decodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime)
	assert.NotEmpty(t, raw)

	_, err = processImage(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestContactFormValidate(t *testing.T) {
	assert.Empty(t, contactForm{Name: "Sara", Email: "sara@example.com", Message: "Hi"}.validate())

	errs := contactForm{Name: "Sara", Email: "sara @example.com", Message: "Hi"}.validate()
	assert.Equal(t, map[string]string{"email": MsgEmailInvalid}, errs)

	errs = contactForm{Email: "sara@example"}.validate()
	assert.Len(t, errs, 3)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("FOLIO_SESSION_SECRET", "s3cret")
	t.Setenv("FOLIO_ADDR", ":8080")
	t.Setenv("FOLIO_CONTACT_WINDOW", "30s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 5, cfg.ContactLimit)
	assert.Equal(t, 30*time.Second, cfg.ContactWindow)
}

func TestLoadConfigDefaultsToLoopback(t *testing.T) {
	t.Setenv("FOLIO_ADDR", "")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	cfg.setDefaults()
	assert.Equal(t, "127.0.0.1:3000", cfg.Addr)
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("FOLIO_CONTACT_WINDOW", "soon")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := NewLogger(SiteConfig{LogLevel: "loud"})
	assert.Error(t, err)

	l, err := NewLogger(SiteConfig{LogLevel: "debug", Dev: true})
	require.NoError(t, err)
	assert.NotNil(t, l)
}
