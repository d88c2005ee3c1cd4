package folio

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
)

// SiteConfig holds all configuration for a folio site. LoadConfig fills it
// from FOLIO_* environment variables; zero values are defaulted by New.
type SiteConfig struct {
	URL    string `env:"SITE_URL" envDefault:"http://localhost:3000"` // Canonical URL
	Author string `env:"SITE_AUTHOR"`                                 // Author name for the feed

	// Loopback by default: edit mode has no login, so anyone who can reach
	// Addr can change the content.
	Addr          string `env:"ADDR" envDefault:"127.0.0.1:3000"`
	DataDir       string `env:"DATA_DIR" envDefault:"data"` // Directory holding the database
	SchemaVersion int64  `env:"SCHEMA_VERSION"`             // 0 means storage.SchemaVersion

	SessionSecret string `env:"SESSION_SECRET"` // Required: preference cookie secret
	CookieSecure  bool   `env:"COOKIE_SECURE"`  // Set true for HTTPS

	DefaultLang   string        `env:"DEFAULT_LANG" envDefault:"ar"`
	ContactLimit  int           `env:"CONTACT_LIMIT" envDefault:"5"` // contact submissions per window per IP
	ContactWindow time.Duration `env:"CONTACT_WINDOW" envDefault:"1m"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Dev      bool   `env:"DEV"` // human-readable logs
}

// LoadConfig reads a SiteConfig from the environment.
func LoadConfig() (SiteConfig, error) {
	var cfg SiteConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "FOLIO_"}); err != nil {
		return SiteConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *SiteConfig) setDefaults() {
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = "127.0.0.1:3000"
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.DefaultLang == "" {
		c.DefaultLang = "ar"
	}
	if c.ContactLimit == 0 {
		c.ContactLimit = 5
	}
	if c.ContactWindow == 0 {
		c.ContactWindow = time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithLogger replaces the logger built from the config.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}
