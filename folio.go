// Package folio is a single-user personal portfolio site built with Go, Echo,
// and templ. It keeps the editable profile text, skills, experience
// timeline, blog posts and profile image in a local database and lets the
// owner edit them in place while edit mode is on.
//
// Rendering is delegated to the ViewFuncs struct so the page can be
// replaced without touching handler logic.
package folio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/storage"
	"github.com/eringen/folio/views"
)

// ViewFuncs holds the components the handlers render.
type ViewFuncs struct {
	Home        func(page views.Page) templ.Component
	NotFound    func(lang string) templ.Component
	ServerError func(lang string) templ.Component
}

// DefaultViews renders with the components shipped in package views.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:        views.Home,
		NotFound:    views.NotFound,
		ServerError: views.ServerError,
	}
}

// App is the composition root: it owns the database handle, the content
// store, the HTTP server and the views for the lifetime of the process.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	DB      *storage.DB // nil when running without persistent storage
	Content *content.Store
	Views   ViewFuncs
	Logger  *zap.Logger

	contactLimiter *RateLimiter
	customRoutes   []func(*App)
	staticDir      string
}

// New creates a folio App with the given configuration and view functions.
func New(cfg SiteConfig, vf ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     vf,
		staticDir: "public",
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}
	if a.Logger == nil {
		a.Logger = zap.NewNop()
	}
	return a
}

// Init opens storage, loads the content mirror and registers middleware and
// routes. A storage failure is not fatal: the site then runs on in-memory
// defaults and edits last until the process exits.
func (a *App) Init(ctx context.Context) error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("folio: SessionSecret is required")
	}

	db, err := storage.Open(ctx, storage.Options{
		Dir:     a.Config.DataDir,
		Version: a.Config.SchemaVersion,
		Logger:  a.Logger.Named("storage"),
	})
	if err != nil {
		a.Logger.Warn("persistent storage unavailable, running in-memory", zap.Error(err))
		a.Content = content.New(nil, a.Logger)
	} else {
		a.DB = db
		a.Content = content.New(db, a.Logger)
	}
	if err := a.Content.LoadAll(ctx); err != nil {
		a.Logger.Warn("content not loaded from storage", zap.Error(err))
	}

	a.contactLimiter = NewRateLimiter(a.Config.ContactLimit, a.Config.ContactWindow)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Init(context.Background()); err != nil {
		return err
	}
	a.Logger.Info("listening", zap.String("addr", a.Config.Addr), zap.Bool("persistent", a.Content.Persistent()))
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Page script and styles shipped with the binary.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/folio.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/folio.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	// User's static assets (CV download, icons).
	e.Static("/public", a.staticDir)

	// Public routes
	e.GET("/", a.handleHome)
	e.POST("/lang/", a.handleToggleLang)
	e.POST("/theme/", a.handleToggleTheme)
	e.POST("/contact/", a.handleContact)
	e.GET("/profile-image", a.handleProfileImage)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/sitemap.xml", a.handleSitemap)

	a.registerAPI(e.Group("/api"))
}

// Close releases the contact limiter and the database handle.
func (a *App) Close() error {
	if a.contactLimiter != nil {
		a.contactLimiter.Stop()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
