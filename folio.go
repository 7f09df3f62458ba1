// Package folio is a single-owner portfolio and blog engine built with Go,
// Echo, and templ. The public site (profile, skills, projects, career
// timeline, blog) and a password-gated admin panel render the same content
// aggregate, which a sync controller keeps consistent with a remote JSON
// document store or a local SQLite store.
//
// Users provide their own templ components via the ViewFuncs struct, and
// folio handles handler logic, middleware, content state, and persistence.
package folio

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/folio-sh/folio/gateway"
	"github.com/folio-sh/folio/views"
)

// ViewFuncs holds user-provided templ components that the framework calls
// when rendering pages. This is the inversion-of-control mechanism that lets
// users own and customize all templates. DefaultViews supplies a working set
// out of the box.
type ViewFuncs struct {
	Home           func(d views.HomeData) templ.Component
	Post           func(d views.PostData) templ.Component
	AdminLogin     func(d views.LoginData) templ.Component
	AdminDashboard func(d views.DashboardData) templ.Component
	NotFound       func() templ.Component
	ServerError    func() templ.Component
}

// DefaultViews returns the built-in templ components from the views package.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:           views.Home,
		Post:           views.Post,
		AdminLogin:     views.AdminLogin,
		AdminDashboard: views.AdminDashboard,
		NotFound:       views.NotFound,
		ServerError:    views.ServerError,
	}
}

// App is the central folio application. It wires together the content
// controller, gateway, handlers, middleware, and user-provided templates.
type App struct {
	Config     SiteConfig
	Echo       *echo.Echo
	Controller *Controller
	Views      ViewFuncs

	gateway      gateway.Gateway
	local        *gateway.LocalGateway
	verifier     CredentialVerifier
	loginLimiter *LoginLimiter
	chat         *ChatRelay
	contact      *ContactRelay
	customRoutes []func(*App)
	staticDir    string
}

// New creates a new folio App with the given configuration and view functions.
func New(cfg SiteConfig, v ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     v,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start loads the content aggregate, sets up middleware and routes, and
// starts the server. It blocks until the server stops.
func (a *App) Start() error {
	if err := a.init(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// init wires everything short of listening. Split out so tests can exercise
// the full app without a socket.
func (a *App) init() error {
	if a.Config.AdminUser == "" || a.Config.AdminPasswordSHA256 == "" {
		return fmt.Errorf("folio: AdminUser and AdminPasswordSHA256 are required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("folio: SessionSecret is required")
	}

	verifier, err := NewHashedCredentials(a.Config.AdminUser, a.Config.AdminPasswordSHA256)
	if err != nil {
		return err
	}
	a.verifier = verifier

	if a.gateway == nil {
		if a.Config.DocumentURL != "" {
			a.gateway = gateway.NewDocumentGateway(a.Config.DocumentURL, nil)
		} else {
			local, err := gateway.NewLocalGateway(a.Config.DatabasePath)
			if err != nil {
				return fmt.Errorf("folio: init local store: %w", err)
			}
			a.gateway = local
			a.local = local
		}
	}

	a.Controller = NewController(a.gateway, a.Config.SaveDebounce)
	ctx, cancel := context.WithTimeout(context.Background(), gateway.DefaultTimeout)
	defer cancel()
	a.Controller.Load(ctx)

	a.loginLimiter = NewLoginLimiter(5, time.Minute)
	if a.Config.ChatWebhookURL != "" {
		a.chat = NewChatRelay(a.Config.ChatWebhookURL, nil)
	}
	if a.Config.ContactFormURL != "" {
		a.contact = NewContactRelay(a.Config.ContactFormURL, nil)
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// User's static assets
	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	// Public routes
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/blog/:slug/", a.handlePost)
	e.POST("/theme/", a.handleThemeToggle)

	// Widget APIs: independent of the content model.
	if a.chat != nil {
		e.POST("/api/chat", a.handleChat)
		e.GET("/api/chat/ws", a.handleChatSocket)
	}
	if a.contact != nil {
		e.POST("/api/contact", a.handleContact)
	}

	// Admin routes
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", a.handleAdminLogout)

	e.POST("/admin/profile/", a.handleProfileSave)
	e.POST("/admin/skills/", a.handleSkillAdd)
	e.DELETE("/admin/skills/:name/", a.handleSkillDelete)
	e.POST("/admin/projects/", a.handleProjectSave)
	e.DELETE("/admin/projects/:id/", a.handleProjectDelete)
	e.POST("/admin/timeline/", a.handleTimelineSave)
	e.DELETE("/admin/timeline/:id/", a.handleTimelineDelete)
	e.POST("/admin/posts/", a.handlePostSave)
	e.DELETE("/admin/posts/:slug/", a.handlePostDelete)

	e.GET("/admin/images/", a.handleImageList)
	e.POST("/admin/images/upload/", a.handleImageUpload)
	e.DELETE("/admin/images/:filename/", a.handleImageDelete)
}

// Close flushes any pending content write and releases resources. Call this
// when the app is shutting down so no stale debounce timer fires afterwards.
func (a *App) Close() error {
	var err error
	if a.Controller != nil {
		ctx, cancel := context.WithTimeout(context.Background(), gateway.DefaultTimeout)
		defer cancel()
		err = a.Controller.Flush(ctx)
		a.Controller.Close()
	}
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.local != nil {
		a.local.Close()
	}
	return err
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("folio: required environment variable %s is not set", key)
	}
	return v
}
