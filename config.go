package folio

import (
	"time"

	"github.com/folio-sh/folio/gateway"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string `koanf:"name"`        // Site name (default "Portfolio")
	URL         string `koanf:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `koanf:"description"` // Site description for RSS and meta tags
	Author      string `koanf:"author"`      // Author name shown in feeds

	Addr string `koanf:"addr"` // Listen address (default ":3000")

	// Content store. When DocumentURL is set the aggregate lives at a hosted
	// JSON document endpoint; otherwise it is kept in the local SQLite store
	// at DatabasePath.
	DocumentURL  string `koanf:"document_url"`
	DatabasePath string `koanf:"database_path"` // SQLite path (default "data/folio.db")

	AdminUser           string `koanf:"admin_user"`            // Required: admin login username
	AdminPasswordSHA256 string `koanf:"admin_password_sha256"` // Required: hex SHA-256 of the admin password
	SessionSecret       string `koanf:"session_secret"`        // Required: session encryption secret
	CookieSecure        bool   `koanf:"cookie_secure"`         // Set true for HTTPS

	// External widget endpoints. Empty disables the widget.
	ChatWebhookURL string `koanf:"chat_webhook_url"` // Chat assistant webhook
	ContactFormURL string `koanf:"contact_form_url"` // Contact form relay endpoint
	ChatGreeting   string `koanf:"chat_greeting"`    // First message shown by the chat widget

	SaveDebounce time.Duration `koanf:"save_debounce"` // Quiet period before a content write (default 1s)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/folio.db"
	}
	if c.SaveDebounce == 0 {
		c.SaveDebounce = time.Second
	}
	if c.ChatGreeting == "" {
		c.ChatGreeting = "Hello! How can I help you today?"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
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

// WithGateway overrides the content gateway chosen from the config. Mainly
// useful for tests and custom backings.
func WithGateway(g gateway.Gateway) Option {
	return func(a *App) {
		a.gateway = g
	}
}
