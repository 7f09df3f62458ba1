// Package views holds the default templ components for folio and the data
// types the framework passes into user-provided templates.
package views

import "github.com/folio-sh/folio/content"

// Site holds site-wide settings every page template receives, so nothing is
// hardcoded in the markup.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// HomeData feeds the public single-page portfolio.
type HomeData struct {
	Site      Site
	Content   *content.Aggregate
	ActiveTag string   // current project tag filter, "" for all
	Tags      []string // all project tags for the filter bar
	Theme     string   // "light" or "dark"
	CSRF      string
}

// PostData feeds the single blog post page.
type PostData struct {
	Site  Site
	Post  content.Post
	Theme string
}

// LoginData feeds the admin login screen.
type LoginData struct {
	Site  Site
	Error string // non-empty after a failed attempt
	CSRF  string
}

// DashboardData feeds the admin editing surface.
type DashboardData struct {
	Site    Site
	Content *content.Aggregate
	Message string
	CSRF    string
}
