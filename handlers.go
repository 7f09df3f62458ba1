package folio

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/folio-sh/folio/gateway"
	"github.com/folio-sh/folio/views"
)

const themeCookie = "theme"

func (a *App) site() views.Site {
	return views.Site{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
	}
}

func (a *App) handleHome(c echo.Context) error {
	agg := a.Controller.Snapshot()
	return Render(c, a.Views.Home(views.HomeData{
		Site:      a.site(),
		Content:   agg,
		ActiveTag: c.QueryParam("tag"),
		Tags:      agg.ProjectTags(),
		Theme:     a.theme(c),
		CSRF:      CsrfToken(c),
	}))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, ok := a.Controller.Snapshot().FindPost(slug)
	if !ok {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
	}
	return Render(c, a.Views.Post(views.PostData{
		Site:  a.site(),
		Post:  post,
		Theme: a.theme(c),
	}))
}

// theme reads the visitor's theme preference, preferring the cookie and
// falling back to the persisted value in the local store. Anything but
// "dark" means light.
func (a *App) theme(c echo.Context) string {
	if cookie, err := c.Cookie(themeCookie); err == nil && cookie.Value == "dark" {
		return "dark"
	}
	if a.local != nil {
		if v, err := a.local.GetValue(c.Request().Context(), gateway.KeyTheme); err == nil && v == "dark" {
			return "dark"
		}
	}
	return "light"
}

func (a *App) handleThemeToggle(c echo.Context) error {
	next := "dark"
	if a.theme(c) == "dark" {
		next = "light"
	}
	c.SetCookie(&http.Cookie{
		Name:     themeCookie,
		Value:    next,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	})
	if a.local != nil {
		if err := a.local.SetValue(c.Request().Context(), gateway.KeyTheme, next); err != nil {
			c.Logger().Warnf("could not persist theme: %v", err)
		}
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Controller.Snapshot().Posts)
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Controller.Snapshot().Posts)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.staticDir + "/robots.txt")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
