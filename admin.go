package folio

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/folio-sh/folio/content"
	"github.com/folio-sh/folio/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return a.renderLogin(c, "")
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Check(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	flag := &sessionFlag{sess: sess}
	state := NewViewState(a.verifier, flag, AdminFragment)
	state.RequestLogin()

	if !state.Login(c.FormValue("username"), c.FormValue("password")) {
		a.loginLimiter.Record(c.RealIP())
		return a.renderLogin(c, state.LoginError())
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminLogout(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	flag := &sessionFlag{sess: sess}
	state := NewViewState(a.verifier, flag, AdminFragment)
	state.Logout()
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) handleProfileSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	profile := content.Profile{
		Name:            strings.TrimSpace(c.FormValue("name")),
		FullName:        strings.TrimSpace(c.FormValue("fullName")),
		Title:           strings.TrimSpace(c.FormValue("title")),
		Bio:             strings.TrimSpace(c.FormValue("bio")),
		Email:           strings.TrimSpace(c.FormValue("email")),
		LinkedIn:        strings.TrimSpace(c.FormValue("linkedin")),
		GitHub:          strings.TrimSpace(c.FormValue("github")),
		ProfileImageURL: strings.TrimSpace(c.FormValue("profileImageUrl")),
		ResumeURL:       strings.TrimSpace(c.FormValue("resumeUrl")),
	}
	if profile.Name == "" || profile.Title == "" || profile.Email == "" {
		return a.adminRedirect(c, "Name, title, and email are required.")
	}
	a.Controller.Apply(SetProfile{Profile: profile})
	return a.adminRedirect(c, "Profile saved.")
}

func (a *App) handleSkillAdd(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if !a.Controller.Apply(AddSkill{
		Name:     c.FormValue("name"),
		Category: c.FormValue("category"),
	}) {
		return a.adminRedirect(c, "Skill not added: empty or duplicate name.")
	}
	return a.adminRedirect(c, "Skill added.")
}

func (a *App) handleSkillDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	name, err := url.PathUnescape(c.Param("name"))
	if err != nil {
		name = c.Param("name")
	}
	a.Controller.Apply(DeleteSkill{Name: name})
	return a.adminRedirect(c, "Skill deleted.")
}

func (a *App) handleProjectSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	project := content.Project{
		Title:            strings.TrimSpace(c.FormValue("title")),
		ShortDescription: strings.TrimSpace(c.FormValue("shortDescription")),
		ImageURL:         strings.TrimSpace(c.FormValue("imageUrl")),
		Tech:             content.SplitList(c.FormValue("tech")),
		Tags:             content.SplitList(c.FormValue("tags")),
	}
	if project.Title == "" {
		return a.adminRedirect(c, "Project title is required.")
	}
	if raw := strings.TrimSpace(c.FormValue("id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return a.adminRedirect(c, "Invalid project id.")
		}
		project.ID = id
		if !a.Controller.Apply(UpdateProject{Project: project}) {
			return a.adminRedirect(c, "No project with that id.")
		}
		return a.adminRedirect(c, "Project updated.")
	}
	a.Controller.Apply(AddProject{Project: project})
	return a.adminRedirect(c, "Project added.")
}

func (a *App) handleProjectDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return a.adminRedirect(c, "Invalid project id.")
	}
	a.Controller.Apply(DeleteProject{ID: id})
	return a.adminRedirect(c, "Project deleted.")
}

func (a *App) handleTimelineSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	itemType := content.TimelineType(c.FormValue("type"))
	switch itemType {
	case content.TimelineWork, content.TimelineEducation, content.TimelineCertification:
	default:
		return a.adminRedirect(c, "Invalid timeline type.")
	}
	item := content.TimelineItem{
		Type:         itemType,
		Title:        strings.TrimSpace(c.FormValue("title")),
		Organization: strings.TrimSpace(c.FormValue("organization")),
		Date:         strings.TrimSpace(c.FormValue("date")),
		Description:  strings.TrimSpace(c.FormValue("description")),
	}
	if item.Title == "" || item.Organization == "" {
		return a.adminRedirect(c, "Timeline title and organization are required.")
	}
	if raw := strings.TrimSpace(c.FormValue("id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return a.adminRedirect(c, "Invalid timeline id.")
		}
		item.ID = id
		if !a.Controller.Apply(UpdateTimelineItem{Item: item}) {
			return a.adminRedirect(c, "No timeline entry with that id.")
		}
		return a.adminRedirect(c, "Timeline entry updated.")
	}
	a.Controller.Apply(AddTimelineItem{Item: item})
	return a.adminRedirect(c, "Timeline entry added.")
}

func (a *App) handleTimelineDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return a.adminRedirect(c, "Invalid timeline id.")
	}
	a.Controller.Apply(DeleteTimelineItem{ID: id})
	return a.adminRedirect(c, "Timeline entry deleted.")
}

func (a *App) handlePostSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	post := content.Post{
		Slug:    strings.TrimSpace(c.FormValue("slug")),
		Title:   strings.TrimSpace(c.FormValue("title")),
		Date:    strings.TrimSpace(c.FormValue("date")),
		Excerpt: strings.TrimSpace(c.FormValue("excerpt")),
		Content: c.FormValue("content"),
	}
	if post.Title == "" {
		return a.adminRedirect(c, "Post title is required.")
	}
	if post.Date == "" {
		post.Date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", post.Date); err != nil {
		return a.adminRedirect(c, "Invalid date format. Use YYYY-MM-DD.")
	}
	if post.Slug != "" {
		if !a.Controller.Apply(UpdatePost{Post: post}) {
			return a.adminRedirect(c, "No post with that slug.")
		}
		return a.adminRedirect(c, "Post updated.")
	}
	a.Controller.Apply(AddPost{Post: post})
	return a.adminRedirect(c, "Post added.")
}

func (a *App) handlePostDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.Controller.Apply(DeletePost{Slug: c.Param("slug")})
	return a.adminRedirect(c, "Post deleted.")
}

func (a *App) adminRedirect(c echo.Context, msg string) error {
	return c.Redirect(http.StatusSeeOther, "/admin/?msg="+url.QueryEscape(msg))
}

func (a *App) renderLogin(c echo.Context, errMsg string) error {
	return Render(c, a.Views.AdminLogin(views.LoginData{
		Site:  a.site(),
		Error: errMsg,
		CSRF:  CsrfToken(c),
	}))
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	return Render(c, a.Views.AdminDashboard(views.DashboardData{
		Site:    a.site(),
		Content: a.Controller.Snapshot(),
		Message: msg,
		CSRF:    CsrfToken(c),
	}))
}
