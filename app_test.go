package folio

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/folio-sh/folio/content"
)

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	cfg := SiteConfig{
		Name:                "Test Site",
		URL:                 "http://example.com",
		DatabasePath:        filepath.Join(t.TempDir(), "folio.db"),
		AdminUser:           "admin",
		AdminPasswordSHA256: HashPassword("s3cret"),
		SessionSecret:       "test-session-secret",
		SaveDebounce:        10 * time.Millisecond,
	}
	a := New(cfg, DefaultViews(), opts...)
	if err := a.init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

// browser carries cookies between requests the way a real client would.
type browser struct {
	app     *App
	cookies map[string]*http.Cookie
}

func newBrowser(a *App) *browser {
	return &browser{app: a, cookies: make(map[string]*http.Cookie)}
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	if form != nil {
		return b.doBody(method, path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	}
	return b.doBody(method, path, "", nil)
}

func (b *browser) doBody(method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set(echoHeaderContentType, contentType)
	}
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	if c, ok := b.cookies["_csrf"]; ok {
		req.Header.Set("X-CSRF-Token", c.Value)
	}
	rec := httptest.NewRecorder()
	b.app.Echo.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return rec
}

const echoHeaderContentType = "Content-Type"

func (b *browser) login(t *testing.T, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	// Prime session and CSRF cookies.
	b.do(http.MethodGet, "/admin/", nil)
	return b.do(http.MethodPost, "/admin/login/", url.Values{
		"username": {username},
		"password": {password},
	})
}

func TestHomePageShowsDefaultContent(t *testing.T) {
	a := newTestApp(t)
	b := newBrowser(a)

	rec := b.do(http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	defaults := content.Defaults()
	if !strings.Contains(body, defaults.Profile.Name) {
		t.Errorf("home page missing profile name %q", defaults.Profile.Name)
	}
	if !strings.Contains(body, defaults.Projects[0].Title) {
		t.Errorf("home page missing project %q", defaults.Projects[0].Title)
	}
}

func TestBlogPostPage(t *testing.T) {
	a := newTestApp(t)
	b := newBrowser(a)

	post := content.Defaults().Posts[0]
	rec := b.do(http.MethodGet, "/blog/"+post.Slug+"/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET post = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), post.Title) {
		t.Errorf("post page missing title %q", post.Title)
	}

	rec = b.do(http.MethodGet, "/blog/no-such-post/", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET unknown post = %d, want 404", rec.Code)
	}
}

func TestAdminRequiresLogin(t *testing.T) {
	a := newTestApp(t)
	b := newBrowser(a)

	rec := b.do(http.MethodGet, "/admin/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /admin/ = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Admin Login") {
		t.Error("expected the login screen for an unauthenticated visitor")
	}
}

func TestLoginLogoutFlow(t *testing.T) {
	a := newTestApp(t)
	b := newBrowser(a)

	rec := b.login(t, "admin", "wrong")
	if rec.Code != http.StatusOK {
		t.Fatalf("failed login = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid username or password.") {
		t.Error("failed login should show the error message")
	}

	rec = b.login(t, "admin", "s3cret")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("successful login = %d, want 303", rec.Code)
	}

	rec = b.do(http.MethodGet, "/admin/", nil)
	if !strings.Contains(rec.Body.String(), "Dashboard") {
		t.Error("expected the dashboard after login")
	}

	rec = b.do(http.MethodPost, "/admin/logout/", url.Values{})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("logout = %d, want 303", rec.Code)
	}
	rec = b.do(http.MethodGet, "/admin/", nil)
	if !strings.Contains(rec.Body.String(), "Admin Login") {
		t.Error("expected the login screen after logout")
	}
}

func TestLoginRateLimit(t *testing.T) {
	a := newTestApp(t)
	b := newBrowser(a)

	for i := 0; i < 5; i++ {
		b.login(t, "admin", "wrong")
	}
	rec := b.login(t, "admin", "s3cret")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("login after 5 failures = %d, want 429", rec.Code)
	}
}

func TestProjectFormSplitsCommaLists(t *testing.T) {
	a := newTestApp(t)
	b := newBrowser(a)
	b.login(t, "admin", "s3cret")

	rec := b.do(http.MethodPost, "/admin/projects/", url.Values{
		"title":            {"Edge Cache"},
		"shortDescription": {"A cache at the edge"},
		"tech":             {"Go, Echo , templ"},
		"tags":             {"Web,Infrastructure"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("project save = %d, want 303", rec.Code)
	}

	projects := a.Controller.Snapshot().Projects
	added := projects[len(projects)-1]
	if added.Title != "Edge Cache" {
		t.Fatalf("added project title = %q", added.Title)
	}
	wantTech := []string{"Go", "Echo", "templ"}
	if len(added.Tech) != len(wantTech) {
		t.Fatalf("tech = %v, want %v", added.Tech, wantTech)
	}
	for i := range wantTech {
		if added.Tech[i] != wantTech[i] {
			t.Errorf("tech[%d] = %q, want %q", i, added.Tech[i], wantTech[i])
		}
	}
	if len(added.Tags) != 2 || added.Tags[0] != "Web" || added.Tags[1] != "Infrastructure" {
		t.Errorf("tags = %v", added.Tags)
	}
	if added.ID == 0 {
		t.Error("added project should get a fresh id")
	}
}

func TestSkillAddAndDelete(t *testing.T) {
	a := newTestApp(t)
	b := newBrowser(a)
	b.login(t, "admin", "s3cret")

	rec := b.do(http.MethodPost, "/admin/skills/", url.Values{
		"name":     {"Zig"},
		"category": {"Languages"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("skill add = %d, want 303", rec.Code)
	}
	if _, found := findSkill(a, "Zig"); !found {
		t.Fatal("skill Zig not added")
	}

	rec = b.do(http.MethodPost, "/admin/skills/Zig/?_method=DELETE", url.Values{})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("skill delete = %d, want 303", rec.Code)
	}
	if _, found := findSkill(a, "Zig"); found {
		t.Fatal("skill Zig not deleted")
	}
}

func findSkill(a *App, name string) (content.Skill, bool) {
	for _, s := range a.Controller.Snapshot().Skills {
		if s.Name == name {
			return s, true
		}
	}
	return content.Skill{}, false
}

func TestMutationsRequireAuth(t *testing.T) {
	a := newTestApp(t)
	b := newBrowser(a)
	b.do(http.MethodGet, "/", nil)

	before := len(a.Controller.Snapshot().Skills)
	rec := b.do(http.MethodPost, "/admin/skills/", url.Values{
		"name":     {"Sneaky"},
		"category": {"Nope"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("unauthenticated mutation = %d, want 303 redirect", rec.Code)
	}
	if got := len(a.Controller.Snapshot().Skills); got != before {
		t.Errorf("unauthenticated request mutated content: %d -> %d skills", before, got)
	}
}

func TestThemeToggle(t *testing.T) {
	a := newTestApp(t)
	b := newBrowser(a)
	b.do(http.MethodGet, "/", nil)

	rec := b.do(http.MethodPost, "/theme/", url.Values{})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("theme toggle = %d, want 303", rec.Code)
	}
	cookie, ok := b.cookies["theme"]
	if !ok || cookie.Value != "dark" {
		t.Fatalf("theme cookie = %+v, want dark", cookie)
	}

	rec = b.do(http.MethodGet, "/", nil)
	if !strings.Contains(rec.Body.String(), `data-theme="dark"`) {
		t.Error("home page should render with the dark theme")
	}

	b.do(http.MethodPost, "/theme/", url.Values{})
	if b.cookies["theme"].Value != "light" {
		t.Errorf("second toggle = %q, want light", b.cookies["theme"].Value)
	}
}

func TestImageUploadListDelete(t *testing.T) {
	a := newTestApp(t, WithStaticDir(t.TempDir()))
	b := newBrowser(a)
	b.login(t, "admin", "s3cret")

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, image.NewRGBA(image.Rect(0, 0, 10, 10))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", "My Photo.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	part.Write(encoded.Bytes())
	mw.Close()

	rec := b.doBody(http.MethodPost, "/admin/images/upload/", mw.FormDataContentType(), &body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var img Image
	if err := json.Unmarshal(rec.Body.Bytes(), &img); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	if img.Filename != "my-photo.jpg" {
		t.Errorf("filename = %q, want my-photo.jpg", img.Filename)
	}
	if img.Width != 10 || img.Height != 10 {
		t.Errorf("dimensions = %dx%d, want 10x10", img.Width, img.Height)
	}
	if !strings.HasPrefix(img.URL, "/public/uploads/") {
		t.Fatalf("url = %q, want a /public/uploads/ path", img.URL)
	}

	// The returned URL must actually be served by the app.
	rec = b.do(http.MethodGet, img.URL, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET %s = %d, want 200", img.URL, rec.Code)
	}

	rec = b.do(http.MethodGet, "/admin/images/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("image list = %d, want 200", rec.Code)
	}
	var list []Image
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode image list: %v", err)
	}
	if len(list) != 1 || list[0].Filename != img.Filename || list[0].URL != img.URL {
		t.Fatalf("list = %+v, want the uploaded image", list)
	}

	rec = b.do(http.MethodPost, "/admin/images/"+img.Filename+"/?_method=DELETE", url.Values{})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("image delete = %d, want 204", rec.Code)
	}
	rec = b.do(http.MethodGet, "/admin/images/", nil)
	list = nil
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode image list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("list after delete = %+v, want empty", list)
	}
}

func TestFeedAndSitemap(t *testing.T) {
	a := newTestApp(t)
	b := newBrowser(a)

	rec := b.do(http.MethodGet, "/feed.xml", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /feed.xml = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<rss") {
		t.Error("feed missing rss element")
	}

	rec = b.do(http.MethodGet, "/sitemap.xml", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /sitemap.xml = %d, want 200", rec.Code)
	}
	post := content.Defaults().Posts[0]
	if !strings.Contains(rec.Body.String(), "/blog/"+post.Slug+"/") {
		t.Error("sitemap missing blog post URL")
	}
}
