package views

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/folio-sh/folio/content"
)

func esc(s string) string { return html.EscapeString(s) }

func component(render func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return render(w)
	})
}

func writePage(w io.Writer, site Site, title, theme string, body func(w io.Writer) error) error {
	if theme != "dark" {
		theme = "light"
	}
	fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en" data-theme=%q>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<meta name="description" content="%s">
<link rel="stylesheet" href="/public/site.css">
</head>
<body>
`, theme, esc(title), esc(site.Description))
	if err := body(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}

// Home renders the public single-page portfolio: hero, career timeline,
// skills, projects with the tag filter, blog list, contact form, and the chat
// widget mount point.
func Home(d HomeData) templ.Component {
	return component(func(w io.Writer) error {
		return writePage(w, d.Site, d.Site.Name, d.Theme, func(w io.Writer) error {
			p := d.Content.Profile
			fmt.Fprintf(w, `<header class="hero" id="home">
<img class="avatar" src=%q alt=%q>
<h1>%s</h1>
<p class="title">%s</p>
<p class="bio">%s</p>
<nav class="links">
<a href=%q>LinkedIn</a>
<a href=%q>GitHub</a>
<a href="mailto:%s">Email</a>
<a href=%q>Resume</a>
</nav>
<form method="POST" action="/theme/"><input type="hidden" name="_csrf" value=%q><button type="submit" class="theme-toggle">Toggle theme</button></form>
</header>
`, p.ProfileImageURL, esc(p.Name), esc(p.Name), esc(p.Title), esc(p.Bio),
				p.LinkedIn, p.GitHub, esc(p.Email), p.ResumeURL, d.CSRF)

			io.WriteString(w, `<section id="career"><h2>Career Path</h2><ol class="timeline">`)
			for _, item := range d.Content.Timeline {
				fmt.Fprintf(w, `<li class="timeline-%s"><h3>%s</h3><p class="org">%s</p><p class="date">%s</p><p>%s</p></li>`,
					esc(string(item.Type)), esc(item.Title), esc(item.Organization), esc(item.Date), esc(item.Description))
			}
			io.WriteString(w, `</ol></section>`)

			io.WriteString(w, `<section id="skills"><h2>Skills</h2><ul class="skills">`)
			for _, s := range d.Content.Skills {
				fmt.Fprintf(w, `<li><span class="skill">%s</span> <span class="category">%s</span></li>`, esc(s.Name), esc(s.Category))
			}
			io.WriteString(w, `</ul></section>`)

			io.WriteString(w, `<section id="projects"><h2>Projects</h2><nav class="tags">`)
			if d.ActiveTag == "" {
				io.WriteString(w, `<strong>All</strong>`)
			} else {
				io.WriteString(w, `<a href="/">All</a>`)
			}
			for _, tag := range d.Tags {
				if tag == d.ActiveTag {
					fmt.Fprintf(w, ` <strong>%s</strong>`, esc(tag))
				} else {
					fmt.Fprintf(w, ` <a href="/?tag=%s">%s</a>`, url.QueryEscape(tag), esc(tag))
				}
			}
			io.WriteString(w, `</nav><ul class="projects">`)
			for _, pr := range projectsWithTag(d.Content.Projects, d.ActiveTag) {
				fmt.Fprintf(w, `<li><img src=%q alt=%q><h3>%s</h3><p>%s</p><p class="tech">%s</p><p class="tags">%s</p></li>`,
					pr.ImageURL, esc(pr.Title), esc(pr.Title), esc(pr.ShortDescription),
					esc(strings.Join(pr.Tech, ", ")), esc(strings.Join(pr.Tags, ", ")))
			}
			io.WriteString(w, `</ul></section>`)

			io.WriteString(w, `<section id="blog"><h2>Blog</h2><ul class="posts">`)
			for _, post := range d.Content.Posts {
				fmt.Fprintf(w, `<li><a href="/blog/%s/"><h3>%s</h3></a><p class="date">%s</p><p>%s</p></li>`,
					url.PathEscape(post.Slug), esc(post.Title), esc(post.Date), esc(post.Excerpt))
			}
			io.WriteString(w, `</ul></section>`)

			fmt.Fprintf(w, `<section id="contact"><h2>Get In Touch</h2>
<form class="contact" data-endpoint="/api/contact">
<input type="text" name="name" placeholder="Full Name" required>
<input type="email" name="email" placeholder="Email Address" required>
<textarea name="message" placeholder="Message" required></textarea>
<button type="submit">Send</button>
<p class="status" hidden></p>
</form>
</section>
<footer><a href="/admin/">Admin</a></footer>
<div id="chat-widget" data-endpoint="/api/chat"></div>
<script src="/public/site.js"></script>
`)
			fmt.Fprintf(w, `<script type="application/ld+json">%s</script>`, WebsiteJsonLD(d.Site))
			return nil
		})
	})
}

func projectsWithTag(projects []content.Project, tag string) []content.Project {
	if tag == "" {
		return projects
	}
	var out []content.Project
	for _, p := range projects {
		for _, t := range p.Tags {
			if t == tag {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// Post renders a single blog post page with markdown-rendered content.
func Post(d PostData) templ.Component {
	return component(func(w io.Writer) error {
		return writePage(w, d.Site, d.Post.Title+" — "+d.Site.Name, d.Theme, func(w io.Writer) error {
			fmt.Fprintf(w, `<article class="post"><h1>%s</h1><p class="date">%s</p><div class="content">`,
				esc(d.Post.Title), esc(d.Post.Date))
			if err := Markdown(d.Post.Content).Render(context.Background(), w); err != nil {
				return err
			}
			io.WriteString(w, `</div></article><p><a href="/">&larr; Back</a></p>`)
			fmt.Fprintf(w, `<script type="application/ld+json">%s</script>`, BlogPostingJsonLD(d.Post, d.Site))
			return nil
		})
	})
}

// AdminLogin renders the login screen, with the error message after a failed
// attempt.
func AdminLogin(d LoginData) templ.Component {
	return component(func(w io.Writer) error {
		return writePage(w, d.Site, "Admin Login — "+d.Site.Name, "light", func(w io.Writer) error {
			io.WriteString(w, `<main class="login"><h1>Admin Login</h1>`)
			if d.Error != "" {
				fmt.Fprintf(w, `<p class="error">%s</p>`, esc(d.Error))
			}
			fmt.Fprintf(w, `<form method="POST" action="/admin/login/">
<input type="hidden" name="_csrf" value=%q>
<input type="text" name="username" placeholder="Username" required>
<input type="password" name="password" placeholder="Password" required>
<button type="submit">Log in</button>
</form>
<p><a href="/">&larr; Back to portfolio</a></p>
</main>`, d.CSRF)
			return nil
		})
	})
}

// AdminDashboard renders the editing surface: one form block per aggregate
// field.
func AdminDashboard(d DashboardData) templ.Component {
	return component(func(w io.Writer) error {
		return writePage(w, d.Site, "Admin — "+d.Site.Name, "light", func(w io.Writer) error {
			fmt.Fprintf(w, `<main class="admin"><header><h1>Dashboard</h1>
<form method="POST" action="/admin/logout/"><input type="hidden" name="_csrf" value=%q><button type="submit">Log out</button></form>
</header>`, d.CSRF)
			if d.Message != "" {
				fmt.Fprintf(w, `<p class="message">%s</p>`, esc(d.Message))
			}

			p := d.Content.Profile
			fmt.Fprintf(w, `<section><h2>Profile</h2>
<form method="POST" action="/admin/profile/">
<input type="hidden" name="_csrf" value=%q>
<input name="name" value=%q required>
<input name="fullName" value=%q>
<input name="title" value=%q required>
<textarea name="bio" required>%s</textarea>
<input type="email" name="email" value=%q required>
<input name="linkedin" value=%q>
<input name="github" value=%q>
<input name="profileImageUrl" value=%q>
<input name="resumeUrl" value=%q>
<button type="submit">Save profile</button>
</form></section>`, d.CSRF, p.Name, p.FullName, p.Title, esc(p.Bio), p.Email,
				p.LinkedIn, p.GitHub, p.ProfileImageURL, p.ResumeURL)

			fmt.Fprintf(w, `<section><h2>Skills</h2><ul>`)
			for _, s := range d.Content.Skills {
				fmt.Fprintf(w, `<li>%s (%s) <form method="POST" action="/admin/skills/%s/?_method=DELETE"><input type="hidden" name="_csrf" value=%q><button>Delete</button></form></li>`,
					esc(s.Name), esc(s.Category), url.PathEscape(s.Name), d.CSRF)
			}
			fmt.Fprintf(w, `</ul>
<form method="POST" action="/admin/skills/">
<input type="hidden" name="_csrf" value=%q>
<input name="name" placeholder="Skill" required>
<input name="category" placeholder="Category" required>
<button type="submit">Add skill</button>
</form></section>`, d.CSRF)

			fmt.Fprintf(w, `<section><h2>Projects</h2><ul>`)
			for _, pr := range d.Content.Projects {
				fmt.Fprintf(w, `<li data-id="%d">%s</li>`, pr.ID, esc(pr.Title))
			}
			fmt.Fprintf(w, `</ul>
<form method="POST" action="/admin/projects/">
<input type="hidden" name="_csrf" value=%q>
<input type="hidden" name="id" value="">
<input name="title" placeholder="Title" required>
<textarea name="shortDescription" placeholder="Short description" required></textarea>
<input name="imageUrl" placeholder="Image URL">
<input name="tech" placeholder="Tech (comma separated)">
<input name="tags" placeholder="Tags (comma separated)">
<button type="submit">Save project</button>
</form></section>`, d.CSRF)

			fmt.Fprintf(w, `<section><h2>Timeline</h2><ul>`)
			for _, item := range d.Content.Timeline {
				fmt.Fprintf(w, `<li data-id="%d">[%s] %s — %s</li>`, item.ID, esc(string(item.Type)), esc(item.Title), esc(item.Organization))
			}
			fmt.Fprintf(w, `</ul>
<form method="POST" action="/admin/timeline/">
<input type="hidden" name="_csrf" value=%q>
<input type="hidden" name="id" value="">
<select name="type"><option>work</option><option>education</option><option>certification</option></select>
<input name="title" placeholder="Title" required>
<input name="organization" placeholder="Organization" required>
<input name="date" placeholder="Date">
<textarea name="description" placeholder="Description"></textarea>
<button type="submit">Save entry</button>
</form></section>`, d.CSRF)

			fmt.Fprintf(w, `<section><h2>Posts</h2><ul>`)
			for _, post := range d.Content.Posts {
				fmt.Fprintf(w, `<li data-slug=%q>%s <span class="date">%s</span></li>`, post.Slug, esc(post.Title), esc(post.Date))
			}
			fmt.Fprintf(w, `</ul>
<form method="POST" action="/admin/posts/">
<input type="hidden" name="_csrf" value=%q>
<input type="hidden" name="slug" value="">
<input name="title" placeholder="Title" required>
<input name="date" placeholder="YYYY-MM-DD">
<textarea name="excerpt" placeholder="Excerpt"></textarea>
<textarea name="content" placeholder="Content (markdown)"></textarea>
<button type="submit">Save post</button>
</form></section>
</main>`, d.CSRF)
			return nil
		})
	})
}

// NotFound renders the 404 page.
func NotFound() templ.Component {
	return component(func(w io.Writer) error {
		_, err := io.WriteString(w, `<!DOCTYPE html><html><head><title>Not Found</title></head><body><h1>404</h1><p>Nothing here. <a href="/">Back home</a>.</p></body></html>`)
		return err
	})
}

// ServerError renders the 500 page.
func ServerError() templ.Component {
	return component(func(w io.Writer) error {
		_, err := io.WriteString(w, `<!DOCTYPE html><html><head><title>Error</title></head><body><h1>Something went wrong</h1><p><a href="/">Back home</a>.</p></body></html>`)
		return err
	})
}
