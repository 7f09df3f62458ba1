// Package content defines the portfolio content model: a single Aggregate
// document holding the profile, skills, projects, career timeline, and blog
// posts. The aggregate is the unit of persistence: it is always loaded,
// rendered, and saved whole.
package content

// Profile is the singleton owner record. Exactly one instance exists at all
// times; loaders must substitute the built-in default rather than leave it zero.
type Profile struct {
	Name            string `json:"name"`
	FullName        string `json:"fullName"`
	Title           string `json:"title"`
	Bio             string `json:"bio"`
	Email           string `json:"email"`
	LinkedIn        string `json:"linkedin"`
	GitHub          string `json:"github"`
	ProfileImageURL string `json:"profileImageUrl"`
	ResumeURL       string `json:"resumeUrl"`
}

// Skill is one entry in the skill set, keyed by Name. Insertion order is kept
// only for display.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Project is a portfolio project. ID is assigned once at creation from a
// monotonic clock reading and never reused.
type Project struct {
	ID               int64    `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	ImageURL         string   `json:"imageUrl"`
	Tech             []string `json:"tech"`
	Tags             []string `json:"tags"`
}

// TimelineType classifies a timeline entry.
type TimelineType string

const (
	TimelineWork          TimelineType = "work"
	TimelineEducation     TimelineType = "education"
	TimelineCertification TimelineType = "certification"
)

// TimelineItem is one career timeline entry. Date is free text entered by the
// editor and is not guaranteed sortable.
type TimelineItem struct {
	ID           int64        `json:"id"`
	Type         TimelineType `json:"type"`
	Title        string       `json:"title"`
	Organization string       `json:"organization"`
	Date         string       `json:"date"`
	Description  string       `json:"description"`
}

// Post is a blog post. Slug is derived from the title and creation time,
// assigned once, and is the identity used for update and delete.
type Post struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
}

// Aggregate is the complete content document. Every load path produces a
// fully-populated aggregate; partial aggregates are never persisted or
// rendered.
type Aggregate struct {
	Profile  Profile        `json:"personalInfo"`
	Skills   []Skill        `json:"skills"`
	Projects []Project      `json:"projects"`
	Timeline []TimelineItem `json:"timeline"`
	Posts    []Post         `json:"posts"`
}

// Clone returns a deep copy so callers never alias slices owned by another
// component.
func (a *Aggregate) Clone() *Aggregate {
	out := &Aggregate{
		Profile:  a.Profile,
		Skills:   append([]Skill(nil), a.Skills...),
		Timeline: append([]TimelineItem(nil), a.Timeline...),
		Posts:    append([]Post(nil), a.Posts...),
	}
	out.Projects = make([]Project, len(a.Projects))
	for i, p := range a.Projects {
		p.Tech = append([]string(nil), p.Tech...)
		p.Tags = append([]string(nil), p.Tags...)
		out.Projects[i] = p
	}
	return out
}

// FindPost returns the post with the given slug, or false.
func (a *Aggregate) FindPost(slug string) (Post, bool) {
	for _, p := range a.Posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return Post{}, false
}

// FindProject returns the project with the given id, or false.
func (a *Aggregate) FindProject(id int64) (Project, bool) {
	for _, p := range a.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// ProjectTags returns the deduplicated tag list across all projects, in first
// appearance order. Used for the public tag filter.
func (a *Aggregate) ProjectTags() []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, p := range a.Projects {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}
