package content

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello-world"},
		{"  Spaces   everywhere  ", "spaces-everywhere"},
		{"already-a-slug", "already-a-slug"},
		{"Mixed CASE & Símbolos", "mixed-case-smbolos"},
		{"hyphen--runs---here", "hyphen-runs-here"},
		{"trailing punctuation...", "trailing-punctuation"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPostSlugDistinctForSameTitle(t *testing.T) {
	a := PostSlug("My Post", 1700000000000)
	b := PostSlug("My Post", 1700000000001)
	if a == b {
		t.Fatalf("slugs for identical titles at different instants must differ, both %q", a)
	}
	if a != "my-post-1700000000000" {
		t.Errorf("PostSlug = %q, want %q", a, "my-post-1700000000000")
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList("a, b")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("SplitList(\"a, b\") = %v, want [a b]", got)
	}
	if got := SplitList(" , ,"); got != nil {
		t.Errorf("SplitList of blanks = %v, want nil", got)
	}
}

func TestDefaultsComplete(t *testing.T) {
	d := Defaults()
	if d.Profile.Name == "" || d.Profile.Email == "" {
		t.Error("default profile must be populated")
	}
	if len(d.Skills) == 0 || len(d.Projects) == 0 || len(d.Timeline) == 0 || len(d.Posts) == 0 {
		t.Error("default aggregate must populate every collection")
	}
	for _, p := range d.Posts {
		if p.Slug == "" {
			t.Errorf("default post %q has no slug", p.Title)
		}
	}
}

func TestDefaultsReturnsFreshCopy(t *testing.T) {
	a := Defaults()
	a.Skills[0].Name = "mutated"
	a.Projects[0].Tags[0] = "mutated"
	b := Defaults()
	if b.Skills[0].Name == "mutated" || b.Projects[0].Tags[0] == "mutated" {
		t.Fatal("Defaults must not share backing arrays between calls")
	}
}

func TestCloneIsDeep(t *testing.T) {
	a := Defaults()
	c := a.Clone()
	c.Projects[0].Tech[0] = "changed"
	c.Skills[0].Name = "changed"
	if a.Projects[0].Tech[0] == "changed" || a.Skills[0].Name == "changed" {
		t.Fatal("Clone must not alias source slices")
	}
}

func TestProjectTagsDeduplicated(t *testing.T) {
	a := &Aggregate{Projects: []Project{
		{ID: 1, Tags: []string{"Web", "AI/ML"}},
		{ID: 2, Tags: []string{"AI/ML", "IoT"}},
	}}
	tags := a.ProjectTags()
	want := []string{"Web", "AI/ML", "IoT"}
	if len(tags) != len(want) {
		t.Fatalf("ProjectTags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("ProjectTags = %v, want %v", tags, want)
		}
	}
}
