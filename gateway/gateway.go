// Package gateway persists the content aggregate as one document. Two
// backings implement the same contract: a remote JSON document endpoint
// (full-document GET/PUT) and a local per-key SQLite store.
package gateway

import (
	"context"
	"errors"

	"github.com/folio-sh/folio/content"
)

// ErrEmpty is returned by Load when the store is reachable but holds no
// document yet. Callers seed the store with defaults on this result.
var ErrEmpty = errors.New("gateway: store is empty")

// Document is what a Load returns: the aggregate with per-field presence.
// A nil field was absent in the store (or, for the local backing, failed to
// parse) and must be defaulted by the caller. Stored empty collections are
// present and stay empty.
type Document struct {
	Profile  *content.Profile        `json:"personalInfo"`
	Skills   *[]content.Skill        `json:"skills"`
	Projects *[]content.Project      `json:"projects"`
	Timeline *[]content.TimelineItem `json:"timeline"`
	Posts    *[]content.Post         `json:"posts"`
}

// Merge builds a complete aggregate from the document, substituting the given
// defaults for every absent field.
func (d *Document) Merge(defaults *content.Aggregate) *content.Aggregate {
	out := defaults.Clone()
	if d == nil {
		return out
	}
	if d.Profile != nil {
		out.Profile = *d.Profile
	}
	if d.Skills != nil {
		out.Skills = append([]content.Skill(nil), (*d.Skills)...)
	}
	if d.Projects != nil {
		out.Projects = append([]content.Project(nil), (*d.Projects)...)
	}
	if d.Timeline != nil {
		out.Timeline = append([]content.TimelineItem(nil), (*d.Timeline)...)
	}
	if d.Posts != nil {
		out.Posts = append([]content.Post(nil), (*d.Posts)...)
	}
	return out
}

// Empty reports whether the document carries no fields at all.
func (d *Document) Empty() bool {
	return d == nil || (d.Profile == nil && d.Skills == nil && d.Projects == nil &&
		d.Timeline == nil && d.Posts == nil)
}

// Gateway reads and writes the entire aggregate. Load returns ErrEmpty for an
// unset store and a hard error for anything else that goes wrong; Save is a
// full replace with no retry; the caller owns fallback behavior.
type Gateway interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, a *content.Aggregate) error
}
