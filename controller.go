package folio

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/folio-sh/folio/content"
	"github.com/folio-sh/folio/gateway"
)

// Controller owns the in-memory content aggregate. It loads the aggregate at
// startup (seeding an empty store with the built-in defaults), applies every
// mutation through a single command entry point, and persists changes with a
// debounced full-document write: rapid edits collapse into one save carrying
// the final state.
//
// The aggregate is mutated only by the controller's own operations. Handlers
// read through Snapshot, which returns a deep copy.
type Controller struct {
	mu  sync.Mutex
	gw  gateway.Gateway
	agg *content.Aggregate

	loading bool // startup load in flight; mutations must not schedule writes
	ready   bool // set once, when the startup load settles

	debounce time.Duration
	timer    *time.Timer
	pending  bool
	seedWG   sync.WaitGroup

	now  func() time.Time
	logf func(format string, args ...any)
}

// NewController creates a controller over the given gateway. The aggregate
// starts as the built-in defaults until Load runs.
func NewController(gw gateway.Gateway, debounce time.Duration) *Controller {
	if debounce <= 0 {
		debounce = time.Second
	}
	return &Controller{
		gw:       gw,
		agg:      content.Defaults(),
		debounce: debounce,
		now:      time.Now,
		logf:     log.Printf,
	}
}

// Load runs the startup protocol. Exactly one of three outcomes happens:
// remote data is merged over the defaults field-by-field; an empty store keeps
// the defaults and fires one seed write (whose result startup does not wait
// for); a failure keeps the defaults and is logged. In every outcome the
// controller ends up ready with a complete aggregate; a load failure is never
// surfaced to the end user.
func (c *Controller) Load(ctx context.Context) {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	doc, err := c.gw.Load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case err == nil:
		c.agg = doc.Merge(content.Defaults())
	case errors.Is(err, gateway.ErrEmpty):
		seed := c.agg.Clone()
		c.seedWG.Add(1)
		go func() {
			defer c.seedWG.Done()
			sctx, cancel := context.WithTimeout(context.Background(), gateway.DefaultTimeout)
			defer cancel()
			if err := c.gw.Save(sctx, seed); err != nil {
				c.logf("folio: could not seed content store: %v", err)
			}
		}()
	default:
		c.logf("folio: could not load content, using defaults: %v", err)
	}
	c.loading = false
	c.ready = true
}

// Snapshot returns a deep copy of the current aggregate.
func (c *Controller) Snapshot() *content.Aggregate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.agg.Clone()
}

// Apply runs one mutation command against the aggregate and, when it changed
// anything after startup has settled, schedules a debounced save. Returns
// whether the command changed state.
func (c *Controller) Apply(cmd Command) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	changed := cmd.apply(c.agg, c.nextID)
	if changed && c.ready && !c.loading {
		c.scheduleLocked()
	}
	return changed
}

// scheduleLocked re-arms the debounce timer. A new mutation cancels the prior
// handle, so only the timer that survives a full quiet period fires.
func (c *Controller) scheduleLocked() {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.pending = true
	c.timer = time.AfterFunc(c.debounce, c.flushTimer)
}

func (c *Controller) flushTimer() {
	c.mu.Lock()
	if !c.pending {
		c.mu.Unlock()
		return
	}
	c.pending = false
	c.timer = nil
	snapshot := c.agg.Clone()
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), gateway.DefaultTimeout)
	defer cancel()
	if err := c.gw.Save(ctx, snapshot); err != nil {
		// Logged and swallowed: in-memory state is kept, no retry, no
		// user-visible error.
		c.logf("folio: could not save content: %v", err)
	}
}

// Flush cancels any pending debounce timer and, if a write was pending,
// performs it synchronously. Used at teardown so no stale timer fires after
// the owning app is gone.
func (c *Controller) Flush(ctx context.Context) error {
	// Let a startup seed write land before the store may be torn down.
	c.seedWG.Wait()

	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	wasPending := c.pending
	c.pending = false
	snapshot := c.agg.Clone()
	c.mu.Unlock()

	if !wasPending {
		return nil
	}
	return c.gw.Save(ctx, snapshot)
}

// Close cancels any pending write without performing it. It still waits for
// an in-flight seed write, so short-lived runs seed the store.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.pending = false
	c.mu.Unlock()
	c.seedWG.Wait()
}

// nextID derives a fresh numeric ID from the clock, bumped past max when the
// millisecond reading collides with an existing ID.
func (c *Controller) nextID(existing func() int64) int64 {
	id := c.now().UnixMilli()
	if max := existing(); id <= max {
		id = max + 1
	}
	return id
}

// Command is one tagged mutation of the aggregate. All variants go through
// Controller.Apply, which centralizes the debounced-save hook.
type Command interface {
	// apply mutates the aggregate and reports whether anything changed.
	// nextID yields a fresh ID given the current maximum.
	apply(a *content.Aggregate, nextID func(existing func() int64) int64) bool
}

// SetProfile replaces the profile record.
type SetProfile struct{ Profile content.Profile }

func (cmd SetProfile) apply(a *content.Aggregate, _ func(func() int64) int64) bool {
	a.Profile = cmd.Profile
	return true
}

// SetSkills replaces the whole skill list.
type SetSkills struct{ Skills []content.Skill }

func (cmd SetSkills) apply(a *content.Aggregate, _ func(func() int64) int64) bool {
	a.Skills = append([]content.Skill(nil), cmd.Skills...)
	return true
}

// AddSkill appends a skill. Blank name or category (after trimming) is a
// no-op, as is a duplicate name.
type AddSkill struct{ Name, Category string }

func (cmd AddSkill) apply(a *content.Aggregate, _ func(func() int64) int64) bool {
	name := strings.TrimSpace(cmd.Name)
	category := strings.TrimSpace(cmd.Category)
	if name == "" || category == "" {
		return false
	}
	for _, s := range a.Skills {
		if s.Name == name {
			return false
		}
	}
	a.Skills = append(a.Skills, content.Skill{Name: name, Category: category})
	return true
}

// DeleteSkill removes all skills with the exact name. A missing name is a
// no-op and schedules nothing.
type DeleteSkill struct{ Name string }

func (cmd DeleteSkill) apply(a *content.Aggregate, _ func(func() int64) int64) bool {
	kept := a.Skills[:0]
	for _, s := range a.Skills {
		if s.Name != cmd.Name {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(a.Skills) {
		return false
	}
	a.Skills = kept
	return true
}

// SetProjects replaces the whole project list.
type SetProjects struct{ Projects []content.Project }

func (cmd SetProjects) apply(a *content.Aggregate, _ func(func() int64) int64) bool {
	a.Projects = append([]content.Project(nil), cmd.Projects...)
	return true
}

// AddProject appends a project with a freshly assigned ID; any ID on the
// input is ignored.
type AddProject struct{ Project content.Project }

func (cmd AddProject) apply(a *content.Aggregate, nextID func(func() int64) int64) bool {
	p := cmd.Project
	p.ID = nextID(func() int64 {
		var max int64
		for _, existing := range a.Projects {
			if existing.ID > max {
				max = existing.ID
			}
		}
		return max
	})
	a.Projects = append(a.Projects, p)
	return true
}

// UpdateProject replaces the project with a matching ID; no-op on a miss.
type UpdateProject struct{ Project content.Project }

func (cmd UpdateProject) apply(a *content.Aggregate, _ func(func() int64) int64) bool {
	for i, p := range a.Projects {
		if p.ID == cmd.Project.ID {
			a.Projects[i] = cmd.Project
			return true
		}
	}
	return false
}

// DeleteProject removes the project with the given ID; no-op on a miss.
type DeleteProject struct{ ID int64 }

func (cmd DeleteProject) apply(a *content.Aggregate, _ func(func() int64) int64) bool {
	for i, p := range a.Projects {
		if p.ID == cmd.ID {
			a.Projects = append(a.Projects[:i], a.Projects[i+1:]...)
			return true
		}
	}
	return false
}

// SetTimeline replaces the whole timeline, re-sorted newest-created first.
type SetTimeline struct{ Timeline []content.TimelineItem }

func (cmd SetTimeline) apply(a *content.Aggregate, _ func(func() int64) int64) bool {
	a.Timeline = append([]content.TimelineItem(nil), cmd.Timeline...)
	sortTimeline(a.Timeline)
	return true
}

// AddTimelineItem appends a timeline entry with a fresh ID and keeps the list
// sorted by creation ID descending. The human-entered date field is free text
// and carries no reliable order.
type AddTimelineItem struct{ Item content.TimelineItem }

func (cmd AddTimelineItem) apply(a *content.Aggregate, nextID func(func() int64) int64) bool {
	item := cmd.Item
	item.ID = nextID(func() int64 {
		var max int64
		for _, existing := range a.Timeline {
			if existing.ID > max {
				max = existing.ID
			}
		}
		return max
	})
	a.Timeline = append(a.Timeline, item)
	sortTimeline(a.Timeline)
	return true
}

// UpdateTimelineItem replaces the entry with a matching ID; no-op on a miss.
type UpdateTimelineItem struct{ Item content.TimelineItem }

func (cmd UpdateTimelineItem) apply(a *content.Aggregate, _ func(func() int64) int64) bool {
	for i, item := range a.Timeline {
		if item.ID == cmd.Item.ID {
			a.Timeline[i] = cmd.Item
			return true
		}
	}
	return false
}

// DeleteTimelineItem removes the entry with the given ID; no-op on a miss.
type DeleteTimelineItem struct{ ID int64 }

func (cmd DeleteTimelineItem) apply(a *content.Aggregate, _ func(func() int64) int64) bool {
	for i, item := range a.Timeline {
		if item.ID == cmd.ID {
			a.Timeline = append(a.Timeline[:i], a.Timeline[i+1:]...)
			return true
		}
	}
	return false
}

func sortTimeline(items []content.TimelineItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ID > items[j].ID
	})
}

// AddPost prepends a new post. The slug is derived once from the title and
// the creation clock and is immutable thereafter; any slug on the input is
// ignored.
type AddPost struct{ Post content.Post }

func (cmd AddPost) apply(a *content.Aggregate, nextID func(func() int64) int64) bool {
	p := cmd.Post
	millis := nextID(func() int64 { return 0 })
	p.Slug = content.PostSlug(p.Title, millis)
	a.Posts = append([]content.Post{p}, a.Posts...)
	return true
}

// UpdatePost replaces the post whose slug matches; no-op on a miss.
type UpdatePost struct{ Post content.Post }

func (cmd UpdatePost) apply(a *content.Aggregate, _ func(func() int64) int64) bool {
	for i, p := range a.Posts {
		if p.Slug == cmd.Post.Slug {
			a.Posts[i] = cmd.Post
			return true
		}
	}
	return false
}

// DeletePost removes the post with the given slug; no-op on a miss.
type DeletePost struct{ Slug string }

func (cmd DeletePost) apply(a *content.Aggregate, _ func(func() int64) int64) bool {
	for i, p := range a.Posts {
		if p.Slug == cmd.Slug {
			a.Posts = append(a.Posts[:i], a.Posts[i+1:]...)
			return true
		}
	}
	return false
}
