package carousel

import (
	"time"
)

// DefaultInterval is how long a page stays up before auto-advance moves on.
const DefaultInterval = 10 * time.Second

// State is the persisted form of a Carousel, kept in the visitor session.
type State struct {
	Page      int       `json:"page"`
	Expanded  int       `json:"expanded,omitempty"`
	Compact   bool      `json:"compact,omitempty"`
	LastMoved time.Time `json:"last_moved"`
}

// Carousel is the certificate pager together with its detail overlay and layout.
// Expanded holds the id of the certificate shown in the overlay, zero when closed.
type Carousel struct {
	pager     Paginator
	interval  time.Duration
	expanded  int
	compact   bool
	lastMoved time.Time
}

// New builds a carousel on page 0 for count items. now starts the first
// auto-advance interval.
func New(count, pageSize int, interval time.Duration, now time.Time) *Carousel {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Carousel{
		pager:     NewPaginator(count, pageSize),
		interval:  interval,
		lastMoved: now,
	}
}

// Restore rebuilds a carousel from session state.
func Restore(s State, count, pageSize int, interval time.Duration, now time.Time) *Carousel {
	c := New(count, pageSize, interval, now)
	c.pager.restore(s.Page)
	c.expanded = s.Expanded
	c.compact = s.Compact
	if !s.LastMoved.IsZero() {
		c.lastMoved = s.LastMoved
	}
	return c
}

func (c *Carousel) State() State {
	return State{
		Page:      c.pager.Page(),
		Expanded:  c.expanded,
		Compact:   c.compact,
		LastMoved: c.lastMoved,
	}
}

func (c *Carousel) Page() int         { return c.pager.Page() }
func (c *Carousel) TotalPages() int   { return c.pager.TotalPages() }
func (c *Carousel) Compact() bool     { return c.compact }
func (c *Carousel) Expanded() int     { return c.expanded }
func (c *Carousel) OverlayOpen() bool { return c.expanded != 0 }

// Window is the slice bounds of the visible cards. Compact layouts show everything.
func (c *Carousel) Window(count int) (start, end int) {
	if c.compact {
		return 0, count
	}
	return c.pager.Window()
}

// Next, Prev and Jump are manual navigation; each restarts the auto-advance interval.
func (c *Carousel) Next(now time.Time) int {
	c.lastMoved = now
	return c.pager.Next()
}

func (c *Carousel) Prev(now time.Time) int {
	c.lastMoved = now
	return c.pager.Prev()
}

func (c *Carousel) Jump(i int, now time.Time) error {
	if err := c.pager.Jump(i); err != nil {
		return err
	}
	c.lastMoved = now
	return nil
}

// Open shows the detail overlay for certificate id.
func (c *Carousel) Open(id int) {
	c.expanded = id
}

func (c *Carousel) Close() {
	c.expanded = 0
}

// SetCompact switches between the paged (wide) and full-list (compact) layouts.
func (c *Carousel) SetCompact(compact bool) {
	c.compact = compact
}

// Suspended reports whether auto-advance is paused.
func (c *Carousel) Suspended() bool {
	return c.OverlayOpen() || c.compact
}

// Tick is one auto-advance timer firing. It moves to the next page and returns true
// only when not suspended and a full interval has passed since the last page change.
func (c *Carousel) Tick(now time.Time) bool {
	if c.Suspended() {
		return false
	}
	if now.Sub(c.lastMoved) < c.interval {
		return false
	}
	c.pager.Next()
	c.lastMoved = now
	return true
}
