// Package reveal decides when a page section starts its entrance animation.
package reveal

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Mode selects how a Trigger reacts to repeated observations.
type Mode int

const (
	// Once flips to visible the first time the section crosses the threshold and
	// never flips back.
	Once Mode = iota
	// Repeat tracks every observation: visible while over the threshold, hidden below.
	// Page fragments load with hx-trigger intersect once, so no section uses it.
	Repeat
	// OnMount is visible from the start, without waiting for the viewport.
	OnMount
)

var modeNames = [...]string{Once: "once", Repeat: "repeat", OnMount: "mount"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText accepts the names produced by String.
func (m *Mode) UnmarshalText(b []byte) error {
	for i, name := range modeNames {
		if name == string(b) {
			*m = Mode(i)
			return nil
		}
	}
	return errors.Errorf("unknown reveal mode %q", b)
}

// DefaultThreshold is the fraction of a section that must be on screen.
const DefaultThreshold = 0.1

// Trigger is the visibility state of one section.
type Trigger struct {
	Threshold float64
	Mode      Mode

	visible bool
}

func NewTrigger(threshold float64, mode Mode) *Trigger {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Trigger{Threshold: threshold, Mode: mode, visible: mode == OnMount}
}

// Observe feeds one intersection ratio and returns the resulting visibility.
// A nil trigger (no such section) is a no-op.
func (t *Trigger) Observe(ratio float64) bool {
	if t == nil {
		return false
	}
	switch t.Mode {
	case OnMount:
		t.visible = true
	case Once:
		if !t.visible && ratio >= t.Threshold {
			t.visible = true
		}
	case Repeat:
		t.visible = ratio >= t.Threshold
	}
	return t.visible
}

// Visible reports the current state without observing.
func (t *Trigger) Visible() bool {
	return t != nil && t.visible
}

// Fired reports whether a once-only trigger has latched.
func (t *Trigger) Fired() bool {
	return t != nil && t.Mode != Repeat && t.visible
}

// Board holds the triggers of every section on a page for one visitor.
type Board struct {
	mu       sync.Mutex
	triggers map[string]*Trigger
}

func NewBoard() *Board {
	return &Board{triggers: make(map[string]*Trigger)}
}

// Register adds a section trigger. Registering an existing id keeps its state.
func (b *Board) Register(id string, threshold float64, mode Mode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.triggers[id]; ok {
		return
	}
	b.triggers[id] = NewTrigger(threshold, mode)
}

// Observe forwards ratio to the section's trigger. Unknown sections stay invisible.
func (b *Board) Observe(id string, ratio float64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.triggers[id].Observe(ratio)
}

func (b *Board) Visible(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.triggers[id].Visible()
}

// Revealed lists the sections whose trigger has latched, sorted for stable storage.
// Repeat-mode sections are not persisted: they re-evaluate on every observation.
func (b *Board) Revealed() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	var ids []string
	for id, t := range b.triggers {
		if t.Fired() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Restore latches the named once-only sections. Unknown ids are ignored.
func (b *Board) Restore(ids []string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, id := range ids {
		if t, ok := b.triggers[id]; ok && t.Mode == Once {
			t.visible = true
		}
	}
}
