package progress

import "github.com/manduvi/mentor-tui/sdk/mentor"

// Tracker keeps the last computed view so surfaces that were hidden
// when a snapshot arrived can re-render it on demand, and detects
// level-ups across successive renders.
//
// A level-up fires at most once per render and only when the resolved
// level climbs past every level seen before: re-rendering the same
// snapshot, or a stale lower one, never re-fires it.
type Tracker struct {
	view      View
	rendered  bool
	highLevel int
}

// NewTracker returns a tracker with no rendered view.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Advance computes the view for snap, caches it, and reports whether
// this render crossed into a new level.
func (t *Tracker) Advance(snap *mentor.ProgressSnapshot) (View, bool) {
	view := ComputeView(snap)

	leveledUp := t.rendered && view.Level.Level > t.highLevel
	if !t.rendered || view.Level.Level > t.highLevel {
		t.highLevel = view.Level.Level
	}

	t.view = view
	t.rendered = true
	return view, leveledUp
}

// Last returns the cached view, if any snapshot has been rendered.
func (t *Tracker) Last() (View, bool) {
	return t.view, t.rendered
}
