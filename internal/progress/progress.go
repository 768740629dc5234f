// Package progress implements the XP/leveling engine: a static level
// threshold table, a pure view computation over progress snapshots, and
// a tracker that caches the last rendered view and detects level-ups.
package progress

import (
	"fmt"

	"github.com/manduvi/mentor-tui/sdk/mentor"
)

// DefaultGoal is assumed when a snapshot carries no XP goal.
const DefaultGoal = 300

// MaxMissions caps how many knowledge gaps render as missions.
const MaxMissions = 3

// Threshold maps an XP floor to a position on the learning path.
type Threshold struct {
	Level   int
	Label   string
	XPFloor int
}

// Thresholds is the learning path, ascending in both level and floor.
// Floors sit every 50 XP, matching the backend's progression.
var Thresholds = []Threshold{
	{Level: 0, Label: "Diagnóstico", XPFloor: 0},
	{Level: 1, Label: "Fundamentos", XPFloor: 50},
	{Level: 2, Label: "Prática Guiada", XPFloor: 100},
	{Level: 3, Label: "Desafios Avançados", XPFloor: 150},
	{Level: 4, Label: "Mentoria", XPFloor: 200},
}

// ResolveLevel returns the highest threshold whose floor is at or below
// xp. The zero-floor entry guarantees a match, so the function is total
// and monotone non-decreasing in xp.
func ResolveLevel(xp int, thresholds []Threshold) Threshold {
	resolved := thresholds[0]
	for _, th := range thresholds {
		if th.XPFloor <= xp {
			resolved = th
		}
	}
	return resolved
}

// View is everything the progress surfaces render: header counter,
// sidebar, profile panel and missions all draw from the same view, so
// re-applying it is idempotent by construction.
type View struct {
	XP       int
	Goal     int
	Percent  float64 // 0..100
	Level    Threshold
	XPToNext int // 0 at the top level
	Badges   []string
	Missions []string
	Events   []string
}

// ComputeView derives the display view from a snapshot. Pure: no I/O,
// no mutation of the snapshot.
func ComputeView(snap *mentor.ProgressSnapshot) View {
	goal := snap.Goal
	if goal == 0 {
		goal = DefaultGoal
	}

	level := ResolveLevel(snap.XP, Thresholds)

	xpToNext := 0
	if level.Level+1 < len(Thresholds) {
		xpToNext = Thresholds[level.Level+1].XPFloor - snap.XP
		if xpToNext < 0 {
			xpToNext = 0
		}
	}

	missions := snap.Gaps
	if len(missions) > MaxMissions {
		missions = missions[:MaxMissions]
	}

	events := make([]string, 0, len(snap.RecentEvents))
	for _, ev := range snap.RecentEvents {
		events = append(events, FormatEvent(ev))
	}

	return View{
		XP:       snap.XP,
		Goal:     goal,
		Percent:  Percentage(snap.XP, goal),
		Level:    level,
		XPToNext: xpToNext,
		Badges:   snap.Badges,
		Missions: missions,
		Events:   events,
	}
}

// Percentage converts an XP total into progress toward the goal,
// clamped to [0, 100]. A goal of zero or less yields 0 rather than a
// division by zero.
func Percentage(xp, goal int) float64 {
	if goal <= 0 || xp <= 0 {
		return 0
	}
	percent := float64(xp) / float64(goal) * 100
	if percent > 100 {
		return 100
	}
	return percent
}

// FormatEvent renders one progress event by its tag. Unknown tags fall
// back to the raw tag name.
func FormatEvent(ev mentor.Event) string {
	switch ev.Type {
	case "xp":
		xp := 0
		if ev.Payload.XP != nil {
			xp = *ev.Payload.XP
		}
		if ev.Payload.Reason != "" {
			return fmt.Sprintf("%+d XP (%s)", xp, ev.Payload.Reason)
		}
		return fmt.Sprintf("%+d XP", xp)
	case "grade":
		score := 0.0
		if ev.Payload.Score != nil {
			score = *ev.Payload.Score
		}
		return fmt.Sprintf("Nota %.1f", score)
	default:
		return ev.Type
	}
}
