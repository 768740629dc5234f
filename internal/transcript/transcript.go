// Package transcript models the chat history: an in-memory,
// append-only list of entries for the lifetime of the run. Typing
// placeholders are tagged explicitly so their removal is type-checked
// instead of inferred from position.
package transcript

import (
	"time"

	"github.com/manduvi/mentor-tui/sdk/mentor"
)

// Author identifies who produced an entry.
type Author int

const (
	AuthorUser Author = iota
	AuthorAssistant
)

// Entry is one transcript item.
type Entry struct {
	Text          string
	Author        Author
	Sources       []mentor.SourceHit
	XPAwarded     *int
	NextTask      string
	IsPlaceholder bool
	Time          time.Time
}

// Meta carries the optional annotations of an assistant reply.
type Meta struct {
	Sources   []mentor.SourceHit
	XPAwarded *int
	NextTask  string
}

// Transcript is the append-only message history.
type Transcript struct {
	entries []Entry
}

// New returns an empty transcript.
func New() *Transcript {
	return &Transcript{}
}

// AppendUser appends a user message.
func (t *Transcript) AppendUser(text string) {
	t.entries = append(t.entries, Entry{
		Text:   text,
		Author: AuthorUser,
		Time:   time.Now(),
	})
}

// AppendAssistant appends an assistant reply with its annotations.
func (t *Transcript) AppendAssistant(text string, meta Meta) {
	t.entries = append(t.entries, Entry{
		Text:      text,
		Author:    AuthorAssistant,
		Sources:   meta.Sources,
		XPAwarded: meta.XPAwarded,
		NextTask:  meta.NextTask,
		Time:      time.Now(),
	})
}

// ShowTyping appends a typing placeholder entry.
func (t *Transcript) ShowTyping() {
	t.entries = append(t.entries, Entry{
		Author:        AuthorAssistant,
		IsPlaceholder: true,
		Time:          time.Now(),
	})
}

// ClearTyping removes the most recent entry when it is a typing
// placeholder. On an empty transcript, or when the last entry is a
// real message, it is a no-op; that guards the double-removal race
// between the error and success cleanup paths. Reports whether an
// entry was removed.
func (t *Transcript) ClearTyping() bool {
	n := len(t.entries)
	if n == 0 || !t.entries[n-1].IsPlaceholder {
		return false
	}
	t.entries = t.entries[:n-1]
	return true
}

// HasTyping reports whether the last entry is a typing placeholder.
func (t *Transcript) HasTyping() bool {
	n := len(t.entries)
	return n > 0 && t.entries[n-1].IsPlaceholder
}

// Entries returns the current history, oldest first.
func (t *Transcript) Entries() []Entry {
	return t.entries
}

// Len returns the number of entries, placeholders included.
func (t *Transcript) Len() int {
	return len(t.entries)
}
