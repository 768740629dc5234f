package transcript

import (
	"testing"

	"github.com/manduvi/mentor-tui/sdk/mentor"
)

func TestAppendOrder(t *testing.T) {
	tr := New()
	tr.AppendUser("Olá")
	tr.AppendAssistant("Oi!", Meta{XPAwarded: mentor.Int(5)})

	entries := tr.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Author != AuthorUser || entries[0].Text != "Olá" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Author != AuthorAssistant || entries[1].Text != "Oi!" {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
	if entries[1].XPAwarded == nil || *entries[1].XPAwarded != 5 {
		t.Errorf("expected XP annotation on reply, got %+v", entries[1].XPAwarded)
	}
}

func TestClearTyping(t *testing.T) {
	t.Run("empty transcript is a no-op", func(t *testing.T) {
		tr := New()
		if tr.ClearTyping() {
			t.Error("expected no-op on empty transcript")
		}
		if tr.Len() != 0 {
			t.Errorf("expected length 0, got %d", tr.Len())
		}
	})

	t.Run("removes only a placeholder", func(t *testing.T) {
		tr := New()
		tr.AppendUser("Olá")
		tr.ShowTyping()

		if !tr.HasTyping() {
			t.Fatal("expected typing placeholder")
		}
		if !tr.ClearTyping() {
			t.Error("expected placeholder removal")
		}
		if tr.Len() != 1 {
			t.Errorf("expected 1 entry after removal, got %d", tr.Len())
		}
	})

	t.Run("does not remove a real message", func(t *testing.T) {
		tr := New()
		tr.AppendUser("Olá")
		tr.AppendAssistant("Oi!", Meta{})

		if tr.ClearTyping() {
			t.Error("expected no-op when last entry is a real message")
		}
		if tr.Len() != 2 {
			t.Errorf("expected 2 entries, got %d", tr.Len())
		}
	})

	t.Run("double removal is safe", func(t *testing.T) {
		tr := New()
		tr.AppendUser("Olá")
		tr.ShowTyping()

		tr.ClearTyping()
		if tr.ClearTyping() {
			t.Error("second removal must be a no-op")
		}
		if tr.Len() != 1 {
			t.Errorf("expected 1 entry, got %d", tr.Len())
		}
	})
}
