package tabs

import "testing"

func sections() Model {
	return New([]Tab{
		{ID: "chat", Title: "Chat"},
		{ID: "progress", Title: "Progresso"},
		{ID: "health", Title: "Saúde"},
	})
}

func TestSelect(t *testing.T) {
	m := sections()

	if id := m.Select(1); id != "progress" {
		t.Errorf("expected 'progress', got %q", id)
	}
	if id := m.Select(99); id != "progress" {
		t.Errorf("out-of-range select should keep active tab, got %q", id)
	}
	if id := m.SelectID("health"); id != "health" {
		t.Errorf("expected 'health', got %q", id)
	}
	if id := m.SelectID("missing"); id != "health" {
		t.Errorf("unknown ID should keep active tab, got %q", id)
	}
}

func TestNextPrevWrap(t *testing.T) {
	m := sections()

	m.Next()
	m.Next()
	if m.ActiveID() != "health" {
		t.Errorf("expected 'health', got %q", m.ActiveID())
	}
	if id := m.Next(); id != "chat" {
		t.Errorf("expected wrap to 'chat', got %q", id)
	}
	if id := m.Prev(); id != "health" {
		t.Errorf("expected wrap back to 'health', got %q", id)
	}
}
