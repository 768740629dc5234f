package session

import "testing"

func TestNew(t *testing.T) {
	a := New()
	b := New()

	if a.ID() == "" {
		t.Fatal("expected non-empty session ID")
	}
	if a.ID() == b.ID() {
		t.Error("expected distinct session IDs per context")
	}
	if a.AgentID() != DefaultAgentID {
		t.Errorf("expected default agent %q, got %q", DefaultAgentID, a.AgentID())
	}
}

func TestSelectAgent(t *testing.T) {
	c := New()

	c.SelectAgent("planner")
	if c.AgentID() != "planner" {
		t.Errorf("expected 'planner', got %q", c.AgentID())
	}

	c.SelectAgent("")
	if c.AgentID() != "planner" {
		t.Error("blank agent ID should be ignored")
	}
}
