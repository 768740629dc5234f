package mock_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/manduvi/mentor-tui/internal/mock"
	"github.com/manduvi/mentor-tui/sdk/mentor"
)

func newTestClient(t *testing.T) *mentor.Client {
	t.Helper()
	srv := httptest.NewServer(mock.NewServer().Handler())
	t.Cleanup(srv.Close)
	return mentor.NewClient(srv.URL)
}

func TestChatAwardsXP(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	resp, err := client.Chat(ctx, &mentor.ChatRequest{Message: "Olá", SessionID: "s1", AgentID: "tutor"})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if resp.Reply == "" {
		t.Error("expected a reply")
	}
	if resp.XPAwarded == nil || *resp.XPAwarded != 5 {
		t.Errorf("XPAwarded = %v, want 5", resp.XPAwarded)
	}
	if resp.TotalXP == nil || *resp.TotalXP != 5 {
		t.Errorf("TotalXP = %v, want 5", resp.TotalXP)
	}

	// Questions earn a bigger award.
	resp, err = client.Chat(ctx, &mentor.ChatRequest{Message: "O que é fração?", SessionID: "s1", AgentID: "tutor"})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if resp.XPAwarded == nil || *resp.XPAwarded != 8 {
		t.Errorf("XPAwarded = %v, want 8", resp.XPAwarded)
	}
	if resp.TotalXP == nil || *resp.TotalXP != 13 {
		t.Errorf("TotalXP = %v, want 13", resp.TotalXP)
	}
	if len(resp.Sources) == 0 {
		t.Error("expected sources for a content question")
	}
	if resp.Progress == nil {
		t.Fatal("expected progress details")
	}
	if got := resp.Progress.Gaps; len(got) != 1 || got[0] != "frações" {
		t.Errorf("Gaps = %v, want [frações]", got)
	}
}

func TestChatRequiresMessage(t *testing.T) {
	client := newTestClient(t)

	_, err := client.Chat(context.Background(), &mentor.ChatRequest{SessionID: "s1"})
	if err == nil {
		t.Fatal("expected error for empty message")
	}
	if kind := mentor.KindOf(err); kind != mentor.KindStatus {
		t.Errorf("KindOf = %v, want KindStatus", kind)
	}
}

func TestProgressIsolatedPerSession(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	if _, err := client.Chat(ctx, &mentor.ChatRequest{Message: "Olá", SessionID: "a", AgentID: "tutor"}); err != nil {
		t.Fatalf("Chat: %v", err)
	}

	snapA, err := client.Progress(ctx, "a", "tutor")
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if snapA.XP != 5 {
		t.Errorf("session a XP = %d, want 5", snapA.XP)
	}
	if snapA.Goal != 300 {
		t.Errorf("Goal = %d, want 300", snapA.Goal)
	}
	if snapA.PathPosition.Label != "Diagnóstico" {
		t.Errorf("Label = %q, want Diagnóstico", snapA.PathPosition.Label)
	}

	snapB, err := client.Progress(ctx, "b", "tutor")
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if snapB.XP != 0 {
		t.Errorf("session b XP = %d, want 0", snapB.XP)
	}
}

func TestBadgesUnlockAtFloors(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// 10 plain messages put the session at 50 XP.
	for i := 0; i < 10; i++ {
		if _, err := client.Chat(ctx, &mentor.ChatRequest{Message: "continuar", SessionID: "s", AgentID: "tutor"}); err != nil {
			t.Fatalf("Chat: %v", err)
		}
	}

	snap, err := client.Progress(ctx, "s", "tutor")
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if snap.XP != 50 {
		t.Fatalf("XP = %d, want 50", snap.XP)
	}
	if len(snap.Badges) != 1 || snap.Badges[0] != "Bronze" {
		t.Errorf("Badges = %v, want [Bronze]", snap.Badges)
	}
	if snap.PathPosition.Level != 1 || snap.PathPosition.Label != "Fundamentos" {
		t.Errorf("PathPosition = %+v, want level 1 Fundamentos", snap.PathPosition)
	}
}

func TestAgentConfigRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	agents, err := client.Agents(ctx)
	if err != nil {
		t.Fatalf("Agents: %v", err)
	}
	if _, ok := agents["tutor"]; !ok {
		t.Fatal("expected tutor agent in defaults")
	}

	cfg := agents["tutor"]
	cfg.AgentID = "tutor"
	cfg.Temperature = 0.3
	if err := client.SaveAgentConfig(ctx, &cfg); err != nil {
		t.Fatalf("SaveAgentConfig: %v", err)
	}

	agents, err = client.Agents(ctx)
	if err != nil {
		t.Fatalf("Agents: %v", err)
	}
	if got := agents["tutor"].Temperature; got != 0.3 {
		t.Errorf("Temperature = %v, want 0.3", got)
	}

	cfg.Temperature = 3.5
	if err := client.SaveAgentConfig(ctx, &cfg); err == nil {
		t.Error("expected error for out-of-range temperature")
	}
}

func TestRetrieverEndpoint(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	resp, err := client.SearchRetriever(ctx, "frações", 2)
	if err != nil {
		t.Fatalf("SearchRetriever: %v", err)
	}
	if len(resp.Hits) != 2 {
		t.Errorf("len(Hits) = %d, want 2 (k cap)", len(resp.Hits))
	}

	resp, err = client.SearchRetriever(ctx, "xyzzy", 5)
	if err != nil {
		t.Fatalf("SearchRetriever: %v", err)
	}
	if len(resp.Hits) != 0 {
		t.Errorf("len(Hits) = %d, want 0 for unknown query", len(resp.Hits))
	}
}
