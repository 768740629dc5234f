package mentor_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/manduvi/mentor-tui/sdk/mentor"
)

// testServer is a mock backend implementing the Mentor API for testing
type testServer struct {
	server *httptest.Server
	mu     sync.Mutex
	xp     map[string]int // sessionId -> xp total
	agents map[string]mentor.AgentConfig
	apiKey string
}

func newTestServer() *testServer {
	ts := &testServer{
		xp: make(map[string]int),
		agents: map[string]mentor.AgentConfig{
			"tutor": {
				Name:        "Tutor",
				Model:       "gpt-4o-mini",
				Temperature: 0.7,
				MaxTokens:   2000,
			},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", ts.handleHealth)
	mux.HandleFunc("/api/chat", ts.handleChat)
	mux.HandleFunc("/api/progress", ts.handleProgress)
	mux.HandleFunc("/api/agents", ts.handleAgents)
	mux.HandleFunc("/api/agents/config", ts.handleAgentConfig)
	mux.HandleFunc("/api/config/api-key", ts.handleAPIKey)
	mux.HandleFunc("/api/debug/retriever", ts.handleRetriever)

	ts.server = httptest.NewServer(mux)
	return ts
}

func (ts *testServer) Close() {
	ts.server.Close()
}

func (ts *testServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(mentor.HealthResponse{OK: true})
}

func (ts *testServer) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req mentor.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Campo 'message' é obrigatório."})
		return
	}

	ts.mu.Lock()
	ts.xp[req.SessionID] += 5
	total := ts.xp[req.SessionID]
	ts.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(mentor.ChatResponse{
		Reply:     "Oi!",
		XPAwarded: mentor.Int(5),
		TotalXP:   mentor.Int(total),
		Progress: &mentor.ChatProgress{
			Goal: 300,
			PathPosition: mentor.PathPosition{
				Level:    0,
				Label:    "Diagnóstico",
				XPToNext: 50 - total,
			},
		},
	})
}

func (ts *testServer) handleProgress(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")

	ts.mu.Lock()
	total := ts.xp[sessionID]
	ts.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(mentor.ProgressSnapshot{
		XP:   total,
		Goal: 300,
		PathPosition: mentor.PathPosition{
			Level: 0,
			Label: "Diagnóstico",
		},
		RecentEvents: []mentor.Event{
			{Type: "xp", Payload: mentor.EventPayload{XP: mentor.Int(5), Reason: "chat"}},
		},
	})
}

func (ts *testServer) handleAgents(w http.ResponseWriter, r *http.Request) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(mentor.AgentsResponse{Agents: ts.agents})
}

func (ts *testServer) handleAgentConfig(w http.ResponseWriter, r *http.Request) {
	var cfg mentor.AgentConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	ts.mu.Lock()
	ts.agents[cfg.AgentID] = cfg
	ts.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

func (ts *testServer) handleAPIKey(w http.ResponseWriter, r *http.Request) {
	var req mentor.APIKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.APIKey == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "chave vazia"})
		return
	}

	ts.mu.Lock()
	ts.apiKey = req.APIKey
	ts.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

func (ts *testServer) handleRetriever(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(mentor.RetrieverResponse{
		Query: q,
		K:     5,
		Hits: []mentor.SourceHit{
			{Source: "trilhas/fundamentos.md", Score: mentor.Float(0.8123), Snippet: "..."},
		},
	})
}

func TestChat(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	client := mentor.NewClient(srv.server.URL)
	ctx := context.Background()

	t.Run("successful reply with progress", func(t *testing.T) {
		resp, err := client.Chat(ctx, &mentor.ChatRequest{
			Message:   "Olá",
			SessionID: "S1",
			AgentID:   "tutor",
		})
		if err != nil {
			t.Fatalf("Chat() error = %v", err)
		}

		if resp.Reply != "Oi!" {
			t.Errorf("expected reply 'Oi!', got %q", resp.Reply)
		}
		if resp.XPAwarded == nil || *resp.XPAwarded != 5 {
			t.Errorf("expected 5 XP awarded, got %v", resp.XPAwarded)
		}

		snap := resp.Snapshot()
		if snap == nil {
			t.Fatal("expected embedded progress snapshot")
		}
		if snap.XP != 5 {
			t.Errorf("expected total XP 5, got %d", snap.XP)
		}
		if snap.PathPosition.Label != "Diagnóstico" {
			t.Errorf("expected label 'Diagnóstico', got %q", snap.PathPosition.Label)
		}
	})

	t.Run("empty message rejected with detail", func(t *testing.T) {
		_, err := client.Chat(ctx, &mentor.ChatRequest{SessionID: "S1", AgentID: "tutor"})
		if err == nil {
			t.Fatal("expected error for empty message")
		}

		var apiErr *mentor.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError, got %T", err)
		}
		if apiErr.Kind != mentor.KindStatus {
			t.Errorf("expected KindStatus, got %v", apiErr.Kind)
		}
		if apiErr.StatusCode != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", apiErr.StatusCode)
		}
		if apiErr.Detail != "Campo 'message' é obrigatório." {
			t.Errorf("unexpected detail: %q", apiErr.Detail)
		}
	})
}

func TestChatErrorClassification(t *testing.T) {
	t.Run("server error without body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := mentor.NewClient(srv.URL)
		_, err := client.Chat(context.Background(), &mentor.ChatRequest{Message: "Olá"})
		if mentor.KindOf(err) != mentor.KindStatus {
			t.Errorf("expected KindStatus, got %v", mentor.KindOf(err))
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		client := mentor.NewClient(srv.URL)
		_, err := client.Chat(context.Background(), &mentor.ChatRequest{Message: "Olá"})
		if mentor.KindOf(err) != mentor.KindDecode {
			t.Errorf("expected KindDecode, got %v", mentor.KindOf(err))
		}
	})

	t.Run("unreachable server", func(t *testing.T) {
		client := mentor.NewClient("http://127.0.0.1:1")
		_, err := client.Chat(context.Background(), &mentor.ChatRequest{Message: "Olá"})
		if mentor.KindOf(err) != mentor.KindNetwork {
			t.Errorf("expected KindNetwork, got %v", mentor.KindOf(err))
		}
	})
}

func TestProgress(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	client := mentor.NewClient(srv.server.URL)
	ctx := context.Background()

	if _, err := client.Chat(ctx, &mentor.ChatRequest{Message: "Olá", SessionID: "S2", AgentID: "tutor"}); err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	snap, err := client.Progress(ctx, "S2", "tutor")
	if err != nil {
		t.Fatalf("Progress() error = %v", err)
	}

	if snap.XP != 5 {
		t.Errorf("expected XP 5, got %d", snap.XP)
	}
	if snap.Goal != 300 {
		t.Errorf("expected goal 300, got %d", snap.Goal)
	}
	if len(snap.RecentEvents) != 1 || snap.RecentEvents[0].Type != "xp" {
		t.Errorf("unexpected events: %+v", snap.RecentEvents)
	}
}

func TestAgentConfig(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	client := mentor.NewClient(srv.server.URL)
	ctx := context.Background()

	t.Run("list agents", func(t *testing.T) {
		agents, err := client.Agents(ctx)
		if err != nil {
			t.Fatalf("Agents() error = %v", err)
		}
		if _, ok := agents["tutor"]; !ok {
			t.Error("expected 'tutor' agent in response")
		}
	})

	t.Run("save config round trip", func(t *testing.T) {
		cfg := &mentor.AgentConfig{
			AgentID:     "planner",
			Name:        "Planejador",
			Model:       "gpt-4o-mini",
			Temperature: 0.4,
			MaxTokens:   1500,
			RAGK:        6,
		}
		if err := client.SaveAgentConfig(ctx, cfg); err != nil {
			t.Fatalf("SaveAgentConfig() error = %v", err)
		}

		agents, err := client.Agents(ctx)
		if err != nil {
			t.Fatalf("Agents() error = %v", err)
		}
		if agents["planner"].Name != "Planejador" {
			t.Errorf("expected saved config, got %+v", agents["planner"])
		}
	})

	t.Run("save api key", func(t *testing.T) {
		if err := client.SaveAPIKey(ctx, "sk-test", false); err != nil {
			t.Fatalf("SaveAPIKey() error = %v", err)
		}
	})
}

func TestSearchRetriever(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	client := mentor.NewClient(srv.server.URL)

	resp, err := client.SearchRetriever(context.Background(), "trilha", 5)
	if err != nil {
		t.Fatalf("SearchRetriever() error = %v", err)
	}

	if resp.Query != "trilha" {
		t.Errorf("expected query echoed back, got %q", resp.Query)
	}
	if len(resp.Hits) != 1 || resp.Hits[0].Source != "trilhas/fundamentos.md" {
		t.Errorf("unexpected hits: %+v", resp.Hits)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	client := mentor.NewClient(srv.server.URL)
	if err := client.Health(context.Background()); err != nil {
		t.Errorf("Health() error = %v", err)
	}
}
