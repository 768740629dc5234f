// Package mock implements a local stand-in for the Mentor Virtual
// backend so the TUI can run without it: canned tutor replies, an
// in-memory XP/progress store with the real progression rules, agent
// configs and retriever fixtures.
package mock

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/manduvi/mentor-tui/internal/progress"
	"github.com/manduvi/mentor-tui/sdk/mentor"
)

// XP awards per chat turn.
const (
	awardMessage  = 5
	awardQuestion = 8
)

// badgeFloors mirrors the backend's badge thresholds.
var badgeFloors = []struct {
	xp   int
	name string
}{
	{50, "Bronze"},
	{100, "Prata"},
	{150, "Ouro"},
}

// profile is the per-session, per-agent progress state.
type profile struct {
	xp     int
	gaps   []string
	events []mentor.Event
}

// Server is the mock backend.
type Server struct {
	mu       sync.Mutex
	profiles map[string]*profile
	agents   map[string]mentor.AgentConfig
	apiKey   string
}

// NewServer creates a mock backend with the default personas.
func NewServer() *Server {
	return &Server{
		profiles: make(map[string]*profile),
		agents: map[string]mentor.AgentConfig{
			"tutor": {
				Name:         "Mentor",
				Model:        "gpt-4o-mini",
				Temperature:  0.7,
				MaxTokens:    2000,
				EmbedModel:   "text-embedding-3-large",
				RAGK:         6,
				RAGChunkSize: 800,
				RAGOverlap:   150,
				ToolsEnabled: true,
				SystemPrompt: "Seja útil e claro.",
			},
			"planner": {
				Name:        "Planejador de Estudos",
				Model:       "gpt-4o-mini",
				Temperature: 0.4,
				MaxTokens:   1500,
				RAGK:        4,
			},
			"helper": {
				Name:        "Ajudante de Conceitos",
				Model:       "gpt-4o-mini",
				Temperature: 0.6,
				MaxTokens:   1200,
				RAGK:        4,
			},
		},
	}
}

// Handler returns the HTTP handler for the mock API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Post("/api/chat", s.handleChat)
	r.Get("/api/progress", s.handleProgress)
	r.Get("/api/agents", s.handleAgents)
	r.Post("/api/agents/config", s.handleAgentConfig)
	r.Post("/api/config/api-key", s.handleAPIKey)
	r.Get("/api/debug/retriever", s.handleRetriever)

	return r
}

// ListenAndServe runs the mock backend on the given port.
func (s *Server) ListenAndServe(port int) error {
	return http.ListenAndServe(fmt.Sprintf(":%d", port), s.Handler())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mentor.HealthResponse{OK: true})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req mentor.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido.")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "Campo 'message' é obrigatório.")
		return
	}

	agentID := req.AgentID
	if agentID == "" {
		agentID = "tutor"
	}

	award := awardMessage
	if strings.Contains(req.Message, "?") {
		award = awardQuestion
	}

	s.mu.Lock()
	p := s.profile(req.SessionID, agentID)
	p.xp += award
	p.gaps = detectGaps(req.Message, p.gaps)
	p.events = append(p.events, mentor.Event{
		Type:      "xp",
		Payload:   mentor.EventPayload{XP: mentor.Int(award), Reason: "interação com o mentor"},
		Timestamp: time.Now().Format(time.RFC3339),
	})
	snap := s.snapshot(p)
	s.mu.Unlock()

	reply, nextTask, sources := replyFor(req.Message, agentID)

	resp := mentor.ChatResponse{
		Reply:     reply,
		Sources:   sources,
		XPAwarded: mentor.Int(award),
		TotalXP:   mentor.Int(snap.XP),
		Badges:    snap.Badges,
		Progress: &mentor.ChatProgress{
			Goal:         snap.Goal,
			PathPosition: snap.PathPosition,
			Gaps:         snap.Gaps,
			RecentEvents: snap.RecentEvents,
		},
	}
	if nextTask != "" {
		resp.NextTask = mentor.String(nextTask)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	agentID := r.URL.Query().Get("agentId")
	if agentID == "" {
		agentID = "tutor"
	}

	s.mu.Lock()
	snap := s.snapshot(s.profile(sessionID, agentID))
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	agents := make(map[string]mentor.AgentConfig, len(s.agents))
	for id, cfg := range s.agents {
		agents[id] = cfg
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, mentor.AgentsResponse{Agents: agents})
}

func (s *Server) handleAgentConfig(w http.ResponseWriter, r *http.Request) {
	var cfg mentor.AgentConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido.")
		return
	}
	if cfg.AgentID == "" {
		writeError(w, http.StatusBadRequest, "Campo 'agent_id' é obrigatório.")
		return
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		writeError(w, http.StatusBadRequest, "Temperatura deve estar entre 0 e 2.")
		return
	}

	s.mu.Lock()
	s.agents[cfg.AgentID] = cfg
	s.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleAPIKey(w http.ResponseWriter, r *http.Request) {
	var req mentor.APIKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.APIKey == "" {
		writeError(w, http.StatusBadRequest, "Campo 'apiKey' é obrigatório.")
		return
	}

	s.mu.Lock()
	s.apiKey = req.APIKey
	s.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleRetriever(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	k, err := strconv.Atoi(r.URL.Query().Get("k"))
	if err != nil || k <= 0 {
		k = 5
	}

	hits := retrieverFixtures(q)
	if len(hits) > k {
		hits = hits[:k]
	}

	writeJSON(w, http.StatusOK, mentor.RetrieverResponse{Query: q, K: k, Hits: hits})
}

// profile returns the state for a session/agent pair, creating it on
// first use. Callers must hold the lock.
func (s *Server) profile(sessionID, agentID string) *profile {
	key := sessionID + "/" + agentID
	p, ok := s.profiles[key]
	if !ok {
		p = &profile{}
		s.profiles[key] = p
	}
	return p
}

// snapshot builds the wire snapshot for a profile. Callers must hold
// the lock.
func (s *Server) snapshot(p *profile) *mentor.ProgressSnapshot {
	level := progress.ResolveLevel(p.xp, progress.Thresholds)

	xpToNext := 0
	if level.Level+1 < len(progress.Thresholds) {
		xpToNext = progress.Thresholds[level.Level+1].XPFloor - p.xp
		if xpToNext < 0 {
			xpToNext = 0
		}
	}

	badges := []string{}
	for _, b := range badgeFloors {
		if p.xp >= b.xp {
			badges = append(badges, b.name)
		}
	}

	events := p.events
	if len(events) > 10 {
		events = events[len(events)-10:]
	}

	return &mentor.ProgressSnapshot{
		XP:     p.xp,
		Goal:   progress.DefaultGoal,
		Badges: badges,
		PathPosition: mentor.PathPosition{
			Level:    level.Level,
			Label:    level.Label,
			XPToNext: xpToNext,
		},
		Gaps:         p.gaps,
		RecentEvents: events,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
