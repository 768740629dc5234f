// Package mentor provides a Go SDK for the Mentor Virtual backend API.
//
// The client wraps the JSON endpoints consumed by the tutoring UI:
// chat, progress, agent configuration, retriever debug search and
// health. Failures are classified into a small taxonomy (see Kind) so
// callers can branch without string matching.
//
// Example usage:
//
//	client := mentor.NewClient("http://localhost:8000")
//
//	resp, err := client.Chat(ctx, &mentor.ChatRequest{
//	    Message:   "Olá",
//	    SessionID: sessionID,
//	    AgentID:   "tutor",
//	})
package mentor

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
	AgentID   string `json:"agentId"`
}

// SourceHit is a retrieved document reference. Score and Snippet are
// only populated by the retriever debug endpoint; chat citations may
// carry just the source name.
type SourceHit struct {
	Source  string   `json:"source"`
	Score   *float64 `json:"score,omitempty"`
	Snippet string   `json:"snippet,omitempty"`
}

// PathPosition locates the student on the learning path.
type PathPosition struct {
	Level    int    `json:"level"`
	Label    string `json:"label"`
	XPToNext int    `json:"xpToNext"`
}

// EventPayload carries the tag-specific fields of an Event. For "xp"
// events XP and Reason are set; for "grade" events Score is set.
type EventPayload struct {
	XP     *int     `json:"xp,omitempty"`
	Reason string   `json:"reason,omitempty"`
	Score  *float64 `json:"score,omitempty"`
}

// Event is one entry of a progress event log. Type is an open tag:
// unrecognized tags are kept as-is and rendered generically.
type Event struct {
	Type      string       `json:"type"`
	Payload   EventPayload `json:"payload"`
	Timestamp string       `json:"timestamp,omitempty"`
}

// ProgressSnapshot is a complete, replace-only progress payload. The
// client never patches one; each snapshot fully supersedes the last.
type ProgressSnapshot struct {
	XP           int          `json:"xp"`
	Goal         int          `json:"goal"`
	Badges       []string     `json:"badges"`
	PathPosition PathPosition `json:"pathPosition"`
	Gaps         []string     `json:"gaps"`
	RecentEvents []Event      `json:"recentEvents"`
	Awarded      int          `json:"awarded,omitempty"`
}

// ChatProgress is the partial progress block embedded in a chat reply.
type ChatProgress struct {
	Goal         int          `json:"goal"`
	PathPosition PathPosition `json:"pathPosition"`
	Gaps         []string     `json:"gaps,omitempty"`
	RecentEvents []Event      `json:"recentEvents,omitempty"`
}

// ChatResponse is the body of a successful POST /api/chat.
type ChatResponse struct {
	Reply     string        `json:"reply"`
	Sources   []SourceHit   `json:"sources,omitempty"`
	XPAwarded *int          `json:"xpAwarded,omitempty"`
	NextTask  *string       `json:"nextTask,omitempty"`
	TotalXP   *int          `json:"totalXp,omitempty"`
	Progress  *ChatProgress `json:"progress,omitempty"`
	Badges    []string      `json:"badges,omitempty"`
}

// Snapshot assembles a full ProgressSnapshot from the progress fields
// embedded in a chat reply. Returns nil when the reply carried none.
func (r *ChatResponse) Snapshot() *ProgressSnapshot {
	if r.TotalXP == nil && r.Progress == nil {
		return nil
	}

	snap := &ProgressSnapshot{Badges: r.Badges}
	if r.TotalXP != nil {
		snap.XP = *r.TotalXP
	}
	if r.XPAwarded != nil {
		snap.Awarded = *r.XPAwarded
	}
	if r.Progress != nil {
		snap.Goal = r.Progress.Goal
		snap.PathPosition = r.Progress.PathPosition
		snap.Gaps = r.Progress.Gaps
		snap.RecentEvents = r.Progress.RecentEvents
	}
	return snap
}

// AgentConfig is the tunable configuration of one backend persona.
// Field names follow the backend's snake_case wire format.
type AgentConfig struct {
	AgentID      string  `json:"agent_id,omitempty"`
	Name         string  `json:"name"`
	Model        string  `json:"model"`
	Temperature  float64 `json:"temperature"`
	MaxTokens    int     `json:"max_tokens"`
	EmbedModel   string  `json:"embed_model"`
	RAGK         int     `json:"rag_k"`
	RAGChunkSize int     `json:"rag_chunk_size"`
	RAGOverlap   int     `json:"rag_overlap"`
	ToolsEnabled bool    `json:"tools_enabled"`
	SystemPrompt string  `json:"system_prompt"`
}

// AgentsResponse is the body of GET /api/agents.
type AgentsResponse struct {
	Agents map[string]AgentConfig `json:"agents"`
}

// APIKeyRequest is the body of POST /api/config/api-key.
type APIKeyRequest struct {
	APIKey  string `json:"apiKey"`
	Persist bool   `json:"persist"`
}

// RetrieverResponse is the body of GET /api/debug/retriever.
type RetrieverResponse struct {
	Query string      `json:"query"`
	K     int         `json:"k"`
	Hits  []SourceHit `json:"hits"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	OK bool `json:"ok"`
}

// String creates a string pointer (helper for optional fields).
func String(s string) *string {
	return &s
}

// Int creates an int pointer (helper for optional fields).
func Int(i int) *int {
	return &i
}

// Float creates a float64 pointer (helper for optional fields).
func Float(f float64) *float64 {
	return &f
}
