// Package messages defines the tea.Msg types exchanged between the
// gateway commands and the app model.
package messages

import (
	"github.com/manduvi/mentor-tui/sdk/mentor"
)

// ChatReplyMsg is sent when a chat request succeeded.
type ChatReplyMsg struct {
	Seq   int
	Reply *mentor.ChatResponse
}

// ChatFailedMsg is sent when a chat request failed for any reason.
type ChatFailedMsg struct {
	Seq int
	Err error
}

// ProgressMsg carries a freshly fetched progress snapshot.
type ProgressMsg struct {
	Snapshot *mentor.ProgressSnapshot
}

// ProgressFailedMsg is sent when the progress fetch failed.
type ProgressFailedMsg struct {
	Err error
}

// AgentsLoadedMsg carries the backend persona configurations.
type AgentsLoadedMsg struct {
	Agents map[string]mentor.AgentConfig
}

// AgentsFailedMsg is sent when loading the personas failed.
type AgentsFailedMsg struct {
	Err error
}

// ConfigSavedMsg is sent after a successful agent config write.
type ConfigSavedMsg struct{}

// ConfigSaveFailedMsg is sent when the config write failed.
type ConfigSaveFailedMsg struct {
	Err error
}

// APIKeySavedMsg is sent after the API key was stored.
type APIKeySavedMsg struct {
	Persisted bool
}

// APIKeyFailedMsg is sent when storing the API key failed.
type APIKeyFailedMsg struct {
	Err error
}

// RetrieverMsg carries retriever debug search results.
type RetrieverMsg struct {
	Result *mentor.RetrieverResponse
}

// RetrieverFailedMsg is sent when the retriever query failed.
type RetrieverFailedMsg struct {
	Err error
}

// ProbeStatus is the outcome of one health probe.
type ProbeStatus int

const (
	ProbeUnknown ProbeStatus = iota
	ProbeOK
	ProbeEmpty
	ProbeFailed
)

// HealthReportMsg carries the server, embeddings and index probes run
// when the health section activates.
type HealthReportMsg struct {
	Server     ProbeStatus
	Embeddings ProbeStatus
	Index      ProbeStatus
}

// HealthCheckMsg is sent after the startup health probe.
type HealthCheckMsg struct {
	Healthy bool
	Err     error
}
