// Package session holds the per-run identity of the student: an opaque
// session ID minted at startup and the currently selected tutor agent.
// Nothing here survives process exit; the backend keys its state by the
// session ID alone.
package session

import "github.com/google/uuid"

// DefaultAgentID is used until the user picks another persona.
const DefaultAgentID = "tutor"

// Context identifies one run of the client.
type Context struct {
	id      string
	agentID string
}

// New mints a fresh session context with a random ID.
func New() *Context {
	return &Context{
		id:      uuid.NewString(),
		agentID: DefaultAgentID,
	}
}

// ID returns the opaque session identifier.
func (c *Context) ID() string {
	return c.id
}

// AgentID returns the currently selected agent.
func (c *Context) AgentID() string {
	return c.agentID
}

// SelectAgent switches the active agent. Blank IDs are ignored.
func (c *Context) SelectAgent(agentID string) {
	if agentID == "" {
		return
	}
	c.agentID = agentID
}
