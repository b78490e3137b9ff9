package agent_models

import "time"

// MaxQueryHistory caps how many raw queries a conversation remembers.
const MaxQueryHistory = 10

// Preferences accumulates what a user has asked for across a conversation:
// the last non-zero budget, every distinct destination mentioned (insertion
// order), and the last travel type.
type Preferences struct {
	Budget       int      `json:"budget,omitempty"`
	Destinations []string `json:"destinations,omitempty"`
	TravelType   string   `json:"travelType,omitempty"`
}

// ConversationContext is the per-conversation state the agent keeps between
// messages. It lives only in the session store; a process restart loses it
// unless the redis backend is configured.
type ConversationContext struct {
	ConversationID string       `json:"conversationId"`
	Queries        []string     `json:"queries"`
	LastParsed     *ParsedQuery `json:"lastParsed,omitempty"`
	Preferences    Preferences  `json:"preferences"`
	Timestamp      time.Time    `json:"timestamp"`
}

// NewConversationContext returns a fresh, empty context.
func NewConversationContext(conversationID string) *ConversationContext {
	return &ConversationContext{
		ConversationID: conversationID,
		Queries:        []string{},
		Timestamp:      time.Now(),
	}
}

// ExpiredAt reports whether the context has been idle longer than timeout as
// of now.
func (c *ConversationContext) ExpiredAt(now time.Time, timeout time.Duration) bool {
	return now.Sub(c.Timestamp) > timeout
}
