package models

import "time"

// Role identifies the speaker of a turn
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// WireName returns the role name used in generateContent requests.
// The API calls the assistant side "model".
func (r Role) WireName() string {
	if r == RoleAssistant {
		return "model"
	}
	return string(r)
}

// Turn is one message of a conversation, tagged with its speaker.
// Turns are values; the session never hands out pointers into its history.
type Turn struct {
	Role      Role
	Text      string
	CreatedAt time.Time
}

// NewUserTurn creates a user turn stamped with the current time
func NewUserTurn(text string) Turn {
	return Turn{Role: RoleUser, Text: text, CreatedAt: time.Now()}
}

// NewAssistantTurn creates an assistant turn stamped with the current time
func NewAssistantTurn(text string) Turn {
	return Turn{Role: RoleAssistant, Text: text, CreatedAt: time.Now()}
}
