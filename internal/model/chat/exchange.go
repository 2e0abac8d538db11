package chat

import "time"

// Source tells which path produced a bot reply.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Exchange is one visitor message paired with the bot reply it received.
type Exchange struct {
	ID        string    `json:"id"`
	UserText  string    `json:"user"`
	BotText   string    `json:"bot"`
	Category  string    `json:"scenario,omitempty"`
	Source    Source    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}
