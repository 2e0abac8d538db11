package widget

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/independencecare/chatdesk/internal/analysis/keyword"
	"github.com/independencecare/chatdesk/internal/model/chat"
)

const (
	welcomeLine = "Great to meet you, %s! I've analyzed your request and I'm ready to help. What would you like to know more about?"
	clearedLine = "Chat cleared! How can I help you today?"
)

var ErrAlreadyRegistered = errors.New("profile already submitted")

// Registration is what the visitor sees right after the contact form is accepted.
type Registration struct {
	Profile chat.Profile
	Topic   keyword.Result
	Welcome string
	Initial Reply
}

// Snapshot is the exported conversation.
type Snapshot struct {
	Profile             *chat.Profile   `json:"profile"`
	Transcript          []chat.Exchange `json:"transcript"`
	ConversationStarted bool            `json:"conversation_started"`
	Timestamp           time.Time       `json:"timestamp"`
}

// Turn is the result of one Send: the recorded exchange and the full reply,
// suggestions included.
type Turn struct {
	Exchange chat.Exchange
	Reply    Reply
}

// Session holds one visitor's profile and transcript.
type Session struct {
	mu         sync.RWMutex
	responder  *Responder
	now        func() time.Time
	state      chat.State
	profile    chat.Profile
	transcript []chat.Exchange
}

// NewSession starts a session awaiting the contact form.
func NewSession(responder *Responder) *Session {
	return &Session{
		responder: responder,
		now:       time.Now,
		state:     chat.AwaitingProfile,
	}
}

// SubmitProfile validates the contact form and opens the conversation. On a
// validation error the session is left untouched.
func (s *Session) SubmitProfile(ctx context.Context, name, contact, reason string) (Registration, error) {
	s.mu.Lock()
	if s.state != chat.AwaitingProfile {
		s.mu.Unlock()
		return Registration{}, ErrAlreadyRegistered
	}
	profile, err := chat.NewProfile(name, contact, reason, s.now())
	if err != nil {
		s.mu.Unlock()
		return Registration{}, err
	}
	s.profile = profile
	s.state = chat.Chatting
	s.mu.Unlock()

	return Registration{
		Profile: profile,
		Topic:   keyword.Classify(profile.Reason),
		Welcome: fmt.Sprintf(welcomeLine, profile.Name),
		Initial: s.responder.Welcome(ctx, profile),
	}, nil
}

// Send answers one message and records the exchange. It returns false without
// doing anything when the text is blank or no profile has been submitted.
func (s *Session) Send(ctx context.Context, text string) (Turn, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Turn{}, false
	}

	s.mu.RLock()
	state, profile := s.state, s.profile
	s.mu.RUnlock()
	if state != chat.Chatting {
		return Turn{}, false
	}

	reply := s.responder.Reply(ctx, profile, text)
	exchange := chat.Exchange{
		ID:        uuid.NewString(),
		UserText:  text,
		BotText:   reply.Text,
		Category:  reply.Category,
		Source:    reply.Source,
		Timestamp: s.now(),
	}

	s.mu.Lock()
	s.transcript = append(s.transcript, exchange)
	s.mu.Unlock()

	return Turn{Exchange: exchange, Reply: reply}, true
}

// Reset clears the transcript and keeps the profile.
func (s *Session) Reset() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = nil
	return clearedLine
}

// State reports where the session is in its lifecycle.
func (s *Session) State() chat.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Profile returns the submitted profile, if any.
func (s *Session) Profile() (chat.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile, s.state == chat.Chatting
}

// Transcript returns a copy of the exchanges in order.
func (s *Session) Transcript() []chat.Exchange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]chat.Exchange(nil), s.transcript...)
}

// Export snapshots the conversation.
func (s *Session) Export() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Transcript:          append([]chat.Exchange{}, s.transcript...),
		ConversationStarted: s.state == chat.Chatting,
		Timestamp:           s.now(),
	}
	if s.state == chat.Chatting {
		profile := s.profile
		snap.Profile = &profile
	}
	return snap
}
