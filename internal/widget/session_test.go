package widget

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/independencecare/chatdesk/internal/analysis/keyword"
	"github.com/independencecare/chatdesk/internal/model/chat"
)

// stubBackend answers with resp, or fails with err.
type stubBackend struct {
	mu    sync.Mutex
	resp  chat.ChatResponse
	err   error
	calls []chat.ChatRequest
}

func (b *stubBackend) Chat(_ context.Context, req chat.ChatRequest) (chat.ChatResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, req)
	return b.resp, b.err
}

type fixedIntner int

func (f fixedIntner) IntN(n int) int { return int(f) % n }

var errDown = errors.New("connection refused")

func newSession(backend Backend) *Session {
	s := NewSession(NewResponder(backend, fixedIntner(0), nil))
	s.now = func() time.Time { return time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC) }
	return s
}

func register(t *testing.T, s *Session) Registration {
	t.Helper()
	reg, err := s.SubmitProfile(context.Background(), "Mary", "(555) 123-4567", "My invoice shows a double charge")
	require.NoError(t, err)
	return reg
}

func TestSendBeforeProfileIsNoop(t *testing.T) {
	backend := &stubBackend{resp: chat.ChatResponse{Response: "hi"}}
	s := newSession(backend)

	_, ok := s.Send(context.Background(), "hello")
	assert.False(t, ok)
	assert.Empty(t, s.Transcript())
	assert.Empty(t, backend.calls)
	assert.Equal(t, chat.AwaitingProfile, s.State())
}

func TestSubmitProfileValidationKeepsState(t *testing.T) {
	s := newSession(&stubBackend{err: errDown})

	_, err := s.SubmitProfile(context.Background(), "M", "5551234567", "long enough reason")
	var verr *chat.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
	assert.Equal(t, chat.AwaitingProfile, s.State())

	_, ok := s.Profile()
	assert.False(t, ok)
}

func TestSubmitProfileRemoteWelcome(t *testing.T) {
	backend := &stubBackend{resp: chat.ChatResponse{
		Response:         "Hello Mary! This is Rosella.",
		Suggestions:      []string{"Yes"},
		ScenarioDetected: "Phone Issue",
	}}
	s := newSession(backend)

	reg := register(t, s)
	assert.Equal(t, chat.Chatting, s.State())
	assert.Equal(t, keyword.AccountBilling, reg.Topic.Category)
	assert.Equal(t, "Great to meet you, Mary! I've analyzed your request and I'm ready to help. What would you like to know more about?", reg.Welcome)
	assert.Equal(t, chat.SourceRemote, reg.Initial.Source)
	assert.Equal(t, []string{"Yes"}, reg.Initial.Suggestions)

	require.Len(t, backend.calls, 1)
	assert.Equal(t, chat.InitialContactMessage, backend.calls[0].Message)
	assert.Equal(t, "(555) 123-4567", backend.calls[0].ContactNumber)

	// The opening reply is not part of the transcript.
	assert.Empty(t, s.Transcript())
}

func TestSubmitProfileFallbackWelcome(t *testing.T) {
	s := newSession(&stubBackend{err: errDown})

	reg := register(t, s)
	assert.Equal(t, chat.SourceFallback, reg.Initial.Source)
	assert.Equal(t, "Welcome Mary! I'm here to help with your inquiry about: My invoice shows a double charge. How can I assist you?", reg.Initial.Text)
}

func TestSubmitProfileTwice(t *testing.T) {
	s := newSession(nil)
	register(t, s)

	_, err := s.SubmitProfile(context.Background(), "Someone Else", "5559876543", "a different reason")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	profile, ok := s.Profile()
	require.True(t, ok)
	assert.Equal(t, "Mary", profile.Name)
}

func TestSendRemote(t *testing.T) {
	backend := &stubBackend{resp: chat.ChatResponse{
		Response:         "We can fix that.",
		Suggestions:      []string{"Use client's phone", "Help set up app"},
		ScenarioDetected: "Phone Issue",
	}}
	s := newSession(backend)
	register(t, s)

	turn, ok := s.Send(context.Background(), "  my phone is not registered  ")
	require.True(t, ok)
	ex := turn.Exchange
	assert.Equal(t, "my phone is not registered", ex.UserText)
	assert.Equal(t, "We can fix that.", ex.BotText)
	assert.Equal(t, "Phone Issue", ex.Category)
	assert.Equal(t, chat.SourceRemote, ex.Source)
	assert.NotEmpty(t, ex.ID)
	assert.Equal(t, []chat.Exchange{ex}, s.Transcript())

	assert.Equal(t, []string{"Use client's phone", "Help set up app"}, turn.Reply.Suggestions)
	assert.Equal(t, ex.BotText, turn.Reply.Text)
}

func TestSendFallback(t *testing.T) {
	s := newSession(&stubBackend{err: errDown})
	register(t, s)

	turn, ok := s.Send(context.Background(), "Hello there")
	require.True(t, ok)
	assert.Equal(t, "Hello Mary! How can I assist you today?", turn.Exchange.BotText)
	assert.Equal(t, chat.SourceFallback, turn.Exchange.Source)
	assert.Empty(t, turn.Exchange.Category)
	assert.Empty(t, turn.Reply.Suggestions)

	turn, ok = s.Send(context.Background(), "zzz")
	require.True(t, ok)
	assert.Equal(t, keyword.GenericPrompts[0], turn.Exchange.BotText)
}

func TestSendBlankIsNoop(t *testing.T) {
	backend := &stubBackend{resp: chat.ChatResponse{Response: "ok"}}
	s := newSession(backend)
	register(t, s)

	_, ok := s.Send(context.Background(), " \n\t ")
	assert.False(t, ok)
	assert.Empty(t, s.Transcript())
	assert.Len(t, backend.calls, 1)
}

func TestResetKeepsProfile(t *testing.T) {
	s := newSession(&stubBackend{err: errDown})
	register(t, s)
	s.Send(context.Background(), "hello")
	s.Send(context.Background(), "thanks")
	require.Len(t, s.Transcript(), 2)

	assert.Equal(t, "Chat cleared! How can I help you today?", s.Reset())
	assert.Empty(t, s.Transcript())
	assert.Equal(t, chat.Chatting, s.State())

	profile, ok := s.Profile()
	require.True(t, ok)
	assert.Equal(t, "Mary", profile.Name)

	_, ok = s.Send(context.Background(), "hello again")
	assert.True(t, ok)
}

func TestTranscriptIsACopy(t *testing.T) {
	s := newSession(nil)
	register(t, s)
	s.Send(context.Background(), "hello")

	got := s.Transcript()
	got[0].BotText = "tampered"
	assert.NotEqual(t, "tampered", s.Transcript()[0].BotText)
}

func TestExport(t *testing.T) {
	s := newSession(nil)

	before := s.Export()
	assert.Nil(t, before.Profile)
	assert.False(t, before.ConversationStarted)
	assert.Empty(t, before.Transcript)

	register(t, s)
	s.Send(context.Background(), "how would I use it")

	snap := s.Export()
	require.NotNil(t, snap.Profile)
	assert.Equal(t, "Mary", snap.Profile.Name)
	assert.True(t, snap.ConversationStarted)
	require.Len(t, snap.Transcript, 1)
	assert.True(t, strings.HasPrefix(snap.Transcript[0].BotText, "Great question!"))
	assert.Equal(t, time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC), snap.Timestamp)
}

func TestConcurrentSends(t *testing.T) {
	s := newSession(&stubBackend{resp: chat.ChatResponse{Response: "ok"}})
	register(t, s)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Send(context.Background(), "hello")
		}()
	}
	wg.Wait()
	assert.Len(t, s.Transcript(), 20)
}
