package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/independencecare/chatdesk/internal/model/chat"
	"github.com/independencecare/chatdesk/internal/widget"
)

type recordingBackend struct {
	messages []string
}

func (b *recordingBackend) Chat(_ context.Context, req chat.ChatRequest) (chat.ChatResponse, error) {
	b.messages = append(b.messages, req.Message)
	return chat.ChatResponse{
		Response:    "Reply to: " + req.Message,
		Suggestions: []string{"Use client's phone", "Help set up app"},
	}, nil
}

func offlineSession() *widget.Session {
	return widget.NewSession(widget.NewResponder(nil, nil, nil))
}

func TestRunChatRepromptsInvalidField(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"Mary",
		"12345",
		"I need help with my schedule",
		"+1 (555) 123-4567",
		"hello",
		"/quit",
	}, "\n"))
	var out bytes.Buffer
	session := offlineSession()

	err := runChat(context.Background(), in, &out, session, chatOptions{})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, chat.NoticeContact)
	assert.Contains(t, text, "Great to meet you, Mary!")
	assert.Contains(t, text, "Hello Mary! How can I assist you today?")
	assert.Len(t, session.Transcript(), 1)
}

func TestRunChatFlagsClearAndExport(t *testing.T) {
	in := strings.NewReader("hello\n/clear\n/export\n")
	var out bytes.Buffer
	session := offlineSession()

	err := runChat(context.Background(), in, &out, session, chatOptions{
		name:    "Mary",
		contact: "5551234567",
		reason:  "Question about my invoice",
	})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "[topic: Account & Billing]")
	assert.Contains(t, text, "Chat cleared! How can I help you today?")
	assert.Contains(t, text, `"conversation_started": true`)
	assert.Empty(t, session.Transcript())
}

func TestRunChatEOFDuringForm(t *testing.T) {
	var out bytes.Buffer
	err := runChat(context.Background(), strings.NewReader("Mary\n"), &out, offlineSession(), chatOptions{})
	assert.NoError(t, err)
}

func TestRunChatPicksSuggestionByNumber(t *testing.T) {
	backend := &recordingBackend{}
	session := widget.NewSession(widget.NewResponder(backend, nil, nil))
	in := strings.NewReader("my phone is not registered\n2\n7\n/quit\n")
	var out bytes.Buffer

	err := runChat(context.Background(), in, &out, session, chatOptions{
		name:    "Mary",
		contact: "5551234567",
		reason:  "Phone number problem at clock in",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		chat.InitialContactMessage,
		"my phone is not registered",
		"Help set up app",
		"7",
	}, backend.messages)
	assert.Contains(t, out.String(), "  [2] Help set up app")
	assert.Contains(t, out.String(), "Rosella: Reply to: Help set up app")
	assert.Len(t, session.Transcript(), 3)
}

func TestPickSuggestion(t *testing.T) {
	suggestions := []string{"a", "b"}

	got, ok := pickSuggestion(" 1 ", suggestions)
	assert.True(t, ok)
	assert.Equal(t, "a", got)

	for _, line := range []string{"0", "3", "one", ""} {
		_, ok := pickSuggestion(line, suggestions)
		assert.False(t, ok, line)
	}
	_, ok = pickSuggestion("1", nil)
	assert.False(t, ok)
}
