package widget

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/independencecare/chatdesk/internal/analysis/keyword"
	"github.com/independencecare/chatdesk/internal/model/chat"
)

const welcomeFallback = "Welcome %s! I'm here to help with your inquiry about: %s. How can I assist you?"

// Backend is the remote side of the widget. *Client implements it.
type Backend interface {
	Chat(ctx context.Context, req chat.ChatRequest) (chat.ChatResponse, error)
}

// Responder asks the backend first and answers locally when it cannot.
type Responder struct {
	backend Backend
	rng     keyword.Intner
	log     *zap.Logger
}

// NewResponder wires a Responder. A nil backend answers everything locally;
// a nil rng uses the package random source.
func NewResponder(backend Backend, rng keyword.Intner, log *zap.Logger) *Responder {
	if rng == nil {
		rng = keyword.DefaultIntner
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Responder{backend: backend, rng: rng, log: log.Named("responder")}
}

// Reply answers one visitor message.
func (r *Responder) Reply(ctx context.Context, profile chat.Profile, text string) Reply {
	if resp, ok := r.ask(ctx, profile, text); ok {
		return remoteReply(resp)
	}
	return fallbackReply(keyword.FallbackReply(profile.Name, text, r.rng))
}

// Welcome fetches the opening reply right after registration.
func (r *Responder) Welcome(ctx context.Context, profile chat.Profile) Reply {
	if resp, ok := r.ask(ctx, profile, chat.InitialContactMessage); ok {
		return remoteReply(resp)
	}
	return fallbackReply(fmt.Sprintf(welcomeFallback, profile.Name, profile.Reason))
}

func (r *Responder) ask(ctx context.Context, profile chat.Profile, text string) (chat.ChatResponse, bool) {
	if r.backend == nil {
		return chat.ChatResponse{}, false
	}
	resp, err := r.backend.Chat(ctx, chat.NewChatRequest(profile, text))
	if err != nil {
		r.log.Warn("backend unavailable, answering locally", zap.Error(err))
		return chat.ChatResponse{}, false
	}
	return resp, true
}
