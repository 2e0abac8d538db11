package chat

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/independencecare/chatdesk/internal/analysis/keyword"
	"github.com/independencecare/chatdesk/internal/model/chat"
	"github.com/independencecare/chatdesk/internal/model/scenario"
	"github.com/independencecare/chatdesk/internal/service/ai"
)

var ErrMessageRequired = errors.New("message is required")

// Generator produces a free-form reply for a scenario. *ai.Service implements it.
type Generator interface {
	GenerateReply(ctx context.Context, req chat.ChatRequest, script scenario.Script) (string, error)
}

// Service answers widget messages. It keeps no per-visitor state.
type Service struct {
	scripts   scenario.Store
	generator Generator
	log       *zap.Logger
}

// NewService wires the responder. generator may be nil to answer from scripts only.
func NewService(scripts scenario.Store, generator Generator, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		scripts:   scripts,
		generator: generator,
		log:       log.Named("chat"),
	}
}

// Respond picks the caregiver scenario and answers with the model, the
// scenario script, or the degraded greeting, in that order of preference.
func (s *Service) Respond(ctx context.Context, req chat.ChatRequest) (chat.ChatResponse, error) {
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return chat.ChatResponse{}, ErrMessageRequired
	}

	name := keyword.DetectScenario(req.ReasonForContact, req.Message)
	s.log.Info("scenario detected",
		zap.String("user", req.UserName),
		zap.String("scenario", name),
	)

	script, ok := s.scripts.FindByName(name)
	if !ok {
		s.log.Warn("no script for scenario, using degraded reply", zap.String("scenario", name))
		return degradedResponse(req), nil
	}

	if s.generator != nil {
		text, err := s.generator.GenerateReply(ctx, req, script)
		if err == nil {
			return chat.ChatResponse{
				Response:         text,
				Suggestions:      append([]string(nil), script.Suggestions...),
				ScenarioDetected: script.Name,
			}, nil
		}
		s.log.Warn("model reply failed, using script", zap.String("scenario", name), zap.Error(err))
	}

	return scriptedResponse(req, script), nil
}

func scriptedResponse(req chat.ChatRequest, script scenario.Script) chat.ChatResponse {
	text := script.FollowUp
	if ai.IsInitialContact(req.Message) {
		text = script.Greeting + "\n\n" + script.MainResponse
	}
	return chat.ChatResponse{
		Response:         text,
		Suggestions:      append([]string(nil), script.Suggestions...),
		ScenarioDetected: script.Name,
	}
}

const degradedReply = "Hello {name}! This is Rosella from Independence Care. I understand you're contacting us about: {reason}. How can I help you with this specific issue?"

func degradedResponse(req chat.ChatRequest) chat.ChatResponse {
	return chat.ChatResponse{
		Response:         keyword.Render(degradedReply, req.UserName, req.ReasonForContact),
		Suggestions:      []string{"Tell me more details", "What should I do next?", "Is this urgent?"},
		ScenarioDetected: keyword.GuessScenario(req.ReasonForContact, req.Message),
	}
}
