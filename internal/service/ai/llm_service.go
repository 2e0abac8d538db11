package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"

	"github.com/independencecare/chatdesk/internal/config"
	"github.com/independencecare/chatdesk/internal/model/chat"
	"github.com/independencecare/chatdesk/internal/model/scenario"
)

// ErrEmptyReply is returned when the model answers with no text.
var ErrEmptyReply = errors.New("model returned an empty reply")

// Service generates Rosella's replies with a chat model.
type Service struct {
	chatModel model.ChatModel
	chain     compose.Runnable[map[string]any, *schema.Message]
	log       *zap.Logger
}

// NewService creates the Ark chat model described by cfg and wraps it.
func NewService(ctx context.Context, cfg config.AIConfig, log *zap.Logger) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}
	return NewServiceWithModel(ctx, chatModel, log)
}

// NewServiceWithModel wraps an existing chat model.
func NewServiceWithModel(ctx context.Context, chatModel model.ChatModel, log *zap.Logger) (*Service, error) {
	if log == nil {
		log = zap.NewNop()
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		chain:     runnable,
		log:       log.Named("ai"),
	}, nil
}

// GenerateReply answers one caregiver message following the scenario script.
func (s *Service) GenerateReply(ctx context.Context, req chat.ChatRequest, script scenario.Script) (string, error) {
	input := map[string]any{
		"system": BuildSystemPrompt(req, script),
		"query":  req.Message,
	}

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run AI chain: %w", err)
	}
	if response == nil || strings.TrimSpace(response.Content) == "" {
		return "", ErrEmptyReply
	}

	s.log.Debug("generated reply",
		zap.String("scenario", script.Name),
		zap.Int("length", len(response.Content)),
	)
	return strings.TrimSpace(response.Content), nil
}
