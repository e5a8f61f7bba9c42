package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"

	"najdimajstra/internal/config"
	"najdimajstra/internal/model"
)

var (
	// ErrAssistantDisabled is returned when no API key is configured
	ErrAssistantDisabled = errors.New("assistant is not configured")
	// ErrInvalidMessages is returned for an empty or malformed chat history
	ErrInvalidMessages = errors.New("invalid messages")
)

// assistantSystemPrompt keeps the free-form assistant on topic
const assistantSystemPrompt = "You are the najdiMajstra assistant. You help people in Slovakia describe household " +
	"repair and construction needs so a suitable tradesperson can be found. Answer briefly in the user's language. " +
	"If the user describes a gas leak, smoke, sparks or flooding, tell them to get to safety and call 112 first."

// completionService is the part of the OpenAI client the assistant uses
type completionService interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// AssistantService forwards free-form chats to an OpenAI-compatible
// completion API
type AssistantService struct {
	completions completionService
	model       string
	temperature float64
	maxTokens   int
	enabled     bool
	logger      *zap.Logger
}

// NewAssistantService creates the assistant from config. It is disabled when
// no API key is set.
func NewAssistantService(cfg *config.OpenAIConfig, logger *zap.Logger) *AssistantService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &AssistantService{
		model:       cfg.ChatModel,
		temperature: cfg.ChatTemperature,
		maxTokens:   cfg.ChatMaxTokens,
		enabled:     cfg.Enabled,
		logger:      logger,
	}
	if !cfg.Enabled {
		return s
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(time.Duration(cfg.Timeout) * time.Second),
	}
	if cfg.APIBase != "" {
		opts = append(opts, option.WithBaseURL(cfg.APIBase))
	}
	client := openai.NewClient(opts...)
	s.completions = &client.Chat.Completions
	return s
}

func newAssistantWithCompletions(completions completionService, chatModel string, logger *zap.Logger) *AssistantService {
	return &AssistantService{
		completions: completions,
		model:       chatModel,
		temperature: 0.2,
		maxTokens:   512,
		enabled:     true,
		logger:      logger,
	}
}

// IsEnabled reports whether the assistant can answer
func (s *AssistantService) IsEnabled() bool {
	return s.enabled && s.completions != nil
}

// Model returns the configured chat model
func (s *AssistantService) Model() string {
	return s.model
}

// Reply returns the assistant's answer to a chat history
func (s *AssistantService) Reply(ctx context.Context, messages []model.AssistantMessage) (string, error) {
	if !s.IsEnabled() {
		return "", ErrAssistantDisabled
	}

	params, err := s.buildParams(messages)
	if err != nil {
		return "", err
	}

	start := time.Now()
	resp, err := s.completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	s.logger.Debug("assistant replied",
		zap.String("model", resp.Model),
		zap.Int64("total_tokens", resp.Usage.TotalTokens),
		zap.Duration("took", time.Since(start)),
	)

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (s *AssistantService) buildParams(messages []model.AssistantMessage) (openai.ChatCompletionNewParams, error) {
	if len(messages) == 0 {
		return openai.ChatCompletionNewParams{}, fmt.Errorf("%w: no messages", ErrInvalidMessages)
	}

	history := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)+1)
	history = append(history, openai.SystemMessage(assistantSystemPrompt))
	for i, m := range messages {
		switch strings.ToLower(m.Role) {
		case string(model.RoleUser):
			history = append(history, openai.UserMessage(m.Content))
		case string(model.RoleAssistant):
			history = append(history, openai.AssistantMessage(m.Content))
		default:
			return openai.ChatCompletionNewParams{}, fmt.Errorf("%w: message %d has unsupported role %q", ErrInvalidMessages, i, m.Role)
		}
	}

	params := openai.ChatCompletionNewParams{
		Messages:    history,
		Model:       openai.ChatModel(s.model),
		Temperature: openai.Float(s.temperature),
	}
	if s.maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(s.maxTokens))
	}
	return params, nil
}
