// Package llm performs the single outbound chat-completion call for a
// request and reduces the provider response to one guaranteed text shape.
package llm

import (
	"context"
	"errors"
	"time"

	"tracegate-api/internal/config"
	"tracegate-api/internal/metrics"
	"tracegate-api/internal/shared"
	"tracegate-api/internal/trace"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	generationName = "llm-chat-completion"
	systemPrompt   = "You are a helpful assistant for a tracing demo."
)

// Invocation carries request identity as explicit arguments so nothing is
// read from ambient state on the worker side.
type Invocation struct {
	Prompt    string
	RequestID string
	SessionID string
	Model     string
}

type Service struct {
	client *openai.Client
	cfg    *config.Config
	rec    *trace.Recorder
	log    *zap.SugaredLogger
}

// NewService builds the provider client once; it is stateless across calls
// and shared by all workers.
func NewService(cfg *config.Config, rec *trace.Recorder, log *zap.SugaredLogger) *Service {
	clientCfg := openai.DefaultConfig(cfg.ProviderAPIKey)
	clientCfg.BaseURL = cfg.ProviderBaseURL
	return &Service{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
		rec:    rec,
		log:    log,
	}
}

// Invoke makes at most one provider call, inside a generation span whose
// metadata carries the request id and, when present, the session id. Every
// failure mode comes back as a ServiceError.
func (s *Service) Invoke(ctx context.Context, inv Invocation) (string, error) {
	model := inv.Model
	if model == "" {
		model = s.cfg.DefaultModel
	}

	metadata := map[string]any{"request_id": inv.RequestID}
	if inv.SessionID != "" {
		metadata["session_id"] = inv.SessionID
	}

	var text string
	err := s.rec.WithGeneration(ctx, generationName,
		map[string]any{"prompt": inv.Prompt, "model": model},
		metadata,
		func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, s.cfg.ProviderTimeout)
			defer cancel()

			start := time.Now()
			completion, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
				Model: model,
				Messages: []openai.ChatCompletionMessage{
					{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
					{Role: openai.ChatMessageRoleUser, Content: inv.Prompt},
				},
			})
			metrics.ProviderCallDuration.WithLabelValues(model).Observe(time.Since(start).Seconds())
			if err != nil {
				return shared.NewCallFailed(err)
			}

			content, err := messageContent(completion)
			if err != nil {
				return err
			}
			text, err = Normalize(content)
			return err
		})
	if err != nil {
		var svcErr *shared.ServiceError
		if errors.As(err, &svcErr) {
			metrics.ProviderErrors.WithLabelValues(svcErr.Kind.Code()).Inc()
		}
		s.log.Warnw("LLM invocation failed", "request_id", inv.RequestID, "error", err)
		return "", err
	}
	return text, nil
}

// messageContent lifts the first choice into the content union. Providers
// answer with either a plain content string or a list of content parts.
func messageContent(completion openai.ChatCompletionResponse) (Content, error) {
	if len(completion.Choices) == 0 {
		return Content{}, shared.NewMalformedResponse(errors.New("completion has no choices"))
	}

	msg := completion.Choices[0].Message
	if len(msg.MultiContent) > 0 {
		parts := make([]any, 0, len(msg.MultiContent))
		for _, part := range msg.MultiContent {
			parts = append(parts, map[string]any{"text": part.Text})
		}
		return ClassifyContent(parts), nil
	}
	return ClassifyContent(msg.Content), nil
}
