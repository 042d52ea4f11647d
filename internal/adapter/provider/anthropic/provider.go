// Package anthropic summarizes chat history with the Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Provider wraps an Anthropic API client.
type Provider struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// NewProvider creates a Provider. Extra options are appended after the API
// key and timeout, so tests can point it at a fake server.
func NewProvider(apiKey, model string, maxTokens int64, timeout time.Duration, logger *slog.Logger, opts ...option.RequestOption) *Provider {
	base := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(timeout),
	}
	return &Provider{
		client:    anthropic.NewClient(append(base, opts...)...),
		model:     model,
		maxTokens: maxTokens,
		log:       logger.With("adapter", "anthropic"),
	}
}

// Summarize sends prompt as one user message and returns the text reply.
func (p *Provider) Summarize(ctx context.Context, prompt string) (string, error) {
	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: p.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: messages api: %w", err)
	}

	var out strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("anthropic: empty response from %s", p.model)
	}

	p.log.DebugContext(ctx, "anthropic response",
		slog.String("model", p.model),
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int64("output_tokens", msg.Usage.OutputTokens))

	return out.String(), nil
}
