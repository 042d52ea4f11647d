// Package ollama summarizes chat history with a self-hosted Ollama model.
package ollama

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

// Provider talks to the Ollama generate endpoint.
type Provider struct {
	client *api.Client
	model  string
	log    *slog.Logger
}

// NewProvider creates a Provider for the Ollama server at host.
func NewProvider(host, model string, timeout time.Duration, logger *slog.Logger) (*Provider, error) {
	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("ollama: parse host %q: %w", host, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("ollama: host %q must be an absolute URL", host)
	}

	return &Provider{
		client: api.NewClient(base, &http.Client{Timeout: timeout}),
		model:  model,
		log:    logger.With("adapter", "ollama"),
	}, nil
}

// Summarize sends prompt as a single non-streaming generation request.
func (p *Provider) Summarize(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &api.GenerateRequest{
		Model:  p.model,
		Prompt: prompt,
		Stream: &stream,
	}

	start := time.Now()
	var out strings.Builder
	err := p.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		out.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama: generate: %w", err)
	}

	p.log.DebugContext(ctx, "ollama response",
		slog.String("model", p.model),
		slog.Int("chars", out.Len()),
		slog.Duration("duration", time.Since(start)))

	if out.Len() == 0 {
		return "", fmt.Errorf("ollama: empty response from %s", p.model)
	}
	return out.String(), nil
}
