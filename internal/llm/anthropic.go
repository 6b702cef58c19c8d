package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"aeron/internal/config"
)

type anthropicProvider struct {
	cfg    config.ProviderConfig
	client anthropic.Client
}

func newAnthropicProvider(cfg config.ProviderConfig, httpClient *http.Client) Provider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpClient),
	)
	return &anthropicProvider{cfg: cfg, client: client}
}

func (p *anthropicProvider) Name() string  { return "anthropic" }
func (p *anthropicProvider) Model() string { return p.cfg.Model }

func (p *anthropicProvider) Complete(ctx context.Context, prompt string) (string, Usage, error) {
	message, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(p.cfg.Model),
		MaxTokens:   int64(p.cfg.MaxTokens),
		Temperature: anthropic.Float(p.cfg.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", Usage{}, fmt.Errorf("Anthropic API error: %w", err)
	}

	usage := Usage{
		InputTokens:  message.Usage.InputTokens,
		OutputTokens: message.Usage.OutputTokens,
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			return block.Text, usage, nil
		}
	}
	return "", usage, fmt.Errorf("no text content in Anthropic response")
}
