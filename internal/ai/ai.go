// Package ai asks Claude for reflections, prompts and reminders based on
// the journal. Prompt construction is separate from the API calls so it
// can be tested offline.
package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/time/rate"

	"github.com/mattwhite/moodjournal-go/internal/config"
	"github.com/mattwhite/moodjournal-go/internal/logging"
)

// ErrNoAPIKey is returned when no Anthropic key is configured.
var ErrNoAPIKey = errors.New("no API key found. Run 'moodjournal onboard' or set ANTHROPIC_API_KEY")

// Client wraps the Anthropic messages API with a request budget.
type Client struct {
	api       anthropic.Client
	model     string
	maxTokens int64
	limiter   *rate.Limiter
}

// NewClient builds a client from the [ai] config section.
func NewClient(cfg config.AIConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	rpm := max(cfg.RequestsPerMinute, 1)
	return &Client{
		api:       anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxTokens),
		limiter:   rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1),
	}, nil
}

func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}
	start := time.Now()
	response, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: system, Type: "text"}},
		Messages: []anthropic.MessageParam{{
			Role:    anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{{OfText: &anthropic.TextBlockParam{Text: user, Type: "text"}}},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}
	logging.Debug("anthropic call finished", "model", c.model, "elapsed", time.Since(start))
	if len(response.Content) == 0 {
		return "", errors.New("no response content from Anthropic")
	}
	for _, content := range response.Content {
		if content.Type == "text" && content.Text != "" {
			return content.Text, nil
		}
	}
	return "", errors.New("unexpected response format from Anthropic")
}
