package scriptgen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
	"go.uber.org/zap"
)

// Client issues one blocking chat-completion request per call. No automatic
// retries: resubmitting the form is the retry path.
type Client struct {
	client  *api.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

func NewClient(host, model string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	base := strings.TrimSuffix(host, "/")
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse generation host %q: %w", host, err)
	}
	return &Client{
		client:  api.NewClient(parsed, &http.Client{Timeout: timeout}),
		model:   model,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Generate sends the assembled message pair and returns the raw text content
// of the response message. Network failures, timeouts and non-2xx statuses
// all surface as ErrGenerationUnreachable.
func (c *Client) Generate(ctx context.Context, messages []api.Message) (string, error) {
	req := &api.ChatRequest{
		Model:    c.model,
		Messages: messages,
		Format:   json.RawMessage(`"json"`),
		Stream:   func(b bool) *bool { return &b }(false),
	}

	requestCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	var resp api.ChatResponse
	err := c.client.Chat(requestCtx, req, func(r api.ChatResponse) error {
		resp = r
		return nil
	})
	duration := time.Since(start)

	if err != nil {
		c.logger.Warn("generation request failed",
			zap.String("model", c.model),
			zap.Duration("duration", duration),
			zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrGenerationUnreachable, err)
	}

	if resp.Message.Content == "" {
		c.logger.Warn("generation returned empty content",
			zap.String("model", c.model),
			zap.Duration("duration", duration))
		return "", fmt.Errorf("%w: empty response", ErrGenerationUnreachable)
	}

	c.logger.Info("generation response received",
		zap.String("model", c.model),
		zap.Duration("duration", duration),
		zap.Int("content_bytes", len(resp.Message.Content)))

	return resp.Message.Content, nil
}
