package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ErrImageGenerationFailed covers transport failures and non-2xx answers from
// the image rendering server.
var ErrImageGenerationFailed = errors.New("image generation failed")

type apiRequest struct {
	Prompt string `json:"prompt"`
	Ratio  string `json:"ratio"`
}

// Client renders one storyboard frame per call against a configured image
// server. Like the script generation client it performs a single attempt.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *zap.Logger
}

func NewClient(endpoint string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// Render posts the prompt and returns the raw image bytes.
func (c *Client) Render(ctx context.Context, prompt, ratio string) ([]byte, error) {
	if c.endpoint == "" {
		return nil, fmt.Errorf("%w: no image endpoint configured", ErrImageGenerationFailed)
	}
	if ratio == "" {
		ratio = "16:9"
	}

	body, err := json.Marshal(apiRequest{Prompt: prompt, Ratio: ratio})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageGenerationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageGenerationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("image server request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrImageGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("image server returned error status", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrImageGenerationFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageGenerationFailed, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: server returned empty data", ErrImageGenerationFailed)
	}

	c.logger.Info("image rendered",
		zap.Duration("duration", time.Since(start)),
		zap.Int("size_bytes", len(data)))
	return data, nil
}
