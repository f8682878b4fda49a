// Package llm wraps the generative-AI providers behind small interfaces so
// handlers and tests never touch an SDK directly.
package llm

import (
	"context"
	"net/http"

	appcfg "github.com/cloudgen/core/internal/config"
	"go.uber.org/zap"
)

// TextGenerator produces a single completion for a system + user prompt pair.
type TextGenerator interface {
	GenerateText(ctx context.Context, systemPrompt, prompt string) (string, error)
}

// ImageGenerator produces exactly one image and returns its provider URL.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Client implements TextGenerator and ImageGenerator over the configured
// providers. A single call maps to a single upstream request: no retries,
// no streaming.
type Client struct {
	ai         appcfg.AIConfig
	image      appcfg.ImageConfig
	httpClient *http.Client
	logger     *zap.Logger
}

func New(ai appcfg.AIConfig, image appcfg.ImageConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		ai:    ai,
		image: image,
		// Per-request deadlines come from the context; the transport-level
		// timeout is a backstop for the openai-compatible path.
		httpClient: &http.Client{},
		logger:     logger,
	}
}
