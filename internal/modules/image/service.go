package image

import (
	"context"
	"fmt"
	"io"
	"net/http"

	appcfg "github.com/cloudgen/core/internal/config"
	"github.com/cloudgen/core/internal/pkg/llm"
	"go.uber.org/zap"
)

// Service generates illustrative images and proxies provider-hosted image
// URLs back as downloads. Both operations are single-shot: no retries, no
// alternate sizes, no moderation-specific handling.
type Service struct {
	gen        llm.ImageGenerator
	fetch      appcfg.FetchConfig
	httpClient *http.Client
	logger     *zap.Logger
}

func NewService(gen llm.ImageGenerator, fetch appcfg.FetchConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		gen:        gen,
		fetch:      fetch,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Generate produces one image for the article and returns its URL.
func (s *Service) Generate(ctx context.Context, title, topic string, tags []string) (string, error) {
	prompt := buildImagePrompt(title, topic, tags)
	return s.gen.GenerateImage(ctx, prompt)
}

// Fetched is a retrieved remote image ready to stream to the caller.
// Body must be closed by the consumer.
type Fetched struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
}

// Fetch retrieves imageURL with a single GET under the configured deadline.
// A non-2xx upstream status is an error; no body bytes are passed through.
func (s *Service) Fetch(ctx context.Context, imageURL string) (*Fetched, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetch.Timeout())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		cancel()
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		cancel()
		return nil, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		resp.Body.Close()
		cancel()
		s.logger.Warn("image fetch returned non-success status",
			zap.String("url", imageURL),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("image fetch failed with status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}

	return &Fetched{
		Body:          &cancelOnClose{ReadCloser: resp.Body, cancel: cancel},
		ContentType:   contentType,
		ContentLength: resp.ContentLength,
	}, nil
}

// cancelOnClose ties the request context's lifetime to the body stream.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
