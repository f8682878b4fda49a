package llm

import (
	"context"
	"errors"
	"strings"

	appcfg "github.com/cloudgen/core/internal/config"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
	"go.uber.org/zap"
)

// GenerateImage requests exactly one image from the configured image model
// and returns the provider-issued URL. The URL's lifetime belongs to the
// provider; nothing is persisted here.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	provider := c.selectImageProvider()
	if provider == nil {
		return "", errors.New("no enabled image-capable provider")
	}

	ctx, cancel := context.WithTimeout(ctx, c.image.RequestTimeout())
	defer cancel()

	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(strings.TrimSpace(provider.APIKey)),
		openaioption.WithMaxRetries(0),
	}
	if normalized := normalizeOpenAIBaseURL(provider.Endpoint); normalized != "" {
		opts = append(opts, openaioption.WithBaseURL(normalized))
	}
	client := openaiclient.NewClient(opts...)

	resp, err := client.Images.Generate(ctx, openaiclient.ImageGenerateParams{
		Prompt: prompt,
		Model:  openaiclient.ImageModel(c.image.Model),
		N:      openaiclient.Int(1),
		Size:   openaiclient.ImageGenerateParamsSize(c.image.Size),
	})
	if err != nil {
		c.logger.Warn("image generation failed",
			zap.String("provider", provider.ID),
			zap.Error(err))
		return "", err
	}
	if resp == nil || len(resp.Data) == 0 || strings.TrimSpace(resp.Data[0].URL) == "" {
		return "", ErrEmptyResponse
	}
	return resp.Data[0].URL, nil
}

// selectImageProvider resolves the provider used for image generation.
// Anthropic has no image API, so anthropic providers are skipped.
func (c *Client) selectImageProvider() *appcfg.AIProvider {
	if id := strings.TrimSpace(c.image.ProviderID); id != "" {
		if p := appcfg.SelectProvider(c.ai, &appcfg.AIModelAssignment{ProviderID: id}); p != nil && !appcfg.IsAnthropicProvider(p) {
			return p
		}
	}
	for _, p := range c.ai.Providers {
		if !p.Enabled || strings.TrimSpace(p.APIKey) == "" {
			continue
		}
		if appcfg.IsAnthropicProvider(&p) {
			continue
		}
		selected := p
		return &selected
	}
	return nil
}
