package article

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/cloudgen/core/internal/pkg/llm"
	"go.uber.org/zap"
)

// Service turns a topic into a structured article via the text model.
type Service struct {
	gen    llm.TextGenerator
	logger *zap.Logger
}

func NewService(gen llm.TextGenerator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{gen: gen, logger: logger}
}

// Generate runs one model call and normalizes the response into a Record.
// Upstream failure is the only error path; an unparseable response is not
// an error but the designed fallback.
func (s *Service) Generate(ctx context.Context, topic string) (Record, error) {
	systemPrompt, prompt := buildContentPrompt(topic)

	raw, err := s.gen.GenerateText(ctx, systemPrompt, prompt)
	if err != nil {
		return Record{}, err
	}

	rec, fellBack := parseModelResponse(topic, raw)
	if fellBack {
		s.logger.Info("structured extraction failed, serving fallback record",
			zap.String("topic", topic))
	}
	return rec, nil
}

// parseModelResponse extracts the first brace-delimited JSON candidate from
// the model's free-text response and parses it strictly. Any failure yields
// the tagged fallback record with the raw text as content.
func parseModelResponse(topic, raw string) (rec Record, fellBack bool) {
	if parsed, ok := extractArticleJSON(raw); ok {
		rec = Record{
			Title:    parsed.Title,
			Content:  parsed.Content,
			Tags:     parsed.Tags,
			ImageURL: "",
		}
		if rec.Tags == nil {
			rec.Tags = defaultTags(topic)
		}
		return rec, false
	}

	return Record{
		Title:    topic + fallbackTitleSuffix,
		Content:  raw,
		Tags:     defaultTags(topic),
		ImageURL: "",
	}, true
}

func extractArticleJSON(raw string) (parsedArticle, bool) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return parsedArticle{}, false
	}

	var parsed parsedArticle
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &parsed); err != nil {
		return parsedArticle{}, false
	}
	return parsed, true
}
