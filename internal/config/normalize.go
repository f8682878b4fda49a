package config

import (
	"os"
	"strings"
)

// applyEnvFallbacks fills provider credentials from the environment. When the
// config declares no providers at all, well-known env keys synthesize them so
// the server can start from a bare environment.
func applyEnvFallbacks(cfg *AppConfig) {
	openaiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	anthropicKey := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))

	for i := range cfg.AI.Providers {
		p := &cfg.AI.Providers[i]
		if strings.TrimSpace(p.APIKey) != "" {
			continue
		}
		switch normalizeProviderType(p.Type) {
		case "anthropic":
			p.APIKey = anthropicKey
		default:
			p.APIKey = openaiKey
		}
	}

	if len(cfg.AI.Providers) == 0 {
		if openaiKey != "" {
			cfg.AI.Providers = append(cfg.AI.Providers, AIProvider{
				ID:      "openai",
				Name:    "OpenAI",
				Type:    "openai",
				APIKey:  openaiKey,
				Enabled: true,
			})
		}
		if anthropicKey != "" {
			cfg.AI.Providers = append(cfg.AI.Providers, AIProvider{
				ID:      "anthropic",
				Name:    "Anthropic",
				Type:    "anthropic",
				APIKey:  anthropicKey,
				Enabled: true,
			})
		}
	}
}

func normalizeAppConfig(cfg *AppConfig) {
	cfg.Env = strings.TrimSpace(cfg.Env)

	origins := make([]string, 0, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		if s := strings.TrimSpace(o); s != "" {
			origins = append(origins, s)
		}
	}
	cfg.AllowedOrigins = origins

	for i := range cfg.AI.Providers {
		p := &cfg.AI.Providers[i]
		p.ID = strings.TrimSpace(p.ID)
		p.Type = strings.TrimSpace(p.Type)
		p.APIKey = strings.TrimSpace(p.APIKey)
		p.Endpoint = strings.TrimSpace(p.Endpoint)
		p.DefaultModel = strings.TrimSpace(p.DefaultModel)
	}

	cfg.Image.ProviderID = strings.TrimSpace(cfg.Image.ProviderID)
	cfg.Image.Model = strings.TrimSpace(cfg.Image.Model)
	cfg.Image.Size = strings.TrimSpace(cfg.Image.Size)
}

func normalizeProviderType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	t = strings.ReplaceAll(t, "_", "-")
	t = strings.ReplaceAll(t, " ", "")
	return t
}

func enabledProviders(cfg AIConfig) []AIProvider {
	out := make([]AIProvider, 0, len(cfg.Providers))
	for _, p := range cfg.Providers {
		if p.Enabled && strings.TrimSpace(p.APIKey) != "" {
			out = append(out, p)
		}
	}
	return out
}

// SelectProvider resolves the provider for an operation, honoring an optional
// assignment (provider pin + model override). Falls back to the first enabled
// provider.
func SelectProvider(cfg AIConfig, assignment *AIModelAssignment) *AIProvider {
	var providerID, overrideModel string
	if assignment != nil {
		providerID = strings.TrimSpace(assignment.ProviderID)
		overrideModel = strings.TrimSpace(assignment.Model)
	}

	pick := func(p AIProvider) *AIProvider {
		selected := p
		if overrideModel != "" {
			selected.DefaultModel = overrideModel
		}
		return &selected
	}

	candidates := enabledProviders(cfg)
	if providerID != "" {
		for _, p := range candidates {
			if strings.TrimSpace(p.ID) == providerID {
				return pick(p)
			}
		}
	}
	for _, p := range candidates {
		return pick(p)
	}
	return nil
}

// IsAnthropicProvider reports whether the provider speaks the Anthropic API.
func IsAnthropicProvider(p *AIProvider) bool {
	return p != nil && normalizeProviderType(p.Type) == "anthropic"
}

// IsOpenAICompatibleProvider reports whether the provider should be called
// over the plain chat-completions HTTP surface instead of an SDK.
func IsOpenAICompatibleProvider(p *AIProvider) bool {
	if p == nil {
		return false
	}
	t := normalizeProviderType(p.Type)
	return t == "openai-compatible" || t == "openaicompatible"
}
