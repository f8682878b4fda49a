package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort = 2334
	defaultEnv  = "development"

	defaultAITimeoutSeconds    = 30
	defaultAIMaxOutputTokens   = 2000
	defaultAITemperature       = 0.7
	defaultImageModel          = "dall-e-3"
	defaultImageSize           = "1024x1024"
	defaultImageTimeoutSeconds = 60
	defaultFetchTimeoutSeconds = 60
)

// Load reads, normalizes, and validates the YAML config at configPath.
// A missing file is not an error when provider credentials can be taken
// from the environment; the returned config then carries only defaults.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		raw := rawAppConfig{}
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
		applyRawAppConfig(&cfg, raw)
	case os.IsNotExist(err) && path == DefaultConfigPath:
		// fall through to env-only config
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	applyEnvFallbacks(&cfg)
	normalizeAppConfig(&cfg)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d, expected 1-65535", cfg.Port)
	}
	if len(enabledProviders(cfg.AI)) == 0 {
		return nil, fmt.Errorf("no enabled AI provider: set ai.providers in %q or OPENAI_API_KEY / ANTHROPIC_API_KEY", path)
	}

	return &cfg, nil
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "development") || strings.EqualFold(strings.TrimSpace(c.Env), "dev")
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		AI: AIConfig{
			RequestTimeoutSeconds: defaultAITimeoutSeconds,
			MaxOutputTokens:       defaultAIMaxOutputTokens,
			Temperature:           defaultAITemperature,
		},
		Image: ImageConfig{
			Model:                 defaultImageModel,
			Size:                  defaultImageSize,
			RequestTimeoutSeconds: defaultImageTimeoutSeconds,
		},
		Fetch: FetchConfig{
			TimeoutSeconds: defaultFetchTimeoutSeconds,
		},
	}
}

func applyRawAppConfig(cfg *AppConfig, raw rawAppConfig) {
	if raw.Port != 0 {
		cfg.Port = raw.Port
	}
	if env := firstNonEmpty(raw.Env, raw.NodeEnv); env != "" {
		cfg.Env = env
	}
	if len(raw.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = raw.AllowedOrigins
	} else if len(raw.CORSAllowedOrigins) > 0 {
		cfg.AllowedOrigins = raw.CORSAllowedOrigins
	}

	if len(raw.AI.Providers) > 0 {
		cfg.AI.Providers = raw.AI.Providers
	}
	if raw.AI.ArticleModel != nil {
		cfg.AI.ArticleModel = raw.AI.ArticleModel
	}
	if t := firstPositive(raw.AI.RequestTimeoutSeconds, raw.AI.TimeoutSeconds); t > 0 {
		cfg.AI.RequestTimeoutSeconds = t
	}
	if n := firstPositive(raw.AI.MaxOutputTokens, raw.AI.MaxTokens); n > 0 {
		cfg.AI.MaxOutputTokens = n
	}
	if raw.AI.Temperature != nil {
		cfg.AI.Temperature = *raw.AI.Temperature
	}

	if raw.Image.ProviderID != "" {
		cfg.Image.ProviderID = raw.Image.ProviderID
	}
	if raw.Image.Model != "" {
		cfg.Image.Model = raw.Image.Model
	}
	if raw.Image.Size != "" {
		cfg.Image.Size = raw.Image.Size
	}
	if raw.Image.RequestTimeoutSeconds > 0 {
		cfg.Image.RequestTimeoutSeconds = raw.Image.RequestTimeoutSeconds
	}

	if raw.Fetch.TimeoutSeconds > 0 {
		cfg.Fetch.TimeoutSeconds = raw.Fetch.TimeoutSeconds
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
