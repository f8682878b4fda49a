package config

import "time"

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int         `yaml:"port"`
	Env            string      `yaml:"env"` // "development" | "production"
	AllowedOrigins []string    `yaml:"allowed_origins"`
	AI             AIConfig    `yaml:"ai"`
	Image          ImageConfig `yaml:"image"`
	Fetch          FetchConfig `yaml:"fetch"`
}

// AIConfig configures text-generation providers.
type AIConfig struct {
	Providers             []AIProvider       `yaml:"providers"`
	ArticleModel          *AIModelAssignment `yaml:"article_model,omitempty"`
	RequestTimeoutSeconds int                `yaml:"request_timeout_seconds"`
	MaxOutputTokens       int                `yaml:"max_output_tokens"`
	Temperature           float64            `yaml:"temperature"`
}

// RequestTimeout returns the deadline applied to a single text-generation call.
func (c AIConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// AIModelAssignment pins an operation to a provider and optional model override.
type AIModelAssignment struct {
	ProviderID string `yaml:"provider_id"`
	Model      string `yaml:"model"`
}

type AIProvider struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Type         string `yaml:"type"` // OpenAI | OpenAI-Compatible | Anthropic
	APIKey       string `yaml:"api_key"`
	Endpoint     string `yaml:"endpoint,omitempty"`
	DefaultModel string `yaml:"default_model"`
	Enabled      bool   `yaml:"enabled"`
}

// ImageConfig configures the image-generation model.
type ImageConfig struct {
	ProviderID            string `yaml:"provider_id"`
	Model                 string `yaml:"model"`
	Size                  string `yaml:"size"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
}

func (c ImageConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// FetchConfig configures the image fetch proxy.
type FetchConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

func (c FetchConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type rawAppConfig struct {
	Port               int         `yaml:"port"`
	Env                string      `yaml:"env"`
	NodeEnv            string      `yaml:"node_env"`
	AllowedOrigins     []string    `yaml:"allowed_origins"`
	CORSAllowedOrigins []string    `yaml:"cors_allowed_origins"`
	AI                 rawAIConfig `yaml:"ai"`
	Image              ImageConfig `yaml:"image"`
	Fetch              FetchConfig `yaml:"fetch"`
}

type rawAIConfig struct {
	Providers             []AIProvider       `yaml:"providers"`
	ArticleModel          *AIModelAssignment `yaml:"article_model"`
	RequestTimeoutSeconds int                `yaml:"request_timeout_seconds"`
	TimeoutSeconds        int                `yaml:"timeout_seconds"`
	MaxOutputTokens       int                `yaml:"max_output_tokens"`
	MaxTokens             int                `yaml:"max_tokens"`
	Temperature           *float64           `yaml:"temperature"`
}
