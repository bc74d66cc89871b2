package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures a provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// "mock".
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

// AnthropicConfig configures the Anthropic adapter.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig configures the OpenAI adapter. BaseURL points it at any
// OpenAI-compatible API; the "openrouter" provider is this adapter with
// the OpenRouter base URL filled in.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig configures the Gemini adapter.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// RetryConfig tunes backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// DefaultConfig returns working defaults for everything but API keys.
func DefaultConfig() Config {
	return Config{
		Provider: "anthropic",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv reads STUDYQUEST_* environment variables over the
// defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	set := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set("STUDYQUEST_LLM_PROVIDER", &cfg.Provider)
	set("STUDYQUEST_ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey)
	set("STUDYQUEST_ANTHROPIC_MODEL", &cfg.Anthropic.Model)
	set("STUDYQUEST_OPENAI_API_KEY", &cfg.OpenAI.APIKey)
	set("STUDYQUEST_OPENAI_MODEL", &cfg.OpenAI.Model)
	set("STUDYQUEST_OPENAI_BASE_URL", &cfg.OpenAI.BaseURL)
	set("STUDYQUEST_GEMINI_API_KEY", &cfg.Gemini.APIKey)
	set("STUDYQUEST_GEMINI_MODEL", &cfg.Gemini.Model)

	if cfg.Provider == "openrouter" && cfg.OpenAI.BaseURL == "" {
		cfg.OpenAI.BaseURL = openRouterBaseURL
	}
	return cfg
}

// Validate checks that the selected provider has what it needs.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("llm: STUDYQUEST_ANTHROPIC_API_KEY is not set")
		}
	case "openai", "openrouter":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("llm: STUDYQUEST_OPENAI_API_KEY is not set")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("llm: STUDYQUEST_GEMINI_API_KEY is not set")
		}
	case "mock":
	default:
		return fmt.Errorf("llm: unknown provider %q", c.Provider)
	}
	return nil
}
