package llm

import (
	"testing"
	"time"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("anthropic model = %q, want claude-haiku", cfg.Anthropic.Model)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", cfg.Timeout)
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("STUDYQUEST_LLM_PROVIDER", "openai")
	t.Setenv("STUDYQUEST_OPENAI_API_KEY", "sk-test")
	t.Setenv("STUDYQUEST_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("api key = %q, want sk-test", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("model = %q, want gpt-4o", cfg.OpenAI.Model)
	}
}

func TestConfigOpenRouterFillsBaseURL(t *testing.T) {
	t.Setenv("STUDYQUEST_LLM_PROVIDER", "openrouter")
	t.Setenv("STUDYQUEST_OPENAI_API_KEY", "sk-or")

	cfg := ConfigFromEnv()
	if cfg.OpenAI.BaseURL != openRouterBaseURL {
		t.Errorf("base url = %q, want %q", cfg.OpenAI.BaseURL, openRouterBaseURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"anthropic without key", func(c *Config) { c.Provider = "anthropic" }, true},
		{"anthropic with key", func(c *Config) { c.Provider = "anthropic"; c.Anthropic.APIKey = "k" }, false},
		{"openai without key", func(c *Config) { c.Provider = "openai" }, true},
		{"gemini with key", func(c *Config) { c.Provider = "gemini"; c.Gemini.APIKey = "k" }, false},
		{"mock needs nothing", func(c *Config) { c.Provider = "mock" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "oracle" }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("want error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("Validate: %v", err)
			}
		})
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("known model should have pricing")
	}
	got := c.Cost(1_000_000, 1_000_000)
	want := 0.15 + 0.6
	if got != want {
		t.Errorf("cost = %v, want %v", got, want)
	}
	if LookupCost("made-up-model") != nil {
		t.Error("unknown model should have nil pricing")
	}
}
