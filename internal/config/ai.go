package config

import (
	"os"
	"strconv"
)

// ProviderConfig holds the settings for one LLM backend. Built once at
// startup from environment variables and immutable afterwards.
type ProviderConfig struct {
	Provider    string  `json:"provider"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"maxTokens"`
	APIKey      string  `json:"-"` // Never serialize
	BaseURL     string  `json:"baseUrl,omitempty"`
}

// AIConfig holds all AI-related configuration.
type AIConfig struct {
	OpenAI    ProviderConfig `json:"openai"`
	Anthropic ProviderConfig `json:"anthropic"`
	Gemini    ProviderConfig `json:"gemini"`

	// DefaultProvider names the provider preferred at startup.
	DefaultProvider string `json:"defaultProvider"`
	TimeoutMS       int    `json:"timeoutMs"`
}

// DefaultAIConfig reads provider settings from the environment.
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		OpenAI: ProviderConfig{
			Provider:    "openai",
			Model:       getEnvOrDefault("OPENAI_MODEL", "gpt-3.5-turbo"),
			Temperature: getEnvFloat("OPENAI_TEMPERATURE", 0.7),
			MaxTokens:   getEnvInt("OPENAI_MAX_TOKENS", 4000),
			APIKey:      os.Getenv("OPENAI_API_KEY"),
			BaseURL:     getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		},
		Anthropic: ProviderConfig{
			Provider:    "anthropic",
			Model:       getEnvOrDefault("ANTHROPIC_MODEL", "claude-3-sonnet-20240229"),
			Temperature: getEnvFloat("ANTHROPIC_TEMPERATURE", 0.7),
			MaxTokens:   getEnvInt("ANTHROPIC_MAX_TOKENS", 32000),
			APIKey:      os.Getenv("ANTHROPIC_API_KEY"),
		},
		Gemini: ProviderConfig{
			Provider:    "gemini",
			Model:       getEnvOrDefault("GEMINI_MODEL", "gemini-pro"),
			Temperature: getEnvFloat("GEMINI_TEMPERATURE", 0.7),
			MaxTokens:   getEnvInt("GEMINI_MAX_TOKENS", 8192),
			APIKey:      os.Getenv("GEMINI_API_KEY"),
			BaseURL:     getEnvOrDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/models"),
		},
		DefaultProvider: getEnvOrDefault("LLM_DEFAULT_PROVIDER", "openai"),
		TimeoutMS:       getEnvInt("LLM_TIMEOUT_MS", 60000),
	}
}

// IsConfigured reports whether the provider has a credential.
func (p ProviderConfig) IsConfigured() bool {
	return p.APIKey != ""
}

// ModelEndpoint returns the full Gemini endpoint for the configured model.
func (p ProviderConfig) ModelEndpoint() string {
	return p.BaseURL + "/" + p.Model + ":generateContent"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
