package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aeron/internal/config"
	"aeron/internal/llm"
)

type staticProvider struct {
	name  string
	model string
}

func (p *staticProvider) Name() string  { return p.name }
func (p *staticProvider) Model() string { return p.model }

func (p *staticProvider) Complete(ctx context.Context, prompt string) (string, llm.Usage, error) {
	return "", llm.Usage{}, nil
}

func TestProviderGet(t *testing.T) {
	registry := llm.NewRegistry(&config.AIConfig{})
	registry.Register("openai", &staticProvider{name: "openai", model: "gpt-3.5-turbo"})
	registry.Register("gemini", &staticProvider{name: "gemini", model: "gemini-pro"})

	h := NewProviderHandler(registry, nil)

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest("GET", "/api/llm/provider", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Current struct {
			Provider string `json:"provider"`
			Model    string `json:"model"`
		} `json:"current_provider"`
		Available []string `json:"available_providers"`
		Total     int      `json:"total_providers"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if body.Current.Provider != "openai" {
		t.Fatalf("current provider = %s", body.Current.Provider)
	}
	if body.Total != 2 || len(body.Available) != 2 {
		t.Fatalf("total = %d available = %v", body.Total, body.Available)
	}
}

func TestProviderGetNoneConfigured(t *testing.T) {
	h := NewProviderHandler(llm.NewRegistry(&config.AIConfig{}), nil)

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest("GET", "/api/llm/provider", nil))

	var body struct {
		Current struct {
			Provider string `json:"provider"`
			Model    string `json:"model"`
		} `json:"current_provider"`
		Total int `json:"total_providers"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if body.Current.Provider != "none" || body.Current.Model != "none" {
		t.Fatalf("sentinel = %+v", body.Current)
	}
	if body.Total != 0 {
		t.Fatalf("total = %d", body.Total)
	}
}

func TestProviderSwitch(t *testing.T) {
	registry := llm.NewRegistry(&config.AIConfig{})
	registry.Register("openai", &staticProvider{name: "openai", model: "gpt-3.5-turbo"})
	registry.Register("anthropic", &staticProvider{name: "anthropic", model: "claude-3-sonnet-20240229"})

	h := NewProviderHandler(registry, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/llm/provider/switch", strings.NewReader(`{"provider":"anthropic"}`))
	h.Switch(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if registry.CurrentInfo().Provider != "anthropic" {
		t.Fatalf("current = %s after switch", registry.CurrentInfo().Provider)
	}
}

func TestProviderSwitchRejectsUnknown(t *testing.T) {
	registry := llm.NewRegistry(&config.AIConfig{})
	registry.Register("openai", &staticProvider{name: "openai", model: "gpt-3.5-turbo"})

	h := NewProviderHandler(registry, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/llm/provider/switch", strings.NewReader(`{"provider":"gemini"}`))
	h.Switch(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if registry.CurrentInfo().Provider != "openai" {
		t.Fatalf("failed switch changed current to %s", registry.CurrentInfo().Provider)
	}

	var body struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Success {
		t.Fatal("success should be false")
	}
}
