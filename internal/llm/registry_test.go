package llm

import (
	"context"
	"testing"

	"aeron/internal/config"
)

type stubProvider struct {
	name  string
	model string
}

func (s *stubProvider) Name() string  { return s.name }
func (s *stubProvider) Model() string { return s.model }

func (s *stubProvider) Complete(ctx context.Context, prompt string) (string, Usage, error) {
	return "", Usage{}, nil
}

func TestRegistryEmpty(t *testing.T) {
	registry := NewRegistry(&config.AIConfig{})

	if _, ok := registry.Current(); ok {
		t.Fatal("empty registry should have no current provider")
	}

	info := registry.CurrentInfo()
	if info.Provider != "none" || info.Model != "none" {
		t.Fatalf("empty registry info = %+v, want none/none sentinel", info)
	}

	if got := registry.Available(); len(got) != 0 {
		t.Fatalf("empty registry lists %v", got)
	}
}

func TestRegistryRegisterSelectsFirst(t *testing.T) {
	registry := NewRegistry(&config.AIConfig{})

	if !registry.Register("gemini", &stubProvider{name: "gemini", model: "gemini-pro"}) {
		t.Fatal("register gemini failed")
	}
	if !registry.Register("openai", &stubProvider{name: "openai", model: "gpt-3.5-turbo"}) {
		t.Fatal("register openai failed")
	}

	// First registration becomes current; later ones do not displace it.
	info := registry.CurrentInfo()
	if info.Provider != "gemini" {
		t.Fatalf("current = %s, want gemini", info.Provider)
	}

	available := registry.Available()
	if len(available) != 2 || available[0] != "gemini" || available[1] != "openai" {
		t.Fatalf("available = %v, want sorted [gemini openai]", available)
	}
}

func TestRegistryRejectsUnknownNames(t *testing.T) {
	registry := NewRegistry(&config.AIConfig{})

	if registry.Register("mistral", &stubProvider{name: "mistral"}) {
		t.Fatal("unknown provider name should be rejected")
	}
}

func TestRegistrySwitch(t *testing.T) {
	registry := NewRegistry(&config.AIConfig{})
	registry.Register("openai", &stubProvider{name: "openai", model: "gpt-3.5-turbo"})
	registry.Register("anthropic", &stubProvider{name: "anthropic", model: "claude-3-sonnet-20240229"})

	if !registry.Switch("anthropic") {
		t.Fatal("switch to registered provider failed")
	}
	if info := registry.CurrentInfo(); info.Provider != "anthropic" {
		t.Fatalf("current = %s after switch", info.Provider)
	}

	// Unknown identifier: rejected, state unchanged.
	if registry.Switch("bard") {
		t.Fatal("switch to unknown identifier should fail")
	}
	if info := registry.CurrentInfo(); info.Provider != "anthropic" {
		t.Fatalf("failed switch changed current to %s", info.Provider)
	}

	// Known identifier without a registered provider: same deal.
	if registry.Switch("gemini") {
		t.Fatal("switch to unregistered provider should fail")
	}
	if info := registry.CurrentInfo(); info.Provider != "anthropic" {
		t.Fatalf("failed switch changed current to %s", info.Provider)
	}
}

func TestRegistryDefaultProviderSelection(t *testing.T) {
	cfg := &config.AIConfig{
		Anthropic: config.ProviderConfig{
			Provider: "anthropic",
			Model:    "claude-3-sonnet-20240229",
			APIKey:   "test-key",
		},
		DefaultProvider: "anthropic",
	}

	registry := NewRegistry(cfg)
	if info := registry.CurrentInfo(); info.Provider != "anthropic" {
		t.Fatalf("configured default not selected, current = %s", info.Provider)
	}

	// Default names a provider without a credential: fall back to whatever
	// is registered.
	cfg.DefaultProvider = "openai"
	registry = NewRegistry(cfg)
	if info := registry.CurrentInfo(); info.Provider != "anthropic" {
		t.Fatalf("fallback selection failed, current = %s", info.Provider)
	}
}
