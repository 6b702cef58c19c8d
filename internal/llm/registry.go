package llm

import (
	"log"
	"net/http"
	"sort"
	"sync"
	"time"

	"aeron/internal/config"
)

// ProviderInfo identifies the active provider in API responses.
type ProviderInfo struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

var knownProviders = map[string]bool{
	"openai":    true,
	"anthropic": true,
	"gemini":    true,
}

// Registry holds the configured providers and which one is current. Providers
// are registered once at construction; only the current selection mutates.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	current   string
}

// NewRegistry builds providers for every backend with a credential and
// applies the default-selection rule: the configured default if registered,
// otherwise the first registered one, otherwise none.
func NewRegistry(cfg *config.AIConfig) *Registry {
	client := &http.Client{
		Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
	}

	r := &Registry{providers: make(map[string]Provider)}

	if cfg.OpenAI.IsConfigured() {
		r.providers["openai"] = newOpenAIProvider(cfg.OpenAI, client)
	}
	if cfg.Anthropic.IsConfigured() {
		r.providers["anthropic"] = newAnthropicProvider(cfg.Anthropic, client)
	}
	if cfg.Gemini.IsConfigured() {
		r.providers["gemini"] = newGeminiProvider(cfg.Gemini, client)
	}

	if _, ok := r.providers[cfg.DefaultProvider]; ok {
		r.current = cfg.DefaultProvider
	} else {
		for _, name := range r.Available() {
			r.current = name
			break
		}
	}

	log.Printf("llm registry initialized providers=%d current=%s", len(r.providers), r.currentOrNone())
	return r
}

// Register installs a provider under one of the known names, becoming current
// when nothing else is selected. Unknown names are rejected.
func (r *Registry) Register(name string, p Provider) bool {
	if !knownProviders[name] {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
	if r.current == "" {
		r.current = name
	}
	return true
}

// Current returns the active provider, or false when none is configured.
func (r *Registry) Current() (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[r.current]
	return p, ok
}

// CurrentInfo reports the active provider and model, with a "none"/"none"
// sentinel when nothing is configured.
func (r *Registry) CurrentInfo() ProviderInfo {
	p, ok := r.Current()
	if !ok {
		return ProviderInfo{Provider: "none", Model: "none"}
	}
	return ProviderInfo{Provider: p.Name(), Model: p.Model()}
}

// Switch changes the current provider. It fails, leaving state unchanged,
// when the name is not a known provider identifier or not registered.
func (r *Registry) Switch(name string) bool {
	if !knownProviders[name] {
		log.Printf("llm registry unknown provider: %s", name)
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.providers[name]; !ok {
		log.Printf("llm registry provider not configured: %s", name)
		return false
	}
	r.current = name
	log.Printf("llm registry switched provider=%s", name)
	return true
}

// Available lists the registered provider names, sorted.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) currentOrNone() string {
	if r.current == "" {
		return "none"
	}
	return r.current
}
