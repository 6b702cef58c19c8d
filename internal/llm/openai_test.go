package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aeron/internal/config"
)

func TestOpenAIComplete(t *testing.T) {
	var gotAuth string
	var gotReq openAIRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decoding request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"choices": [{"message": {"content": "{\"option\": null}"}}],
			"usage": {"prompt_tokens": 120, "completion_tokens": 30, "total_tokens": 150}
		}`))
	}))
	defer srv.Close()

	provider := newOpenAIProvider(config.ProviderConfig{
		Provider:    "openai",
		Model:       "gpt-3.5-turbo",
		Temperature: 0.7,
		MaxTokens:   4000,
		APIKey:      "sk-test",
		BaseURL:     srv.URL,
	}, srv.Client())

	text, usage, err := provider.Complete(context.Background(), "generate recovery")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != `{"option": null}` {
		t.Fatalf("text = %q", text)
	}
	if usage.TotalTokens() != 150 {
		t.Fatalf("total tokens = %d", usage.TotalTokens())
	}

	if gotAuth != "Bearer sk-test" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotReq.Model != "gpt-3.5-turbo" {
		t.Fatalf("request model = %q", gotReq.Model)
	}
	if gotReq.MaxTokens != 4000 {
		t.Fatalf("request max_tokens = %d", gotReq.MaxTokens)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" {
		t.Fatalf("unexpected messages: %+v", gotReq.Messages)
	}
}

func TestOpenAICompleteAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "Incorrect API key provided"}}`))
	}))
	defer srv.Close()

	provider := newOpenAIProvider(config.ProviderConfig{
		Model:   "gpt-3.5-turbo",
		APIKey:  "bad-key",
		BaseURL: srv.URL,
	}, srv.Client())

	_, _, err := provider.Complete(context.Background(), "prompt")
	if err == nil || !strings.Contains(err.Error(), "Incorrect API key") {
		t.Fatalf("err = %v, want upstream message", err)
	}
}

func TestOpenAICompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	provider := newOpenAIProvider(config.ProviderConfig{
		Model:   "gpt-3.5-turbo",
		APIKey:  "sk-test",
		BaseURL: srv.URL,
	}, srv.Client())

	_, _, err := provider.Complete(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestGeminiComplete(t *testing.T) {
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/gemini-pro:generateContent") {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "g-test" {
			t.Fatalf("key param = %q", r.URL.Query().Get("key"))
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decoding request: %v", err)
		}

		w.Write([]byte(`{
			"candidates": [{"content": {"parts": [{"text": "{\"steps\": []}"}]}}],
			"usageMetadata": {"promptTokenCount": 80, "candidatesTokenCount": 20}
		}`))
	}))
	defer srv.Close()

	provider := newGeminiProvider(config.ProviderConfig{
		Provider:    "gemini",
		Model:       "gemini-pro",
		Temperature: 0.7,
		MaxTokens:   8192,
		APIKey:      "g-test",
		BaseURL:     srv.URL,
	}, srv.Client())

	text, usage, err := provider.Complete(context.Background(), "generate recovery")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != `{"steps": []}` {
		t.Fatalf("text = %q", text)
	}
	if usage.InputTokens != 80 || usage.OutputTokens != 20 {
		t.Fatalf("usage = %+v", usage)
	}

	genCfg, ok := gotBody["generationConfig"].(map[string]interface{})
	if !ok {
		t.Fatal("request missing generationConfig")
	}
	if genCfg["responseMimeType"] != "application/json" {
		t.Fatalf("responseMimeType = %v", genCfg["responseMimeType"])
	}
}

func TestGeminiCompleteEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	provider := newGeminiProvider(config.ProviderConfig{
		Model:   "gemini-pro",
		APIKey:  "g-test",
		BaseURL: srv.URL,
	}, srv.Client())

	_, _, err := provider.Complete(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error for empty candidates")
	}
}
