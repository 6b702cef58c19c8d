package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"aeron/internal/config"
	"aeron/internal/llm"
	"aeron/internal/model"
)

type fakeProvider struct {
	name     string
	model    string
	response string
	usage    llm.Usage
	err      error
	prompts  []string
}

func (f *fakeProvider) Name() string  { return f.name }
func (f *fakeProvider) Model() string { return f.model }

func (f *fakeProvider) Complete(ctx context.Context, prompt string) (string, llm.Usage, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.usage, f.err
}

func registryWith(t *testing.T, p llm.Provider) *llm.Registry {
	t.Helper()
	registry := llm.NewRegistry(&config.AIConfig{})
	if !registry.Register("openai", p) {
		t.Fatal("failed to register fake provider")
	}
	return registry
}

func TestAIGenerateWithoutProvider(t *testing.T) {
	svc := NewAIService(llm.NewRegistry(&config.AIConfig{}))

	result := svc.Generate(context.Background(), testDisruption(model.SeverityHigh), nil)
	if result.Error != "No LLM provider configured" {
		t.Fatalf("error = %q, want no-provider envelope", result.Error)
	}
	if len(result.Options) != 0 || len(result.Steps) != 0 {
		t.Fatalf("expected empty drafts, got %d options %d steps", len(result.Options), len(result.Steps))
	}
	if result.Metadata.Generator != model.GeneratorAIPowered {
		t.Fatalf("metadata generator = %s", result.Metadata.Generator)
	}
	if result.Metadata.Provider != "none" {
		t.Fatalf("metadata provider = %s, want none", result.Metadata.Provider)
	}
}

func TestAIGenerateParsesFencedResponse(t *testing.T) {
	provider := &fakeProvider{
		name:  "openai",
		model: "gpt-3.5-turbo",
		usage: llm.Usage{InputTokens: 900, OutputTokens: 300},
		response: "```json\n" + `{
  "option": {
    "title": "Aircraft Swap via Spare B737",
    "description": "Assign the spare aircraft parked at DXB.",
    "cost": "AED 21,000",
    "timeline": "75 minutes",
    "confidence": 140,
    "impact": "Medium operational impact",
    "status": "recommended",
    "priority": 1,
    "advantages": ["Fast turnaround"],
    "considerations": ["Spare availability"],
    "impact_area": ["aircraft", "operations"],
    "impact_summary": "Swap recovers the rotation with minimal delay.",
    "metrics": {"costEfficiency": 80, "timeEfficiency": 88, "passengerSatisfaction": 82, "crewViolations": 0, "aircraftSwaps": 1, "networkImpact": "Low"}
  },
  "steps": [
    {"step": 1, "title": "Notify OCC", "status": "completed", "timestamp": "2026-03-14T09:00:00Z", "system": "OCC", "details": "Swap approved", "data": {"flight_number": "FZ521"}},
    {"title": "Tow spare aircraft", "status": "definitely-not-a-status", "timestamp": "not a timestamp", "system": "AMOS", "details": "Tow to stand"}
  ]
}` + "\n```",
	}

	svc := NewAIService(registryWith(t, provider))
	disruption := testDisruption(model.SeverityHigh)

	result := svc.Generate(context.Background(), disruption, nil)
	if result.Error != "" {
		t.Fatalf("unexpected error: %s", result.Error)
	}
	if len(result.Options) != 1 {
		t.Fatalf("got %d options, want 1", len(result.Options))
	}

	option := result.Options[0]
	if option.Title != "Aircraft Swap via Spare B737" {
		t.Fatalf("option title = %q", option.Title)
	}
	if option.Confidence != 100 {
		t.Fatalf("confidence = %d, want clamped to 100", option.Confidence)
	}
	if option.Status != model.OptionRecommended {
		t.Fatalf("status = %s", option.Status)
	}
	if option.DisruptionID != disruption.ID {
		t.Fatalf("option bound to %q", option.DisruptionID)
	}
	if option.DisruptionContext == nil || option.DisruptionContext.FlightNumber != "FZ521" {
		t.Fatal("missing disruption context")
	}

	if len(result.Steps) != 2 {
		t.Fatalf("got %d steps, want 2", len(result.Steps))
	}
	if result.Steps[1].StepNumber != 2 {
		t.Fatalf("unnumbered step got %d, want 2", result.Steps[1].StepNumber)
	}
	if result.Steps[1].Status != model.StepPending {
		t.Fatalf("invalid status normalized to %s, want pending", result.Steps[1].Status)
	}

	if result.Metadata.Provider != "openai" {
		t.Fatalf("metadata provider = %s", result.Metadata.Provider)
	}
	if result.Metadata.TokensUsed != 1200 {
		t.Fatalf("tokens used = %d, want 1200", result.Metadata.TokensUsed)
	}
}

func TestAIGeneratePromptContents(t *testing.T) {
	provider := &fakeProvider{
		name:     "anthropic",
		model:    "claude-3-sonnet-20240229",
		response: `{"option": null, "steps": []}`,
	}

	svc := NewAIService(registryWith(t, provider))
	category := &model.DisruptionCategory{
		Code: model.CategoryCrewIssue,
		Name: "Crew Issue",
	}

	svc.Generate(context.Background(), testDisruption(model.SeverityHigh), category)
	if len(provider.prompts) != 1 {
		t.Fatalf("provider called %d times, want 1", len(provider.prompts))
	}

	prompt := provider.prompts[0]
	if !strings.Contains(prompt, "FZ521") {
		t.Fatal("prompt missing flight number")
	}
	if !strings.Contains(prompt, "Crew Issue") {
		t.Fatal("prompt missing category name")
	}
	if !strings.Contains(prompt, "Standby crew assignment") {
		t.Fatal("prompt missing category strategy hint")
	}
	if !strings.Contains(prompt, "exactly ONE recovery option") {
		t.Fatal("prompt missing single-option instruction")
	}
}

func TestAIGenerateMissingOptionKey(t *testing.T) {
	provider := &fakeProvider{
		name:     "openai",
		model:    "gpt-3.5-turbo",
		response: `{"steps": [{"step": 1, "title": "Check", "status": "pending", "system": "OCC", "details": "x"}]}`,
	}

	svc := NewAIService(registryWith(t, provider))
	result := svc.Generate(context.Background(), testDisruption(model.SeverityMedium), nil)

	if result.Error != "" {
		t.Fatalf("missing option key should not be an error, got %q", result.Error)
	}
	if len(result.Options) != 0 {
		t.Fatalf("got %d options, want 0", len(result.Options))
	}
	if len(result.Steps) != 1 {
		t.Fatalf("got %d steps, want 1", len(result.Steps))
	}
}

func TestAIGenerateProviderFailure(t *testing.T) {
	provider := &fakeProvider{
		name:  "gemini",
		model: "gemini-pro",
		err:   errors.New("upstream timeout"),
	}

	svc := NewAIService(registryWith(t, provider))
	result := svc.Generate(context.Background(), testDisruption(model.SeverityMedium), nil)

	if result.Error != "upstream timeout" {
		t.Fatalf("error = %q", result.Error)
	}
	if len(result.Options) != 0 || len(result.Steps) != 0 {
		t.Fatal("failed generation should carry empty drafts")
	}
	if result.Metadata.Provider != "gemini" {
		t.Fatalf("metadata provider = %s", result.Metadata.Provider)
	}
}

func TestAIGenerateMalformedJSON(t *testing.T) {
	provider := &fakeProvider{
		name:     "openai",
		model:    "gpt-3.5-turbo",
		response: "Sure! Here is the recovery plan you asked for.",
	}

	svc := NewAIService(registryWith(t, provider))
	result := svc.Generate(context.Background(), testDisruption(model.SeverityMedium), nil)

	if result.Error == "" {
		t.Fatal("expected parse error in envelope")
	}
	if len(result.Options) != 0 {
		t.Fatalf("got %d options, want 0", len(result.Options))
	}
}
