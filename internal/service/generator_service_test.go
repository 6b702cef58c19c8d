package service

import (
	"strings"
	"testing"
	"time"

	"aeron/internal/model"
)

func testDisruption(severity model.Severity) *model.FlightDisruption {
	return &model.FlightDisruption{
		ID:                 "disr-001",
		FlightNumber:       "FZ521",
		Route:              "DXB-ZAG",
		Origin:             "DXB",
		Destination:        "ZAG",
		Aircraft:           "B737-800 (A6-FDB)",
		ScheduledDeparture: time.Date(2026, 3, 14, 8, 30, 0, 0, time.UTC),
		EstimatedDeparture: time.Date(2026, 3, 14, 11, 30, 0, 0, time.UTC),
		DelayMinutes:       180,
		Passengers:         175,
		Crew:               6,
		Severity:           severity,
		DisruptionType:     "Technical",
		DisruptionReason:   "Engine fault detected during pre-flight checks",
		Categorization:     "Aircraft issue (e.g., AOG)",
	}
}

func TestGenerateCustomizesTemplates(t *testing.T) {
	svc := NewGeneratorService()
	disruption := testDisruption(model.SeverityMedium)

	result := svc.Generate(disruption, nil)
	if result.Error != "" {
		t.Fatalf("unexpected generation error: %s", result.Error)
	}
	if len(result.Options) == 0 {
		t.Fatal("expected at least one option")
	}

	seen := make(map[string]bool)
	for _, option := range result.Options {
		if option.ID == "" {
			t.Fatalf("option %q missing id", option.Title)
		}
		if seen[option.ID] {
			t.Fatalf("duplicate option id %s", option.ID)
		}
		seen[option.ID] = true

		if option.DisruptionID != disruption.ID {
			t.Fatalf("option %q bound to %q, want %q", option.Title, option.DisruptionID, disruption.ID)
		}
		if strings.Contains(option.ImpactSummary, "FZ147") {
			t.Fatalf("option %q still carries the placeholder flight: %s", option.Title, option.ImpactSummary)
		}
		if !strings.Contains(option.ImpactSummary, "FZ521") {
			t.Fatalf("option %q impact summary missing flight number: %s", option.Title, option.ImpactSummary)
		}
		if option.DisruptionContext == nil {
			t.Fatalf("option %q missing disruption context", option.Title)
		}
		if option.DisruptionContext.FlightNumber != "FZ521" {
			t.Fatalf("option %q context flight = %q", option.Title, option.DisruptionContext.FlightNumber)
		}
		if option.DisruptionContext.Passengers != 175 {
			t.Fatalf("option %q context passengers = %d", option.Title, option.DisruptionContext.Passengers)
		}
	}

	if result.Metadata.CategoryCode != model.CategoryAircraftIssue {
		t.Fatalf("metadata category = %s, want AIRCRAFT_ISSUE", result.Metadata.CategoryCode)
	}
	if result.Metadata.Generator != model.GeneratorTemplateBased {
		t.Fatalf("metadata generator = %s", result.Metadata.Generator)
	}
}

func TestGenerateCriticalSeverityForcesTopSlot(t *testing.T) {
	svc := NewGeneratorService()

	result := svc.Generate(testDisruption(model.SeverityCritical), nil)
	if result.Error != "" {
		t.Fatalf("unexpected generation error: %s", result.Error)
	}

	for _, option := range result.Options {
		if option.Priority != 1 {
			t.Fatalf("critical disruption option %q priority = %d, want 1", option.Title, option.Priority)
		}
		if option.Status != model.OptionRecommended {
			t.Fatalf("critical disruption option %q status = %s, want recommended", option.Title, option.Status)
		}
	}
}

func TestGenerateLowSeverityDemotesPriority(t *testing.T) {
	svc := NewGeneratorService()

	result := svc.Generate(testDisruption(model.SeverityLow), nil)
	if result.Error != "" {
		t.Fatalf("unexpected generation error: %s", result.Error)
	}

	for _, option := range result.Options {
		if option.Priority < 2 {
			t.Fatalf("low severity option %q priority = %d, want >= 2", option.Title, option.Priority)
		}
	}
}

func TestGenerateExplicitCategoryWins(t *testing.T) {
	svc := NewGeneratorService()
	disruption := testDisruption(model.SeverityMedium)
	category := &model.DisruptionCategory{
		Code: model.CategoryCrewIssue,
		Name: "Crew Issue",
	}

	result := svc.Generate(disruption, category)
	if result.Error != "" {
		t.Fatalf("unexpected generation error: %s", result.Error)
	}
	if result.Metadata.CategoryCode != model.CategoryCrewIssue {
		t.Fatalf("metadata category = %s, want CREW_ISSUE", result.Metadata.CategoryCode)
	}

	crewTemplates := TemplatesFor(model.CategoryCrewIssue)
	if len(result.Options) != len(crewTemplates) {
		t.Fatalf("got %d options, want %d crew templates", len(result.Options), len(crewTemplates))
	}
}

func TestGenerateStepPlan(t *testing.T) {
	svc := NewGeneratorService()
	disruption := testDisruption(model.SeverityHigh)

	result := svc.Generate(disruption, nil)
	if result.Error != "" {
		t.Fatalf("unexpected generation error: %s", result.Error)
	}
	if len(result.Steps) != 3 {
		t.Fatalf("got %d steps, want 3", len(result.Steps))
	}

	wantSystems := []string{"AMOS", "Resource Management", "Operations Control"}
	for i, step := range result.Steps {
		if step.StepNumber != i+1 {
			t.Fatalf("step %d numbered %d", i, step.StepNumber)
		}
		if step.System != wantSystems[i] {
			t.Fatalf("step %d system = %q, want %q", i+1, step.System, wantSystems[i])
		}
		if step.DisruptionID != disruption.ID {
			t.Fatalf("step %d bound to %q", i+1, step.DisruptionID)
		}
	}

	if !strings.Contains(result.Steps[0].Details, "FZ521") {
		t.Fatalf("first step details missing flight number: %s", result.Steps[0].Details)
	}
}

func TestGenerateStableTitleSets(t *testing.T) {
	svc := NewGeneratorService()
	disruption := testDisruption(model.SeverityMedium)

	titles := func() map[string]bool {
		result := svc.Generate(disruption, nil)
		set := make(map[string]bool, len(result.Options))
		for _, option := range result.Options {
			set[option.Title] = true
		}
		return set
	}

	first := titles()
	second := titles()
	if len(first) != len(second) {
		t.Fatalf("title set size changed between runs: %d vs %d", len(first), len(second))
	}
	for title := range first {
		if !second[title] {
			t.Fatalf("title %q missing from second run", title)
		}
	}
}
