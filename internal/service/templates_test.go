package service

import (
	"strings"
	"testing"

	"aeron/internal/model"
)

var allCategories = []model.CategoryCode{
	model.CategoryAircraftIssue,
	model.CategoryCrewIssue,
	model.CategoryATCWeather,
	model.CategoryCurfewCongestion,
	model.CategoryRotationMaintenance,
}

func TestTemplatesForEveryCategory(t *testing.T) {
	for _, code := range allCategories {
		templates := TemplatesFor(code)
		if len(templates) == 0 {
			t.Fatalf("no templates for category %s", code)
		}

		for _, tmpl := range templates {
			if tmpl.Title == "" {
				t.Fatalf("category %s has a template without a title", code)
			}
			if tmpl.Confidence < 0 || tmpl.Confidence > 100 {
				t.Fatalf("template %q confidence out of range: %d", tmpl.Title, tmpl.Confidence)
			}
			if tmpl.Priority < 1 {
				t.Fatalf("template %q priority must be positive, got %d", tmpl.Title, tmpl.Priority)
			}
			if !strings.Contains(tmpl.ImpactSummary, "FZ147") {
				t.Fatalf("template %q impact summary missing flight placeholder", tmpl.Title)
			}
		}
	}
}

func TestTemplatesForUnknownCategoryFallsBack(t *testing.T) {
	fallback := TemplatesFor(model.CategoryCode("NOT_A_CATEGORY"))
	aircraft := TemplatesFor(model.CategoryAircraftIssue)

	if len(fallback) != len(aircraft) {
		t.Fatalf("unknown category returned %d templates, want %d", len(fallback), len(aircraft))
	}
	for i := range fallback {
		if fallback[i].Title != aircraft[i].Title {
			t.Fatalf("unknown category template %d = %q, want %q", i, fallback[i].Title, aircraft[i].Title)
		}
	}
}

func TestTemplatesAreFreshCopies(t *testing.T) {
	first := TemplatesFor(model.CategoryCrewIssue)
	first[0].Title = "mutated"

	second := TemplatesFor(model.CategoryCrewIssue)
	if second[0].Title == "mutated" {
		t.Fatal("template mutation leaked into subsequent calls")
	}
}
