package service

import (
	"testing"

	"aeron/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		categorization string
		disruptionType string
		want           model.CategoryCode
	}{
		{"aog", "Aircraft issue (e.g., AOG)", "Technical", model.CategoryAircraftIssue},
		{"engine keyword", "engine fault on stand", "", model.CategoryAircraftIssue},
		{"crew duty time", "Crew issue (duty time breach)", "Crew", model.CategoryCrewIssue},
		{"sick report", "captain called in sick", "", model.CategoryCrewIssue},
		{"weather", "ATC/weather delay", "Weather", model.CategoryATCWeather},
		{"thunderstorm", "severe thunderstorm over the field", "", model.CategoryATCWeather},
		{"curfew", "airport curfew at destination", "", model.CategoryCurfewCongestion},
		{"rotation", "rotation misalignment with maintenance", "", model.CategoryRotationMaintenance},
		{"case insensitive", "AIRCRAFT GROUNDED", "", model.CategoryAircraftIssue},
		{"empty falls back", "", "", model.CategoryAircraftIssue},
		{"unmatched falls back", "industrial action at handler", "", model.CategoryAircraftIssue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.categorization, tt.disruptionType); got != tt.want {
				t.Fatalf("Classify(%q, %q) = %s, want %s", tt.categorization, tt.disruptionType, got, tt.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	// "crew" and "weather" both appear; earlier keyword sets win.
	got := Classify("crew rest disrupted by weather diversion", "")
	if got != model.CategoryCrewIssue {
		t.Fatalf("expected CREW_ISSUE for mixed text, got %s", got)
	}

	for i := 0; i < 10; i++ {
		if next := Classify("crew rest disrupted by weather diversion", ""); next != got {
			t.Fatalf("classification not stable: %s then %s", got, next)
		}
	}
}
