package service

import (
	"strings"

	"aeron/internal/model"
)

// categoryKeywords is evaluated in order; the first set with a match wins.
var categoryKeywords = []struct {
	code     model.CategoryCode
	keywords []string
}{
	{model.CategoryAircraftIssue, []string{"aircraft", "aog", "technical", "engine"}},
	{model.CategoryCrewIssue, []string{"crew", "duty time", "sick"}},
	{model.CategoryATCWeather, []string{"weather", "atc", "fog", "storm"}},
	{model.CategoryCurfewCongestion, []string{"airport", "curfew", "congestion", "runway"}},
	{model.CategoryRotationMaintenance, []string{"rotation", "maintenance"}},
}

// Classify maps free-text categorization and disruption-type strings to a
// category code by case-insensitive keyword matching. Text that matches no
// keyword set falls back to AIRCRAFT_ISSUE.
func Classify(categorization, disruptionType string) model.CategoryCode {
	text := strings.ToLower(categorization + " " + disruptionType)

	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				return entry.code
			}
		}
	}
	return model.CategoryAircraftIssue
}
