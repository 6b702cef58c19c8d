package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"aeron/internal/model"
)

// GeneratorService produces recovery options from the hand-authored template
// catalog. All methods are pure with respect to the disruption record.
type GeneratorService struct{}

func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate builds customized recovery options and a step plan for one
// disruption. It never returns an error: any failure during customization is
// converted into an empty envelope with the Error field set.
func (s *GeneratorService) Generate(disruption *model.FlightDisruption, category *model.DisruptionCategory) (result *model.GenerationResult) {
	now := time.Now()

	defer func() {
		if r := recover(); r != nil {
			result = &model.GenerationResult{
				Options: []model.RecoveryOption{},
				Steps:   []model.RecoveryStep{},
				Error:   fmt.Sprintf("%v", r),
				Metadata: model.GenerationMetadata{
					GenerationTime: now,
					Generator:      model.GeneratorTemplateBased,
					Error:          fmt.Sprintf("%v", r),
				},
			}
		}
	}()

	code := resolveCategoryCode(disruption, category)
	templates := TemplatesFor(code)

	options := make([]model.RecoveryOption, 0, len(templates))
	for _, template := range templates {
		options = append(options, customizeOption(template, disruption, now))
	}

	return &model.GenerationResult{
		Options: options,
		Steps:   buildStepPlan(disruption, now),
		Metadata: model.GenerationMetadata{
			CategoryCode:   code,
			DisruptionID:   disruption.ID,
			FlightNumber:   disruption.FlightNumber,
			GenerationTime: now,
			Generator:      model.GeneratorTemplateBased,
		},
	}
}

// resolveCategoryCode prefers an explicit category, then classifies the
// disruption's categorization text, then defaults.
func resolveCategoryCode(disruption *model.FlightDisruption, category *model.DisruptionCategory) model.CategoryCode {
	if category != nil && category.Code != "" {
		return category.Code
	}
	if disruption.Categorization != "" {
		return Classify(disruption.Categorization, disruption.DisruptionType)
	}
	return model.CategoryAircraftIssue
}

func customizeOption(template model.RecoveryOption, disruption *model.FlightDisruption, now time.Time) model.RecoveryOption {
	option := template
	option.ID = uuid.NewString()
	option.DisruptionID = disruption.ID
	option.CreatedAt = now
	option.UpdatedAt = now

	flightNumber := disruption.FlightNumber
	if flightNumber == "" {
		flightNumber = "Unknown"
	}
	// Template summaries carry the FZ147 placeholder flight.
	if option.ImpactSummary != "" {
		option.ImpactSummary = strings.ReplaceAll(option.ImpactSummary, "FZ147", flightNumber)
	}

	// Severity nudges: critical disruptions force the top slot, low-severity
	// ones drop at least one rank.
	switch disruption.Severity {
	case model.SeverityCritical:
		option.Priority = 1
		option.Status = model.OptionRecommended
	case model.SeverityLow:
		if option.Priority < 2 {
			option.Priority = 2
		}
	}

	option.DisruptionContext = &model.DisruptionContext{
		FlightNumber: flightNumber,
		Aircraft:     disruption.Aircraft,
		Route:        disruption.Route,
		Passengers:   disruption.Passengers,
		DelayMinutes: disruption.DelayMinutes,
	}

	return option
}

// buildStepPlan emits the fixed 3-step implementation skeleton. The shape is
// identical for every category; only the interpolated flight data varies.
func buildStepPlan(disruption *model.FlightDisruption, now time.Time) []model.RecoveryStep {
	flightNumber := disruption.FlightNumber
	if flightNumber == "" {
		flightNumber = "Unknown"
	}

	return []model.RecoveryStep{
		{
			ID:           uuid.NewString(),
			DisruptionID: disruption.ID,
			StepNumber:   1,
			Title:        "Disruption Notification",
			Status:       model.StepCompleted,
			Timestamp:    now,
			System:       "AMOS",
			Details:      fmt.Sprintf("Disruption detected for flight %s. Recovery options analysis initiated.", flightNumber),
			StepData: map[string]any{
				"flight_number":        flightNumber,
				"disruption_type":      disruption.DisruptionType,
				"priority":             "High",
				"resources_allocated":  []string{"Recovery Team", "Operations Control"},
				"estimated_resolution": "60 minutes",
			},
		},
		{
			ID:           uuid.NewString(),
			DisruptionID: disruption.ID,
			StepNumber:   2,
			Title:        "Resource Assessment",
			Status:       model.StepInProgress,
			Timestamp:    now,
			System:       "Resource Management",
			Details:      "Evaluating available resources including crew, aircraft, and ground services.",
			StepData: map[string]any{
				"aircraft":        disruption.Aircraft,
				"passengers":      disruption.Passengers,
				"crew_required":   "Flight crew + Cabin crew",
				"ground_services": []string{"Ground Handling", "Passenger Services"},
			},
		},
		{
			ID:           uuid.NewString(),
			DisruptionID: disruption.ID,
			StepNumber:   3,
			Title:        "Recovery Implementation",
			Status:       model.StepPending,
			Timestamp:    now,
			System:       "Operations Control",
			Details:      fmt.Sprintf("Execute selected recovery option for %s.", flightNumber),
			StepData: map[string]any{
				"recovery_type":        "Template-based option",
				"expected_completion":  "As per selected option timeline",
				"monitoring_frequency": "15 minutes",
				"escalation_threshold": "120 minutes",
			},
		},
	}
}
