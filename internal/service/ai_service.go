package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"aeron/internal/llm"
	"aeron/internal/model"
)

// categoryStrategies gives the prompt a per-category hint about which
// recovery shapes to prefer.
var categoryStrategies = map[model.CategoryCode]string{
	model.CategoryAircraftIssue:       "Aircraft swap, delay for repair, cancellation with rebooking",
	model.CategoryCrewIssue:           "Standby crew assignment, crew positioning, delay for rest completion",
	model.CategoryATCWeather:          "Delay for clearance, rerouting, cancellation",
	model.CategoryCurfewCongestion:    "Aircraft swap for earlier slot, overnight delay, alternative routing",
	model.CategoryRotationMaintenance: "Alternative aircraft assignment, schedule adjustments",
}

const recoveryPromptTemplate = `You are an expert flight operations recovery specialist. Generate ONE comprehensive recovery option with associated implementation steps for the following disruption, following industry best practices and regulatory compliance.

Flight Information:
- Flight: %s (%s)
- Aircraft: %s
- Scheduled: %s
- Current Status: %s
- Delay: %d minutes
- Passengers: %d
- Crew: %d
- Issue: %s - %s
- Severity: %s
- Category: %s

Based on the disruption category, focus on this recovery strategy:
%s

Generate exactly ONE recovery option with realistic costs, timelines, operational details, and implementation steps:

{
  "option": {
    "title": "Specific recovery action title",
    "description": "Detailed operational description with specific actions and procedures",
    "cost": "AED X,XXX",
    "timeline": "X hours/minutes",
    "confidence": 85,
    "impact": "Low/Medium/High passenger/operational impact",
    "status": "recommended/caution/warning",
    "priority": 1,
    "advantages": ["Specific operational advantage", "Cost/time efficiency benefit", "Passenger satisfaction benefit"],
    "considerations": ["Specific operational constraint", "Resource requirement", "Potential risk factor"],
    "impact_area": ["crew", "passenger", "aircraft", "operations"],
    "impact_summary": "Comprehensive impact analysis for %s: Brief summary of how this recovery affects operations, passengers, crew, and network.",
    "metrics": {
      "costEfficiency": 85,
      "timeEfficiency": 90,
      "passengerSatisfaction": 80,
      "crewViolations": 0,
      "aircraftSwaps": 1,
      "networkImpact": "Low/Medium/High"
    }
  },
  "steps": [
    {
      "step": 1,
      "title": "System notification",
      "status": "completed/in-progress/pending",
      "timestamp": "%s",
      "system": "AMOS/AIMS/OCC/Recovery Engine",
      "details": "Detailed step description with specific actions taken or required for %s",
      "data": {
        "flight_number": "%s",
        "disruption_type": "%s",
        "priority": "High/Medium/Low",
        "resources_allocated": ["Resource 1", "Resource 2"],
        "estimated_resolution": "XX minutes"
      }
    }
  ]
}

Important Guidelines:
1. Use realistic costs based on operation type and complexity
2. Provide specific, actionable timeline steps with realistic durations
3. Include proper system names (AMOS, AIMS, OCC, Recovery Engine)
4. Consider regulatory compliance (EU261, GCAA, crew duty time limits)
5. Ensure confidence scores reflect actual feasibility
6. Use appropriate status indicators (recommended/caution/warning)
7. Include network impact considerations for downstream flights

Return only valid JSON. No markdown formatting or extra text.`

// AIService generates recovery options by prompting the current LLM
// provider and parsing its JSON response.
type AIService struct {
	registry *llm.Registry
}

func NewAIService(registry *llm.Registry) *AIService {
	return &AIService{registry: registry}
}

// Registry exposes the provider registry for the transport layer.
func (s *AIService) Registry() *llm.Registry {
	return s.registry
}

// Generate produces one AI-generated recovery option plus its steps. Every
// failure mode (no provider, network error, malformed JSON) is reported in
// the result envelope; the method itself never returns an error.
func (s *AIService) Generate(ctx context.Context, disruption *model.FlightDisruption, category *model.DisruptionCategory) *model.GenerationResult {
	now := time.Now()

	provider, ok := s.registry.Current()
	if !ok {
		return &model.GenerationResult{
			Options: []model.RecoveryOption{},
			Steps:   []model.RecoveryStep{},
			Error:   "No LLM provider configured",
			Metadata: model.GenerationMetadata{
				GenerationTime: now,
				Generator:      model.GeneratorAIPowered,
				Provider:       "none",
				Error:          "No LLM provider configured",
			},
		}
	}

	prompt := buildRecoveryPrompt(disruption, category, now)

	log.Printf("ai recovery generate provider=%s model=%s flight=%s", provider.Name(), provider.Model(), disruption.FlightNumber)
	responseText, usage, err := provider.Complete(ctx, prompt)
	if err != nil {
		return s.errorResult(provider, now, usage, err)
	}

	options, steps, err := parseRecoveryResponse(responseText, disruption, now)
	if err != nil {
		return s.errorResult(provider, now, usage, err)
	}

	return &model.GenerationResult{
		Options: options,
		Steps:   steps,
		Metadata: model.GenerationMetadata{
			CategoryCode:   resolveCategoryCode(disruption, category),
			DisruptionID:   disruption.ID,
			FlightNumber:   disruption.FlightNumber,
			GenerationTime: now,
			Generator:      model.GeneratorAIPowered,
			Provider:       provider.Name(),
			Model:          provider.Model(),
			TokensUsed:     usage.TotalTokens(),
		},
	}
}

func (s *AIService) errorResult(provider llm.Provider, now time.Time, usage llm.Usage, err error) *model.GenerationResult {
	log.Printf("ai recovery generation failed provider=%s err=%v", provider.Name(), err)
	return &model.GenerationResult{
		Options: []model.RecoveryOption{},
		Steps:   []model.RecoveryStep{},
		Error:   err.Error(),
		Metadata: model.GenerationMetadata{
			GenerationTime: now,
			Generator:      model.GeneratorAIPowered,
			Provider:       provider.Name(),
			Model:          provider.Model(),
			TokensUsed:     usage.TotalTokens(),
			Error:          err.Error(),
		},
	}
}

func buildRecoveryPrompt(disruption *model.FlightDisruption, category *model.DisruptionCategory, now time.Time) string {
	code := resolveCategoryCode(disruption, category)
	strategy := categoryStrategies[code]

	categoryName := "General"
	if category != nil && category.Name != "" {
		categoryName = category.Name
	}

	route := disruption.Route
	if route == "" {
		route = fmt.Sprintf("%s → %s", disruption.Origin, disruption.Destination)
	}

	return fmt.Sprintf(recoveryPromptTemplate,
		disruption.FlightNumber,
		route,
		disruption.Aircraft,
		disruption.ScheduledDeparture.Format(time.RFC3339),
		disruption.EstimatedDeparture.Format(time.RFC3339),
		disruption.DelayMinutes,
		disruption.Passengers,
		disruption.Crew,
		disruption.DisruptionType,
		disruption.DisruptionReason,
		disruption.Severity,
		categoryName,
		strategy,
		disruption.FlightNumber,
		now.Format(time.RFC3339),
		disruption.FlightNumber,
		disruption.FlightNumber,
		disruption.DisruptionType,
	)
}

// aiOption mirrors the JSON schema the prompt asks for.
type aiOption struct {
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Cost           string               `json:"cost"`
	Timeline       string               `json:"timeline"`
	Confidence     int                  `json:"confidence"`
	Impact         string               `json:"impact"`
	Status         string               `json:"status"`
	Priority       int                  `json:"priority"`
	Advantages     []string             `json:"advantages"`
	Considerations []string             `json:"considerations"`
	ImpactArea     []string             `json:"impact_area"`
	ImpactSummary  string               `json:"impact_summary"`
	Metrics        *model.OptionMetrics `json:"metrics"`
}

type aiStep struct {
	Step      int            `json:"step"`
	Title     string         `json:"title"`
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	System    string         `json:"system"`
	Details   string         `json:"details"`
	Data      map[string]any `json:"data"`
}

type aiResponse struct {
	Option *aiOption `json:"option"`
	Steps  []aiStep  `json:"steps"`
}

// parseRecoveryResponse converts the raw model output into drafts. A missing
// "option" key yields an empty options list, not an error.
func parseRecoveryResponse(responseText string, disruption *model.FlightDisruption, now time.Time) ([]model.RecoveryOption, []model.RecoveryStep, error) {
	responseText = strings.TrimSpace(responseText)
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)

	var parsed aiResponse
	if err := json.Unmarshal([]byte(responseText), &parsed); err != nil {
		return nil, nil, fmt.Errorf("parsing LLM recovery response: %w", err)
	}

	options := []model.RecoveryOption{}
	if parsed.Option != nil {
		o := parsed.Option
		options = append(options, model.RecoveryOption{
			ID:             uuid.NewString(),
			DisruptionID:   disruption.ID,
			Title:          o.Title,
			Description:    o.Description,
			Cost:           o.Cost,
			Timeline:       o.Timeline,
			Confidence:     clampConfidence(o.Confidence),
			Impact:         o.Impact,
			Status:         optionStatus(o.Status),
			Priority:       o.Priority,
			Advantages:     o.Advantages,
			Considerations: o.Considerations,
			ImpactArea:     o.ImpactArea,
			ImpactSummary:  o.ImpactSummary,
			Metrics:        o.Metrics,
			DisruptionContext: &model.DisruptionContext{
				FlightNumber: disruption.FlightNumber,
				Aircraft:     disruption.Aircraft,
				Route:        disruption.Route,
				Passengers:   disruption.Passengers,
				DelayMinutes: disruption.DelayMinutes,
			},
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	steps := make([]model.RecoveryStep, 0, len(parsed.Steps))
	for i, st := range parsed.Steps {
		number := st.Step
		if number == 0 {
			number = i + 1
		}
		steps = append(steps, model.RecoveryStep{
			ID:           uuid.NewString(),
			DisruptionID: disruption.ID,
			StepNumber:   number,
			Title:        st.Title,
			Status:       stepStatus(st.Status),
			Timestamp:    parseStepTimestamp(st.Timestamp, now),
			System:       st.System,
			Details:      st.Details,
			StepData:     st.Data,
		})
	}

	return options, steps, nil
}

func clampConfidence(confidence int) int {
	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}

func optionStatus(raw string) model.OptionStatus {
	switch model.OptionStatus(raw) {
	case model.OptionRecommended, model.OptionCaution, model.OptionWarning:
		return model.OptionStatus(raw)
	}
	return model.OptionGenerated
}

func stepStatus(raw string) model.StepStatus {
	switch model.StepStatus(raw) {
	case model.StepPending, model.StepInProgress, model.StepCompleted, model.StepFailed:
		return model.StepStatus(raw)
	}
	return model.StepPending
}

func parseStepTimestamp(raw string, fallback time.Time) time.Time {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts
	}
	return fallback
}
