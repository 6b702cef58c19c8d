package model

import "time"

type OptionStatus string

const (
	OptionRecommended OptionStatus = "recommended"
	OptionCaution     OptionStatus = "caution"
	OptionWarning     OptionStatus = "warning"
	OptionGenerated   OptionStatus = "generated"
)

type StepStatus string

const (
	StepPending    StepStatus = "pending"
	StepInProgress StepStatus = "in-progress"
	StepCompleted  StepStatus = "completed"
	StepFailed     StepStatus = "failed"
)

// ResourceRequirement is one resource line on an option's detail panel.
type ResourceRequirement struct {
	Title        string `json:"title" bson:"title"`
	Subtitle     string `json:"subtitle" bson:"subtitle"`
	Availability string `json:"availability" bson:"availability"`
	Status       string `json:"status" bson:"status"`
	Location     string `json:"location" bson:"location"`
	ETA          string `json:"eta" bson:"eta"`
	Details      string `json:"details" bson:"details"`
}

type CostLine struct {
	Amount      string `json:"amount" bson:"amount"`
	Category    string `json:"category" bson:"category"`
	Percentage  int    `json:"percentage" bson:"percentage"`
	Description string `json:"description" bson:"description"`
}

type CostTotal struct {
	Amount      string `json:"amount" bson:"amount"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}

type CostBreakdown struct {
	Breakdown []CostLine `json:"breakdown" bson:"breakdown"`
	Total     CostTotal  `json:"total" bson:"total"`
}

type TimelineStep struct {
	Step      string `json:"step" bson:"step"`
	Status    string `json:"status" bson:"status"`
	Details   string `json:"details" bson:"details"`
	StartTime string `json:"startTime" bson:"startTime"`
	EndTime   string `json:"endTime" bson:"endTime"`
	Duration  string `json:"duration" bson:"duration"`
}

type RiskEntry struct {
	Risk             string `json:"risk" bson:"risk"`
	RiskImpact       string `json:"riskImpact" bson:"riskImpact"`
	MitigationImpact string `json:"mitigationImpact" bson:"mitigationImpact"`
	Score            int    `json:"score" bson:"score"`
	Mitigation       string `json:"mitigation" bson:"mitigation"`
}

type TechnicalSpec struct {
	Title   string   `json:"title" bson:"title"`
	Details []string `json:"details" bson:"details"`
}

type TechnicalSpecs struct {
	Implementation  TechnicalSpec `json:"implementation" bson:"implementation"`
	SystemsRequired TechnicalSpec `json:"systemsRequired" bson:"systemsRequired"`
	Certifications  TechnicalSpec `json:"certifications" bson:"certifications"`
}

// OptionMetrics carries the comparison-matrix scores for an option.
type OptionMetrics struct {
	CostEfficiency        int    `json:"costEfficiency" bson:"costEfficiency"`
	TimeEfficiency        int    `json:"timeEfficiency" bson:"timeEfficiency"`
	PassengerSatisfaction int    `json:"passengerSatisfaction" bson:"passengerSatisfaction"`
	RecoveryAnalysis      string `json:"recoveryAnalysis,omitempty" bson:"recoveryAnalysis,omitempty"`
	CrewViolations        int    `json:"crewViolations" bson:"crewViolations"`
	AircraftSwaps         int    `json:"aircraftSwaps" bson:"aircraftSwaps"`
	NetworkImpact         string `json:"networkImpact" bson:"networkImpact"`
}

// DisruptionContext echoes the disruption a generated option belongs to, for
// consumers that render options without re-fetching the flight.
type DisruptionContext struct {
	FlightNumber string `json:"flightNumber" bson:"flightNumber"`
	Aircraft     string `json:"aircraft" bson:"aircraft"`
	Route        string `json:"route" bson:"route"`
	Passengers   int    `json:"passengers" bson:"passengers"`
	DelayMinutes int    `json:"delayMinutes" bson:"delayMinutes"`
}

// RecoveryOption is a candidate course of action to resolve a disruption.
type RecoveryOption struct {
	ID                   string                `json:"id" bson:"_id"`
	DisruptionID         string                `json:"disruptionId" bson:"disruptionId"`
	Title                string                `json:"title" bson:"title"`
	Description          string                `json:"description" bson:"description"`
	Cost                 string                `json:"cost" bson:"cost"`
	Timeline             string                `json:"timeline" bson:"timeline"`
	Confidence           int                   `json:"confidence" bson:"confidence"`
	Impact               string                `json:"impact" bson:"impact"`
	Status               OptionStatus          `json:"status" bson:"status"`
	Category             string                `json:"category" bson:"category"`
	Priority             int                   `json:"priority" bson:"priority"`
	Advantages           []string              `json:"advantages" bson:"advantages"`
	Considerations       []string              `json:"considerations" bson:"considerations"`
	ImpactArea           []string              `json:"impactArea" bson:"impactArea"`
	ImpactSummary        string                `json:"impactSummary" bson:"impactSummary"`
	ResourceRequirements []ResourceRequirement `json:"resourceRequirements,omitempty" bson:"resourceRequirements,omitempty"`
	CostBreakdown        *CostBreakdown        `json:"costBreakdown,omitempty" bson:"costBreakdown,omitempty"`
	TimelineDetails      []TimelineStep        `json:"timelineDetails,omitempty" bson:"timelineDetails,omitempty"`
	RiskAssessment       []RiskEntry           `json:"riskAssessment,omitempty" bson:"riskAssessment,omitempty"`
	TechnicalSpecs       *TechnicalSpecs       `json:"technicalSpecs,omitempty" bson:"technicalSpecs,omitempty"`
	Metrics              *OptionMetrics        `json:"metrics,omitempty" bson:"metrics,omitempty"`
	RotationPlan         map[string]any        `json:"rotationPlan,omitempty" bson:"rotationPlan,omitempty"`
	CrewAvailable        []CrewMember          `json:"crewAvailable,omitempty" bson:"crewAvailable,omitempty"`
	DisruptionContext    *DisruptionContext    `json:"disruptionContext,omitempty" bson:"disruptionContext,omitempty"`
	CreatedAt            time.Time             `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time             `json:"updatedAt" bson:"updatedAt"`
}

// RecoveryStep is one unit of the implementation plan for a disruption.
type RecoveryStep struct {
	ID           string         `json:"id" bson:"_id"`
	DisruptionID string         `json:"disruptionId" bson:"disruptionId"`
	StepNumber   int            `json:"step" bson:"stepNumber"`
	Title        string         `json:"title" bson:"title"`
	Status       StepStatus     `json:"status" bson:"status"`
	Timestamp    time.Time      `json:"timestamp" bson:"timestamp"`
	System       string         `json:"system" bson:"system"`
	Details      string         `json:"details" bson:"details"`
	StepData     map[string]any `json:"data,omitempty" bson:"stepData,omitempty"`
}

// GenerationMetadata describes one generation run.
type GenerationMetadata struct {
	CategoryCode   CategoryCode `json:"categoryCode,omitempty"`
	DisruptionID   string       `json:"disruptionId,omitempty"`
	FlightNumber   string       `json:"flightNumber,omitempty"`
	GenerationTime time.Time    `json:"generationTime"`
	Generator      string       `json:"generator"`
	Provider       string       `json:"provider,omitempty"`
	Model          string       `json:"model,omitempty"`
	TokensUsed     int64        `json:"tokensUsed,omitempty"`
	Error          string       `json:"error,omitempty"`
}

// GenerationResult is the envelope returned by either generator. A failed run
// carries Error and empty Options/Steps rather than propagating a panic or an
// unhandled error to the caller.
type GenerationResult struct {
	Options  []RecoveryOption   `json:"options"`
	Steps    []RecoveryStep     `json:"steps"`
	Metadata GenerationMetadata `json:"metadata"`
	Error    string             `json:"error,omitempty"`
}

const (
	GeneratorTemplateBased = "template_based"
	GeneratorAIPowered     = "ai_powered"
)
