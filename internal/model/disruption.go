package model

import "time"

type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

type DisruptionStatus string

const (
	DisruptionActive    DisruptionStatus = "Active"
	DisruptionResolved  DisruptionStatus = "Resolved"
	DisruptionExpired   DisruptionStatus = "Expired"
	DisruptionCancelled DisruptionStatus = "Cancelled"
)

// CategoryCode classifies the root cause of a disruption.
type CategoryCode string

const (
	CategoryAircraftIssue       CategoryCode = "AIRCRAFT_ISSUE"
	CategoryCrewIssue           CategoryCode = "CREW_ISSUE"
	CategoryATCWeather          CategoryCode = "ATC_WEATHER"
	CategoryCurfewCongestion    CategoryCode = "CURFEW_CONGESTION"
	CategoryRotationMaintenance CategoryCode = "ROTATION_MAINTENANCE"
)

type DisruptionCategory struct {
	Code        CategoryCode `json:"categoryCode" bson:"code"`
	Name        string       `json:"categoryName" bson:"name"`
	Description string       `json:"description" bson:"description"`
	Active      bool         `json:"active" bson:"active"`
}

// FlightDisruption is a flight event requiring recovery action. The recovery
// engine reads these records and never mutates them.
type FlightDisruption struct {
	ID                 string           `json:"id" bson:"_id"`
	FlightNumber       string           `json:"flightNumber" bson:"flightNumber"`
	Route              string           `json:"route" bson:"route"`
	Origin             string           `json:"origin" bson:"origin"`
	Destination        string           `json:"destination" bson:"destination"`
	OriginCity         string           `json:"originCity" bson:"originCity"`
	DestinationCity    string           `json:"destinationCity" bson:"destinationCity"`
	Aircraft           string           `json:"aircraft" bson:"aircraft"`
	ScheduledDeparture time.Time        `json:"scheduledDeparture" bson:"scheduledDeparture"`
	EstimatedDeparture time.Time        `json:"estimatedDeparture" bson:"estimatedDeparture"`
	DelayMinutes       int              `json:"delayMinutes" bson:"delayMinutes"`
	Passengers         int              `json:"passengers" bson:"passengers"`
	Crew               int              `json:"crew" bson:"crew"`
	ConnectionFlights  int              `json:"connectionFlights" bson:"connectionFlights"`
	Severity           Severity         `json:"severity" bson:"severity"`
	DisruptionType     string           `json:"disruptionType" bson:"disruptionType"`
	DisruptionReason   string           `json:"disruptionReason" bson:"disruptionReason"`
	Categorization     string           `json:"categorization" bson:"categorization"`
	CategoryCode       CategoryCode     `json:"categoryCode,omitempty" bson:"categoryCode,omitempty"`
	Status             DisruptionStatus `json:"status" bson:"status"`
	RecoveryStatus     string           `json:"recoveryStatus" bson:"recoveryStatus"`
	CreatedAt          time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt" bson:"updatedAt"`
}
