package model

// Qualification is a type rating held by a crew member.
type Qualification struct {
	Code string `json:"code" bson:"code"`
	Name string `json:"name" bson:"name"`
}

// RotationImpact describes one downstream flight leg affected by pulling a
// crew member off their rotation.
type RotationImpact struct {
	FlightNumber    string `json:"flightNumber" bson:"flightNumber"`
	OriginCode      string `json:"originCode" bson:"originCode"`
	DestinationCode string `json:"destinationCode" bson:"destinationCode"`
	Origin          string `json:"origin" bson:"origin"`
	Destination     string `json:"destination" bson:"destination"`
	Departure       string `json:"departure" bson:"departure"`
	Arrival         string `json:"arrival" bson:"arrival"`
	Delay           string `json:"delay" bson:"delay"`
	Passengers      int    `json:"passengers" bson:"passengers"`
	Status          string `json:"status" bson:"status"`
	Impact          string `json:"impact" bson:"impact"`
	Reason          string `json:"reason" bson:"reason"`
}

// CrewMember is a standby crew availability record attached to recovery
// options. Static reference data, not live rostering state.
type CrewMember struct {
	Name            string           `json:"name" bson:"name"`
	RoleCode        string           `json:"roleCode" bson:"roleCode"`
	Role            string           `json:"role" bson:"role"`
	Qualifications  []Qualification  `json:"qualifications" bson:"qualifications"`
	Status          string           `json:"status" bson:"status"`
	Issue           string           `json:"issue,omitempty" bson:"issue,omitempty"`
	ExperienceYears int              `json:"experienceYears" bson:"experienceYears"`
	Base            string           `json:"base" bson:"base"`
	Languages       []string         `json:"languages" bson:"languages"`
	RotationImpact  []RotationImpact `json:"rotationImpact" bson:"rotationImpact"`
}
