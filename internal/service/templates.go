package service

import "aeron/internal/model"

// standbyCrew is the embedded crew-availability snapshot attached to template
// options. Reference data only; live rostering lives in the crew system.
var standbyCrew = []model.CrewMember{
	{
		Name:     "Capt. James Walker",
		RoleCode: "CAPT",
		Role:     "Captain",
		Qualifications: []model.Qualification{
			{Code: "B737", Name: "Boeing 737"},
		},
		Status:          "available",
		ExperienceYears: 18,
		Base:            "LHR",
		Languages:       []string{"English"},
		RotationImpact: []model.RotationImpact{
			{
				FlightNumber:    "FZ141",
				OriginCode:      "LHR",
				DestinationCode: "DXB",
				Origin:          "London Heathrow",
				Destination:     "Dubai",
				Departure:       "2025-09-10T07:30:00+01:00",
				Arrival:         "2025-09-10T15:30:00+04:00",
				Delay:           "On Time",
				Passengers:      178,
				Status:          "On Time",
				Impact:          "High Impact",
				Reason:          "Primary PIC — replacement required, flight will be delayed or cancelled without a qualified Captain.",
			},
		},
	},
	{
		Name:     "Capt. Ravi Sharma",
		RoleCode: "CAPT",
		Role:     "Captain",
		Qualifications: []model.Qualification{
			{Code: "B737", Name: "Boeing 737"},
		},
		Status:          "available",
		ExperienceYears: 15,
		Base:            "DEL",
		Languages:       []string{"English", "Hindi"},
		RotationImpact: []model.RotationImpact{
			{
				FlightNumber:    "FZ431",
				OriginCode:      "DEL",
				DestinationCode: "DXB",
				Origin:          "Delhi",
				Destination:     "Dubai",
				Departure:       "2025-09-10T09:00:00+05:30",
				Arrival:         "2025-09-10T11:30:00+04:00",
				Delay:           "15 min",
				Passengers:      164,
				Status:          "Delayed",
				Impact:          "High Impact",
				Reason:          "Primary PIC removed — replacement required, departure may be delayed while finding a qualified Captain.",
			},
		},
	},
	{
		Name:     "FO Michael Adams",
		RoleCode: "FO",
		Role:     "First officer",
		Qualifications: []model.Qualification{
			{Code: "B737M", Name: "Boeing 737 MAX"},
		},
		Status:          "available",
		ExperienceYears: 8,
		Base:            "JFK",
		Languages:       []string{"English", "Spanish"},
		RotationImpact: []model.RotationImpact{
			{
				FlightNumber:    "FZ523",
				OriginCode:      "DXB",
				DestinationCode: "DOH",
				Origin:          "Dubai",
				Destination:     "Doha",
				Departure:       "2025-09-10T11:00:00+04:00",
				Arrival:         "2025-09-10T11:50:00+03:00",
				Delay:           "On Time",
				Passengers:      156,
				Status:          "On Time",
				Impact:          "High Impact",
				Reason:          "Primary FO removed — flight cannot legally depart without a qualified First Officer unless a reserve is available at origin.",
			},
		},
	},
}

func aircraftIssueTemplates() []model.RecoveryOption {
	return []model.RecoveryOption{
		{
			Title:       "Aircraft Swap - Immediate",
			Description: "Replace with available standby aircraft",
			Cost:        "AED 22,800",
			Timeline:    "1.5-2 hours",
			Confidence:  88,
			Impact:      "Minimal passenger disruption",
			Status:      model.OptionRecommended,
			Category:    "Aircraft Issue",
			Priority:    1,
			Advantages: []string{
				"Fastest resolution with minimal delay",
				"Maintains schedule integrity",
				"Low passenger compensation cost",
				"Preserves network connectivity",
			},
			Considerations: []string{
				"Requires available spare aircraft",
				"Crew briefing and familiarization needed",
				"Gate coordination and positioning",
				"Passenger transfer logistics",
			},
			ImpactArea:    []string{"crew"},
			ImpactSummary: "Aircraft issue recovery for FZ147: Technical disruption requiring aircraft substitution with minimal passenger impact through efficient swap procedures.",
			ResourceRequirements: []model.ResourceRequirement{
				{
					Title:        "Replacement Aircraft",
					Subtitle:     "Available Aircraft (TBD)",
					Availability: "Ready",
					Status:       "Available",
					Location:     "Terminal Area",
					ETA:          "On Stand",
					Details:      "Aircraft selection based on route requirements and availability",
				},
				{
					Title:        "Flight Crew",
					Subtitle:     "Qualified Crew Team",
					Availability: "Briefed",
					Status:       "On Duty",
					Location:     "Crew Room Terminal 2",
					ETA:          "15 minutes",
					Details:      "Type-rated crew with current qualifications",
				},
			},
			CostBreakdown: &model.CostBreakdown{
				Breakdown: []model.CostLine{
					{
						Amount:      "AED 15,000",
						Category:    "Delay Costs",
						Percentage:  66,
						Description: "Passenger compensation and handling",
					},
					{
						Amount:      "AED 5,000",
						Category:    "Aircraft Swap",
						Percentage:  22,
						Description: "Cost of mobilizing standby aircraft",
					},
					{
						Amount:      "AED 2,800",
						Category:    "Logistics",
						Percentage:  12,
						Description: "Ground handling and coordination",
					},
				},
				Total: model.CostTotal{
					Amount:      "AED 22,800",
					Title:       "Total Estimated Cost",
					Description: "Ground handling and coordination",
				},
			},
			TimelineDetails: []model.TimelineStep{
				{
					Step:      "Decision Confirmation",
					Status:    "completed",
					Details:   "Management approval and resource confirmation",
					StartTime: "23:34",
					EndTime:   "23:39",
					Duration:  "5 min",
				},
				{
					Step:      "Aircraft Positioning",
					Status:    "in-progress",
					Details:   "Move replacement aircraft to departure gate",
					StartTime: "23:39",
					EndTime:   "05:39",
					Duration:  "360 min",
				},
			},
			RiskAssessment: []model.RiskEntry{
				{
					Risk:             "Aircraft Availability Conflict",
					RiskImpact:       "Low",
					MitigationImpact: "Medium",
					Score:            3,
					Mitigation:       "Secondary aircraft options confirmed in standby",
				},
			},
			TechnicalSpecs: &model.TechnicalSpecs{
				Implementation: model.TechnicalSpec{
					Title:   "Implementation",
					Details: []string{"Aircraft swap protocol with coordinated ground operations and priority positioning"},
				},
				SystemsRequired: model.TechnicalSpec{
					Title: "Systems required",
					Details: []string{
						"ACARS Real-time Updates",
						"Ground Power Unit",
						"Baggage Transfer System",
						"Passenger Information Display",
						"Aircraft Positioning Coordination",
					},
				},
				Certifications: model.TechnicalSpec{
					Title: "Certifications",
					Details: []string{
						"EASA Type Certificate",
						"GCAA Operational Approval",
						"Route-specific Weather Capability",
					},
				},
			},
			CrewAvailable: standbyCrew,
			Metrics: &model.OptionMetrics{
				CostEfficiency:        85,
				TimeEfficiency:        90,
				PassengerSatisfaction: 85,
				RecoveryAnalysis:      "Aircraft Swap Recovery: Replace aircraft with available replacement. Estimated passenger transfer time: 35-45 minutes. This solution maintains schedule integrity with minimal passenger disruption.",
				CrewViolations:        1,
				AircraftSwaps:         1,
				NetworkImpact:         "Minimal",
			},
		},
		{
			Title:       "Delay for Repair Completion",
			Description: "Wait for aircraft technical issue resolution",
			Cost:        "AED 180,000",
			Timeline:    "4-6 hours",
			Confidence:  45,
			Impact:      "Significant passenger disruption",
			Status:      model.OptionCaution,
			Category:    "Aircraft Issue",
			Priority:    2,
			Advantages: []string{
				"Original aircraft maintained",
				"No aircraft swap complexity",
			},
			Considerations: []string{
				"Repair ETA uncertain",
				"Massive passenger accommodation needed",
			},
			ImpactArea:    []string{"passenger", "operations"},
			ImpactSummary: "Aircraft issue recovery for FZ147: Extended ground time while engineering completes rectification, with passenger accommodation throughout the delay window.",
			Metrics: &model.OptionMetrics{
				CostEfficiency:        40,
				TimeEfficiency:        35,
				PassengerSatisfaction: 50,
				CrewViolations:        0,
				AircraftSwaps:         0,
				NetworkImpact:         "High",
			},
		},
		{
			Title:       "Cancel and Rebook",
			Description: "Cancel flight and rebook passengers on partner airlines",
			Cost:        "AED 520,000",
			Timeline:    "Immediate",
			Confidence:  75,
			Impact:      "Complete route cancellation",
			Status:      model.OptionWarning,
			Category:    "Aircraft Issue",
			Priority:    3,
			Advantages: []string{
				"Stops cascade disruption immediately",
				"Quick passenger rebooking process",
			},
			Considerations: []string{
				"Complete revenue loss for sector",
				"High passenger compensation costs",
			},
			ImpactArea:    []string{"passenger", "operations"},
			ImpactSummary: "Aircraft issue recovery for FZ147: Sector cancellation with partner rebooking, trading revenue for containment of downstream disruption.",
			Metrics: &model.OptionMetrics{
				CostEfficiency:        20,
				TimeEfficiency:        80,
				PassengerSatisfaction: 45,
				CrewViolations:        0,
				AircraftSwaps:         0,
				NetworkImpact:         "Low",
			},
		},
	}
}

func crewIssueTemplates() []model.RecoveryOption {
	return []model.RecoveryOption{
		{
			Title:         "Standby Crew Assignment",
			Description:   "Assign available standby crew members",
			Cost:          "AED 8,500",
			Timeline:      "45-60 minutes",
			Confidence:    92,
			Impact:        "Low passenger disruption",
			Status:        model.OptionRecommended,
			Category:      "Crew Issue",
			Priority:      1,
			Advantages: []string{
				"Quick resolution with minimal delay",
				"Maintains original flight schedule",
				"Low operational cost",
				"No aircraft change required",
			},
			Considerations: []string{
				"Standby crew availability at origin",
				"Crew duty time compliance",
				"Route qualification requirements",
				"Passenger boarding delay",
			},
			ImpactArea:    []string{"crew"},
			ImpactSummary: "Crew issue recovery for FZ147: Standby crew activation to restore legal crew complement with minimal schedule impact.",
			CrewAvailable: standbyCrew,
		},
	}
}

func weatherIssueTemplates() []model.RecoveryOption {
	return []model.RecoveryOption{
		{
			Title:         "Weather Hold - Monitor & Dispatch",
			Description:   "Hold for weather improvement and dispatch when clear",
			Cost:          "AED 3,200",
			Timeline:      "2-4 hours",
			Confidence:    75,
			Impact:        "Medium passenger disruption",
			Status:        model.OptionCaution,
			Category:      "Weather Issue",
			Priority:      2,
			ImpactArea:    []string{"passenger", "operations"},
			ImpactSummary: "Weather recovery for FZ147: Dispatch hold pending clearance, with rolling departure estimates issued to passengers.",
		},
	}
}

func curfewCongestionTemplates() []model.RecoveryOption {
	return []model.RecoveryOption{
		{
			Title:         "Overnight Accommodation",
			Description:   "Provide hotel accommodation and reschedule for next day",
			Cost:          "AED 18,500",
			Timeline:      "Next day departure",
			Confidence:    95,
			Impact:        "High passenger disruption",
			Status:        model.OptionWarning,
			Category:      "Curfew/Congestion",
			Priority:      3,
			ImpactArea:    []string{"passenger"},
			ImpactSummary: "Curfew recovery for FZ147: Overnight accommodation with next-day rescheduling inside the permitted departure window.",
		},
	}
}

func rotationMaintenanceTemplates() []model.RecoveryOption {
	return []model.RecoveryOption{
		{
			Title:         "Alternative Aircraft Assignment",
			Description:   "Reassign to different aircraft in rotation",
			Cost:          "AED 12,400",
			Timeline:      "2-3 hours",
			Confidence:    85,
			Impact:        "Medium passenger disruption",
			Status:        model.OptionRecommended,
			Category:      "Rotation/Maintenance",
			Priority:      2,
			ImpactArea:    []string{"aircraft", "operations"},
			ImpactSummary: "Rotation recovery for FZ147: Alternative tail assignment to protect the schedule while maintenance completes on the original aircraft.",
		},
	}
}

var templatesByCategory = map[model.CategoryCode]func() []model.RecoveryOption{
	model.CategoryAircraftIssue:       aircraftIssueTemplates,
	model.CategoryCrewIssue:           crewIssueTemplates,
	model.CategoryATCWeather:          weatherIssueTemplates,
	model.CategoryCurfewCongestion:    curfewCongestionTemplates,
	model.CategoryRotationMaintenance: rotationMaintenanceTemplates,
}

// TemplatesFor returns the hand-authored option templates for a category.
// Unknown codes resolve to the aircraft-issue set, same as the classifier
// fallback.
func TemplatesFor(code model.CategoryCode) []model.RecoveryOption {
	if fn, ok := templatesByCategory[code]; ok {
		return fn()
	}
	return aircraftIssueTemplates()
}
