package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aeron/internal/model"
	"aeron/internal/repository"
)

var categories = []model.DisruptionCategory{
	{
		Code:        model.CategoryAircraftIssue,
		Name:        "Aircraft Issue (AOG)",
		Description: "Technical faults grounding the aircraft: engine, hydraulics, avionics.",
		Active:      true,
	},
	{
		Code:        model.CategoryCrewIssue,
		Name:        "Crew Issue",
		Description: "Duty time expiry, crew sickness or unavailability.",
		Active:      true,
	},
	{
		Code:        model.CategoryATCWeather,
		Name:        "ATC / Weather Delay",
		Description: "Weather below minima, ATC flow restrictions, airspace closures.",
		Active:      true,
	},
	{
		Code:        model.CategoryCurfewCongestion,
		Name:        "Airport Curfew / Congestion",
		Description: "Night curfews, slot restrictions, airport congestion.",
		Active:      true,
	},
	{
		Code:        model.CategoryRotationMaintenance,
		Name:        "Rotation / Maintenance Misalignment",
		Description: "Aircraft rotation conflicts with planned maintenance windows.",
		Active:      true,
	},
}

func sampleDisruptions(now time.Time) []model.FlightDisruption {
	return []model.FlightDisruption{
		{
			ID:                 uuid.NewString(),
			FlightNumber:       "FZ147",
			Route:              "DXB-COK",
			Origin:             "DXB",
			Destination:        "COK",
			OriginCity:         "Dubai",
			DestinationCity:    "Kochi",
			Aircraft:           "B737-800 (A6-FDB)",
			ScheduledDeparture: now.Add(2 * time.Hour),
			EstimatedDeparture: now.Add(5 * time.Hour),
			DelayMinutes:       180,
			Passengers:         175,
			Crew:               6,
			ConnectionFlights:  12,
			Severity:           model.SeverityCritical,
			DisruptionType:     "Technical",
			DisruptionReason:   "Engine fault detected during pre-flight checks, aircraft AOG",
			Categorization:     "Aircraft issue (e.g., AOG)",
			CategoryCode:       model.CategoryAircraftIssue,
			Status:             model.DisruptionActive,
			RecoveryStatus:     "Pending",
			CreatedAt:          now,
			UpdatedAt:          now,
		},
		{
			ID:                 uuid.NewString(),
			FlightNumber:       "FZ215",
			Route:              "DXB-KHI",
			Origin:             "DXB",
			Destination:        "KHI",
			OriginCity:         "Dubai",
			DestinationCity:    "Karachi",
			Aircraft:           "B737 MAX 8 (A6-FMC)",
			ScheduledDeparture: now.Add(3 * time.Hour),
			EstimatedDeparture: now.Add(4 * time.Hour),
			DelayMinutes:       60,
			Passengers:         162,
			Crew:               6,
			ConnectionFlights:  4,
			Severity:           model.SeverityMedium,
			DisruptionType:     "Weather",
			DisruptionReason:   "Thunderstorms over the Gulf, ATC flow control in effect",
			Categorization:     "ATC/weather delay",
			CategoryCode:       model.CategoryATCWeather,
			Status:             model.DisruptionActive,
			RecoveryStatus:     "Pending",
			CreatedAt:          now,
			UpdatedAt:          now,
		},
		{
			ID:                 uuid.NewString(),
			FlightNumber:       "FZ329",
			Route:              "DXB-BEG",
			Origin:             "DXB",
			Destination:        "BEG",
			OriginCity:         "Dubai",
			DestinationCity:    "Belgrade",
			Aircraft:           "B737-800 (A6-FEK)",
			ScheduledDeparture: now.Add(90 * time.Minute),
			EstimatedDeparture: now.Add(4 * time.Hour),
			DelayMinutes:       150,
			Passengers:         148,
			Crew:               6,
			ConnectionFlights:  2,
			Severity:           model.SeverityHigh,
			DisruptionType:     "Crew",
			DisruptionReason:   "Operating captain exceeded duty time limits after inbound delay",
			Categorization:     "Crew issue (e.g., sick report, duty time breach)",
			CategoryCode:       model.CategoryCrewIssue,
			Status:             model.DisruptionActive,
			RecoveryStatus:     "Pending",
			CreatedAt:          now,
			UpdatedAt:          now,
		},
	}
}

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	mongoDB := os.Getenv("MONGO_DATABASE")
	if mongoDB == "" {
		mongoDB = "aeron"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(mongoDB)

	categoryRepo := repository.NewCategoryRepo(db)
	for _, category := range categories {
		if err := categoryRepo.Upsert(ctx, &category); err != nil {
			log.Fatalf("Failed to upsert category %s: %v", category.Code, err)
		}
	}
	fmt.Printf("Seeded %d disruption categories\n", len(categories))

	disruptionRepo := repository.NewDisruptionRepo(db)
	disruptions := sampleDisruptions(time.Now())
	seeded := 0
	for i := range disruptions {
		existing, err := disruptionRepo.GetByIdentifier(ctx, disruptions[i].FlightNumber)
		if err != nil {
			log.Fatalf("Failed to check flight %s: %v", disruptions[i].FlightNumber, err)
		}
		if existing != nil {
			continue
		}
		if err := disruptionRepo.Create(ctx, &disruptions[i]); err != nil {
			log.Fatalf("Failed to insert flight %s: %v", disruptions[i].FlightNumber, err)
		}
		seeded++
	}
	fmt.Printf("Seeded %d sample disruptions\n", seeded)
}
