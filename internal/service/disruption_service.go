package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"aeron/internal/model"
	"aeron/internal/repository"
)

// DisruptionService handles flight disruption intake and lookup.
type DisruptionService struct {
	disruptions repository.DisruptionRepo
	categories  repository.CategoryRepo
}

func NewDisruptionService(disruptions repository.DisruptionRepo, categories repository.CategoryRepo) *DisruptionService {
	return &DisruptionService{disruptions: disruptions, categories: categories}
}

// Create registers a new disruption. The category code is derived from the
// categorization text when the caller does not supply one.
func (s *DisruptionService) Create(ctx context.Context, disruption *model.FlightDisruption) (*model.FlightDisruption, error) {
	if disruption.FlightNumber == "" {
		return nil, fmt.Errorf("flight number is required")
	}

	if disruption.ID == "" {
		disruption.ID = uuid.NewString()
	}
	if disruption.CategoryCode == "" {
		disruption.CategoryCode = Classify(disruption.Categorization, disruption.DisruptionType)
	}
	if disruption.Status == "" {
		disruption.Status = model.DisruptionActive
	}
	if disruption.RecoveryStatus == "" {
		disruption.RecoveryStatus = "Pending"
	}

	now := time.Now()
	disruption.CreatedAt = now
	disruption.UpdatedAt = now

	if err := s.disruptions.Create(ctx, disruption); err != nil {
		return nil, fmt.Errorf("failed to create disruption: %w", err)
	}
	return disruption, nil
}

// Get looks up a disruption by id or flight number.
func (s *DisruptionService) Get(ctx context.Context, identifier string) (*model.FlightDisruption, error) {
	disruption, err := s.disruptions.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if disruption == nil {
		return nil, ErrDisruptionNotFound
	}
	return disruption, nil
}

// List returns disruptions filtered by status and severity; empty filters
// match everything.
func (s *DisruptionService) List(ctx context.Context, status, severity string) ([]model.FlightDisruption, error) {
	return s.disruptions.List(ctx, status, severity)
}

// Categories returns the active disruption categories.
func (s *DisruptionService) Categories(ctx context.Context) ([]model.DisruptionCategory, error) {
	return s.categories.List(ctx)
}
