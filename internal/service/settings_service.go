package service

import (
	"context"
	"fmt"

	"aeron/internal/model"
	"aeron/internal/repository"
)

// SettingsService exposes the tenant configuration store.
type SettingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) *SettingsService {
	return &SettingsService{settings: settings}
}

func (s *SettingsService) List(ctx context.Context) ([]model.Setting, error) {
	return s.settings.List(ctx)
}

func (s *SettingsService) ListByCategory(ctx context.Context, category string) ([]model.Setting, error) {
	return s.settings.ListByCategory(ctx, category)
}

// Save upserts one setting keyed by category and key.
func (s *SettingsService) Save(ctx context.Context, setting *model.Setting) error {
	if setting.Category == "" || setting.Key == "" {
		return fmt.Errorf("category and key are required")
	}
	return s.settings.Upsert(ctx, setting)
}
