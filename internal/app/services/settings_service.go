package services

import (
	"context"
	"time"

	"github.com/lvogel/admithub/internal/app/models"
	"github.com/lvogel/admithub/internal/app/repositories"
	"github.com/lvogel/admithub/internal/pkg/apperrors"
)

// SettingsService handles the application period configuration
type SettingsService struct {
	settingsRepo *repositories.SettingsRepository
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(settingsRepo *repositories.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get retrieves the application period
func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	return s.settingsRepo.Get(ctx)
}

// Update replaces the application period
func (s *SettingsService) Update(ctx context.Context, start, end time.Time) (*models.Settings, error) {
	if !end.After(start) {
		return nil, apperrors.NewValidationError("application period must end after it starts", map[string]interface{}{
			"applicationPeriodEnd": "must be after applicationPeriodStart",
		})
	}

	settings := &models.Settings{
		ApplicationPeriodStart: start,
		ApplicationPeriodEnd:   end,
	}
	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
