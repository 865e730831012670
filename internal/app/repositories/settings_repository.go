package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lvogel/admithub/internal/app/models"
	"github.com/lvogel/admithub/internal/pkg/logger"
)

// SettingsRepository handles the single-row application settings
type SettingsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Get retrieves the application period settings. The row is seeded by the
// initial migration and is always present.
func (r *SettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	settings := &models.Settings{}
	err := r.db.QueryRow(ctx, `
		SELECT application_period_start, application_period_end
		FROM settings
		WHERE id = 1`).Scan(&settings.ApplicationPeriodStart, &settings.ApplicationPeriodEnd)
	if err != nil {
		logger.Error().Err(err).Msg("Error reading settings row")
		return nil, fmt.Errorf("error reading settings: %w", err)
	}
	return settings, nil
}

// Update replaces the application period
func (r *SettingsRepository) Update(ctx context.Context, settings *models.Settings) error {
	_, err := r.db.Exec(ctx, `
		UPDATE settings
		SET application_period_start = $1, application_period_end = $2, updated_at = NOW()
		WHERE id = 1`,
		settings.ApplicationPeriodStart, settings.ApplicationPeriodEnd)
	if err != nil {
		logger.Error().Err(err).Msg("Error updating settings row")
		return fmt.Errorf("error updating settings: %w", err)
	}
	return nil
}
