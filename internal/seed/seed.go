package seed

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/lvogel/admithub/internal/app/models"
	appRepos "github.com/lvogel/admithub/internal/app/repositories"
	"github.com/lvogel/admithub/internal/pkg/auth"
)

const (
	defaultAdminEmail    = "admin@admithub.app"
	defaultAdminPassword = "ChangeMe123!"
)

// CreateDefaultData ensures a usable admin account exists. Roles are seeded
// by the schema migration; this only creates the bootstrap admin when no
// account carries the admin role yet.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	accountRepo := appRepos.NewAccountRepository(dbPool)

	admins, err := accountRepo.CountByRole(ctx, appModels.RoleAdmin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting admin accounts")
		return err
	}
	if admins > 0 {
		return nil
	}

	email := os.Getenv("ADMITHUB_ADMIN_EMAIL")
	if email == "" {
		email = defaultAdminEmail
	}
	password := os.Getenv("ADMITHUB_ADMIN_PASSWORD")
	if password == "" {
		password = defaultAdminPassword
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &appModels.Account{
		FirstName:         "Default",
		LastName:          "Admin",
		Email:             email,
		PasswordHash:      hash,
		PasswordTemporary: true,
		Active:            true,
	}
	if err := accountRepo.Create(ctx, admin, []string{appModels.RoleAdmin}); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Str("email", email).Msg("Default admin account created, the password is temporary and must be changed on first login")
	return nil
}
