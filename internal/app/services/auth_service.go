package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/lvogel/admithub/internal/app/models"
	"github.com/lvogel/admithub/internal/app/repositories"
	"github.com/lvogel/admithub/internal/pkg/apperrors"
	"github.com/lvogel/admithub/internal/pkg/auth"
	"github.com/lvogel/admithub/internal/pkg/logger"
)

// AuthService handles staff authentication
type AuthService struct {
	accountRepo *repositories.AccountRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(accountRepo *repositories.AccountRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		jwtService:  jwtService,
	}
}

// Login verifies credentials and issues a token pair. Disabled accounts
// cannot log in even with correct credentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Account, string, string, int, error) {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the email exists.
		return nil, "", "", 0, apperrors.ErrInvalidCredentials
	}

	if !account.Active {
		return nil, "", "", 0, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(account.PasswordHash, password) {
		return nil, "", "", 0, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(account)
	if err != nil {
		return nil, "", "", 0, err
	}

	if err := s.accountRepo.UpdateLastLogin(ctx, account.ID); err != nil {
		logger.Warn().Err(err).Str("accountID", account.ID.String()).Msg("Failed to stamp last login")
	}

	return account, accessToken, refreshToken, expiresIn, nil
}

// ChangePassword replaces the password of the logged-in account and clears
// the temporary flag.
func (s *AuthService) ChangePassword(ctx context.Context, accountID uuid.UUID, currentPassword, newPassword string) error {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(account.PasswordHash, currentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.accountRepo.UpdatePassword(ctx, accountID, hash, false)
}
