package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lvogel/admithub/internal/app/models"
	"github.com/lvogel/admithub/internal/app/repositories"
	"github.com/lvogel/admithub/internal/pkg/apperrors"
	"github.com/lvogel/admithub/internal/pkg/auth"
)

const temporaryPasswordLength = 12

// AccountService handles staff account administration
type AccountService struct {
	accountRepo *repositories.AccountRepository
}

// NewAccountService creates a new account service instance
func NewAccountService(accountRepo *repositories.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func validateRoleKeys(keys []string) error {
	for _, key := range keys {
		if key != models.RoleAdmin && key != models.RoleReviewer {
			return apperrors.NewValidationError("unknown role", map[string]interface{}{"roles": key})
		}
	}
	return nil
}

// Create makes a new staff account with a generated temporary password.
// The plain temporary password is returned exactly once.
func (s *AccountService) Create(ctx context.Context, createdBy uuid.UUID, firstName, lastName, email string, roleKeys []string) (*models.Account, string, error) {
	if err := validateRoleKeys(roleKeys); err != nil {
		return nil, "", err
	}

	temporaryPassword, err := auth.GenerateTemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return nil, "", err
	}

	hash, err := auth.HashPassword(temporaryPassword)
	if err != nil {
		return nil, "", err
	}

	account := &models.Account{
		FirstName:         strings.TrimSpace(firstName),
		LastName:          strings.TrimSpace(lastName),
		Email:             strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:      hash,
		PasswordTemporary: true,
		CreatedBy:         &createdBy,
		Active:            true,
	}

	if err := s.accountRepo.Create(ctx, account, roleKeys); err != nil {
		return nil, "", err
	}
	return account, temporaryPassword, nil
}

// GetByID retrieves a single account
func (s *AccountService) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	return s.accountRepo.GetByID(ctx, id)
}

// List retrieves all staff accounts
func (s *AccountService) List(ctx context.Context) ([]*models.Account, error) {
	return s.accountRepo.GetAll(ctx)
}

// Update rewrites an account's profile fields, role set and active flag.
// Deactivating or demoting the last active admin is rejected.
func (s *AccountService) Update(ctx context.Context, id uuid.UUID, firstName, lastName, email string, roleKeys []string, active bool) (*models.Account, error) {
	if err := validateRoleKeys(roleKeys); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	losesAdmin := account.Active && account.HasRole(models.RoleAdmin)
	if losesAdmin {
		keepsAdmin := active
		if keepsAdmin {
			keepsAdmin = false
			for _, key := range roleKeys {
				if key == models.RoleAdmin {
					keepsAdmin = true
				}
			}
		}
		if !keepsAdmin {
			admins, err := s.accountRepo.CountByRole(ctx, models.RoleAdmin)
			if err != nil {
				return nil, err
			}
			if admins <= 1 {
				return nil, apperrors.NewValidationError("cannot remove the last admin", nil)
			}
		}
	}

	account.FirstName = strings.TrimSpace(firstName)
	account.LastName = strings.TrimSpace(lastName)
	account.Email = strings.ToLower(strings.TrimSpace(email))
	account.Active = active

	if err := s.accountRepo.Update(ctx, account, roleKeys); err != nil {
		return nil, err
	}
	return account, nil
}

// ResetPassword issues a fresh temporary password for an account
func (s *AccountService) ResetPassword(ctx context.Context, id uuid.UUID) (string, error) {
	if _, err := s.accountRepo.GetByID(ctx, id); err != nil {
		return "", err
	}

	temporaryPassword, err := auth.GenerateTemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return "", err
	}
	hash, err := auth.HashPassword(temporaryPassword)
	if err != nil {
		return "", err
	}

	if err := s.accountRepo.UpdatePassword(ctx, id, hash, true); err != nil {
		return "", err
	}
	return temporaryPassword, nil
}

// Delete removes an account. The last active admin cannot be deleted.
func (s *AccountService) Delete(ctx context.Context, id uuid.UUID) error {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if account.Active && account.HasRole(models.RoleAdmin) {
		admins, err := s.accountRepo.CountByRole(ctx, models.RoleAdmin)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return apperrors.NewValidationError("cannot delete the last admin", nil)
		}
	}

	return s.accountRepo.Delete(ctx, id)
}

// GetRoles retrieves all permission roles
func (s *AccountService) GetRoles(ctx context.Context) ([]*models.Role, error) {
	return s.accountRepo.GetRoles(ctx)
}
