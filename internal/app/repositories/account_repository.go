package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lvogel/admithub/internal/app/models"
	"github.com/lvogel/admithub/internal/db"
	"github.com/lvogel/admithub/internal/pkg/apperrors"
	"github.com/lvogel/admithub/internal/pkg/dberrors"
	"github.com/lvogel/admithub/internal/pkg/logger"
)

const accountColumns = "id, first_name, last_name, email, password_hash, password_temporary, created_by, active, created_at, updated_at, last_login"

// AccountRepository handles staff account database operations
type AccountRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanAccount(row pgx.Row) (*models.Account, error) {
	account := &models.Account{}
	err := row.Scan(
		&account.ID,
		&account.FirstName,
		&account.LastName,
		&account.Email,
		&account.PasswordHash,
		&account.PasswordTemporary,
		&account.CreatedBy,
		&account.Active,
		&account.CreatedAt,
		&account.UpdatedAt,
		&account.LastLogin,
	)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// Create inserts an account and attaches the given role keys in one
// transaction. The account ID is filled in on success.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account, roleKeys []string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Insert("accounts").
			Columns("first_name", "last_name", "email", "password_hash", "password_temporary", "created_by", "active").
			Values(account.FirstName, account.LastName, account.Email, account.PasswordHash, account.PasswordTemporary, account.CreatedBy, account.Active).
			Suffix("RETURNING id, created_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create account query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&account.ID, &account.CreatedAt); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrEmailAlreadyExists
			}
			logger.Error().Err(err).Msg("Error executing create account query")
			return fmt.Errorf("error creating account: %w", err)
		}

		if err := r.replaceRoles(ctx, tx, account.ID, roleKeys); err != nil {
			return err
		}
		account.Roles = roleKeys
		return nil
	})
}

// replaceRoles rewrites the accounts_roles rows for an account. Unknown role
// keys are a validation error.
func (r *AccountRepository) replaceRoles(ctx context.Context, q Querier, accountID uuid.UUID, roleKeys []string) error {
	if _, err := q.Exec(ctx, `DELETE FROM accounts_roles WHERE account_id = $1`, accountID); err != nil {
		return fmt.Errorf("error clearing account roles: %w", err)
	}

	for _, key := range roleKeys {
		tag, err := q.Exec(ctx, `
			INSERT INTO accounts_roles (account_id, role_id)
			SELECT $1, id FROM roles WHERE key = $2`,
			accountID, key)
		if err != nil {
			return fmt.Errorf("error assigning role %s: %w", key, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewValidationError("unknown role", map[string]interface{}{"roles": key})
		}
	}
	return nil
}

func (r *AccountRepository) loadRoles(ctx context.Context, accountID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.key
		FROM roles r
		JOIN accounts_roles ar ON ar.role_id = r.id
		WHERE ar.account_id = $1
		ORDER BY r.key`, accountID)
	if err != nil {
		return nil, fmt.Errorf("error querying account roles: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("error scanning role key: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// GetByID retrieves an account with its role keys
func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	sql, args, err := r.sb.Select(accountColumns).
		From("accounts").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get account query: %w", err)
	}

	account, err := scanAccount(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		logger.Error().Err(err).Str("accountID", id.String()).Msg("Error scanning account row")
		return nil, fmt.Errorf("error getting account by ID: %w", err)
	}

	if account.Roles, err = r.loadRoles(ctx, account.ID); err != nil {
		return nil, err
	}
	return account, nil
}

// GetByEmail retrieves an account by email with its role keys
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	sql, args, err := r.sb.Select(accountColumns).
		From("accounts").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get account by email query: %w", err)
	}

	account, err := scanAccount(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		logger.Error().Err(err).Msg("Error scanning account row by email")
		return nil, fmt.Errorf("error getting account by email: %w", err)
	}

	if account.Roles, err = r.loadRoles(ctx, account.ID); err != nil {
		return nil, err
	}
	return account, nil
}

// GetAll retrieves all accounts ordered by name, roles aggregated per row
func (r *AccountRepository) GetAll(ctx context.Context) ([]*models.Account, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.first_name, a.last_name, a.email, a.password_hash,
		       a.password_temporary, a.created_by, a.active, a.created_at,
		       a.updated_at, a.last_login,
		       COALESCE(array_agg(r.key ORDER BY r.key) FILTER (WHERE r.key IS NOT NULL), '{}')
		FROM accounts a
		LEFT JOIN accounts_roles ar ON ar.account_id = a.id
		LEFT JOIN roles r ON r.id = ar.role_id
		GROUP BY a.id
		ORDER BY a.last_name ASC, a.first_name ASC`)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying accounts")
		return nil, fmt.Errorf("error querying accounts: %w", err)
	}
	defer rows.Close()

	accounts := []*models.Account{}
	for rows.Next() {
		account := &models.Account{}
		if err := rows.Scan(
			&account.ID,
			&account.FirstName,
			&account.LastName,
			&account.Email,
			&account.PasswordHash,
			&account.PasswordTemporary,
			&account.CreatedBy,
			&account.Active,
			&account.CreatedAt,
			&account.UpdatedAt,
			&account.LastLogin,
			&account.Roles,
		); err != nil {
			return nil, fmt.Errorf("error scanning account row: %w", err)
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

// Update rewrites the mutable account fields and its role set
func (r *AccountRepository) Update(ctx context.Context, account *models.Account, roleKeys []string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Update("accounts").
			SetMap(map[string]interface{}{
				"first_name": account.FirstName,
				"last_name":  account.LastName,
				"email":      account.Email,
				"active":     account.Active,
				"updated_at": squirrel.Expr("NOW()"),
			}).
			Where(squirrel.Eq{"id": account.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update account query: %w", err)
		}

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrEmailAlreadyExists
			}
			logger.Error().Err(err).Str("accountID", account.ID.String()).Msg("Error executing update account query")
			return fmt.Errorf("error updating account: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrAccountNotFound
		}

		if err := r.replaceRoles(ctx, tx, account.ID, roleKeys); err != nil {
			return err
		}
		account.Roles = roleKeys
		return nil
	})
}

// UpdatePassword stores a new password hash and its temporary flag
func (r *AccountRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, temporary bool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET password_hash = $1, password_temporary = $2, updated_at = NOW()
		WHERE id = $3`,
		passwordHash, temporary, id)
	if err != nil {
		logger.Error().Err(err).Str("accountID", id.String()).Msg("Error updating account password")
		return fmt.Errorf("error updating account password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}

// UpdateLastLogin stamps the account's last successful login
func (r *AccountRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE accounts SET last_login = NOW() WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Str("accountID", id.String()).Msg("Error updating last login")
		return fmt.Errorf("error updating last login: %w", err)
	}
	return nil
}

// Delete removes an account. Review attributions on applicants survive
// through ON DELETE SET NULL.
func (r *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Str("accountID", id.String()).Msg("Error deleting account")
		return fmt.Errorf("error deleting account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}

// GetRoles retrieves all permission roles
func (r *AccountRepository) GetRoles(ctx context.Context) ([]*models.Role, error) {
	sql, args, err := r.sb.Select("id", "key", "name", "description").
		From("roles").
		OrderBy("key ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get roles query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying roles: %w", err)
	}
	defer rows.Close()

	roles := []*models.Role{}
	for rows.Next() {
		role := &models.Role{}
		if err := rows.Scan(&role.ID, &role.Key, &role.Name, &role.Description); err != nil {
			return nil, fmt.Errorf("error scanning role row: %w", err)
		}
		roles = append(roles, role)
	}

	return roles, rows.Err()
}

// CountByRole returns how many active accounts carry the given role key
func (r *AccountRepository) CountByRole(ctx context.Context, key string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM accounts a
		JOIN accounts_roles ar ON ar.account_id = a.id
		JOIN roles r ON r.id = ar.role_id
		WHERE r.key = $1 AND a.active`, key).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting accounts by role: %w", err)
	}
	return count, nil
}
