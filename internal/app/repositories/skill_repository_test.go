package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lvogel/admithub/internal/app/models"
	"github.com/lvogel/admithub/internal/pkg/apperrors"
)

// noRowQuerier answers every upsert with an empty result, the way Postgres
// does when the ON CONFLICT guard filters the conflicting row out.
type noRowQuerier struct{}

func (noRowQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag("DELETE 0"), nil
}

func (noRowQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (noRowQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return noRow{}
}

type noRow struct{}

func (noRow) Scan(dest ...any) error { return pgx.ErrNoRows }

// A submitted id that belongs to another applicant's skill makes the guarded
// upsert return nothing. That is bad input, not a server fault.
func TestReplaceForeignSkillIDIsValidationError(t *testing.T) {
	repo := NewSkillRepository(nil)
	skills := []*models.PersonalSkill{
		{ID: uuid.New(), ApplicantID: uuid.New(), Description: "Working student, backend team", Points: 2},
	}

	_, err := repo.Replace(context.Background(), noRowQuerier{}, uuid.New(), skills)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("err = %v, want ErrValidationFailed", err)
	}
}
