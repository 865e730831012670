package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx. Methods
// that must run inside a caller-managed transaction take a Querier so the
// service layer decides the transaction boundary.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	AccountRepository   *AccountRepository
	ApplicantRepository *ApplicantRepository
	DegreeRepository    *DegreeRepository
	CourseRepository    *CourseRepository
	DocumentRepository  *DocumentRepository
	SkillRepository     *SkillRepository
	UploadRepository    *UploadRepository
	SettingsRepository  *SettingsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AccountRepository:   NewAccountRepository(db),
		ApplicantRepository: NewApplicantRepository(db),
		DegreeRepository:    NewDegreeRepository(db),
		CourseRepository:    NewCourseRepository(db),
		DocumentRepository:  NewDocumentRepository(db),
		SkillRepository:     NewSkillRepository(db),
		UploadRepository:    NewUploadRepository(db),
		SettingsRepository:  NewSettingsRepository(db),
	}
}
