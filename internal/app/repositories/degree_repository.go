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
	"github.com/lvogel/admithub/internal/pkg/apperrors"
	"github.com/lvogel/admithub/internal/pkg/logger"
)

const degreeColumns = "id, applicant_id, university, country, course_of_study, worst_possible_grade, average_grade, best_possible_grade, credits_in_program, years_in_program, reviewed_by, reviewed_at, created_at, updated_at"

// DegreeRepository handles bachelor degree database operations
type DegreeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDegreeRepository creates a new DegreeRepository
func NewDegreeRepository(db *pgxpool.Pool) *DegreeRepository {
	return &DegreeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanDegree(row pgx.Row) (*models.BachelorDegree, error) {
	degree := &models.BachelorDegree{}
	err := row.Scan(
		&degree.ID,
		&degree.ApplicantID,
		&degree.University,
		&degree.Country,
		&degree.CourseOfStudy,
		&degree.WorstPossibleGrade,
		&degree.AverageGrade,
		&degree.BestPossibleGrade,
		&degree.CreditsInProgram,
		&degree.YearsInProgram,
		&degree.ReviewedBy,
		&degree.ReviewedAt,
		&degree.CreatedAt,
		&degree.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return degree, nil
}

// Create inserts the bachelor degree of an applicant
func (r *DegreeRepository) Create(ctx context.Context, q Querier, degree *models.BachelorDegree) error {
	sql, args, err := r.sb.Insert("bachelor_degrees").
		Columns("applicant_id", "university", "country", "course_of_study", "worst_possible_grade", "average_grade", "best_possible_grade", "credits_in_program", "years_in_program").
		Values(degree.ApplicantID, degree.University, degree.Country, degree.CourseOfStudy, degree.WorstPossibleGrade, degree.AverageGrade, degree.BestPossibleGrade, degree.CreditsInProgram, degree.YearsInProgram).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create degree query: %w", err)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&degree.ID, &degree.CreatedAt, &degree.UpdatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create degree query")
		return fmt.Errorf("error creating bachelor degree: %w", err)
	}
	return nil
}

// GetByApplicantID retrieves the degree belonging to an applicant
func (r *DegreeRepository) GetByApplicantID(ctx context.Context, applicantID uuid.UUID) (*models.BachelorDegree, error) {
	sql, args, err := r.sb.Select(degreeColumns).
		From("bachelor_degrees").
		Where(squirrel.Eq{"applicant_id": applicantID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get degree query: %w", err)
	}

	degree, err := scanDegree(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Str("applicantID", applicantID.String()).Msg("Error scanning degree row")
		return nil, fmt.Errorf("error getting degree by applicant: %w", err)
	}
	return degree, nil
}

// Update rewrites the degree fields and stamps the reviewing account
func (r *DegreeRepository) Update(ctx context.Context, degree *models.BachelorDegree, reviewerID uuid.UUID) error {
	sql, args, err := r.sb.Update("bachelor_degrees").
		SetMap(map[string]interface{}{
			"university":           degree.University,
			"country":              degree.Country,
			"course_of_study":      degree.CourseOfStudy,
			"worst_possible_grade": degree.WorstPossibleGrade,
			"average_grade":        degree.AverageGrade,
			"best_possible_grade":  degree.BestPossibleGrade,
			"credits_in_program":   degree.CreditsInProgram,
			"years_in_program":     degree.YearsInProgram,
			"reviewed_by":          reviewerID,
			"reviewed_at":          squirrel.Expr("NOW()"),
			"updated_at":           squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": degree.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update degree query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("degreeID", degree.ID.String()).Msg("Error executing update degree query")
		return fmt.Errorf("error updating bachelor degree: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
