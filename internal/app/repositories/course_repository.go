package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lvogel/admithub/internal/app/models"
	"github.com/lvogel/admithub/internal/pkg/apperrors"
	"github.com/lvogel/admithub/internal/pkg/logger"
)

const courseColumns = "id, bachelor_degree_id, predicted_name, predicted_credits, predicted_subject_area, applicant_name, applicant_credits, applicant_subject_area, reviewed_name, reviewed_credits, reviewed_subject_area, description, page"

// courseColumnCount is the number of bind parameters per upserted row.
const courseColumnCount = 13

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	err := row.Scan(
		&course.ID,
		&course.BachelorDegreeID,
		&course.PredictedName,
		&course.PredictedCredits,
		&course.PredictedSubjectArea,
		&course.ApplicantName,
		&course.ApplicantCredits,
		&course.ApplicantSubjectArea,
		&course.ReviewedName,
		&course.ReviewedCredits,
		&course.ReviewedSubjectArea,
		&course.Description,
		&course.Page,
	)
	if err != nil {
		return nil, err
	}
	return course, nil
}

// UpsertBatch writes a batch of course rows in one statement. Rows with a
// known id fully replace the stored row; unknown ids insert. The conflict
// update is guarded so a row can never be moved to another degree. Returns
// the stored rows in input order.
func (r *CourseRepository) UpsertBatch(ctx context.Context, q Querier, courses []*models.Course) ([]*models.Course, error) {
	if len(courses) == 0 {
		return []*models.Course{}, nil
	}

	placeholders := make([]string, 0, len(courses))
	args := make([]any, 0, len(courses)*courseColumnCount)
	for i, c := range courses {
		base := i * courseColumnCount
		marks := make([]string, courseColumnCount)
		for j := range marks {
			marks[j] = fmt.Sprintf("$%d", base+j+1)
		}
		placeholders = append(placeholders, "("+strings.Join(marks, ", ")+")")
		args = append(args,
			c.ID,
			c.BachelorDegreeID,
			c.PredictedName,
			c.PredictedCredits,
			c.PredictedSubjectArea,
			c.ApplicantName,
			c.ApplicantCredits,
			c.ApplicantSubjectArea,
			c.ReviewedName,
			c.ReviewedCredits,
			c.ReviewedSubjectArea,
			c.Description,
			c.Page,
		)
	}

	sql := fmt.Sprintf(`
		INSERT INTO courses (%s)
		VALUES %s
		ON CONFLICT (id) DO UPDATE SET
			predicted_name = EXCLUDED.predicted_name,
			predicted_credits = EXCLUDED.predicted_credits,
			predicted_subject_area = EXCLUDED.predicted_subject_area,
			applicant_name = EXCLUDED.applicant_name,
			applicant_credits = EXCLUDED.applicant_credits,
			applicant_subject_area = EXCLUDED.applicant_subject_area,
			reviewed_name = EXCLUDED.reviewed_name,
			reviewed_credits = EXCLUDED.reviewed_credits,
			reviewed_subject_area = EXCLUDED.reviewed_subject_area,
			description = EXCLUDED.description,
			page = EXCLUDED.page,
			updated_at = NOW()
		WHERE courses.bachelor_degree_id = EXCLUDED.bachelor_degree_id
		RETURNING %s`,
		courseColumns, strings.Join(placeholders, ", "), courseColumns)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int("count", len(courses)).Msg("Error executing course upsert")
		return nil, fmt.Errorf("error upserting courses: %w", err)
	}
	defer rows.Close()

	stored := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning upserted course: %w", err)
		}
		stored = append(stored, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating upserted courses: %w", err)
	}

	// A shorter result means some row hit the degree guard, i.e. its id
	// belongs to a different applicant's degree.
	if len(stored) != len(courses) {
		return nil, apperrors.NewValidationError("course does not belong to this degree", nil)
	}
	return stored, nil
}

// ListByDegree retrieves the courses of a degree in insertion order
func (r *CourseRepository) ListByDegree(ctx context.Context, degreeID uuid.UUID) ([]*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns).
		From("courses").
		Where(squirrel.Eq{"bachelor_degree_id": degreeID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("degreeID", degreeID.String()).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}

// Delete removes a course row, scoped to its degree so a reviewer cannot
// delete across applicants
func (r *CourseRepository) Delete(ctx context.Context, degreeID, courseID uuid.UUID) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": courseID, "bachelor_degree_id": degreeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", courseID.String()).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}
