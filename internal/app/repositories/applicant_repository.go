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

const applicantColumns = "id, applicant_number, first_name, last_name, master_track, review_status, transcript_upload_id, course_description_upload_id, created_at, updated_at"

// ApplicantFilter narrows applicant listings. Zero values are ignored.
type ApplicantFilter struct {
	ReviewStatus models.ReviewStatus
	MasterTrack  models.MasterTrack
	Search       string
}

// ApplicantRepository handles applicant database operations
type ApplicantRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicantRepository creates a new ApplicantRepository
func NewApplicantRepository(db *pgxpool.Pool) *ApplicantRepository {
	return &ApplicantRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanApplicant(row pgx.Row) (*models.Applicant, error) {
	applicant := &models.Applicant{}
	err := row.Scan(
		&applicant.ID,
		&applicant.ApplicantNumber,
		&applicant.FirstName,
		&applicant.LastName,
		&applicant.MasterTrack,
		&applicant.ReviewStatus,
		&applicant.TranscriptUploadID,
		&applicant.CourseDescriptionUploadID,
		&applicant.CreatedAt,
		&applicant.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return applicant, nil
}

// Create inserts an applicant. The applicant number is drawn from a database
// sequence so concurrent submissions never collide.
func (r *ApplicantRepository) Create(ctx context.Context, q Querier, applicant *models.Applicant) error {
	err := q.QueryRow(ctx, `
		INSERT INTO applicants (applicant_number, first_name, last_name, master_track, review_status, transcript_upload_id, course_description_upload_id)
		VALUES ('AP-' || to_char(nextval('applicant_number_seq'), 'FM00000'), $1, $2, $3, $4, $5, $6)
		RETURNING id, applicant_number, created_at, updated_at`,
		applicant.FirstName,
		applicant.LastName,
		applicant.MasterTrack,
		applicant.ReviewStatus,
		applicant.TranscriptUploadID,
		applicant.CourseDescriptionUploadID,
	).Scan(&applicant.ID, &applicant.ApplicantNumber, &applicant.CreatedAt, &applicant.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create applicant query")
		return fmt.Errorf("error creating applicant: %w", err)
	}
	return nil
}

// GetByID retrieves an applicant by ID
func (r *ApplicantRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Applicant, error) {
	sql, args, err := r.sb.Select(applicantColumns).
		From("applicants").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get applicant query: %w", err)
	}

	applicant, err := scanApplicant(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicantNotFound
		}
		logger.Error().Err(err).Str("applicantID", id.String()).Msg("Error scanning applicant row")
		return nil, fmt.Errorf("error getting applicant by ID: %w", err)
	}
	return applicant, nil
}

// List retrieves a page of applicants plus the unpaged total
func (r *ApplicantRepository) List(ctx context.Context, filter ApplicantFilter, limit, offset uint64) ([]*models.Applicant, int64, error) {
	base := r.sb.Select(applicantColumns).From("applicants")
	countBase := r.sb.Select("COUNT(*)").From("applicants")

	if filter.ReviewStatus != "" {
		base = base.Where(squirrel.Eq{"review_status": filter.ReviewStatus})
		countBase = countBase.Where(squirrel.Eq{"review_status": filter.ReviewStatus})
	}
	if filter.MasterTrack != "" {
		base = base.Where(squirrel.Eq{"master_track": filter.MasterTrack})
		countBase = countBase.Where(squirrel.Eq{"master_track": filter.MasterTrack})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		search := squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
			squirrel.ILike{"applicant_number": pattern},
		}
		base = base.Where(search)
		countBase = countBase.Where(search)
	}

	countSql, countArgs, err := countBase.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count applicants query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting applicants: %w", err)
	}

	sql, args, err := base.
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list applicants query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list applicants query")
		return nil, 0, fmt.Errorf("error querying applicants: %w", err)
	}
	defer rows.Close()

	applicants := []*models.Applicant{}
	for rows.Next() {
		applicant, err := scanApplicant(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning applicant row: %w", err)
		}
		applicants = append(applicants, applicant)
	}

	return applicants, total, rows.Err()
}

// ListByStatus retrieves all applicants in the given review status,
// oldest first. Used by the CSV export.
func (r *ApplicantRepository) ListByStatus(ctx context.Context, status models.ReviewStatus) ([]*models.Applicant, error) {
	sql, args, err := r.sb.Select(applicantColumns).
		From("applicants").
		Where(squirrel.Eq{"review_status": status}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list by status query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying applicants by status: %w", err)
	}
	defer rows.Close()

	applicants := []*models.Applicant{}
	for rows.Next() {
		applicant, err := scanApplicant(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning applicant row: %w", err)
		}
		applicants = append(applicants, applicant)
	}

	return applicants, rows.Err()
}

// UpdateReviewStatus moves an applicant from one pipeline stage to another.
// The current stage is part of the predicate, so a transition that committed
// between the caller's read and this write (a rejection in particular) is
// never overwritten. The return value reports whether the row was moved.
func (r *ApplicantRepository) UpdateReviewStatus(ctx context.Context, q Querier, id uuid.UUID, from, to models.ReviewStatus) (bool, error) {
	tag, err := q.Exec(ctx, `
		UPDATE applicants
		SET review_status = $1, updated_at = NOW()
		WHERE id = $2 AND review_status = $3`,
		to, id, from)
	if err != nil {
		logger.Error().Err(err).Str("applicantID", id.String()).Msg("Error updating review status")
		return false, fmt.Errorf("error updating review status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes an applicant and, through cascades, its degree, courses,
// document set and skills
func (r *ApplicantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM applicants WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Str("applicantID", id.String()).Msg("Error deleting applicant")
		return fmt.Errorf("error deleting applicant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicantNotFound
	}
	return nil
}

// ApplicantStats aggregates pipeline counts for the dashboard.
type ApplicantStats struct {
	Total     int64
	ByStatus  map[models.ReviewStatus]int64
	ByTrack   map[models.MasterTrack]int64
	ByCountry map[string]int64
	ByDay     []models.DailyCount
}

// Stats aggregates pipeline counts for the dashboard
func (r *ApplicantRepository) Stats(ctx context.Context) (*ApplicantStats, error) {
	stats := &ApplicantStats{
		ByStatus:  map[models.ReviewStatus]int64{},
		ByTrack:   map[models.MasterTrack]int64{},
		ByCountry: map[string]int64{},
		ByDay:     []models.DailyCount{},
	}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applicants`).Scan(&stats.Total); err != nil {
		return nil, fmt.Errorf("error counting applicants: %w", err)
	}

	rows, err := r.db.Query(ctx, `SELECT review_status, COUNT(*) FROM applicants GROUP BY review_status`)
	if err != nil {
		return nil, fmt.Errorf("error aggregating by review status: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status models.ReviewStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("error scanning status count: %w", err)
		}
		stats.ByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	trackRows, err := r.db.Query(ctx, `SELECT master_track, COUNT(*) FROM applicants GROUP BY master_track`)
	if err != nil {
		return nil, fmt.Errorf("error aggregating by master track: %w", err)
	}
	defer trackRows.Close()
	for trackRows.Next() {
		var track models.MasterTrack
		var count int64
		if err := trackRows.Scan(&track, &count); err != nil {
			return nil, fmt.Errorf("error scanning track count: %w", err)
		}
		stats.ByTrack[track] = count
	}
	if err := trackRows.Err(); err != nil {
		return nil, err
	}

	countryRows, err := r.db.Query(ctx, `
		SELECT d.country, COUNT(*)
		FROM applicants a
		JOIN bachelor_degrees d ON d.applicant_id = a.id
		GROUP BY d.country`)
	if err != nil {
		return nil, fmt.Errorf("error aggregating by country: %w", err)
	}
	defer countryRows.Close()
	for countryRows.Next() {
		var country string
		var count int64
		if err := countryRows.Scan(&country, &count); err != nil {
			return nil, fmt.Errorf("error scanning country count: %w", err)
		}
		stats.ByCountry[country] = count
	}
	if err := countryRows.Err(); err != nil {
		return nil, err
	}

	dayRows, err := r.db.Query(ctx, `
		SELECT to_char(date_trunc('day', created_at), 'YYYY-MM-DD') AS day, COUNT(*)
		FROM applicants
		GROUP BY day
		ORDER BY day ASC`)
	if err != nil {
		return nil, fmt.Errorf("error aggregating submissions over time: %w", err)
	}
	defer dayRows.Close()
	for dayRows.Next() {
		var entry models.DailyCount
		if err := dayRows.Scan(&entry.Date, &entry.Count); err != nil {
			return nil, fmt.Errorf("error scanning daily count: %w", err)
		}
		stats.ByDay = append(stats.ByDay, entry)
	}

	return stats, dayRows.Err()
}
