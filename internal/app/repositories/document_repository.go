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

const documentColumns = "id, applicant_id, curriculum_vitae, school_certificate, bachelor_certificate, transcript_of_records, course_description, english_certificate, standardized_test, additional_documents, reviewed_by, reviewed_at"

// DocumentRepository handles document set database operations
type DocumentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanDocumentSet(row pgx.Row) (*models.DocumentSet, error) {
	set := &models.DocumentSet{}
	err := row.Scan(
		&set.ID,
		&set.ApplicantID,
		&set.CurriculumVitae,
		&set.SchoolCertificate,
		&set.BachelorCertificate,
		&set.TranscriptOfRecords,
		&set.CourseDescription,
		&set.EnglishCertificate,
		&set.StandardizedTest,
		&set.AdditionalDocuments,
		&set.ReviewedBy,
		&set.ReviewedAt,
	)
	if err != nil {
		return nil, err
	}
	return set, nil
}

// Create inserts the empty document set of a new applicant. All slots start
// unreviewed.
func (r *DocumentRepository) Create(ctx context.Context, q Querier, applicantID uuid.UUID) (*models.DocumentSet, error) {
	set, err := scanDocumentSet(q.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO document_sets (applicant_id)
		VALUES ($1)
		RETURNING %s`, documentColumns), applicantID))
	if err != nil {
		logger.Error().Err(err).Str("applicantID", applicantID.String()).Msg("Error creating document set")
		return nil, fmt.Errorf("error creating document set: %w", err)
	}
	return set, nil
}

// GetByApplicantID retrieves the document set of an applicant
func (r *DocumentRepository) GetByApplicantID(ctx context.Context, applicantID uuid.UUID) (*models.DocumentSet, error) {
	sql, args, err := r.sb.Select(documentColumns).
		From("document_sets").
		Where(squirrel.Eq{"applicant_id": applicantID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get document set query: %w", err)
	}

	set, err := scanDocumentSet(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Str("applicantID", applicantID.String()).Msg("Error scanning document set row")
		return nil, fmt.Errorf("error getting document set: %w", err)
	}
	return set, nil
}

// GetByApplicantIDTx is GetByApplicantID inside a caller-managed transaction,
// locking the row so concurrent reviews serialize.
func (r *DocumentRepository) GetByApplicantIDTx(ctx context.Context, q Querier, applicantID uuid.UUID) (*models.DocumentSet, error) {
	set, err := scanDocumentSet(q.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s
		FROM document_sets
		WHERE applicant_id = $1
		FOR UPDATE`, documentColumns), applicantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error locking document set: %w", err)
	}
	return set, nil
}

// UpdateStatuses writes the given slot verdicts, keyed by column name, and
// stamps the reviewing account. Returns the updated set.
func (r *DocumentRepository) UpdateStatuses(ctx context.Context, q Querier, applicantID uuid.UUID, statuses map[string]*models.DocumentStatus, reviewerID uuid.UUID) (*models.DocumentSet, error) {
	values := map[string]interface{}{
		"reviewed_by": reviewerID,
		"reviewed_at": squirrel.Expr("NOW()"),
	}
	for column, status := range statuses {
		values[column] = status
	}

	sql, args, err := r.sb.Update("document_sets").
		SetMap(values).
		Where(squirrel.Eq{"applicant_id": applicantID}).
		Suffix("RETURNING " + documentColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update document set query: %w", err)
	}

	set, err := scanDocumentSet(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Str("applicantID", applicantID.String()).Msg("Error updating document set")
		return nil, fmt.Errorf("error updating document set: %w", err)
	}
	return set, nil
}
