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

const uploadColumns = "id, file_name, file_path, page_count, created_at"

// UploadRepository handles upload metadata database operations
type UploadRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUploadRepository creates a new UploadRepository
func NewUploadRepository(db *pgxpool.Pool) *UploadRepository {
	return &UploadRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUpload(row pgx.Row) (*models.Upload, error) {
	upload := &models.Upload{}
	err := row.Scan(
		&upload.ID,
		&upload.FileName,
		&upload.FilePath,
		&upload.PageCount,
		&upload.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return upload, nil
}

// Create inserts upload metadata for a stored PDF
func (r *UploadRepository) Create(ctx context.Context, upload *models.Upload) error {
	sql, args, err := r.sb.Insert("uploads").
		Columns("file_name", "file_path", "page_count").
		Values(upload.FileName, upload.FilePath, upload.PageCount).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create upload query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&upload.ID, &upload.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create upload query")
		return fmt.Errorf("error creating upload: %w", err)
	}
	return nil
}

// GetByID retrieves upload metadata by ID
func (r *UploadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Upload, error) {
	sql, args, err := r.sb.Select(uploadColumns).
		From("uploads").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get upload query: %w", err)
	}

	upload, err := scanUpload(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUploadNotFound
		}
		logger.Error().Err(err).Str("uploadID", id.String()).Msg("Error scanning upload row")
		return nil, fmt.Errorf("error getting upload by ID: %w", err)
	}
	return upload, nil
}

// GetByIDs retrieves several uploads at once, for applicant detail views
func (r *UploadRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Upload, error) {
	if len(ids) == 0 {
		return []*models.Upload{}, nil
	}

	sql, args, err := r.sb.Select(uploadColumns).
		From("uploads").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get uploads query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying uploads: %w", err)
	}
	defer rows.Close()

	uploads := []*models.Upload{}
	for rows.Next() {
		upload, err := scanUpload(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning upload row: %w", err)
		}
		uploads = append(uploads, upload)
	}

	return uploads, rows.Err()
}

// Delete removes upload metadata. The stored file is removed separately by
// the service layer.
func (r *UploadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM uploads WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Str("uploadID", id.String()).Msg("Error deleting upload")
		return fmt.Errorf("error deleting upload: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUploadNotFound
	}
	return nil
}
