package services

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/lvogel/admithub/internal/app/models"
	"github.com/lvogel/admithub/internal/app/repositories"
	"github.com/lvogel/admithub/internal/pkg/filestorage"
	"github.com/lvogel/admithub/internal/pkg/logger"
)

// UploadService handles applicant PDF uploads
type UploadService struct {
	uploadRepo *repositories.UploadRepository
	storage    filestorage.FileStorage
}

// NewUploadService creates a new upload service instance
func NewUploadService(uploadRepo *repositories.UploadRepository, storage filestorage.FileStorage) *UploadService {
	return &UploadService{
		uploadRepo: uploadRepo,
		storage:    storage,
	}
}

// Store validates and saves an uploaded PDF, then records its metadata.
// Files that fail PDF validation are rejected before anything is recorded.
func (s *UploadService) Store(ctx context.Context, fileHeader *multipart.FileHeader) (*models.Upload, error) {
	path, pageCount, err := s.storage.SavePDF(fileHeader)
	if err != nil {
		return nil, err
	}

	upload := &models.Upload{
		FileName:  fileHeader.Filename,
		FilePath:  path,
		PageCount: pageCount,
	}
	if err := s.uploadRepo.Create(ctx, upload); err != nil {
		// Do not leave an orphaned file behind.
		if cleanupErr := s.storage.DeleteFile(path); cleanupErr != nil {
			logger.Warn().Err(cleanupErr).Str("path", path).Msg("Failed to clean up stored file")
		}
		return nil, err
	}
	return upload, nil
}

// Get retrieves upload metadata
func (s *UploadService) Get(ctx context.Context, id uuid.UUID) (*models.Upload, error) {
	return s.uploadRepo.GetByID(ctx, id)
}

// FilePath returns the filesystem path for serving a stored upload
func (s *UploadService) FilePath(upload *models.Upload) string {
	return s.storage.FullPath(upload.FilePath)
}

// Delete removes an upload's metadata and its stored file
func (s *UploadService) Delete(ctx context.Context, id uuid.UUID) error {
	upload, err := s.uploadRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.uploadRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.storage.DeleteFile(upload.FilePath); err != nil {
		logger.Warn().Err(err).Str("uploadID", id.String()).Msg("Failed to delete stored file")
	}
	return nil
}
