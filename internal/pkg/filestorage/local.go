package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/lvogel/admithub/internal/pkg/apperrors"
	"github.com/lvogel/admithub/internal/pkg/logger"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// LocalStorage stores applicant uploads on the local filesystem.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new LocalStorage rooted at basePath.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// SavePDF stores an uploaded file, validates it is a well-formed PDF and
// returns the relative storage path plus the page count. Invalid files are
// removed again and rejected with ErrInvalidPDF.
func (ls *LocalStorage) SavePDF(fileHeader *multipart.FileHeader) (string, int, error) {
	if fileHeader == nil {
		return "", 0, fmt.Errorf("%w: no file provided", apperrors.ErrValidationFailed)
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", 0, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	uniqueFilename := uuid.New().String() + ".pdf"
	dstPath := filepath.Join(ls.basePath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", 0, fmt.Errorf("failed to save file content: %w", err)
	}

	if err := api.ValidateFile(dstPath, nil); err != nil {
		logger.Warn().Err(err).Str("filename", fileHeader.Filename).Msg("Uploaded file failed PDF validation")
		_ = os.Remove(dstPath)
		return "", 0, apperrors.ErrInvalidPDF
	}

	pageCount, err := api.PageCountFile(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to read PDF page count")
		_ = os.Remove(dstPath)
		return "", 0, apperrors.ErrInvalidPDF
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", uniqueFilename).Int("pages", pageCount).Msg("Upload saved")
	return uniqueFilename, pageCount, nil
}

// DeleteFile removes a stored file. Missing files are treated as already
// deleted.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	if filePath == "" {
		return nil
	}

	filename := filepath.Base(filePath)
	if filename == "" || filename == "." || filename == "/" {
		return fmt.Errorf("invalid file path: %s", filePath)
	}

	physicalPath := filepath.Join(ls.basePath, filename)

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// FullPath returns the full filesystem path for a stored file.
func (ls *LocalStorage) FullPath(filePath string) string {
	filename := filepath.Base(filePath)
	if filename == "" || filename == "." || filename == "/" {
		return ""
	}
	return filepath.Join(ls.basePath, filename)
}
