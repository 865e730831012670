package filestorage

import "mime/multipart"

// FileStorage defines the interface for upload storage operations.
type FileStorage interface {
	// SavePDF stores an uploaded PDF and returns its storage path and page
	// count. Files that are not well-formed PDFs are rejected.
	SavePDF(fileHeader *multipart.FileHeader) (path string, pageCount int, err error)

	// DeleteFile removes a file from storage.
	DeleteFile(filePath string) error

	// FullPath returns the filesystem path for a stored file.
	FullPath(filePath string) string
}
