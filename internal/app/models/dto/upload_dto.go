package dto

import (
	"time"

	"github.com/google/uuid"
)

// UploadResponse represents a stored PDF upload.
type UploadResponse struct {
	ID        uuid.UUID `json:"id"`
	FileName  string    `json:"fileName"`
	PageCount int       `json:"pageCount"`
	CreatedAt time.Time `json:"createdAt"`
}
