package models

import (
	"time"

	"github.com/google/uuid"
)

// Upload is a stored applicant PDF (transcript or course description).
// PageCount is read from the PDF at upload time and bounds the page
// references surfaced by course extraction.
type Upload struct {
	ID        uuid.UUID `json:"id"`
	FileName  string    `json:"fileName"`
	FilePath  string    `json:"-"`
	PageCount int       `json:"pageCount"`
	CreatedAt time.Time `json:"createdAt"`
}
