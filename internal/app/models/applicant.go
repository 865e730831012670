package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyCount is one day of application submissions.
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// Applicant is the root entity of the admissions aggregate. It owns exactly
// one document set, one bachelor degree and zero or more personal skills,
// all cascade-deleted with the applicant.
type Applicant struct {
	ID                        uuid.UUID    `json:"id"`
	ApplicantNumber           string       `json:"applicantNumber"`
	FirstName                 string       `json:"firstName"`
	LastName                  string       `json:"lastName"`
	MasterTrack               MasterTrack  `json:"masterTrack"`
	ReviewStatus              ReviewStatus `json:"reviewStatus"`
	TranscriptUploadID        *uuid.UUID   `json:"transcriptUploadId,omitempty"`
	CourseDescriptionUploadID *uuid.UUID   `json:"courseDescriptionUploadId,omitempty"`
	CreatedAt                 time.Time    `json:"createdAt"`
	UpdatedAt                 time.Time    `json:"updatedAt"`
}
