package dto

import (
	"github.com/google/uuid"
	"github.com/lvogel/admithub/internal/app/models"
)

// CourseUpsertRequest is one course row in a batch upsert. A record without
// an id is inserted; a record with a known id fully replaces the stored row.
type CourseUpsertRequest struct {
	ID                   *uuid.UUID          `json:"id,omitempty"`
	PredictedName        *string             `json:"predictedName,omitempty"`
	PredictedCredits     *float64            `json:"predictedCredits,omitempty"`
	PredictedSubjectArea *models.SubjectArea `json:"predictedSubjectArea,omitempty"`
	ApplicantName        string              `json:"applicantName" binding:"required"`
	ApplicantCredits     float64             `json:"applicantCredits" binding:"required"`
	ApplicantSubjectArea models.SubjectArea  `json:"applicantSubjectArea" binding:"required"`
	ReviewedName         string              `json:"reviewedName" binding:"required"`
	ReviewedCredits      float64             `json:"reviewedCredits" binding:"required"`
	ReviewedSubjectArea  models.SubjectArea  `json:"reviewedSubjectArea" binding:"required"`
	Description          *string             `json:"description,omitempty"`
	Page                 *int                `json:"page,omitempty"`
}

// CourseCreateRequest is one course row at application submission. Reviewed
// values are seeded from the applicant values server-side when omitted.
type CourseCreateRequest struct {
	PredictedName        *string             `json:"predictedName,omitempty"`
	PredictedCredits     *float64            `json:"predictedCredits,omitempty"`
	PredictedSubjectArea *models.SubjectArea `json:"predictedSubjectArea,omitempty"`
	ApplicantName        string              `json:"applicantName" binding:"required"`
	ApplicantCredits     float64             `json:"applicantCredits" binding:"required"`
	ApplicantSubjectArea models.SubjectArea  `json:"applicantSubjectArea" binding:"required"`
	Description          *string             `json:"description,omitempty"`
	Page                 *int                `json:"page,omitempty"`
}

// PredictionRequest carries the combined source text for course extraction.
// When the transcript upload is referenced, predicted page numbers beyond
// its page count are discarded.
type PredictionRequest struct {
	Text               string     `json:"text" binding:"required"`
	TranscriptUploadID *uuid.UUID `json:"transcriptUploadId,omitempty"`
}

// BucketedCoursesResponse maps subject areas to their courses in insertion
// order.
type BucketedCoursesResponse map[models.SubjectArea][]models.Course
