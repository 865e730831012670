package models

import (
	"time"

	"github.com/google/uuid"
)

// DocumentSet tracks the eight document slots of one applicant. A nil slot
// means the document has not been reviewed yet.
type DocumentSet struct {
	ID                  uuid.UUID       `json:"id"`
	ApplicantID         uuid.UUID       `json:"applicantId"`
	CurriculumVitae     *DocumentStatus `json:"curriculumVitae"`
	SchoolCertificate   *DocumentStatus `json:"schoolCertificate"`
	BachelorCertificate *DocumentStatus `json:"bachelorCertificate"`
	TranscriptOfRecords *DocumentStatus `json:"transcriptOfRecords"`
	CourseDescription   *DocumentStatus `json:"courseDescription"`
	EnglishCertificate  *DocumentStatus `json:"englishCertificate"`
	StandardizedTest    *DocumentStatus `json:"standardizedTest"`
	AdditionalDocuments *DocumentStatus `json:"additionalDocuments"`
	ReviewedBy          *uuid.UUID      `json:"reviewedBy,omitempty"`
	ReviewedAt          *time.Time      `json:"reviewedAt,omitempty"`
}

// RequiredComplete reports whether every required document slot is marked
// existing. The required subset is a fixed list: standardized test and
// additional documents are deliberately excluded.
func (d *DocumentSet) RequiredComplete() bool {
	required := []*DocumentStatus{
		d.CurriculumVitae,
		d.SchoolCertificate,
		d.BachelorCertificate,
		d.TranscriptOfRecords,
		d.CourseDescription,
		d.EnglishCertificate,
	}
	for _, slot := range required {
		if slot == nil || *slot != DocumentExisting {
			return false
		}
	}
	return true
}
