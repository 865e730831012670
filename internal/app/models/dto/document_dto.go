package dto

import "github.com/lvogel/admithub/internal/app/models"

// UpdateDocumentsRequest carries reviewed document slot verdicts. Omitted
// slots keep their stored value.
type UpdateDocumentsRequest struct {
	CurriculumVitae     *models.DocumentStatus `json:"curriculumVitae,omitempty"`
	SchoolCertificate   *models.DocumentStatus `json:"schoolCertificate,omitempty"`
	BachelorCertificate *models.DocumentStatus `json:"bachelorCertificate,omitempty"`
	TranscriptOfRecords *models.DocumentStatus `json:"transcriptOfRecords,omitempty"`
	CourseDescription   *models.DocumentStatus `json:"courseDescription,omitempty"`
	EnglishCertificate  *models.DocumentStatus `json:"englishCertificate,omitempty"`
	StandardizedTest    *models.DocumentStatus `json:"standardizedTest,omitempty"`
	AdditionalDocuments *models.DocumentStatus `json:"additionalDocuments,omitempty"`
}

// Statuses returns the non-nil slots as a map keyed by column name.
func (r *UpdateDocumentsRequest) Statuses() map[string]*models.DocumentStatus {
	set := map[string]*models.DocumentStatus{}
	if r.CurriculumVitae != nil {
		set["curriculum_vitae"] = r.CurriculumVitae
	}
	if r.SchoolCertificate != nil {
		set["school_certificate"] = r.SchoolCertificate
	}
	if r.BachelorCertificate != nil {
		set["bachelor_certificate"] = r.BachelorCertificate
	}
	if r.TranscriptOfRecords != nil {
		set["transcript_of_records"] = r.TranscriptOfRecords
	}
	if r.CourseDescription != nil {
		set["course_description"] = r.CourseDescription
	}
	if r.EnglishCertificate != nil {
		set["english_certificate"] = r.EnglishCertificate
	}
	if r.StandardizedTest != nil {
		set["standardized_test"] = r.StandardizedTest
	}
	if r.AdditionalDocuments != nil {
		set["additional_documents"] = r.AdditionalDocuments
	}
	return set
}

// DocumentReviewResponse is returned after a document review update.
type DocumentReviewResponse struct {
	Documents    models.DocumentSet  `json:"documents"`
	ReviewStatus models.ReviewStatus `json:"reviewStatus"`
}
