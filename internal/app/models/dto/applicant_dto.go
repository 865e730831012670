package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lvogel/admithub/internal/app/models"
)

// ApplicantListItem is the compact applicant row for review listings.
type ApplicantListItem struct {
	ID              uuid.UUID           `json:"id"`
	ApplicantNumber string              `json:"applicantNumber"`
	FirstName       string              `json:"firstName"`
	LastName        string              `json:"lastName"`
	MasterTrack     models.MasterTrack  `json:"masterTrack"`
	ReviewStatus    models.ReviewStatus `json:"reviewStatus"`
	CreatedAt       time.Time           `json:"createdAt"`
}

// ApplicantListResponse is a paginated applicant listing.
type ApplicantListResponse struct {
	Applicants []ApplicantListItem `json:"applicants"`
	Pagination PaginationInfo      `json:"pagination"`
}

// ApplicantDetailResponse is the full applicant aggregate for review.
type ApplicantDetailResponse struct {
	Applicant models.Applicant       `json:"applicant"`
	Degree    *models.BachelorDegree `json:"degree,omitempty"`
	Documents *models.DocumentSet    `json:"documents,omitempty"`
	Courses   []models.Course        `json:"courses"`
	Skills    []models.PersonalSkill `json:"skills"`
	Uploads   []models.Upload        `json:"uploads"`
}

// UpdateReviewStatusRequest moves an applicant through the review pipeline.
type UpdateReviewStatusRequest struct {
	ReviewStatus models.ReviewStatus `json:"reviewStatus" binding:"required"`
}

// CreditAggregateResponse sums reviewed credits per countable subject area.
type CreditAggregateResponse struct {
	Areas       map[models.SubjectArea]float64 `json:"areas"`
	Total       float64                        `json:"total"`
	SkillPoints float64                        `json:"skillPoints"`
}

// ApplicantExportResponse is the print-oriented applicant report payload:
// the aggregate plus courses bucketed by reviewed subject area.
type ApplicantExportResponse struct {
	Applicant models.Applicant                       `json:"applicant"`
	Degree    *models.BachelorDegree                 `json:"degree,omitempty"`
	Buckets   map[models.SubjectArea][]models.Course `json:"buckets"`
	Order     []models.SubjectArea                   `json:"order"`
	Credits   CreditAggregateResponse                `json:"credits"`
	Skills    []models.PersonalSkill                 `json:"skills"`
}
