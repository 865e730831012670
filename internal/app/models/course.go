package models

import "github.com/google/uuid"

// Credit value bounds per course, half points allowed.
const (
	MinCredits = 0.5
	MaxCredits = 30.0
)

// Description length bounds when a description is present.
const (
	MinDescriptionLen = 10
	MaxDescriptionLen = 300
)

// Course is one course row of a bachelor degree. Each of name, credits and
// subject area is kept in three provenance tiers: predicted (machine
// extracted, all-or-nothing nullable), applicant (self declared, required)
// and reviewed (staff finalised, required, seeded from the applicant values
// at creation).
type Course struct {
	ID                   uuid.UUID    `json:"id"`
	BachelorDegreeID     uuid.UUID    `json:"bachelorDegreeId"`
	PredictedName        *string      `json:"predictedName,omitempty"`
	PredictedCredits     *float64     `json:"predictedCredits,omitempty"`
	PredictedSubjectArea *SubjectArea `json:"predictedSubjectArea,omitempty"`
	ApplicantName        string       `json:"applicantName"`
	ApplicantCredits     float64      `json:"applicantCredits"`
	ApplicantSubjectArea SubjectArea  `json:"applicantSubjectArea"`
	ReviewedName         string       `json:"reviewedName"`
	ReviewedCredits      float64      `json:"reviewedCredits"`
	ReviewedSubjectArea  SubjectArea  `json:"reviewedSubjectArea"`
	Description          *string      `json:"description,omitempty"`
	Page                 *int         `json:"page,omitempty"`
}

// Predicted reports whether the course carries a machine-extracted tier.
// The three predicted fields are always present or absent together.
func (c *Course) Predicted() bool {
	return c.PredictedName != nil && c.PredictedCredits != nil && c.PredictedSubjectArea != nil
}

// BucketArea returns the subject area used for presentation bucketing:
// the applicant classification, or the predicted one when no applicant
// classification exists yet.
func (c *Course) BucketArea() SubjectArea {
	if c.ApplicantSubjectArea != "" {
		return c.ApplicantSubjectArea
	}
	if c.PredictedSubjectArea != nil {
		return *c.PredictedSubjectArea
	}
	return AreaNone
}
