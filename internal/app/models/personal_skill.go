package models

import (
	"time"

	"github.com/google/uuid"
)

// PersonalSkill is one staff-assigned skill score for an applicant. The
// full set is replaced on each review submission, keyed by client-supplied
// ids so unchanged rows survive.
type PersonalSkill struct {
	ID          uuid.UUID  `json:"id"`
	ApplicantID uuid.UUID  `json:"applicantId"`
	Description string     `json:"description"`
	Points      float64    `json:"points"`
	CreatedBy   *uuid.UUID `json:"createdBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
