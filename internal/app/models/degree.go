package models

import (
	"time"

	"github.com/google/uuid"
)

// BachelorDegree holds the grading-scale metadata of an applicant's
// bachelor programme and owns the course records (1:N, cascade delete).
type BachelorDegree struct {
	ID                 uuid.UUID  `json:"id"`
	ApplicantID        uuid.UUID  `json:"applicantId"`
	University         string     `json:"university"`
	Country            string     `json:"country"`
	CourseOfStudy      string     `json:"courseOfStudy"`
	WorstPossibleGrade float64    `json:"worstPossibleGrade"`
	AverageGrade       float64    `json:"averageGrade"`
	BestPossibleGrade  float64    `json:"bestPossibleGrade"`
	CreditsInProgram   float64    `json:"creditsInProgram"`
	YearsInProgram     float64    `json:"yearsInProgram"`
	ReviewedBy         *uuid.UUID `json:"reviewedBy,omitempty"`
	ReviewedAt         *time.Time `json:"reviewedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}
