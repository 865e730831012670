package dto

import (
	"github.com/google/uuid"
	"github.com/lvogel/admithub/internal/app/models"
)

// DegreeRequest carries the bachelor degree data of an application.
type DegreeRequest struct {
	University         string  `json:"university" binding:"required"`
	Country            string  `json:"country" binding:"required"`
	CourseOfStudy      string  `json:"courseOfStudy" binding:"required"`
	WorstPossibleGrade float64 `json:"worstPossibleGrade" binding:"required,gte=1,lte=5"`
	AverageGrade       float64 `json:"averageGrade" binding:"required,gte=1,lte=5"`
	BestPossibleGrade  float64 `json:"bestPossibleGrade" binding:"required,gte=1,lte=5"`
	CreditsInProgram   float64 `json:"creditsInProgram" binding:"required,gte=30,lte=450"`
	YearsInProgram     float64 `json:"yearsInProgram" binding:"required,gte=1,lte=10"`
}

// SubmitApplicationRequest is the complete public application submission.
// The whole payload is persisted in a single transaction.
type SubmitApplicationRequest struct {
	FirstName                 string                `json:"firstName" binding:"required"`
	LastName                  string                `json:"lastName" binding:"required"`
	MasterTrack               models.MasterTrack    `json:"masterTrack" binding:"required"`
	Degree                    DegreeRequest         `json:"degree" binding:"required"`
	Courses                   []CourseCreateRequest `json:"courses" binding:"required,dive"`
	TranscriptUploadID        *uuid.UUID            `json:"transcriptUploadId,omitempty"`
	CourseDescriptionUploadID *uuid.UUID            `json:"courseDescriptionUploadId,omitempty"`
}

// SubmitApplicationResponse acknowledges a stored application.
type SubmitApplicationResponse struct {
	ApplicantID     uuid.UUID `json:"applicantId"`
	ApplicantNumber string    `json:"applicantNumber"`
	CourseCount     int       `json:"courseCount"`
}
