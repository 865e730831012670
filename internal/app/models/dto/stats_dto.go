package dto

import "github.com/lvogel/admithub/internal/app/models"

// StatsResponse summarizes the applicant pipeline for the dashboard.
type StatsResponse struct {
	TotalApplicants  int64                         `json:"totalApplicants"`
	ByStatus         map[models.ReviewStatus]int64 `json:"byStatus"`
	ByTrack          map[models.MasterTrack]int64  `json:"byTrack"`
	ByCountry        map[string]int64              `json:"byCountry"`
	SubmissionsByDay []models.DailyCount           `json:"submissionsByDay"`
}
