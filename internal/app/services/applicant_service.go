package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lvogel/admithub/internal/app/models"
	"github.com/lvogel/admithub/internal/app/models/dto"
	"github.com/lvogel/admithub/internal/app/repositories"
	"github.com/lvogel/admithub/internal/db"
	"github.com/lvogel/admithub/internal/pkg/apperrors"
	"github.com/lvogel/admithub/internal/pkg/logger"
)

// statusRank orders the non-terminal pipeline stages. Rejected is terminal
// and deliberately absent.
var statusRank = map[models.ReviewStatus]int{
	models.StatusDocuments:      0,
	models.StatusCourseAnalysis: 1,
	models.StatusPersonalSkills: 2,
	models.StatusDone:           3,
}

// ApplicantService handles applicant administration for reviewers
type ApplicantService struct {
	pool          *pgxpool.Pool
	applicantRepo *repositories.ApplicantRepository
	degreeRepo    *repositories.DegreeRepository
	courseRepo    *repositories.CourseRepository
	documentRepo  *repositories.DocumentRepository
	skillRepo     *repositories.SkillRepository
	uploadRepo    *repositories.UploadRepository
}

// NewApplicantService creates a new applicant service instance
func NewApplicantService(
	pool *pgxpool.Pool,
	applicantRepo *repositories.ApplicantRepository,
	degreeRepo *repositories.DegreeRepository,
	courseRepo *repositories.CourseRepository,
	documentRepo *repositories.DocumentRepository,
	skillRepo *repositories.SkillRepository,
	uploadRepo *repositories.UploadRepository,
) *ApplicantService {
	return &ApplicantService{
		pool:          pool,
		applicantRepo: applicantRepo,
		degreeRepo:    degreeRepo,
		courseRepo:    courseRepo,
		documentRepo:  documentRepo,
		skillRepo:     skillRepo,
		uploadRepo:    uploadRepo,
	}
}

// List retrieves a filtered, paginated applicant listing
func (s *ApplicantService) List(ctx context.Context, filter repositories.ApplicantFilter, limit, offset uint64) ([]*models.Applicant, int64, error) {
	if filter.ReviewStatus != "" && !models.ValidReviewStatus(filter.ReviewStatus) {
		return nil, 0, apperrors.NewValidationError("unknown review status", map[string]interface{}{"reviewStatus": string(filter.ReviewStatus)})
	}
	if filter.MasterTrack != "" && !models.ValidMasterTrack(filter.MasterTrack) {
		return nil, 0, apperrors.NewValidationError("unknown master track", map[string]interface{}{"masterTrack": string(filter.MasterTrack)})
	}
	return s.applicantRepo.List(ctx, filter, limit, offset)
}

// GetDetail retrieves the full applicant aggregate for the review view
func (s *ApplicantService) GetDetail(ctx context.Context, id uuid.UUID) (*dto.ApplicantDetailResponse, error) {
	applicant, err := s.applicantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.ApplicantDetailResponse{
		Applicant: *applicant,
		Courses:   []models.Course{},
		Skills:    []models.PersonalSkill{},
		Uploads:   []models.Upload{},
	}

	degree, err := s.degreeRepo.GetByApplicantID(ctx, id)
	if err != nil && !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, err
	}
	if degree != nil {
		detail.Degree = degree
		courses, err := s.courseRepo.ListByDegree(ctx, degree.ID)
		if err != nil {
			return nil, err
		}
		for _, c := range courses {
			detail.Courses = append(detail.Courses, *c)
		}
	}

	documents, err := s.documentRepo.GetByApplicantID(ctx, id)
	if err != nil && !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, err
	}
	detail.Documents = documents

	skills, err := s.skillRepo.ListByApplicant(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, skill := range skills {
		detail.Skills = append(detail.Skills, *skill)
	}

	uploadIDs := []uuid.UUID{}
	if applicant.TranscriptUploadID != nil {
		uploadIDs = append(uploadIDs, *applicant.TranscriptUploadID)
	}
	if applicant.CourseDescriptionUploadID != nil {
		uploadIDs = append(uploadIDs, *applicant.CourseDescriptionUploadID)
	}
	uploads, err := s.uploadRepo.GetByIDs(ctx, uploadIDs)
	if err != nil {
		return nil, err
	}
	for _, upload := range uploads {
		detail.Uploads = append(detail.Uploads, *upload)
	}

	return detail, nil
}

// UpdateReviewStatus moves an applicant through the pipeline. Stages only
// move forward; rejection is reachable from any non-terminal stage; both
// done and rejected are terminal. Setting the current status again is a
// no-op.
func (s *ApplicantService) UpdateReviewStatus(ctx context.Context, id uuid.UUID, status models.ReviewStatus) (*models.Applicant, error) {
	if !models.ValidReviewStatus(status) {
		return nil, apperrors.NewValidationError("unknown review status", map[string]interface{}{"reviewStatus": string(status)})
	}

	applicant, err := s.applicantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if applicant.ReviewStatus == status {
		return applicant, nil
	}

	currentRank, currentNonTerminal := statusRank[applicant.ReviewStatus]
	if applicant.ReviewStatus == models.StatusRejected || applicant.ReviewStatus == models.StatusDone {
		return nil, apperrors.NewValidationError("applicant review is already final", nil)
	}

	if status != models.StatusRejected {
		newRank, ok := statusRank[status]
		if !ok || !currentNonTerminal || newRank < currentRank {
			return nil, apperrors.NewValidationError("review status cannot move backwards", map[string]interface{}{
				"reviewStatus": string(status),
			})
		}
	}

	var moved bool
	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		moved, err = s.applicantRepo.UpdateReviewStatus(ctx, tx, id, applicant.ReviewStatus, status)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, apperrors.NewValidationError("review status changed concurrently, reload the applicant", nil)
	}

	applicant.ReviewStatus = status
	logger.Info().
		Str("applicantID", id.String()).
		Str("reviewStatus", string(status)).
		Msg("Applicant review status updated")
	return applicant, nil
}

// UpdateDegree corrects the degree metadata of an applicant and stamps the
// reviewing account.
func (s *ApplicantService) UpdateDegree(ctx context.Context, applicantID uuid.UUID, req dto.DegreeRequest, reviewerID uuid.UUID) (*models.BachelorDegree, error) {
	degree, err := s.degreeRepo.GetByApplicantID(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	degree.University = req.University
	degree.Country = req.Country
	degree.CourseOfStudy = req.CourseOfStudy
	degree.WorstPossibleGrade = req.WorstPossibleGrade
	degree.AverageGrade = req.AverageGrade
	degree.BestPossibleGrade = req.BestPossibleGrade
	degree.CreditsInProgram = req.CreditsInProgram
	degree.YearsInProgram = req.YearsInProgram

	if err := s.degreeRepo.Update(ctx, degree, reviewerID); err != nil {
		return nil, err
	}
	return s.degreeRepo.GetByApplicantID(ctx, applicantID)
}

// Delete removes an applicant and all owned records
func (s *ApplicantService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.applicantRepo.Delete(ctx, id)
}

// Stats aggregates the pipeline counts for the dashboard
func (s *ApplicantService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	stats, err := s.applicantRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		TotalApplicants:  stats.Total,
		ByStatus:         stats.ByStatus,
		ByTrack:          stats.ByTrack,
		ByCountry:        stats.ByCountry,
		SubmissionsByDay: stats.ByDay,
	}, nil
}
