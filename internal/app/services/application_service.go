package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lvogel/admithub/internal/app/models"
	"github.com/lvogel/admithub/internal/app/models/dto"
	"github.com/lvogel/admithub/internal/app/repositories"
	"github.com/lvogel/admithub/internal/db"
	"github.com/lvogel/admithub/internal/pkg/apperrors"
	"github.com/lvogel/admithub/internal/pkg/extraction"
	"github.com/lvogel/admithub/internal/pkg/logger"
)

// ApplicationService handles the public application submission flow and
// course prediction.
type ApplicationService struct {
	pool          *pgxpool.Pool
	settingsRepo  *repositories.SettingsRepository
	applicantRepo *repositories.ApplicantRepository
	degreeRepo    *repositories.DegreeRepository
	courseRepo    *repositories.CourseRepository
	documentRepo  *repositories.DocumentRepository
	uploadRepo    *repositories.UploadRepository
	extractor     extraction.Client
}

// NewApplicationService creates a new application service instance
func NewApplicationService(
	pool *pgxpool.Pool,
	settingsRepo *repositories.SettingsRepository,
	applicantRepo *repositories.ApplicantRepository,
	degreeRepo *repositories.DegreeRepository,
	courseRepo *repositories.CourseRepository,
	documentRepo *repositories.DocumentRepository,
	uploadRepo *repositories.UploadRepository,
	extractor extraction.Client,
) *ApplicationService {
	return &ApplicationService{
		pool:          pool,
		settingsRepo:  settingsRepo,
		applicantRepo: applicantRepo,
		degreeRepo:    degreeRepo,
		courseRepo:    courseRepo,
		documentRepo:  documentRepo,
		uploadRepo:    uploadRepo,
		extractor:     extractor,
	}
}

// Submit stores a complete application: the applicant, its empty document
// set, the bachelor degree and the course rows, all in one transaction. The
// reviewed tier of each course is seeded from the applicant values.
func (s *ApplicationService) Submit(ctx context.Context, req dto.SubmitApplicationRequest) (*models.Applicant, int, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, 0, err
	}
	if !settings.PeriodOpen(time.Now()) {
		return nil, 0, apperrors.ErrPeriodClosed
	}

	if !models.ValidMasterTrack(req.MasterTrack) {
		return nil, 0, apperrors.NewValidationError("unknown master track", map[string]interface{}{"masterTrack": string(req.MasterTrack)})
	}

	details := map[string]interface{}{}
	for i, course := range req.Courses {
		prefix := fmt.Sprintf("courses[%d].", i)
		appendPredictedValidation(details, prefix, course.PredictedName, course.PredictedCredits, course.PredictedSubjectArea)
		appendTierValidation(details, prefix, "applicant", course.ApplicantName, course.ApplicantCredits, course.ApplicantSubjectArea)
		appendCommonValidation(details, prefix, course.Description, course.Page)
	}
	if len(details) > 0 {
		return nil, 0, apperrors.NewValidationError("invalid course data", details)
	}

	for _, uploadID := range []*uuid.UUID{req.TranscriptUploadID, req.CourseDescriptionUploadID} {
		if uploadID == nil {
			continue
		}
		if _, err := s.uploadRepo.GetByID(ctx, *uploadID); err != nil {
			return nil, 0, err
		}
	}

	applicant := &models.Applicant{
		FirstName:                 req.FirstName,
		LastName:                  req.LastName,
		MasterTrack:               req.MasterTrack,
		ReviewStatus:              models.StatusDocuments,
		TranscriptUploadID:        req.TranscriptUploadID,
		CourseDescriptionUploadID: req.CourseDescriptionUploadID,
	}

	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.applicantRepo.Create(ctx, tx, applicant); err != nil {
			return err
		}

		if _, err := s.documentRepo.Create(ctx, tx, applicant.ID); err != nil {
			return err
		}

		degree := &models.BachelorDegree{
			ApplicantID:        applicant.ID,
			University:         req.Degree.University,
			Country:            req.Degree.Country,
			CourseOfStudy:      req.Degree.CourseOfStudy,
			WorstPossibleGrade: req.Degree.WorstPossibleGrade,
			AverageGrade:       req.Degree.AverageGrade,
			BestPossibleGrade:  req.Degree.BestPossibleGrade,
			CreditsInProgram:   req.Degree.CreditsInProgram,
			YearsInProgram:     req.Degree.YearsInProgram,
		}
		if err := s.degreeRepo.Create(ctx, tx, degree); err != nil {
			return err
		}

		courses := make([]*models.Course, 0, len(req.Courses))
		for _, c := range req.Courses {
			courses = append(courses, &models.Course{
				ID:                   uuid.New(),
				BachelorDegreeID:     degree.ID,
				PredictedName:        c.PredictedName,
				PredictedCredits:     c.PredictedCredits,
				PredictedSubjectArea: c.PredictedSubjectArea,
				ApplicantName:        c.ApplicantName,
				ApplicantCredits:     c.ApplicantCredits,
				ApplicantSubjectArea: c.ApplicantSubjectArea,
				ReviewedName:         c.ApplicantName,
				ReviewedCredits:      c.ApplicantCredits,
				ReviewedSubjectArea:  c.ApplicantSubjectArea,
				Description:          c.Description,
				Page:                 c.Page,
			})
		}
		_, err := s.courseRepo.UpsertBatch(ctx, tx, courses)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	logger.Info().
		Str("applicantID", applicant.ID.String()).
		Str("applicantNumber", applicant.ApplicantNumber).
		Int("courses", len(req.Courses)).
		Msg("Application submitted")

	return applicant, len(req.Courses), nil
}

// PredictCourses runs course extraction over the submitted text. An
// unusable inference response degrades to an empty candidate list rather
// than failing the request. When a transcript upload is referenced, page
// numbers beyond its page count are dropped from the candidates.
func (s *ApplicationService) PredictCourses(ctx context.Context, req dto.PredictionRequest) ([]extraction.Candidate, error) {
	maxPage := 0
	if req.TranscriptUploadID != nil {
		upload, err := s.uploadRepo.GetByID(ctx, *req.TranscriptUploadID)
		if err != nil {
			return nil, err
		}
		maxPage = upload.PageCount
	}

	candidates, err := s.extractor.ExtractCourses(ctx, req.Text)
	if err != nil {
		if errors.Is(err, apperrors.ErrExtractionFailed) {
			logger.Warn().Err(err).Msg("Course extraction produced no usable candidates")
			return []extraction.Candidate{}, nil
		}
		return nil, err
	}

	if maxPage > 0 {
		for i := range candidates {
			if candidates[i].Page != nil && *candidates[i].Page > maxPage {
				candidates[i].Page = nil
			}
		}
	}
	return candidates, nil
}
