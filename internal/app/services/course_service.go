package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lvogel/admithub/internal/app/models"
	"github.com/lvogel/admithub/internal/app/models/dto"
	"github.com/lvogel/admithub/internal/app/repositories"
	"github.com/lvogel/admithub/internal/db"
	"github.com/lvogel/admithub/internal/pkg/apperrors"
)

// CourseService handles course reconciliation for a bachelor degree
type CourseService struct {
	pool          *pgxpool.Pool
	courseRepo    *repositories.CourseRepository
	degreeRepo    *repositories.DegreeRepository
	applicantRepo *repositories.ApplicantRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(pool *pgxpool.Pool, courseRepo *repositories.CourseRepository, degreeRepo *repositories.DegreeRepository, applicantRepo *repositories.ApplicantRepository) *CourseService {
	return &CourseService{
		pool:          pool,
		courseRepo:    courseRepo,
		degreeRepo:    degreeRepo,
		applicantRepo: applicantRepo,
	}
}

// appendTierValidation checks one name/credits/area tier of a course row and
// records violations under field keys like "courses[2].reviewedCredits".
func appendTierValidation(details map[string]interface{}, prefix, tier, name string, credits float64, area models.SubjectArea) {
	if strings.TrimSpace(name) == "" {
		details[prefix+tier+"Name"] = "must not be empty"
	}
	if credits < models.MinCredits || credits > models.MaxCredits {
		details[prefix+tier+"Credits"] = fmt.Sprintf("must be between %g and %g", models.MinCredits, models.MaxCredits)
	}
	if !models.ValidSubjectArea(area) {
		details[prefix+tier+"SubjectArea"] = "unknown subject area"
	}
}

// appendCommonValidation checks the shared optional fields of a course row.
func appendCommonValidation(details map[string]interface{}, prefix string, description *string, page *int) {
	if description != nil {
		length := utf8.RuneCountInString(strings.TrimSpace(*description))
		if length < models.MinDescriptionLen || length > models.MaxDescriptionLen {
			details[prefix+"description"] = fmt.Sprintf("must be between %d and %d characters", models.MinDescriptionLen, models.MaxDescriptionLen)
		}
	}
	if page != nil && *page < 1 {
		details[prefix+"page"] = "must be at least 1"
	}
}

// appendPredictedValidation enforces that the predicted tier is present or
// absent as a whole and, when present, within bounds.
func appendPredictedValidation(details map[string]interface{}, prefix string, name *string, credits *float64, area *models.SubjectArea) {
	set := 0
	if name != nil {
		set++
	}
	if credits != nil {
		set++
	}
	if area != nil {
		set++
	}
	switch set {
	case 0:
		return
	case 3:
		appendTierValidation(details, prefix, "predicted", *name, *credits, *area)
	default:
		details[prefix+"predicted"] = "predicted name, credits and subject area must be set together"
	}
}

// UpsertForApplicant validates and writes a course batch for an applicant's
// degree. The batch is all-or-nothing: a single invalid row rejects the
// whole request and nothing is written.
func (s *CourseService) UpsertForApplicant(ctx context.Context, applicantID uuid.UUID, requests []dto.CourseUpsertRequest) ([]*models.Course, error) {
	if _, err := s.applicantRepo.GetByID(ctx, applicantID); err != nil {
		return nil, err
	}
	degree, err := s.degreeRepo.GetByApplicantID(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	details := map[string]interface{}{}
	for i, req := range requests {
		prefix := fmt.Sprintf("courses[%d].", i)
		appendPredictedValidation(details, prefix, req.PredictedName, req.PredictedCredits, req.PredictedSubjectArea)
		appendTierValidation(details, prefix, "applicant", req.ApplicantName, req.ApplicantCredits, req.ApplicantSubjectArea)
		appendTierValidation(details, prefix, "reviewed", req.ReviewedName, req.ReviewedCredits, req.ReviewedSubjectArea)
		appendCommonValidation(details, prefix, req.Description, req.Page)
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid course data", details)
	}

	courses := make([]*models.Course, 0, len(requests))
	for _, req := range requests {
		course := &models.Course{
			BachelorDegreeID:     degree.ID,
			PredictedName:        req.PredictedName,
			PredictedCredits:     req.PredictedCredits,
			PredictedSubjectArea: req.PredictedSubjectArea,
			ApplicantName:        strings.TrimSpace(req.ApplicantName),
			ApplicantCredits:     req.ApplicantCredits,
			ApplicantSubjectArea: req.ApplicantSubjectArea,
			ReviewedName:         strings.TrimSpace(req.ReviewedName),
			ReviewedCredits:      req.ReviewedCredits,
			ReviewedSubjectArea:  req.ReviewedSubjectArea,
			Description:          req.Description,
			Page:                 req.Page,
		}
		if req.ID != nil {
			course.ID = *req.ID
		} else {
			course.ID = uuid.New()
		}
		courses = append(courses, course)
	}

	var stored []*models.Course
	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		stored, err = s.courseRepo.UpsertBatch(ctx, tx, courses)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// ListForApplicant retrieves the applicant's courses in insertion order
func (s *CourseService) ListForApplicant(ctx context.Context, applicantID uuid.UUID) ([]*models.Course, error) {
	degree, err := s.degreeRepo.GetByApplicantID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	return s.courseRepo.ListByDegree(ctx, degree.ID)
}

// ListBuckets retrieves the applicant's courses grouped by subject area
func (s *CourseService) ListBuckets(ctx context.Context, applicantID uuid.UUID) (map[models.SubjectArea][]models.Course, []models.SubjectArea, error) {
	courses, err := s.ListForApplicant(ctx, applicantID)
	if err != nil {
		return nil, nil, err
	}
	buckets, order := BucketCourses(courses)
	return buckets, order, nil
}

// Delete removes one course of the applicant's degree
func (s *CourseService) Delete(ctx context.Context, applicantID, courseID uuid.UUID) error {
	degree, err := s.degreeRepo.GetByApplicantID(ctx, applicantID)
	if err != nil {
		return err
	}
	return s.courseRepo.Delete(ctx, degree.ID, courseID)
}
