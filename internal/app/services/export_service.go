package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/lvogel/admithub/internal/app/models"
	"github.com/lvogel/admithub/internal/app/models/dto"
	"github.com/lvogel/admithub/internal/app/repositories"
	"github.com/lvogel/admithub/internal/pkg/apperrors"
	"github.com/lvogel/admithub/internal/pkg/logger"
)

// csvHeader is the fixed column layout of the results export.
var csvHeader = []string{
	"applicant_number",
	"first_name",
	"last_name",
	"master_track",
	"university",
	"country",
	"course_of_study",
	"curriculum_vitae",
	"school_certificate",
	"bachelor_certificate",
	"transcript_of_records",
	"course_description",
	"english_certificate",
	"standardized_test",
	"additional_documents",
	"information_systems_credits",
	"business_administration_credits",
	"computer_science_credits",
	"quantitative_methods_credits",
	"total_credits",
	"skill_points",
}

// ExportService produces the results CSV and the per-applicant report data
type ExportService struct {
	applicantRepo *repositories.ApplicantRepository
	degreeRepo    *repositories.DegreeRepository
	courseRepo    *repositories.CourseRepository
	documentRepo  *repositories.DocumentRepository
	skillRepo     *repositories.SkillRepository
}

// NewExportService creates a new export service instance
func NewExportService(
	applicantRepo *repositories.ApplicantRepository,
	degreeRepo *repositories.DegreeRepository,
	courseRepo *repositories.CourseRepository,
	documentRepo *repositories.DocumentRepository,
	skillRepo *repositories.SkillRepository,
) *ExportService {
	return &ExportService{
		applicantRepo: applicantRepo,
		degreeRepo:    degreeRepo,
		courseRepo:    courseRepo,
		documentRepo:  documentRepo,
		skillRepo:     skillRepo,
	}
}

// documentSymbol encodes a slot verdict for the CSV: existing 1, missing 0,
// unclear ?, unreviewed empty.
func documentSymbol(status *models.DocumentStatus) string {
	if status == nil {
		return ""
	}
	switch *status {
	case models.DocumentExisting:
		return "1"
	case models.DocumentMissing:
		return "0"
	case models.DocumentUnclear:
		return "?"
	}
	return ""
}

func formatCredits(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// buildCSVRow renders one applicant into the fixed column layout.
func buildCSVRow(
	applicant *models.Applicant,
	degree *models.BachelorDegree,
	documents *models.DocumentSet,
	courses []*models.Course,
	skills []*models.PersonalSkill,
) []string {
	row := []string{
		applicant.ApplicantNumber,
		applicant.FirstName,
		applicant.LastName,
		string(applicant.MasterTrack),
	}

	if degree != nil {
		row = append(row, degree.University, degree.Country, degree.CourseOfStudy)
	} else {
		row = append(row, "", "", "")
	}

	if documents != nil {
		row = append(row,
			documentSymbol(documents.CurriculumVitae),
			documentSymbol(documents.SchoolCertificate),
			documentSymbol(documents.BachelorCertificate),
			documentSymbol(documents.TranscriptOfRecords),
			documentSymbol(documents.CourseDescription),
			documentSymbol(documents.EnglishCertificate),
			documentSymbol(documents.StandardizedTest),
			documentSymbol(documents.AdditionalDocuments),
		)
	} else {
		for i := 0; i < 8; i++ {
			row = append(row, "")
		}
	}

	areas, total := AggregateCredits(courses)
	for _, area := range models.CreditAreas {
		row = append(row, formatCredits(areas[area]))
	}
	row = append(row, formatCredits(total), formatCredits(AggregateSkillPoints(skills)))

	return row
}

// WriteResultsCSV streams the results of every fully reviewed applicant.
// Only applicants in the done stage are included.
func (s *ExportService) WriteResultsCSV(ctx context.Context, w io.Writer) error {
	applicants, err := s.applicantRepo.ListByStatus(ctx, models.StatusDone)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, applicant := range applicants {
		degree, courses, documents, skills, err := s.loadReviewData(ctx, applicant.ID)
		if err != nil {
			return err
		}
		if err := writer.Write(buildCSVRow(applicant, degree, documents, courses, skills)); err != nil {
			return fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("error flushing CSV: %w", err)
	}

	logger.Info().Int("applicants", len(applicants)).Msg("Results CSV exported")
	return nil
}

func (s *ExportService) loadReviewData(ctx context.Context, applicantID uuid.UUID) (*models.BachelorDegree, []*models.Course, *models.DocumentSet, []*models.PersonalSkill, error) {
	var courses []*models.Course

	degree, err := s.degreeRepo.GetByApplicantID(ctx, applicantID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, nil, nil, nil, err
		}
		degree = nil
	}
	if degree != nil {
		if courses, err = s.courseRepo.ListByDegree(ctx, degree.ID); err != nil {
			return nil, nil, nil, nil, err
		}
	}

	documents, err := s.documentRepo.GetByApplicantID(ctx, applicantID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, nil, nil, nil, err
		}
		documents = nil
	}

	skills, err := s.skillRepo.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return degree, courses, documents, skills, nil
}

// ExportApplicant assembles the print-oriented report of one applicant:
// courses bucketed by subject area plus the credit aggregate.
func (s *ExportService) ExportApplicant(ctx context.Context, applicantID uuid.UUID) (*dto.ApplicantExportResponse, error) {
	applicant, err := s.applicantRepo.GetByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	degree, courses, _, skills, err := s.loadReviewData(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	buckets, order := BucketCourses(courses)
	areas, total := AggregateCredits(courses)

	// The report lists only substantive buckets; unclassified courses stay
	// visible in the review views but not in the printed result.
	if _, ok := buckets[models.AreaNone]; ok {
		delete(buckets, models.AreaNone)
		filtered := order[:0]
		for _, area := range order {
			if area != models.AreaNone {
				filtered = append(filtered, area)
			}
		}
		order = filtered
	}

	response := &dto.ApplicantExportResponse{
		Applicant: *applicant,
		Degree:    degree,
		Buckets:   buckets,
		Order:     order,
		Credits: dto.CreditAggregateResponse{
			Areas:       areas,
			Total:       total,
			SkillPoints: AggregateSkillPoints(skills),
		},
		Skills: []models.PersonalSkill{},
	}
	for _, skill := range skills {
		response.Skills = append(response.Skills, *skill)
	}
	return response, nil
}
