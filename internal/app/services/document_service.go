package services

import (
	"context"

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

// DocumentService handles document review and the completeness-driven
// pipeline transition.
type DocumentService struct {
	pool          *pgxpool.Pool
	documentRepo  *repositories.DocumentRepository
	applicantRepo *repositories.ApplicantRepository
}

// NewDocumentService creates a new document service instance
func NewDocumentService(pool *pgxpool.Pool, documentRepo *repositories.DocumentRepository, applicantRepo *repositories.ApplicantRepository) *DocumentService {
	return &DocumentService{
		pool:          pool,
		documentRepo:  documentRepo,
		applicantRepo: applicantRepo,
	}
}

// GetForApplicant retrieves the document set of an applicant
func (s *DocumentService) GetForApplicant(ctx context.Context, applicantID uuid.UUID) (*models.DocumentSet, error) {
	return s.documentRepo.GetByApplicantID(ctx, applicantID)
}

// Update writes the submitted slot verdicts and, when every required
// document is marked existing while the applicant still sits in the
// documents stage, advances the applicant to course analysis. Verdicts and
// transition commit as one unit. The transition is one-directional: an
// applicant already past the documents stage keeps its status even if slots
// are later downgraded.
func (s *DocumentService) Update(ctx context.Context, applicantID uuid.UUID, req dto.UpdateDocumentsRequest, reviewerID uuid.UUID) (*models.DocumentSet, models.ReviewStatus, error) {
	statuses := req.Statuses()
	if len(statuses) == 0 {
		return nil, "", apperrors.NewValidationError("no document verdicts submitted", nil)
	}
	details := map[string]interface{}{}
	for column, status := range statuses {
		if status != nil && !models.ValidDocumentStatus(*status) {
			details[column] = "unknown document status"
		}
	}
	if len(details) > 0 {
		return nil, "", apperrors.NewValidationError("invalid document status", details)
	}

	applicant, err := s.applicantRepo.GetByID(ctx, applicantID)
	if err != nil {
		return nil, "", err
	}

	var set *models.DocumentSet
	status := applicant.ReviewStatus
	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := s.documentRepo.GetByApplicantIDTx(ctx, tx, applicantID); err != nil {
			return err
		}

		set, err = s.documentRepo.UpdateStatuses(ctx, tx, applicantID, statuses, reviewerID)
		if err != nil {
			return err
		}

		if status == models.StatusDocuments && set.RequiredComplete() {
			// The update carries the expected current stage, so a rejection
			// committed after the read above stays in place and the advance
			// becomes a no-op.
			moved, err := s.applicantRepo.UpdateReviewStatus(ctx, tx, applicantID, models.StatusDocuments, models.StatusCourseAnalysis)
			if err != nil {
				return err
			}
			if moved {
				status = models.StatusCourseAnalysis
				logger.Info().
					Str("applicantID", applicantID.String()).
					Msg("Required documents complete, applicant moved to course analysis")
			}
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	return set, status, nil
}
