package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lvogel/admithub/internal/app/models"
	"github.com/lvogel/admithub/internal/app/models/dto"
	"github.com/lvogel/admithub/internal/app/repositories"
	"github.com/lvogel/admithub/internal/db"
	"github.com/lvogel/admithub/internal/pkg/apperrors"
)

// SkillService handles personal skill review
type SkillService struct {
	pool          *pgxpool.Pool
	skillRepo     *repositories.SkillRepository
	applicantRepo *repositories.ApplicantRepository
}

// NewSkillService creates a new skill service instance
func NewSkillService(pool *pgxpool.Pool, skillRepo *repositories.SkillRepository, applicantRepo *repositories.ApplicantRepository) *SkillService {
	return &SkillService{
		pool:          pool,
		skillRepo:     skillRepo,
		applicantRepo: applicantRepo,
	}
}

// ListForApplicant retrieves the skills of an applicant
func (s *SkillService) ListForApplicant(ctx context.Context, applicantID uuid.UUID) ([]*models.PersonalSkill, error) {
	if _, err := s.applicantRepo.GetByID(ctx, applicantID); err != nil {
		return nil, err
	}
	return s.skillRepo.ListByApplicant(ctx, applicantID)
}

// Replace rewrites the full skill set of an applicant in one transaction.
// Rows carrying an id keep their identity; stored rows absent from the
// submission are removed.
func (s *SkillService) Replace(ctx context.Context, applicantID uuid.UUID, requests []dto.SkillUpsertRequest, reviewerID uuid.UUID) ([]*models.PersonalSkill, error) {
	if _, err := s.applicantRepo.GetByID(ctx, applicantID); err != nil {
		return nil, err
	}

	details := map[string]interface{}{}
	for i, req := range requests {
		prefix := fmt.Sprintf("skills[%d].", i)
		if strings.TrimSpace(req.Description) == "" {
			details[prefix+"description"] = "must not be empty"
		}
		if req.Points <= 0 {
			details[prefix+"points"] = "must be positive"
		}
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid skill data", details)
	}

	skills := make([]*models.PersonalSkill, 0, len(requests))
	for _, req := range requests {
		skill := &models.PersonalSkill{
			ApplicantID: applicantID,
			Description: strings.TrimSpace(req.Description),
			Points:      req.Points,
			CreatedBy:   &reviewerID,
		}
		if req.ID != nil {
			skill.ID = *req.ID
		} else {
			skill.ID = uuid.New()
		}
		skills = append(skills, skill)
	}

	var stored []*models.PersonalSkill
	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		stored, err = s.skillRepo.Replace(ctx, tx, applicantID, skills)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}
