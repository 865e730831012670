package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lvogel/admithub/internal/app/models"
	"github.com/lvogel/admithub/internal/pkg/apperrors"
	"github.com/lvogel/admithub/internal/pkg/logger"
)

const skillColumns = "id, applicant_id, description, points, created_by, created_at, updated_at"

// SkillRepository handles personal skill database operations
type SkillRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanSkill(row pgx.Row) (*models.PersonalSkill, error) {
	skill := &models.PersonalSkill{}
	err := row.Scan(
		&skill.ID,
		&skill.ApplicantID,
		&skill.Description,
		&skill.Points,
		&skill.CreatedBy,
		&skill.CreatedAt,
		&skill.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return skill, nil
}

// ListByApplicant retrieves the skills of an applicant, oldest first
func (r *SkillRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*models.PersonalSkill, error) {
	sql, args, err := r.sb.Select(skillColumns).
		From("personal_skills").
		Where(squirrel.Eq{"applicant_id": applicantID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list skills query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("applicantID", applicantID.String()).Msg("Error executing list skills query")
		return nil, fmt.Errorf("error querying personal skills: %w", err)
	}
	defer rows.Close()

	skills := []*models.PersonalSkill{}
	for rows.Next() {
		skill, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning skill row: %w", err)
		}
		skills = append(skills, skill)
	}

	return skills, rows.Err()
}

// Replace rewrites the skill set of an applicant: rows absent from the
// submitted set are deleted, the rest are upserted by id. Returns the
// stored rows in input order.
func (r *SkillRepository) Replace(ctx context.Context, q Querier, applicantID uuid.UUID, skills []*models.PersonalSkill) ([]*models.PersonalSkill, error) {
	keptIDs := make([]uuid.UUID, 0, len(skills))
	for _, s := range skills {
		keptIDs = append(keptIDs, s.ID)
	}

	if _, err := q.Exec(ctx, `
		DELETE FROM personal_skills
		WHERE applicant_id = $1 AND NOT (id = ANY($2))`,
		applicantID, keptIDs); err != nil {
		logger.Error().Err(err).Str("applicantID", applicantID.String()).Msg("Error pruning personal skills")
		return nil, fmt.Errorf("error pruning personal skills: %w", err)
	}

	stored := make([]*models.PersonalSkill, 0, len(skills))
	for _, s := range skills {
		row, err := scanSkill(q.QueryRow(ctx, fmt.Sprintf(`
			INSERT INTO personal_skills (id, applicant_id, description, points, created_by)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE SET
				description = EXCLUDED.description,
				points = EXCLUDED.points,
				updated_at = NOW()
			WHERE personal_skills.applicant_id = EXCLUDED.applicant_id
			RETURNING %s`, skillColumns),
			s.ID, applicantID, s.Description, s.Points, s.CreatedBy))
		if err != nil {
			// No returned row means the id hit the applicant guard, i.e. it
			// belongs to another applicant's skill.
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewValidationError("skill does not belong to this applicant", nil)
			}
			logger.Error().Err(err).Str("applicantID", applicantID.String()).Msg("Error upserting personal skill")
			return nil, fmt.Errorf("error upserting personal skill: %w", err)
		}
		stored = append(stored, row)
	}
	return stored, nil
}
