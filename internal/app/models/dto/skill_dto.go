package dto

import "github.com/google/uuid"

// SkillUpsertRequest is one personal skill row in a review submission. Rows
// with an id keep their identity; the stored set is otherwise replaced.
type SkillUpsertRequest struct {
	ID          *uuid.UUID `json:"id,omitempty"`
	Description string     `json:"description" binding:"required"`
	Points      float64    `json:"points" binding:"required,gte=1"`
}
