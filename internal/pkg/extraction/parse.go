package extraction

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lvogel/admithub/internal/app/models"
	"github.com/lvogel/admithub/internal/pkg/apperrors"
)

// extractionResult mirrors the constrained response shape.
type extractionResult struct {
	Courses []Candidate `json:"courses"`
}

// ParseCandidates turns the raw model output into a validated candidate
// list. One repair pass strips markdown fences the model occasionally adds
// despite the JSON response type; anything still unusable after that is a
// hard ErrExtractionFailed. Candidates without a usable credit value are
// dropped rather than inserted with a zero value.
func ParseCandidates(raw string) ([]Candidate, error) {
	cleaned := stripFences(raw)

	var result extractionResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrExtractionFailed, err)
	}

	candidates := make([]Candidate, 0, len(result.Courses))
	for _, c := range result.Courses {
		c.Name = strings.TrimSpace(c.Name)
		c.Description = strings.TrimSpace(c.Description)

		// Credits are mandatory per the extraction policy; the model is
		// instructed to omit such courses, so a missing value only means
		// it failed to follow the rule for this entry.
		if c.Credits == 0 {
			continue
		}

		if err := validateCandidate(c); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}

	return candidates, nil
}

// validateCandidate enforces the output schema bounds on one candidate.
func validateCandidate(c Candidate) error {
	if c.Name == "" {
		return fmt.Errorf("%w: candidate without name", apperrors.ErrExtractionFailed)
	}
	if c.Credits < models.MinCredits || c.Credits > models.MaxCredits {
		return fmt.Errorf("%w: credits %v out of range", apperrors.ErrExtractionFailed, c.Credits)
	}
	if !models.ValidSubjectArea(c.SubjectArea) {
		return fmt.Errorf("%w: unknown subject area %q", apperrors.ErrExtractionFailed, c.SubjectArea)
	}
	if n := utf8.RuneCountInString(c.Description); n < models.MinDescriptionLen || n > models.MaxDescriptionLen {
		return fmt.Errorf("%w: description length %d out of range", apperrors.ErrExtractionFailed, n)
	}
	if c.Page != nil && *c.Page < 1 {
		return fmt.Errorf("%w: page %d is not positive", apperrors.ErrExtractionFailed, *c.Page)
	}
	return nil
}

// stripFences removes markdown code fences around a JSON payload.
func stripFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
