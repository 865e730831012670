package extraction

import (
	"errors"
	"testing"

	"github.com/lvogel/admithub/internal/pkg/apperrors"
)

const validPayload = `{
	"courses": [
		{
			"name": "Algorithms and Data Structures",
			"credits": 6,
			"subjectArea": "computer_science",
			"description": "Design and analysis of fundamental algorithms and data structures.",
			"page": 12
		},
		{
			"name": "Descriptive Statistics",
			"credits": 4.5,
			"subjectArea": "quantitative_methods",
			"description": "Summarizing and visualizing empirical data distributions."
		}
	]
}`

func TestParseCandidates(t *testing.T) {
	candidates, err := ParseCandidates(validPayload)
	if err != nil {
		t.Fatalf("ParseCandidates returned error: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(candidates))
	}
	if candidates[0].Name != "Algorithms and Data Structures" {
		t.Errorf("name = %q", candidates[0].Name)
	}
	if candidates[0].Page == nil || *candidates[0].Page != 12 {
		t.Errorf("page = %v, want 12", candidates[0].Page)
	}
	if candidates[1].Page != nil {
		t.Errorf("page = %v, want nil for omitted page", candidates[1].Page)
	}
	if candidates[1].Credits != 4.5 {
		t.Errorf("credits = %v, want 4.5", candidates[1].Credits)
	}
}

func TestParseCandidatesStripsFences(t *testing.T) {
	fenced := "```json\n" + validPayload + "\n```"
	candidates, err := ParseCandidates(fenced)
	if err != nil {
		t.Fatalf("ParseCandidates returned error for fenced payload: %v", err)
	}
	if len(candidates) != 2 {
		t.Errorf("got %d candidates, want 2", len(candidates))
	}
}

func TestParseCandidatesDropsZeroCredits(t *testing.T) {
	payload := `{
		"courses": [
			{
				"name": "Colloquium",
				"credits": 0,
				"subjectArea": "none",
				"description": "Weekly research talks without graded assessment."
			},
			{
				"name": "Microeconomics",
				"credits": 5,
				"subjectArea": "business_administration",
				"description": "Supply, demand and market equilibrium under competition."
			}
		]
	}`
	candidates, err := ParseCandidates(payload)
	if err != nil {
		t.Fatalf("ParseCandidates returned error: %v", err)
	}
	if len(candidates) != 1 || candidates[0].Name != "Microeconomics" {
		t.Errorf("got %+v, want only Microeconomics", candidates)
	}
}

func TestParseCandidatesErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "the model refused"},
		{"truncated json", `{"courses": [{"name": "A"`},
		{"credits out of range", `{"courses": [{"name": "A", "credits": 99, "subjectArea": "none", "description": "A long enough description."}]}`},
		{"unknown subject area", `{"courses": [{"name": "A", "credits": 5, "subjectArea": "magic", "description": "A long enough description."}]}`},
		{"empty name", `{"courses": [{"name": "  ", "credits": 5, "subjectArea": "none", "description": "A long enough description."}]}`},
		{"description too short", `{"courses": [{"name": "A", "credits": 5, "subjectArea": "none", "description": "short"}]}`},
		{"non-positive page", `{"courses": [{"name": "A", "credits": 5, "subjectArea": "none", "description": "A long enough description.", "page": 0}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCandidates(tt.raw)
			if !errors.Is(err, apperrors.ErrExtractionFailed) {
				t.Errorf("err = %v, want ErrExtractionFailed", err)
			}
		})
	}
}

func TestParseCandidatesCountsDescriptionRunes(t *testing.T) {
	// Ten umlauts exceed ten bytes but are exactly ten characters, so the
	// lower bound must accept them.
	payload := `{
		"courses": [
			{
				"name": "Einführung",
				"credits": 5,
				"subjectArea": "computer_science",
				"description": "üüüüüüüüüü"
			}
		]
	}`
	candidates, err := ParseCandidates(payload)
	if err != nil {
		t.Fatalf("ParseCandidates returned error: %v", err)
	}
	if len(candidates) != 1 {
		t.Errorf("got %d candidates, want 1", len(candidates))
	}
}

func TestParseCandidatesEmptyList(t *testing.T) {
	candidates, err := ParseCandidates(`{"courses": []}`)
	if err != nil {
		t.Fatalf("ParseCandidates returned error: %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("got %d candidates, want 0", len(candidates))
	}
}
