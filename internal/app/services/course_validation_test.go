package services

import (
	"strings"
	"testing"

	"github.com/lvogel/admithub/internal/app/models"
)

func TestAppendTierValidation(t *testing.T) {
	tests := []struct {
		name      string
		course    string
		credits   float64
		area      models.SubjectArea
		wantKeys  []string
		wantClean bool
	}{
		{"valid row", "Algorithms", 6, models.AreaComputerScience, nil, true},
		{"half credits allowed", "Statistics", 4.5, models.AreaQuantitativeMethods, nil, true},
		{"empty name", "   ", 6, models.AreaComputerScience, []string{"courses[0].reviewedName"}, false},
		{"credits too low", "Algorithms", 0.25, models.AreaComputerScience, []string{"courses[0].reviewedCredits"}, false},
		{"credits too high", "Algorithms", 31, models.AreaComputerScience, []string{"courses[0].reviewedCredits"}, false},
		{"unknown area", "Algorithms", 6, models.SubjectArea("alchemy"), []string{"courses[0].reviewedSubjectArea"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := map[string]interface{}{}
			appendTierValidation(details, "courses[0].", "reviewed", tt.course, tt.credits, tt.area)
			if tt.wantClean && len(details) > 0 {
				t.Fatalf("unexpected violations: %v", details)
			}
			for _, key := range tt.wantKeys {
				if _, ok := details[key]; !ok {
					t.Errorf("expected violation under %q, got %v", key, details)
				}
			}
		})
	}
}

func TestAppendPredictedValidation(t *testing.T) {
	name := "Algorithms"
	credits := 6.0
	area := models.AreaComputerScience

	t.Run("absent tier passes", func(t *testing.T) {
		details := map[string]interface{}{}
		appendPredictedValidation(details, "courses[0].", nil, nil, nil)
		if len(details) > 0 {
			t.Errorf("unexpected violations: %v", details)
		}
	})

	t.Run("full tier passes", func(t *testing.T) {
		details := map[string]interface{}{}
		appendPredictedValidation(details, "courses[0].", &name, &credits, &area)
		if len(details) > 0 {
			t.Errorf("unexpected violations: %v", details)
		}
	})

	t.Run("partial tier is rejected", func(t *testing.T) {
		details := map[string]interface{}{}
		appendPredictedValidation(details, "courses[0].", &name, nil, &area)
		if _, ok := details["courses[0].predicted"]; !ok {
			t.Errorf("expected all-or-nothing violation, got %v", details)
		}
	})

	t.Run("full tier with bad values", func(t *testing.T) {
		badCredits := 100.0
		details := map[string]interface{}{}
		appendPredictedValidation(details, "courses[0].", &name, &badCredits, &area)
		if _, ok := details["courses[0].predictedCredits"]; !ok {
			t.Errorf("expected credit bound violation, got %v", details)
		}
	})
}

func TestAppendCommonValidation(t *testing.T) {
	shortDesc := "too short"
	longDesc := strings.Repeat("x", 301)
	okDesc := "An introduction to relational databases and SQL."
	badPage := 0
	okPage := 3

	t.Run("nil optionals pass", func(t *testing.T) {
		details := map[string]interface{}{}
		appendCommonValidation(details, "courses[0].", nil, nil)
		if len(details) > 0 {
			t.Errorf("unexpected violations: %v", details)
		}
	})

	t.Run("valid optionals pass", func(t *testing.T) {
		details := map[string]interface{}{}
		appendCommonValidation(details, "courses[0].", &okDesc, &okPage)
		if len(details) > 0 {
			t.Errorf("unexpected violations: %v", details)
		}
	})

	t.Run("short description rejected", func(t *testing.T) {
		details := map[string]interface{}{}
		appendCommonValidation(details, "courses[0].", &shortDesc, nil)
		if _, ok := details["courses[0].description"]; !ok {
			t.Errorf("expected description violation, got %v", details)
		}
	})

	t.Run("long description rejected", func(t *testing.T) {
		details := map[string]interface{}{}
		appendCommonValidation(details, "courses[0].", &longDesc, nil)
		if _, ok := details["courses[0].description"]; !ok {
			t.Errorf("expected description violation, got %v", details)
		}
	})

	t.Run("length counts runes, not bytes", func(t *testing.T) {
		// Ten umlauts are twenty bytes but still a ten-character description.
		tenRunes := strings.Repeat("ü", 10)
		details := map[string]interface{}{}
		appendCommonValidation(details, "courses[0].", &tenRunes, nil)
		if len(details) > 0 {
			t.Errorf("unexpected violations for ten-rune description: %v", details)
		}

		tooManyRunes := strings.Repeat("ü", 301)
		details = map[string]interface{}{}
		appendCommonValidation(details, "courses[0].", &tooManyRunes, nil)
		if _, ok := details["courses[0].description"]; !ok {
			t.Errorf("expected description violation for 301 runes, got %v", details)
		}
	})

	t.Run("non-positive page rejected", func(t *testing.T) {
		details := map[string]interface{}{}
		appendCommonValidation(details, "courses[0].", nil, &badPage)
		if _, ok := details["courses[0].page"]; !ok {
			t.Errorf("expected page violation, got %v", details)
		}
	})
}
