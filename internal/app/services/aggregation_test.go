package services

import (
	"testing"

	"github.com/lvogel/admithub/internal/app/models"
	"github.com/lvogel/admithub/internal/pkg/extraction"
)

func course(reviewed models.SubjectArea, credits float64) *models.Course {
	return &models.Course{
		ApplicantSubjectArea: reviewed,
		ReviewedSubjectArea:  reviewed,
		ReviewedCredits:      credits,
	}
}

func TestAggregateCredits(t *testing.T) {
	courses := []*models.Course{
		course(models.AreaComputerScience, 6),
		course(models.AreaComputerScience, 4.5),
		course(models.AreaBusinessAdministration, 3),
		course(models.AreaNone, 10),
	}

	areas, total := AggregateCredits(courses)

	if got := areas[models.AreaComputerScience]; got != 10.5 {
		t.Errorf("computer science credits = %v, want 10.5", got)
	}
	if got := areas[models.AreaBusinessAdministration]; got != 3 {
		t.Errorf("business administration credits = %v, want 3", got)
	}
	if total != 13.5 {
		t.Errorf("total = %v, want 13.5 (none excluded)", total)
	}

	// Every substantive area is present even without courses.
	for _, area := range models.CreditAreas {
		if _, ok := areas[area]; !ok {
			t.Errorf("area %q missing from result", area)
		}
	}
	if _, ok := areas[models.AreaNone]; ok {
		t.Error("area none must not appear in the credit map")
	}
}

func TestAggregateCreditsEmpty(t *testing.T) {
	areas, total := AggregateCredits(nil)
	if total != 0 {
		t.Errorf("total = %v, want 0", total)
	}
	if len(areas) != len(models.CreditAreas) {
		t.Errorf("got %d areas, want %d", len(areas), len(models.CreditAreas))
	}
}

func TestAggregateSkillPoints(t *testing.T) {
	skills := []*models.PersonalSkill{
		{Points: 2},
		{Points: 3.5},
	}
	if got := AggregateSkillPoints(skills); got != 5.5 {
		t.Errorf("AggregateSkillPoints = %v, want 5.5", got)
	}
	if got := AggregateSkillPoints(nil); got != 0 {
		t.Errorf("AggregateSkillPoints(nil) = %v, want 0", got)
	}
}

func TestBucketCourses(t *testing.T) {
	predicted := models.AreaInformationSystems
	courses := []*models.Course{
		{ApplicantName: "Databases", ApplicantSubjectArea: models.AreaInformationSystems},
		{ApplicantName: "Algorithms", ApplicantSubjectArea: models.AreaComputerScience},
		{ApplicantName: "Data Structures", ApplicantSubjectArea: models.AreaComputerScience},
		{ApplicantName: "Web Engineering", PredictedSubjectArea: &predicted},
	}

	buckets, order := BucketCourses(courses)

	wantOrder := []models.SubjectArea{models.AreaInformationSystems, models.AreaComputerScience}
	if len(order) != len(wantOrder) {
		t.Fatalf("order length = %d, want %d", len(order), len(wantOrder))
	}
	for i, area := range wantOrder {
		if order[i] != area {
			t.Errorf("order[%d] = %q, want %q", i, order[i], area)
		}
	}

	cs := buckets[models.AreaComputerScience]
	if len(cs) != 2 || cs[0].ApplicantName != "Algorithms" || cs[1].ApplicantName != "Data Structures" {
		t.Errorf("computer science bucket lost insertion order: %+v", cs)
	}

	// The course without an applicant classification falls back to its
	// predicted area.
	is := buckets[models.AreaInformationSystems]
	if len(is) != 2 || is[1].ApplicantName != "Web Engineering" {
		t.Errorf("information systems bucket = %+v, want predicted fallback included", is)
	}
}

func TestBucketCoursesEmpty(t *testing.T) {
	buckets, order := BucketCourses(nil)
	if len(buckets) != 0 {
		t.Errorf("got %d buckets, want 0", len(buckets))
	}
	if len(order) != 0 {
		t.Errorf("got order %v, want empty", order)
	}
}

func TestPopulateFromPrediction(t *testing.T) {
	page := 7
	candidates := []extraction.Candidate{
		{
			Name:        "Introduction to Databases",
			Credits:     6,
			SubjectArea: models.AreaInformationSystems,
			Description: "Relational modeling, SQL and transaction basics.",
			Page:        &page,
		},
		{
			Name:        "Linear Algebra",
			Credits:     7.5,
			SubjectArea: models.AreaQuantitativeMethods,
		},
	}

	drafts := PopulateFromPrediction(candidates)

	if len(drafts) != len(candidates) {
		t.Fatalf("got %d drafts, want %d", len(drafts), len(candidates))
	}

	for i, draft := range drafts {
		want := candidates[i]
		if draft.PredictedName == nil || *draft.PredictedName != want.Name {
			t.Errorf("drafts[%d].PredictedName = %v, want %q", i, draft.PredictedName, want.Name)
		}
		if draft.ApplicantName != want.Name || draft.ReviewedName != want.Name {
			t.Errorf("drafts[%d] tiers diverge on name", i)
		}
		if draft.ApplicantCredits != want.Credits || draft.ReviewedCredits != want.Credits {
			t.Errorf("drafts[%d] tiers diverge on credits", i)
		}
		if draft.ApplicantSubjectArea != want.SubjectArea || draft.ReviewedSubjectArea != want.SubjectArea {
			t.Errorf("drafts[%d] tiers diverge on subject area", i)
		}
		if !draft.Predicted() {
			t.Errorf("drafts[%d].Predicted() = false", i)
		}
	}

	if drafts[0].Description == nil || *drafts[0].Description != candidates[0].Description {
		t.Errorf("description not carried over: %v", drafts[0].Description)
	}
	if drafts[0].Page == nil || *drafts[0].Page != page {
		t.Errorf("page not carried over: %v", drafts[0].Page)
	}
	if drafts[1].Description != nil {
		t.Errorf("empty description should stay nil, got %v", drafts[1].Description)
	}
}
