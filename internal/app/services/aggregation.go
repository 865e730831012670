package services

import (
	"github.com/lvogel/admithub/internal/app/models"
	"github.com/lvogel/admithub/internal/pkg/extraction"
)

// PopulateFromPrediction seeds one course draft per extraction candidate.
// Every tier starts out equal to the candidate values; the form lets the
// applicant and later the reviewer diverge from the prediction. The drafts
// carry no ids, they are persisted through the regular submission path.
func PopulateFromPrediction(candidates []extraction.Candidate) []*models.Course {
	courses := make([]*models.Course, 0, len(candidates))
	for _, candidate := range candidates {
		name := candidate.Name
		credits := candidate.Credits
		area := candidate.SubjectArea

		course := &models.Course{
			PredictedName:        &name,
			PredictedCredits:     &credits,
			PredictedSubjectArea: &area,
			ApplicantName:        name,
			ApplicantCredits:     credits,
			ApplicantSubjectArea: area,
			ReviewedName:         name,
			ReviewedCredits:      credits,
			ReviewedSubjectArea:  area,
			Page:                 candidate.Page,
		}
		if candidate.Description != "" {
			description := candidate.Description
			course.Description = &description
		}
		courses = append(courses, course)
	}
	return courses
}

// AggregateCredits sums reviewed credits per substantive subject area.
// Courses whose reviewed area is "none" are excluded from both the per-area
// sums and the total.
func AggregateCredits(courses []*models.Course) (map[models.SubjectArea]float64, float64) {
	areas := make(map[models.SubjectArea]float64, len(models.CreditAreas))
	for _, area := range models.CreditAreas {
		areas[area] = 0
	}

	var total float64
	for _, course := range courses {
		if course.ReviewedSubjectArea == models.AreaNone {
			continue
		}
		areas[course.ReviewedSubjectArea] += course.ReviewedCredits
		total += course.ReviewedCredits
	}
	return areas, total
}

// AggregateSkillPoints sums the points of an applicant's personal skills.
func AggregateSkillPoints(skills []*models.PersonalSkill) float64 {
	var total float64
	for _, skill := range skills {
		total += skill.Points
	}
	return total
}

// BucketCourses groups courses for presentation. The bucket of a course is
// its applicant classification, falling back to the predicted one; within a
// bucket the insertion order of the input is preserved. The returned order
// lists the non-empty buckets in fixed presentation order.
func BucketCourses(courses []*models.Course) (map[models.SubjectArea][]models.Course, []models.SubjectArea) {
	buckets := map[models.SubjectArea][]models.Course{}
	for _, course := range courses {
		area := course.BucketArea()
		buckets[area] = append(buckets[area], *course)
	}

	order := []models.SubjectArea{}
	for _, area := range models.SubjectAreas {
		if len(buckets[area]) > 0 {
			order = append(order, area)
		}
	}
	return buckets, order
}
