package models

import (
	"testing"
	"time"
)

func TestValidMasterTrack(t *testing.T) {
	tests := []struct {
		track MasterTrack
		want  bool
	}{
		{TrackManagingDigitalBusiness, true},
		{TrackBusinessProcessManagement, true},
		{TrackDataScience, true},
		{MasterTrack("philosophy"), false},
		{MasterTrack(""), false},
	}
	for _, tt := range tests {
		if got := ValidMasterTrack(tt.track); got != tt.want {
			t.Errorf("ValidMasterTrack(%q) = %v, want %v", tt.track, got, tt.want)
		}
	}
}

func TestValidSubjectArea(t *testing.T) {
	for _, area := range SubjectAreas {
		if !ValidSubjectArea(area) {
			t.Errorf("ValidSubjectArea(%q) = false for listed area", area)
		}
	}
	if ValidSubjectArea(SubjectArea("astrology")) {
		t.Error("ValidSubjectArea accepted an unknown area")
	}
}

func TestCoursePredicted(t *testing.T) {
	name := "Algorithms"
	credits := 6.0
	area := AreaComputerScience

	full := &Course{PredictedName: &name, PredictedCredits: &credits, PredictedSubjectArea: &area}
	if !full.Predicted() {
		t.Error("Predicted() = false with all three predicted fields set")
	}

	partial := &Course{PredictedName: &name}
	if partial.Predicted() {
		t.Error("Predicted() = true with only the name set")
	}

	none := &Course{}
	if none.Predicted() {
		t.Error("Predicted() = true with no predicted fields")
	}
}

func TestCourseBucketArea(t *testing.T) {
	predicted := AreaQuantitativeMethods

	tests := []struct {
		name   string
		course Course
		want   SubjectArea
	}{
		{"applicant classification wins", Course{ApplicantSubjectArea: AreaComputerScience, PredictedSubjectArea: &predicted}, AreaComputerScience},
		{"predicted fallback", Course{PredictedSubjectArea: &predicted}, AreaQuantitativeMethods},
		{"no classification", Course{}, AreaNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.course.BucketArea(); got != tt.want {
				t.Errorf("BucketArea() = %q, want %q", got, tt.want)
			}
		})
	}
}

func docStatus(s DocumentStatus) *DocumentStatus {
	return &s
}

func TestDocumentSetRequiredComplete(t *testing.T) {
	complete := DocumentSet{
		CurriculumVitae:     docStatus(DocumentExisting),
		SchoolCertificate:   docStatus(DocumentExisting),
		BachelorCertificate: docStatus(DocumentExisting),
		TranscriptOfRecords: docStatus(DocumentExisting),
		CourseDescription:   docStatus(DocumentExisting),
		EnglishCertificate:  docStatus(DocumentExisting),
	}

	if !complete.RequiredComplete() {
		t.Error("RequiredComplete() = false with every required slot existing")
	}

	// Optional slots do not influence the result.
	withOptional := complete
	withOptional.StandardizedTest = docStatus(DocumentMissing)
	withOptional.AdditionalDocuments = docStatus(DocumentUnclear)
	if !withOptional.RequiredComplete() {
		t.Error("RequiredComplete() = false because of optional slots")
	}

	missing := complete
	missing.EnglishCertificate = docStatus(DocumentMissing)
	if missing.RequiredComplete() {
		t.Error("RequiredComplete() = true with a missing required document")
	}

	unreviewed := complete
	unreviewed.CurriculumVitae = nil
	if unreviewed.RequiredComplete() {
		t.Error("RequiredComplete() = true with an unreviewed required slot")
	}
}

func TestSettingsPeriodOpen(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC)
	settings := &Settings{ApplicationPeriodStart: start, ApplicationPeriodEnd: end}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before period", start.Add(-time.Second), false},
		{"at start", start, true},
		{"inside period", start.AddDate(0, 1, 0), true},
		{"at end", end, true},
		{"after period", end.Add(time.Second), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := settings.PeriodOpen(tt.at); got != tt.want {
				t.Errorf("PeriodOpen(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}
