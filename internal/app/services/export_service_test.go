package services

import (
	"testing"

	"github.com/lvogel/admithub/internal/app/models"
)

func verdict(s models.DocumentStatus) *models.DocumentStatus {
	return &s
}

func TestDocumentSymbol(t *testing.T) {
	tests := []struct {
		name   string
		status *models.DocumentStatus
		want   string
	}{
		{"existing", verdict(models.DocumentExisting), "1"},
		{"missing", verdict(models.DocumentMissing), "0"},
		{"unclear", verdict(models.DocumentUnclear), "?"},
		{"unreviewed", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := documentSymbol(tt.status); got != tt.want {
				t.Errorf("documentSymbol = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatCredits(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{6, "6"},
		{4.5, "4.5"},
		{13.5, "13.5"},
	}
	for _, tt := range tests {
		if got := formatCredits(tt.in); got != tt.want {
			t.Errorf("formatCredits(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildCSVRow(t *testing.T) {
	applicant := &models.Applicant{
		ApplicantNumber: "AP-00042",
		FirstName:       "Ada",
		LastName:        "Lovelace",
		MasterTrack:     models.TrackDataScience,
	}
	degree := &models.BachelorDegree{
		University:    "University of Example",
		Country:       "Germany",
		CourseOfStudy: "Business Informatics",
	}
	documents := &models.DocumentSet{
		CurriculumVitae:     verdict(models.DocumentExisting),
		SchoolCertificate:   verdict(models.DocumentExisting),
		BachelorCertificate: verdict(models.DocumentMissing),
		TranscriptOfRecords: verdict(models.DocumentUnclear),
		CourseDescription:   verdict(models.DocumentExisting),
		EnglishCertificate:  verdict(models.DocumentExisting),
	}
	courses := []*models.Course{
		course(models.AreaComputerScience, 6),
		course(models.AreaQuantitativeMethods, 4.5),
		course(models.AreaNone, 3),
	}
	skills := []*models.PersonalSkill{{Points: 4}, {Points: 2.5}}

	row := buildCSVRow(applicant, degree, documents, courses, skills)

	if len(row) != len(csvHeader) {
		t.Fatalf("row has %d columns, header has %d", len(row), len(csvHeader))
	}

	want := []string{
		"AP-00042", "Ada", "Lovelace", "data_science",
		"University of Example", "Germany", "Business Informatics",
		"1", "1", "0", "?", "1", "1", "", "",
		"0", "0", "6", "4.5",
		"10.5", "6.5",
	}
	for i, cell := range want {
		if row[i] != cell {
			t.Errorf("row[%d] (%s) = %q, want %q", i, csvHeader[i], row[i], cell)
		}
	}
}

func TestBuildCSVRowWithoutReviewData(t *testing.T) {
	applicant := &models.Applicant{
		ApplicantNumber: "AP-00001",
		FirstName:       "Grace",
		LastName:        "Hopper",
		MasterTrack:     models.TrackManagingDigitalBusiness,
	}

	row := buildCSVRow(applicant, nil, nil, nil, nil)

	if len(row) != len(csvHeader) {
		t.Fatalf("row has %d columns, header has %d", len(row), len(csvHeader))
	}
	for i := 4; i < 15; i++ {
		if row[i] != "" {
			t.Errorf("row[%d] (%s) = %q, want empty", i, csvHeader[i], row[i])
		}
	}
	if row[len(row)-2] != "0" || row[len(row)-1] != "0" {
		t.Errorf("totals = %q/%q, want 0/0", row[len(row)-2], row[len(row)-1])
	}
}
