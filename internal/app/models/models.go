package models

// MasterTrack is the master's programme an applicant applies to.
type MasterTrack string

const (
	TrackManagingDigitalBusiness   MasterTrack = "managing_digital_business"
	TrackBusinessProcessManagement MasterTrack = "business_process_management"
	TrackDataScience               MasterTrack = "data_science"
)

// ValidMasterTrack reports whether t is one of the known tracks.
func ValidMasterTrack(t MasterTrack) bool {
	switch t {
	case TrackManagingDigitalBusiness, TrackBusinessProcessManagement, TrackDataScience:
		return true
	}
	return false
}

// ReviewStatus is the applicant's position in the review pipeline.
// The stages are ordered; "rejected" is terminal and reachable from any
// non-terminal stage.
type ReviewStatus string

const (
	StatusDocuments      ReviewStatus = "documents"
	StatusCourseAnalysis ReviewStatus = "course_analysis"
	StatusPersonalSkills ReviewStatus = "personal_skills"
	StatusDone           ReviewStatus = "done"
	StatusRejected       ReviewStatus = "rejected"
)

// ValidReviewStatus reports whether s is a known review status.
func ValidReviewStatus(s ReviewStatus) bool {
	switch s {
	case StatusDocuments, StatusCourseAnalysis, StatusPersonalSkills, StatusDone, StatusRejected:
		return true
	}
	return false
}

// DocumentStatus is the review verdict for a single document slot.
// A nil value in the document set means the slot has not been reviewed yet.
type DocumentStatus string

const (
	DocumentExisting DocumentStatus = "existing"
	DocumentMissing  DocumentStatus = "missing"
	DocumentUnclear  DocumentStatus = "unclear"
)

// ValidDocumentStatus reports whether s is a known document status.
func ValidDocumentStatus(s DocumentStatus) bool {
	switch s {
	case DocumentExisting, DocumentMissing, DocumentUnclear:
		return true
	}
	return false
}

// SubjectArea is the closed classification bucket for a course.
type SubjectArea string

const (
	AreaInformationSystems     SubjectArea = "information_systems"
	AreaBusinessAdministration SubjectArea = "business_administration"
	AreaComputerScience        SubjectArea = "computer_science"
	AreaQuantitativeMethods    SubjectArea = "quantitative_methods"
	AreaNone                   SubjectArea = "none"
)

// SubjectAreas lists every subject area including "none", in presentation
// order.
var SubjectAreas = []SubjectArea{
	AreaInformationSystems,
	AreaBusinessAdministration,
	AreaComputerScience,
	AreaQuantitativeMethods,
	AreaNone,
}

// CreditAreas lists the four substantive subject areas. Courses classified
// as "none" never contribute to credit aggregation.
var CreditAreas = []SubjectArea{
	AreaInformationSystems,
	AreaBusinessAdministration,
	AreaComputerScience,
	AreaQuantitativeMethods,
}

// ValidSubjectArea reports whether a is a known subject area.
func ValidSubjectArea(a SubjectArea) bool {
	switch a {
	case AreaInformationSystems, AreaBusinessAdministration, AreaComputerScience, AreaQuantitativeMethods, AreaNone:
		return true
	}
	return false
}
