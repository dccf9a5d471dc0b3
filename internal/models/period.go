package models

// AcademicPeriod is the (semester, school year, curriculum year) tuple that
// scopes every eligibility query. Values are kept as strings to match the
// wire contract consumed by the portal frontend.
type AcademicPeriod struct {
	Semester       string `json:"semester"`
	CurriculumYear string `json:"curriculumYear"`
	SchoolYear     string `json:"schoolYear"`
}
