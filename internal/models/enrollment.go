package models

import (
	"strings"
	"time"
)

// Enrollment statuses that count as a verified registration in the primary
// enrollment table. Any other status string means the record is still in the
// enrollment workflow and must not unlock enrolled-only features.
var VerifiedEnrollmentStatuses = []string{
	"Verified By Cashier",
	"Verified By Head Dept",
}

// EnrollmentRecord is a row from the primary enrollment table (student_enrollment).
// The student key is a string and rows are soft-deleted via deleted_at.
type EnrollmentRecord struct {
	ID           int64      `db:"id" json:"id"`
	StudentID    string     `db:"student_id" json:"student_id"`
	CourseID     string     `db:"course_id" json:"course_id"`
	Status       string     `db:"status" json:"status"`
	Semester     int64      `db:"semester" json:"semester"`
	AcademicYear int64      `db:"academic_year" json:"academic_year"`
	SchoolYear   string     `db:"school_year" json:"school_year"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	DeletedAt    *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}

// SubjectEnrollment is a row from the per-subject enrollment table
// (subject_enrollments). Unlike the primary table the student key is an
// integer, there is no status column (existence implies enrollment) and no
// soft-delete column. The academic year is stored as text.
type SubjectEnrollment struct {
	ID           int64     `db:"id" json:"id"`
	StudentID    int64     `db:"student_id" json:"student_id"`
	SubjectID    int64     `db:"subject_id" json:"subject_id"`
	Semester     int64     `db:"semester" json:"semester"`
	SchoolYear   string    `db:"school_year" json:"school_year"`
	AcademicYear string    `db:"academic_year" json:"academic_year"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Source names carried in a reconciled EnrollmentStatus.
const (
	EnrollmentSourcePrimary  = "student_enrollment"
	EnrollmentSourceSubjects = "subject_enrollments"
)

// EnrollmentStatus is the single reconciled answer for a
// (studentId, semester, schoolYear) query. It is a discriminated union:
// either IsEnrolled is true and the remaining fields are populated, or it is
// false and they are zero. Source names the strategy that produced the
// answer; it stays off the wire.
type EnrollmentStatus struct {
	IsEnrolled   bool   `json:"isEnrolled"`
	Status       string `json:"status,omitempty"`
	Semester     int    `json:"semester,omitempty"`
	AcademicYear int    `json:"academicYear,omitempty"`
	SchoolYear   string `json:"schoolYear,omitempty"`
	CourseID     string `json:"courseId,omitempty"`
	Source       string `json:"-"`
}

// EnrollmentState is the closed display state derived from a resolved status.
type EnrollmentState string

const (
	StateEnrolled    EnrollmentState = "enrolled"
	StateNotEnrolled EnrollmentState = "not_enrolled"
)

// Display tones consumed by the portal for badge styling.
const (
	TonePositive = "positive"
	ToneWarning  = "warning"
	ToneCritical = "critical"
	ToneNeutral  = "neutral"
)

// EnrollmentDisplay is the client-facing projection of an EnrollmentStatus.
type EnrollmentDisplay struct {
	State     EnrollmentState `json:"state"`
	SubStatus string          `json:"subStatus,omitempty"`
	Tone      string          `json:"tone"`
}

var subStatusTones = map[string]string{
	"verified by cashier":   TonePositive,
	"verified by head dept": TonePositive,
	"active":                TonePositive,
	"enrolled":              TonePositive,
	"pending":               ToneWarning,
	"dropped":               ToneCritical,
}

// DisplayFor collapses a resolved enrollment status into the display state
// consumed uniformly by the dashboard. Unrecognized sub-status values fall
// back to the neutral tone instead of erroring.
func DisplayFor(status EnrollmentStatus) EnrollmentDisplay {
	if !status.IsEnrolled {
		return EnrollmentDisplay{State: StateNotEnrolled, Tone: ToneNeutral}
	}
	tone, ok := subStatusTones[normalizeSubStatus(status.Status)]
	if !ok {
		tone = ToneNeutral
	}
	return EnrollmentDisplay{State: StateEnrolled, SubStatus: status.Status, Tone: tone}
}

func normalizeSubStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
