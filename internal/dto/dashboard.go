package dto

import "github.com/dccp-developers/dccphub-api/internal/models"

// ClassAttendance is one class's attendance standing for a student.
type ClassAttendance struct {
	ClassID    int64   `json:"classId"`
	Present    int64   `json:"present"`
	Total      int64   `json:"total"`
	Percentage float64 `json:"percentage"`
}

// StudentDashboardResponse is the enrollment-gated summary the portal
// renders for a student. Attendance and balance are populated only when the
// student is enrolled for the current period; a not-enrolled student gets
// the bare display state and no metric queries are issued.
type StudentDashboardResponse struct {
	Period             models.AcademicPeriod    `json:"period"`
	Enrollment         models.EnrollmentStatus  `json:"enrollment"`
	Display            models.EnrollmentDisplay `json:"display"`
	Attendance         []ClassAttendance        `json:"attendance,omitempty"`
	OutstandingBalance *float64                 `json:"outstandingBalance,omitempty"`
}
