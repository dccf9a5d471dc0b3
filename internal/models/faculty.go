package models

// FacultyStatus enumerates the faculty account lifecycle.
type FacultyStatus string

const (
	FacultyStatusActive   FacultyStatus = "active"
	FacultyStatusInactive FacultyStatus = "inactive"
	FacultyStatusOnLeave  FacultyStatus = "on_leave"
)

// Faculty is the canonical faculty record. Either FacultyCode or
// FacultyIDNumber may match the code a claimant presents during onboarding.
type Faculty struct {
	ID              string        `db:"id" json:"id"`
	FacultyCode     *string       `db:"faculty_code" json:"faculty_code,omitempty"`
	FacultyIDNumber *string       `db:"faculty_id_number" json:"faculty_id_number,omitempty"`
	FirstName       string        `db:"first_name" json:"first_name"`
	LastName        string        `db:"last_name" json:"last_name"`
	MiddleName      *string       `db:"middle_name" json:"middle_name,omitempty"`
	Email           string        `db:"email" json:"email"`
	PhoneNumber     *string       `db:"phone_number" json:"phone_number,omitempty"`
	Department      *string       `db:"department" json:"department,omitempty"`
	Status          FacultyStatus `db:"status" json:"status"`
}

// FacultyProfile is the projection returned to the onboarding flow.
type FacultyProfile struct {
	FacultyID   string `json:"facultyId"`
	FacultyCode string `json:"facultyCode"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	MiddleName  string `json:"middleName,omitempty"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Department  string `json:"department,omitempty"`
	Status      string `json:"status"`
}
