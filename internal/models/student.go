package models

import "time"

// Student is the canonical student record used for onboarding validation.
// Birth dates arrive as Postgres date values; contacts is free text that may
// itself contain a JSON object.
type Student struct {
	ID           int64      `db:"id" json:"id"`
	StudentID    int64      `db:"student_id" json:"student_id"`
	FirstName    string     `db:"first_name" json:"first_name"`
	LastName     string     `db:"last_name" json:"last_name"`
	MiddleName   *string    `db:"middle_name" json:"middle_name,omitempty"`
	Email        *string    `db:"email" json:"email,omitempty"`
	BirthDate    time.Time  `db:"birth_date" json:"birth_date"`
	Address      *string    `db:"address" json:"address,omitempty"`
	Contacts     *string    `db:"contacts" json:"contacts,omitempty"`
	CourseID     int64      `db:"course_id" json:"course_id"`
	Gender       string     `db:"gender" json:"gender"`
	Age          int64      `db:"age" json:"age"`
	AcademicYear *int64     `db:"academic_year" json:"academic_year,omitempty"`
	Status       *string    `db:"status" json:"status,omitempty"`
	DeletedAt    *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}

// StudentProfile is the projection returned to the onboarding flow once a
// claimed identity has been validated. Contacts carries the resolved phone
// number, not the raw column value.
type StudentProfile struct {
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	MiddleName   string    `json:"middleName,omitempty"`
	Email        string    `json:"email"`
	StudentID    int64     `json:"studentId"`
	BirthDate    time.Time `json:"birthDate"`
	Address      string    `json:"address,omitempty"`
	CourseID     int64     `json:"courseId"`
	Gender       string    `json:"gender"`
	Age          int64     `json:"age"`
	AcademicYear int64     `json:"academicYear,omitempty"`
	Status       string    `json:"status,omitempty"`
	Contacts     string    `json:"contacts"`
}
