package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/dccp-developers/dccphub-api/internal/models"
	appErrors "github.com/dccp-developers/dccphub-api/pkg/errors"
)

type studentFinder interface {
	FindByStudentID(ctx context.Context, studentID int64) (*models.Student, error)
}

type facultyFinder interface {
	FindByEmailAndCode(ctx context.Context, email, code string) (*models.Faculty, error)
}

// ValidationFailure discriminates the ways an identity claim can fail.
type ValidationFailure string

const (
	FailureInvalidID     ValidationFailure = "invalid_id"
	FailureNotFound      ValidationFailure = "not_found"
	FailureEmailMismatch ValidationFailure = "email_mismatch"
	FailureInactive      ValidationFailure = "inactive"
)

// StudentValidationRequest is the onboarding claim for a student identity.
type StudentValidationRequest struct {
	Email     string `json:"email" validate:"required"`
	StudentID string `json:"studentId" validate:"required"`
}

// FacultyValidationRequest is the onboarding claim for a faculty identity.
type FacultyValidationRequest struct {
	Email       string `json:"email" validate:"required"`
	FacultyCode string `json:"facultyCode" validate:"required"`
}

// StudentValidationResult reports the outcome of a student identity claim.
// Exactly one of Student or Failure is populated.
type StudentValidationResult struct {
	Valid   bool
	Failure ValidationFailure
	Message string
	Student *models.StudentProfile
}

// FacultyValidationResult reports the outcome of a faculty identity claim.
type FacultyValidationResult struct {
	Valid   bool
	Failure ValidationFailure
	Message string
	Faculty *models.FacultyProfile
}

// ValidationService matches claimed identities against canonical records for
// the onboarding flow. It is read-only: no state changes here, the identity
// provider applies role metadata after a claim validates.
type ValidationService struct {
	students  studentFinder
	faculty   facultyFinder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewValidationService constructs the service.
func NewValidationService(students studentFinder, faculty facultyFinder, validate *validator.Validate, logger *zap.Logger) *ValidationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ValidationService{students: students, faculty: faculty, validator: validate, logger: logger}
}

// ValidateStudent checks a claimed (email, student id) pair against the
// canonical students table. A non-numeric id or a mismatch is a valid
// negative result, not an error; errors are reserved for malformed requests
// and failed round-trips.
func (s *ValidationService) ValidateStudent(ctx context.Context, req StudentValidationRequest) (*StudentValidationResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Email and Student ID are required")
	}

	studentID, err := strconv.ParseInt(strings.TrimSpace(req.StudentID), 10, 64)
	if err != nil {
		return &StudentValidationResult{
			Failure: FailureInvalidID,
			Message: "Invalid Student ID format. Please enter a valid numeric Student ID.",
		}, nil
	}

	student, err := s.students.FindByStudentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &StudentValidationResult{
				Failure: FailureNotFound,
				Message: "Student ID not found in our system. Please verify your Student ID or contact the School MIS Administration for assistance.",
			}, nil
		}
		s.logger.Error("student lookup failed", zap.Int64("student_id", studentID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "failed to look up student record")
	}

	canonicalEmail := ""
	if student.Email != nil {
		canonicalEmail = *student.Email
	}
	if !strings.EqualFold(strings.TrimSpace(canonicalEmail), strings.TrimSpace(req.Email)) {
		return &StudentValidationResult{
			Failure: FailureEmailMismatch,
			Message: fmt.Sprintf("Email does not match our records for this Student ID. Expected: %s. Please verify your email address or contact the School MIS Administration.", canonicalEmail),
		}, nil
	}

	return &StudentValidationResult{Valid: true, Student: studentProfile(student)}, nil
}

// ValidateFaculty checks a claimed (email, faculty code) pair. The code may
// match either the faculty code or the faculty id number; an inactive or
// on-leave account is a distinct failure from an unknown one.
func (s *ValidationService) ValidateFaculty(ctx context.Context, req FacultyValidationRequest) (*FacultyValidationResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Email and Faculty Code are required")
	}

	faculty, err := s.faculty.FindByEmailAndCode(ctx, strings.TrimSpace(req.Email), strings.TrimSpace(req.FacultyCode))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &FacultyValidationResult{
				Failure: FailureNotFound,
				Message: "Faculty not found. Please check your credentials.",
			}, nil
		}
		s.logger.Error("faculty lookup failed", zap.String("faculty_code", req.FacultyCode), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "failed to look up faculty record")
	}

	if faculty.Status != models.FacultyStatusActive {
		return &FacultyValidationResult{
			Failure: FailureInactive,
			Message: "This faculty account is not active. Please contact administration.",
		}, nil
	}

	return &FacultyValidationResult{Valid: true, Faculty: facultyProfile(faculty)}, nil
}

// resolvePhone extracts a phone-like value from the contacts column. The
// column may hold a JSON object keyed phone/mobile/contact, some other JSON
// value, or a bare phone string.
func resolvePhone(raw string) string {
	if raw == "" {
		return ""
	}
	var contacts map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &contacts); err == nil {
		for _, key := range []string{"phone", "mobile", "contact"} {
			if v, ok := contacts[key].(string); ok && v != "" {
				return v
			}
		}
		return ""
	}
	if json.Valid([]byte(raw)) {
		// Parseable JSON that is not an object holds no phone.
		return ""
	}
	return raw
}

func studentProfile(student *models.Student) *models.StudentProfile {
	profile := &models.StudentProfile{
		FirstName: student.FirstName,
		LastName:  student.LastName,
		StudentID: student.StudentID,
		BirthDate: student.BirthDate,
		CourseID:  student.CourseID,
		Gender:    student.Gender,
		Age:       student.Age,
	}
	if student.MiddleName != nil {
		profile.MiddleName = *student.MiddleName
	}
	if student.Email != nil {
		profile.Email = *student.Email
	}
	if student.Address != nil {
		profile.Address = *student.Address
	}
	if student.AcademicYear != nil {
		profile.AcademicYear = *student.AcademicYear
	}
	if student.Status != nil {
		profile.Status = *student.Status
	}
	if student.Contacts != nil {
		profile.Contacts = resolvePhone(*student.Contacts)
	}
	return profile
}

func facultyProfile(faculty *models.Faculty) *models.FacultyProfile {
	profile := &models.FacultyProfile{
		FacultyID: faculty.ID,
		FirstName: faculty.FirstName,
		LastName:  faculty.LastName,
		Email:     faculty.Email,
		Status:    string(faculty.Status),
	}
	switch {
	case faculty.FacultyCode != nil && *faculty.FacultyCode != "":
		profile.FacultyCode = *faculty.FacultyCode
	case faculty.FacultyIDNumber != nil:
		profile.FacultyCode = *faculty.FacultyIDNumber
	}
	if faculty.MiddleName != nil {
		profile.MiddleName = *faculty.MiddleName
	}
	if faculty.PhoneNumber != nil {
		profile.PhoneNumber = *faculty.PhoneNumber
	}
	if faculty.Department != nil {
		profile.Department = *faculty.Department
	}
	return profile
}
