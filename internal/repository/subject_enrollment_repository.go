package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/dccp-developers/dccphub-api/internal/models"
)

// SubjectEnrollmentRepository reads the per-subject enrollment table
// (subject_enrollments), the fallback source for eligibility. The student
// key here is an integer and there is no status or soft-delete column:
// the presence of a row is the enrollment assertion.
type SubjectEnrollmentRepository struct {
	db *sqlx.DB
}

// NewSubjectEnrollmentRepository constructs the repository.
func NewSubjectEnrollmentRepository(db *sqlx.DB) *SubjectEnrollmentRepository {
	return &SubjectEnrollmentRepository{db: db}
}

// FindLatest returns the newest subject enrollment row for the given
// (student, semester, school year) triple. sql.ErrNoRows is passed through.
func (r *SubjectEnrollmentRepository) FindLatest(ctx context.Context, studentID, semester int64, schoolYear string) (*models.SubjectEnrollment, error) {
	const query = `SELECT id, student_id, subject_id, semester, school_year, academic_year, created_at
        FROM subject_enrollments
        WHERE student_id = $1 AND semester = $2 AND school_year = $3
        ORDER BY created_at DESC
        LIMIT 1`
	var record models.SubjectEnrollment
	if err := r.db.GetContext(ctx, &record, query, studentID, semester, schoolYear); err != nil {
		return nil, err
	}
	return &record, nil
}
