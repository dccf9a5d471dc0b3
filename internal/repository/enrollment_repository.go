package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/dccp-developers/dccphub-api/internal/models"
)

// EnrollmentRepository reads the primary enrollment table (student_enrollment).
// This source is authoritative: rows carry a workflow status and are
// soft-deleted via deleted_at, which every query here must exclude.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// FindVerified returns the newest non-deleted enrollment row in a recognized
// verified status for the given (student, semester, school year) triple.
// sql.ErrNoRows is passed through so callers can tell "no match" from a
// failed round-trip.
func (r *EnrollmentRepository) FindVerified(ctx context.Context, studentID string, semester int64, schoolYear string) (*models.EnrollmentRecord, error) {
	const query = `SELECT id, student_id, course_id, status, semester, academic_year, school_year, created_at, deleted_at
        FROM student_enrollment
        WHERE student_id = $1 AND semester = $2 AND school_year = $3
          AND status = ANY($4)
          AND deleted_at IS NULL
        ORDER BY created_at DESC
        LIMIT 1`
	var record models.EnrollmentRecord
	if err := r.db.GetContext(ctx, &record, query, studentID, semester, schoolYear, pq.Array(models.VerifiedEnrollmentStatuses)); err != nil {
		return nil, err
	}
	return &record, nil
}

// History returns all enrollment rows for a student, newest period first.
func (r *EnrollmentRepository) History(ctx context.Context, studentID string) ([]models.EnrollmentRecord, error) {
	const query = `SELECT id, student_id, course_id, status, semester, academic_year, school_year, created_at, deleted_at
        FROM student_enrollment
        WHERE student_id = $1 AND deleted_at IS NULL
        ORDER BY academic_year DESC, semester DESC`
	var records []models.EnrollmentRecord
	if err := r.db.SelectContext(ctx, &records, query, studentID); err != nil {
		return nil, err
	}
	return records, nil
}
