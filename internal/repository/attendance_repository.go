package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dccp-developers/dccphub-api/internal/models"
)

// AttendanceRepository aggregates attendance rows per (student, class).
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs the repository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Summary returns present and total session counts for a student in a class.
// A student with no recorded sessions yields zero counts, not an error.
func (r *AttendanceRepository) Summary(ctx context.Context, studentID, classID int64) (models.AttendanceSummary, error) {
	const query = `SELECT COUNT(*) AS total, COUNT(*) FILTER (WHERE status = 'present') AS present
        FROM attendances
        WHERE student_id = $1 AND class_id = $2`
	var summary models.AttendanceSummary
	if err := r.db.GetContext(ctx, &summary, query, studentID, classID); err != nil {
		return models.AttendanceSummary{}, fmt.Errorf("summarize attendance: %w", err)
	}
	return summary, nil
}

// ListClassIDs returns the classes a student has class enrollments in,
// newest first.
func (r *AttendanceRepository) ListClassIDs(ctx context.Context, studentID int64) ([]int64, error) {
	const query = `SELECT class_id FROM class_enrollments
        WHERE student_id = $1
        ORDER BY created_at DESC`
	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, studentID); err != nil {
		return nil, fmt.Errorf("list student classes: %w", err)
	}
	return ids, nil
}
