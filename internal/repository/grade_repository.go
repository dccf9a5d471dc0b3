package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dccp-developers/dccphub-api/internal/models"
)

// GradeRepository aggregates grade columns on class enrollments.
type GradeRepository struct {
	db *sqlx.DB
}

// NewGradeRepository constructs the repository.
func NewGradeRepository(db *sqlx.DB) *GradeRepository {
	return &GradeRepository{db: db}
}

// ClassAverages averages each grading-period column independently across a
// class roster. AVG ignores NULLs, so a student missing one grade still
// contributes their other columns.
func (r *GradeRepository) ClassAverages(ctx context.Context, classID int64) (*models.ClassGradeAverages, error) {
	const query = `SELECT AVG(prelim_grade) AS avg_prelim,
               AVG(midterm_grade) AS avg_midterm,
               AVG(finals_grade) AS avg_finals,
               AVG(total_average) AS avg_total
        FROM class_enrollments
        WHERE class_id = $1`
	var averages models.ClassGradeAverages
	if err := r.db.GetContext(ctx, &averages, query, classID); err != nil {
		return nil, fmt.Errorf("average class grades: %w", err)
	}
	averages.ClassID = classID
	return &averages, nil
}
