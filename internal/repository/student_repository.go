package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/dccp-developers/dccphub-api/internal/models"
)

// StudentRepository reads the canonical students table.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs the repository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindByStudentID returns the non-deleted student carrying the given numeric
// student id. sql.ErrNoRows is passed through.
func (r *StudentRepository) FindByStudentID(ctx context.Context, studentID int64) (*models.Student, error) {
	const query = `SELECT id, student_id, first_name, last_name, middle_name, email, birth_date, address, contacts,
        course_id, gender, age, academic_year, status, deleted_at
        FROM students
        WHERE student_id = $1 AND deleted_at IS NULL
        LIMIT 1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, studentID); err != nil {
		return nil, err
	}
	return &student, nil
}
