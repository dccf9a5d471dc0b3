package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/dccp-developers/dccphub-api/internal/models"
)

// FacultyRepository reads the canonical faculty table.
type FacultyRepository struct {
	db *sqlx.DB
}

// NewFacultyRepository constructs the repository.
func NewFacultyRepository(db *sqlx.DB) *FacultyRepository {
	return &FacultyRepository{db: db}
}

// FindByEmailAndCode matches a claimed faculty identity. The email compares
// case-insensitively and the claimed code may match either the faculty code
// or the faculty id number. sql.ErrNoRows is passed through.
func (r *FacultyRepository) FindByEmailAndCode(ctx context.Context, email, code string) (*models.Faculty, error) {
	const query = `SELECT id, faculty_code, faculty_id_number, first_name, last_name, middle_name, email, phone_number, department, status
        FROM faculty
        WHERE LOWER(email) = LOWER($1)
          AND (faculty_code = $2 OR faculty_id_number = $2)
        LIMIT 1`
	var faculty models.Faculty
	if err := r.db.GetContext(ctx, &faculty, query, email, code); err != nil {
		return nil, err
	}
	return &faculty, nil
}
