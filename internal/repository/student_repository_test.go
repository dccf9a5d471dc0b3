package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentRepositoryFindByStudentID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "student_id", "first_name", "last_name", "middle_name", "email", "birth_date", "address", "contacts", "course_id", "gender", "age", "academic_year", "status", "deleted_at"}).
		AddRow(1, 2023001, "Juan", "Dela Cruz", nil, "juan@example.com", time.Date(2004, 5, 1, 0, 0, 0, 0, time.UTC), nil, `{"phone":"0917"}`, 3, "male", 21, 2, "active", nil)
	mock.ExpectQuery(regexp.QuoteMeta("FROM students")).
		WithArgs(int64(2023001)).
		WillReturnRows(rows)

	student, err := repo.FindByStudentID(context.Background(), 2023001)
	require.NoError(t, err)
	assert.Equal(t, int64(2023001), student.StudentID)
	require.NotNil(t, student.Email)
	assert.Equal(t, "juan@example.com", *student.Email)
	require.NotNil(t, student.Contacts)
	assert.Equal(t, `{"phone":"0917"}`, *student.Contacts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryFindByStudentIDNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM students")).
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByStudentID(context.Background(), 999)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
