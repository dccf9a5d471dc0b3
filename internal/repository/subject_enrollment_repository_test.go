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

func TestSubjectEnrollmentRepositoryFindLatest(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSubjectEnrollmentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "student_id", "subject_id", "semester", "school_year", "academic_year", "created_at"}).
		AddRow(7, 2023001, 42, 1, "2024-2025", "2", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM subject_enrollments")).
		WithArgs(int64(2023001), int64(1), "2024-2025").
		WillReturnRows(rows)

	record, err := repo.FindLatest(context.Background(), 2023001, 1, "2024-2025")
	require.NoError(t, err)
	assert.Equal(t, int64(42), record.SubjectID)
	assert.Equal(t, "2", record.AcademicYear)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubjectEnrollmentRepositoryFindLatestNoRows(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSubjectEnrollmentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM subject_enrollments")).
		WithArgs(int64(2023001), int64(2), "2024-2025").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindLatest(context.Background(), 2023001, 2, "2024-2025")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
