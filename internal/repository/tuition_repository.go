package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// TuitionRepository aggregates tuition ledger rows.
type TuitionRepository struct {
	db *sqlx.DB
}

// NewTuitionRepository constructs the repository.
func NewTuitionRepository(db *sqlx.DB) *TuitionRepository {
	return &TuitionRepository{db: db}
}

// OutstandingBalance sums total_balance across all non-deleted tuition rows
// for a student. No rows means a zero balance.
func (r *TuitionRepository) OutstandingBalance(ctx context.Context, studentID int64) (float64, error) {
	const query = `SELECT COALESCE(SUM(total_balance), 0)
        FROM student_tuition
        WHERE student_id = $1 AND deleted_at IS NULL`
	var balance float64
	if err := r.db.GetContext(ctx, &balance, query, studentID); err != nil {
		return 0, fmt.Errorf("sum outstanding balance: %w", err)
	}
	return balance, nil
}
