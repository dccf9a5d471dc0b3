package models

import "time"

// AttendanceSummary holds the raw counts an attendance percentage is derived
// from, scoped to one (student, class) pair.
type AttendanceSummary struct {
	Present int64 `db:"present" json:"present"`
	Total   int64 `db:"total" json:"total"`
}

// Percentage returns present/total as a percentage. A student with no
// recorded sessions scores 0, not NaN.
func (a AttendanceSummary) Percentage() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Present) / float64(a.Total) * 100
}

// ClassGradeAverages carries the per-column grade averages for one class.
// Columns average independently: a student missing a finals grade still
// contributes prelim and midterm values.
type ClassGradeAverages struct {
	ClassID    int64    `json:"classId"`
	AvgPrelim  *float64 `db:"avg_prelim" json:"avgPrelim"`
	AvgMidterm *float64 `db:"avg_midterm" json:"avgMidterm"`
	AvgFinals  *float64 `db:"avg_finals" json:"avgFinals"`
	AvgTotal   *float64 `db:"avg_total" json:"avgTotal"`
}

// SystemMetrics is an aggregated snapshot of process health counters.
type SystemMetrics struct {
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	DBQueryCount             uint64    `json:"db_query_count"`
	AverageDBQueryDurationMs float64   `json:"average_db_query_duration_ms"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
