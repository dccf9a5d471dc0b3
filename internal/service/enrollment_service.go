package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/dccp-developers/dccphub-api/internal/models"
	appErrors "github.com/dccp-developers/dccphub-api/pkg/errors"
)

type enrollmentFinder interface {
	FindVerified(ctx context.Context, studentID string, semester int64, schoolYear string) (*models.EnrollmentRecord, error)
}

type subjectEnrollmentFinder interface {
	FindLatest(ctx context.Context, studentID, semester int64, schoolYear string) (*models.SubjectEnrollment, error)
}

// EnrollmentQuery scopes a single eligibility lookup. The student id stays a
// string end to end; the primary table keys on text while the fallback table
// keys on an integer, and each source handles its own representation.
type EnrollmentQuery struct {
	StudentID  string `json:"studentId" validate:"required"`
	Semester   string `json:"semester" validate:"required"`
	SchoolYear string `json:"schoolYear" validate:"required"`
}

// enrollmentSource is one named resolution strategy. Resolve returns
// (nil, nil) when the source holds no matching row; an error means the
// round-trip itself failed.
type enrollmentSource interface {
	Name() string
	Resolve(ctx context.Context, q EnrollmentQuery, semester int64) (*models.EnrollmentStatus, error)
}

// primarySource resolves against student_enrollment: rows must carry a
// recognized verified status and not be soft-deleted.
type primarySource struct {
	repo enrollmentFinder
}

func (s primarySource) Name() string { return models.EnrollmentSourcePrimary }

func (s primarySource) Resolve(ctx context.Context, q EnrollmentQuery, semester int64) (*models.EnrollmentStatus, error) {
	record, err := s.repo.FindVerified(ctx, q.StudentID, semester, q.SchoolYear)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &models.EnrollmentStatus{
		IsEnrolled:   true,
		Status:       record.Status,
		Semester:     int(record.Semester),
		AcademicYear: int(record.AcademicYear),
		SchoolYear:   record.SchoolYear,
		CourseID:     record.CourseID,
		Source:       s.Name(),
	}, nil
}

// subjectsSource resolves against subject_enrollments, where existence of a
// row implies enrollment. The table keys the student as an integer, so a
// non-numeric claimed id can never match here.
type subjectsSource struct {
	repo subjectEnrollmentFinder
}

func (s subjectsSource) Name() string { return models.EnrollmentSourceSubjects }

func (s subjectsSource) Resolve(ctx context.Context, q EnrollmentQuery, semester int64) (*models.EnrollmentStatus, error) {
	studentID, err := strconv.ParseInt(strings.TrimSpace(q.StudentID), 10, 64)
	if err != nil {
		return nil, nil
	}
	record, err := s.repo.FindLatest(ctx, studentID, semester, q.SchoolYear)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	// No status column on this table; academic_year is stored as text and
	// unparsable values resolve to 0.
	academicYear, _ := strconv.Atoi(strings.TrimSpace(record.AcademicYear))
	return &models.EnrollmentStatus{
		IsEnrolled:   true,
		Status:       "enrolled",
		Semester:     int(record.Semester),
		AcademicYear: academicYear,
		SchoolYear:   record.SchoolYear,
		Source:       s.Name(),
	}, nil
}

// EnrollmentService reconciles the two enrollment record sources into one
// status per query. Sources are tried strictly in order and the first
// non-empty answer wins, keeping the primary table authoritative.
type EnrollmentService struct {
	sources   []enrollmentSource
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// EnrollmentServiceParams groups constructor dependencies.
type EnrollmentServiceParams struct {
	Enrollments        enrollmentFinder
	SubjectEnrollments subjectEnrollmentFinder
	Cache              *CacheService
	Metrics            *MetricsService
	Validator          *validator.Validate
	Logger             *zap.Logger
	CacheTTL           time.Duration
}

// NewEnrollmentService constructs the service.
func NewEnrollmentService(params EnrollmentServiceParams) *EnrollmentService {
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sources := make([]enrollmentSource, 0, 2)
	if params.Enrollments != nil {
		sources = append(sources, primarySource{repo: params.Enrollments})
	}
	if params.SubjectEnrollments != nil {
		sources = append(sources, subjectsSource{repo: params.SubjectEnrollments})
	}
	return &EnrollmentService{
		sources:   sources,
		cache:     params.Cache,
		metrics:   params.Metrics,
		validator: validate,
		logger:    logger,
		cacheTTL:  params.CacheTTL,
	}
}

// Resolve produces the single reconciled enrollment status for the query.
// A source whose round-trip fails is logged and skipped so the fallback
// still runs; only when every source fails does the operation surface a
// transient error. An outage must never read as "not enrolled".
func (s *EnrollmentService) Resolve(ctx context.Context, q EnrollmentQuery) (*models.EnrollmentStatus, error) {
	if err := s.validator.Struct(q); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "studentId, semester and schoolYear are required")
	}
	semester, err := strconv.ParseInt(strings.TrimSpace(q.Semester), 10, 64)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "semester must be numeric")
	}

	cacheKey := fmt.Sprintf("enrollment:%s:%d:%s", q.StudentID, semester, q.SchoolYear)
	var cached models.EnrollmentStatus
	if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
		return &cached, nil
	}

	failed := 0
	for _, source := range s.sources {
		start := time.Now()
		status, err := source.Resolve(ctx, q, semester)
		if s.metrics != nil {
			s.metrics.ObserveDBQuery(source.Name(), time.Since(start))
		}
		if err != nil {
			failed++
			s.logger.Error("enrollment source unreachable",
				zap.String("source", source.Name()),
				zap.String("student_id", q.StudentID),
				zap.String("school_year", q.SchoolYear),
				zap.Error(err))
			continue
		}
		if status != nil {
			s.logger.Info("enrollment resolved",
				zap.String("source", status.Source),
				zap.String("student_id", q.StudentID),
				zap.String("status", status.Status))
			_ = s.cache.Set(ctx, cacheKey, status, s.cacheTTL)
			return status, nil
		}
	}

	if failed > 0 && failed == len(s.sources) {
		return nil, appErrors.Clone(appErrors.ErrUnavailable, "enrollment records are temporarily unavailable")
	}

	notEnrolled := &models.EnrollmentStatus{IsEnrolled: false}
	// Don't cache a negative answer computed while a source was down.
	if failed == 0 {
		_ = s.cache.Set(ctx, cacheKey, notEnrolled, s.cacheTTL)
	}
	return notEnrolled, nil
}

// Display collapses a resolved status into the closed display state.
func (s *EnrollmentService) Display(status models.EnrollmentStatus) models.EnrollmentDisplay {
	return models.DisplayFor(status)
}
