package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dccp-developers/dccphub-api/internal/dto"
	"github.com/dccp-developers/dccphub-api/internal/models"
	appErrors "github.com/dccp-developers/dccphub-api/pkg/errors"
)

type periodResolver interface {
	Current() (models.AcademicPeriod, error)
}

type enrollmentResolver interface {
	Resolve(ctx context.Context, q EnrollmentQuery) (*models.EnrollmentStatus, error)
}

type attendanceReader interface {
	Summary(ctx context.Context, studentID, classID int64) (models.AttendanceSummary, error)
	ListClassIDs(ctx context.Context, studentID int64) ([]int64, error)
}

type balanceReader interface {
	OutstandingBalance(ctx context.Context, studentID int64) (float64, error)
}

type gradeReader interface {
	ClassAverages(ctx context.Context, classID int64) (*models.ClassGradeAverages, error)
}

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	CacheTTL time.Duration
}

// DashboardService composes the enrollment-gated summaries the portal
// renders. Enrollment status decides everything downstream: derived metrics
// are only computed for an enrolled student.
type DashboardService struct {
	periods    periodResolver
	enrollment enrollmentResolver
	attendance attendanceReader
	tuition    balanceReader
	grades     gradeReader
	cache      *CacheService
	logger     *zap.Logger
	cfg        DashboardServiceConfig
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Periods    periodResolver
	Enrollment enrollmentResolver
	Attendance attendanceReader
	Tuition    balanceReader
	Grades     gradeReader
	Cache      *CacheService
	Logger     *zap.Logger
	Config     DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	cfg := params.Config
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		periods:    params.Periods,
		enrollment: params.Enrollment,
		attendance: params.Attendance,
		tuition:    params.Tuition,
		grades:     params.Grades,
		cache:      params.Cache,
		logger:     logger,
		cfg:        cfg,
	}
}

// StudentSummary returns the dashboard payload for one student and reports
// cache utilisation.
func (s *DashboardService) StudentSummary(ctx context.Context, studentID string) (*dto.StudentDashboardResponse, bool, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "studentId is required")
	}

	cacheKey := fmt.Sprintf("dashboard:student:%s", studentID)
	var cached dto.StudentDashboardResponse
	if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
		return &cached, true, nil
	}

	period, err := s.periods.Current()
	if err != nil {
		return nil, false, err
	}

	status, err := s.enrollment.Resolve(ctx, EnrollmentQuery{
		StudentID:  studentID,
		Semester:   period.Semester,
		SchoolYear: period.SchoolYear,
	})
	if err != nil {
		return nil, false, err
	}

	resp := &dto.StudentDashboardResponse{
		Period:     period,
		Enrollment: *status,
		Display:    models.DisplayFor(*status),
	}

	if status.IsEnrolled {
		s.attachMetrics(ctx, studentID, resp)
	}

	_ = s.cache.Set(ctx, cacheKey, resp, s.cfg.CacheTTL)
	return resp, false, nil
}

// attachMetrics fills attendance and balance for an enrolled student. The
// metric tables key students numerically; a non-numeric portal id simply
// has no rows there, which is not a failure.
func (s *DashboardService) attachMetrics(ctx context.Context, studentID string, resp *dto.StudentDashboardResponse) {
	numericID, err := strconv.ParseInt(strings.TrimSpace(studentID), 10, 64)
	if err != nil {
		s.logger.Warn("skipping metrics for non-numeric student id", zap.String("student_id", studentID))
		return
	}

	classIDs, err := s.attendance.ListClassIDs(ctx, numericID)
	if err != nil {
		s.logger.Warn("listing student classes failed", zap.Int64("student_id", numericID), zap.Error(err))
	}
	for _, classID := range classIDs {
		summary, err := s.attendance.Summary(ctx, numericID, classID)
		if err != nil {
			s.logger.Warn("attendance summary failed", zap.Int64("student_id", numericID), zap.Int64("class_id", classID), zap.Error(err))
			continue
		}
		resp.Attendance = append(resp.Attendance, dto.ClassAttendance{
			ClassID:    classID,
			Present:    summary.Present,
			Total:      summary.Total,
			Percentage: summary.Percentage(),
		})
	}

	balance, err := s.tuition.OutstandingBalance(ctx, numericID)
	if err != nil {
		s.logger.Warn("outstanding balance failed", zap.Int64("student_id", numericID), zap.Error(err))
		return
	}
	resp.OutstandingBalance = &balance
}

// ClassGradeAverages returns the per-column grade averages for a class.
func (s *DashboardService) ClassGradeAverages(ctx context.Context, classID int64) (*models.ClassGradeAverages, error) {
	averages, err := s.grades.ClassAverages(ctx, classID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "failed to compute class grade averages")
	}
	return averages, nil
}
