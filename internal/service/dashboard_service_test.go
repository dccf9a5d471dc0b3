package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dccp-developers/dccphub-api/internal/models"
	appErrors "github.com/dccp-developers/dccphub-api/pkg/errors"
)

type fakePeriods struct {
	period models.AcademicPeriod
	err    error
}

func (f *fakePeriods) Current() (models.AcademicPeriod, error) {
	return f.period, f.err
}

type fakeEnrollment struct {
	status *models.EnrollmentStatus
	err    error
	lastQ  EnrollmentQuery
}

func (f *fakeEnrollment) Resolve(_ context.Context, q EnrollmentQuery) (*models.EnrollmentStatus, error) {
	f.lastQ = q
	return f.status, f.err
}

type fakeAttendance struct {
	classIDs  []int64
	summaries map[int64]models.AttendanceSummary
	calls     int
}

func (f *fakeAttendance) Summary(_ context.Context, _, classID int64) (models.AttendanceSummary, error) {
	f.calls++
	return f.summaries[classID], nil
}

func (f *fakeAttendance) ListClassIDs(context.Context, int64) ([]int64, error) {
	f.calls++
	return f.classIDs, nil
}

type fakeTuition struct {
	balance float64
	err     error
	calls   int
}

func (f *fakeTuition) OutstandingBalance(context.Context, int64) (float64, error) {
	f.calls++
	return f.balance, f.err
}

type fakeGrades struct {
	averages *models.ClassGradeAverages
	err      error
}

func (f *fakeGrades) ClassAverages(_ context.Context, classID int64) (*models.ClassGradeAverages, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.averages, nil
}

func currentPeriod() models.AcademicPeriod {
	return models.AcademicPeriod{Semester: "1", SchoolYear: "2024-2025", CurriculumYear: "2023-2024"}
}

func enrolledStatus() *models.EnrollmentStatus {
	return &models.EnrollmentStatus{IsEnrolled: true, Status: "Verified By Cashier", Semester: 1, SchoolYear: "2024-2025"}
}

func TestStudentSummaryEnrolled(t *testing.T) {
	attendance := &fakeAttendance{
		classIDs: []int64{5, 9},
		summaries: map[int64]models.AttendanceSummary{
			5: {Present: 8, Total: 10},
			9: {},
		},
	}
	tuition := &fakeTuition{balance: 1500.50}
	enrollment := &fakeEnrollment{status: enrolledStatus()}
	svc := NewDashboardService(DashboardServiceParams{
		Periods:    &fakePeriods{period: currentPeriod()},
		Enrollment: enrollment,
		Attendance: attendance,
		Tuition:    tuition,
		Grades:     &fakeGrades{},
	})

	resp, cacheHit, err := svc.StudentSummary(context.Background(), "2023001")
	require.NoError(t, err)
	assert.False(t, cacheHit)
	assert.Equal(t, currentPeriod(), resp.Period)
	assert.Equal(t, "2023001", enrollment.lastQ.StudentID)
	assert.Equal(t, "1", enrollment.lastQ.Semester)
	assert.Equal(t, models.StateEnrolled, resp.Display.State)

	require.Len(t, resp.Attendance, 2)
	assert.Equal(t, int64(5), resp.Attendance[0].ClassID)
	assert.Equal(t, float64(80), resp.Attendance[0].Percentage)
	// No recorded sessions scores 0, not NaN.
	assert.Zero(t, resp.Attendance[1].Percentage)

	require.NotNil(t, resp.OutstandingBalance)
	assert.Equal(t, 1500.50, *resp.OutstandingBalance)
}

func TestStudentSummaryNotEnrolledSkipsMetrics(t *testing.T) {
	attendance := &fakeAttendance{classIDs: []int64{5}}
	tuition := &fakeTuition{balance: 100}
	svc := NewDashboardService(DashboardServiceParams{
		Periods:    &fakePeriods{period: currentPeriod()},
		Enrollment: &fakeEnrollment{status: &models.EnrollmentStatus{IsEnrolled: false}},
		Attendance: attendance,
		Tuition:    tuition,
		Grades:     &fakeGrades{},
	})

	resp, _, err := svc.StudentSummary(context.Background(), "2023001")
	require.NoError(t, err)
	assert.Equal(t, models.StateNotEnrolled, resp.Display.State)
	assert.Empty(t, resp.Attendance)
	assert.Nil(t, resp.OutstandingBalance)
	assert.Zero(t, attendance.calls)
	assert.Zero(t, tuition.calls)
}

func TestStudentSummaryNonNumericIDSkipsMetrics(t *testing.T) {
	attendance := &fakeAttendance{classIDs: []int64{5}}
	svc := NewDashboardService(DashboardServiceParams{
		Periods:    &fakePeriods{period: currentPeriod()},
		Enrollment: &fakeEnrollment{status: enrolledStatus()},
		Attendance: attendance,
		Tuition:    &fakeTuition{},
		Grades:     &fakeGrades{},
	})

	resp, _, err := svc.StudentSummary(context.Background(), "user_abc")
	require.NoError(t, err)
	assert.Equal(t, models.StateEnrolled, resp.Display.State)
	assert.Empty(t, resp.Attendance)
	assert.Zero(t, attendance.calls)
}

func TestStudentSummaryPeriodMisconfigured(t *testing.T) {
	svc := NewDashboardService(DashboardServiceParams{
		Periods:    &fakePeriods{err: appErrors.ErrConfiguration},
		Enrollment: &fakeEnrollment{status: enrolledStatus()},
		Attendance: &fakeAttendance{},
		Tuition:    &fakeTuition{},
		Grades:     &fakeGrades{},
	})

	_, _, err := svc.StudentSummary(context.Background(), "2023001")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConfiguration.Code, appErrors.FromError(err).Code)
}

func TestStudentSummaryEnrollmentOutagePropagates(t *testing.T) {
	svc := NewDashboardService(DashboardServiceParams{
		Periods:    &fakePeriods{period: currentPeriod()},
		Enrollment: &fakeEnrollment{err: appErrors.ErrUnavailable},
		Attendance: &fakeAttendance{},
		Tuition:    &fakeTuition{},
		Grades:     &fakeGrades{},
	})

	_, _, err := svc.StudentSummary(context.Background(), "2023001")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnavailable.Code, appErrors.FromError(err).Code)
}

func TestStudentSummaryRequiresStudentID(t *testing.T) {
	svc := NewDashboardService(DashboardServiceParams{
		Periods:    &fakePeriods{period: currentPeriod()},
		Enrollment: &fakeEnrollment{status: enrolledStatus()},
		Attendance: &fakeAttendance{},
		Tuition:    &fakeTuition{},
		Grades:     &fakeGrades{},
	})

	_, _, err := svc.StudentSummary(context.Background(), "  ")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestClassGradeAverages(t *testing.T) {
	avg := 85.5
	svc := NewDashboardService(DashboardServiceParams{
		Periods:    &fakePeriods{period: currentPeriod()},
		Enrollment: &fakeEnrollment{status: enrolledStatus()},
		Attendance: &fakeAttendance{},
		Tuition:    &fakeTuition{},
		Grades:     &fakeGrades{averages: &models.ClassGradeAverages{ClassID: 5, AvgPrelim: &avg}},
	})

	averages, err := svc.ClassGradeAverages(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), averages.ClassID)
}

func TestClassGradeAveragesUnavailable(t *testing.T) {
	svc := NewDashboardService(DashboardServiceParams{
		Periods:    &fakePeriods{period: currentPeriod()},
		Enrollment: &fakeEnrollment{status: enrolledStatus()},
		Attendance: &fakeAttendance{},
		Tuition:    &fakeTuition{},
		Grades:     &fakeGrades{err: errors.New("connection refused")},
	})

	_, err := svc.ClassGradeAverages(context.Background(), 5)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnavailable.Code, appErrors.FromError(err).Code)
}
