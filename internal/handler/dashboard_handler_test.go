package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dccp-developers/dccphub-api/internal/dto"
	"github.com/dccp-developers/dccphub-api/internal/middleware"
	"github.com/dccp-developers/dccphub-api/internal/models"
	appErrors "github.com/dccp-developers/dccphub-api/pkg/errors"
)

type fakeDashboardSrv struct {
	summary       *dto.StudentDashboardResponse
	summaryHit    bool
	summaryErr    error
	averages      *models.ClassGradeAverages
	averagesErr   error
	lastStudentID string
}

func (f *fakeDashboardSrv) StudentSummary(_ context.Context, studentID string) (*dto.StudentDashboardResponse, bool, error) {
	f.lastStudentID = studentID
	return f.summary, f.summaryHit, f.summaryErr
}

func (f *fakeDashboardSrv) ClassGradeAverages(context.Context, int64) (*models.ClassGradeAverages, error) {
	return f.averages, f.averagesErr
}

type responseEnvelope struct {
	Data  map[string]interface{} `json:"data"`
	Error map[string]interface{} `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

func TestDashboardHandlerStudentSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeDashboardSrv{
		summary: &dto.StudentDashboardResponse{
			Period:     models.AcademicPeriod{Semester: "1", SchoolYear: "2024-2025"},
			Enrollment: models.EnrollmentStatus{IsEnrolled: true, Status: "Verified By Cashier"},
			Display:    models.EnrollmentDisplay{State: models.StateEnrolled, Tone: models.TonePositive},
		},
		summaryHit: true,
	}
	handler := NewDashboardHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard/student", nil)
	c.Set(middleware.ContextIdentityKey, models.IdentityContext{
		UserID:    "user_1",
		Role:      models.RoleStudent,
		StudentID: "2023001",
	})

	handler.StudentDashboard(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2023001", srv.lastStudentID)

	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, true, envelope.Meta["cache_hit"])
	assert.Contains(t, envelope.Meta, "processing_time_ms")
	assert.Equal(t, "enrolled", envelope.Data["display"].(map[string]interface{})["state"])
}

func TestDashboardHandlerStudentMissingIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDashboardHandler(&fakeDashboardSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard/student", nil)

	handler.StudentDashboard(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDashboardHandlerStudentServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDashboardHandler(&fakeDashboardSrv{summaryErr: appErrors.ErrUnavailable})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard/student", nil)
	c.Set(middleware.ContextIdentityKey, models.IdentityContext{Role: models.RoleStudent, StudentID: "2023001"})

	handler.StudentDashboard(c)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDashboardHandlerGradeAverages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	avg := 85.5
	handler := NewDashboardHandler(&fakeDashboardSrv{
		averages: &models.ClassGradeAverages{ClassID: 5, AvgPrelim: &avg},
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/classes/5/grade-averages", nil)
	c.Params = gin.Params{{Key: "classId", Value: "5"}}

	handler.ClassGradeAverages(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, float64(5), envelope.Data["classId"])
	assert.Equal(t, 85.5, envelope.Data["avgPrelim"])
}

func TestDashboardHandlerGradeAveragesBadClassID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDashboardHandler(&fakeDashboardSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/classes/abc/grade-averages", nil)
	c.Params = gin.Params{{Key: "classId", Value: "abc"}}

	handler.ClassGradeAverages(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
