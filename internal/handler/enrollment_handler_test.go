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

	"github.com/dccp-developers/dccphub-api/internal/models"
	"github.com/dccp-developers/dccphub-api/internal/service"
	appErrors "github.com/dccp-developers/dccphub-api/pkg/errors"
)

type fakeEnrollmentSrv struct {
	status *models.EnrollmentStatus
	err    error
	lastQ  service.EnrollmentQuery
}

func (f *fakeEnrollmentSrv) Resolve(_ context.Context, q service.EnrollmentQuery) (*models.EnrollmentStatus, error) {
	f.lastQ = q
	return f.status, f.err
}

func TestEnrollmentHandlerMissingParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewEnrollmentHandler(&fakeEnrollmentSrv{})

	for _, query := range []string{
		"",
		"studentId=2023001",
		"studentId=2023001&semester=1",
		"semester=1&schoolYear=2024-2025",
		"studentId=%20%20&semester=1&schoolYear=2024-2025",
	} {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/enrollment-status?"+query, nil)

		handler.Status(c)

		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Missing required parameters", body["error"])
	}
}

func TestEnrollmentHandlerSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeEnrollmentSrv{status: &models.EnrollmentStatus{
		IsEnrolled: true,
		Status:     "Verified By Cashier",
		Semester:   1,
		SchoolYear: "2024-2025",
		Source:     models.EnrollmentSourcePrimary,
	}}
	handler := NewEnrollmentHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/enrollment-status?studentId=2023001&semester=1&schoolYear=2024-2025", nil)

	handler.Status(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2023001", srv.lastQ.StudentID)

	var body struct {
		Success          bool                   `json:"success"`
		EnrollmentStatus map[string]interface{} `json:"enrollmentStatus"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, true, body.EnrollmentStatus["isEnrolled"])
	assert.Equal(t, "Verified By Cashier", body.EnrollmentStatus["status"])
	// The winning source is internal detail and stays off the wire.
	_, exposed := body.EnrollmentStatus["Source"]
	assert.False(t, exposed)
}

func TestEnrollmentHandlerNotEnrolled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewEnrollmentHandler(&fakeEnrollmentSrv{status: &models.EnrollmentStatus{IsEnrolled: false}})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/enrollment-status?studentId=999&semester=1&schoolYear=2024-2025", nil)

	handler.Status(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Success          bool                    `json:"success"`
		EnrollmentStatus models.EnrollmentStatus `json:"enrollmentStatus"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.False(t, body.EnrollmentStatus.IsEnrolled)
}

func TestEnrollmentHandlerAllSourcesDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewEnrollmentHandler(&fakeEnrollmentSrv{
		err: appErrors.Clone(appErrors.ErrUnavailable, "enrollment records are temporarily unavailable"),
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/enrollment-status?studentId=2023001&semester=1&schoolYear=2024-2025", nil)

	handler.Status(c)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "enrollment records are temporarily unavailable", body["error"])
}
