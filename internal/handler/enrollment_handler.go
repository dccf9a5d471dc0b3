package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dccp-developers/dccphub-api/internal/models"
	"github.com/dccp-developers/dccphub-api/internal/service"
	appErrors "github.com/dccp-developers/dccphub-api/pkg/errors"
)

type enrollmentResolver interface {
	Resolve(ctx context.Context, q service.EnrollmentQuery) (*models.EnrollmentStatus, error)
}

// EnrollmentHandler exposes the enrollment-status lookup. The response shape
// is the one the portal frontend already consumes, so it bypasses the common
// envelope.
type EnrollmentHandler struct {
	service enrollmentResolver
}

// NewEnrollmentHandler constructs the handler.
func NewEnrollmentHandler(service enrollmentResolver) *EnrollmentHandler {
	return &EnrollmentHandler{service: service}
}

// Status godoc
// @Summary Resolve enrollment status for a student and term
// @Tags Enrollment
// @Produce json
// @Param studentId query string true "Student ID"
// @Param semester query string true "Semester number"
// @Param schoolYear query string true "School year, e.g. 2024-2025"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /enrollment-status [get]
func (h *EnrollmentHandler) Status(c *gin.Context) {
	studentID := strings.TrimSpace(c.Query("studentId"))
	semester := strings.TrimSpace(c.Query("semester"))
	schoolYear := strings.TrimSpace(c.Query("schoolYear"))
	if studentID == "" || semester == "" || schoolYear == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required parameters"})
		return
	}

	status, err := h.service.Resolve(c.Request.Context(), service.EnrollmentQuery{
		StudentID:  studentID,
		Semester:   semester,
		SchoolYear: schoolYear,
	})
	if err != nil {
		appErr := appErrors.FromError(err)
		c.JSON(appErr.Status, gin.H{"success": false, "error": appErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "enrollmentStatus": status})
}
