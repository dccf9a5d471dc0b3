package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dccp-developers/dccphub-api/internal/dto"
	"github.com/dccp-developers/dccphub-api/internal/middleware"
	"github.com/dccp-developers/dccphub-api/internal/models"
	appErrors "github.com/dccp-developers/dccphub-api/pkg/errors"
	"github.com/dccp-developers/dccphub-api/pkg/response"
)

type dashboardReader interface {
	StudentSummary(ctx context.Context, studentID string) (*dto.StudentDashboardResponse, bool, error)
	ClassGradeAverages(ctx context.Context, classID int64) (*models.ClassGradeAverages, error)
}

// DashboardHandler serves the aggregated read views for signed-in users.
type DashboardHandler struct {
	service dashboardReader
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardReader) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// StudentDashboard godoc
// @Summary Aggregated dashboard for the signed-in student
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Security BearerAuth
// @Router /dashboard/student [get]
func (h *DashboardHandler) StudentDashboard(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	start := time.Now()
	summary, cacheHit, err := h.service.StudentSummary(c.Request.Context(), identity.StudentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, summary, map[string]interface{}{
		"cache_hit":          cacheHit,
		"processing_time_ms": time.Since(start).Milliseconds(),
	})
}

// ClassGradeAverages godoc
// @Summary Per-column grade averages for a class
// @Tags Dashboard
// @Produce json
// @Param classId path int true "Class ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Security BearerAuth
// @Router /classes/{classId}/grade-averages [get]
func (h *DashboardHandler) ClassGradeAverages(c *gin.Context) {
	classID, err := strconv.ParseInt(c.Param("classId"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "classId must be numeric"))
		return
	}

	averages, err := h.service.ClassGradeAverages(c.Request.Context(), classID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, averages)
}
