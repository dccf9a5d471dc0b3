package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dccp-developers/dccphub-api/internal/service"
	appErrors "github.com/dccp-developers/dccphub-api/pkg/errors"
)

type identityValidator interface {
	ValidateStudent(ctx context.Context, req service.StudentValidationRequest) (*service.StudentValidationResult, error)
	ValidateFaculty(ctx context.Context, req service.FacultyValidationRequest) (*service.FacultyValidationResult, error)
}

// ValidationHandler exposes the onboarding identity-validation endpoints.
// Both endpoints keep the wire shapes the portal onboarding flow consumes:
// a `valid` discriminant plus either a profile or an error string.
type ValidationHandler struct {
	service identityValidator
}

// NewValidationHandler constructs the handler.
func NewValidationHandler(service identityValidator) *ValidationHandler {
	return &ValidationHandler{service: service}
}

// ValidateStudent godoc
// @Summary Validate a claimed student identity
// @Tags Validation
// @Accept json
// @Produce json
// @Param payload body service.StudentValidationRequest true "Claimed identity"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /students/validate [post]
func (h *ValidationHandler) ValidateStudent(c *gin.Context) {
	var req service.StudentValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and Student ID are required"})
		return
	}

	result, err := h.service.ValidateStudent(c.Request.Context(), req)
	if err != nil {
		appErr := appErrors.FromError(err)
		if appErr.Code == appErrors.ErrValidation.Code {
			c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
			return
		}
		c.JSON(appErr.Status, gin.H{"error": "Internal server error. Please try again later."})
		return
	}

	// Negative outcomes (bad id format, unknown id, email mismatch) are
	// valid 200 responses; the onboarding client branches on `valid`, not
	// on the HTTP status.
	if !result.Valid {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": result.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "student": result.Student})
}

// ValidateFaculty godoc
// @Summary Validate a claimed faculty identity
// @Tags Validation
// @Accept json
// @Produce json
// @Param payload body service.FacultyValidationRequest true "Claimed identity"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /faculty/validate [post]
func (h *ValidationHandler) ValidateFaculty(c *gin.Context) {
	var req service.FacultyValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"valid": false, "error": "Email and Faculty Code are required"})
		return
	}

	result, err := h.service.ValidateFaculty(c.Request.Context(), req)
	if err != nil {
		appErr := appErrors.FromError(err)
		if appErr.Code == appErrors.ErrValidation.Code {
			c.JSON(http.StatusBadRequest, gin.H{"valid": false, "error": appErr.Message})
			return
		}
		c.JSON(appErr.Status, gin.H{"valid": false, "error": "An error occurred during validation"})
		return
	}

	if !result.Valid {
		c.JSON(facultyFailureStatus(result.Failure), gin.H{"valid": false, "error": result.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "faculty": result.Faculty})
}

// facultyFailureStatus keeps the distinct statuses the onboarding client
// relies on: unknown credentials are 404, an inactive account is 403.
func facultyFailureStatus(failure service.ValidationFailure) int {
	switch failure {
	case service.FailureNotFound:
		return http.StatusNotFound
	case service.FailureInactive:
		return http.StatusForbidden
	default:
		return http.StatusOK
	}
}
