package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dccp-developers/dccphub-api/internal/models"
	"github.com/dccp-developers/dccphub-api/pkg/response"
)

type periodResolver interface {
	Current() (models.AcademicPeriod, error)
}

// PeriodHandler reports the configured academic period.
type PeriodHandler struct {
	service periodResolver
}

// NewPeriodHandler constructs the handler.
func NewPeriodHandler(service periodResolver) *PeriodHandler {
	return &PeriodHandler{service: service}
}

// Current godoc
// @Summary Current academic period
// @Tags Academic
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /academic-period [get]
func (h *PeriodHandler) Current(c *gin.Context) {
	period, err := h.service.Current()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, period)
}
