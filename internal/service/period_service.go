package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/dccp-developers/dccphub-api/internal/models"
	"github.com/dccp-developers/dccphub-api/pkg/config"
	appErrors "github.com/dccp-developers/dccphub-api/pkg/errors"
)

// PeriodService resolves the current academic period from process-wide
// configuration. Every eligibility decision filters on this triple, so a
// missing or malformed term is a hard configuration error rather than a
// default: gating a student against the wrong term would silently show
// enrolled-only content to ineligible accounts.
type PeriodService struct {
	cfg    config.AcademicPeriodConfig
	logger *zap.Logger
}

// NewPeriodService constructs the resolver.
func NewPeriodService(cfg config.AcademicPeriodConfig, logger *zap.Logger) *PeriodService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PeriodService{cfg: cfg, logger: logger}
}

// Current returns the active (semester, curriculum year, school year) triple.
func (s *PeriodService) Current() (models.AcademicPeriod, error) {
	if err := s.cfg.Validate(); err != nil {
		s.logger.Error("academic period configuration invalid", zap.Error(err))
		return models.AcademicPeriod{}, appErrors.Wrap(err, appErrors.ErrConfiguration.Code, appErrors.ErrConfiguration.Status, "cannot resolve current academic period")
	}
	return models.AcademicPeriod{
		Semester:       strings.TrimSpace(s.cfg.Semester),
		CurriculumYear: strings.TrimSpace(s.cfg.CurriculumYear),
		SchoolYear:     strings.TrimSpace(s.cfg.SchoolYear),
	}, nil
}
