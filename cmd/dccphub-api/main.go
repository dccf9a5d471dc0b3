package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/dccp-developers/dccphub-api/api/swagger"
	"github.com/dccp-developers/dccphub-api/internal/handler"
	"github.com/dccp-developers/dccphub-api/internal/middleware"
	"github.com/dccp-developers/dccphub-api/internal/models"
	"github.com/dccp-developers/dccphub-api/internal/repository"
	"github.com/dccp-developers/dccphub-api/internal/service"
	"github.com/dccp-developers/dccphub-api/pkg/cache"
	"github.com/dccp-developers/dccphub-api/pkg/config"
	"github.com/dccp-developers/dccphub-api/pkg/database"
	"github.com/dccp-developers/dccphub-api/pkg/logger"
	corsmiddleware "github.com/dccp-developers/dccphub-api/pkg/middleware/cors"
	reqidmiddleware "github.com/dccp-developers/dccphub-api/pkg/middleware/requestid"
)

// @title DCCP Hub API
// @version 0.1.0
// @description Enrollment eligibility and academic period service
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// The current term gates every enrollment decision; refuse to start
	// with a missing or malformed one.
	if err := cfg.Academic.Validate(); err != nil {
		log.Fatalf("invalid academic period configuration: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	metricsSvc := service.NewMetricsService()

	// Redis is optional: without it the service still answers, just
	// without caching, and readiness reports the degradation.
	var cacheRepo *repository.CacheRepository
	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
	} else {
		cacheRepo = repository.NewCacheRepository(redisClient, logr)
		defer cacheRepo.Close() //nolint:errcheck
	}

	var cacheBackend service.CacheRepository
	if cacheRepo != nil {
		cacheBackend = cacheRepo
	}
	cacheSvc := service.NewCacheService(cacheBackend, metricsSvc, cfg.Cache.EnrollmentTTL, logr, cfg.Cache.Enabled)

	enrollmentRepo := repository.NewEnrollmentRepository(db)
	subjectEnrollmentRepo := repository.NewSubjectEnrollmentRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	facultyRepo := repository.NewFacultyRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	tuitionRepo := repository.NewTuitionRepository(db)
	gradeRepo := repository.NewGradeRepository(db)

	validate := validator.New()

	periodSvc := service.NewPeriodService(cfg.Academic, logr)
	enrollmentSvc := service.NewEnrollmentService(service.EnrollmentServiceParams{
		Enrollments:        enrollmentRepo,
		SubjectEnrollments: subjectEnrollmentRepo,
		Cache:              cacheSvc,
		Metrics:            metricsSvc,
		Validator:          validate,
		Logger:             logr,
		CacheTTL:           cfg.Cache.EnrollmentTTL,
	})
	validationSvc := service.NewValidationService(studentRepo, facultyRepo, validate, logr)
	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Periods:    periodSvc,
		Enrollment: enrollmentSvc,
		Attendance: attendanceRepo,
		Tuition:    tuitionRepo,
		Grades:     gradeRepo,
		Cache:      cacheSvc,
		Logger:     logr,
		Config:     service.DashboardServiceConfig{CacheTTL: cfg.Dashboard.CacheTTL},
	})

	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentSvc)
	periodHandler := handler.NewPeriodHandler(periodSvc)
	validationHandler := handler.NewValidationHandler(validationSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": err.Error()})
			return
		}
		status := gin.H{"status": "ready"}
		if cacheRepo != nil {
			if err := cacheRepo.Ping(c.Request.Context()); err != nil {
				status["cache"] = "unavailable"
			}
		}
		c.JSON(http.StatusOK, status)
	})

	r.GET("/metrics", metricsHandler.Prometheus)
	r.GET("/metrics/snapshot", metricsHandler.Snapshot)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	identity := middleware.Identity(cfg.Identity)

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/enrollment-status", enrollmentHandler.Status)
		api.GET("/academic-period", periodHandler.Current)
		api.POST("/faculty/validate", validationHandler.ValidateFaculty)
		api.POST("/students/validate", identity, validationHandler.ValidateStudent)
		if cfg.Dashboard.Enabled {
			api.GET("/dashboard/student", identity, middleware.RequireRole(models.RoleStudent), dashboardHandler.StudentDashboard)
			api.GET("/classes/:classId/grade-averages", identity, middleware.RequireRole(models.RoleFaculty), dashboardHandler.ClassGradeAverages)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "semester", cfg.Academic.Semester, "schoolYear", cfg.Academic.SchoolYear)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
