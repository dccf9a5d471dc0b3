package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Database  DatabaseConfig
	Redis     RedisConfig
	Identity  IdentityConfig
	CORS      CORSConfig
	Log       LogConfig
	Academic  AcademicPeriodConfig
	Dashboard DashboardConfig
	Cache     CacheConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// IdentityConfig describes how tokens from the external identity provider
// are verified. The provider issues and manages sessions; this API only
// reads the signed role metadata.
type IdentityConfig struct {
	SigningKey string
	Issuer     string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// AcademicPeriodConfig pins the current academic term. Every eligibility
// decision is scoped to this triple, so it must be present and well formed
// before the server starts taking traffic.
type AcademicPeriodConfig struct {
	Semester       string
	SchoolYear     string
	CurriculumYear string
}

// DashboardConfig governs dashboard exposure and cache tuning.
type DashboardConfig struct {
	Enabled  bool
	CacheTTL time.Duration
}

// CacheConfig tunes enrollment-status caching.
type CacheConfig struct {
	Enabled       bool
	EnrollmentTTL time.Duration
}

// Validate rejects a missing or malformed current-term configuration.
// Downstream enrollment checks filter on this triple; defaulting it
// silently would gate students against the wrong term.
func (a AcademicPeriodConfig) Validate() error {
	sem := strings.TrimSpace(a.Semester)
	if sem == "" {
		return errors.New("academic semester is not set")
	}
	n, err := strconv.Atoi(sem)
	if err != nil || n < 1 {
		return fmt.Errorf("academic semester %q is not a positive integer", a.Semester)
	}

	sy := strings.TrimSpace(a.SchoolYear)
	parts := strings.Split(sy, "-")
	if len(parts) != 2 {
		return fmt.Errorf("school year %q must look like 2024-2025", a.SchoolYear)
	}
	from, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("school year %q must look like 2024-2025", a.SchoolYear)
	}
	to, err := strconv.Atoi(parts[1])
	if err != nil || to != from+1 {
		return fmt.Errorf("school year %q must span consecutive years", a.SchoolYear)
	}

	if strings.TrimSpace(a.CurriculumYear) == "" {
		return errors.New("curriculum year is not set")
	}
	return nil
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Identity = IdentityConfig{
		SigningKey: v.GetString("IDENTITY_SIGNING_KEY"),
		Issuer:     v.GetString("IDENTITY_ISSUER"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Academic = AcademicPeriodConfig{
		Semester:       v.GetString("ACADEMIC_SEMESTER"),
		SchoolYear:     v.GetString("ACADEMIC_SCHOOL_YEAR"),
		CurriculumYear: v.GetString("ACADEMIC_CURRICULUM_YEAR"),
	}

	cfg.Dashboard = DashboardConfig{
		Enabled:  v.GetBool("ENABLE_DASHBOARD"),
		CacheTTL: parseDuration(v.GetString("DASHBOARD_CACHE_TTL"), 5*time.Minute),
	}

	cfg.Cache = CacheConfig{
		Enabled:       v.GetBool("ENABLE_CACHE"),
		EnrollmentTTL: parseDuration(v.GetString("ENROLLMENT_CACHE_TTL"), 2*time.Minute),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "dccphub")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("IDENTITY_SIGNING_KEY", "dev_secret")
	v.SetDefault("IDENTITY_ISSUER", "")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	// Deliberately no defaults for the academic period: an unset term must
	// fail validation instead of resolving to a wrong-but-plausible value.
	v.SetDefault("ACADEMIC_SEMESTER", "")
	v.SetDefault("ACADEMIC_SCHOOL_YEAR", "")
	v.SetDefault("ACADEMIC_CURRICULUM_YEAR", "")

	v.SetDefault("ENABLE_DASHBOARD", true)
	v.SetDefault("DASHBOARD_CACHE_TTL", "5m")
	v.SetDefault("ENABLE_CACHE", false)
	v.SetDefault("ENROLLMENT_CACHE_TTL", "2m")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
