package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	PSM      PSMConfig
	Insight  InsightConfig
	Database DatabaseConfig
	JWT      JWTConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port         string
	AllowOrigins []string
}

type PSMConfig struct {
	SampleCount        int
	SelectionHalfWidth float64
	BusyDelay          time.Duration
}

type InsightConfig struct {
	GeminiBaseURL string
	GeminiAPIKey  string
	GeminiModel   string
	Timeout       time.Duration
	RetryMax      int
}

// DatabaseConfig is optional: with an empty Host the static campaign
// store is used instead of postgres.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	sampleCount, err := getEnvInt("PSM_SAMPLE_COUNT", 50)
	if err != nil {
		return nil, err
	}
	if sampleCount < 2 {
		return nil, fmt.Errorf("PSM_SAMPLE_COUNT must be at least 2, got %d", sampleCount)
	}

	halfWidth, err := getEnvFloat("PSM_SELECTION_HALF_WIDTH", 0.05)
	if err != nil {
		return nil, err
	}

	busyDelay, err := getEnvDuration("PSM_BUSY_DELAY", 800*time.Millisecond)
	if err != nil {
		return nil, err
	}

	insightTimeout, err := getEnvDuration("INSIGHT_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	retryMax, err := getEnvInt("INSIGHT_RETRY_MAX", 2)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "causalLab"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			AllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:8080")),
		},
		PSM: PSMConfig{
			SampleCount:        sampleCount,
			SelectionHalfWidth: halfWidth,
			BusyDelay:          busyDelay,
		},
		Insight: InsightConfig{
			GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			GeminiAPIKey:  getEnv("API_KEY", ""),
			GeminiModel:   getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
			Timeout:       insightTimeout,
			RetryMax:      retryMax,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "causal_lab"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
	}

	if cfg.Database.Enabled() && cfg.Database.Password == "" {
		return nil, fmt.Errorf("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
