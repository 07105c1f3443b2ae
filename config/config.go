package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port            string
	DBDriver        string // sqlite|postgres
	DBPath          string
	DBDSN           string
	LogMode         string // dev|prod|test
	CORSOrigins     []string
	MetricsEnabled  bool
	ShutdownTimeout time.Duration
}

// Load reads .env (if present) and the process environment.
func Load() (AppConfig, error) {
	// a missing .env is fine; real deployments set the environment directly
	_ = godotenv.Load()

	get := func(k, def string) string {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
		return def
	}

	cfg := AppConfig{
		Port:           get("PORT", "8080"),
		DBDriver:       strings.ToLower(get("DB_DRIVER", "sqlite")),
		DBPath:         get("DB_PATH", "agro.db"),
		DBDSN:          get("DB_DSN", ""),
		LogMode:        get("LOG_MODE", "dev"),
		MetricsEnabled: get("METRICS_ENABLED", "true") == "true",
	}
	for _, o := range strings.Split(get("CORS_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	d, err := time.ParseDuration(get("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return AppConfig{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = d

	switch cfg.DBDriver {
	case "sqlite":
	case "postgres":
		if cfg.DBDSN == "" {
			return AppConfig{}, fmt.Errorf("DB_DSN is required when DB_DRIVER=postgres")
		}
	default:
		return AppConfig{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return cfg, nil
}

// Redacted hides credentials embedded in the DSN for logging.
func (c AppConfig) Redacted() AppConfig {
	if c.DBDSN != "" {
		c.DBDSN = "[REDACTED]"
	}
	return c
}
