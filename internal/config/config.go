package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const devJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Port           string
	Env            string
	LogLevel       slog.Level
	DatabaseDriver string
	DatabaseDSN    string
	JWTSecret      string
	BcryptCost     int
	CORSOrigins    []string
	MigrateOnStart bool
}

// IsDevelopment reports whether the service runs in a local/development context.
// Session cookies are only sent without the Secure attribute in that case.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       parseLevel(getEnv("LOG_LEVEL", "info")),
		DatabaseDriver: getEnv("DATABASE_DRIVER", "sqlite"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "moodjournal.db"),
		JWTSecret:      getEnv("JWT_SECRET", devJWTSecret),
		BcryptCost:     getEnvInt("BCRYPT_COST", 10),
		CORSOrigins:    splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),
		MigrateOnStart: getEnv("MIGRATE_ON_START", "true") == "true",
	}

	if cfg.Env == "production" && cfg.JWTSecret == devJWTSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("ignoring malformed integer env", "key", key, "value", v)
		return fallback
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
