package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

type Config struct {
	AppPort           string
	DbDriver          string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	SqlitePath        string
	AutoMigrate       bool
	SeedDefaults      bool
	TrustedProxies    []string
	LogLevel          string
	TranslationFolder string
	OtelEndpoint      string
	ServiceName       string
	ShutdownTimeout   time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		DbDriver:          parseDriver(getEnv("DB_DRIVER", DriverMySQL)),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "tasktracker"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "tasktracker"),
		DbName:            getEnv("MYSQL_DATABASE", "task_tracker"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true&charset=utf8mb4"),
		SqlitePath:        getEnv("SQLITE_PATH", "task_tracker.db"),
		AutoMigrate:       getBool("DB_AUTO_MIGRATE", true),
		SeedDefaults:      getBool("DB_SEED_DEFAULTS", true),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		OtelEndpoint:      os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:       getEnv("OTEL_SERVICE_NAME", "tasktracker"),
		ShutdownTimeout:   getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func parseDriver(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "sqlite", DriverSQLite:
		return DriverSQLite
	default:
		return DriverMySQL
	}
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
