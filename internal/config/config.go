package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"guide-catalog-be/internal/entity"
	"guide-catalog-be/pkg/events"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Catalog  CatalogConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	JwtSecret          string
	LogFilePath        string
	EventLogFilePath   string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

type CatalogConfig struct {
	IsCloud              bool
	IsDevFeaturesEnabled bool
	QuotaCacheTTL        time.Duration
	SubscriptionSubject  string // NATS subject carrying subscription changes
	SubscriptionDurable  string
}

// Environment returns the process-wide flags the guide gate depends on
func (c CatalogConfig) Environment() entity.Environment {
	return entity.Environment{
		IsCloud:              c.IsCloud,
		IsDevFeaturesEnabled: c.IsDevFeaturesEnabled,
	}
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			JwtSecret:          getEnv("JWT_SECRET", ""),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			EventLogFilePath:   getEnv("EVENT_LOG_FILE_PATH", "logs/subscription_events.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Catalog: CatalogConfig{
			IsCloud:              getEnvAsBool("IS_CLOUD", false),
			IsDevFeaturesEnabled: getEnvAsBool("DEV_FEATURES_ENABLED", false),
			QuotaCacheTTL:        getEnvAsDuration("QUOTA_CACHE_TTL", 5*time.Minute),
			SubscriptionSubject:  getEnv("SUBSCRIPTION_EVENT_SUBJECT", "events."+events.TypeSubscriptionUpdated),
			SubscriptionDurable:  getEnv("SUBSCRIPTION_EVENT_DURABLE", "guide-catalog-quota"),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "guide-catalog-backend"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
