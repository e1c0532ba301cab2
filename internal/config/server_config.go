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
	App     AppConfig
	Server  ServerConfig
	DB      PostgresConfig
	Kafka   KafkaConfig
	Catalog CatalogConfig
	Metrics MetricsConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int
}

type KafkaConfig struct {
	Brokers       []string
	EventTopic    string
	ConsumerGroup string
	// ConsumerEnabled turns on the status history projector in the API process.
	ConsumerEnabled bool
}

// CatalogConfig drives cmd/catalog_import. A non-empty File wins over the
// backend REST API.
type CatalogConfig struct {
	File       string
	BackendURL string
	APIKey     string
	PageSize   int
	SleepMS    int

	// SyncInterval re-imports from the backend inside the API process.
	// Zero disables it.
	SyncInterval time.Duration

	// ExportFile, when set, receives a YAML snapshot of what
	// cmd/catalog_import stored.
	ExportFile string
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "bannerstore"),
			Env:  getEnv("APP_ENV", "local"),
		},
		Server: ServerConfig{
			Host:            getEnv("HTTP_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("HTTP_PORT", 8030),
			ShutdownTimeout: time.Duration(getEnvAsInt("HTTP_SHUTDOWN_TIMEOUT_SEC", 10)) * time.Second,
		},
		DB: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvAsInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			DBName:   getEnv("POSTGRES_DB", "postgres"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
		},
		Kafka: KafkaConfig{
			Brokers:         splitAndTrim(getEnv("KAFKA_BOOTSTRAP_SERVERS", "localhost:9092")),
			EventTopic:      getEnv("KAFKA_ORDER_EVENT_TOPIC", "order-events"),
			ConsumerGroup:   getEnv("KAFKA_CONSUMER_GROUP", "bannerstore-history"),
			ConsumerEnabled: getEnvAsBool("KAFKA_CONSUMER_ENABLED", true),
		},
		Catalog: CatalogConfig{
			File:         getEnv("CATALOG_FILE", ""),
			BackendURL:   getEnv("CATALOG_BACKEND_URL", ""),
			APIKey:       getEnv("CATALOG_BACKEND_API_KEY", ""),
			PageSize:     getEnvAsInt("CATALOG_PAGE_SIZE", 100),
			SleepMS:      getEnvAsInt("CATALOG_SLEEP_MS", 200),
			SyncInterval: time.Duration(getEnvAsInt("CATALOG_SYNC_INTERVAL_SEC", 0)) * time.Second,
			ExportFile:   getEnv("CATALOG_EXPORT_FILE", ""),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvAsBool("METRICS_ENABLED", true),
			Path:    getEnv("METRICS_PATH", "/metrics"),
		},
	}

	return cfg, cfg.validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

/* ================= helpers ================= */

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	if c.DB.Host == "" || c.DB.User == "" || c.DB.DBName == "" {
		return fmt.Errorf("database config is incomplete")
	}
	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka brokers is empty")
	}
	if c.Kafka.EventTopic == "" {
		return fmt.Errorf("KAFKA_ORDER_EVENT_TOPIC is empty")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("METRICS_PATH must start with /")
	}
	if c.Catalog.SyncInterval > 0 && c.Catalog.BackendURL == "" {
		return fmt.Errorf("CATALOG_SYNC_INTERVAL_SEC requires CATALOG_BACKEND_URL")
	}
	// catalog source is only required by cmd/catalog_import, which checks it there
	return nil
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if val := strings.TrimSpace(p); val != "" {
			out = append(out, val)
		}
	}
	return out
}
