package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerConfig_Address(t *testing.T) {
	tests := []struct {
		name   string
		server ServerConfig
		want   string
	}{
		{
			name: "localhost default port",
			server: ServerConfig{
				Host: "localhost",
				Port: 8030,
			},
			want: "localhost:8030",
		},
		{
			name: "bind all interfaces",
			server: ServerConfig{
				Host: "0.0.0.0",
				Port: 8080,
			},
			want: "0.0.0.0:8080",
		},
		{
			name: "custom host and port",
			server: ServerConfig{
				Host: "api.internal",
				Port: 9000,
			},
			want: "api.internal:9000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			address := tt.server.Address()
			assert.Equal(t, tt.want, address)
		})
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5433, User: "shop", Password: "pw", DBName: "banners", SSLMode: "require"}
	assert.Equal(t, "postgres://shop:pw@db:5433/banners?sslmode=require", p.DSN())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("KAFKA_BOOTSTRAP_SERVERS", " k1:9092, ,k2:9092 ")
	t.Setenv("KAFKA_CONSUMER_ENABLED", "false")
	t.Setenv("CATALOG_PAGE_SIZE", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.False(t, cfg.Kafka.ConsumerEnabled)
	assert.Equal(t, 100, cfg.Catalog.PageSize)
	assert.Zero(t, cfg.Catalog.SyncInterval)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad port", env: map[string]string{"HTTP_PORT": "0"}},
		{name: "no brokers", env: map[string]string{"KAFKA_BOOTSTRAP_SERVERS": " , "}},
		{name: "no topic", env: map[string]string{"KAFKA_ORDER_EVENT_TOPIC": ""}},
		{name: "relative metrics path", env: map[string]string{"METRICS_PATH": "metrics"}},
		{name: "sync without backend", env: map[string]string{"CATALOG_SYNC_INTERVAL_SEC": "60", "CATALOG_BACKEND_URL": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
