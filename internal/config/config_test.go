package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
server:
  port: 8000
  base_url: "http://127.0.0.1:8000"
  log_level: info
postgres:
  dsn: "host=localhost user=app dbname=newsletter sslmode=disable"
  max_open_conns: 10
email:
  sender: "test@gmail.com"
  base_url: "https://api.postmarkapp.com"
  authorization_token: "my-secret-token"
  timeout_ms: 10000
kafka:
  brokers: []
  topic: subscriptions
`

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "base.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.Server.BaseURL)
	assert.Equal(t, ProviderPostmark, cfg.Email.Provider)
	assert.Equal(t, 10*time.Second, cfg.Email.Timeout())
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9000")
	t.Setenv("APP_SERVER_BASE_URL", "https://api.example.com")
	t.Setenv("APP_KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("POSTGRES_PASSWORD", "hunter2")

	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "https://api.example.com", cfg.Server.BaseURL)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Contains(t, cfg.Postgres.DSN, "password=hunter2")
	assert.Equal(t, "test@gmail.com", cfg.Email.Sender)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Email: EmailConfig{Provider: "carrier-pigeon"}, Kafka: KafkaConfig{Brokers: []string{"k:9092"}}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "server.base_url is required")
	assert.ErrorContains(t, err, "postgres.dsn is required")
	assert.ErrorContains(t, err, "email.sender is required")
	assert.ErrorContains(t, err, `unknown email.provider "carrier-pigeon"`)
	assert.ErrorContains(t, err, "kafka.topic is required")

	cfg = &Config{
		Server:   ServerConfig{BaseURL: "http://localhost"},
		Postgres: PostgresConfig{DSN: "host=localhost"},
		Email:    EmailConfig{Provider: ProviderSES, Sender: "a@b.com"},
	}
	assert.ErrorContains(t, cfg.Validate(), "email.ses.region is required")
}
