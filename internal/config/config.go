package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. APP_SERVER_PORT.
const EnvPrefix = "app"

// Config top-level struct
type Config struct {
	Server   ServerConfig   `yaml:"server" split_words:"true"`
	Postgres PostgresConfig `yaml:"postgres" split_words:"true"`
	Email    EmailConfig    `yaml:"email" split_words:"true"`
	Kafka    KafkaConfig    `yaml:"kafka" split_words:"true"`
}

type ServerConfig struct {
	Port     int    `yaml:"port" split_words:"true"`
	BaseURL  string `yaml:"base_url" split_words:"true"`
	LogLevel string `yaml:"log_level" split_words:"true"`
}

type PostgresConfig struct {
	DSN          string `yaml:"dsn" split_words:"true"`
	MaxOpenConns int    `yaml:"max_open_conns" split_words:"true"`
}

type EmailConfig struct {
	Provider           string    `yaml:"provider" split_words:"true"`
	Sender             string    `yaml:"sender" split_words:"true"`
	BaseURL            string    `yaml:"base_url" split_words:"true"`
	AuthorizationToken string    `yaml:"authorization_token" split_words:"true"`
	TimeoutMillis      int       `yaml:"timeout_ms" split_words:"true"`
	SES                SESConfig `yaml:"ses" split_words:"true"`
}

type SESConfig struct {
	Region    string `yaml:"region" split_words:"true"`
	AccessKey string `yaml:"access_key" split_words:"true"`
	SecretKey string `yaml:"secret_key" split_words:"true"`
}

// Empty Brokers disables event publishing.
type KafkaConfig struct {
	Brokers []string `yaml:"brokers" split_words:"true"`
	Topic   string   `yaml:"topic" split_words:"true"`
}

const (
	ProviderPostmark = "postmark"
	ProviderSES      = "ses"
)

func (e EmailConfig) Timeout() time.Duration {
	return time.Duration(e.TimeoutMillis) * time.Millisecond
}

// Load reads the yaml file at path, then applies APP_* environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}
	// override DSN password from env if present
	if pw := os.Getenv("POSTGRES_PASSWORD"); pw != "" {
		cfg.Postgres.DSN = cfg.Postgres.DSN + " password=" + pw
	}
	if cfg.Email.Provider == "" {
		cfg.Email.Provider = ProviderPostmark
	}
	return &cfg, nil
}

// Validate reports settings the service cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.BaseURL == "" {
		errs = append(errs, errors.New("server.base_url is required"))
	}
	if c.Postgres.DSN == "" {
		errs = append(errs, errors.New("postgres.dsn is required"))
	}
	if c.Email.Sender == "" {
		errs = append(errs, errors.New("email.sender is required"))
	}
	switch c.Email.Provider {
	case ProviderPostmark:
		if c.Email.BaseURL == "" {
			errs = append(errs, errors.New("email.base_url is required for postmark"))
		}
	case ProviderSES:
		if c.Email.SES.Region == "" {
			errs = append(errs, errors.New("email.ses.region is required for ses"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown email.provider %q", c.Email.Provider))
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.Topic == "" {
		errs = append(errs, errors.New("kafka.topic is required when brokers are set"))
	}
	return errors.Join(errs...)
}
