package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database    DatabaseConfig `yaml:"database"`
	RabbitMQ    RabbitMQConfig `yaml:"rabbitmq"`
	Provider    ProviderConfig `yaml:"provider"`
	Server      ServerConfig   `yaml:"server"`
	Sync        SyncConfig     `yaml:"sync"`
	DataSources []DataSource   `yaml:"datasources"`
	LogLevel    string         `yaml:"log_level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type ProviderConfig struct {
	BaseURL  string        `yaml:"base_url"`
	Token    string        `yaml:"token"`
	Version  string        `yaml:"version"`
	PageSize int           `yaml:"page_size"`
	Timeout  time.Duration `yaml:"timeout"`
	Retry    RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type ServerConfig struct {
	Addr          string `yaml:"addr"`
	WebhookSecret string `yaml:"webhook_secret"`
	SyncSecret    string `yaml:"sync_secret"`
}

type SyncConfig struct {
	Interval time.Duration `yaml:"interval"`
	Lookback time.Duration `yaml:"lookback"`
}

// DataSource is the per-source configuration bundle: the provider
// database to pull from plus the property names its publishing rules
// read. Empty property names leave the corresponding rule at its
// default.
type DataSource struct {
	ID                  string   `yaml:"id"`
	PublishProperty     string   `yaml:"publish_property"`
	PublishValues       []string `yaml:"publish_values"`
	PublishDateProperty string   `yaml:"publish_date_property"`
	SlugProperty        string   `yaml:"slug_property"`
	TagsProperty        string   `yaml:"tags_property"`
	AuthorsProperty     string   `yaml:"authors_property"`
	MetaProperties      []string `yaml:"meta_properties"`
	SlugSyncProperty    string   `yaml:"slug_sync_property"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Provider.PageSize == 0 {
		c.Provider.PageSize = 100
	}
	if c.Provider.Timeout == 0 {
		c.Provider.Timeout = 30 * time.Second
	}
	if c.Provider.Retry.MaxAttempts == 0 {
		c.Provider.Retry.MaxAttempts = 3
	}
	if c.Provider.Retry.InitialBackoff == 0 {
		c.Provider.Retry.InitialBackoff = 1 * time.Second
	}
	if c.Provider.Retry.MaxBackoff == 0 {
		c.Provider.Retry.MaxBackoff = 30 * time.Second
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Sync.Interval == 0 {
		c.Sync.Interval = 15 * time.Minute
	}
	if c.Sync.Lookback == 0 {
		c.Sync.Lookback = 24 * time.Hour
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	if c.Provider.BaseURL == "" {
		return fmt.Errorf("provider.base_url is required")
	}
	if c.Provider.Token == "" {
		return fmt.Errorf("provider.token is required")
	}
	if len(c.DataSources) == 0 {
		return fmt.Errorf("at least one datasource is required")
	}
	seen := make(map[string]bool, len(c.DataSources))
	for _, ds := range c.DataSources {
		if ds.ID == "" {
			return fmt.Errorf("datasource id is required")
		}
		if seen[ds.ID] {
			return fmt.Errorf("duplicate datasource id %q", ds.ID)
		}
		seen[ds.ID] = true
	}
	return nil
}
