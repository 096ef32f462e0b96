package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	Email      EmailConfig      `yaml:"email"`
	Kafka      KafkaConfig      `yaml:"kafka"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
	Storefront StorefrontConfig `yaml:"storefront"`
}

// ServerConfig contains HTTP API settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// Route the path-keyed API is mounted on, e.g. "/api"
	BasePath string `yaml:"base_path"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
	Migrate  bool   `yaml:"migrate"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// EmailConfig contains contract mailing settings. A SendGrid API key takes
// precedence over SMTP; with neither set contracts are only logged.
type EmailConfig struct {
	SendGridAPIKey string `yaml:"sendgrid_api_key"`
	SMTPHost       string `yaml:"smtp_host"`
	SMTPPort       int    `yaml:"smtp_port"`
	SMTPUser       string `yaml:"smtp_user"`
	SMTPPassword   string `yaml:"smtp_password"`
	FromEmail      string `yaml:"from_email"`
	FromName       string `yaml:"from_name"`
}

// KafkaConfig contains order event publishing settings
type KafkaConfig struct {
	Enabled bool     `yaml:"enabled"`
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	ActivateOrders string `yaml:"activate_orders"`
	CompleteOrders string `yaml:"complete_orders"`
}

// StorefrontConfig contains client session settings
type StorefrontConfig struct {
	APIURL                string `yaml:"api_url"`
	LessorName            string `yaml:"lessor_name"`
	RentalDays            int    `yaml:"rental_days"`
	ChatReplyDelayMs      int    `yaml:"chat_reply_delay_ms"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"` // 0 = transport default
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Email
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Email.SendGridAPIKey = val
	}
	if val := os.Getenv("SMTP_HOST"); val != "" {
		c.Email.SMTPHost = val
	}
	if val := os.Getenv("SMTP_PASSWORD"); val != "" {
		c.Email.SMTPPassword = val
	}

	// Kafka
	if val := os.Getenv("KAFKA_BROKERS"); val != "" {
		c.Kafka.Brokers = nil
		for _, broker := range strings.Split(val, ",") {
			if broker = strings.TrimSpace(broker); broker != "" {
				c.Kafka.Brokers = append(c.Kafka.Brokers, broker)
			}
		}
	}

	// Storefront
	if val := os.Getenv("STOREFRONT_API_URL"); val != "" {
		c.Storefront.APIURL = val
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid and fills defaults
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.BasePath == "" {
		c.Server.BasePath = "/api"
	}
	if !strings.HasPrefix(c.Server.BasePath, "/") {
		return fmt.Errorf("server base path must start with '/': %q", c.Server.BasePath)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.Email.FromName == "" {
		c.Email.FromName = "ПрокатПро"
	}
	if c.Email.SMTPHost != "" && c.Email.SMTPPort == 0 {
		c.Email.SMTPPort = 587
	}

	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka brokers are required when kafka is enabled")
	}
	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "rental.orders"
	}

	if c.Scheduler.ActivateOrders == "" {
		c.Scheduler.ActivateOrders = "0 5 0 * * *" // 00:05 UTC
	}
	if c.Scheduler.CompleteOrders == "" {
		c.Scheduler.CompleteOrders = "0 10 0 * * *" // 00:10 UTC
	}

	if c.Storefront.APIURL == "" {
		c.Storefront.APIURL = fmt.Sprintf("http://localhost:%d%s", c.Server.Port, c.Server.BasePath)
	}
	if u, err := url.Parse(c.Storefront.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid storefront api url: %q", c.Storefront.APIURL)
	}
	if c.Storefront.LessorName == "" {
		c.Storefront.LessorName = `ООО "ПрокатПро"`
	}
	if c.Storefront.RentalDays < 0 {
		return fmt.Errorf("storefront rental days must not be negative: %d", c.Storefront.RentalDays)
	}
	if c.Storefront.RentalDays == 0 {
		c.Storefront.RentalDays = 7
	}
	if c.Storefront.ChatReplyDelayMs == 0 {
		c.Storefront.ChatReplyDelayMs = 1000
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
