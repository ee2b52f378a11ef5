package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// TelegramConfig holds Telegram bot related settings.
type TelegramConfig struct {
	Token       string `yaml:"token" envconfig:"BOT_TOKEN"`
	AdminChatID int64  `yaml:"admin_chat_id" envconfig:"ADMIN_CHAT_ID"`
	RunMode     string `yaml:"run_mode" envconfig:"TELEGRAM_RUN_MODE"`
	// LongPollTimeoutSeconds defines long polling timeout; 0 -> default
	LongPollTimeoutSeconds int `yaml:"longpoll_timeout_seconds" envconfig:"TELEGRAM_LONGPOLL_TIMEOUT_SECONDS"`
}

// WebhookConfig specifies webhook settings.
type WebhookConfig struct {
	URL    string `yaml:"url" envconfig:"WEBHOOK_URL"`
	Listen string `yaml:"listen" envconfig:"WEBHOOK_LISTEN"`
	Port   int    `yaml:"port" envconfig:"WEBHOOK_PORT"`
}

// LoggingConfig defines logging related configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Dir    string `yaml:"dir"`
	File   string `yaml:"file"`
	// Profile indicates environment profile such as "debug" or "prod".
	Profile string `yaml:"profile"`
}

// DatabaseConfig holds storage settings. The sqlite driver needs only Path;
// the postgres driver uses the host/port/credential fields.
type DatabaseConfig struct {
	Driver         string `yaml:"driver" envconfig:"DB_DRIVER"`
	Path           string `yaml:"path" envconfig:"DB_PATH"`
	Host           string `yaml:"host" envconfig:"DB_HOST"`
	Port           string `yaml:"port" envconfig:"DB_PORT"`
	User           string `yaml:"user" envconfig:"DB_USER"`
	Password       string `yaml:"password" envconfig:"DB_PASSWORD"`
	Name           string `yaml:"name" envconfig:"DB_NAME"`
	SSLMode        string `yaml:"sslmode" envconfig:"DB_SSLMODE"`
	MaxConnections int    `yaml:"max_connections" envconfig:"DB_MAX_CONNECTIONS"`
}

// AppConfig holds lead form behaviour settings.
type AppConfig struct {
	Timezone string `yaml:"timezone" envconfig:"TIMEZONE"`
	// MaxFiles caps the number of attachments per draft.
	MaxFiles int `yaml:"max_files" envconfig:"LEAD_MAX_FILES"`
}

const (
	// RunModeWebhook selects webhook mode for Telegram updates.
	RunModeWebhook = "webhook"
	// RunModeLongpoll selects long-polling mode for Telegram updates.
	RunModeLongpoll = "longpoll"
)

const (
	// DriverSQLite selects the embedded sqlite storage.
	DriverSQLite = "sqlite"
	// DriverPostgres selects a PostgreSQL server as storage.
	DriverPostgres = "postgres"
)

const (
	defaultTimezone = "Europe/Podgorica"
	defaultDBPath   = "leads.db"
	defaultMaxFiles = 10
)

// Config aggregates the full bot configuration.
type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Webhook  WebhookConfig  `yaml:"webhook"`
	Logging  LoggingConfig  `yaml:"logging"`
	Database DatabaseConfig `yaml:"database"`
	App      AppConfig      `yaml:"app"`
}

// Load reads configuration from a YAML file and environment variables.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize performs basic validation of required configuration fields and adjusts defaults.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}

	if strings.TrimSpace(cfg.Telegram.Token) == "" {
		return fmt.Errorf("telegram.token is required")
	}
	if cfg.Telegram.AdminChatID == 0 {
		return fmt.Errorf("telegram.admin_chat_id is required")
	}

	rm := strings.ToLower(strings.TrimSpace(cfg.Telegram.RunMode))
	if rm == "" {
		rm = RunModeLongpoll
	}
	if rm == "polling" { // accept alias
		rm = RunModeLongpoll
	}
	switch rm {
	case RunModeWebhook:
		if strings.TrimSpace(cfg.Webhook.URL) == "" {
			return fmt.Errorf("webhook.url is required when telegram.run_mode is 'webhook'")
		}
		if strings.TrimSpace(cfg.Webhook.Listen) == "" {
			return fmt.Errorf("webhook.listen is required when telegram.run_mode is 'webhook'")
		}
		if cfg.Webhook.Port <= 0 {
			return fmt.Errorf("webhook.port must be > 0 when telegram.run_mode is 'webhook'")
		}
	case RunModeLongpoll:
		if cfg.Telegram.LongPollTimeoutSeconds < 0 {
			return fmt.Errorf("telegram.longpoll_timeout_seconds must be >= 0")
		}
	default:
		return fmt.Errorf("invalid telegram.run_mode %q; allowed: webhook, longpoll", cfg.Telegram.RunMode)
	}
	cfg.Telegram.RunMode = rm

	if err := normalizeDatabase(&cfg.Database); err != nil {
		return err
	}

	tz := strings.TrimSpace(cfg.App.Timezone)
	if tz == "" {
		tz = defaultTimezone
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return fmt.Errorf("invalid app.timezone %q: %w", tz, err)
	}
	cfg.App.Timezone = tz

	if cfg.App.MaxFiles < 0 {
		return fmt.Errorf("app.max_files must be >= 0")
	}
	if cfg.App.MaxFiles == 0 {
		cfg.App.MaxFiles = defaultMaxFiles
	}

	return nil
}

func normalizeDatabase(db *DatabaseConfig) error {
	driver := strings.ToLower(strings.TrimSpace(db.Driver))
	if driver == "" {
		driver = DriverSQLite
	}
	switch driver {
	case DriverSQLite:
		if strings.TrimSpace(db.Path) == "" {
			db.Path = defaultDBPath
		}
	case DriverPostgres:
		if strings.TrimSpace(db.Host) == "" || strings.TrimSpace(db.Name) == "" {
			return fmt.Errorf("database.host and database.name are required when database.driver is 'postgres'")
		}
		if strings.TrimSpace(db.Port) == "" {
			db.Port = "5432"
		}
		if strings.TrimSpace(db.SSLMode) == "" {
			db.SSLMode = "disable"
		}
	default:
		return fmt.Errorf("invalid database.driver %q; allowed: sqlite, postgres", db.Driver)
	}
	db.Driver = driver

	if db.MaxConnections <= 0 {
		db.MaxConnections = 4
	}
	return nil
}

// Location returns the configured timezone. Normalize guarantees it parses.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
