package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{
			Token:       "123:abc",
			AdminChatID: 42,
		},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := validConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Errorf("run mode = %q, want %q", cfg.Telegram.RunMode, RunModeLongpoll)
	}
	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("driver = %q, want %q", cfg.Database.Driver, DriverSQLite)
	}
	if cfg.Database.Path != defaultDBPath {
		t.Errorf("db path = %q, want %q", cfg.Database.Path, defaultDBPath)
	}
	if cfg.App.Timezone != defaultTimezone {
		t.Errorf("timezone = %q, want %q", cfg.App.Timezone, defaultTimezone)
	}
	if cfg.App.MaxFiles != defaultMaxFiles {
		t.Errorf("max files = %d, want %d", cfg.App.MaxFiles, defaultMaxFiles)
	}
}

func TestNormalizeRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing token", func(c *Config) { c.Telegram.Token = " " }, "telegram.token"},
		{"missing admin chat", func(c *Config) { c.Telegram.AdminChatID = 0 }, "admin_chat_id"},
		{"bad run mode", func(c *Config) { c.Telegram.RunMode = "carrier-pigeon" }, "run_mode"},
		{"webhook without url", func(c *Config) { c.Telegram.RunMode = RunModeWebhook }, "webhook.url"},
		{"bad driver", func(c *Config) { c.Database.Driver = "oracle" }, "database.driver"},
		{"postgres without host", func(c *Config) { c.Database.Driver = DriverPostgres }, "database.host"},
		{"bad timezone", func(c *Config) { c.App.Timezone = "Mars/Olympus" }, "timezone"},
		{"negative max files", func(c *Config) { c.App.MaxFiles = -1 }, "max_files"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := Normalize(cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeAcceptsPollingAlias(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "polling"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Errorf("run mode = %q, want %q", cfg.Telegram.RunMode, RunModeLongpoll)
	}
}

func TestLocation(t *testing.T) {
	cfg := validConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	loc := cfg.Location()
	if loc.String() != defaultTimezone {
		t.Errorf("location = %q, want %q", loc, defaultTimezone)
	}
}
