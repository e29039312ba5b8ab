package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL string `yaml:"base_url"` // empty means synthetic-only mode
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Refresh struct {
		Auto            *bool `yaml:"auto"`
		IntervalMinutes int   `yaml:"interval_minutes"`
	} `yaml:"refresh"`
	Telegram struct {
		Enabled  bool   `yaml:"enabled"`
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Server struct {
		ListenAddr  string   `yaml:"listen_addr"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Synthetic struct {
		Seed int64 `yaml:"seed"` // 0 seeds from the wall clock
	} `yaml:"synthetic"`
	UI struct {
		Theme string `yaml:"theme"`
	} `yaml:"ui"`
	Proxy string `yaml:"proxy"`
}

// Settings is the user-facing settings record served to the presentation
// layer, mirroring what the dashboard persists locally.
type Settings struct {
	APIEndpoint         string `json:"apiEndpoint"`
	EnableAutoRefresh   bool   `json:"enableAutoRefresh"`
	RefreshInterval     int    `json:"refreshInterval"`
	EnableNotifications bool   `json:"enableNotifications"`
	Theme               string `json:"theme"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error: every field has
// a usable default.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("API_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("REFRESH_INTERVAL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Refresh.IntervalMinutes = n
		}
	}
	if v := os.Getenv("SYNTHETIC_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Synthetic.Seed = n
		}
	}

	// Defaults
	if cfg.Refresh.Auto == nil {
		auto := true
		cfg.Refresh.Auto = &auto
	}
	if cfg.Refresh.IntervalMinutes == 0 {
		cfg.Refresh.IntervalMinutes = 15
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8080"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/nickel_sentinel.db"
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = "light"
	}

	return cfg, nil
}

// AutoRefresh reports whether the periodic refresh is enabled.
func (c *Config) AutoRefresh() bool {
	return c.Refresh.Auto == nil || *c.Refresh.Auto
}

// Settings returns the user-facing settings record.
func (c *Config) Settings() Settings {
	return Settings{
		APIEndpoint:         c.DataSource.BaseURL,
		EnableAutoRefresh:   c.AutoRefresh(),
		RefreshInterval:     c.Refresh.IntervalMinutes,
		EnableNotifications: c.Telegram.Enabled,
		Theme:               c.UI.Theme,
	}
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Refresh.IntervalMinutes < 1 {
		return fmt.Errorf("refresh.interval_minutes must be at least 1")
	}
	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required when telegram is enabled")
		}
		if c.Telegram.ChatID == "" {
			return fmt.Errorf("telegram.chat_id is required when telegram is enabled")
		}
	}
	if c.UI.Theme != "light" && c.UI.Theme != "dark" {
		return fmt.Errorf("ui.theme must be light or dark, got %q", c.UI.Theme)
	}
	return nil
}
