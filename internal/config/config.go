package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"StockScope/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Listen string `yaml:"listen"`
	} `yaml:"server"`
	Defaults struct {
		Symbol   string `yaml:"symbol"`
		Period   string `yaml:"period"`
		Interval string `yaml:"interval"`
		Windows  []int  `yaml:"windows"`
	} `yaml:"defaults"`
	Snapshot struct {
		Cron string `yaml:"cron"`
	} `yaml:"snapshot"`
	Watch struct {
		OutputPath     string `yaml:"output_path"`
		RefreshSeconds int    `yaml:"refresh_seconds"`
	} `yaml:"watch"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
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
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv("DEFAULT_SYMBOL"); v != "" {
		cfg.Defaults.Symbol = v
	}
	if v := os.Getenv("DEFAULT_PERIOD"); v != "" {
		cfg.Defaults.Period = v
	}
	if v := os.Getenv("DEFAULT_INTERVAL"); v != "" {
		cfg.Defaults.Interval = v
	}
	if v := os.Getenv("SNAPSHOT_CRON"); v != "" {
		cfg.Snapshot.Cron = v
	}
	if v := os.Getenv("WATCH_OUTPUT"); v != "" {
		cfg.Watch.OutputPath = v
	}
	if v := os.Getenv("WATCH_REFRESH_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Watch.RefreshSeconds = n
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Defaults.Symbol == "" {
		cfg.Defaults.Symbol = "AAPL"
	}
	if cfg.Defaults.Period == "" {
		cfg.Defaults.Period = "1y"
	}
	if cfg.Defaults.Interval == "" {
		cfg.Defaults.Interval = "1d"
	}
	if len(cfg.Defaults.Windows) == 0 {
		cfg.Defaults.Windows = []int{10, 50, 100}
	}
	if cfg.Snapshot.Cron == "" {
		cfg.Snapshot.Cron = "0 0 22 * * 1-5"
	}
	if cfg.Watch.OutputPath == "" {
		cfg.Watch.OutputPath = "data/chart.html"
	}
	if cfg.Watch.RefreshSeconds == 0 {
		cfg.Watch.RefreshSeconds = 60
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if !model.ValidPeriods[c.Defaults.Period] {
		return fmt.Errorf("defaults.period %q is not a valid period token", c.Defaults.Period)
	}
	if !model.ValidIntervals[c.Defaults.Interval] {
		return fmt.Errorf("defaults.interval %q is not a valid interval token", c.Defaults.Interval)
	}
	for _, w := range c.Defaults.Windows {
		if w <= 0 {
			return fmt.Errorf("defaults.windows must be positive, got %d", w)
		}
	}
	if c.Watch.RefreshSeconds < model.MinRefreshSeconds || c.Watch.RefreshSeconds > model.MaxRefreshSeconds {
		return fmt.Errorf("watch.refresh_seconds must be in [%d, %d]",
			model.MinRefreshSeconds, model.MaxRefreshSeconds)
	}
	return nil
}

// DefaultRequest builds the request used by the snapshot scheduler and as
// the form's initial values.
func (c *Config) DefaultRequest() model.Request {
	return model.Request{
		Ticker:         c.Defaults.Symbol,
		Mode:           model.FetchByPeriod,
		Period:         c.Defaults.Period,
		Interval:       c.Defaults.Interval,
		Windows:        append([]int(nil), c.Defaults.Windows...),
		RefreshSeconds: c.Watch.RefreshSeconds,
	}
}
