package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// EnvStarlinerToken имя переменной окружения с токеном Starliner backend.
// Токен никогда не хранится в config.toml
const EnvStarlinerToken = "STARLINER_API_TOKEN"

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Starliner StarlinerConfig `toml:"starliner"`
	Wizard    WizardConfig    `toml:"wizard"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// StarlinerConfig настройки интеграции со Starliner backend
type StarlinerConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
	Token   string `toml:"-"`       // только из окружения
}

// WizardConfig настройки мастера бронирования
type WizardConfig struct {
	SessionTTL           int  `toml:"session_ttl"`    // минуты
	SweepInterval        int  `toml:"sweep_interval"` // минуты
	SundayAlwaysBookable bool `toml:"sunday_always_bookable"`
}

// Load читает конфигурацию из TOML файла и окружения
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			File:  "logs/app.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			ServiceName: "starliner-booking-portal",
			Path:        "/metrics",
		},
		Starliner: StarlinerConfig{
			Timeout: 15,
		},
		Wizard: WizardConfig{
			SessionTTL:           30,
			SweepInterval:        5,
			SundayAlwaysBookable: true,
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg.Starliner.Token = os.Getenv(EnvStarlinerToken)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http_port: %d", c.Server.HTTPPort)
	}
	if c.Starliner.URL == "" {
		return errors.New("starliner.url is required")
	}
	if c.Starliner.Token == "" {
		return fmt.Errorf("%s environment variable is required", EnvStarlinerToken)
	}
	if c.Wizard.SessionTTL <= 0 {
		return fmt.Errorf("invalid wizard.session_ttl: %d", c.Wizard.SessionTTL)
	}
	if c.Wizard.SweepInterval <= 0 {
		return fmt.Errorf("invalid wizard.sweep_interval: %d", c.Wizard.SweepInterval)
	}
	return nil
}
