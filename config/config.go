package config

import (
	"errors"
	"os"
	"time"

	"github.com/social-wave/backend/internal/pg"

	"gopkg.in/yaml.v3"
)

type HTTP struct {
	Addr               string        `yaml:"addr"`
	ShutdownTimeout    time.Duration `yaml:"shutdownTimeout"`
	RequestTimeout     time.Duration `yaml:"requestTimeout"`
	RateLimitPerMinute int           `yaml:"rateLimitPerMinute"` // 0 — лимитер выключен
	AllowedOrigins     []string      `yaml:"allowedOrigins"`
}

type Logging struct {
	Env       string `yaml:"env"`       // dev|prod
	Service   string `yaml:"service"`   // social-wave-backend
	Version   string `yaml:"version"`   // v0.1.0
	Backend   string `yaml:"backend"`   // std|zap
	AddSource bool   `yaml:"addSource"` // false|true
	Debug     bool   `yaml:"debug"`     // false|true
}

type Postgres struct {
	DSN               string        `yaml:"dsn"`
	MaxConns          int32         `yaml:"maxConns"`
	MinConns          int32         `yaml:"minConns"`
	MaxConnLifetime   time.Duration `yaml:"maxConnLifetime"`
	MaxConnIdleTime   time.Duration `yaml:"maxConnIdleTime"`
	HealthCheckPeriod time.Duration `yaml:"healthCheckPeriod"`
	ApplicationName   string        `yaml:"applicationName"`
}

func (p Postgres) ToPGConfig() pg.Config {
	return pg.Config{
		DSN:               p.DSN,
		MaxConns:          p.MaxConns,
		MinConns:          p.MinConns,
		MaxConnLifetime:   p.MaxConnLifetime,
		MaxConnIdleTime:   p.MaxConnIdleTime,
		HealthCheckPeriod: p.HealthCheckPeriod,
		ApplicationName:   p.ApplicationName,
	}
}

type Password struct {
	MinLength  int `yaml:"minLength"`
	BcryptCost int `yaml:"bcryptCost"`
}

type Security struct {
	Password Password `yaml:"password"`
}

type Chat struct {
	// Зарезервированный id автоматического участника (ассистента).
	AssistantUserID int64 `yaml:"assistantUserId"`
}

type Config struct {
	HTTP     HTTP     `yaml:"http"`
	Logging  Logging  `yaml:"logging"`
	Postgres Postgres `yaml:"postgres"`
	Security Security `yaml:"security"`
	Chat     Chat     `yaml:"chat"`
}

func LoadConfig() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config/config.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.HTTP.Addr == "" {
		return errors.New("http.addr is required")
	}
	if c.Postgres.DSN == "" {
		return errors.New("postgres.dsn is required")
	}
	if c.Security.Password.BcryptCost != 0 && (c.Security.Password.BcryptCost < 4 || c.Security.Password.BcryptCost > 18) {
		return errors.New("security.password.bcryptCost must be in [4..18]")
	}
	// установка дефолтов, если значения не указаны
	if c.HTTP.ShutdownTimeout <= 0 {
		c.HTTP.ShutdownTimeout = 15 * time.Second
	}
	if c.HTTP.RequestTimeout <= 0 {
		c.HTTP.RequestTimeout = 30 * time.Second
	}
	if c.Security.Password.MinLength <= 0 {
		c.Security.Password.MinLength = 6
	}
	if c.Chat.AssistantUserID <= 0 {
		c.Chat.AssistantUserID = 1
	}
	if c.Logging.Service == "" {
		c.Logging.Service = "social-wave-backend"
	}
	if c.Logging.Env == "" {
		c.Logging.Env = "dev"
	}
	if c.Logging.Version == "" {
		c.Logging.Version = "v0.1.0"
	}
	if c.Logging.Backend == "" {
		c.Logging.Backend = "std"
	}
	return nil
}
