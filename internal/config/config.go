// Package config loads runtime settings from an optional YAML file and the
// environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const minJWTSecretLen = 32

type Config struct {
	HTTPAddr string `yaml:"http_addr"`
	LogLevel string `yaml:"log_level"`

	JWTSecret        string        `yaml:"jwt_secret"`
	TokenTTL         time.Duration `yaml:"token_ttl"`
	OperatorUser     string        `yaml:"operator_user"`
	OperatorPassword string        `yaml:"operator_password"`

	MetricsEnabled bool     `yaml:"metrics_enabled"`
	MetricsToken   string   `yaml:"metrics_token"`
	CORSOrigins    []string `yaml:"cors_origins"`

	Seed Seed `yaml:"seed"`
}

// Seed is loaded into the store before the first prompt or request.
type Seed struct {
	Products  []SeedProduct  `yaml:"products"`
	Customers []SeedCustomer `yaml:"customers"`
}

type SeedProduct struct {
	ID    string  `yaml:"id"`
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
}

type SeedCustomer struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Orders []string `yaml:"orders"`
}

func Default() Config {
	return Config{
		HTTPAddr:       ":8080",
		LogLevel:       "info",
		TokenTTL:       15 * time.Minute,
		OperatorUser:   "admin",
		MetricsEnabled: true,
	}
}

// Load reads path (if non-empty) over the defaults, then applies the
// environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.HTTPAddr = getenv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	cfg.JWTSecret = getenv("JWT_SECRET", cfg.JWTSecret)
	cfg.OperatorUser = getenv("OPERATOR_USER", cfg.OperatorUser)
	cfg.OperatorPassword = getenv("OPERATOR_PASSWORD", cfg.OperatorPassword)
	cfg.MetricsToken = getenv("METRICS_TOKEN", cfg.MetricsToken)

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		cfg.MetricsEnabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}
	return nil
}

// ValidateServe checks the settings the HTTP surface cannot run without.
func (c Config) ValidateServe() error {
	var errs []error
	if len(c.JWTSecret) < minJWTSecretLen {
		errs = append(errs, fmt.Errorf("JWT_SECRET is required and must be at least %d chars", minJWTSecretLen))
	}
	if strings.TrimSpace(c.OperatorUser) == "" || strings.TrimSpace(c.OperatorPassword) == "" {
		errs = append(errs, errors.New("OPERATOR_USER and OPERATOR_PASSWORD are required"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("token_ttl must be positive"))
	}
	return errors.Join(errs...)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
