// filepath: internal/config/config.go
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultIconAPI is the icon lookup service used when no custom icon_api is
// configured. The default service supports a larger-size variant via a query flag.
const DefaultIconAPI = "https://favicon.im"

// Config holds the application's configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logging  LoggingConfig  `toml:"logging"`
	Site     SiteConfig     `toml:"site"`
	Auth     AuthConfig     `toml:"auth"`

	AdminPassword string `toml:"-"` // Not loaded from file, set by CLI/env
	JWTSecret     string `toml:"-"` // Runtime secret (from env, flag, or file)
}

// ServerConfig holds the server configuration.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level        string `toml:"level"`
	AuditEnabled bool   `toml:"audit_enabled"`
}

// SiteConfig holds the public-facing site parameters. Every field can be
// overridden by the environment variables (SITE_NAME, ICON_API, ...) that
// existing deployments already set.
type SiteConfig struct {
	Name                   string `toml:"name"`
	Description            string `toml:"description"`
	FooterText             string `toml:"footer_text"`
	IconAPI                string `toml:"icon_api"`
	DisplayCategory        string `toml:"display_category"`
	EnablePublicSubmission bool   `toml:"enable_public_submission"`
}

// AuthConfig holds settings for admin sessions.
type AuthConfig struct {
	AdminPasswordHash string `toml:"admin_password_hash"`
	AccessDurationH   int    `toml:"access_duration_hours"`
	Secret            string `toml:"secret"` // Persisted JWT secret
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the current configuration back to a TOML file.
// Used to persist the auto-generated JWT secret.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file for saving: %w", err)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config to file: %w", err)
	}
	return nil
}

// ParseAndValidate fills in defaults for values that must never be empty.
func (c *Config) ParseAndValidate() error {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.Path == "" {
		c.Database.Path = "navhub.db"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Site.Name == "" {
		c.Site.Name = "NavHub"
	}
	if c.Auth.AccessDurationH == 0 {
		c.Auth.AccessDurationH = 24
	}
	return nil
}

// IconAPI returns the configured icon lookup base, or the default service.
// The second return value reports whether the default is in use, which
// decides whether the larger-size query flag is appended.
func (c *Config) IconAPI() (string, bool) {
	if c.Site.IconAPI != "" {
		return c.Site.IconAPI, false
	}
	return DefaultIconAPI, true
}
