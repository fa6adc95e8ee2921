// internal/config/config.go
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Filename string `yaml:"filename"`
	URL      string `yaml:"-"` // Loaded from environment
}

type StorageConfig struct {
	ReportsDir string `yaml:"reports_dir"`
	UploadsDir string `yaml:"uploads_dir"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
		Port        int    `yaml:"port"`
		BaseURL     string `yaml:"base_url"`
		SecretKey   string `yaml:"-"` // Loaded from environment
	} `yaml:"app"`

	Database DatabaseConfig `yaml:"database"`

	Storage StorageConfig `yaml:"storage"`
}

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Read and parse YAML config
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Load sensitive values from environment
	cfg.App.SecretKey = os.Getenv("APP_SECRET_KEY")
	cfg.Database.URL = os.Getenv("DATABASE_URL")

	cfg.ApplyDefaults()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// ApplyDefaults fills in the file-backed fallbacks for anything the config
// file and environment left unset.
func (c *Config) ApplyDefaults() {
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	// No DATABASE_URL means we fall back to a local file-backed store.
	if c.Database.URL == "" && c.Database.Filename == "" {
		c.Database.Filename = "data/analysishub.db"
	}
	if c.Storage.ReportsDir == "" {
		c.Storage.ReportsDir = "data/reports"
	}
	if c.Storage.UploadsDir == "" {
		c.Storage.UploadsDir = "data/uploads"
	}
	// Sessions live in memory, so a throwaway per-process secret is enough
	// for development. Production must set APP_SECRET_KEY.
	if c.App.SecretKey == "" && c.App.Environment == "development" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err == nil {
			c.App.SecretKey = hex.EncodeToString(buf)
		}
	}
}

// DataSourceName returns the sqlite DSN, preferring DATABASE_URL when set.
func (c *Config) DataSourceName() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return c.Database.Filename
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port == 0 {
		return fmt.Errorf("app port is required")
	}
	if c.App.SecretKey == "" && c.App.Environment != "development" {
		return fmt.Errorf("APP_SECRET_KEY is required outside development")
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.DataSourceName() == "" {
			return fmt.Errorf("database filename is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	return nil
}
