package config

import (
	"path/filepath"
	"time"
)

// Config is the top-level academy configuration, corresponding to .academy.yml.
type Config struct {
	Port             int           `yaml:"port" koanf:"port"`
	DataDir          string        `yaml:"data_dir" koanf:"data_dir"`
	ContentFile      string        `yaml:"content_file" koanf:"content_file"`
	AssetsDir        string        `yaml:"assets_dir" koanf:"assets_dir"`
	AssetPatterns    []string      `yaml:"asset_patterns" koanf:"asset_patterns"`
	ExportDir        string        `yaml:"export_dir" koanf:"export_dir"`
	CarouselInterval time.Duration `yaml:"carousel_interval" koanf:"carousel_interval"`
	Contact          ContactConfig `yaml:"contact" koanf:"contact"`
	AllowAllOrigins  bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// ContactConfig holds contact form settings.
type ContactConfig struct {
	// Delay is how long a submission appears to take before it is confirmed.
	Delay      time.Duration `yaml:"delay" koanf:"delay"`
	WebhookURL string        `yaml:"webhook_url" koanf:"webhook_url"`
	AdminToken string        `yaml:"admin_token" koanf:"admin_token"`
}

// DefaultAssetPatterns are the globs copied from assets_dir on export.
var DefaultAssetPatterns = []string{
	"**/*.{jpg,jpeg,png,svg,webp,ico}",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:             8080,
		DataDir:          "data",
		AssetsDir:        "assets",
		AssetPatterns:    DefaultAssetPatterns,
		ExportDir:        "public",
		CarouselInterval: 5 * time.Second,
		Contact: ContactConfig{
			Delay: time.Second,
		},
	}
}

// DBPath returns the sqlite database location inside DataDir.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "academy.db")
}
