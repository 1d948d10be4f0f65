package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.CarouselInterval != 5*time.Second {
		t.Errorf("expected default carousel_interval 5s, got %v", cfg.CarouselInterval)
	}
	if cfg.Contact.Delay != time.Second {
		t.Errorf("expected default contact.delay 1s, got %v", cfg.Contact.Delay)
	}
	if cfg.DBPath() != filepath.Join("data", "academy.db") {
		t.Errorf("unexpected db path %q", cfg.DBPath())
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.academy.yml")

	original := DefaultConfig()
	original.Port = 9090
	original.ContentFile = "content.yml"
	original.AssetPatterns = []string{"**/*.png", "favicon.ico"}
	original.CarouselInterval = 8 * time.Second
	original.Contact = ContactConfig{
		Delay:      250 * time.Millisecond,
		WebhookURL: "https://hooks.example.com/contact",
		AdminToken: "s3cret",
	}
	original.AllowAllOrigins = true

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if diff := cmp.Diff(original, loaded); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("expected defaults (-want +got):\n%s", diff)
	}
}

func TestLoadPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	if err := os.WriteFile(path, []byte("port: 3000\ncontact:\n  delay: 0s\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 3000 {
		t.Errorf("port: got %d, want 3000", cfg.Port)
	}
	if cfg.Contact.Delay != 0 {
		t.Errorf("contact.delay: got %v, want 0", cfg.Contact.Delay)
	}
	if cfg.CarouselInterval != 5*time.Second {
		t.Errorf("carousel_interval should keep its default, got %v", cfg.CarouselInterval)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("ACADEMY_PORT", "9999")
	t.Setenv("ACADEMY_CAROUSEL_INTERVAL", "2s")
	t.Setenv("ACADEMY_CONTACT__WEBHOOK_URL", "https://hooks.example.com/x")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 9999 {
		t.Errorf("port override failed: got %d", loaded.Port)
	}
	if loaded.CarouselInterval != 2*time.Second {
		t.Errorf("carousel_interval override failed: got %v", loaded.CarouselInterval)
	}
	if loaded.Contact.WebhookURL != "https://hooks.example.com/x" {
		t.Errorf("nested override failed: got %q", loaded.Contact.WebhookURL)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ACADEMY_PORT", "port"},
		{"ACADEMY_DATA_DIR", "data_dir"},
		{"ACADEMY_CONTACT__ADMIN_TOKEN", "contact.admin_token"},
	}
	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero port", func(c *Config) { c.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Port = 70000 }, true},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, true},
		{"empty export dir", func(c *Config) { c.ExportDir = "" }, true},
		{"zero interval", func(c *Config) { c.CarouselInterval = 0 }, true},
		{"negative delay", func(c *Config) { c.Contact.Delay = -time.Second }, true},
		{"zero delay", func(c *Config) { c.Contact.Delay = 0 }, false},
		{"bad webhook", func(c *Config) { c.Contact.WebhookURL = "ftp://x" }, true},
		{"good webhook", func(c *Config) { c.Contact.WebhookURL = "https://hooks.example.com" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	for _, s := range []string{"0", "abc", "65536", ""} {
		if validatePort(s) == nil {
			t.Errorf("validatePort(%q) should fail", s)
		}
	}
	if err := validatePort("8080"); err != nil {
		t.Errorf("validatePort(8080): %v", err)
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.png", []string{"**/*.png"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("splitAndTrim(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}
