package cmd

import (
	"fmt"
	"os"

	"github.com/mownders/academy/internal/config"
	"github.com/mownders/academy/internal/content"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `academy init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadContent loads the configured content file, falling back to the
// built-in copy.
func loadContent(cfg *config.Config) (*content.Site, error) {
	s, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, err
	}
	if verbose {
		src := cfg.ContentFile
		if src == "" {
			src = "built-in"
		}
		fmt.Fprintf(os.Stderr, "Content: %s (%d services, %d testimonials, %d questions)\n",
			src, len(s.Services.Items), len(s.Testimonials.Items), len(s.FAQ.Items))
	}
	return s, nil
}
