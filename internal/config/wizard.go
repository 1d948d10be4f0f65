package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
)

// DefaultPath is where init writes the configuration.
const DefaultPath = ".academy.yml"

// contentCandidates are override files picked up as the default content_file.
var contentCandidates = []string{"content.yml", "content.yaml", "site.yml", "site.yaml"}

// detectContentFile returns the first content override present in the
// current directory.
func detectContentFile() string {
	for _, name := range contentCandidates {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to academy! Let's configure the site.")
	fmt.Println()

	cfg := DefaultConfig()

	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	detected := detectContentFile()
	if detected != "" {
		fmt.Printf("Found content file: %s\n\n", detected)
	}
	contentPrompt := promptui.Prompt{
		Label:   "Content file (blank for built-in copy)",
		Default: detected,
	}
	if cfg.ContentFile, err = contentPrompt.Run(); err != nil {
		return nil, fmt.Errorf("content file: %w", err)
	}

	intervalPrompt := promptui.Select{
		Label: "Testimonial rotation interval",
		Items: []string{"3s", "5s", "8s", "12s"},
	}
	_, intervalStr, err := intervalPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("interval selection: %w", err)
	}
	cfg.CarouselInterval, _ = time.ParseDuration(intervalStr)

	patternsPrompt := promptui.Prompt{
		Label:   "Asset patterns for export (comma-separated globs)",
		Default: strings.Join(cfg.AssetPatterns, ","),
	}
	patternsStr, err := patternsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("asset patterns: %w", err)
	}
	if patterns := splitAndTrim(patternsStr); len(patterns) > 0 {
		cfg.AssetPatterns = patterns
	}

	webhookPrompt := promptui.Prompt{
		Label: "Webhook URL for contact messages (blank to only store them)",
	}
	if cfg.Contact.WebhookURL, err = webhookPrompt.Run(); err != nil {
		return nil, fmt.Errorf("webhook url: %w", err)
	}

	tokenPrompt := promptui.Prompt{
		Label: "Admin token for the messages API (blank to leave it open)",
		Mask:  '*',
	}
	if cfg.Contact.AdminToken, err = tokenPrompt.Run(); err != nil {
		return nil, fmt.Errorf("admin token: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	if cfg.Contact.AdminToken != "" {
		fmt.Printf("Note: you can also set %sCONTACT__ADMIN_TOKEN instead of storing the token.\n", EnvPrefix)
	}
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
