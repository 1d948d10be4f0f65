package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultSite []byte

// Default returns the built-in site copy.
func Default() (*Site, error) {
	return Parse(defaultSite)
}

// Parse decodes and validates a YAML content document. Unknown fields are
// rejected so typos in an override file surface instead of silently
// dropping copy.
func Parse(data []byte) (*Site, error) {
	var s Site
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding content: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads the content document at path. An empty path or a missing file
// yields the built-in copy.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default()
	}
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return s, nil
}

// Validate checks the invariants the page controllers rely on.
func (s *Site) Validate() error {
	var errs []error

	seen := make(map[string]bool, len(s.Services.Items))
	for i, svc := range s.Services.Items {
		if svc.ID == "" {
			errs = append(errs, fmt.Errorf("services[%d]: id is required", i))
		} else if seen[svc.ID] {
			errs = append(errs, fmt.Errorf("services[%d]: duplicate id %q", i, svc.ID))
		}
		seen[svc.ID] = true
		if !svc.Icon.Valid() {
			errs = append(errs, fmt.Errorf("services[%d]: unknown icon %q", i, svc.Icon))
		}
	}
	for i, f := range s.Benefits.Items {
		if !f.Icon.Valid() {
			errs = append(errs, fmt.Errorf("benefits[%d]: unknown icon %q", i, f.Icon))
		}
	}
	for i, f := range s.WhyChooseUs.Features {
		if !f.Icon.Valid() {
			errs = append(errs, fmt.Errorf("why_choose_us.features[%d]: unknown icon %q", i, f.Icon))
		}
	}
	for i, q := range s.FAQ.Items {
		if q.Question == "" {
			errs = append(errs, fmt.Errorf("faq[%d]: question is required", i))
		}
	}
	for i, t := range s.Testimonials.Items {
		if t.Quote == "" {
			errs = append(errs, fmt.Errorf("testimonials[%d]: quote is required", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid content: %w", errors.Join(errs...))
	}
	return nil
}
