package site

import (
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/mownders/academy/internal/content"
	"github.com/mownders/academy/internal/progress"
	"github.com/mownders/academy/internal/ui"
)

// Exporter writes the landing page as a static site: index.html with the
// initial controller state, the stylesheet, the script and matching assets.
type Exporter struct {
	Site      *content.Site
	OutputDir string
	AssetsDir string
	Patterns  []string
	Interval  time.Duration
	Reporter  progress.Reporter
}

// ExportResult summarizes a finished export.
type ExportResult struct {
	Files  int
	Assets []string
}

// Export builds the site. Returns the files written.
func (e *Exporter) Export() (*ExportResult, error) {
	tmpl, err := parsePage()
	if err != nil {
		return nil, err
	}

	assets, err := e.collectAssets()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	interval := e.Interval
	if interval <= 0 {
		interval = ui.DefaultCarouselInterval
	}
	page, err := render(tmpl, buildPage(e.Site, url.Values{}, renderOptions{static: true, interval: interval}))
	if err != nil {
		return nil, err
	}

	files := []struct {
		name string
		data []byte
	}{
		{"index.html", page},
		{"style.css", cssContent},
		{"script.js", jsContent},
	}

	total := len(files) + len(assets)
	rep := e.Reporter
	if rep == nil {
		rep = progress.Discard{}
	}
	rep.Start(total)
	defer rep.Finish()

	done := 0
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(e.OutputDir, f.name), f.data, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.name, err)
		}
		done++
		rep.Update(done, f.name)
	}

	for _, rel := range assets {
		src := filepath.Join(e.AssetsDir, filepath.FromSlash(rel))
		dst := filepath.Join(e.OutputDir, "assets", filepath.FromSlash(rel))
		if err := copyFile(src, dst); err != nil {
			return nil, fmt.Errorf("copying asset %s: %w", rel, err)
		}
		done++
		rep.Update(done, "assets/"+rel)
	}

	return &ExportResult{Files: done, Assets: assets}, nil
}

// collectAssets lists files under AssetsDir matching Patterns, as slash
// separated relative paths. A missing assets dir yields no assets.
func (e *Exporter) collectAssets() ([]string, error) {
	if e.AssetsDir == "" {
		return nil, nil
	}
	if _, err := os.Stat(e.AssetsDir); os.IsNotExist(err) {
		return nil, nil
	}

	var assets []string
	err := filepath.WalkDir(e.AssetsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(e.AssetsDir, path)
		if err != nil {
			return err
		}
		if matchesAny(rel, e.Patterns) {
			assets = append(assets, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking assets dir: %w", err)
	}
	return assets, nil
}

// matchesAny checks if relPath matches any of the given glob patterns,
// trying both the full path and the file name.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	base := filepath.Base(normalized)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.Match(pattern, normalized); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
