package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mownders/academy/internal/progress"
	"github.com/mownders/academy/internal/site"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the landing page as a static site",
	Long:  `Writes index.html, style.css, script.js and the matching assets to the export directory, ready for any static host.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if exportOutput != "" {
			cfg.ExportDir = exportOutput
		}

		s, err := loadContent(cfg)
		if err != nil {
			return err
		}

		e := &site.Exporter{
			Site:      s,
			OutputDir: cfg.ExportDir,
			AssetsDir: cfg.AssetsDir,
			Patterns:  cfg.AssetPatterns,
			Interval:  cfg.CarouselInterval,
			Reporter:  progress.NewReporter(),
		}
		res, err := e.Export()
		if err != nil {
			return fmt.Errorf("exporting site: %w", err)
		}

		fmt.Fprintf(os.Stderr, "Exported %d files (%d assets) to %s\n", res.Files, len(res.Assets), cfg.ExportDir)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output directory (overrides config)")
	rootCmd.AddCommand(exportCmd)
}
