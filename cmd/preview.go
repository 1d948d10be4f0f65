package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mownders/academy/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the interactive sections in the terminal",
	Long:  `Shows the services tabs, the FAQ and the rotating testimonials using the configured content.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		s, err := loadContent(cfg)
		if err != nil {
			return err
		}
		return preview.Run(s, cfg.CarouselInterval)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
