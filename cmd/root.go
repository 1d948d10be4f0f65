package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mownders/academy/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "academy",
	Short: "Mownder's Academy marketing site",
	Long: `academy serves the Mownder's Academy landing page, stores messages sent
through its contact form, exports the page as a static site and previews
its interactive sections in the terminal.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
