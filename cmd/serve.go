package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mownders/academy/internal/contact"
	"github.com/mownders/academy/internal/content"
	"github.com/mownders/academy/internal/db"
	"github.com/mownders/academy/internal/server"
	"github.com/mownders/academy/internal/site"
)

var (
	servePort  int
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page and contact API",
	Long: `Starts the HTTP server: the landing page at /, the contact form, the
JSON contact API under /api/contact and the live testimonials carousel.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		s, err := loadContent(cfg)
		if err != nil {
			return err
		}
		holder := content.NewHolder(s)

		database, err := db.Open(cfg.DBPath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if serveWatch && cfg.ContentFile != "" {
			w, err := content.NewWatcher(cfg.ContentFile, holder)
			if err != nil {
				return fmt.Errorf("watching content: %w", err)
			}
			go w.Run(ctx)
			fmt.Fprintf(os.Stderr, "  Watching: %s\n", cfg.ContentFile)
		}

		store := contact.NewStore(database)
		opts := []contact.Option{contact.WithDelay(cfg.Contact.Delay)}
		if cfg.Contact.WebhookURL != "" {
			opts = append(opts, contact.WithForwarder(contact.NewForwarder(cfg.Contact.WebhookURL)))
		}
		submitter := contact.NewSubmitter(store, opts...)

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		}, database)

		page, err := site.New(holder, submitter,
			site.WithInterval(cfg.CarouselInterval),
			site.WithAssetsDir(cfg.AssetsDir),
		)
		if err != nil {
			return err
		}
		page.RegisterRoutes(srv.Router())
		contact.RegisterRoutes(srv.Router(), submitter, store, cfg.Contact.AdminToken)

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "academy %s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", database.Path())
		if cfg.Contact.WebhookURL != "" {
			fmt.Fprintf(os.Stderr, "  Forwarding messages to: %s\n", cfg.Contact.WebhookURL)
		}
		if cfg.Contact.AdminToken == "" {
			fmt.Fprintln(os.Stderr, "  Message API disabled (set contact.admin_token to enable)")
		}

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "reload the content file when it changes")
	rootCmd.AddCommand(serveCmd)
}
