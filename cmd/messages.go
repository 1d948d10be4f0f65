package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mownders/academy/internal/contact"
	"github.com/mownders/academy/internal/db"
)

var (
	messagesLimit int
	messagesSince time.Duration
	messagesEmail string
)

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "List messages sent through the contact form",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if _, err := os.Stat(cfg.DBPath()); os.IsNotExist(err) {
			fmt.Fprintln(os.Stderr, "No messages yet.")
			return nil
		}

		database, err := db.Open(cfg.DBPath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		filter := contact.ListFilter{Limit: messagesLimit, Email: messagesEmail}
		if messagesSince > 0 {
			filter.Since = time.Now().Add(-messagesSince)
		}

		store := contact.NewStore(database)
		msgs, err := store.List(cmd.Context(), filter)
		if err != nil {
			return err
		}
		if len(msgs) == 0 {
			fmt.Fprintln(os.Stderr, "No messages.")
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "RECEIVED\tNAME\tEMAIL\tPHONE\tFORWARDED\tMESSAGE")
		for _, m := range msgs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%v\t%s\n",
				m.CreatedAt.Local().Format("2006-01-02 15:04"),
				m.Name, m.Email, m.Phone, m.Forwarded, summarize(m.Message, 60))
		}
		return tw.Flush()
	},
}

// summarize collapses whitespace and truncates s to n runes.
func summarize(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:max(n, 0)])
	}
	return string(r[:n-3]) + "..."
}

func init() {
	messagesCmd.Flags().IntVarP(&messagesLimit, "limit", "n", 20, "maximum number of messages")
	messagesCmd.Flags().DurationVar(&messagesSince, "since", 0, "only messages received within this duration (e.g. 24h)")
	messagesCmd.Flags().StringVar(&messagesEmail, "email", "", "only messages from this address")
	rootCmd.AddCommand(messagesCmd)
}
