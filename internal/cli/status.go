package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func newStatusCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show inventory status",
		Long:  `Show where toolshed keeps its data and how many tools are stored.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config: %s\n", sess.loader.GetConfigPath())
			fmt.Fprintf(out, "Database: %s\n", sess.cfg.Storage.Path)

			info, err := os.Stat(sess.cfg.Storage.Path)
			if os.IsNotExist(err) {
				fmt.Fprintln(out, "Tools: 0 (database not created yet)")
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to stat database: %w", err)
			}

			st, err := sess.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			entries, err := st.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load tools: %w", err)
			}

			fmt.Fprintf(out, "Tools: %d\n", len(entries))
			fmt.Fprintf(out, "Last change: %s ago\n", formatDuration(time.Since(info.ModTime())))
			return nil
		},
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%dm%ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
