package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harun/toolshed/internal/config"
	"github.com/spf13/cobra"
)

func newConfigureCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Run interactive configuration wizard",
		Long: `Run an interactive configuration wizard to set up toolshed.
The wizard asks for the data directory, a default catalog file and logging options.`,
		Args: cobra.NoArgs,
		// The wizard writes the config, so an existing broken one must not block it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			sess.loader = config.NewLoader(cfgFile)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defaultDir := ".toolshed"
			if home, err := os.UserHomeDir(); err == nil {
				defaultDir = filepath.Join(home, ".toolshed")
			}

			wizard := config.NewWizard(cmd.InOrStdin(), cmd.OutOrStdout())
			cfg, err := wizard.Run(defaultDir)
			if err != nil {
				return fmt.Errorf("configuration failed: %w", err)
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			if err := sess.loader.Save(cfg); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nConfiguration saved to: %s\n", sess.loader.GetConfigPath())
			fmt.Fprintln(cmd.OutOrStdout(), "\nYou can now add tools with: toolshed seed")

			return nil
		},
	}
}
