package cli

import (
	"fmt"

	"github.com/harun/toolshed/pkg/catalog"
	"github.com/spf13/cobra"
)

func newSeedCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace the stored tools with the sample tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := sess.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			ids, err := st.Replace(cmd.Context(), catalog.Sample())
			if err != nil {
				return fmt.Errorf("failed to seed tools: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d tools\n", len(ids))
			return nil
		},
	}
}

// catalogPathArg returns the file argument, falling back to catalog.path
func catalogPathArg(sess *session, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if sess.cfg.Catalog.Path != "" {
		return sess.cfg.Catalog.Path, nil
	}
	return "", fmt.Errorf("no catalog file given and catalog.path is not configured")
}

func newImportCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Replace the stored tools with a catalog file",
		Long: `Validate a JSON or YAML catalog file and replace the stored tools with its
contents. Nothing is changed if the file fails validation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := catalogPathArg(sess, args)
			if err != nil {
				return err
			}

			cat, err := catalog.NewLoader(sess.log.GetZerolog()).Load(path)
			if err != nil {
				return err
			}

			st, err := sess.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			ids, err := st.Replace(cmd.Context(), cat.Tools)
			if err != nil {
				return fmt.Errorf("failed to import tools: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tools from %s\n", len(ids), path)
			return nil
		},
	}
}

func newExportCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the stored tools to a catalog file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := catalogPathArg(sess, args)
			if err != nil {
				return err
			}

			st, err := sess.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			tools, err := st.Tools(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load tools: %w", err)
			}

			if err := catalog.NewLoader(sess.log.GetZerolog()).Save(path, tools); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tools to %s\n", len(tools), path)
			return nil
		},
	}
}
