package cli

import (
	"fmt"

	"github.com/harun/toolshed/pkg/catalog"
	"github.com/harun/toolshed/pkg/inventory"
	"github.com/spf13/cobra"
)

func newListCmd(sess *session) *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the tool listing",
		Long: `Print the tool listing for every stored tool, in the order they were added.
With --catalog the listing is built from a catalog file instead of the database.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var lib *inventory.ToolLibrary
			if catalogPath != "" {
				cat, err := catalog.NewLoader(sess.log.GetZerolog()).Load(catalogPath)
				if err != nil {
					return err
				}
				lib = cat.Library()
			} else {
				st, err := sess.openStore(cmd.Context())
				if err != nil {
					return err
				}
				defer st.Close()

				lib, err = st.Library(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to load tools: %w", err)
				}
			}

			sess.log.Debug().Int("tools", lib.Len()).Msg("Rendering tool listing")
			fmt.Fprintln(cmd.OutOrStdout(), lib.List())
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "list tools from a catalog file instead of the database")
	return cmd
}
