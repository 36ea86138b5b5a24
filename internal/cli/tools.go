package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/harun/toolshed/pkg/inventory"
	"github.com/harun/toolshed/pkg/store"
	"github.com/spf13/cobra"
)

func newShowCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one stored tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := sess.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			tool, err := st.Get(cmd.Context(), args[0])
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no tool with id %s", args[0])
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tool.Render())
			return nil
		},
	}
}

func newAddCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <quantity>",
		Short: "Add a tool to the end of the listing",
		Long: `Add a tool to the end of the listing and print its id.
Use "--" before a negative quantity.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantity must be a whole number, got %q", args[1])
			}

			st, err := sess.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			id, err := st.Add(cmd.Context(), inventory.NewTool(args[0], quantity, nil))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func newRemoveCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a stored tool",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := sess.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Remove(cmd.Context(), args[0]); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("no tool with id %s", args[0])
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}
