package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDelCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "del <path>...",
		Short: "Delete a host definition or an empty group",
		Long: `Delete the host definition or empty group at <path>. Groups that still
contain entries are not deleted; remove their entries first.`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: a.completePath,
		RunE: func(cmd *cobra.Command, args []string) error {
			if isQuery(args) {
				return a.printCompletions(cmd, args)
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}

			path := pathFromArgs(args)
			if !yes && !confirm(cmd, fmt.Sprintf("Delete %s?", path)) {
				fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled.")
				return nil
			}
			if err := store.DeletePath(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")
	return cmd
}
