package cli

import (
	"fmt"

	"github.com/runssh/runssh/internal/hoststore"
	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		hostName string
		login    string
		update   bool
	)

	cmd := &cobra.Command{
		Use:   "add <path>...",
		Short: "Add or update a host definition",
		Long: `Store a host definition at <path>. The last path segment is the entry name;
missing groups before it are created.

Adding refuses to overwrite an existing entry. Use --update to replace an
existing host definition instead.`,
		Example: `  runssh add client dc1 web -n web01.example.com -l deploy
  runssh add client dc1 web -n web02.example.com --update`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: a.completePath,
		RunE: func(cmd *cobra.Command, args []string) error {
			if isQuery(args) {
				return a.printCompletions(cmd, args)
			}
			// Checked here rather than with MarkFlagRequired so that a
			// trailing "?" query works without --name.
			if hostName == "" {
				return fmt.Errorf("required flag \"name\" not set")
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}

			path := pathFromArgs(args)
			rec := &hoststore.HostDef{Name: hostName, Login: login}
			if update {
				if err := store.UpdateHostDef(path, rec); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", path)
				return nil
			}

			prefix, entry, _ := path.Split()
			if err := store.AddHostDef(prefix, entry, rec); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&hostName, "name", "n", "", "Host name or address to connect to (required)")
	cmd.Flags().StringVarP(&login, "login", "l", "", "Login name for the host")
	cmd.Flags().BoolVar(&update, "update", false, "Replace an existing host definition")
	return cmd
}
