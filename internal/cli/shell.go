package cli

import (
	"github.com/runssh/runssh/internal/launcher"
	"github.com/runssh/runssh/internal/logging"
	"github.com/spf13/cobra"
)

func newShellCmd(a *app) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "shell <path>...",
		Short: "Open an ssh session to a host definition",
		Long: `Look up the host definition at <path> and run ssh against it.

The session uses the stored login unless --user is given. The command exits
with the status of the ssh client.`,
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
			host, err := store.GetHostDef(path)
			if err != nil {
				return err
			}

			target := launcher.Target{Host: host.Name, Login: host.Login}
			if user != "" {
				target.Login = user
			}
			logging.Debug(subsystem, "opening session to %s for %s", target, path)
			return a.sessionLauncher(cmd).Launch(cmd.Context(), target)
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "Login to use instead of the stored one")
	return cmd
}
