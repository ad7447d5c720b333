package cli

import (
	"fmt"
	"strings"

	"github.com/runssh/runssh/internal/hoststore"
	"github.com/spf13/cobra"
)

// queryArg ends a command line that asks for completions instead of running.
const queryArg = "?"

// pathFromArgs builds a store path from space separated segments.
func pathFromArgs(args []string) hoststore.Path {
	return hoststore.NewPath(args...)
}

// isQuery reports whether the last argument is the completion query marker.
func isQuery(args []string) bool {
	return len(args) > 0 && args[len(args)-1] == queryArg
}

// printCompletions lists the entries below the path given by args, minus
// the trailing query marker.
func (a *app) printCompletions(cmd *cobra.Command, args []string) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	keys, err := store.ListChildren(pathFromArgs(args[:len(args)-1]))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, k := range keys {
		fmt.Fprintln(out, k)
	}
	return nil
}

// completePath is the ValidArgsFunction shared by path-taking commands.
func (a *app) completePath(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	store, err := a.openStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	keys, err := store.ListChildren(pathFromArgs(args))
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, k := range keys {
		if strings.HasPrefix(k, toComplete) {
			out = append(out, k)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
