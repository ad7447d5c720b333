package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/runssh/runssh/internal/hoststore"
	"github.com/spf13/cobra"
)

func newPrintCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "print <path>...",
		Short: "Print host definitions",
		Long: `Print the host definition at <path>.

With --all, print every host definition at or below <path> as a table. An
empty path with --all prints the whole store.`,
		ValidArgsFunction: a.completePath,
		RunE: func(cmd *cobra.Command, args []string) error {
			if isQuery(args) {
				return a.printCompletions(cmd, args)
			}
			path := pathFromArgs(args)
			if !all && path.IsRoot() {
				return fmt.Errorf("requires a path, or --all")
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}

			if !all {
				host, err := store.GetHostDef(path)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Host:  %s\n", host.Name)
				fmt.Fprintf(out, "Login: %s\n", host.Login)
				return nil
			}

			return printAll(cmd, store, path)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Print every host definition below the path")
	return cmd
}

// printAll renders the host definitions below path as a table.
func printAll(cmd *cobra.Command, store *hoststore.Store, path hoststore.Path) error {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"PATH", "HOST", "LOGIN"})

	count := 0
	err := store.Walk(path, func(p hoststore.Path, h hoststore.HostDef) error {
		t.AppendRow(table.Row{p.String(), h.Name, h.Login})
		count++
		return nil
	})
	if err != nil {
		return err
	}

	if count == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No host definitions found.")
		return nil
	}
	t.Render()
	fmt.Fprintf(cmd.OutOrStdout(), "Total: %d\n", count)
	return nil
}
