package cli

import (
	"fmt"
	"os"

	"github.com/runssh/runssh/internal/hoststore"
	"github.com/runssh/runssh/internal/schema"
	"github.com/spf13/cobra"
)

func newImportCmd(a *app) *cobra.Command {
	var (
		yes    bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the store with a YAML file",
		Long: `Replace every host definition in the store with the tree in <file>.
Nothing is merged. The previous store is kept in the backup file.

Use --dry-run to validate <file> without changing the store.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]

			if dryRun {
				data, err := os.ReadFile(src)
				if err != nil {
					return fmt.Errorf("reading import %s: %w", src, err)
				}
				root, err := hoststore.UnmarshalYAML(data)
				if err != nil {
					if hoststore.IsKind(err, hoststore.InvalidRecord) {
						printIssues(cmd, src)
					}
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d host definitions\n", src, countHosts(root))
				return nil
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			if !yes && !confirm(cmd, fmt.Sprintf("Replace all host definitions with %s?", src)) {
				fmt.Fprintln(cmd.OutOrStdout(), "Import cancelled.")
				return nil
			}
			if err := store.ImportFrom(src); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d host definitions from %s\n", countHosts(store.Root()), src)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the file without importing it")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the store to a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			if err := store.ExportTo(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d host definitions to %s\n", countHosts(store.Root()), args[0])
			return nil
		},
	}
}

// printIssues lists schema violations in src one per line on stderr.
func printIssues(cmd *cobra.Command, src string) {
	result, err := schema.ValidateFile(src)
	if err != nil || result.Valid {
		return
	}
	for _, issue := range result.Issues {
		fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", issue)
	}
}

func countHosts(g *hoststore.Group) int {
	n := 0
	for _, k := range g.Keys() {
		child, _ := g.Get(k)
		switch c := child.(type) {
		case *hoststore.HostDef:
			n++
		case *hoststore.Group:
			n += countHosts(c)
		}
	}
	return n
}
