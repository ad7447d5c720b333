package cli

import (
	"fmt"

	"github.com/runssh/runssh/internal/branding"
	"github.com/runssh/runssh/internal/config"
	"github.com/runssh/runssh/internal/hoststore"
	"github.com/runssh/runssh/internal/launcher"
	"github.com/runssh/runssh/internal/logging"
	"github.com/spf13/cobra"
)

const subsystem = "CLI"

func init() {
	// Allow unambiguous abbreviations such as "sh" for shell or "d" for del.
	cobra.EnablePrefixMatching = true
}

// buildInfo is injected via ldflags at build time.
type buildInfo struct {
	version string
	commit  string
	date    string
}

// app carries the state shared by every command of one invocation.
type app struct {
	build buildInfo

	// storeFile is set by --config-file and overrides the store_file setting.
	storeFile string
	logLevel  string

	// launcher overrides the ssh client built from settings.
	launcher launcher.Launcher
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` keeps ssh host definitions in a tree of named groups and
opens sessions to them by path, for example:

  ` + branding.CLIName() + ` shell client dc1 web

Path arguments are space separated group names ending with the entry name.
End a command line with "?" to list the entries available at that point.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.storeFile, "config-file", "f", "", "Host store file (default from settings, ~/."+branding.CLIName()+"/hosts.db)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	cmd.AddCommand(
		newShellCmd(a),
		newAddCmd(a),
		newDelCmd(a),
		newPrintCmd(a),
		newImportCmd(a),
		newExportCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	return cmd
}

// setup loads settings and configures logging before any command runs.
func (a *app) setup(cmd *cobra.Command) error {
	config.Load()

	name := a.logLevel
	if name == "" {
		name = config.LogLevel()
	}
	level, err := logging.ParseLevel(name)
	if err != nil {
		return err
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())
	logging.Debug(subsystem, "running %s", cmd.CommandPath())
	return nil
}

// openStore opens the host store named by --config-file or the settings.
func (a *app) openStore() (*hoststore.Store, error) {
	file := a.storeFile
	if file == "" {
		config.Load()
		file = config.StoreFile()
	}
	store, err := hoststore.Open(file)
	if err != nil {
		return nil, fmt.Errorf("opening host store: %w", err)
	}
	return store, nil
}

// sessionLauncher returns the launcher used by the shell command.
func (a *app) sessionLauncher(cmd *cobra.Command) launcher.Launcher {
	if a.launcher != nil {
		return a.launcher
	}
	return &launcher.SSH{
		Command: config.SSHCommand(),
		Stdin:   cmd.InOrStdin(),
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
	}
}

// Execute runs the root command with build info injected via ldflags. Errors
// are printed to stderr before being returned.
func Execute(version, commit, date string) error {
	cmd := newRootCmd(&app{build: buildInfo{version: version, commit: commit, date: date}})
	err := cmd.Execute()
	if err != nil {
		printError(cmd.ErrOrStderr(), err)
	}
	return err
}
