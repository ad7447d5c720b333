// Package cli defines the Cobra command tree for the runssh CLI. Each file
// in this package builds one top-level command (shell, add, del, etc.) and
// registers it with the root command. Command implementations delegate to
// hoststore for the host tree and only handle path arguments, prompts, and
// output formatting.
package cli
