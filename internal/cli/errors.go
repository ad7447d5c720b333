package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/runssh/runssh/internal/hoststore"
	"github.com/runssh/runssh/internal/launcher"
)

// ExitCode maps an Execute error to a process exit status. A session that
// ended with a non-zero status passes that status through.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *launcher.ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return 1
}

// printError writes err to w, in red when w is a terminal. Store errors are
// printed as their bare message. Remote exit statuses are not printed; ssh
// has already reported them.
func printError(w io.Writer, err error) {
	var exitErr *launcher.ExitError
	if errors.As(err, &exitErr) {
		return
	}

	msg := err.Error()
	var ce *hoststore.ConfigError
	if errors.As(err, &ce) {
		msg = ce.Message
	}

	c := color.New(color.FgRed)
	if isTerminal(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	fmt.Fprintln(w, c.Sprint("Error: "+msg))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
