package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/runssh/runssh/internal/logging"
)

// DefaultCommand is the ssh client used when none is configured.
const DefaultCommand = "ssh"

// SSH launches sessions by running an OpenSSH-compatible client.
type SSH struct {
	// Command is the client binary name or path; defaults to DefaultCommand.
	Command string
	// ExtraArgs are passed before the login and host arguments.
	ExtraArgs []string

	// Stdin, Stdout and Stderr default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Args returns the client arguments for target.
func (s *SSH) Args(target Target) []string {
	args := append([]string(nil), s.ExtraArgs...)
	if target.Login != "" {
		args = append(args, "-l", target.Login)
	}
	return append(args, target.Host)
}

// Launch runs the ssh client attached to the configured streams. A non-zero
// exit status is returned as *ExitError.
func (s *SSH) Launch(ctx context.Context, target Target) error {
	if target.Host == "" {
		return fmt.Errorf("target host is empty")
	}

	command := s.Command
	if command == "" {
		command = DefaultCommand
	}
	bin, err := exec.LookPath(command)
	if err != nil {
		return fmt.Errorf("ssh client %q not found: %w", command, err)
	}

	cmd := exec.CommandContext(ctx, bin, s.Args(target)...)
	cmd.Stdin = s.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = s.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = s.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	logging.Debug("Launcher", "running %s %v", bin, cmd.Args[1:])

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitStatus(exitErr)
			// ssh reserves 255 for its own failures.
			if code == 255 {
				logging.Warn("Launcher", "%s could not reach %s", command, target)
			}
			return &ExitError{Code: code}
		}
		return fmt.Errorf("running %s: %w", command, err)
	}
	return nil
}

// exitStatus returns the client's exit code, or 128+signal when it was
// killed by a signal. The result is always at least 1.
func exitStatus(exitErr *exec.ExitError) int {
	if code := exitErr.ExitCode(); code > 0 {
		return code
	}
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return 1
}
