package launcher

import (
	"context"
	"fmt"
)

// Target identifies the remote end of a session.
type Target struct {
	Host  string
	Login string
}

// String renders the target as login@host, or just host without a login.
func (t Target) String() string {
	if t.Login == "" {
		return t.Host
	}
	return t.Login + "@" + t.Host
}

// Launcher opens a session to a target and blocks until it ends.
type Launcher interface {
	Launch(ctx context.Context, target Target) error
}

// ExitError reports a session that ended with a non-zero exit status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("remote session exited with status %d", e.Code)
}
