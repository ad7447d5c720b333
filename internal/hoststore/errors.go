package hoststore

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ConfigError.
type ErrorKind int

const (
	InvalidRecord ErrorKind = iota + 1
	PathConflict
	DuplicateEntry
	InvalidPath
	NotFound
	TypeConflict
	NotAHost
	NonEmptyGroup
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case InvalidRecord:
		return "InvalidRecord"
	case PathConflict:
		return "PathConflict"
	case DuplicateEntry:
		return "DuplicateEntry"
	case InvalidPath:
		return "InvalidPath"
	case NotFound:
		return "NotFound"
	case TypeConflict:
		return "TypeConflict"
	case NotAHost:
		return "NotAHost"
	case NonEmptyGroup:
		return "NonEmptyGroup"
	default:
		return "Unknown"
	}
}

// ConfigError is returned for every rule the store refuses to break. The tree
// is left unchanged when one is returned.
type ConfigError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string { return e.Message }

func newError(kind ErrorKind, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err wraps a ConfigError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ce *ConfigError
	return errors.As(err, &ce) && ce.Kind == kind
}
