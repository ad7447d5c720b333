// Package platform provides cross-platform filesystem operations used by the
// host store: permission management, verbatim file copies for backups, and
// atomic file replacement. On Windows, permission changes are a no-op.
package platform
