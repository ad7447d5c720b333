// Package config manages user-level settings stored at ~/.runssh/config.yaml.
// Settings can be overridden with RUNSSH_* environment variables. It also
// resolves the default location of the host store, so the store itself never
// consults the environment.
package config
