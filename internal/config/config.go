package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/runssh/runssh/internal/branding"
	"github.com/runssh/runssh/internal/logging"
	"github.com/runssh/runssh/internal/platform"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"

	// DefaultStoreFileName is the store file created inside Dir().
	DefaultStoreFileName = "hosts.db"
)

// Setting keys.
const (
	KeyStoreFile  = "store_file"
	KeyLogLevel   = "log_level"
	KeySSHCommand = "ssh_command"
)

// knownKeys maps each setting to a validator for values passed to Set.
var knownKeys = map[string]func(string) error{
	KeyStoreFile: func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("store file cannot be empty")
		}
		return nil
	},
	KeyLogLevel: func(v string) error {
		_, err := logging.ParseLevel(v)
		return err
	},
	KeySSHCommand: func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("ssh command cannot be empty")
		}
		return nil
	},
}

// Keys returns the supported setting keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Dir returns the runssh settings directory. RUNSSH_HOME overrides the
// default of ~/.runssh.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the settings file (~/.runssh/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the settings directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, platform.DirPermSecure); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the settings file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyStoreFile, filepath.Join(Dir(), DefaultStoreFileName))
	viper.SetDefault(KeyLogLevel, "warn")
	viper.SetDefault(KeySSHCommand, "ssh")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a setting by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set validates and writes a setting, then saves the settings file.
func Set(key, value string) error {
	validate, ok := knownKeys[key]
	if !ok {
		return fmt.Errorf("unknown setting %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := validate(value); err != nil {
		return err
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.OpenFile(configFile, os.O_CREATE|os.O_WRONLY, platform.FilePermSecure)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// StoreFile returns the configured host store location with a leading ~
// expanded to the home directory.
func StoreFile() string {
	return expandHome(viper.GetString(KeyStoreFile))
}

// LogLevel returns the configured log level name.
func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}

// SSHCommand returns the configured ssh client.
func SSHCommand() string {
	return viper.GetString(KeySSHCommand)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
