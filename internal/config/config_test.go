package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// setupHome points RUNSSH_HOME at a temp dir and resets viper state.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("RUNSSH_HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

func TestDir_EnvOverride(t *testing.T) {
	t.Setenv("RUNSSH_HOME", "/tmp/test-runssh")
	if got := Dir(); got != "/tmp/test-runssh" {
		t.Errorf("Dir() = %s, want /tmp/test-runssh", got)
	}
}

func TestDir_Default(t *testing.T) {
	t.Setenv("RUNSSH_HOME", "")
	home, _ := os.UserHomeDir()
	want := filepath.Join(home, ".runssh")
	if got := Dir(); got != want {
		t.Errorf("Dir() = %s, want %s", got, want)
	}
}

func TestLoad_Defaults(t *testing.T) {
	home := setupHome(t)
	Load()

	if got, want := StoreFile(), filepath.Join(home, "hosts.db"); got != want {
		t.Errorf("StoreFile() = %s, want %s", got, want)
	}
	if got := LogLevel(); got != "warn" {
		t.Errorf("LogLevel() = %s, want warn", got)
	}
	if got := SSHCommand(); got != "ssh" {
		t.Errorf("SSHCommand() = %s, want ssh", got)
	}
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	setupHome(t)
	t.Setenv("RUNSSH_STORE_FILE", "/srv/hosts.db")
	Load()

	if got := StoreFile(); got != "/srv/hosts.db" {
		t.Errorf("StoreFile() = %s, want /srv/hosts.db", got)
	}
}

func TestSetPersists(t *testing.T) {
	home := setupHome(t)
	Load()

	if err := Set(KeySSHCommand, "/usr/local/bin/ssh"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(data), "/usr/local/bin/ssh") {
		t.Errorf("config file does not contain the new value:\n%s", data)
	}

	// A fresh load sees the saved value.
	viper.Reset()
	Load()
	if got := SSHCommand(); got != "/usr/local/bin/ssh" {
		t.Errorf("SSHCommand() after reload = %s", got)
	}
}

func TestSet_Rejects(t *testing.T) {
	setupHome(t)
	Load()

	tests := []struct {
		key, value string
	}{
		{"no_such_key", "x"},
		{KeyLogLevel, "loud"},
		{KeyStoreFile, "  "},
		{KeySSHCommand, ""},
	}
	for _, tt := range tests {
		if err := Set(tt.key, tt.value); err == nil {
			t.Errorf("Set(%q, %q) succeeded, want error", tt.key, tt.value)
		}
	}
}

func TestStoreFile_ExpandsHome(t *testing.T) {
	setupHome(t)
	Load()
	viper.Set(KeyStoreFile, "~/hosts.db")

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got, want := StoreFile(), filepath.Join(home, "hosts.db"); got != want {
		t.Errorf("StoreFile() = %s, want %s", got, want)
	}
}

func TestKeys(t *testing.T) {
	got := strings.Join(Keys(), ",")
	if got != "log_level,ssh_command,store_file" {
		t.Errorf("Keys() = %s", got)
	}
}
