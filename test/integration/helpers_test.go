//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runssh/runssh/internal/config"
	"github.com/runssh/runssh/internal/hoststore"
	"github.com/spf13/viper"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // RUNSSH_HOME: settings and the default store
	WorkDir string // scratch space for interchange files and scripts
}

// setupTestEnv creates isolated temp directories and points RUNSSH_HOME at
// one of them so settings and the default store are sandboxed.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
	}
	t.Setenv("RUNSSH_HOME", env.HomeDir)

	viper.Reset()
	t.Cleanup(viper.Reset)
	config.Load()

	return env
}

// openDefaultStore opens the store named by the loaded settings.
func openDefaultStore(t *testing.T) *hoststore.Store {
	t.Helper()
	s, err := hoststore.Open(config.StoreFile())
	if err != nil {
		t.Fatalf("Open(%s): %v", config.StoreFile(), err)
	}
	return s
}

func mustAdd(t *testing.T, s *hoststore.Store, name, host, login string, groups ...string) {
	t.Helper()
	if err := s.AddHostDef(hoststore.NewPath(groups...), name, &hoststore.HostDef{Name: host, Login: login}); err != nil {
		t.Fatalf("AddHostDef(%v, %s): %v", groups, name, err)
	}
}

func writeFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return data
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}
