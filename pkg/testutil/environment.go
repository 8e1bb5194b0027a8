package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/capstyle/pkg/paths"
)

// envPrefix matches config.EnvPrefix. config's own tests use this
// package, so it cannot be imported here.
const envPrefix = "CAPSTYLE_"

// TestEnvironment isolates a test from the user's configuration, log
// files and colour related environment
type TestEnvironment struct {
	ConfigDir string
	StateDir  string

	t *testing.T
}

// NewTestEnvironment points the config and state directories at
// temporary directories and clears variables that change styling
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	for _, kv := range os.Environ() {
		if name, _, _ := strings.Cut(kv, "="); strings.HasPrefix(name, envPrefix) {
			t.Setenv(name, "")
			_ = os.Unsetenv(name)
		}
	}

	env := &TestEnvironment{
		ConfigDir: t.TempDir(),
		StateDir:  t.TempDir(),
		t:         t,
	}
	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvStateDir, env.StateDir)
	t.Setenv("COLORTERM", "")
	t.Setenv("NO_COLOR", "")
	return env
}

// ConfigFile returns where the user config file is looked up
func (e *TestEnvironment) ConfigFile() string {
	return filepath.Join(e.ConfigDir, paths.ConfigFileName)
}

// WriteConfig creates the user config file with content
func (e *TestEnvironment) WriteConfig(content string) string {
	e.t.Helper()
	path := e.ConfigFile()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("failed to write config: %v", err)
	}
	return path
}
