package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/textboard/pkg/paths"
)

// TestEnvironment points every textboard directory into a temp dir
type TestEnvironment struct {
	Root      string
	HomeDir   string
	ConfigDir string
	StateDir  string

	t *testing.T
}

// NewTestEnvironment creates the directories and sets the environment so
// paths.New resolves into them. The environment is restored when the test
// ends.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:    root,
		HomeDir: filepath.Join(root, "home"),
		t:       t,
	}

	xdgConfig := filepath.Join(root, "config")
	xdgState := filepath.Join(root, "state")
	env.ConfigDir = filepath.Join(xdgConfig, paths.AppName)
	env.StateDir = filepath.Join(xdgState, paths.AppName)

	for _, dir := range []string{env.HomeDir, env.ConfigDir, env.StateDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	t.Setenv(paths.EnvHome, env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", xdgConfig)
	t.Setenv("XDG_STATE_HOME", xdgState)
	t.Setenv(paths.EnvConfigDir, "")
	t.Setenv(paths.EnvStateDir, "")

	return env
}

// WriteConfig writes a user config file named name (config.toml,
// config.yaml) and returns its path
func (e *TestEnvironment) WriteConfig(name, content string) string {
	e.t.Helper()
	return e.writeFile(filepath.Join(e.ConfigDir, name), content)
}

// WriteFile writes content under Root and returns the full path
func (e *TestEnvironment) WriteFile(rel, content string) string {
	e.t.Helper()
	return e.writeFile(filepath.Join(e.Root, rel), content)
}

func (e *TestEnvironment) writeFile(path, content string) string {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// LogFile returns the log file the environment routes logging to
func (e *TestEnvironment) LogFile() string {
	return filepath.Join(e.StateDir, paths.LogFile)
}
