package testutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/textboard/pkg/paths"
	"github.com/arthur-debert/textboard/pkg/testutil"
)

func TestNewTestEnvironment(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	p := paths.New()
	assert.Equal(t, env.ConfigDir, p.ConfigDir())
	assert.Equal(t, env.StateDir, p.StateDir())
	assert.Equal(t, env.LogFile(), p.LogFile())
	assert.Equal(t, env.HomeDir, os.Getenv("HOME"))
	assert.DirExists(t, env.ConfigDir)
	assert.DirExists(t, env.StateDir)
}

func TestWriteConfig(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	path := env.WriteConfig("config.yaml", "board:\n  rows: 4\n")
	assert.Equal(t, filepath.Join(env.ConfigDir, "config.yaml"), path)
	assert.Equal(t, path, paths.New().ConfigFile())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "board:\n  rows: 4\n", string(data))
}

func TestWriteFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	path := env.WriteFile("input/lines.txt", "a\nb\n")
	assert.Equal(t, filepath.Join(env.Root, "input", "lines.txt"), path)
	assert.FileExists(t, path)
}
