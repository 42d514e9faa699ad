// Package paths resolves where textboard keeps its files. It follows the
// XDG Base Directory layout, with per-directory environment overrides.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the config directory
	EnvConfigDir = "TEXTBOARD_CONFIG_DIR"

	// EnvStateDir overrides the state directory, where logs go
	EnvStateDir = "TEXTBOARD_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed names
const (
	// AppName names the application directories
	AppName = "textboard"

	// ConfigFile is the user config file, looked up in ConfigDir
	ConfigFile = "config.toml"

	// LogFile is the log file, written in StateDir
	LogFile = AppName + ".log"
)

// yamlConfigFiles are accepted when no ConfigFile exists
var yamlConfigFiles = []string{"config.yaml", "config.yml"}

// Paths holds the resolved directories
type Paths struct {
	configDir string
	stateDir  string
}

// New resolves the directories from the environment. Each directory comes
// from its TEXTBOARD_ override, else the XDG variable, else the XDG default.
func New() *Paths {
	return &Paths{
		configDir: resolve(EnvConfigDir, "XDG_CONFIG_HOME", xdg.ConfigHome),
		stateDir:  resolve(EnvStateDir, "XDG_STATE_HOME", xdg.StateHome),
	}
}

func resolve(override, xdgEnv, xdgDefault string) string {
	if dir := os.Getenv(override); dir != "" {
		return ExpandHome(dir)
	}
	base := os.Getenv(xdgEnv)
	if base == "" {
		base = xdgDefault
	}
	return filepath.Join(ExpandHome(base), AppName)
}

// ConfigDir returns the config directory
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// StateDir returns the state directory
func (p *Paths) StateDir() string {
	return p.stateDir
}

// ConfigFile returns the user config file. config.toml wins; a YAML file
// is used only when it is the one present.
func (p *Paths) ConfigFile() string {
	toml := filepath.Join(p.configDir, ConfigFile)
	if fileExists(toml) {
		return toml
	}
	for _, name := range yamlConfigFiles {
		path := filepath.Join(p.configDir, name)
		if fileExists(path) {
			return path
		}
	}
	return toml
}

// LogFile returns the log file path
func (p *Paths) LogFile() string {
	return filepath.Join(p.stateDir, LogFile)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	if len(path) > 1 && path[1] != '/' && path[1] != filepath.Separator {
		// ~user is not supported
		return path
	}

	home := os.Getenv(EnvHome)
	if home == "" {
		var err error
		if home, err = os.UserHomeDir(); err != nil {
			return path
		}
	}
	if len(path) == 1 {
		return home
	}
	return filepath.Join(home, path[2:])
}

// FileExists reports whether path is an existing regular file
func FileExists(path string) bool {
	return fileExists(path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
