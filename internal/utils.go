package internal

import (
	"os"
	"path/filepath"
)

// AppName names the config file, state directory and env prefix
const AppName = "phonikud"

// StateDir returns the directory for persistent state, following the XDG
// state home layout: $XDG_STATE_HOME/phonikud or ~/.local/state/phonikud.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+AppName)
	}
	return filepath.Join(home, ".local", "state", AppName)
}

// DefaultStorePath returns the default history database location
func DefaultStorePath() string {
	return filepath.Join(StateDir(), "history.db")
}
