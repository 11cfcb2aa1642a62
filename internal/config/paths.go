package config

import (
	"os"
	"path/filepath"
)

func ConfigRoot() string {
	// Windows
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, "dinodaily")
	}

	// Linux/macOS XDG
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dinodaily")
	}

	// Linux/macOS default
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "dinodaily")
}

func ConfigFile() string {
	return filepath.Join(ConfigRoot(), "config.yaml")
}

func EnsureConfigRoot() error {
	return os.MkdirAll(ConfigRoot(), 0755)
}
