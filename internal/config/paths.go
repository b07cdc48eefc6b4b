package config

import (
	"errors"
	"os"
	"path/filepath"
)

const appName = "evangelio"

var ErrNoConfig = errors.New("no config file")

func ConfigRoot() string {
	// Windows
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, appName)
	}

	// Linux/macOS XDG
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	// Linux/macOS default
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

func ConfigPath() string {
	return filepath.Join(ConfigRoot(), "config.yaml")
}

// ActiveConfigPath returns the config file in use, or ErrNoConfig when none
// has been created yet.
func ActiveConfigPath() (string, error) {
	path := ConfigPath()
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoConfig
		}
		return "", err
	}

	return path, nil
}

func InitDefaultConfig() (string, error) {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err == nil {
		return path, os.ErrExist
	}

	if err := SaveYAML(DefaultConfig(), path); err != nil {
		return "", err
	}

	return path, nil
}
