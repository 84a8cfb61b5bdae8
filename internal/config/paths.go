package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for devstart.
type Paths struct {
	// ConfigFile is the path to the defaults file (~/.devstart/config.yaml).
	ConfigFile string

	// HomeDir is the devstart home directory (~/.devstart).
	HomeDir string
}

// DefaultPaths returns the default paths for devstart.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	devstartHome := filepath.Join(homeDir, ".devstart")

	return &Paths{
		ConfigFile: filepath.Join(devstartHome, "config.yaml"),
		HomeDir:    devstartHome,
	}, nil
}

// GetConfigFile returns the defaults file path.
// If DEVSTART_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("DEVSTART_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}
