package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for velac.
type Paths struct {
	// ConfigFile is the path to the config file
	// (~/.config/velac/config.yaml on Linux).
	ConfigFile string

	// ConfigDir is the velac configuration directory
	// (~/.config/velac on Linux).
	ConfigDir string
}

// DefaultPaths returns the default paths for velac.
func DefaultPaths() (*Paths, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(base, "velac")

	return &Paths{
		ConfigFile: filepath.Join(dir, "config.yaml"),
		ConfigDir:  dir,
	}, nil
}

// GetConfigFile returns the config file path.
// If VELAC_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("VELAC_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// EnsureConfigDir creates the velac configuration directory if it
// doesn't exist.
func EnsureConfigDir() error {
	paths, err := DefaultPaths()
	if err != nil {
		return err
	}

	return os.MkdirAll(paths.ConfigDir, 0o755)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported, return as-is.
	return path, nil
}
