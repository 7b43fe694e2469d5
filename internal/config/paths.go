package config

import (
	"os"
	"path/filepath"
)

const defaultBaseDir = ".storebuilder"

// Paths holds resolved filesystem paths for storebuilder data.
type Paths struct {
	Base     string // ~/.storebuilder
	Config   string // ~/.storebuilder/config.yaml
	Database string // ~/.storebuilder/agents.db
}

// ResolvePaths computes all standard paths from the home directory.
// If STOREBUILDER_HOME is set, it overrides the default base directory.
func ResolvePaths() (Paths, error) {
	base := os.Getenv("STOREBUILDER_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, err
		}
		base = filepath.Join(home, defaultBaseDir)
	}

	return Paths{
		Base:     base,
		Config:   filepath.Join(base, "config.yaml"),
		Database: filepath.Join(base, "agents.db"),
	}, nil
}

// EnsureDirs creates the base directory if it doesn't exist.
func (p Paths) EnsureDirs() error {
	return os.MkdirAll(p.Base, 0o700)
}
