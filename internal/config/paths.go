package config

import (
	"os"
	"path/filepath"
)

// GetHomeDir returns the user's home directory.
// It's a variable to allow overriding in tests.
var GetHomeDir = os.UserHomeDir

// ConfigSearchPaths lists the directories searched for .roadmapper.yaml, in
// order: the working directory, then $HOME.
func ConfigSearchPaths() []string {
	paths := []string{"."}
	if home, err := GetHomeDir(); err == nil && home != "" {
		paths = append(paths, home)
	}
	return paths
}

// DefaultLogFile returns the log path used when log.file is unset.
func DefaultLogFile() string {
	return filepath.Join(os.TempDir(), DefaultLogFileName)
}
