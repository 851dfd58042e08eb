package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInvalidPath is returned for a config path using an unsupported ~ form.
var ErrInvalidPath = errors.New("invalid config path")

// DefaultGlobalConfigPath returns the global configuration file inside
// $XDG_CONFIG_HOME, or inside ~/.config when the variable is unset.
func DefaultGlobalConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, filepath.Base(GlobalConfigDir), GlobalConfigFile)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "~"
	}

	return globalConfigPathIn(home)
}

func globalConfigPathIn(home string) string {
	return filepath.Join(home, filepath.FromSlash(GlobalConfigDir), GlobalConfigFile)
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
// "~user" forms are rejected.
func ExpandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok {
		return path, nil
	}

	if rest != "" && !strings.HasPrefix(rest, "/") {
		return "", errors.Wrapf(ErrInvalidPath, "%q: only ~ and ~/ are expanded", path)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}

	return filepath.Join(home, rest), nil
}
