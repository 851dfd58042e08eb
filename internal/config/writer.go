package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/smykla-skalski/tsconfcheck/internal/schema"
	"github.com/smykla-skalski/tsconfcheck/pkg/config"
)

const (
	// ConfigFileMode is the file mode for configuration files.
	ConfigFileMode = 0o644

	// ConfigDirMode is the file mode for configuration directories.
	ConfigDirMode = 0o755
)

// ErrConfigExists is returned when writing would overwrite an existing file.
var ErrConfigExists = errors.New("configuration file already exists")

// Writer handles writing configuration to TOML files.
type Writer struct {
	// workDir is the directory holding the project config.
	workDir string

	// globalPath is the global config file.
	globalPath string
}

// NewWriter creates a new Writer for the working directory and the XDG config directory.
func NewWriter() (*Writer, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get working directory")
	}

	return &Writer{
		workDir:    workDir,
		globalPath: DefaultGlobalConfigPath(),
	}, nil
}

// NewWriterWithDirs creates a new Writer with custom directories.
func NewWriterWithDirs(homeDir, workDir string) *Writer {
	return &Writer{
		workDir:    workDir,
		globalPath: globalConfigPathIn(homeDir),
	}
}

// ProjectConfigPath returns the path WriteProject writes to.
func (w *Writer) ProjectConfigPath() string {
	return filepath.Join(w.workDir, ProjectConfigFile)
}

// GlobalConfigPath returns the path WriteGlobal writes to.
func (w *Writer) GlobalConfigPath() string {
	return w.globalPath
}

// WriteProject writes the configuration to the project config file.
func (w *Writer) WriteProject(cfg *config.Config, force bool) error {
	return w.WriteFile(w.ProjectConfigPath(), cfg, force)
}

// WriteGlobal writes the configuration to the global config file.
func (w *Writer) WriteGlobal(cfg *config.Config, force bool) error {
	return w.WriteFile(w.GlobalConfigPath(), cfg, force)
}

// WriteFile writes the configuration to the given path.
// An existing file is only replaced when force is set.
func (*Writer) WriteFile(path string, cfg *config.Config, force bool) error {
	if cfg == nil {
		return errors.Wrap(ErrInvalidConfig, "config is nil")
	}

	if !force && fileExists(path) {
		return errors.Wrapf(ErrConfigExists, "%s", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, ConfigDirMode); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	data, err := Encode(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, ConfigFileMode); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}

	return nil
}

// Encode renders cfg as TOML, prefixed with the schema directive.
func Encode(cfg *config.Config) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(schema.SchemaDirective())
	buf.WriteByte('\n')

	encoder := toml.NewEncoder(&buf)
	encoder.SetIndentTables(true)

	if err := encoder.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to encode config to TOML")
	}

	return buf.Bytes(), nil
}
