// Package config provides internal configuration loading and processing.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/smykla-skalski/tsconfcheck/pkg/config"
)

var (
	// ErrConfigNotFound is returned when an explicitly requested configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidPermissions is returned when config file has insecure permissions.
	ErrInvalidPermissions = errors.New("config file has insecure permissions")
)

const (
	// EnvPrefix is the prefix of environment variables read as configuration.
	EnvPrefix = "TSCONFCHECK_"

	// GlobalConfigDir is the directory, relative to the home directory, of the global
	// configuration when XDG_CONFIG_HOME is not set.
	GlobalConfigDir = ".config/tsconfcheck"

	// GlobalConfigFile is the name of the global configuration file.
	GlobalConfigFile = "config.toml"

	// ProjectConfigFile is the name of the project configuration file.
	ProjectConfigFile = ".tsconfcheck.toml"
)

// envKeys maps the underscore form of every scalar configuration key to its path.
var envKeys = map[string]string{
	"rules_disabled":                "rules.disabled",
	"rules_recommended_when_absent": "rules.recommended.when_absent",
	"output_format":                 "output.format",
	"output_fail_on":                "output.fail_on",
	"output_color":                  "output.color",
	"log_level":                     "log.level",
}

const envSeverityPrefix = "rules_severity_"

// KoanfLoader handles configuration loading from multiple sources using koanf.
// Precedence order (highest to lowest):
// 1. CLI Flags
// 2. Environment Variables (TSCONFCHECK_*)
// 3. Project Config (.tsconfcheck.toml, or the file given with --config)
// 4. Global Config (~/.config/tsconfcheck/config.toml)
// 5. Defaults
type KoanfLoader struct {
	k          *koanf.Koanf
	workDir    string
	globalPath string
	tomlOpts   koanf.UnmarshalConf
	sources    []string
}

// NewKoanfLoader creates a new KoanfLoader reading the global config from the
// XDG config directory and the project config from the working directory.
func NewKoanfLoader() (*KoanfLoader, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get working directory")
	}

	l := NewKoanfLoaderWithDirs("", workDir)
	l.globalPath = DefaultGlobalConfigPath()

	return l, nil
}

// NewKoanfLoaderWithDirs creates a new KoanfLoader with custom directories (for testing).
func NewKoanfLoaderWithDirs(homeDir, workDir string) *KoanfLoader {
	return &KoanfLoader{
		k:          koanf.New("."),
		workDir:    workDir,
		globalPath: globalConfigPathIn(homeDir),
		tomlOpts: koanf.UnmarshalConf{
			Tag:       "koanf",
			FlatPaths: false,
		},
	}
}

// Load loads and validates configuration from all sources.
//
// explicitPath replaces the project config lookup when non-empty and must exist.
// Only flags that were changed on the command line are applied.
func (l *KoanfLoader) Load(explicitPath string, flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := l.LoadWithoutValidation(explicitPath, flags)
	if err != nil {
		return nil, err
	}

	if err := NewValidator().Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// LoadWithoutValidation loads configuration without running validation.
func (l *KoanfLoader) LoadWithoutValidation(explicitPath string, flags *pflag.FlagSet) (*config.Config, error) {
	// Reset koanf instance for fresh load
	l.k = koanf.New(".")
	l.sources = nil

	// 1. Defaults
	if err := l.k.Load(confmap.Provider(defaultsToMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	// 2. Global config
	if err := l.loadTOMLFile(l.GlobalConfigPath()); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load global config")
	}

	// 3. Project config, or the explicit file
	explicitPath, err := ExpandHome(explicitPath)
	if err != nil {
		return nil, err
	}

	if explicitPath != "" {
		if !fileExists(explicitPath) {
			return nil, errors.Wrapf(ErrConfigNotFound, "%s", explicitPath)
		}

		if err := l.loadTOMLFile(explicitPath); err != nil {
			return nil, errors.Wrap(err, "failed to load config")
		}
	} else if err := l.loadTOMLFile(l.ProjectConfigPath()); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load project config")
	}

	// 4. Environment variables: TSCONFCHECK_*
	envOpt := env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envTransform,
	}

	if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	// 5. CLI flags
	if flags != nil {
		if err := l.k.Load(posflag.ProviderWithFlag(flags, ".", l.k, flagTransform(flags)), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load flags")
		}
	}

	var cfg config.Config
	if err := l.k.UnmarshalWithConf("", &cfg, l.tomlOpts); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

// Sources returns the configuration files merged by the last load, lowest precedence first.
func (l *KoanfLoader) Sources() []string {
	return l.sources
}

// loadTOMLFile loads a TOML configuration file with security checks.
func (l *KoanfLoader) loadTOMLFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	// Security check: reject world-writable files
	if info.Mode().Perm()&0o002 != 0 {
		return errors.Wrapf(
			ErrInvalidPermissions,
			"%s is world-writable (mode: %s)",
			path,
			info.Mode().Perm(),
		)
	}

	if err := l.k.Load(file.Provider(path), tomlparser.Parser()); err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}

	l.sources = append(l.sources, path)

	return nil
}

// envTransform maps environment variable names to config paths.
// TSCONFCHECK_OUTPUT_FAIL_ON → output.fail_on
// TSCONFCHECK_RULES_SEVERITY_JS → rules.severity.js
// Unknown and empty variables are skipped.
func envTransform(key, value string) (string, any) {
	if value == "" {
		return "", nil
	}

	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))

	if family, ok := strings.CutPrefix(key, envSeverityPrefix); ok && family != "" {
		return "rules.severity." + family, value
	}

	path, ok := envKeys[key]
	if !ok {
		return "", nil
	}

	if path == "rules.disabled" {
		return path, splitList(value)
	}

	return path, value
}

// flagTransform maps changed CLI flags to config paths.
func flagTransform(flags *pflag.FlagSet) func(*pflag.Flag) (string, any) {
	return func(f *pflag.Flag) (string, any) {
		if !f.Changed {
			return "", nil
		}

		switch f.Name {
		case "format":
			return "output.format", posflag.FlagVal(flags, f)
		case "fail-on":
			return "output.fail_on", posflag.FlagVal(flags, f)
		case "disable":
			return "rules.disabled", posflag.FlagVal(flags, f)
		case "recommend-absent":
			return "rules.recommended.when_absent", posflag.FlagVal(flags, f)
		case "no-color":
			if noColor, _ := flags.GetBool(f.Name); noColor {
				return "output.color", false
			}
		case "debug":
			if debug, _ := flags.GetBool(f.Name); debug {
				return "log.level", "debug"
			}
		}

		return "", nil
	}
}

func splitList(value string) []string {
	var items []string

	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}

// GlobalConfigPath returns the path to the global configuration file.
func (l *KoanfLoader) GlobalConfigPath() string {
	return l.globalPath
}

// ProjectConfigPath returns the path to the project configuration file.
func (l *KoanfLoader) ProjectConfigPath() string {
	return filepath.Join(l.workDir, ProjectConfigFile)
}

// HasProjectConfig checks if a project configuration file exists.
func (l *KoanfLoader) HasProjectConfig() bool {
	return fileExists(l.ProjectConfigPath())
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}
