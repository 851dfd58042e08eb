// Package config provides configuration schema types for tsconfcheck.
package config

import (
	"github.com/invopop/jsonschema"
)

// Config represents the root configuration for tsconfcheck.
type Config struct {
	// Rules controls which rule families run and how they report.
	Rules *RulesConfig `json:"rules,omitempty" koanf:"rules" toml:"rules,omitempty"`

	// Output controls how results are reported.
	Output *OutputConfig `json:"output,omitempty" koanf:"output" toml:"output,omitempty"`

	// Log controls diagnostic logging to stderr.
	Log *LogConfig `json:"log,omitempty" koanf:"log" toml:"log,omitempty"`
}

// RulesConfig controls the rule families.
type RulesConfig struct {
	// Disabled lists rule families that do not run.
	Disabled []string `json:"disabled,omitempty" koanf:"disabled" toml:"disabled,omitempty"`

	// Severity overrides the severity of a family's diagnostics (family -> advisory|warning).
	Severity map[string]string `json:"severity,omitempty" koanf:"severity" toml:"severity,omitempty"`

	// Recommended configures the recommended-options family.
	Recommended *RecommendedConfig `json:"recommended,omitempty" koanf:"recommended" toml:"recommended,omitempty"`
}

// RecommendedConfig configures the recommended-options family.
type RecommendedConfig struct {
	// WhenAbsent also reports recommended options that are not set at all.
	// Default: false (only explicit false is reported)
	WhenAbsent *bool `json:"when_absent,omitempty" koanf:"when_absent" toml:"when_absent,omitempty"`
}

// OutputConfig controls reporting.
type OutputConfig struct {
	// Format selects the reporter.
	// Default: "text"
	Format Format `json:"format,omitempty" koanf:"format" toml:"format,omitempty"`

	// FailOn is the lowest severity that makes the run fail.
	// Default: "warning"
	FailOn FailOn `json:"fail_on,omitempty" koanf:"fail_on" toml:"fail_on,omitempty"`

	// Color enables coloured output when the terminal supports it.
	// Default: true
	Color *bool `json:"color,omitempty" koanf:"color" toml:"color,omitempty"`
}

// LogConfig controls logging.
type LogConfig struct {
	// Level is the lowest level logged to stderr (debug, info, error).
	// Default: "error"
	Level string `json:"level,omitempty" koanf:"level" toml:"level,omitempty"`
}

// Format names a reporter.
type Format string

const (
	// FormatText prints one line per diagnostic.
	FormatText Format = "text"
	// FormatTable prints a table per file.
	FormatTable Format = "table"
	// FormatJSON prints a JSON array.
	FormatJSON Format = "json"
)

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatTable, FormatJSON}
}

// JSONSchema returns the JSON Schema for the Format type.
func (Format) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Enum:        []any{string(FormatText), string(FormatTable), string(FormatJSON)},
		Description: "Output format",
		Default:     string(FormatText),
	}
}

// FailOn is the lowest severity that makes a run fail.
type FailOn string

const (
	// FailOnWarning fails on warnings only.
	FailOnWarning FailOn = "warning"
	// FailOnAdvisory fails on any diagnostic.
	FailOnAdvisory FailOn = "advisory"
	// FailOnNever fails only when a tsconfig cannot be loaded.
	FailOnNever FailOn = "never"
)

// FailOnValues returns every supported fail_on value.
func FailOnValues() []FailOn {
	return []FailOn{FailOnWarning, FailOnAdvisory, FailOnNever}
}

// JSONSchema returns the JSON Schema for the FailOn type.
func (FailOn) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Enum:        []any{string(FailOnWarning), string(FailOnAdvisory), string(FailOnNever)},
		Description: "Lowest diagnostic severity that fails the run",
		Default:     string(FailOnWarning),
	}
}

// IsWhenAbsent returns whether absent recommended options are reported.
func (c *RulesConfig) IsWhenAbsent() bool {
	if c == nil || c.Recommended == nil || c.Recommended.WhenAbsent == nil {
		return false
	}

	return *c.Recommended.WhenAbsent
}

// GetDisabled returns the disabled families.
func (c *RulesConfig) GetDisabled() []string {
	if c == nil {
		return nil
	}

	return c.Disabled
}

// GetSeverity returns the severity overrides.
func (c *RulesConfig) GetSeverity() map[string]string {
	if c == nil {
		return nil
	}

	return c.Severity
}

// GetFormat returns the configured format or the default.
func (c *OutputConfig) GetFormat() Format {
	if c == nil || c.Format == "" {
		return FormatText
	}

	return c.Format
}

// GetFailOn returns the configured fail_on or the default.
func (c *OutputConfig) GetFailOn() FailOn {
	if c == nil || c.FailOn == "" {
		return FailOnWarning
	}

	return c.FailOn
}

// IsColorEnabled returns whether colour is enabled.
func (c *OutputConfig) IsColorEnabled() bool {
	if c == nil || c.Color == nil {
		return true
	}

	return *c.Color
}

// GetLevel returns the configured log level or the default.
func (c *LogConfig) GetLevel() string {
	if c == nil || c.Level == "" {
		return "error"
	}

	return c.Level
}
