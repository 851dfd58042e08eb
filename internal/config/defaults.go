package config

import (
	"github.com/smykla-skalski/tsconfcheck/pkg/config"
)

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *config.Config {
	color := true
	whenAbsent := false

	return &config.Config{
		Rules: &config.RulesConfig{
			Disabled:    []string{},
			Severity:    map[string]string{},
			Recommended: &config.RecommendedConfig{WhenAbsent: &whenAbsent},
		},
		Output: &config.OutputConfig{
			Format: config.FormatText,
			FailOn: config.FailOnWarning,
			Color:  &color,
		},
		Log: &config.LogConfig{Level: defaultLogLevel},
	}
}

const defaultLogLevel = "error"

// defaultsToMap converts DefaultConfig to a map for koanf loading.
func defaultsToMap() map[string]any {
	return map[string]any{
		"rules": map[string]any{
			"disabled": []string{},
			"severity": map[string]any{},
			"recommended": map[string]any{
				"when_absent": false,
			},
		},
		"output": map[string]any{
			"format":  string(config.FormatText),
			"fail_on": string(config.FailOnWarning),
			"color":   true,
		},
		"log": map[string]any{
			"level": defaultLogLevel,
		},
	}
}
