package config

import (
	"github.com/smykla-skalski/tsconfcheck/internal/rules"
	"github.com/smykla-skalski/tsconfcheck/pkg/config"
)

// EngineOptions translates the rules section of a validated configuration into engine options.
// Invalid entries are skipped; Validator reports them.
func EngineOptions(cfg *config.Config) []rules.EngineOption {
	if cfg == nil {
		return nil
	}

	var disabled []rules.Family

	for _, name := range cfg.Rules.GetDisabled() {
		if family, err := rules.ParseFamily(name); err == nil {
			disabled = append(disabled, family)
		}
	}

	opts := []rules.EngineOption{
		rules.WithDisabled(disabled...),
		rules.WithRecommendWhenAbsent(cfg.Rules.IsWhenAbsent()),
	}

	for name, value := range cfg.Rules.GetSeverity() {
		family, err := rules.ParseFamily(name)
		if err != nil {
			continue
		}

		severity, err := rules.ParseSeverity(value)
		if err != nil {
			continue
		}

		opts = append(opts, rules.WithSeverityOverride(family, severity))
	}

	return opts
}
