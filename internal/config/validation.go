package config

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/tsconfcheck/internal/rules"
	"github.com/smykla-skalski/tsconfcheck/pkg/config"
	"github.com/smykla-skalski/tsconfcheck/pkg/logger"
)

var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidOption is returned when an option value is invalid.
	ErrInvalidOption = errors.New("invalid option value")
)

// Validator validates configuration semantics.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates the entire configuration.
// Returns an error describing all validation failures; each one stays reachable with errors.Is.
func (v *Validator) Validate(cfg *config.Config) error {
	if cfg == nil {
		return errors.WithMessage(ErrInvalidConfig, "config is nil")
	}

	var validationErrors []error

	validationErrors = append(validationErrors, v.validateRules(cfg.Rules)...)
	validationErrors = append(validationErrors, v.validateOutput(cfg.Output)...)

	if cfg.Log != nil && cfg.Log.Level != "" {
		if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
			validationErrors = append(validationErrors, errors.Wrap(err, "log.level"))
		}
	}

	if len(validationErrors) > 0 {
		return errors.Join(
			errors.Wrapf(
				ErrInvalidConfig,
				"validation failed with %d error(s)",
				len(validationErrors),
			),
			combineErrors(validationErrors),
		)
	}

	return nil
}

// validateRules validates family names and severity overrides.
func (*Validator) validateRules(cfg *config.RulesConfig) []error {
	if cfg == nil {
		return nil
	}

	var errs []error

	for _, name := range cfg.Disabled {
		if _, err := rules.ParseFamily(name); err != nil {
			errs = append(errs, errors.Wrap(err, "rules.disabled"))
		}
	}

	for _, family := range sortedKeys(cfg.Severity) {
		if _, err := rules.ParseFamily(family); err != nil {
			errs = append(errs, errors.Wrap(err, "rules.severity"))
		}

		if _, err := rules.ParseSeverity(cfg.Severity[family]); err != nil {
			errs = append(errs, errors.Wrapf(err, "rules.severity.%s", family))
		}
	}

	return errs
}

// validateOutput validates the reporter settings.
func (*Validator) validateOutput(cfg *config.OutputConfig) []error {
	if cfg == nil {
		return nil
	}

	var errs []error

	if cfg.Format != "" && !slices.Contains(config.Formats(), cfg.Format) {
		errs = append(errs, errors.Wrapf(
			ErrInvalidOption,
			"output.format must be one of %v, got %q",
			config.Formats(),
			cfg.Format,
		))
	}

	if cfg.FailOn != "" && !slices.Contains(config.FailOnValues(), cfg.FailOn) {
		errs = append(errs, errors.Wrapf(
			ErrInvalidOption,
			"output.fail_on must be one of %v, got %q",
			config.FailOnValues(),
			cfg.FailOn,
		))
	}

	return errs
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// combineErrors combines multiple errors into a single error.
func combineErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	return errors.Join(errs...)
}
