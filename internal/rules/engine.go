package rules

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/tsconfcheck/internal/catalog"
	"github.com/smykla-skalski/tsconfcheck/pkg/options"
)

// Engine runs rules over a snapshot in registration order.
// An Engine holds no mutable state after construction and is safe for concurrent use.
type Engine struct {
	catalog    *catalog.Catalog
	rules      []Rule
	disabled   map[Family]bool
	severities map[Family]Severity

	// Configuration options.
	whenAbsent bool
	custom     bool
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithDisabled disables the given families.
func WithDisabled(families ...Family) EngineOption {
	return func(e *Engine) {
		for _, f := range families {
			e.disabled[f] = true
		}
	}
}

// WithSeverityOverride reports every diagnostic of family with severity.
func WithSeverityOverride(family Family, severity Severity) EngineOption {
	return func(e *Engine) {
		e.severities[family] = severity
	}
}

// WithRecommendWhenAbsent makes the recommended family also report options that are not set.
func WithRecommendWhenAbsent(whenAbsent bool) EngineOption {
	return func(e *Engine) {
		e.whenAbsent = whenAbsent
	}
}

// WithRules replaces the built-in rule set.
func WithRules(rules ...Rule) EngineOption {
	return func(e *Engine) {
		e.rules = rules
		e.custom = true
	}
}

// DefaultRules returns the built-in rules in registration order.
func DefaultRules(cat *catalog.Catalog, recommendWhenAbsent bool) []Rule {
	return []Rule{
		NewStrictRule(cat),
		NewJSRule(cat),
		NewDeprecatedRule(cat),
		NewJSXRule(cat),
		NewRecommendedRule(cat, recommendWhenAbsent),
		NewDefaultRule(cat),
	}
}

// NewEngine creates an Engine rendering messages from cat. A nil cat uses catalog.Default.
//
// Construction fails with an assertion error when cat lacks a template any rule needs.
func NewEngine(cat *catalog.Catalog, opts ...EngineOption) (*Engine, error) {
	if cat == nil {
		cat = catalog.Default()
	}

	engine := &Engine{
		catalog:    cat,
		disabled:   make(map[Family]bool),
		severities: make(map[Family]Severity),
	}

	// Apply options.
	for _, opt := range opts {
		opt(engine)
	}

	if !engine.custom {
		engine.rules = DefaultRules(cat, engine.whenAbsent)
	}

	for family, severity := range engine.severities {
		if severity.Rank() == 0 {
			return nil, errors.Wrapf(ErrUnknownSeverity, "override for %s: %q", family, severity)
		}
	}

	var keys []catalog.Key
	for _, rule := range engine.rules {
		keys = append(keys, rule.Keys()...)
	}

	if err := cat.Require(keys...); err != nil {
		return nil, err
	}

	return engine, nil
}

// Evaluate runs every enabled rule once, in registration order, and concatenates
// their diagnostics. A nil snapshot yields no diagnostics.
func (e *Engine) Evaluate(snap *options.Snapshot) []Diagnostic {
	diags := make([]Diagnostic, 0)

	if snap == nil {
		return diags
	}

	for _, rule := range e.rules {
		family := rule.Family()
		if e.disabled[family] {
			continue
		}

		found := rule.Check(snap)

		if severity, ok := e.severities[family]; ok {
			found = slices.Clone(found)
			for i := range found {
				found[i].Severity = severity
			}
		}

		diags = append(diags, found...)
	}

	return diags
}

// Rules returns metadata for every registered rule, disabled ones included.
func (e *Engine) Rules() []Info {
	infos := make([]Info, 0, len(e.rules))

	for _, rule := range e.rules {
		family := rule.Family()

		severity, ok := e.severities[family]
		if !ok {
			severity = defaultSeverity(rule)
		}

		infos = append(infos, Info{
			Family:      family,
			Severity:    severity,
			Description: rule.Description(),
			Enabled:     !e.disabled[family],
		})
	}

	return infos
}

// Catalog returns the catalog the engine was built with.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// defaultSeverity returns the severity a rule reports with when not overridden.
func defaultSeverity(rule Rule) Severity {
	type severer interface{ defaultSeverity() Severity }

	if s, ok := rule.(severer); ok {
		return s.defaultSeverity()
	}

	return ""
}

func (b base) defaultSeverity() Severity {
	return b.severity
}
