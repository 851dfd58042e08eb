package rules

import (
	"github.com/Masterminds/semver/v3"

	"github.com/smykla-skalski/tsconfcheck/internal/catalog"
	"github.com/smykla-skalski/tsconfcheck/pkg/options"
)

const (
	deprecatedOut                            = "out"
	deprecatedSuppressExcessPropertyErrors   = "suppressExcessPropertyErrors"
	deprecatedSuppressImplicitAnyIndexErrors = "suppressImplicitAnyIndexErrors"
	deprecatedReactNamespace                 = "reactNamespace"
)

// silencedFrom is the lowest ignoreDeprecations value under which the compiler
// stops erroring on the options this rule reports.
var silencedFrom = semver.MustParse("5.0.0")

// DeprecatedRule reports deprecated options.
//
// The compiler accepts these options when ignoreDeprecations is "5.0" or later,
// in which case the diagnostics drop to advisory.
type DeprecatedRule struct {
	base
}

// NewDeprecatedRule creates a DeprecatedRule rendering messages from cat.
func NewDeprecatedRule(cat *catalog.Catalog) *DeprecatedRule {
	return &DeprecatedRule{base: base{cat: cat, severity: SeverityWarning}}
}

func (*DeprecatedRule) Family() Family { return FamilyDeprecated }

func (*DeprecatedRule) Description() string {
	return "Deprecated options and their replacements"
}

func (*DeprecatedRule) Keys() []catalog.Key {
	return []catalog.Key{
		key(FamilyDeprecated, deprecatedOut),
		key(FamilyDeprecated, deprecatedSuppressExcessPropertyErrors),
		key(FamilyDeprecated, deprecatedSuppressImplicitAnyIndexErrors),
		key(FamilyDeprecated, deprecatedReactNamespace),
	}
}

func (r *DeprecatedRule) Check(snap *options.Snapshot) []Diagnostic {
	var names []string

	if options.IsNonEmpty(snap.Out) {
		names = append(names, deprecatedOut)
	}

	if options.IsTrue(snap.SuppressExcessPropertyErrors) {
		names = append(names, deprecatedSuppressExcessPropertyErrors)
	}

	if options.IsTrue(snap.SuppressImplicitAnyIndexErrors) {
		names = append(names, deprecatedSuppressImplicitAnyIndexErrors)
	}

	if options.IsNonEmpty(snap.ReactNamespace) {
		names = append(names, deprecatedReactNamespace)
	}

	if len(names) == 0 {
		return nil
	}

	b := r.base
	if deprecationsIgnored(snap.IgnoreDeprecations) {
		b.severity = SeverityAdvisory
	}

	diags := make([]Diagnostic, 0, len(names))
	for _, name := range names {
		diags = append(diags, b.diag(FamilyDeprecated, name, name))
	}

	return diags
}

// deprecationsIgnored reports whether ignoreDeprecations names a version at or above 5.0.
// Values that are not versions are ignored, as the compiler rejects them anyway.
func deprecationsIgnored(value *string) bool {
	if !options.IsNonEmpty(value) {
		return false
	}

	v, err := semver.NewVersion(*value)
	if err != nil {
		return false
	}

	return !v.LessThan(silencedFrom)
}
