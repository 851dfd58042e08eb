// Package rules provides the tsconfig diagnostic rules and the engine running them.
package rules

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/tsconfcheck/internal/catalog"
	"github.com/smykla-skalski/tsconfcheck/pkg/options"
)

// ReferenceBaseURL is the base URL of the tsconfig option reference.
const ReferenceBaseURL = "https://www.typescriptlang.org/tsconfig#"

var (
	// ErrUnknownFamily is returned when a family name is not registered.
	ErrUnknownFamily = errors.New("unknown rule family")

	// ErrUnknownSeverity is returned when a severity name is not recognized.
	ErrUnknownSeverity = errors.New("unknown severity")
)

// Family identifies a rule family
type Family string

const (
	// FamilyStrict reports options already implied by strict mode
	FamilyStrict Family = "strict"
	// FamilyJS reports JavaScript options that have no effect without allowJs
	FamilyJS Family = "js"
	// FamilyDeprecated reports deprecated options
	FamilyDeprecated Family = "deprecated"
	// FamilyJSX reports inconsistent JSX factory settings
	FamilyJSX Family = "jsx"
	// FamilyRecommended recommends enabling widely used options
	FamilyRecommended Family = "recommended"
	// FamilyDefault reports options explicitly set to their default value
	FamilyDefault Family = "default"
)

// Families returns every family in registration order.
func Families() []Family {
	return []Family{
		FamilyStrict,
		FamilyJS,
		FamilyDeprecated,
		FamilyJSX,
		FamilyRecommended,
		FamilyDefault,
	}
}

// ParseFamily parses a family name.
func ParseFamily(s string) (Family, error) {
	f := Family(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Families(), f) {
		return f, nil
	}

	return "", errors.Wrapf(ErrUnknownFamily, "%q", s)
}

// Severity represents the severity of a diagnostic
type Severity string

const (
	// SeverityAdvisory marks a suggestion
	SeverityAdvisory Severity = "advisory"
	// SeverityWarning marks a likely misconfiguration
	SeverityWarning Severity = "warning"
)

// ParseSeverity parses a severity name.
func ParseSeverity(s string) (Severity, error) {
	switch sev := Severity(strings.ToLower(strings.TrimSpace(s))); sev {
	case SeverityAdvisory, SeverityWarning:
		return sev, nil
	default:
		return "", errors.Wrapf(ErrUnknownSeverity, "%q", s)
	}
}

// Rank orders severities; a higher rank is more severe.
func (s Severity) Rank() int {
	switch s {
	case SeverityWarning:
		return 2
	case SeverityAdvisory:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether s is at least as severe as other.
func (s Severity) AtLeast(other Severity) bool {
	return s.Rank() >= other.Rank()
}

// Diagnostic is a single rendered finding about a tsconfig
type Diagnostic struct {
	// Rule is the family that produced the diagnostic
	Rule Family `json:"rule"`

	// Code is the option the diagnostic concerns
	Code string `json:"code"`

	// Severity of the diagnostic
	Severity Severity `json:"severity"`

	// Message is the rendered message
	Message string `json:"message"`
}

// Reference returns the documentation URL of the option the diagnostic concerns.
func (d Diagnostic) Reference() string {
	return ReferenceBaseURL + d.Code
}

// String returns "severity [rule/code] message".
func (d Diagnostic) String() string {
	return string(d.Severity) + " [" + string(d.Rule) + "/" + d.Code + "] " + d.Message
}

// Rule checks one concern of a tsconfig snapshot
type Rule interface {
	// Family returns the family the rule belongs to
	Family() Family

	// Description returns a one-line human-readable description
	Description() string

	// Keys returns the catalog templates the rule renders
	Keys() []catalog.Key

	// Check evaluates the snapshot. The snapshot is never nil and must not be modified.
	Check(snap *options.Snapshot) []Diagnostic
}

// Info describes a registered rule
type Info struct {
	Family      Family   `json:"family"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Enabled     bool     `json:"enabled"`
}

// key builds a catalog key within a family.
func key(f Family, name string) catalog.Key {
	return catalog.Key{Family: string(f), Name: name}
}

// base carries the fields shared by the built-in rules.
type base struct {
	cat      *catalog.Catalog
	severity Severity
}

func (b base) diag(f Family, code, name string, args ...string) Diagnostic {
	return Diagnostic{
		Rule:     f,
		Code:     code,
		Severity: b.severity,
		Message:  b.cat.Render(key(f, name), args...),
	}
}
