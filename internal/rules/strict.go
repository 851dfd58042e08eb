package rules

import (
	"github.com/smykla-skalski/tsconfcheck/internal/catalog"
	"github.com/smykla-skalski/tsconfcheck/pkg/options"
)

const strictImplied = "implied"

// StrictRule reports strict-mode flags set to true while strict mode already implies them.
type StrictRule struct {
	base
}

// NewStrictRule creates a StrictRule rendering messages from cat.
func NewStrictRule(cat *catalog.Catalog) *StrictRule {
	return &StrictRule{base: base{cat: cat, severity: SeverityWarning}}
}

func (*StrictRule) Family() Family { return FamilyStrict }

func (*StrictRule) Description() string {
	return "Flags explicitly enabled although 'strict' already implies them"
}

func (*StrictRule) Keys() []catalog.Key {
	return []catalog.Key{key(FamilyStrict, strictImplied)}
}

// Check emits one diagnostic per implied flag set to true, unless strict is explicitly false.
// An absent strict is treated as enabled.
func (r *StrictRule) Check(snap *options.Snapshot) []Diagnostic {
	if options.IsFalse(snap.Strict) {
		return nil
	}

	implied := []struct {
		name  string
		value *bool
	}{
		{"noImplicitAny", snap.NoImplicitAny},
		{"noImplicitThis", snap.NoImplicitThis},
		{"strictNullChecks", snap.StrictNullChecks},
		{"strictFunctionTypes", snap.StrictFunctionTypes},
		{"strictBindCallApply", snap.StrictBindCallApply},
		{"strictPropertyInitialization", snap.StrictPropertyInitialization},
		{"alwaysStrict", snap.AlwaysStrict},
		{"useUnknownInCatchVariables", snap.UseUnknownInCatchVariables},
	}

	var diags []Diagnostic

	for _, flag := range implied {
		if options.IsTrue(flag.value) {
			diags = append(diags, r.diag(FamilyStrict, flag.name, strictImplied, flag.name))
		}
	}

	return diags
}
