package rules

import (
	"github.com/smykla-skalski/tsconfcheck/internal/catalog"
	"github.com/smykla-skalski/tsconfcheck/pkg/options"
)

const (
	jsCheckJs              = "checkJs"
	jsMaxNodeModuleJsDepth = "maxNodeModuleJsDepth"
)

// JSRule reports JavaScript options that only take effect with allowJs.
type JSRule struct {
	base
}

// NewJSRule creates a JSRule rendering messages from cat.
func NewJSRule(cat *catalog.Catalog) *JSRule {
	return &JSRule{base: base{cat: cat, severity: SeverityWarning}}
}

func (*JSRule) Family() Family { return FamilyJS }

func (*JSRule) Description() string {
	return "JavaScript options that have no effect without 'allowJs'"
}

func (*JSRule) Keys() []catalog.Key {
	return []catalog.Key{
		key(FamilyJS, jsCheckJs),
		key(FamilyJS, jsMaxNodeModuleJsDepth),
	}
}

// Check reports checkJs when truthy and maxNodeModuleJsDepth when present, both only
// when allowJs is not enabled.
func (r *JSRule) Check(snap *options.Snapshot) []Diagnostic {
	if options.IsTrue(snap.AllowJs) {
		return nil
	}

	var diags []Diagnostic

	if options.IsTrue(snap.CheckJs) {
		diags = append(diags, r.diag(FamilyJS, jsCheckJs, jsCheckJs))
	}

	// Presence is the trigger; 0 counts.
	if options.IsSet(snap.MaxNodeModuleJsDepth) {
		diags = append(diags, r.diag(FamilyJS, jsMaxNodeModuleJsDepth, jsMaxNodeModuleJsDepth))
	}

	return diags
}
