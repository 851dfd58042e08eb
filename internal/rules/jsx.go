package rules

import (
	"github.com/smykla-skalski/tsconfcheck/internal/catalog"
	"github.com/smykla-skalski/tsconfcheck/pkg/options"
)

const jsxFragmentFactory = "jsxFragmentFactory"

// JSXRule reports a fragment factory configured without an element factory.
type JSXRule struct {
	base
}

// NewJSXRule creates a JSXRule rendering messages from cat.
func NewJSXRule(cat *catalog.Catalog) *JSXRule {
	return &JSXRule{base: base{cat: cat, severity: SeverityWarning}}
}

func (*JSXRule) Family() Family { return FamilyJSX }

func (*JSXRule) Description() string {
	return "'jsxFragmentFactory' set without 'jsxFactory'"
}

func (*JSXRule) Keys() []catalog.Key {
	return []catalog.Key{key(FamilyJSX, jsxFragmentFactory)}
}

func (r *JSXRule) Check(snap *options.Snapshot) []Diagnostic {
	if options.IsNonEmpty(snap.JsxFragmentFactory) && !options.IsNonEmpty(snap.JsxFactory) {
		return []Diagnostic{r.diag(FamilyJSX, jsxFragmentFactory, jsxFragmentFactory)}
	}

	return nil
}
