package rules

import (
	"github.com/smykla-skalski/tsconfcheck/internal/catalog"
	"github.com/smykla-skalski/tsconfcheck/pkg/options"
)

const (
	recommendedSkipLibCheck                     = "skipLibCheck"
	recommendedEsModuleInterop                  = "esModuleInterop"
	recommendedForceConsistentCasingInFileNames = "forceConsistentCasingInFileNames"
	recommendedExactOptionalPropertyTypes       = "exactOptionalPropertyTypes"
)

// RecommendedRule recommends enabling options that most projects want on.
//
// An option already set to true is never reported. An explicit false is always
// reported; an absent option is reported only when whenAbsent is set.
type RecommendedRule struct {
	base

	whenAbsent bool
}

// NewRecommendedRule creates a RecommendedRule rendering messages from cat.
func NewRecommendedRule(cat *catalog.Catalog, whenAbsent bool) *RecommendedRule {
	return &RecommendedRule{
		base:       base{cat: cat, severity: SeverityAdvisory},
		whenAbsent: whenAbsent,
	}
}

func (*RecommendedRule) Family() Family { return FamilyRecommended }

func (r *RecommendedRule) Description() string {
	if r.whenAbsent {
		return "Recommended options that are disabled or not set"
	}

	return "Recommended options that are explicitly disabled"
}

func (*RecommendedRule) Keys() []catalog.Key {
	return []catalog.Key{
		key(FamilyRecommended, recommendedSkipLibCheck),
		key(FamilyRecommended, recommendedEsModuleInterop),
		key(FamilyRecommended, recommendedForceConsistentCasingInFileNames),
		key(FamilyRecommended, recommendedExactOptionalPropertyTypes),
	}
}

func (r *RecommendedRule) Check(snap *options.Snapshot) []Diagnostic {
	recommended := []struct {
		name  string
		value *bool
	}{
		{recommendedSkipLibCheck, snap.SkipLibCheck},
		{recommendedEsModuleInterop, snap.EsModuleInterop},
		{recommendedForceConsistentCasingInFileNames, snap.ForceConsistentCasingInFileNames},
		{recommendedExactOptionalPropertyTypes, snap.ExactOptionalPropertyTypes},
	}

	var diags []Diagnostic

	for _, opt := range recommended {
		if options.IsFalse(opt.value) || (r.whenAbsent && opt.value == nil) {
			diags = append(diags, r.diag(FamilyRecommended, opt.name, opt.name))
		}
	}

	return diags
}
