package rules

import (
	"strings"

	"github.com/smykla-skalski/tsconfcheck/internal/catalog"
	"github.com/smykla-skalski/tsconfcheck/pkg/options"
)

const (
	defaultRedundant            = "redundant"
	defaultMaxNodeModuleJsDepth = "maxNodeModuleJsDepth"
	defaultCharset              = "charset"
	defaultPretty               = "pretty"
)

// falseByDefault lists boolean options whose compiler default is false, in report order.
//
// Options another family already reports on are left out. An entry with
// impliedBy defaults to true when impliedBy holds, and is skipped then.
var falseByDefault = []struct {
	name      string
	field     func(*options.Snapshot) *bool
	impliedBy func(*options.Snapshot) bool
}{
	{"allowArbitraryExtensions", func(s *options.Snapshot) *bool { return s.AllowArbitraryExtensions }, nil},
	{"allowImportingTsExtensions", func(s *options.Snapshot) *bool { return s.AllowImportingTsExtensions }, nil},
	{"allowUmdGlobalAccess", func(s *options.Snapshot) *bool { return s.AllowUmdGlobalAccess }, nil},
	{"assumeChangesOnlyAffectDirectDependencies", func(s *options.Snapshot) *bool { return s.AssumeChangesOnlyAffectDirectDeps }, nil},
	{"composite", func(s *options.Snapshot) *bool { return s.Composite }, nil},
	{"declaration", func(s *options.Snapshot) *bool { return s.Declaration }, emitsDeclarations},
	{"declarationMap", func(s *options.Snapshot) *bool { return s.DeclarationMap }, nil},
	{"diagnostics", func(s *options.Snapshot) *bool { return s.Diagnostics }, nil},
	{"disableReferencedProjectLoad", func(s *options.Snapshot) *bool { return s.DisableReferencedProjectLoad }, nil},
	{"disableSizeLimit", func(s *options.Snapshot) *bool { return s.DisableSizeLimit }, nil},
	{"disableSolutionSearching", func(s *options.Snapshot) *bool { return s.DisableSolutionSearching }, nil},
	{"disableSourceOfProjectReferenceRedirect", func(s *options.Snapshot) *bool { return s.DisableSourceOfProjectReferenceRedirect }, nil},
	{"downlevelIteration", func(s *options.Snapshot) *bool { return s.DownlevelIteration }, nil},
	{"emitBOM", func(s *options.Snapshot) *bool { return s.EmitBOM }, nil},
	{"emitDeclarationOnly", func(s *options.Snapshot) *bool { return s.EmitDeclarationOnly }, nil},
	{"emitDecoratorMetadata", func(s *options.Snapshot) *bool { return s.EmitDecoratorMetadata }, nil},
	{"erasableSyntaxOnly", func(s *options.Snapshot) *bool { return s.ErasableSyntaxOnly }, nil},
	{"experimentalDecorators", func(s *options.Snapshot) *bool { return s.ExperimentalDecorators }, nil},
	{"explainFiles", func(s *options.Snapshot) *bool { return s.ExplainFiles }, nil},
	{"extendedDiagnostics", func(s *options.Snapshot) *bool { return s.ExtendedDiagnostics }, nil},
	{"importHelpers", func(s *options.Snapshot) *bool { return s.ImportHelpers }, nil},
	{"inlineSourceMap", func(s *options.Snapshot) *bool { return s.InlineSourceMap }, nil},
	{"inlineSources", func(s *options.Snapshot) *bool { return s.InlineSources }, nil},
	{"isolatedDeclarations", func(s *options.Snapshot) *bool { return s.IsolatedDeclarations }, nil},
	{"isolatedModules", func(s *options.Snapshot) *bool { return s.IsolatedModules }, verbatimSyntax},
	{"listEmittedFiles", func(s *options.Snapshot) *bool { return s.ListEmittedFiles }, nil},
	{"listFiles", func(s *options.Snapshot) *bool { return s.ListFiles }, nil},
	{"noCheck", func(s *options.Snapshot) *bool { return s.NoCheck }, nil},
	{"noEmit", func(s *options.Snapshot) *bool { return s.NoEmit }, nil},
	{"noEmitHelpers", func(s *options.Snapshot) *bool { return s.NoEmitHelpers }, nil},
	{"noEmitOnError", func(s *options.Snapshot) *bool { return s.NoEmitOnError }, nil},
	{"noErrorTruncation", func(s *options.Snapshot) *bool { return s.NoErrorTruncation }, nil},
	{"noFallthroughCasesInSwitch", func(s *options.Snapshot) *bool { return s.NoFallthroughCasesInSwitch }, nil},
	{"noImplicitOverride", func(s *options.Snapshot) *bool { return s.NoImplicitOverride }, nil},
	{"noImplicitReturns", func(s *options.Snapshot) *bool { return s.NoImplicitReturns }, nil},
	{"noLib", func(s *options.Snapshot) *bool { return s.NoLib }, nil},
	{"noPropertyAccessFromIndexSignature", func(s *options.Snapshot) *bool { return s.NoPropertyAccessFromIndexSignature }, nil},
	{"noResolve", func(s *options.Snapshot) *bool { return s.NoResolve }, nil},
	{"noUncheckedIndexedAccess", func(s *options.Snapshot) *bool { return s.NoUncheckedIndexedAccess }, nil},
	{"noUncheckedSideEffectImports", func(s *options.Snapshot) *bool { return s.NoUncheckedSideEffectImports }, nil},
	{"noUnusedLocals", func(s *options.Snapshot) *bool { return s.NoUnusedLocals }, nil},
	{"noUnusedParameters", func(s *options.Snapshot) *bool { return s.NoUnusedParameters }, nil},
	{"preserveConstEnums", func(s *options.Snapshot) *bool { return s.PreserveConstEnums }, isolatesModules},
	{"preserveSymlinks", func(s *options.Snapshot) *bool { return s.PreserveSymlinks }, nil},
	{"preserveWatchOutput", func(s *options.Snapshot) *bool { return s.PreserveWatchOutput }, nil},
	{"removeComments", func(s *options.Snapshot) *bool { return s.RemoveComments }, nil},
	{"resolveJsonModule", func(s *options.Snapshot) *bool { return s.ResolveJsonModule }, nil},
	{"rewriteRelativeImportExtensions", func(s *options.Snapshot) *bool { return s.RewriteRelativeImportExtensions }, nil},
	{"skipDefaultLibCheck", func(s *options.Snapshot) *bool { return s.SkipDefaultLibCheck }, nil},
	{"sourceMap", func(s *options.Snapshot) *bool { return s.SourceMap }, nil},
	{"stripInternal", func(s *options.Snapshot) *bool { return s.StripInternal }, nil},
	{"traceResolution", func(s *options.Snapshot) *bool { return s.TraceResolution }, nil},
	{"verbatimModuleSyntax", func(s *options.Snapshot) *bool { return s.VerbatimModuleSyntax }, nil},
}

// DefaultRule reports options explicitly set to the value they have anyway.
type DefaultRule struct {
	base
}

// NewDefaultRule creates a DefaultRule rendering messages from cat.
func NewDefaultRule(cat *catalog.Catalog) *DefaultRule {
	return &DefaultRule{base: base{cat: cat, severity: SeverityAdvisory}}
}

func (*DefaultRule) Family() Family { return FamilyDefault }

func (*DefaultRule) Description() string {
	return "Options explicitly set to their default value"
}

func (*DefaultRule) Keys() []catalog.Key {
	return []catalog.Key{
		key(FamilyDefault, defaultRedundant),
		key(FamilyDefault, defaultMaxNodeModuleJsDepth),
		key(FamilyDefault, defaultCharset),
		key(FamilyDefault, defaultPretty),
	}
}

func (r *DefaultRule) Check(snap *options.Snapshot) []Diagnostic {
	var diags []Diagnostic

	for _, opt := range falseByDefault {
		if opt.impliedBy != nil && opt.impliedBy(snap) {
			continue
		}

		if options.IsFalse(opt.field(snap)) {
			diags = append(diags, r.diag(FamilyDefault, opt.name, defaultRedundant, opt.name))
		}
	}

	if snap.MaxNodeModuleJsDepth != nil && *snap.MaxNodeModuleJsDepth == 0 {
		diags = append(diags, r.diag(FamilyDefault, defaultMaxNodeModuleJsDepth, defaultMaxNodeModuleJsDepth))
	}

	if snap.Charset != nil && isDefaultCharset(*snap.Charset) {
		diags = append(diags, r.diag(FamilyDefault, defaultCharset, defaultCharset))
	}

	if options.IsTrue(snap.Pretty) {
		diags = append(diags, r.diag(FamilyDefault, defaultPretty, defaultPretty))
	}

	return diags
}

// composite turns on declaration.
func emitsDeclarations(s *options.Snapshot) bool {
	return options.IsTrue(s.Composite)
}

// verbatimModuleSyntax turns on isolatedModules.
func verbatimSyntax(s *options.Snapshot) bool {
	return options.IsTrue(s.VerbatimModuleSyntax)
}

// isolatedModules, set or implied, turns on preserveConstEnums.
func isolatesModules(s *options.Snapshot) bool {
	return options.IsTrue(s.IsolatedModules) || verbatimSyntax(s)
}

func isDefaultCharset(charset string) bool {
	return strings.EqualFold(charset, "utf8") || strings.EqualFold(charset, "utf-8")
}
