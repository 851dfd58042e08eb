// Package options provides the resolved compiler options snapshot evaluated by the rules.
package options

// CompilerOptions is the stable set of tsconfig compiler options known to tsconfcheck.
// A nil field means the option was not specified anywhere in the extends chain.
type CompilerOptions struct {
	// Strict and the options it implies.
	Strict                       *bool `json:"strict,omitempty"`
	NoImplicitAny                *bool `json:"noImplicitAny,omitempty"`
	NoImplicitThis               *bool `json:"noImplicitThis,omitempty"`
	StrictNullChecks             *bool `json:"strictNullChecks,omitempty"`
	StrictFunctionTypes          *bool `json:"strictFunctionTypes,omitempty"`
	StrictBindCallApply          *bool `json:"strictBindCallApply,omitempty"`
	StrictPropertyInitialization *bool `json:"strictPropertyInitialization,omitempty"`
	AlwaysStrict                 *bool `json:"alwaysStrict,omitempty"`
	UseUnknownInCatchVariables   *bool `json:"useUnknownInCatchVariables,omitempty"`

	// JavaScript support.
	AllowJs              *bool `json:"allowJs,omitempty"`
	CheckJs              *bool `json:"checkJs,omitempty"`
	MaxNodeModuleJsDepth *int  `json:"maxNodeModuleJsDepth,omitempty"`

	// Deprecated options and the escape hatch silencing them.
	SuppressExcessPropertyErrors   *bool   `json:"suppressExcessPropertyErrors,omitempty"`
	SuppressImplicitAnyIndexErrors *bool   `json:"suppressImplicitAnyIndexErrors,omitempty"`
	ReactNamespace                 *string `json:"reactNamespace,omitempty"`
	IgnoreDeprecations             *string `json:"ignoreDeprecations,omitempty"`

	// JSX.
	Jsx                *string `json:"jsx,omitempty"`
	JsxFactory         *string `json:"jsxFactory,omitempty"`
	JsxFragmentFactory *string `json:"jsxFragmentFactory,omitempty"`

	// Interop and consistency.
	SkipLibCheck                     *bool `json:"skipLibCheck,omitempty"`
	EsModuleInterop                  *bool `json:"esModuleInterop,omitempty"`
	ForceConsistentCasingInFileNames *bool `json:"forceConsistentCasingInFileNames,omitempty"`
	ExactOptionalPropertyTypes       *bool `json:"exactOptionalPropertyTypes,omitempty"`

	// Output.
	Target  *string `json:"target,omitempty"`
	Module  *string `json:"module,omitempty"`
	OutDir  *string `json:"outDir,omitempty"`
	OutFile *string `json:"outFile,omitempty"`
	RootDir *string `json:"rootDir,omitempty"`
	Charset *string `json:"charset,omitempty"`
	Pretty  *bool   `json:"pretty,omitempty"`

	// Options defaulting to false.
	AllowArbitraryExtensions                *bool `json:"allowArbitraryExtensions,omitempty"`
	AllowImportingTsExtensions              *bool `json:"allowImportingTsExtensions,omitempty"`
	AllowUmdGlobalAccess                    *bool `json:"allowUmdGlobalAccess,omitempty"`
	AssumeChangesOnlyAffectDirectDeps       *bool `json:"assumeChangesOnlyAffectDirectDependencies,omitempty"`
	Composite                               *bool `json:"composite,omitempty"`
	Declaration                             *bool `json:"declaration,omitempty"`
	DeclarationMap                          *bool `json:"declarationMap,omitempty"`
	Diagnostics                             *bool `json:"diagnostics,omitempty"`
	DisableReferencedProjectLoad            *bool `json:"disableReferencedProjectLoad,omitempty"`
	DisableSizeLimit                        *bool `json:"disableSizeLimit,omitempty"`
	DisableSolutionSearching                *bool `json:"disableSolutionSearching,omitempty"`
	DisableSourceOfProjectReferenceRedirect *bool `json:"disableSourceOfProjectReferenceRedirect,omitempty"`
	DownlevelIteration                      *bool `json:"downlevelIteration,omitempty"`
	EmitBOM                                 *bool `json:"emitBOM,omitempty"`
	EmitDeclarationOnly                     *bool `json:"emitDeclarationOnly,omitempty"`
	EmitDecoratorMetadata                   *bool `json:"emitDecoratorMetadata,omitempty"`
	ErasableSyntaxOnly                      *bool `json:"erasableSyntaxOnly,omitempty"`
	ExperimentalDecorators                  *bool `json:"experimentalDecorators,omitempty"`
	ExplainFiles                            *bool `json:"explainFiles,omitempty"`
	ExtendedDiagnostics                     *bool `json:"extendedDiagnostics,omitempty"`
	ImportHelpers                           *bool `json:"importHelpers,omitempty"`
	InlineSourceMap                         *bool `json:"inlineSourceMap,omitempty"`
	InlineSources                           *bool `json:"inlineSources,omitempty"`
	IsolatedDeclarations                    *bool `json:"isolatedDeclarations,omitempty"`
	IsolatedModules                         *bool `json:"isolatedModules,omitempty"`
	ListEmittedFiles                        *bool `json:"listEmittedFiles,omitempty"`
	ListFiles                               *bool `json:"listFiles,omitempty"`
	NoCheck                                 *bool `json:"noCheck,omitempty"`
	NoEmit                                  *bool `json:"noEmit,omitempty"`
	NoEmitHelpers                           *bool `json:"noEmitHelpers,omitempty"`
	NoEmitOnError                           *bool `json:"noEmitOnError,omitempty"`
	NoErrorTruncation                       *bool `json:"noErrorTruncation,omitempty"`
	NoFallthroughCasesInSwitch              *bool `json:"noFallthroughCasesInSwitch,omitempty"`
	NoImplicitOverride                      *bool `json:"noImplicitOverride,omitempty"`
	NoImplicitReturns                       *bool `json:"noImplicitReturns,omitempty"`
	NoLib                                   *bool `json:"noLib,omitempty"`
	NoPropertyAccessFromIndexSignature      *bool `json:"noPropertyAccessFromIndexSignature,omitempty"`
	NoResolve                               *bool `json:"noResolve,omitempty"`
	NoUncheckedIndexedAccess                *bool `json:"noUncheckedIndexedAccess,omitempty"`
	NoUncheckedSideEffectImports            *bool `json:"noUncheckedSideEffectImports,omitempty"`
	NoUnusedLocals                          *bool `json:"noUnusedLocals,omitempty"`
	NoUnusedParameters                      *bool `json:"noUnusedParameters,omitempty"`
	PreserveConstEnums                      *bool `json:"preserveConstEnums,omitempty"`
	PreserveSymlinks                        *bool `json:"preserveSymlinks,omitempty"`
	PreserveWatchOutput                     *bool `json:"preserveWatchOutput,omitempty"`
	RemoveComments                          *bool `json:"removeComments,omitempty"`
	ResolveJsonModule                       *bool `json:"resolveJsonModule,omitempty"`
	RewriteRelativeImportExtensions         *bool `json:"rewriteRelativeImportExtensions,omitempty"`
	SkipDefaultLibCheck                     *bool `json:"skipDefaultLibCheck,omitempty"`
	SourceMap                               *bool `json:"sourceMap,omitempty"`
	StripInternal                           *bool `json:"stripInternal,omitempty"`
	TraceResolution                         *bool `json:"traceResolution,omitempty"`
	VerbatimModuleSyntax                    *bool `json:"verbatimModuleSyntax,omitempty"`
}

// Snapshot is the fully resolved view of a tsconfig the rules evaluate.
// It layers extension fields that are no longer part of the stable option
// set on top of CompilerOptions, so the base type never has to carry them.
//
// A Snapshot is read-only once produced. Rules receive a pointer for
// efficiency and must not modify it.
type Snapshot struct {
	CompilerOptions

	// Out is the pre-outFile name of the concatenated output path.
	Out *string `json:"out,omitempty"`
}

// IsTrue reports whether b was specified and is true.
func IsTrue(b *bool) bool {
	return b != nil && *b
}

// IsFalse reports whether b was explicitly specified as false.
// An absent option is not false.
func IsFalse(b *bool) bool {
	return b != nil && !*b
}

// IsSet reports whether v was specified, regardless of its value.
func IsSet[T any](v *T) bool {
	return v != nil
}

// IsNonEmpty reports whether s was specified with a non-empty value.
func IsNonEmpty(s *string) bool {
	return s != nil && *s != ""
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// String returns a pointer to s.
func String(s string) *string {
	return &s
}

// Int returns a pointer to i.
func Int(i int) *int {
	return &i
}
