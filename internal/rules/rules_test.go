package rules_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/tsconfcheck/internal/catalog"
	"github.com/smykla-skalski/tsconfcheck/internal/rules"
	"github.com/smykla-skalski/tsconfcheck/pkg/options"
)

func codes(diags []rules.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Code)
	}

	return out
}

var _ = Describe("StrictRule", func() {
	rule := rules.NewStrictRule(catalog.Default())

	allImplied := func(strict *bool) *options.Snapshot {
		snap := &options.Snapshot{}
		snap.Strict = strict
		snap.NoImplicitAny = options.Bool(true)
		snap.NoImplicitThis = options.Bool(true)
		snap.StrictNullChecks = options.Bool(true)
		snap.StrictFunctionTypes = options.Bool(true)
		snap.StrictBindCallApply = options.Bool(true)
		snap.StrictPropertyInitialization = options.Bool(true)
		snap.AlwaysStrict = options.Bool(true)
		snap.UseUnknownInCatchVariables = options.Bool(true)

		return snap
	}

	It("emits nothing when strict is explicitly false", func() {
		Expect(rule.Check(allImplied(options.Bool(false)))).To(BeEmpty())
	})

	DescribeTable("reports every implied flag in fixed order",
		func(strict *bool) {
			Expect(codes(rule.Check(allImplied(strict)))).To(Equal([]string{
				"noImplicitAny",
				"noImplicitThis",
				"strictNullChecks",
				"strictFunctionTypes",
				"strictBindCallApply",
				"strictPropertyInitialization",
				"alwaysStrict",
				"useUnknownInCatchVariables",
			}))
		},
		Entry("strict true", options.Bool(true)),
		Entry("strict absent", nil),
	)

	It("ignores flags set to false", func() {
		snap := &options.Snapshot{}
		snap.Strict = options.Bool(true)
		snap.NoImplicitAny = options.Bool(false)
		snap.AlwaysStrict = options.Bool(true)

		diags := rule.Check(snap)
		Expect(diags).To(HaveLen(1))
		Expect(diags[0].Code).To(Equal("alwaysStrict"))
		Expect(diags[0].Severity).To(Equal(rules.SeverityWarning))
		Expect(diags[0].Message).To(Equal("alwaysStrict is implicitly true because 'strict' option is true."))
	})
})

var _ = Describe("JSRule", func() {
	rule := rules.NewJSRule(catalog.Default())

	DescribeTable("gating on allowJs",
		func(allowJs, checkJs *bool, depth *int, expected []string) {
			snap := &options.Snapshot{}
			snap.AllowJs = allowJs
			snap.CheckJs = checkJs
			snap.MaxNodeModuleJsDepth = depth

			Expect(codes(rule.Check(snap))).To(Equal(expected))
		},
		Entry("allowJs absent, checkJs true",
			nil, options.Bool(true), nil, []string{"checkJs"}),
		Entry("allowJs false, checkJs true",
			options.Bool(false), options.Bool(true), nil, []string{"checkJs"}),
		Entry("allowJs false, checkJs true, depth 0",
			options.Bool(false), options.Bool(true), options.Int(0), []string{"checkJs", "maxNodeModuleJsDepth"}),
		Entry("allowJs absent, depth 2 only",
			nil, nil, options.Int(2), []string{"maxNodeModuleJsDepth"}),
		Entry("allowJs absent, checkJs false",
			nil, options.Bool(false), nil, []string{}),
		Entry("allowJs true silences checkJs and depth",
			options.Bool(true), options.Bool(true), options.Int(3), []string{}),
		Entry("allowJs true with nothing else",
			options.Bool(true), nil, nil, []string{}),
	)
})

var _ = Describe("DeprecatedRule", func() {
	rule := rules.NewDeprecatedRule(catalog.Default())

	allDeprecated := func() *options.Snapshot {
		snap := &options.Snapshot{Out: options.String("./dist/out.js")}
		snap.SuppressExcessPropertyErrors = options.Bool(true)
		snap.SuppressImplicitAnyIndexErrors = options.Bool(true)
		snap.ReactNamespace = options.String("React")

		return snap
	}

	It("reports all four options in declaration order", func() {
		diags := rule.Check(allDeprecated())
		Expect(codes(diags)).To(Equal([]string{
			"out",
			"suppressExcessPropertyErrors",
			"suppressImplicitAnyIndexErrors",
			"reactNamespace",
		}))

		for _, d := range diags {
			Expect(d.Severity).To(Equal(rules.SeverityWarning))
		}

		Expect(diags[0].Message).To(Equal("'out' is deprecated. Use 'outFile' instead."))
	})

	It("checks each option independently", func() {
		snap := &options.Snapshot{}
		snap.SuppressImplicitAnyIndexErrors = options.Bool(true)
		snap.SuppressExcessPropertyErrors = options.Bool(false)

		Expect(codes(rule.Check(snap))).To(Equal([]string{"suppressImplicitAnyIndexErrors"}))
	})

	It("ignores empty strings", func() {
		snap := &options.Snapshot{Out: options.String("")}
		snap.ReactNamespace = options.String("")

		Expect(rule.Check(snap)).To(BeEmpty())
	})

	DescribeTable("ignoreDeprecations",
		func(value string, expected rules.Severity) {
			snap := allDeprecated()
			snap.IgnoreDeprecations = options.String(value)

			for _, d := range rule.Check(snap) {
				Expect(d.Severity).To(Equal(expected))
			}
		},
		Entry("5.0 downgrades to advisory", "5.0", rules.SeverityAdvisory),
		Entry("6.0 downgrades to advisory", "6.0", rules.SeverityAdvisory),
		Entry("4.9 keeps warning", "4.9", rules.SeverityWarning),
		Entry("non-version keeps warning", "yes", rules.SeverityWarning),
	)
})

var _ = Describe("JSXRule", func() {
	rule := rules.NewJSXRule(catalog.Default())

	DescribeTable("fragment factory pairing",
		func(factory, fragment *string, expected []string) {
			snap := &options.Snapshot{}
			snap.JsxFactory = factory
			snap.JsxFragmentFactory = fragment

			Expect(codes(rule.Check(snap))).To(Equal(expected))
		},
		Entry("fragment without factory", nil, options.String("Fragment"), []string{"jsxFragmentFactory"}),
		Entry("fragment with factory", options.String("h"), options.String("Fragment"), []string{}),
		Entry("factory only", options.String("h"), nil, []string{}),
		Entry("neither", nil, nil, []string{}),
	)
})

var _ = Describe("RecommendedRule", func() {
	DescribeTable("recommends enabling",
		func(whenAbsent bool, value *bool, expected []string) {
			rule := rules.NewRecommendedRule(catalog.Default(), whenAbsent)

			snap := &options.Snapshot{}
			snap.SkipLibCheck = value
			snap.EsModuleInterop = options.Bool(true)
			snap.ForceConsistentCasingInFileNames = options.Bool(true)
			snap.ExactOptionalPropertyTypes = options.Bool(true)

			diags := rule.Check(snap)
			Expect(codes(diags)).To(Equal(expected))

			for _, d := range diags {
				Expect(d.Severity).To(Equal(rules.SeverityAdvisory))
			}
		},
		Entry("explicit false fires", false, options.Bool(false), []string{"skipLibCheck"}),
		Entry("true never fires", false, options.Bool(true), []string{}),
		Entry("absent is quiet by default", false, nil, []string{}),
		Entry("absent fires with whenAbsent", true, nil, []string{"skipLibCheck"}),
		Entry("true never fires with whenAbsent", true, options.Bool(true), []string{}),
	)

	It("reports every absent option in order with whenAbsent", func() {
		rule := rules.NewRecommendedRule(catalog.Default(), true)

		Expect(codes(rule.Check(&options.Snapshot{}))).To(Equal([]string{
			"skipLibCheck",
			"esModuleInterop",
			"forceConsistentCasingInFileNames",
			"exactOptionalPropertyTypes",
		}))
	})
})

var _ = Describe("DefaultRule", func() {
	rule := rules.NewDefaultRule(catalog.Default())

	It("reports booleans explicitly set to false with the option name", func() {
		snap := &options.Snapshot{}
		snap.NoEmit = options.Bool(false)
		snap.Declaration = options.Bool(false)
		snap.SourceMap = options.Bool(true)

		diags := rule.Check(snap)
		Expect(codes(diags)).To(Equal([]string{"declaration", "noEmit"}))
		Expect(diags[1].Message).To(Equal("'noEmit' is false by default. Setting it explicitly is redundant."))
		Expect(diags[1].Severity).To(Equal(rules.SeverityAdvisory))
	})

	DescribeTable("options another option turns on",
		func(mutate func(*options.Snapshot), expected []string) {
			snap := &options.Snapshot{}
			snap.Declaration = options.Bool(false)
			snap.IsolatedModules = options.Bool(false)
			snap.PreserveConstEnums = options.Bool(false)
			mutate(snap)

			Expect(codes(rule.Check(snap))).To(Equal(expected))
		},
		Entry("nothing governing them", func(*options.Snapshot) {},
			[]string{"declaration", "isolatedModules", "preserveConstEnums"}),
		Entry("composite implies declaration", func(s *options.Snapshot) {
			s.Composite = options.Bool(true)
		}, []string{"isolatedModules", "preserveConstEnums"}),
		Entry("composite false keeps declaration", func(s *options.Snapshot) {
			s.Composite = options.Bool(false)
		}, []string{"composite", "declaration", "isolatedModules", "preserveConstEnums"}),
		Entry("verbatimModuleSyntax implies isolatedModules and preserveConstEnums", func(s *options.Snapshot) {
			s.VerbatimModuleSyntax = options.Bool(true)
		}, []string{"declaration"}),
		Entry("all governing options on", func(s *options.Snapshot) {
			s.Composite = options.Bool(true)
			s.VerbatimModuleSyntax = options.Bool(true)
		}, []string{}),
	)

	It("skips preserveConstEnums when isolatedModules is on", func() {
		snap := &options.Snapshot{}
		snap.IsolatedModules = options.Bool(true)
		snap.PreserveConstEnums = options.Bool(false)

		Expect(rule.Check(snap)).To(BeEmpty())
	})

	It("does not report options owned by other families", func() {
		snap := &options.Snapshot{}
		snap.AllowJs = options.Bool(false)
		snap.Strict = options.Bool(false)
		snap.SkipLibCheck = options.Bool(false)
		snap.SuppressExcessPropertyErrors = options.Bool(false)

		Expect(rule.Check(snap)).To(BeEmpty())
	})

	DescribeTable("special cases",
		func(mutate func(*options.Snapshot), expected []string) {
			snap := &options.Snapshot{}
			mutate(snap)

			Expect(codes(rule.Check(snap))).To(Equal(expected))
		},
		Entry("depth 0", func(s *options.Snapshot) { s.MaxNodeModuleJsDepth = options.Int(0) },
			[]string{"maxNodeModuleJsDepth"}),
		Entry("depth 1", func(s *options.Snapshot) { s.MaxNodeModuleJsDepth = options.Int(1) },
			[]string{}),
		Entry("charset utf8", func(s *options.Snapshot) { s.Charset = options.String("utf8") },
			[]string{"charset"}),
		Entry("charset UTF-8", func(s *options.Snapshot) { s.Charset = options.String("UTF-8") },
			[]string{"charset"}),
		Entry("charset latin1", func(s *options.Snapshot) { s.Charset = options.String("latin1") },
			[]string{}),
		Entry("pretty true", func(s *options.Snapshot) { s.Pretty = options.Bool(true) },
			[]string{"pretty"}),
		Entry("pretty false", func(s *options.Snapshot) { s.Pretty = options.Bool(false) },
			[]string{}),
		Entry("special cases follow the table in order", func(s *options.Snapshot) {
			s.Pretty = options.Bool(true)
			s.Charset = options.String("utf8")
			s.MaxNodeModuleJsDepth = options.Int(0)
			s.VerbatimModuleSyntax = options.Bool(false)
		}, []string{"verbatimModuleSyntax", "maxNodeModuleJsDepth", "charset", "pretty"}),
	)
})

var _ = Describe("Diagnostic", func() {
	It("links to the option reference", func() {
		d := rules.Diagnostic{Code: "checkJs"}
		Expect(d.Reference()).To(Equal("https://www.typescriptlang.org/tsconfig#checkJs"))
	})

	It("formats as severity, rule and message", func() {
		d := rules.Diagnostic{
			Rule:     rules.FamilyJS,
			Code:     "checkJs",
			Severity: rules.SeverityWarning,
			Message:  "msg",
		}
		Expect(d.String()).To(Equal("warning [js/checkJs] msg"))
	})
})

var _ = Describe("Parsing", func() {
	DescribeTable("ParseFamily",
		func(in string, expected rules.Family, ok bool) {
			f, err := rules.ParseFamily(in)
			if !ok {
				Expect(err).To(MatchError(rules.ErrUnknownFamily))

				return
			}

			Expect(err).NotTo(HaveOccurred())
			Expect(f).To(Equal(expected))
		},
		Entry("strict", "strict", rules.FamilyStrict, true),
		Entry("mixed case", " Default ", rules.FamilyDefault, true),
		Entry("unknown", "style", rules.Family(""), false),
	)

	DescribeTable("ParseSeverity",
		func(in string, expected rules.Severity, ok bool) {
			s, err := rules.ParseSeverity(in)
			if !ok {
				Expect(err).To(MatchError(rules.ErrUnknownSeverity))

				return
			}

			Expect(err).NotTo(HaveOccurred())
			Expect(s).To(Equal(expected))
		},
		Entry("warning", "warning", rules.SeverityWarning, true),
		Entry("advisory", "ADVISORY", rules.SeverityAdvisory, true),
		Entry("error is not a severity", "error", rules.Severity(""), false),
	)

	It("orders severities", func() {
		Expect(rules.SeverityWarning.AtLeast(rules.SeverityAdvisory)).To(BeTrue())
		Expect(rules.SeverityAdvisory.AtLeast(rules.SeverityWarning)).To(BeFalse())
		Expect(rules.SeverityAdvisory.AtLeast(rules.SeverityAdvisory)).To(BeTrue())
	})
})
