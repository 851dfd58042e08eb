package config

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/tsconfcheck/internal/rules"
	"github.com/smykla-skalski/tsconfcheck/pkg/config"
)

var _ = Describe("Validator", func() {
	var validator *Validator

	BeforeEach(func() {
		validator = NewValidator()
	})

	It("accepts the defaults", func() {
		Expect(validator.Validate(DefaultConfig())).To(Succeed())
	})

	It("accepts an empty config", func() {
		Expect(validator.Validate(&config.Config{})).To(Succeed())
	})

	It("rejects a nil config", func() {
		Expect(validator.Validate(nil)).To(MatchError(ErrInvalidConfig))
	})

	It("accepts family names in any case", func() {
		cfg := DefaultConfig()
		cfg.Rules.Disabled = []string{"Strict", " jsx "}
		cfg.Rules.Severity = map[string]string{"DEFAULT": "Warning"}

		Expect(validator.Validate(cfg)).To(Succeed())
	})

	It("collects every failure", func() {
		cfg := DefaultConfig()
		cfg.Rules.Disabled = []string{"style"}
		cfg.Rules.Severity = map[string]string{"js": "fatal", "lint": "warning"}
		cfg.Output.Format = "xml"
		cfg.Output.FailOn = "error"
		cfg.Log.Level = "trace"

		err := validator.Validate(cfg)
		Expect(err).To(MatchError(ErrInvalidConfig))
		Expect(err.Error()).To(ContainSubstring("validation failed with 6 error(s)"))
	})

	DescribeTable("single failures",
		func(mutate func(*config.Config), target error) {
			cfg := DefaultConfig()
			mutate(cfg)

			err := validator.Validate(cfg)
			Expect(err).To(MatchError(ErrInvalidConfig))
			Expect(err).To(MatchError(target))
		},
		Entry("unknown disabled family", func(c *config.Config) {
			c.Rules.Disabled = []string{"style"}
		}, rules.ErrUnknownFamily),
		Entry("unknown severity family", func(c *config.Config) {
			c.Rules.Severity = map[string]string{"style": "warning"}
		}, rules.ErrUnknownFamily),
		Entry("unknown severity", func(c *config.Config) {
			c.Rules.Severity = map[string]string{"js": "error"}
		}, rules.ErrUnknownSeverity),
		Entry("unknown format", func(c *config.Config) {
			c.Output.Format = "sarif"
		}, ErrInvalidOption),
		Entry("unknown fail_on", func(c *config.Config) {
			c.Output.FailOn = "always"
		}, ErrInvalidOption),
	)
})

var _ = Describe("EngineOptions", func() {
	It("returns nothing for a nil config", func() {
		Expect(EngineOptions(nil)).To(BeNil())
	})

	It("configures the engine from the rules section", func() {
		cfg := DefaultConfig()
		cfg.Rules.Disabled = []string{"strict", "default"}
		cfg.Rules.Severity = map[string]string{"js": "advisory"}

		engine, err := rules.NewEngine(nil, EngineOptions(cfg)...)
		Expect(err).NotTo(HaveOccurred())

		enabled := map[rules.Family]bool{}
		severity := map[rules.Family]rules.Severity{}

		for _, info := range engine.Rules() {
			enabled[info.Family] = info.Enabled
			severity[info.Family] = info.Severity
		}

		Expect(enabled).To(HaveKeyWithValue(rules.FamilyStrict, false))
		Expect(enabled).To(HaveKeyWithValue(rules.FamilyDefault, false))
		Expect(enabled).To(HaveKeyWithValue(rules.FamilyJS, true))
		Expect(severity).To(HaveKeyWithValue(rules.FamilyJS, rules.SeverityAdvisory))
	})
})
