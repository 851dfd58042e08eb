package config

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"

	pkgconfig "github.com/smykla-skalski/tsconfcheck/pkg/config"
)

func writeConfig(path, content string) {
	Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
	Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
}

func setEnv(key, value string) {
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(os.Unsetenv, key)
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("format", "text", "")
	fs.String("fail-on", "warning", "")
	fs.StringSlice("disable", nil, "")
	fs.Bool("no-color", false, "")
	fs.Bool("debug", false, "")
	fs.Bool("recommend-absent", false, "")
	fs.Int("concurrency", 4, "")

	return fs
}

var _ = Describe("KoanfLoader", func() {
	var (
		homeDir string
		workDir string
		loader  *KoanfLoader
	)

	BeforeEach(func() {
		homeDir = GinkgoT().TempDir()
		workDir = GinkgoT().TempDir()
		loader = NewKoanfLoaderWithDirs(homeDir, workDir)
	})

	Describe("defaults", func() {
		It("loads defaults without any file", func() {
			cfg, err := loader.Load("", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Output.GetFormat()).To(Equal(pkgconfig.FormatText))
			Expect(cfg.Output.GetFailOn()).To(Equal(pkgconfig.FailOnWarning))
			Expect(cfg.Output.IsColorEnabled()).To(BeTrue())
			Expect(cfg.Rules.IsWhenAbsent()).To(BeFalse())
			Expect(cfg.Rules.GetDisabled()).To(BeEmpty())
			Expect(cfg.Log.GetLevel()).To(Equal("error"))
			Expect(loader.Sources()).To(BeEmpty())
		})
	})

	Describe("precedence", func() {
		BeforeEach(func() {
			writeConfig(loader.GlobalConfigPath(), `
[output]
format = "table"
fail_on = "advisory"

[rules]
disabled = ["default"]
`)
		})

		It("applies the global config", func() {
			cfg, err := loader.Load("", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Output.GetFormat()).To(Equal(pkgconfig.FormatTable))
			Expect(cfg.Rules.GetDisabled()).To(Equal([]string{"default"}))
			Expect(loader.Sources()).To(Equal([]string{loader.GlobalConfigPath()}))
		})

		It("lets the project config override the global config", func() {
			writeConfig(loader.ProjectConfigPath(), `
[output]
format = "json"

[rules.severity]
js = "advisory"

[rules.recommended]
when_absent = true
`)

			cfg, err := loader.Load("", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(loader.HasProjectConfig()).To(BeTrue())
			Expect(cfg.Output.GetFormat()).To(Equal(pkgconfig.FormatJSON))
			Expect(cfg.Output.GetFailOn()).To(Equal(pkgconfig.FailOnAdvisory))
			Expect(cfg.Rules.GetSeverity()).To(HaveKeyWithValue("js", "advisory"))
			Expect(cfg.Rules.IsWhenAbsent()).To(BeTrue())
		})

		It("lets environment variables override files", func() {
			setEnv("TSCONFCHECK_OUTPUT_FAIL_ON", "never")
			setEnv("TSCONFCHECK_RULES_DISABLED", "strict, jsx")
			setEnv("TSCONFCHECK_RULES_SEVERITY_DEFAULT", "warning")
			setEnv("TSCONFCHECK_OUTPUT_COLOR", "false")
			setEnv("TSCONFCHECK_UNKNOWN_KEY", "ignored")

			cfg, err := loader.Load("", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Output.GetFailOn()).To(Equal(pkgconfig.FailOnNever))
			Expect(cfg.Output.GetFormat()).To(Equal(pkgconfig.FormatTable))
			Expect(cfg.Output.IsColorEnabled()).To(BeFalse())
			Expect(cfg.Rules.GetDisabled()).To(Equal([]string{"strict", "jsx"}))
			Expect(cfg.Rules.GetSeverity()).To(HaveKeyWithValue("default", "warning"))
		})

		It("lets changed flags override everything", func() {
			setEnv("TSCONFCHECK_OUTPUT_FORMAT", "json")

			fs := newFlags()
			Expect(fs.Parse([]string{"--format=text", "--disable=js", "--no-color", "--debug"})).To(Succeed())

			cfg, err := loader.Load("", fs)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Output.GetFormat()).To(Equal(pkgconfig.FormatText))
			Expect(cfg.Output.GetFailOn()).To(Equal(pkgconfig.FailOnAdvisory))
			Expect(cfg.Output.IsColorEnabled()).To(BeFalse())
			Expect(cfg.Rules.GetDisabled()).To(Equal([]string{"js"}))
			Expect(cfg.Log.GetLevel()).To(Equal("debug"))
		})

		It("ignores flags left at their defaults", func() {
			fs := newFlags()
			Expect(fs.Parse(nil)).To(Succeed())

			cfg, err := loader.Load("", fs)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Output.GetFormat()).To(Equal(pkgconfig.FormatTable))
			Expect(cfg.Rules.GetDisabled()).To(Equal([]string{"default"}))
		})
	})

	Describe("explicit config file", func() {
		It("replaces the project config", func() {
			writeConfig(loader.ProjectConfigPath(), "[output]\nformat = \"json\"\n")
			explicit := filepath.Join(workDir, "ci", "tsconfcheck.toml")
			writeConfig(explicit, "[output]\nfail_on = \"never\"\n")

			cfg, err := loader.Load(explicit, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Output.GetFormat()).To(Equal(pkgconfig.FormatText))
			Expect(cfg.Output.GetFailOn()).To(Equal(pkgconfig.FailOnNever))
		})

		It("must exist", func() {
			_, err := loader.Load(filepath.Join(workDir, "missing.toml"), nil)
			Expect(err).To(MatchError(ErrConfigNotFound))
		})
	})

	Describe("errors", func() {
		It("rejects world-writable files", func() {
			path := loader.ProjectConfigPath()
			writeConfig(path, "[output]\nformat = \"json\"\n")
			Expect(os.Chmod(path, 0o666)).To(Succeed())

			_, err := loader.Load("", nil)
			Expect(err).To(MatchError(ErrInvalidPermissions))
		})

		It("reports malformed TOML", func() {
			writeConfig(loader.ProjectConfigPath(), "[output\nformat =")

			_, err := loader.Load("", nil)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("project config"))
		})

		It("validates the merged result", func() {
			writeConfig(loader.ProjectConfigPath(), `
[output]
format = "xml"

[rules]
disabled = ["style"]
`)

			_, err := loader.Load("", nil)
			Expect(err).To(MatchError(ErrInvalidConfig))

			cfg, err := loader.LoadWithoutValidation("", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Output.Format).To(Equal(pkgconfig.Format("xml")))
		})
	})
})

var _ = Describe("envTransform", func() {
	DescribeTable("maps variable names to config paths",
		func(key, value, expectedKey string, expectedValue any) {
			k, v := envTransform(key, value)
			Expect(k).To(Equal(expectedKey))

			if expectedValue == nil {
				Expect(v).To(BeNil())

				return
			}

			Expect(v).To(Equal(expectedValue))
		},
		Entry("format", "TSCONFCHECK_OUTPUT_FORMAT", "json", "output.format", "json"),
		Entry("underscored leaf", "TSCONFCHECK_OUTPUT_FAIL_ON", "never", "output.fail_on", "never"),
		Entry("nested leaf", "TSCONFCHECK_RULES_RECOMMENDED_WHEN_ABSENT", "true",
			"rules.recommended.when_absent", "true"),
		Entry("list", "TSCONFCHECK_RULES_DISABLED", "a,,b", "rules.disabled", []string{"a", "b"}),
		Entry("severity map", "TSCONFCHECK_RULES_SEVERITY_JSX", "advisory", "rules.severity.jsx", "advisory"),
		Entry("unknown", "TSCONFCHECK_NOPE", "x", "", nil),
		Entry("empty", "TSCONFCHECK_OUTPUT_FORMAT", "", "", nil),
	)
})
