package config

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pelletier/go-toml/v2"

	"github.com/smykla-skalski/tsconfcheck/internal/schema"
	"github.com/smykla-skalski/tsconfcheck/pkg/config"
)

var _ = Describe("Writer", func() {
	var (
		homeDir string
		workDir string
		writer  *Writer
	)

	BeforeEach(func() {
		homeDir = GinkgoT().TempDir()
		workDir = GinkgoT().TempDir()
		writer = NewWriterWithDirs(homeDir, workDir)
	})

	Describe("Encode", func() {
		It("starts with the schema directive", func() {
			data, err := Encode(DefaultConfig())
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.HasPrefix(string(data), schema.SchemaDirective()+"\n")).To(BeTrue())
		})

		It("produces TOML that decodes back to the same config", func() {
			cfg := DefaultConfig()
			cfg.Rules.Disabled = []string{"default"}
			cfg.Rules.Severity = map[string]string{"js": "advisory"}
			cfg.Output.Format = config.FormatJSON

			data, err := Encode(cfg)
			Expect(err).NotTo(HaveOccurred())

			var decoded config.Config
			Expect(toml.Unmarshal(data, &decoded)).To(Succeed())
			Expect(decoded.Rules.Disabled).To(Equal([]string{"default"}))
			Expect(decoded.Rules.Severity).To(HaveKeyWithValue("js", "advisory"))
			Expect(decoded.Output.GetFormat()).To(Equal(config.FormatJSON))
			Expect(decoded.Output.GetFailOn()).To(Equal(config.FailOnWarning))
			Expect(decoded.Log.GetLevel()).To(Equal("error"))
		})
	})

	Describe("WriteProject", func() {
		It("writes a file the loader reads back", func() {
			cfg := DefaultConfig()
			cfg.Output.FailOn = config.FailOnNever

			Expect(writer.WriteProject(cfg, false)).To(Succeed())

			info, err := os.Stat(writer.ProjectConfigPath())
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Mode().Perm() & 0o002).To(BeZero())

			loaded, err := NewKoanfLoaderWithDirs(homeDir, workDir).Load("", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Output.GetFailOn()).To(Equal(config.FailOnNever))
		})

		It("refuses to overwrite without force", func() {
			Expect(writer.WriteProject(DefaultConfig(), false)).To(Succeed())
			Expect(writer.WriteProject(DefaultConfig(), false)).To(MatchError(ErrConfigExists))
			Expect(writer.WriteProject(DefaultConfig(), true)).To(Succeed())
		})

		It("rejects a nil config", func() {
			Expect(writer.WriteProject(nil, false)).To(MatchError(ErrInvalidConfig))
		})
	})

	Describe("WriteGlobal", func() {
		It("creates the global config directory", func() {
			Expect(writer.WriteGlobal(DefaultConfig(), false)).To(Succeed())
			Expect(writer.GlobalConfigPath()).To(BeARegularFile())
			Expect(filepath.Dir(writer.GlobalConfigPath())).To(BeADirectory())
			Expect(writer.GlobalConfigPath()).
				To(Equal(NewKoanfLoaderWithDirs(homeDir, workDir).GlobalConfigPath()))
		})
	})
})
