package schema_test

import (
	"encoding/json"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/tsconfcheck/internal/schema"
)

var _ = Describe("Generate", func() {
	var (
		s    map[string]any
		defs map[string]any
	)

	BeforeEach(func() {
		data, err := schema.GenerateJSON(true)
		Expect(err).NotTo(HaveOccurred())
		Expect(json.Unmarshal(data, &s)).To(Succeed())

		var ok bool

		defs, ok = s["$defs"].(map[string]any)
		Expect(ok).To(BeTrue(), "$defs should exist")
	})

	It("sets the $schema URI", func() {
		Expect(s["$schema"]).To(Equal("https://json-schema.org/draft/2020-12/schema"))
	})

	It("sets the title", func() {
		Expect(s["title"]).To(Equal("tsconfcheck configuration"))
	})

	It("includes top-level properties", func() {
		props, ok := s["properties"].(map[string]any)
		Expect(ok).To(BeTrue())

		for _, key := range []string{"rules", "output", "log"} {
			Expect(props).To(HaveKey(key), "missing top-level property: %s", key)
		}
	})

	Describe("custom type schemas", func() {
		It("defines Format as string with enum", func() {
			format, ok := defs["Format"].(map[string]any)
			Expect(ok).To(BeTrue(), "Format def should exist")
			Expect(format["type"]).To(Equal("string"))
			Expect(format["enum"]).To(ConsistOf("text", "table", "json"))
		})

		It("defines FailOn as string with enum", func() {
			failOn, ok := defs["FailOn"].(map[string]any)
			Expect(ok).To(BeTrue(), "FailOn def should exist")
			Expect(failOn["enum"]).To(ConsistOf("warning", "advisory", "never"))
		})
	})

	Describe("rules section", func() {
		var props map[string]any

		BeforeEach(func() {
			rulesDef, ok := defs["RulesConfig"].(map[string]any)
			Expect(ok).To(BeTrue(), "RulesConfig def should exist")

			props, ok = rulesDef["properties"].(map[string]any)
			Expect(ok).To(BeTrue())
		})

		It("restricts disabled entries to known families", func() {
			disabled, ok := props["disabled"].(map[string]any)
			Expect(ok).To(BeTrue())

			items, ok := disabled["items"].(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(items["enum"]).To(ConsistOf("strict", "js", "deprecated", "jsx", "recommended", "default"))
		})

		It("restricts severity overrides", func() {
			severity, ok := props["severity"].(map[string]any)
			Expect(ok).To(BeTrue())

			values, ok := severity["additionalProperties"].(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(values["enum"]).To(ConsistOf("advisory", "warning"))
		})
	})

	Describe("GenerateJSON", func() {
		It("produces compact JSON when indent is false", func() {
			data, err := schema.GenerateJSON(false)
			Expect(err).NotTo(HaveOccurred())

			// Compact JSON is a single line plus trailing newline
			Expect(strings.Count(string(data), "\n")).To(Equal(1))
		})

		It("produces indented JSON when indent is true", func() {
			data, err := schema.GenerateJSON(true)
			Expect(err).NotTo(HaveOccurred())

			Expect(strings.Count(string(data), "\n")).To(BeNumerically(">", 10))
		})
	})

	Describe("SchemaDirective", func() {
		It("is a Taplo schema comment", func() {
			Expect(schema.SchemaDirective()).To(HavePrefix("#:schema https://"))
		})
	})
})
