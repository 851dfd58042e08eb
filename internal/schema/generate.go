// Package schema generates JSON Schema from the tsconfcheck config types.
package schema

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"

	"github.com/smykla-skalski/tsconfcheck/internal/rules"
	"github.com/smykla-skalski/tsconfcheck/pkg/config"
)

const (
	schemaURI = "https://json-schema.org/draft/2020-12/schema"
	title     = "tsconfcheck configuration"

	// SchemaURL is where the published schema lives.
	SchemaURL = "https://raw.githubusercontent.com/smykla-skalski/tsconfcheck/main/schema/tsconfcheck.schema.json"
)

// Filename returns the file name the schema is published under.
func Filename() string {
	return "tsconfcheck.schema.json"
}

// SchemaDirective returns the Taplo directive binding a TOML file to the schema.
func SchemaDirective() string {
	return "#:schema " + SchemaURL
}

// Generate produces a JSON Schema from the config.Config struct.
func Generate() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
	}

	s := r.Reflect(&config.Config{})
	s.Version = schemaURI
	s.Title = title

	constrainRules(s)

	return s
}

// constrainRules narrows the free-form rules fields to the registered families and severities.
func constrainRules(s *jsonschema.Schema) {
	def, ok := s.Definitions["RulesConfig"]
	if !ok || def.Properties == nil {
		return
	}

	families := make([]any, 0, len(rules.Families()))
	for _, f := range rules.Families() {
		families = append(families, string(f))
	}

	severities := []any{string(rules.SeverityAdvisory), string(rules.SeverityWarning)}

	if disabled, ok := def.Properties.Get("disabled"); ok && disabled.Items != nil {
		disabled.Items.Enum = families
	}

	if severity, ok := def.Properties.Get("severity"); ok {
		severity.PropertyNames = &jsonschema.Schema{Enum: families}
		severity.AdditionalProperties = &jsonschema.Schema{Type: "string", Enum: severities}
	}
}

// GenerateJSON produces a JSON Schema as bytes.
// When indent is true, the output is pretty-printed.
func GenerateJSON(indent bool) ([]byte, error) {
	s := Generate()

	var (
		data []byte
		err  error
	)

	if indent {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = json.Marshal(s)
	}

	if err != nil {
		return nil, errors.Wrap(err, "marshaling schema to JSON")
	}

	// Append trailing newline for file output.
	return append(data, '\n'), nil
}
