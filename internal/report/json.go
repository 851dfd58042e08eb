package report

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/tsconfcheck/internal/checker"
	"github.com/smykla-skalski/tsconfcheck/internal/rules"
)

// JSONReporter writes a JSON array with one object per file.
type JSONReporter struct{}

// NewJSONReporter creates a new JSONReporter.
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

type jsonFile struct {
	Path        string           `json:"path"`
	Resolved    string           `json:"resolved,omitempty"`
	Chain       []string         `json:"chain,omitempty"`
	Error       string           `json:"error,omitempty"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}

type jsonDiagnostic struct {
	rules.Diagnostic

	Reference string `json:"reference"`
}

// Report writes the results as indented JSON. The array is empty, not null,
// when there are no results.
func (*JSONReporter) Report(w io.Writer, results []checker.FileResult) error {
	files := make([]jsonFile, 0, len(results))

	for _, res := range results {
		f := jsonFile{
			Path:        res.Path,
			Resolved:    res.Resolved,
			Chain:       res.Chain,
			Diagnostics: make([]jsonDiagnostic, 0, len(res.Diagnostics)),
		}

		if res.Failed() {
			f.Error = res.Err.Error()
		}

		for _, d := range res.Diagnostics {
			f.Diagnostics = append(f.Diagnostics, jsonDiagnostic{Diagnostic: d, Reference: d.Reference()})
		}

		files = append(files, f)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(files); err != nil {
		return errors.Wrap(err, "encoding results")
	}

	return nil
}
