package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/tsconfcheck/internal/checker"
	"github.com/smykla-skalski/tsconfcheck/internal/color"
	"github.com/smykla-skalski/tsconfcheck/internal/rules"
)

// TextReporter prints one line per diagnostic followed by a summary.
type TextReporter struct {
	theme color.Theme
}

// NewTextReporter creates a TextReporter with the given theme.
func NewTextReporter(theme color.Theme) *TextReporter {
	return &TextReporter{theme: theme}
}

// Report writes "path: severity [family/code] message" lines, load errors as
// "path: error: message", then the summary.
func (r *TextReporter) Report(w io.Writer, results []checker.FileResult) error {
	for _, res := range results {
		path := r.theme.Path.Render(shortenPath(res.Path))

		if res.Failed() {
			if _, err := fmt.Fprintf(w, "%s: %s: %v\n", path, r.theme.Error.Render("error"), res.Err); err != nil {
				return errors.Wrap(err, "writing report")
			}

			continue
		}

		for _, d := range res.Diagnostics {
			if _, err := fmt.Fprintf(w, "%s: %s %s %s\n",
				path,
				severityStyle(d.Severity, r.theme).Render(string(d.Severity)),
				r.theme.Code.Render("["+string(d.Rule)+"/"+d.Code+"]"),
				d.Message,
			); err != nil {
				return errors.Wrap(err, "writing report")
			}
		}
	}

	if _, err := fmt.Fprintln(w, Summarize(results).render(r.theme)); err != nil {
		return errors.Wrap(err, "writing summary")
	}

	return nil
}

// severityStyle returns the theme style for a severity.
func severityStyle(s rules.Severity, theme color.Theme) lipgloss.Style {
	if s == rules.SeverityWarning {
		return theme.Warning
	}

	return theme.Advisory
}
