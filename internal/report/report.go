// Package report renders check results and maps them to an exit code.
package report

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize/english"

	"github.com/smykla-skalski/tsconfcheck/internal/checker"
	"github.com/smykla-skalski/tsconfcheck/internal/color"
	"github.com/smykla-skalski/tsconfcheck/internal/rules"
	"github.com/smykla-skalski/tsconfcheck/pkg/config"
)

// ErrUnknownFormat is returned when no reporter exists for a format.
var ErrUnknownFormat = errors.New("unknown output format")

// Exit codes.
const (
	ExitOK     = 0
	ExitFailed = 1
)

// Reporter writes check results.
type Reporter interface {
	Report(w io.Writer, results []checker.FileResult) error
}

// New returns the reporter for format.
//
//nolint:ireturn // Reporter interface for polymorphism
func New(format config.Format, theme color.Theme) (Reporter, error) {
	switch format {
	case config.FormatText, "":
		return NewTextReporter(theme), nil
	case config.FormatTable:
		return NewTableReporter(theme), nil
	case config.FormatJSON:
		return NewJSONReporter(), nil
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

// Summary counts results across files.
type Summary struct {
	Files      int
	Errors     int
	Warnings   int
	Advisories int
}

// Summarize counts results.
func Summarize(results []checker.FileResult) Summary {
	s := Summary{Files: len(results)}

	for _, r := range results {
		if r.Failed() {
			s.Errors++

			continue
		}

		s.Warnings += r.Count(rules.SeverityWarning)
		s.Advisories += r.Count(rules.SeverityAdvisory)
	}

	return s
}

// Clean reports whether there is nothing to show.
func (s Summary) Clean() bool {
	return s.Errors == 0 && s.Warnings == 0 && s.Advisories == 0
}

// String returns e.g. "2 files checked: 1 error, 3 warnings, 1 advisory".
func (s Summary) String() string {
	return s.render(color.Theme{})
}

func (s Summary) render(theme color.Theme) string {
	head := english.Plural(s.Files, "file", "") + " checked"

	if s.Clean() {
		return head + ": " + theme.Success.Render("no issues")
	}

	parts := []string{
		styled(english.Plural(s.Errors, "error", ""), s.Errors > 0, theme.Error.Render),
		styled(english.Plural(s.Warnings, "warning", ""), s.Warnings > 0, theme.Warning.Render),
		styled(english.Plural(s.Advisories, "advisory", "advisories"), s.Advisories > 0, theme.Advisory.Render),
	}

	return head + ": " + strings.Join(parts, ", ")
}

func styled(text string, active bool, render func(...string) string) string {
	if active {
		return render(text)
	}

	return text
}

// ExitCode maps results to a process exit code. Load errors always fail;
// diagnostics fail when at or above failOn, and never with FailOnNever.
func ExitCode(results []checker.FileResult, failOn config.FailOn) int {
	threshold, gate := threshold(failOn)

	for _, r := range results {
		if r.Failed() {
			return ExitFailed
		}

		if !gate {
			continue
		}

		for _, d := range r.Diagnostics {
			if d.Severity.AtLeast(threshold) {
				return ExitFailed
			}
		}
	}

	return ExitOK
}

func threshold(failOn config.FailOn) (rules.Severity, bool) {
	switch failOn {
	case config.FailOnNever:
		return "", false
	case config.FailOnAdvisory:
		return rules.SeverityAdvisory, true
	default:
		return rules.SeverityWarning, true
	}
}
