package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/cockroachdb/errors"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"

	"github.com/smykla-skalski/tsconfcheck/internal/checker"
	"github.com/smykla-skalski/tsconfcheck/internal/color"
	"github.com/smykla-skalski/tsconfcheck/internal/rules"
)

// TableReporter renders a table with one section per file.
type TableReporter struct {
	theme color.Theme
	width func() int
}

// NewTableReporter creates a TableReporter with the given theme.
func NewTableReporter(theme color.Theme) *TableReporter {
	return &TableReporter{theme: theme, width: termWidth}
}

// Report writes the table followed by the summary.
func (r *TableReporter) Report(w io.Writer, results []checker.FileResult) error {
	if tbl := RenderTable(results, r.width(), r.theme); tbl != "" {
		if _, err := fmt.Fprintln(w, tbl); err != nil {
			return errors.Wrap(err, "writing table")
		}
	}

	if _, err := fmt.Fprintln(w, Summarize(results).render(r.theme)); err != nil {
		return errors.Wrap(err, "writing summary")
	}

	return nil
}

// SeverityIcon returns a single-width icon for a diagnostic severity.
// These are used inside tables where emoji would break column alignment.
func SeverityIcon(s rules.Severity) string {
	switch s {
	case rules.SeverityWarning:
		return "!"
	case rules.SeverityAdvisory:
		return "i"
	default:
		return "?"
	}
}

const errorIcon = "✗"

// RenderTable builds a table from check results using tablewriter. File
// headers span columns 2+ via horizontal merge, keeping the icon column
// narrow. Files without findings are omitted. Long text wraps within cells
// when width leaves room for a table.
func RenderTable(results []checker.FileResult, width int, theme color.Theme) string {
	var shown []checker.FileResult

	for _, res := range results {
		if res.Failed() || len(res.Diagnostics) > 0 {
			shown = append(shown, res)
		}
	}

	if len(shown) == 0 {
		return ""
	}

	headers := []string{"", "Rule", "Option", "Message"}
	colWidths := calcColumnWidthsFor(width, shown)

	var buf bytes.Buffer

	opts := []tablewriter.Option{
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleRounded),
			Settings: tw.Settings{
				Separators: tw.Separators{
					BetweenRows: tw.On,
				},
			},
		})),
		tablewriter.WithPadding(tw.Padding{Left: " ", Right: " "}),
		tablewriter.WithConfig(tablewriter.NewConfigBuilder().
			WithTrimSpace(tw.Off).
			Row().Merging().WithMode(tw.MergeHorizontal).Build().
			Formatting().WithAutoWrap(tw.WrapNormal).Build().
			Build().Build()),
	}

	if colWidths != nil {
		opts = append(opts, tablewriter.WithColumnWidths(toCellWidths(colWidths)))
	}

	t := tablewriter.NewTable(&buf, opts...)

	t.Header(headers)

	for _, res := range shown {
		appendFileRows(t, res, len(headers), colWidths, theme)
	}

	_ = t.Render()

	output := strings.TrimRight(buf.String(), "\n")

	return dimBorders(output, theme)
}

// appendFileRows adds a file header row and one row per diagnostic, or a
// single error row when the file failed to load.
func appendFileRows(
	t *tablewriter.Table,
	res checker.FileResult,
	numCols int,
	colWidths map[int]int,
	theme color.Theme,
) {
	name := theme.Header.Render(shortenPath(res.Path))

	fileRow := []string{""}
	for i := 1; i < numCols; i++ {
		fileRow = append(fileRow, name)
	}

	_ = t.Append(fileRow)

	if res.Failed() {
		_ = t.Append(padRow([]string{
			theme.Error.Render(errorIcon),
			theme.Error.Render("error"),
			"",
			shortenPath(res.Err.Error()),
		}, colWidths))

		return
	}

	for _, d := range res.Diagnostics {
		style := severityStyle(d.Severity, theme)

		_ = t.Append(padRow([]string{
			style.Render(SeverityIcon(d.Severity)),
			string(d.Rule),
			theme.Code.Render(d.Code),
			d.Message,
		}, colWidths))
	}
}

// padRow pads cells to the target column widths when set.
func padRow(row []string, colWidths map[int]int) []string {
	if colWidths == nil {
		return row
	}

	for i, cell := range row {
		if w, ok := colWidths[i]; ok {
			row[i] = padToWidth(cell, w)
		}
	}

	return row
}

// toCellWidths converts content widths to cell widths (content + left/right
// padding) for WithColumnWidths. Tablewriter subtracts padding from these
// values to get the effective content wrapping width.
func toCellWidths(contentWidths map[int]int) tw.Mapper[int, int] {
	const padW = 2 // " " left + " " right

	m := make(tw.Mapper[int, int], len(contentWidths))
	for col, w := range contentWidths {
		m[col] = w + padW
	}

	return m
}

// padToWidth right-pads s with spaces so its display width reaches w.
// ANSI escape codes are excluded from width calculation.
func padToWidth(s string, w int) string {
	visible := runewidth.StringWidth(ansi.Strip(s))
	if visible >= w {
		return s
	}

	return s + strings.Repeat(" ", w-visible)
}

// dimBorders applies the muted theme style to all box-drawing border
// characters in the rendered table output.
func dimBorders(s string, theme color.Theme) string {
	for _, ch := range []string{
		"╭", "╮", "╰", "╯", "│", "─", "┬", "┴", "├", "┤", "┼",
	} {
		s = strings.ReplaceAll(s, ch, theme.Muted.Render(ch))
	}

	return s
}

// calcColumnWidthsFor computes per-column content widths that fill a terminal
// of width w. Returns nil when w is too narrow for a table (or 0, meaning not
// a terminal). Widths are content-only; padding and borders are accounted for.
func calcColumnWidthsFor(w int, results []checker.FileResult) map[int]int {
	const (
		minTableW = 60
		iconW     = 1
		minMsgW   = 24
	)

	if w < minTableW {
		return nil
	}

	ruleW := runewidth.StringWidth("Rule")
	optionW := runewidth.StringWidth("Option")

	for _, r := range results {
		if r.Failed() {
			ruleW = max(ruleW, runewidth.StringWidth("error"))
		}

		for _, d := range r.Diagnostics {
			ruleW = max(ruleW, runewidth.StringWidth(string(d.Rule)))
			optionW = max(optionW, runewidth.StringWidth(d.Code))
		}
	}

	const numCols = 4

	// Each column has: 1 border char + 1 left pad + 1 right pad = 3.
	// Plus 1 trailing border on the right.
	const colOverhead = 3

	available := w - (numCols*colOverhead + 1) - iconW - ruleW

	if available < minMsgW*2 {
		// Cap the option column so the message keeps at least minMsgW chars.
		optionW = min(optionW, max(available-minMsgW, 0))
	}

	msgW := available - optionW
	if msgW < minMsgW || optionW == 0 {
		return nil
	}

	return map[int]int{
		0: iconW,
		1: ruleW,
		2: optionW,
		3: msgW,
	}
}

// termWidth returns the terminal width or 0 if not a terminal.
func termWidth() int {
	if w, _, err := term.GetSize(
		int(os.Stdout.Fd()), //nolint:gosec // fd fits int
	); err == nil && w > 0 {
		return w
	}

	if w, _, err := term.GetSize(
		int(os.Stderr.Fd()), //nolint:gosec // fd fits int
	); err == nil && w > 0 {
		return w
	}

	return 0
}

// homeDir caches the user's home directory for path shortening.
var homeDir string

func init() {
	homeDir, _ = os.UserHomeDir()
}

// shortenPath replaces the user's home directory prefix with ~.
func shortenPath(s string) string {
	if homeDir == "" {
		return s
	}

	return strings.ReplaceAll(s, homeDir, "~")
}
