package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/tsconfcheck/internal/color"
	internalconfig "github.com/smykla-skalski/tsconfcheck/internal/config"
	"github.com/smykla-skalski/tsconfcheck/internal/rules"
	"github.com/smykla-skalski/tsconfcheck/pkg/config"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List rule families",
	Long: `List the registered rule families with their effective severity and
whether the current configuration enables them.`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

var (
	rulesFormat  string
	rulesDisable []string
)

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.Flags().StringVarP(
		&rulesFormat,
		"format",
		"f",
		string(config.FormatTable),
		"Output format (table, json)",
	)
	rulesCmd.Flags().StringSliceVar(
		&rulesDisable,
		"disable",
		[]string{},
		"Comma-separated list of rule families to show as disabled",
	)
}

func runRules(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	engine, err := rules.NewEngine(nil, internalconfig.EngineOptions(cfg)...)
	if err != nil {
		return errors.Wrap(err, "failed to create rule engine")
	}

	infos := engine.Rules()

	if rulesFormat == string(config.FormatJSON) {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		return errors.Wrap(enc.Encode(infos), "encoding rules")
	}

	theme := color.NewTheme(color.Enabled(cfg.Output.IsColorEnabled(), stdoutFile(cmd)))

	return renderRules(cmd.OutOrStdout(), infos, theme)
}

func renderRules(w io.Writer, infos []rules.Info, theme color.Theme) error {
	t := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleRounded),
		})),
		tablewriter.WithPadding(tw.Padding{Left: " ", Right: " "}),
	)

	t.Header([]string{"Family", "Severity", "Enabled", "Description"})

	for _, info := range infos {
		severity := theme.Advisory.Render(string(info.Severity))
		if info.Severity == rules.SeverityWarning {
			severity = theme.Warning.Render(string(info.Severity))
		}

		enabled := strconv.FormatBool(info.Enabled)
		if !info.Enabled {
			enabled = theme.Muted.Render(enabled)
		}

		if err := t.Append([]string{string(info.Family), severity, enabled, info.Description}); err != nil {
			return errors.Wrap(err, "building rules table")
		}
	}

	if err := t.Render(); err != nil {
		return errors.Wrap(err, "rendering rules table")
	}

	return nil
}

// stdoutFile returns the command's output as a file when it is one.
func stdoutFile(cmd *cobra.Command) *os.File {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return f
	}

	return nil
}

// printf writes to the command's output.
func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
