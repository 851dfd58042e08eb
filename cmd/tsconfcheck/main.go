// Package main provides the CLI entry point for tsconfcheck.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

const (
	// ExitCodeOK indicates no diagnostic reached the fail_on threshold.
	ExitCodeOK = 0

	// ExitCodeFailed indicates a tsconfig failed to load or a diagnostic reached fail_on.
	ExitCodeFailed = 1

	// ExitCodeUsage indicates invalid arguments or configuration.
	ExitCodeUsage = 2
)

var (
	configPath  string
	debugMode   bool
	noColorFlag bool

	// exitCode is set by commands that finish without error but must fail the process.
	exitCode int
)

func main() {
	os.Exit(mainWithExitCode())
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func mainWithExitCode() int {
	exitCode = ExitCodeOK

	ctx, stop := signalContext()
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}

		return ExitCodeUsage
	}

	return exitCode
}

var rootCmd = &cobra.Command{
	Use:   "tsconfcheck [paths...]",
	Short: "Advisory diagnostics for tsconfig.json files",
	Long: `Advisory diagnostics for tsconfig.json files.

Loads each tsconfig (following its extends chain), merges compilerOptions and
reports redundant, deprecated, inconsistent and ineffective settings.

Paths may be files, directories holding tsconfig.json, or ** globs.
Without arguments the current directory is checked.`,
	Args:              cobra.ArbitraryArgs,
	RunE:              runCheck,
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"Path to configuration file (default: .tsconfcheck.toml)",
	)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(
		&noColorFlag,
		"no-color",
		false,
		"Disable colored output",
	)

	addCheckFlags(rootCmd)
}
