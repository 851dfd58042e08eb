package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/tsconfcheck/internal/config"
)

var (
	globalFlag bool
	forceFlag  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize tsconfcheck configuration",
	Long: `Initialize tsconfcheck configuration file.

By default, creates a project configuration file (.tsconfcheck.toml) in the
current directory. Use --global or -g to create the global configuration file
($XDG_CONFIG_HOME/tsconfcheck/config.toml, by default
~/.config/tsconfcheck/config.toml).

The file holds the default settings and a schema directive for editor support.
Use --force to overwrite an existing configuration file.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(
		&globalFlag,
		"global",
		"g",
		false,
		"Initialize global configuration",
	)

	initCmd.Flags().BoolVar(
		&forceFlag,
		"force",
		false,
		"Overwrite existing configuration file",
	)
}

func runInit(cmd *cobra.Command, _ []string) error {
	writer, err := config.NewWriter()
	if err != nil {
		return err
	}

	path := writer.ProjectConfigPath()
	if globalFlag {
		path = writer.GlobalConfigPath()
	}

	if err := writer.WriteFile(path, config.DefaultConfig(), forceFlag); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return errors.WithHint(err, "Use --force to overwrite")
		}

		return err
	}

	printf(cmd, "Created %s\n", path)

	return nil
}
