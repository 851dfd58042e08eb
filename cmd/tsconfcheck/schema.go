package main

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/tsconfcheck/internal/config"
	"github.com/smykla-skalski/tsconfcheck/internal/schema"
)

var (
	schemaOutputDir string
	schemaCompact   bool
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the configuration JSON Schema",
	Long: `Print the JSON Schema of the tsconfcheck configuration file.

With --output, the schema is written to ` + "`<dir>/tsconfcheck.schema.json`" + ` instead
and the written path is printed.`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&schemaOutputDir, "output", "o", "", "Directory to write the schema to")
	schemaCmd.Flags().BoolVar(&schemaCompact, "compact", false, "Print compact JSON")
}

func runSchema(cmd *cobra.Command, _ []string) error {
	data, err := schema.GenerateJSON(!schemaCompact)
	if err != nil {
		return err
	}

	if schemaOutputDir == "" {
		_, err := cmd.OutOrStdout().Write(data)

		return errors.Wrap(err, "writing schema")
	}

	if err := os.MkdirAll(schemaOutputDir, config.ConfigDirMode); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", schemaOutputDir)
	}

	outPath := filepath.Clean(filepath.Join(schemaOutputDir, schema.Filename()))

	if err := os.WriteFile(outPath, data, config.ConfigFileMode); err != nil {
		return errors.Wrapf(err, "failed to write %s", outPath)
	}

	printf(cmd, "%s\n", outPath)

	return nil
}
