// Package cli handles the command-line interface logic
// using the Cobra library.
package cli

import (
	"github.com/spf13/cobra"
)

// ValidateOptions carries the flags of the root command.
type ValidateOptions struct {
	DataDir string
}

// NewRootCmd creates and configures the main "root" command for the
// application. dbcheck validates directly from the root command: with
// file arguments it validates those tables, without arguments it
// validates the full fixed set from the data directory.
func NewRootCmd() *cobra.Command {
	opts := &ValidateOptions{}

	rootCmd := &cobra.Command{
		Use:   "dbcheck [file ...]",
		Short: "dbcheck - consistency checks for a flat-file channel database",
		Long: `dbcheck validates a relational dataset stored as flat CSV tables.
It checks per-field schema rules, cross-table references (foreign keys,
list-valued references) and duplicate keys, and reports every violation
with its file line number.`,
		Version:      "0.1.0",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.DataDir, "data-dir", "d", "", "Directory containing the table files (default $DBCHECK_DATA_DIR or \"data\")")

	return rootCmd
}
