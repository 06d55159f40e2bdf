package main

import (
	"fmt"

	"github.com/cdfkit/cdfkit/internal/mmapsrc"
	"github.com/cdfkit/cdfkit/pkg/cdf"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Print a NetCDF file's dimensions, attributes, and variables",
		Long: `dump parses a NetCDF classic or 64-bit-offset file and prints its
dimensions (marking the record dimension), global attributes, and each
variable's type, shape, and attributes.

Example:
  cdfctl dump sample.nc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
}

func runDump(path string) error {
	logger.Debug("opening file", "path", path)
	src, err := mmapsrc.Open(path)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	defer src.Close()

	ds, err := cdf.Read(src)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	logger.Debug("parsed dataset", "dims", len(ds.Dims), "attrs", len(ds.Attrs), "vars", len(ds.Vars))

	fmt.Print(cdf.Describe(ds))
	return nil
}
