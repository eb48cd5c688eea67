package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/nbtrock/printer"
)

var (
	dumpFormat   string
	dumpNoHeader bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "text", "Output format (text, json, yaml)")
	cmd.Flags().BoolVar(&dumpNoHeader, "no-header", false, "Omit the header line in text output")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the whole tree",
		Long: `The dump command prints every entry of an NBT file.

Text output lists each entry as TAG_X(name): value with nested blocks for
compounds and lists. JSON output is externally tagged ({"Int": 3}) and YAML
output marks each value with a local tag (!Int 3). --json is a shorthand for
--format json.

Example:
  nbtctl dump level.dat
  nbtctl dump level.dat --format yaml
  nbtctl dump player.nbt --big-endian --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}

	return cmd
}

func runDump(args []string) error {
	t, _, err := loadTree(args[0])
	if err != nil {
		return err
	}

	opts, err := printerOptions(dumpFormat)
	if err != nil {
		return err
	}
	opts.ShowHeader = !dumpNoHeader

	if err := printer.New(os.Stdout, opts).Print(t); err != nil {
		return fmt.Errorf("failed to print tree: %w", err)
	}

	return nil
}

// printerOptions builds printer options from a --format value and global flags
func printerOptions(format string) (printer.Options, error) {
	opts := printer.DefaultOptions()

	f, err := printer.ParseFormat(format)
	if err != nil {
		return opts, err
	}
	if jsonOut {
		f = printer.FormatJSON
	}
	opts.Format = f
	opts.Color = f == printer.FormatText && useColor()

	return opts, nil
}
