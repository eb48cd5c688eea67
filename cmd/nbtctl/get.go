package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/nbtrock"
	"github.com/arloliu/nbtrock/printer"
	"github.com/arloliu/nbtrock/tree"
)

var getFormat string

func init() {
	cmd := newGetCmd()
	cmd.Flags().StringVarP(&getFormat, "format", "f", "text", "Output format (text, json, yaml)")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print the value at a slash-separated path",
		Long: `The get command prints a single value. Path segments are separated by "/"
and name nested compounds from the root.

Example:
  nbtctl get level.dat LevelName
  nbtctl get level.dat abilities/flySpeed
  nbtctl get level.dat abilities --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}

	return cmd
}

func runGet(args []string) error {
	path := args[1]

	t, _, err := loadTree(args[0])
	if err != nil {
		return err
	}

	v, err := nbtrock.Get(t, path)
	if err != nil {
		return fmt.Errorf("failed to get %q: %w", path, err)
	}

	opts, err := printerOptions(getFormat)
	if err != nil {
		return err
	}

	segs := tree.SplitPath(path)

	return printer.New(os.Stdout, opts).PrintValue(segs[len(segs)-1], v)
}
