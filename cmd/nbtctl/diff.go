package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/nbtrock/printer"
)

func init() {
	rootCmd.AddCommand(newDiffCmd())
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Show the line differences between the dumps of two files",
		Long: `The diff command compares the text dumps of two NBT files. Removed
lines are prefixed with "-", added lines with "+".

Example:
  nbtctl diff level.dat level.dat.bak`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}

	return cmd
}

func runDiff(args []string) error {
	a, _, err := loadTree(args[0])
	if err != nil {
		return err
	}
	b, _, err := loadTree(args[1])
	if err != nil {
		return err
	}

	out, err := printer.Diff(a, b)
	if err != nil {
		return fmt.Errorf("failed to diff: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"identical": out == "",
			"diff":      out,
		})
	}
	if out == "" {
		printInfo("Files are identical\n")
		return nil
	}
	printInfo("%s", out)

	return nil
}
