package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/nbtrock"
	"github.com/arloliu/nbtrock/tree"
)

var rmOutput string

func init() {
	cmd := newRmCmd()
	cmd.Flags().StringVarP(&rmOutput, "output", "o", "", "Write the result here instead of in place")
	rootCmd.AddCommand(cmd)
}

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <file> <path>",
		Short: "Remove the entry at a slash-separated path",
		Long: `The rm command deletes an entry. Removing a path that does not exist is
not an error and leaves the file untouched.

Example:
  nbtctl rm level.dat abilities/flySpeed
  nbtctl rm level.dat Player -o stripped.dat`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRm(args)
		},
	}

	return cmd
}

func runRm(args []string) error {
	file, path := args[0], args[1]

	t, framed, err := loadTree(file)
	if err != nil {
		return err
	}
	before, err := nbtrock.Fingerprint(t)
	if err != nil {
		return fmt.Errorf("failed to fingerprint: %w", err)
	}

	if err := t.Remove(path); err != nil {
		return fmt.Errorf("failed to remove %q: %w", path, err)
	}

	return writeEdited(editResult{
		File:   file,
		Output: outputPath(file, rmOutput),
		Path:   path,
		Action: "rm",
	}, t, framed, before)
}

// editResult describes the outcome of set and rm
type editResult struct {
	File    string `json:"file"`
	Output  string `json:"output"`
	Path    string `json:"path"`
	Action  string `json:"action"`
	Type    string `json:"type,omitempty"`
	Value   string `json:"value,omitempty"`
	Changed bool   `json:"changed"`
	Written bool   `json:"written"`
}

func outputPath(file, output string) string {
	if output == "" {
		return file
	}

	return output
}

// writeEdited saves t unless an in-place edit left its content unchanged
func writeEdited(res editResult, t *tree.Tree, framed bool, before uint64) error {
	after, err := nbtrock.Fingerprint(t)
	if err != nil {
		return fmt.Errorf("failed to fingerprint: %w", err)
	}
	res.Changed = after != before

	if res.Changed || res.Output != res.File {
		if err := saveTree(res.Output, t, framed); err != nil {
			return err
		}
		res.Written = true
	}

	if jsonOut {
		return printJSON(res)
	}

	switch {
	case !res.Changed:
		printInfo("%s: %s unchanged\n", res.Action, res.Path)
	case res.Type != "":
		printInfo("%s: %s = %s (%s)\n", res.Action, res.Path, res.Value, res.Type)
	default:
		printInfo("%s: %s removed\n", res.Action, res.Path)
	}
	if res.Written {
		printInfo("Wrote %s\n", res.Output)
	}

	return nil
}
