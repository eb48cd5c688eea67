package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/nbtrock"
	"github.com/arloliu/nbtrock/format"
	"github.com/arloliu/nbtrock/tag"
)

var (
	setType   string
	setOutput string
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVarP(&setType, "type", "t", "String",
		"Value type (Byte, Short, Int, Long, Float, Double, String, ByteArray, IntArray, LongArray, List, Compound)")
	cmd.Flags().StringVarP(&setOutput, "output", "o", "", "Write the result here instead of in place")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <path> <value>",
		Short: "Set the value at a slash-separated path",
		Long: `The set command stores a value at a path, creating missing intermediate
compounds. An existing entry keeps its position. Arrays are comma-separated;
List and Compound accept only an empty value. The file keeps its framing.

Example:
  nbtctl set level.dat LevelName "My World"
  nbtctl set level.dat abilities/flySpeed 0.1 --type Float
  nbtctl set level.dat data/ids 1,2,3 --type IntArray -o edited.dat`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}

	return cmd
}

func runSet(args []string) error {
	file, path, text := args[0], args[1], args[2]

	id, ok := format.ParseKind(setType)
	if !ok {
		return fmt.Errorf("unknown value type %q", setType)
	}
	v, err := tag.ParseValue(id, text)
	if err != nil {
		return fmt.Errorf("failed to parse value: %w", err)
	}

	t, framed, err := loadTree(file)
	if err != nil {
		return err
	}
	before, err := nbtrock.Fingerprint(t)
	if err != nil {
		return fmt.Errorf("failed to fingerprint: %w", err)
	}

	if err := nbtrock.Set(t, path, v); err != nil {
		return fmt.Errorf("failed to set %q: %w", path, err)
	}

	return writeEdited(editResult{
		File:   file,
		Output: outputPath(file, setOutput),
		Path:   path,
		Action: "set",
		Type:   id.Kind(),
		Value:  text,
	}, t, framed, before)
}
