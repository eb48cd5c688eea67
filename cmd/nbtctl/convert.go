package main

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/nbtrock/encoding"
)

var (
	convertFramed      bool
	convertToBigEndian bool
)

func init() {
	cmd := newConvertCmd()
	cmd.Flags().BoolVar(&convertFramed, "framed", false, "Prepend the 8-byte framing header")
	cmd.Flags().BoolVar(&convertToBigEndian, "to-big-endian", false, "Write big-endian (Java edition)")
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Re-encode a file with or without framing or in another byte order",
		Long: `The convert command decodes <in> and writes it to <out>. The output is
unframed little-endian unless --framed or --to-big-endian is given; use the
global --big-endian flag when <in> is a Java edition file.

Example:
  nbtctl convert level.dat level.raw
  nbtctl convert level.raw level.dat --framed
  nbtctl convert player.nbt player.bedrock --big-endian`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}

	return cmd
}

func runConvert(args []string) error {
	in, out := args[0], args[1]

	t, wasFramed, err := loadTree(in)
	if err != nil {
		return err
	}

	order := encoding.WithLittleEndian()
	if convertToBigEndian {
		order = encoding.WithBigEndian()
	}
	if err := saveTree(out, t, convertFramed, order); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{
			"input":      in,
			"output":     out,
			"was_framed": wasFramed,
			"framed":     convertFramed,
			"big_endian": convertToBigEndian,
		})
	}
	printInfo("Converted %s -> %s (framed: %t -> %t)\n", in, out, wasFramed, convertFramed)

	return nil
}
