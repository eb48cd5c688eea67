package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/arloliu/nbtrock"
	"github.com/arloliu/nbtrock/encoding"
	"github.com/arloliu/nbtrock/tree"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	noColor   bool
	bigEndian bool
)

var rootCmd = &cobra.Command{
	Use:   "nbtctl",
	Short: "Inspect and edit named binary tag (NBT) files",
	Long: `nbtctl reads, prints and edits NBT files as used by Minecraft Bedrock
(little-endian, optionally framed by an 8-byte header) and Java edition
(big-endian, with --big-endian).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		BoolVar(&bigEndian, "big-endian", false, "Read files as big-endian (Java edition)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

// useColor reports whether text output should be colored
func useColor() bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}

	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// codecOptions returns the decoder/encoder options selected by global flags
func codecOptions() []encoding.Option {
	if bigEndian {
		return []encoding.Option{encoding.WithBigEndian()}
	}

	return []encoding.Option{encoding.WithLittleEndian()}
}

// loadTree reads and decodes path, reporting whether it carried a framing header
func loadTree(path string) (*tree.Tree, bool, error) {
	printVerbose("Reading: %s\n", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read file: %w", err)
	}

	t, err := nbtrock.Decode(data, codecOptions()...)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	framed := nbtrock.IsFramed(data)
	printVerbose("Decoded %d bytes (framed: %t)\n", len(data), framed)

	return t, framed, nil
}

// saveTree encodes t and writes it to path
func saveTree(path string, t *tree.Tree, framed bool, opts ...encoding.Option) error {
	if len(opts) == 0 {
		opts = codecOptions()
	}

	data, err := nbtrock.Encode(t, framed, opts...)
	if err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	printVerbose("Wrote %d bytes to %s (framed: %t)\n", len(data), path, framed)

	return nil
}
