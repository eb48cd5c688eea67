// Package printer renders decoded trees for humans and for other tools.
//
// Three formats are available: a text dump, an externally tagged JSON object and
// a tagged YAML document. Compound entries are always emitted in their stored order.
package printer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/nbtrock/tag"
	"github.com/arloliu/nbtrock/tree"
)

const DefaultIndentSize = 2

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs the indented "N entry(ies)" dump.
	FormatText Format = "text"

	// FormatJSON outputs externally tagged JSON, e.g. {"Int": 3}.
	FormatJSON Format = "json"

	// FormatYAML outputs YAML with one local tag per value kind, e.g. !Int 3.
	FormatYAML Format = "yaml"
)

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json, yaml).
	// Default: FormatText
	Format Format

	// Color highlights tag labels, names and values in text output.
	// Default: false
	Color bool

	// ShowHeader prints the framing header line in text output.
	// Default: true
	ShowHeader bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		Color:      false,
		ShowHeader: true,
	}
}

// Printer writes trees and single values to an io.Writer.
type Printer struct {
	opts   Options
	writer io.Writer
	colors *palette
}

// New creates a new Printer.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	err := p.Print(t)
func New(w io.Writer, opts Options) *Printer {
	if opts.Format == "" {
		opts.Format = FormatText
	}

	return &Printer{
		opts:   opts,
		writer: w,
		colors: newPalette(opts.Color),
	}
}

// Print writes the whole tree in the configured format.
func (p *Printer) Print(t *tree.Tree) error {
	if _, err := t.Compound(); err != nil {
		return err
	}

	switch p.opts.Format {
	case FormatJSON:
		return p.printTreeJSON(t)
	case FormatYAML:
		return p.printTreeYAML(t)
	default:
		return p.printTreeText(t)
	}
}

// PrintValue writes a single value; name labels it in text output.
func (p *Printer) PrintValue(name string, v tag.Value) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printValueJSON(v)
	case FormatYAML:
		return p.printValueYAML(v)
	default:
		return p.printValueText(name, v)
	}
}

// Text returns the uncolored text dump of t.
func Text(t *tree.Tree) (string, error) {
	var buf bytes.Buffer
	if err := New(&buf, DefaultOptions()).Print(t); err != nil {
		return "", err
	}

	return buf.String(), nil
}
