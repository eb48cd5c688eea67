// Package nbtrock reads, edits and writes Minecraft named binary tag (NBT) data,
// including the little-endian Bedrock edition variant with its optional 8-byte
// framing header (as found in .mcstructure files).
//
// # Core Features
//
//   - Exact binary fidelity for all twelve tag types
//   - Framing header detection on read, opt-in framing on write
//   - Insertion-ordered compounds with unique keys
//   - Path-addressed editing that creates intermediate compounds on demand
//   - Homogeneous list enforcement on write
//   - Big-endian (Java edition) byte order as an option
//
// # Basic Usage
//
// Decoding, editing and re-encoding a structure:
//
//	import "github.com/arloliu/nbtrock"
//
//	t, err := nbtrock.Decode(data)
//	if err != nil {
//	    return err
//	}
//
//	_ = nbtrock.Set(t, "structure/palette/default/block_position_data", tag.NewCompound())
//	_ = nbtrock.Set(t, "format_version", tag.Int(1))
//	_ = nbtrock.Set(t, "obsolete", nil) // removes the key
//
//	out, err := nbtrock.Encode(t, true) // with framing header
//
// Building a tree from scratch:
//
//	t := nbtrock.New("Test")
//	_ = nbtrock.Set(t, "key", tag.Int(3))
//	out, _ := nbtrock.Encode(t, false)
//	// 0A 04 00 'T' 'e' 's' 't' 03 03 00 'k' 'e' 'y' 03 00 00 00 00
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the encoding, tree
// and section packages. For fine-grained control, use those packages directly.
//
// # Thread Safety
//
// Trees are single-owner values with no internal locking. Decode and Encode are
// safe to call concurrently on distinct trees.
package nbtrock

import (
	"fmt"
	"io"

	"github.com/arloliu/nbtrock/encoding"
	"github.com/arloliu/nbtrock/format"
	"github.com/arloliu/nbtrock/internal/hash"
	"github.com/arloliu/nbtrock/section"
	"github.com/arloliu/nbtrock/tag"
	"github.com/arloliu/nbtrock/tree"
)

// New creates a tree with the given name and an empty root compound.
func New(name string) *tree.Tree {
	return tree.New(name)
}

// Decode decodes a complete NBT stream. A leading framing header is skipped
// when the first four bytes read as the little-endian magic 8.
//
// Parameters:
//   - data: Encoded stream
//   - opts: Optional decoder configuration (see encoding.Option)
//
// Returns:
//   - *tree.Tree: The decoded tree
//   - error: Any error from errs; errs.RootTagError when the root is not a compound
func Decode(data []byte, opts ...encoding.Option) (*tree.Tree, error) {
	d, err := encoding.NewDecoder(data, opts...)
	if err != nil {
		return nil, err
	}

	return d.Decode()
}

// DecodeReader reads r to completion and decodes the result.
func DecodeReader(r io.Reader, opts ...encoding.Option) (*tree.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read nbt stream: %w", err)
	}

	return Decode(data, opts...)
}

// Encode serializes t, prepending the 8-byte framing header when framed is true.
// The framed argument overrides any WithFramingHeader option.
func Encode(t *tree.Tree, framed bool, opts ...encoding.Option) ([]byte, error) {
	e, err := newEncoder(framed, opts)
	if err != nil {
		return nil, err
	}

	return e.Encode(t)
}

// EncodeTo serializes t and writes it to w.
func EncodeTo(w io.Writer, t *tree.Tree, framed bool, opts ...encoding.Option) (int64, error) {
	e, err := newEncoder(framed, opts)
	if err != nil {
		return 0, err
	}

	return e.EncodeTo(w, t)
}

func newEncoder(framed bool, opts []encoding.Option) (*encoding.Encoder, error) {
	all := make([]encoding.Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, encoding.WithFramingHeader(framed))

	return encoding.NewEncoder(all...)
}

// PeekHeader reads the first 8 bytes of r. ok is false when r holds fewer than
// 8 bytes; the content is not interpreted.
func PeekHeader(r io.Reader) (hdr [format.HeaderSize]byte, ok bool, err error) {
	return section.Peek(r)
}

// IsFramed reports whether data would be decoded as starting with a framing header.
func IsFramed(data []byte) bool {
	return section.IsFramed(data)
}

// Set stores v at the slash-delimited path, or removes the key when v is nil.
// See tree.Tree.Set.
func Set(t *tree.Tree, path string, v tag.Value) error {
	return t.Set(path, v)
}

// Get returns the value at the slash-delimited path.
func Get(t *tree.Tree, path string) (tag.Value, error) {
	return t.Get(path)
}

// Fingerprint returns the xxHash64 of t's unframed little-endian encoding.
// Two trees have the same fingerprint when they encode to the same bytes.
func Fingerprint(t *tree.Tree) (uint64, error) {
	data, err := Encode(t, false)
	if err != nil {
		return 0, err
	}

	return hash.Sum64(data), nil
}
