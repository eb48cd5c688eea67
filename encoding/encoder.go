package encoding

import (
	"fmt"
	"io"
	"math"

	"github.com/arloliu/nbtrock/endian"
	"github.com/arloliu/nbtrock/errs"
	"github.com/arloliu/nbtrock/format"
	"github.com/arloliu/nbtrock/internal/pool"
	"github.com/arloliu/nbtrock/section"
	"github.com/arloliu/nbtrock/tag"
	"github.com/arloliu/nbtrock/tree"
)

// Encoder serializes a tree.Tree into the binary tag format.
//
// Output layout:
//
//	[framing header, 8 bytes, optional] 0x0A <name> <root compound body> 0x00
//
// An Encoder holds no per-call state and may be reused for any number of trees,
// but it is NOT thread-safe.
type Encoder struct {
	cfg    *Config
	engine endian.EndianEngine
}

// NewEncoder creates a new Encoder.
//
// Parameters:
//   - opts: Optional configuration (byte order, framing header, max depth)
//
// Returns:
//   - *Encoder: New encoder instance
//   - error: Configuration error if invalid options provided
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Encoder{cfg: cfg, engine: cfg.engine}, nil
}

// Framed reports whether the encoder prepends the framing header.
func (e *Encoder) Framed() bool {
	return e.cfg.framed
}

// Encode serializes t and returns a newly allocated byte slice.
//
// Nothing is returned on failure; in particular a heterogeneous list is rejected
// before any of its bytes are produced.
//
// Returns:
//   - []byte: Encoded stream
//   - error: errs.RootTagError, errs.HeterogeneousListError, ErrStringTooLong or ErrMaxDepthExceeded
func (e *Encoder) Encode(t *tree.Tree) ([]byte, error) {
	buf := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(buf)

	if err := e.encode(buf, t); err != nil {
		return nil, err
	}

	return append([]byte(nil), buf.Bytes()...), nil
}

// EncodeTo serializes t and writes it to w in a single Write call.
func (e *Encoder) EncodeTo(w io.Writer, t *tree.Tree) (int64, error) {
	buf := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(buf)

	if err := e.encode(buf, t); err != nil {
		return 0, err
	}

	n, err := buf.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("write encoded tree: %w", err)
	}

	return n, nil
}

func (e *Encoder) encode(buf *pool.ByteBuffer, t *tree.Tree) error {
	root, err := t.Compound()
	if err != nil {
		return err
	}

	start := buf.Len()
	if e.cfg.framed {
		// placeholder, patched once the body length is known
		buf.B = append(buf.B, make([]byte, format.HeaderSize)...)
	}

	bodyStart := buf.Len()
	buf.B = append(buf.B, byte(format.TagCompound))
	if err := e.writeString(buf, t.Name); err != nil {
		buf.Truncate(start)
		return err
	}
	if err := e.writeCompound(buf, root, 1); err != nil {
		buf.Truncate(start)
		return err
	}

	if e.cfg.framed {
		hdr := section.NewHeader(buf.Len() - bodyStart)
		copy(buf.B[start:bodyStart], hdr.Bytes())
	}

	return nil
}

func (e *Encoder) writeValue(buf *pool.ByteBuffer, v tag.Value, depth int) error {
	switch tv := v.(type) {
	case tag.Byte:
		buf.B = append(buf.B, byte(tv))
	case tag.Short:
		buf.B = e.engine.AppendUint16(buf.B, uint16(tv)) //nolint:gosec
	case tag.Int:
		buf.B = e.engine.AppendUint32(buf.B, uint32(tv)) //nolint:gosec
	case tag.Long:
		buf.B = e.engine.AppendUint64(buf.B, uint64(tv)) //nolint:gosec
	case tag.Float:
		buf.B = e.engine.AppendUint32(buf.B, math.Float32bits(float32(tv)))
	case tag.Double:
		buf.B = e.engine.AppendUint64(buf.B, math.Float64bits(float64(tv)))
	case tag.ByteArray:
		buf.Grow(4 + len(tv))
		buf.B = e.engine.AppendUint32(buf.B, uint32(len(tv))) //nolint:gosec
		for _, b := range tv {
			buf.B = append(buf.B, byte(b))
		}
	case tag.String:
		return e.writeString(buf, string(tv))
	case tag.List:
		return e.writeList(buf, tv, depth+1)
	case *tag.Compound:
		if tv == nil {
			return fmt.Errorf("%w: nil compound", errs.ErrInvalidValue)
		}

		return e.writeCompound(buf, tv, depth+1)
	case tag.IntArray:
		buf.Grow(4 + 4*len(tv))
		buf.B = e.engine.AppendUint32(buf.B, uint32(len(tv))) //nolint:gosec
		for _, n := range tv {
			buf.B = e.engine.AppendUint32(buf.B, uint32(n)) //nolint:gosec
		}
	case tag.LongArray:
		buf.Grow(4 + 8*len(tv))
		buf.B = e.engine.AppendUint32(buf.B, uint32(len(tv))) //nolint:gosec
		for _, n := range tv {
			buf.B = e.engine.AppendUint64(buf.B, uint64(n)) //nolint:gosec
		}
	default:
		return fmt.Errorf("%w: unsupported value %T", errs.ErrInvalidTagID, v)
	}

	return nil
}

// writeList writes the element type byte, the count and the elements.
// The element type is taken from the first element; an empty list is written
// with TagEnd and a zero count.
func (e *Encoder) writeList(buf *pool.ByteBuffer, l tag.List, depth int) error {
	if depth > e.cfg.maxDepth {
		return fmt.Errorf("%w: %d", errs.ErrMaxDepthExceeded, e.cfg.maxDepth)
	}

	if len(l) > 0 && l[0] == nil {
		return fmt.Errorf("%w: list element 0 has no value", errs.ErrInvalidValue)
	}

	elemID := l.ElemID()
	for i, elem := range l {
		if elem == nil {
			return &errs.HeterogeneousListError{Want: elemID, Got: format.TagEnd, Index: i}
		}
		if got := elem.ID(); got != elemID {
			return &errs.HeterogeneousListError{Want: elemID, Got: got, Index: i}
		}
	}

	buf.B = append(buf.B, byte(elemID))
	buf.B = e.engine.AppendUint32(buf.B, uint32(len(l))) //nolint:gosec
	for _, elem := range l {
		if err := e.writeValue(buf, elem, depth); err != nil {
			return err
		}
	}

	return nil
}

// writeCompound writes (id, name, value) for every entry in order, then TagEnd.
func (e *Encoder) writeCompound(buf *pool.ByteBuffer, c *tag.Compound, depth int) error {
	if depth > e.cfg.maxDepth {
		return fmt.Errorf("%w: %d", errs.ErrMaxDepthExceeded, e.cfg.maxDepth)
	}

	for name, v := range c.All() {
		if v == nil {
			return fmt.Errorf("%w: entry %q has no value", errs.ErrInvalidValue, name)
		}
		buf.B = append(buf.B, byte(v.ID()))
		if err := e.writeString(buf, name); err != nil {
			return err
		}
		if err := e.writeValue(buf, v, depth); err != nil {
			return err
		}
	}
	buf.B = append(buf.B, byte(format.TagEnd))

	return nil
}

func (e *Encoder) writeString(buf *pool.ByteBuffer, s string) error {
	if len(s) > format.MaxStringLength {
		return fmt.Errorf("%w: %d bytes", errs.ErrStringTooLong, len(s))
	}

	buf.Grow(2 + len(s))
	buf.B = e.engine.AppendUint16(buf.B, uint16(len(s))) //nolint:gosec
	buf.B = append(buf.B, s...)

	return nil
}
