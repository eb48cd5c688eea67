package encoding

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/arloliu/nbtrock/endian"
	"github.com/arloliu/nbtrock/errs"
	"github.com/arloliu/nbtrock/format"
	"github.com/arloliu/nbtrock/section"
	"github.com/arloliu/nbtrock/tag"
	"github.com/arloliu/nbtrock/tree"
)

// Decoder decodes an in-memory NBT stream into a tree.Tree.
//
// Note: The Decoder is NOT thread-safe. Each decoder instance should be used by a single goroutine at a time.
//
// Note: The Decoder is NOT reusable. After calling Decode, a new decoder must be created for further decoding.
type Decoder struct {
	data   []byte
	pos    int
	framed bool
	cfg    *Config
	engine endian.EndianEngine
}

// NewDecoder creates a Decoder over data.
//
// Parameters:
//   - data: Complete NBT stream, optionally starting with the 8-byte framing header
//   - opts: Optional configuration (byte order, max depth, header detection)
//
// Returns:
//   - *Decoder: New decoder positioned at the first tag
//   - error: Configuration error if invalid options provided
func NewDecoder(data []byte, opts ...Option) (*Decoder, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	d := &Decoder{
		data:   data,
		cfg:    cfg,
		engine: cfg.engine,
	}

	if cfg.detectHeader && section.IsFramed(data) {
		d.framed = true
		d.pos = format.HeaderSize
	}

	return d, nil
}

// Framed reports whether the stream was detected as starting with a framing header.
func (d *Decoder) Framed() bool {
	return d.framed
}

// Offset returns the current read position in the stream, header included.
func (d *Decoder) Offset() int64 {
	return int64(d.pos)
}

// Decode reads the root tag and everything beneath it.
//
// Returns:
//   - *tree.Tree: Decoded tree with its root compound
//   - error: errs.RootTagError if the first tag is not a Compound, errs.InvalidTagIDError,
//     errs.UTF8Error, ErrTruncated, ErrNegativeLength or ErrMaxDepthExceeded
func (d *Decoder) Decode() (*tree.Tree, error) {
	if len(d.data) < 4 {
		return nil, fmt.Errorf("%w: stream is %d bytes", errs.ErrTruncated, len(d.data))
	}

	id, name, err := d.readHeader()
	if err != nil {
		return nil, err
	}
	if id != format.TagCompound {
		return nil, &errs.RootTagError{ID: id}
	}

	root, err := d.readCompound(1)
	if err != nil {
		return nil, err
	}

	return &tree.Tree{Name: name, Root: root}, nil
}

// readHeader reads a tag id and, unless it is TagEnd, the tag's name.
func (d *Decoder) readHeader() (format.TagID, string, error) {
	b, err := d.readByte()
	if err != nil {
		return 0, "", err
	}

	id := format.TagID(b)
	if id == format.TagEnd {
		return id, "", nil
	}

	name, err := d.readString()
	if err != nil {
		return 0, "", err
	}

	return id, name, nil
}

func (d *Decoder) readValue(id format.TagID, at int, depth int) (tag.Value, error) {
	switch id {
	case format.TagByte:
		b, err := d.readByte()
		return tag.Byte(int8(b)), err //nolint:gosec
	case format.TagShort:
		b, err := d.next(2)
		if err != nil {
			return nil, err
		}

		return tag.Short(int16(d.engine.Uint16(b))), nil //nolint:gosec
	case format.TagInt:
		b, err := d.next(4)
		if err != nil {
			return nil, err
		}

		return tag.Int(int32(d.engine.Uint32(b))), nil //nolint:gosec
	case format.TagLong:
		b, err := d.next(8)
		if err != nil {
			return nil, err
		}

		return tag.Long(int64(d.engine.Uint64(b))), nil //nolint:gosec
	case format.TagFloat:
		b, err := d.next(4)
		if err != nil {
			return nil, err
		}

		return tag.Float(math.Float32frombits(d.engine.Uint32(b))), nil
	case format.TagDouble:
		b, err := d.next(8)
		if err != nil {
			return nil, err
		}

		return tag.Double(math.Float64frombits(d.engine.Uint64(b))), nil
	case format.TagByteArray:
		n, err := d.readLength(1)
		if err != nil {
			return nil, err
		}
		// readLength has checked that n bytes remain
		b, _ := d.next(n)
		out := make(tag.ByteArray, n)
		for i := range b {
			out[i] = int8(b[i]) //nolint:gosec
		}

		return out, nil
	case format.TagString:
		s, err := d.readString()
		return tag.String(s), err
	case format.TagList:
		return d.readList(depth + 1)
	case format.TagCompound:
		return d.readCompound(depth + 1)
	case format.TagIntArray:
		n, err := d.readLength(4)
		if err != nil {
			return nil, err
		}
		out := make(tag.IntArray, n)
		// readLength has checked that 4*n bytes remain
		for i := range out {
			b, _ := d.next(4)
			out[i] = int32(d.engine.Uint32(b)) //nolint:gosec
		}

		return out, nil
	case format.TagLongArray:
		n, err := d.readLength(8)
		if err != nil {
			return nil, err
		}
		out := make(tag.LongArray, n)
		// readLength has checked that 8*n bytes remain
		for i := range out {
			b, _ := d.next(8)
			out[i] = int64(d.engine.Uint64(b)) //nolint:gosec
		}

		return out, nil
	default:
		return nil, &errs.InvalidTagIDError{ID: id, Offset: int64(at)}
	}
}

// readList reads the element type, the count and then count values of that type.
// Elements are not checked against each other; homogeneity is enforced on encode.
func (d *Decoder) readList(depth int) (tag.List, error) {
	if depth > d.cfg.maxDepth {
		return nil, fmt.Errorf("%w: %d at offset %d", errs.ErrMaxDepthExceeded, d.cfg.maxDepth, d.pos)
	}

	at := d.pos
	b, err := d.readByte()
	if err != nil {
		return nil, err
	}
	elemID := format.TagID(b)

	// every element occupies at least one byte
	n, err := d.readLength(1)
	if err != nil {
		return nil, err
	}
	if n > 0 && !elemID.Valid() {
		return nil, &errs.InvalidTagIDError{ID: elemID, Offset: int64(at)}
	}

	out := make(tag.List, 0, n)
	for range n {
		v, err := d.readValue(elemID, at, depth)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// readCompound reads named tags until TagEnd. A repeated name replaces the
// earlier value in its original position.
func (d *Decoder) readCompound(depth int) (*tag.Compound, error) {
	if depth > d.cfg.maxDepth {
		return nil, fmt.Errorf("%w: %d at offset %d", errs.ErrMaxDepthExceeded, d.cfg.maxDepth, d.pos)
	}

	c := tag.NewCompound()
	for {
		at := d.pos
		id, name, err := d.readHeader()
		if err != nil {
			return nil, err
		}
		if id == format.TagEnd {
			return c, nil
		}

		v, err := d.readValue(id, at, depth)
		if err != nil {
			return nil, err
		}
		c.Set(name, v)
	}
}

// readString reads a uint16 length-prefixed UTF-8 string.
func (d *Decoder) readString() (string, error) {
	b, err := d.next(2)
	if err != nil {
		return "", err
	}

	n := int(d.engine.Uint16(b))
	if n == 0 {
		return "", nil
	}

	raw, err := d.next(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", &errs.UTF8Error{Offset: int64(d.pos)}
	}

	return string(raw), nil
}

// readLength reads an int32 element count and checks that count*width bytes remain.
func (d *Decoder) readLength(width int) (int, error) {
	b, err := d.next(4)
	if err != nil {
		return 0, err
	}

	n := int32(d.engine.Uint32(b)) //nolint:gosec
	if n < 0 {
		return 0, fmt.Errorf("%w: %d at offset %d", errs.ErrNegativeLength, n, d.pos-4)
	}
	if int64(n)*int64(width) > int64(len(d.data)-d.pos) {
		return 0, fmt.Errorf("%w: %d elements declared at offset %d, %d bytes left",
			errs.ErrTruncated, n, d.pos-4, len(d.data)-d.pos)
	}

	return int(n), nil
}

func (d *Decoder) readByte() (byte, error) {
	if d.pos >= len(d.data) {
		return 0, fmt.Errorf("%w: at offset %d", errs.ErrTruncated, d.pos)
	}
	b := d.data[d.pos]
	d.pos++

	return b, nil
}

// next returns the following n bytes and advances past them.
func (d *Decoder) next(n int) ([]byte, error) {
	if n > len(d.data)-d.pos {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			errs.ErrTruncated, n, d.pos, len(d.data)-d.pos)
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n

	return b, nil
}
