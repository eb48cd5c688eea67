package encoding

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/nbtrock/errs"
	"github.com/arloliu/nbtrock/format"
	"github.com/arloliu/nbtrock/section"
	"github.com/arloliu/nbtrock/tag"
	"github.com/arloliu/nbtrock/tree"
)

func encode(t *testing.T, tr *tree.Tree, opts ...Option) ([]byte, error) {
	t.Helper()
	e, err := NewEncoder(opts...)
	require.NoError(t, err)

	return e.Encode(tr)
}

func TestEncoder_Example(t *testing.T) {
	tr := tree.New("Test")
	require.NoError(t, tr.Set("key", tag.Int(3)))

	data, err := encode(t, tr)
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x0A, 0x04, 0x00, 'T', 'e', 's', 't',
		0x03, 0x03, 0x00, 'k', 'e', 'y', 0x03, 0x00, 0x00, 0x00,
		0x00,
	}, data)
}

func TestEncoder_Framed(t *testing.T) {
	tr := tree.New("Test")
	require.NoError(t, tr.Set("key", tag.Byte(8)))
	require.NoError(t, tr.Set("js", tag.IntArray{1, 2, 3}))

	e, err := NewEncoder(WithFramingHeader(true))
	require.NoError(t, err)
	require.True(t, e.Framed())

	data, err := e.Encode(tr)
	require.NoError(t, err)
	require.Equal(t, framedStream, data)

	hdr, err := section.ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, int32(format.HeaderMagic), hdr.Magic)
	require.Equal(t, uint32(len(data)-format.HeaderSize), hdr.Length)

	unframed, err := encode(t, tr)
	require.NoError(t, err)
	require.Equal(t, data[format.HeaderSize:], unframed)
}

func TestEncoder_EmptyString(t *testing.T) {
	tr := tree.New("")
	require.NoError(t, tr.Set("s", tag.String("")))

	data, err := encode(t, tr)
	require.NoError(t, err)
	// root header, entry header, zero length, end
	require.Equal(t, []byte{10, 0, 0, 8, 1, 0, 's', 0, 0, 0}, data)

	d, err := NewDecoder(data)
	require.NoError(t, err)
	back, err := d.Decode()
	require.NoError(t, err)
	v, err := back.Get("s")
	require.NoError(t, err)
	require.Equal(t, tag.String(""), v)
}

func TestEncoder_Lists(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		tr := tree.New("")
		require.NoError(t, tr.Set("l", tag.List{}))

		data, err := encode(t, tr)
		require.NoError(t, err)
		require.Equal(t, []byte{10, 0, 0, 9, 1, 0, 'l', 0, 0, 0, 0, 0, 0}, data)
	})

	t.Run("homogeneous list", func(t *testing.T) {
		tr := tree.New("")
		require.NoError(t, tr.Set("l", tag.List{tag.Short(1), tag.Short(2)}))

		data, err := encode(t, tr)
		require.NoError(t, err)
		require.Equal(t, []byte{10, 0, 0, 9, 1, 0, 'l', 2, 2, 0, 0, 0, 1, 0, 2, 0, 0}, data)
	})

	t.Run("heterogeneous list", func(t *testing.T) {
		tr := tree.New("")
		require.NoError(t, tr.Set("before", tag.Int(1)))
		require.NoError(t, tr.Set("l", tag.List{tag.Int(1), tag.Int(2), tag.String("x")}))

		e, err := NewEncoder()
		require.NoError(t, err)

		data, err := e.Encode(tr)
		require.ErrorIs(t, err, errs.ErrHeterogeneousList)
		require.Nil(t, data)

		var listErr *errs.HeterogeneousListError
		require.ErrorAs(t, err, &listErr)
		require.Equal(t, format.TagInt, listErr.Want)
		require.Equal(t, format.TagString, listErr.Got)
		require.Equal(t, 2, listErr.Index)

		var out bytes.Buffer
		n, err := e.EncodeTo(&out, tr)
		require.ErrorIs(t, err, errs.ErrHeterogeneousList)
		require.Zero(t, n)
		require.Zero(t, out.Len())
	})

	t.Run("nested heterogeneous list", func(t *testing.T) {
		tr := tree.New("")
		require.NoError(t, tr.Set("a/b", tag.List{tag.List{tag.Byte(1), tag.Short(1)}}))

		_, err := encode(t, tr)
		require.ErrorIs(t, err, errs.ErrHeterogeneousList)
	})
}

func TestEncoder_Errors(t *testing.T) {
	t.Run("root not compound", func(t *testing.T) {
		_, err := encode(t, &tree.Tree{Name: "x", Root: tag.String("nope")})

		var rootErr *errs.RootTagError
		require.ErrorAs(t, err, &rootErr)
		require.Equal(t, format.TagString, rootErr.ID)
	})

	t.Run("name too long", func(t *testing.T) {
		_, err := encode(t, tree.New(strings.Repeat("n", format.MaxStringLength+1)))
		require.ErrorIs(t, err, errs.ErrStringTooLong)
	})

	t.Run("value too long", func(t *testing.T) {
		tr := tree.New("")
		require.NoError(t, tr.Set("s", tag.String(strings.Repeat("v", format.MaxStringLength+1))))
		_, err := encode(t, tr)
		require.ErrorIs(t, err, errs.ErrStringTooLong)
	})

	t.Run("longest string fits", func(t *testing.T) {
		tr := tree.New("")
		require.NoError(t, tr.Set("s", tag.String(strings.Repeat("v", format.MaxStringLength))))
		_, err := encode(t, tr)
		require.NoError(t, err)
	})

	t.Run("self-referencing compound", func(t *testing.T) {
		root := tag.NewCompound()
		root.Set("self", root)
		_, err := encode(t, &tree.Tree{Root: root})
		require.ErrorIs(t, err, errs.ErrMaxDepthExceeded)
	})

	t.Run("nil compound entry", func(t *testing.T) {
		root := tag.NewCompound()
		root.Set("c", (*tag.Compound)(nil))
		_, err := encode(t, &tree.Tree{Root: root})
		require.ErrorIs(t, err, errs.ErrInvalidValue)

		root = tag.NewCompound()
		root.Set("l", tag.List{(*tag.Compound)(nil)})
		_, err = encode(t, &tree.Tree{Root: root})
		require.ErrorIs(t, err, errs.ErrInvalidValue)
	})

	t.Run("writer failure", func(t *testing.T) {
		boom := errors.New("disk full")
		e, err := NewEncoder()
		require.NoError(t, err)
		_, err = e.EncodeTo(failingWriter{boom}, tree.New(""))
		require.ErrorIs(t, err, boom)
	})
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestEncoder_BigEndian(t *testing.T) {
	tr := tree.New("Java")
	require.NoError(t, tr.Set("x", tag.Int(256)))

	data, err := encode(t, tr, WithBigEndian())
	require.NoError(t, err)
	require.Equal(t, []byte{10, 0, 4, 'J', 'a', 'v', 'a', 3, 0, 1, 'x', 0, 0, 1, 0, 0}, data)
}

func TestRoundTrip(t *testing.T) {
	tr := tree.New("round")
	values := map[string]tag.Value{
		"byte":      tag.Byte(math.MinInt8),
		"short":     tag.Short(math.MaxInt16),
		"int":       tag.Int(math.MinInt32),
		"long":      tag.Long(math.MaxInt64),
		"float":     tag.Float(float32(math.Inf(-1))),
		"double":    tag.Double(math.SmallestNonzeroFloat64),
		"nan":       tag.Double(math.NaN()),
		"bytes":     tag.ByteArray{-128, 0, 127},
		"string":    tag.String("minecraft:stone ✓"),
		"empty":     tag.String(""),
		"ints":      tag.IntArray{math.MinInt32, 0, math.MaxInt32},
		"longs":     tag.LongArray{math.MinInt64, 0, math.MaxInt64},
		"list":      tag.List{tag.String("a"), tag.String("b")},
		"emptyList": tag.List{},
		"lists":     tag.List{tag.List{tag.Int(1)}, tag.List{}},
		"compounds": tag.List{tag.NewCompound(), tag.NewCompound()},
	}
	for _, name := range []string{
		"byte", "short", "int", "long", "float", "double", "nan", "bytes", "string",
		"empty", "ints", "longs", "list", "emptyList", "lists", "compounds",
	} {
		require.NoError(t, tr.Set("all/"+name, values[name]))
	}
	require.NoError(t, tr.Set("all/nested/deeper/leaf", tag.Byte(1)))

	for _, tc := range []struct {
		name string
		opts []Option
	}{
		{"unframed", nil},
		{"framed", []Option{WithFramingHeader(true)}},
		{"big-endian", []Option{WithBigEndian()}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			data, err := encode(t, tr, tc.opts...)
			require.NoError(t, err)

			d, err := NewDecoder(data, tc.opts...)
			require.NoError(t, err)
			back, err := d.Decode()
			require.NoError(t, err)

			require.Equal(t, tr.Name, back.Name)
			require.True(t, tag.Equal(tr.Root, back.Root))

			again, err := encode(t, back, tc.opts...)
			require.NoError(t, err)
			require.Equal(t, data, again)
		})
	}
}

func TestRoundTrip_DecodedStreams(t *testing.T) {
	for name, tc := range map[string]struct {
		data   []byte
		framed bool
	}{
		"nested": {nestedStream, false},
		"framed": {framedStream, true},
	} {
		t.Run(name, func(t *testing.T) {
			d, err := NewDecoder(tc.data)
			require.NoError(t, err)
			tr, err := d.Decode()
			require.NoError(t, err)

			out, err := encode(t, tr, WithFramingHeader(tc.framed))
			require.NoError(t, err)
			require.Equal(t, tc.data, out)
		})
	}
}

func BenchmarkEncoder_Encode(b *testing.B) {
	tr := benchTree()
	e, _ := NewEncoder()

	b.ReportAllocs()
	for b.Loop() {
		_, _ = e.Encode(tr)
	}
}

func BenchmarkDecoder_Decode(b *testing.B) {
	e, _ := NewEncoder()
	data, _ := e.Encode(benchTree())

	b.ReportAllocs()
	for b.Loop() {
		d, _ := NewDecoder(data)
		_, _ = d.Decode()
	}
}

func benchTree() *tree.Tree {
	tr := tree.New("structure")
	blocks := make(tag.List, 0, 256)
	for i := range 256 {
		c := tag.NewCompound()
		c.Set("name", tag.String("minecraft:stone"))
		c.Set("pos", tag.IntArray{int32(i), 64, int32(-i)})
		c.Set("states", tag.NewCompound())
		blocks = append(blocks, c)
	}
	_ = tr.Set("structure/palette/default/block_palette", blocks)
	_ = tr.Set("size", tag.List{tag.Int(16), tag.Int(1), tag.Int(16)})

	return tr
}
