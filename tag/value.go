// Package tag defines the NBT value model: a closed set of twelve tag variants.
//
// Each variant is a distinct Go type implementing Value. Scalars and arrays are
// plain named types, so literals read naturally:
//
//	c := tag.NewCompound()
//	c.Set("Count", tag.Byte(1))
//	c.Set("Name", tag.String("minecraft:stone"))
//	c.Set("Pos", tag.List{tag.Int(0), tag.Int(64), tag.Int(0)})
//
// Compound is the only pointer variant; it keeps insertion order and unique keys.
package tag

import (
	"math"

	"github.com/arloliu/nbtrock/format"
)

// Value is a single typed node of an NBT tree.
//
// The set of implementations is closed: Byte, Short, Int, Long, Float, Double,
// ByteArray, String, List, *Compound, IntArray and LongArray.
type Value interface {
	// ID returns the wire tag id of the variant.
	ID() format.TagID

	sealed()
}

type (
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []int8
	String    string
	// List is an ordered sequence whose elements must all share the first element's tag id.
	List      []Value
	IntArray  []int32
	LongArray []int64
)

func (Byte) ID() format.TagID      { return format.TagByte }
func (Short) ID() format.TagID     { return format.TagShort }
func (Int) ID() format.TagID       { return format.TagInt }
func (Long) ID() format.TagID      { return format.TagLong }
func (Float) ID() format.TagID     { return format.TagFloat }
func (Double) ID() format.TagID    { return format.TagDouble }
func (ByteArray) ID() format.TagID { return format.TagByteArray }
func (String) ID() format.TagID    { return format.TagString }
func (List) ID() format.TagID      { return format.TagList }
func (*Compound) ID() format.TagID { return format.TagCompound }
func (IntArray) ID() format.TagID  { return format.TagIntArray }
func (LongArray) ID() format.TagID { return format.TagLongArray }

func (Byte) sealed()      {}
func (Short) sealed()     {}
func (Int) sealed()       {}
func (Long) sealed()      {}
func (Float) sealed()     {}
func (Double) sealed()    {}
func (ByteArray) sealed() {}
func (String) sealed()    {}
func (List) sealed()      {}
func (*Compound) sealed() {}
func (IntArray) sealed()  {}
func (LongArray) sealed() {}

// Name returns the display label of v's variant, e.g. "TAG_Compound".
func Name(v Value) string {
	return v.ID().String()
}

// ElemID returns the tag id the list is written with: the first element's id,
// or TagEnd for an empty list.
func (l List) ElemID() format.TagID {
	if len(l) == 0 {
		return format.TagEnd
	}

	return l[0].ID()
}

// Equal reports whether a and b are the same variant with deeply equal payloads.
// Floats compare by bit pattern so NaN payloads survive round-trip checks.
// Compounds compare entry by entry in order.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.ID() != b.ID() {
		return false
	}

	switch av := a.(type) {
	case Float:
		return math.Float32bits(float32(av)) == math.Float32bits(float32(b.(Float)))
	case Double:
		return math.Float64bits(float64(av)) == math.Float64bits(float64(b.(Double)))
	case ByteArray:
		return sliceEqual(av, b.(ByteArray))
	case IntArray:
		return sliceEqual(av, b.(IntArray))
	case LongArray:
		return sliceEqual(av, b.(LongArray))
	case List:
		bv := b.(List)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}

		return true
	case *Compound:
		return av.equal(b.(*Compound))
	default:
		return a == b
	}
}

func sliceEqual[T int8 | int32 | int64](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of v that shares no slices or compounds with it.
func Clone(v Value) Value {
	switch tv := v.(type) {
	case ByteArray:
		return append(ByteArray(nil), tv...)
	case IntArray:
		return append(IntArray(nil), tv...)
	case LongArray:
		return append(LongArray(nil), tv...)
	case List:
		if tv == nil {
			return List(nil)
		}
		out := make(List, len(tv))
		for i, elem := range tv {
			out[i] = Clone(elem)
		}

		return out
	case *Compound:
		return tv.Clone()
	default:
		return v
	}
}
