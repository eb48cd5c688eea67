package tag

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/nbtrock/format"
)

func TestValue_ID(t *testing.T) {
	tests := []struct {
		value Value
		id    format.TagID
		name  string
	}{
		{Byte(1), format.TagByte, "TAG_Byte"},
		{Short(1), format.TagShort, "TAG_Short"},
		{Int(1), format.TagInt, "TAG_Int"},
		{Long(1), format.TagLong, "TAG_Long"},
		{Float(1), format.TagFloat, "TAG_Float"},
		{Double(1), format.TagDouble, "TAG_Double"},
		{ByteArray{1}, format.TagByteArray, "TAG_ByteArray"},
		{String("x"), format.TagString, "TAG_String"},
		{List{}, format.TagList, "TAG_List"},
		{NewCompound(), format.TagCompound, "TAG_Compound"},
		{IntArray{1}, format.TagIntArray, "TAG_IntArray"},
		{LongArray{1}, format.TagLongArray, "TAG_LongArray"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.id, tt.value.ID())
			require.Equal(t, tt.name, Name(tt.value))
			// ids are contiguous and follow declaration order
			require.Equal(t, format.TagID(i+1), tt.value.ID())
		})
	}
}

func TestList_ElemID(t *testing.T) {
	require.Equal(t, format.TagEnd, List{}.ElemID())
	require.Equal(t, format.TagEnd, List(nil).ElemID())
	require.Equal(t, format.TagString, List{String("a"), String("b")}.ElemID())
	require.Equal(t, format.TagInt, List{Int(1), String("b")}.ElemID())
}

func TestEqual(t *testing.T) {
	nan := Float(float32(math.NaN()))
	require.True(t, Equal(nan, nan))
	require.True(t, Equal(Int(3), Int(3)))
	require.False(t, Equal(Int(3), Long(3)))
	require.False(t, Equal(Int(3), nil))
	require.True(t, Equal(nil, nil))
	require.True(t, Equal(IntArray{1, 2}, IntArray{1, 2}))
	require.False(t, Equal(IntArray{1, 2}, IntArray{1}))
	require.True(t, Equal(List{String("a")}, List{String("a")}))
	require.False(t, Equal(List{String("a")}, List{String("b")}))

	a := NewCompound()
	a.Set("x", Int(1))
	a.Set("y", Int(2))
	b := NewCompound()
	b.Set("x", Int(1))
	b.Set("y", Int(2))
	require.True(t, Equal(a, b))

	// same content, different order
	c := NewCompound()
	c.Set("y", Int(2))
	c.Set("x", Int(1))
	require.False(t, Equal(a, c))
}

func TestClone(t *testing.T) {
	inner := NewCompound()
	inner.Set("arr", IntArray{1, 2, 3})
	root := NewCompound()
	root.Set("inner", inner)
	root.Set("list", List{ByteArray{1}})

	cp := Clone(root).(*Compound)
	require.True(t, Equal(root, cp))

	// mutate the copy; the original must stay untouched
	cpInner, _, ok := cp.Compound("inner")
	require.True(t, ok)
	arr, _ := cpInner.Get("arr")
	arr.(IntArray)[0] = 99
	cpInner.Set("new", Byte(1))

	orig, _ := inner.Get("arr")
	require.Equal(t, IntArray{1, 2, 3}, orig)
	require.False(t, inner.Has("new"))

	lst, _ := cp.Get("list")
	lst.(List)[0].(ByteArray)[0] = 42
	origList, _ := root.Get("list")
	require.Equal(t, int8(1), origList.(List)[0].(ByteArray)[0])
}
