package tree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/nbtrock/errs"
	"github.com/arloliu/nbtrock/format"
	"github.com/arloliu/nbtrock/tag"
)

func TestNew(t *testing.T) {
	tr := New("Test")
	require.Equal(t, "Test", tr.Name)

	root, err := tr.Compound()
	require.NoError(t, err)
	require.Equal(t, 0, root.Len())
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"a/b/c", []string{"a", "b", "c"}},
		{"/a//b/", []string{"a", "b"}},
		{"key", []string{"key"}},
		{"", []string{}},
		{"///", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, SplitPath(tt.path))
		})
	}
}

func TestSet_CreatesIntermediates(t *testing.T) {
	tr := New("")
	require.NoError(t, tr.Set("a/b/c", tag.String("x")))

	root, _ := tr.Compound()
	a, _, ok := root.Compound("a")
	require.True(t, ok)
	b, _, ok := a.Compound("b")
	require.True(t, ok)
	c, ok := b.Get("c")
	require.True(t, ok)
	require.Equal(t, tag.String("x"), c)

	v, err := tr.Get("a/b/c")
	require.NoError(t, err)
	require.Equal(t, tag.String("x"), v)
}

func TestSet_Replace(t *testing.T) {
	tr := New("")
	require.NoError(t, tr.Set("obj/obj2/String", tag.String("string from js")))
	require.NoError(t, tr.Set("obj/first", tag.Byte(1)))
	require.NoError(t, tr.Set("obj/obj2/String", tag.String("replace")))

	v, err := tr.Get("obj/obj2/String")
	require.NoError(t, err)
	require.Equal(t, tag.String("replace"), v)

	// replacement keeps the original insertion position
	obj, err := tr.Get("obj")
	require.NoError(t, err)
	require.Equal(t, []string{"obj2", "first"}, obj.(*tag.Compound).Keys())
}

func TestSet_StoresCopy(t *testing.T) {
	tr := New("")
	arr := tag.LongArray{8, -9, 0, 1816}
	require.NoError(t, tr.Set("obj/LongArray", arr))

	arr[0] = 100
	v, err := tr.Get("obj/LongArray")
	require.NoError(t, err)
	require.Equal(t, tag.LongArray{8, -9, 0, 1816}, v)
}

func TestSet_Remove(t *testing.T) {
	tr := New("")
	require.NoError(t, tr.Set("key", tag.Int(3)))
	require.NoError(t, tr.Set("js", tag.IntArray{1, 2, 3}))
	require.NoError(t, tr.Set("obj/x", tag.Byte(1)))

	require.NoError(t, tr.Set("key", nil))
	root, _ := tr.Compound()
	require.Equal(t, []string{"js", "obj"}, root.Keys())

	require.NoError(t, tr.Remove("obj/x"))
	obj, err := tr.Get("obj")
	require.NoError(t, err)
	require.Equal(t, 0, obj.(*tag.Compound).Len())
}

func TestSet_NilCompoundRemoves(t *testing.T) {
	tr := New("")
	require.NoError(t, tr.Set("keep", tag.Int(1)))
	require.NoError(t, tr.Set("obj/x", tag.Byte(1)))

	require.NoError(t, tr.Set("obj", (*tag.Compound)(nil)))
	require.NoError(t, tr.Set("fresh/child", (*tag.Compound)(nil)))

	root, _ := tr.Compound()
	require.Equal(t, []string{"keep"}, root.Keys())
}

func TestSet_RemoveMissingIsNoop(t *testing.T) {
	tr := New("")
	require.NoError(t, tr.Set("keep", tag.Int(1)))

	require.NoError(t, tr.Remove("missing"))
	require.NoError(t, tr.Remove("no/such/path"))

	// removal must not create intermediates
	root, _ := tr.Compound()
	require.Equal(t, []string{"keep"}, root.Keys())
}

func TestSet_NonContainerSegment(t *testing.T) {
	tr := New("")
	require.NoError(t, tr.Set("a/num", tag.Int(7)))
	require.NoError(t, tr.Set("a/sibling", tag.String("s")))

	err := tr.Set("a/num/deeper/leaf", tag.Byte(1))
	require.ErrorIs(t, err, errs.ErrNotContainer)

	var pathErr *errs.PathError
	require.ErrorAs(t, err, &pathErr)
	require.Equal(t, "num", pathErr.Segment)
	require.Equal(t, format.TagInt, pathErr.Got)

	// siblings and the blocking value are untouched
	a, err := tr.Get("a")
	require.NoError(t, err)
	require.Equal(t, []string{"num", "sibling"}, a.(*tag.Compound).Keys())
	v, _ := tr.Get("a/num")
	require.Equal(t, tag.Int(7), v)

	// removal through a non-container fails the same way
	require.ErrorIs(t, tr.Remove("a/num/x"), errs.ErrNotContainer)
}

func TestSet_FailureCreatesNothing(t *testing.T) {
	tr := New("")
	require.NoError(t, tr.Set("blocker", tag.Int(1)))

	err := tr.Set("blocker/x", tag.Int(2))
	require.ErrorIs(t, err, errs.ErrNotContainer)

	err = tr.Set("fresh/blocker", tag.Int(2))
	require.NoError(t, err)
	err = tr.Set("fresh/blocker/x/y", tag.Int(3))
	require.ErrorIs(t, err, errs.ErrNotContainer)

	root, _ := tr.Compound()
	require.Equal(t, []string{"blocker", "fresh"}, root.Keys())
	fresh, _ := tr.Get("fresh")
	require.Equal(t, []string{"blocker"}, fresh.(*tag.Compound).Keys())
}

func TestSet_EmptyPath(t *testing.T) {
	tr := New("")
	require.ErrorIs(t, tr.Set("", tag.Int(1)), errs.ErrEmptyPath)
	require.ErrorIs(t, tr.Set("//", tag.Int(1)), errs.ErrEmptyPath)
	_, err := tr.Get("")
	require.ErrorIs(t, err, errs.ErrEmptyPath)
}

func TestSet_RootNotCompound(t *testing.T) {
	tr := &Tree{Name: "bad", Root: tag.Int(1)}

	err := tr.Set("a", tag.Int(1))
	require.ErrorIs(t, err, errs.ErrRootTag)

	var rootErr *errs.RootTagError
	require.ErrorAs(t, err, &rootErr)
	require.Equal(t, format.TagInt, rootErr.ID)

	_, err = (&Tree{}).Get("a")
	require.ErrorIs(t, err, errs.ErrRootTag)
}

func TestGet_NotFound(t *testing.T) {
	tr := New("")
	require.NoError(t, tr.Set("a/b", tag.Int(1)))

	_, err := tr.Get("a/c")
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = tr.Get("x/y/z")
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = tr.Get("a/b/c")
	require.ErrorIs(t, err, errs.ErrNotContainer)
}
