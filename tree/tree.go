// Package tree binds a name to a root Compound and edits it by slash-delimited path.
//
// A Tree is created empty with New, or produced by the decoder in the encoding
// package. Paths address nested compounds one segment at a time:
//
//	t := tree.New("Test")
//	_ = t.Set("obj/obj2/Byte", tag.Byte(8))     // creates obj and obj/obj2
//	v, _ := t.Get("obj/obj2/Byte")                // tag.Byte(8)
//	_ = t.Remove("obj/obj2/Byte")                 // no-op if already gone
//
// Note: Tree is NOT thread-safe. A Tree is owned by a single goroutine; callers
// sharing one must serialize access with their own lock.
package tree

import (
	"fmt"
	"strings"

	"github.com/arloliu/nbtrock/errs"
	"github.com/arloliu/nbtrock/format"
	"github.com/arloliu/nbtrock/tag"
)

// Separator delimits path segments.
const Separator = "/"

// Tree is a named NBT structure. Root must be a *tag.Compound for the tree to be
// encodable or editable; any other variant is reported as errs.RootTagError.
type Tree struct {
	Name string
	Root tag.Value
}

// New creates a tree with the given name and an empty root compound.
func New(name string) *Tree {
	return &Tree{
		Name: name,
		Root: tag.NewCompound(),
	}
}

// Compound returns the root compound.
func (t *Tree) Compound() (*tag.Compound, error) {
	root, ok := t.Root.(*tag.Compound)
	if !ok || root == nil {
		id := format.TagEnd
		if t.Root != nil {
			id = t.Root.ID()
		}

		return nil, &errs.RootTagError{ID: id}
	}

	return root, nil
}

// SplitPath splits path on Separator, dropping empty segments.
func SplitPath(path string) []string {
	parts := strings.Split(path, Separator)
	segs := parts[:0]
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}

	return segs
}

// Set stores a deep copy of v at path, creating missing intermediate compounds.
// A nil v, or a nil *tag.Compound, removes the final segment instead; removing an
// absent key is a no-op.
//
// The route is validated before anything is created: if a segment other than the
// last holds a non-compound value, Set returns *errs.PathError and the tree is left
// exactly as it was.
func (t *Tree) Set(path string, v tag.Value) error {
	segs := SplitPath(path)
	if len(segs) == 0 {
		return fmt.Errorf("%w: %q", errs.ErrEmptyPath, path)
	}

	root, err := t.Compound()
	if err != nil {
		return err
	}

	parent, missing, err := walk(root, path, segs[:len(segs)-1])
	if err != nil {
		return err
	}

	last := segs[len(segs)-1]
	if isNil(v) {
		if len(missing) == 0 {
			parent.Delete(last)
		}

		return nil
	}

	for _, seg := range missing {
		child := tag.NewCompound()
		parent.Set(seg, child)
		parent = child
	}
	parent.Set(last, tag.Clone(v))

	return nil
}

// Remove deletes the value at path. It is Set(path, nil).
func (t *Tree) Remove(path string) error {
	return t.Set(path, nil)
}

// Get returns the value stored at path. The returned value is shared with the
// tree; modify it through Set.
func (t *Tree) Get(path string) (tag.Value, error) {
	segs := SplitPath(path)
	if len(segs) == 0 {
		return nil, fmt.Errorf("%w: %q", errs.ErrEmptyPath, path)
	}

	root, err := t.Compound()
	if err != nil {
		return nil, err
	}

	parent, missing, err := walk(root, path, segs[:len(segs)-1])
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %q", errs.ErrNotFound, path)
	}

	v, ok := parent.Get(segs[len(segs)-1])
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrNotFound, path)
	}

	return v, nil
}

// walk descends through segs from root as far as compounds exist.
// It returns the deepest compound reached and the segments still to be created.
func walk(root *tag.Compound, path string, segs []string) (*tag.Compound, []string, error) {
	cur := root
	for i, seg := range segs {
		child, id, ok := cur.Compound(seg)
		if ok {
			cur = child
			continue
		}
		if id != format.TagEnd {
			return nil, nil, &errs.PathError{Path: path, Segment: seg, Got: id}
		}

		return cur, segs[i:], nil
	}

	return cur, nil, nil
}

// isNil reports whether v holds no value, including a nil *tag.Compound.
func isNil(v tag.Value) bool {
	if v == nil {
		return true
	}
	c, ok := v.(*tag.Compound)

	return ok && c == nil
}
