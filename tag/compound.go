package tag

import (
	"iter"

	"github.com/arloliu/nbtrock/format"
)

// Entry is a single named value of a Compound.
type Entry struct {
	Name  string
	Value Value
}

// Compound is an ordered mapping from unique names to values.
//
// Iteration follows insertion order. Replacing an existing key keeps its
// original position; deleting a key closes the gap without reordering the rest.
// The zero value is an empty, ready-to-use Compound.
//
// Note: Compound is NOT thread-safe. Callers sharing one across goroutines must
// serialize access themselves.
type Compound struct {
	entries []Entry
	index   map[string]int
}

// NewCompound creates an empty Compound.
func NewCompound() *Compound {
	return &Compound{}
}

// NewCompoundSize creates an empty Compound with room for n entries.
func NewCompoundSize(n int) *Compound {
	return &Compound{
		entries: make([]Entry, 0, n),
		index:   make(map[string]int, n),
	}
}

// Read methods treat a nil *Compound as empty.

// Len returns the number of entries.
func (c *Compound) Len() int {
	if c == nil {
		return 0
	}

	return len(c.entries)
}

// Get returns the value stored under name.
func (c *Compound) Get(name string) (Value, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}

	return c.entries[i].Value, true
}

// Has reports whether name is present.
func (c *Compound) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Set inserts v under name, or replaces the existing value in place.
func (c *Compound) Set(name string, v Value) {
	if i, ok := c.index[name]; ok {
		c.entries[i].Value = v
		return
	}

	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[name] = len(c.entries)
	c.entries = append(c.entries, Entry{Name: name, Value: v})
}

// Delete removes name and reports whether it was present.
func (c *Compound) Delete(name string) bool {
	i, ok := c.index[name]
	if !ok {
		return false
	}

	delete(c.index, name)
	copy(c.entries[i:], c.entries[i+1:])
	c.entries[len(c.entries)-1] = Entry{}
	c.entries = c.entries[:len(c.entries)-1]

	for j := i; j < len(c.entries); j++ {
		c.index[c.entries[j].Name] = j
	}

	return true
}

// Keys returns the entry names in order.
func (c *Compound) Keys() []string {
	if c == nil {
		return []string{}
	}
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.Name
	}

	return keys
}

// Entries returns a copy of the entries in order.
func (c *Compound) Entries() []Entry {
	if c == nil {
		return nil
	}

	return append([]Entry(nil), c.entries...)
}

// All returns an iterator over the entries in order.
//
// The compound must not be modified while iterating.
func (c *Compound) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if c == nil {
			return
		}
		for _, e := range c.entries {
			if !yield(e.Name, e.Value) {
				return
			}
		}
	}
}

// Compound returns the child compound stored under name.
// ok is false when name is absent or holds another variant; id is the variant
// found (TagEnd when absent), which lets callers report what blocked a traversal.
func (c *Compound) Compound(name string) (child *Compound, id format.TagID, ok bool) {
	v, found := c.Get(name)
	if !found || v == nil {
		return nil, format.TagEnd, false
	}
	child, ok = v.(*Compound)

	return child, v.ID(), ok
}

// Clone returns a deep copy of c. A nil Compound clones to nil.
func (c *Compound) Clone() *Compound {
	if c == nil {
		return nil
	}
	out := NewCompoundSize(len(c.entries))
	for _, e := range c.entries {
		out.Set(e.Name, Clone(e.Value))
	}

	return out
}

func (c *Compound) equal(o *Compound) bool {
	if c == nil || o == nil {
		return c == o
	}
	if len(c.entries) != len(o.entries) {
		return false
	}
	for i := range c.entries {
		if c.entries[i].Name != o.entries[i].Name {
			return false
		}
		if !Equal(c.entries[i].Value, o.entries[i].Value) {
			return false
		}
	}

	return true
}
