package ir

import (
	"fmt"
	"sort"
)

// Keys returns the Map's keys in sorted order, or an empty non-nil slice
// for any other kind.
func (v *Value) Keys() []string {
	if v == nil || v.kind != KindMap {
		return []string{}
	}
	keys := make([]string, 0, len(v.ents))
	for k := range v.ents {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the Array's element count, or -1 for any other kind. The -1
// is a sentinel, not an error.
func (v *Value) Len() int {
	if v == nil || v.kind != KindArray {
		return -1
	}
	return len(v.elts)
}

// Elems returns the Array's element sequence, or an empty non-nil slice
// for any other kind. The returned slice is the Array's own backing;
// callers append through Add, not through the slice.
func (v *Value) Elems() []*Value {
	if v == nil || v.kind != KindArray {
		return []*Value{}
	}
	return v.elts
}

// Index returns the i-th Array element. Any miss, whether out-of-range i
// or a non-Array receiver, returns the Empty sentinel.
func (v *Value) Index(i int) *Value {
	if v == nil || v.kind != KindArray || i < 0 || i >= len(v.elts) {
		return Empty()
	}
	return v.elts[i]
}

// Key returns the Map entry for k. Any miss, whether an absent key or a
// non-Map receiver, returns the Empty sentinel.
func (v *Value) Key(k string) *Value {
	if v == nil || v.kind != KindMap {
		return Empty()
	}
	c, ok := v.ents[k]
	if !ok {
		return Empty()
	}
	return c
}

// SetIndex overwrites the i-th Array element. A non-Array receiver is a
// kind violation and an out-of-range i is an index violation; both are
// programmer misuse of a known-shape value and are returned as errors
// rather than absorbed. SetIndex never grows the Array.
func (v *Value) SetIndex(i int, x *Value) error {
	if v.Kind() != KindArray {
		return fmt.Errorf("set index on %s value: %w", v.Kind(), ErrKind)
	}
	if i < 0 || i >= len(v.elts) {
		return fmt.Errorf("set index %d with length %d: %w", i, len(v.elts), ErrIndex)
	}
	if x == nil {
		x = Empty()
	}
	v.elts[i] = x
	return nil
}

// SetKey inserts or overwrites the Map entry for k. A non-Map receiver is
// a kind violation: a value cannot acquire Map semantics by assignment.
func (v *Value) SetKey(k string, x *Value) error {
	if v.Kind() != KindMap {
		return fmt.Errorf("set key %q on %s value: %w", k, v.Kind(), ErrKind)
	}
	if x == nil {
		x = Empty()
	}
	v.ents[k] = x
	return nil
}

// Add appends x to the Array and returns true. On any other kind it
// returns false without effect, supporting speculative use on values of
// unknown shape.
func (v *Value) Add(x *Value) bool {
	if v == nil || v.kind != KindArray {
		return false
	}
	if x == nil {
		x = Empty()
	}
	v.elts = append(v.elts, x)
	return true
}

// ContainsKey reports whether v is a Map holding k.
func (v *Value) ContainsKey(k string) bool {
	if v == nil || v.kind != KindMap {
		return false
	}
	_, ok := v.ents[k]
	return ok
}

// AllPresent reports whether every key in keys satisfies ContainsKey.
// It is vacuously true for an empty key list.
func (v *Value) AllPresent(keys ...string) bool {
	for _, k := range keys {
		if !v.ContainsKey(k) {
			return false
		}
	}
	return true
}
