package mergeop

import (
	"github.com/signadot/nota-format/go-nota/debug"
	"github.com/signadot/nota-format/go-nota/ir"
)

// Merge deep-merges overlay into doc and returns the result as a fresh
// tree. Two Maps merge entry-wise, recursively; an Empty overlay entry
// deletes the doc entry; any other kind pairing is resolved by the
// overlay replacing the doc value. Arrays replace, they do not splice.
func Merge(doc, overlay *ir.Value) *ir.Value {
	if debug.Merge() {
		debug.Logf("merge %s into %s\n", overlay.Kind(), doc.Kind())
	}
	if doc.Kind() != ir.KindMap || overlay.Kind() != ir.KindMap {
		return overlay.Clone()
	}
	res := doc.Clone()
	for _, k := range overlay.Keys() {
		ov := overlay.Key(k)
		if ov.IsEmpty() {
			res = withoutKey(res, k)
			continue
		}
		// res is a freshly cloned Map, SetKey cannot fail here
		if res.ContainsKey(k) {
			_ = res.SetKey(k, Merge(res.Key(k), ov))
			continue
		}
		_ = res.SetKey(k, ov.Clone())
	}
	return res
}

func withoutKey(m *ir.Value, k string) *ir.Value {
	ents := make(map[string]*ir.Value, len(m.Keys()))
	for _, key := range m.Keys() {
		if key != k {
			ents[key] = m.Key(key)
		}
	}
	return ir.FromMap(ents)
}
