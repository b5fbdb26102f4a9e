package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the value tree, stable within a process.
// Equal trees hash equal; it is useful for caching and deduplication.
func (v *Value) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	v.hashInto(&h)
	return h.Sum64()
}

func (v *Value) hashInto(h *maphash.Hash) {
	h.WriteByte(byte(v.Kind()))
	switch v.Kind() {
	case KindEmpty:
	case KindBoolean:
		if v.b {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case KindInteger:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(v.i64))
		h.Write(b[:])
	case KindDouble:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v.f64))
		h.Write(b[:])
	case KindTimestamp:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(v.ts.UnixNano()))
		h.Write(b[:])
	case KindString:
		h.WriteString(v.str)
	case KindArray:
		for _, c := range v.elts {
			c.hashInto(h)
		}
	case KindMap:
		for _, k := range v.Keys() {
			h.WriteString(k)
			v.ents[k].hashInto(h)
		}
	}
}
