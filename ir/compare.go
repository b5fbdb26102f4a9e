package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}

	rankA := rank(a.Kind())
	rankB := rank(b.Kind())
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Kind() {
	case KindBoolean:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case KindInteger:
		return cmp.Compare(a.i64, b.i64)
	case KindDouble:
		return cmp.Compare(a.f64, b.f64)
	case KindTimestamp:
		return a.ts.Compare(b.ts)
	case KindString:
		return strings.Compare(a.str, b.str)
	case KindArray:
		return compareArrays(a, b)
	case KindMap:
		return compareMaps(a, b)
	case KindEmpty:
		return 0
	}
	return 0
}

// Equal reports whether two value trees are equal under Compare. Two
// Empty values are always equal; they carry no payload.
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a kind.
// Order: Empty < Boolean < Integer < Double < Timestamp < String < Array < Map
func rank(k Kind) int {
	switch k {
	case KindEmpty:
		return 0
	case KindBoolean:
		return 1
	case KindInteger:
		return 2
	case KindDouble:
		return 3
	case KindTimestamp:
		return 4
	case KindString:
		return 5
	case KindArray:
		return 6
	case KindMap:
		return 7
	}
	return 100
}

func compareArrays(a, b *Value) int {
	n := min(len(a.elts), len(b.elts))
	for i := 0; i < n; i++ {
		if c := Compare(a.elts[i], b.elts[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.elts), len(b.elts))
}

func compareMaps(a, b *Value) int {
	aKeys, bKeys := a.Keys(), b.Keys()
	n := min(len(aKeys), len(bKeys))
	for i := 0; i < n; i++ {
		if c := strings.Compare(aKeys[i], bKeys[i]); c != 0 {
			return c
		}
		if c := Compare(a.ents[aKeys[i]], b.ents[bKeys[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(aKeys), len(bKeys))
}
