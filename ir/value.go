package ir

import (
	"time"
)

// Value is a single node in a nota document tree. The kind is fixed at
// construction; exactly one payload field is meaningful per kind, the
// others stay at their zero values.
type Value struct {
	kind Kind

	str  string
	i64  int64
	f64  float64
	b    bool
	ts   time.Time
	ents map[string]*Value
	elts []*Value
}

// Kind returns the value's fixed discriminant. A nil receiver reads as
// KindEmpty, so lookups chained off the Empty sentinel stay safe.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindEmpty
	}
	return v.kind
}

// IsEmpty reports whether the value is the Empty sentinel.
func (v *Value) IsEmpty() bool {
	return v.Kind() == KindEmpty
}

// Empty returns a fresh Kind-Empty value. Empty values carry no payload
// and admit no mutation, so allocation identity is unobservable.
func Empty() *Value {
	return &Value{}
}

func FromString(s string) *Value {
	return &Value{kind: KindString, str: s}
}

func FromInt(i int64) *Value {
	return &Value{kind: KindInteger, i64: i}
}

func FromFloat(f float64) *Value {
	return &Value{kind: KindDouble, f64: f}
}

func FromBool(b bool) *Value {
	return &Value{kind: KindBoolean, b: b}
}

func FromTime(t time.Time) *Value {
	return &Value{kind: KindTimestamp, ts: t}
}

// FromMap builds a Map value from m. The map itself is copied; the child
// values are owned by the result, not cloned. Nil children become Empty.
func FromMap(m map[string]*Value) *Value {
	ents := make(map[string]*Value, len(m))
	for k, c := range m {
		if c == nil {
			c = Empty()
		}
		ents[k] = c
	}
	return &Value{kind: KindMap, ents: ents}
}

// FromSlice builds an Array value from elts. The slice is copied into an
// owned, independently growable sequence; the source slice is not
// retained. Nil elements become Empty.
func FromSlice(elts []*Value) *Value {
	own := make([]*Value, len(elts))
	for i, c := range elts {
		if c == nil {
			c = Empty()
		}
		own[i] = c
	}
	return &Value{kind: KindArray, elts: own}
}

func FromStrings(ss []string) *Value {
	elts := make([]*Value, len(ss))
	for i, s := range ss {
		elts[i] = FromString(s)
	}
	return &Value{kind: KindArray, elts: elts}
}

func FromInts(is []int64) *Value {
	elts := make([]*Value, len(is))
	for i, n := range is {
		elts[i] = FromInt(n)
	}
	return &Value{kind: KindArray, elts: elts}
}

func FromFloats(fs []float64) *Value {
	elts := make([]*Value, len(fs))
	for i, f := range fs {
		elts[i] = FromFloat(f)
	}
	return &Value{kind: KindArray, elts: elts}
}

func FromBools(bs []bool) *Value {
	elts := make([]*Value, len(bs))
	for i, b := range bs {
		elts[i] = FromBool(b)
	}
	return &Value{kind: KindArray, elts: elts}
}

func FromTimes(ts []time.Time) *Value {
	elts := make([]*Value, len(ts))
	for i, t := range ts {
		elts[i] = FromTime(t)
	}
	return &Value{kind: KindArray, elts: elts}
}

// AsString returns the String payload, or ("", false) for any other kind.
func (v *Value) AsString() (string, bool) {
	if v == nil || v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsInt returns the Integer payload, or (0, false) for any other kind.
func (v *Value) AsInt() (int64, bool) {
	if v == nil || v.kind != KindInteger {
		return 0, false
	}
	return v.i64, true
}

// AsFloat returns the Double payload, or (0, false) for any other kind.
func (v *Value) AsFloat() (float64, bool) {
	if v == nil || v.kind != KindDouble {
		return 0, false
	}
	return v.f64, true
}

// AsBool returns the Boolean payload, or (false, false) for any other kind.
func (v *Value) AsBool() (bool, bool) {
	if v == nil || v.kind != KindBoolean {
		return false, false
	}
	return v.b, true
}

// AsTime returns the Timestamp payload, or (time.Time{}, false) for any
// other kind.
func (v *Value) AsTime() (time.Time, bool) {
	if v == nil || v.kind != KindTimestamp {
		return time.Time{}, false
	}
	return v.ts, true
}

// Clone returns a deep copy of the value tree.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := &Value{}
	v.cloneTo(res)
	return res
}

func (v *Value) cloneTo(dst *Value) {
	dst.kind = v.kind
	dst.str = v.str
	dst.i64 = v.i64
	dst.f64 = v.f64
	dst.b = v.b
	dst.ts = v.ts
	if v.ents != nil {
		dst.ents = make(map[string]*Value, len(v.ents))
		for k, c := range v.ents {
			dst.ents[k] = c.Clone()
		}
	}
	if v.elts != nil {
		dst.elts = make([]*Value, len(v.elts))
		for i, c := range v.elts {
			dst.elts[i] = c.Clone()
		}
	}
}

// Visit walks the tree rooted at v. f is called once before descending
// (isPost false) and once after (isPost true); returning false from the
// pre call skips the children. Map children are visited in sorted key
// order, Array children in element order.
func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		switch v.Kind() {
		case KindMap:
			for _, k := range v.Keys() {
				if err := v.ents[k].Visit(f); err != nil {
					return err
				}
			}
		case KindArray:
			for _, c := range v.elts {
				if err := c.Visit(f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}
