package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// valueJSON is the self-describing node encoding. It spells out the kind
// and payload explicitly, so a tree survives a round trip without the
// plain-JSON shape losses (Integer vs Double, Timestamp vs String).
type valueJSON struct {
	Kind    Kind              `json:"kind"`
	String  *string           `json:"string,omitempty"`
	Int     *int64            `json:"int,omitempty"`
	Float   *float64          `json:"float,omitempty"`
	Bool    *bool             `json:"bool,omitempty"`
	Time    *time.Time        `json:"time,omitempty"`
	Entries map[string]*Value `json:"entries,omitempty"`
	Elems   []*Value          `json:"elems,omitempty"`
}

func (v *Value) MarshalJSON() ([]byte, error) {
	enc := valueJSON{Kind: v.Kind()}
	switch v.Kind() {
	case KindString:
		enc.String = &v.str
	case KindInteger:
		enc.Int = &v.i64
	case KindDouble:
		enc.Float = &v.f64
	case KindBoolean:
		enc.Bool = &v.b
	case KindTimestamp:
		enc.Time = &v.ts
	case KindMap:
		enc.Entries = v.ents
	case KindArray:
		enc.Elems = v.elts
	}
	return json.Marshal(&enc)
}

func (v *Value) UnmarshalJSON(d []byte) error {
	var dec valueJSON
	if err := json.Unmarshal(d, &dec); err != nil {
		return err
	}
	v.kind = dec.Kind
	switch dec.Kind {
	case KindString:
		if dec.String != nil {
			v.str = *dec.String
		}
	case KindInteger:
		if dec.Int != nil {
			v.i64 = *dec.Int
		}
	case KindDouble:
		if dec.Float != nil {
			v.f64 = *dec.Float
		}
	case KindBoolean:
		if dec.Bool != nil {
			v.b = *dec.Bool
		}
	case KindTimestamp:
		if dec.Time != nil {
			v.ts = *dec.Time
		}
	case KindMap:
		v.ents = dec.Entries
		if v.ents == nil {
			v.ents = map[string]*Value{}
		}
		for k, c := range v.ents {
			if c == nil {
				v.ents[k] = Empty()
			}
		}
	case KindArray:
		v.elts = dec.Elems
		if v.elts == nil {
			v.elts = []*Value{}
		}
		for i, c := range v.elts {
			if c == nil {
				v.elts[i] = Empty()
			}
		}
	}
	return nil
}

// ToAny exports the tree as native Go data: map[string]any, []any, and
// the scalar payload types. Empty exports as nil. Timestamps stay
// time.Time; serializing the result with encoding/json renders them as
// RFC 3339 strings, so the plain-JSON bridge cannot reconstruct the
// Timestamp kind.
func ToAny(v *Value) any {
	switch v.Kind() {
	case KindEmpty:
		return nil
	case KindString:
		return v.str
	case KindInteger:
		return v.i64
	case KindDouble:
		return v.f64
	case KindBoolean:
		return v.b
	case KindTimestamp:
		return v.ts
	case KindMap:
		res := make(map[string]any, len(v.ents))
		for k, c := range v.ents {
			res[k] = ToAny(c)
		}
		return res
	case KindArray:
		res := make([]any, len(v.elts))
		for i, c := range v.elts {
			res[i] = ToAny(c)
		}
		return res
	default:
		panic("impossible production")
	}
}

// FromAny builds a value tree from native Go data. It accepts the scalar
// payload types (with the usual widening of smaller integer and float
// types), json.Number, nil, maps, slices, and values that are already
// *Value (which are cloned). Anything else is round-tripped through JSON
// as a last resort.
func FromAny(x any) (*Value, error) {
	switch d := x.(type) {
	case nil:
		return Empty(), nil
	case *Value:
		return d.Clone(), nil
	case map[string]*Value:
		return FromMap(d), nil
	case []*Value:
		return FromSlice(d), nil
	case string:
		return FromString(d), nil
	case bool:
		return FromBool(d), nil
	case int:
		return FromInt(int64(d)), nil
	case int8:
		return FromInt(int64(d)), nil
	case int16:
		return FromInt(int64(d)), nil
	case int32:
		return FromInt(int64(d)), nil
	case int64:
		return FromInt(d), nil
	case uint:
		return FromInt(int64(d)), nil
	case uint8:
		return FromInt(int64(d)), nil
	case uint16:
		return FromInt(int64(d)), nil
	case uint32:
		return FromInt(int64(d)), nil
	case uint64:
		if d > math.MaxInt64 {
			return nil, fmt.Errorf("uint64 %d overflows the integer payload", d)
		}
		return FromInt(int64(d)), nil
	case float32:
		return FromFloat(float64(d)), nil
	case float64:
		return FromFloat(d), nil
	case time.Time:
		return FromTime(d), nil
	case json.Number:
		if i, err := d.Int64(); err == nil {
			return FromInt(i), nil
		}
		f, err := d.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %q: %w", d, err)
		}
		return FromFloat(f), nil
	case map[string]any:
		ents := make(map[string]*Value, len(d))
		for k, c := range d {
			cv, err := FromAny(c)
			if err != nil {
				return nil, err
			}
			ents[k] = cv
		}
		return FromMap(ents), nil
	case []any:
		elts := make([]*Value, len(d))
		for i, c := range d {
			cv, err := FromAny(c)
			if err != nil {
				return nil, err
			}
			elts[i] = cv
		}
		return FromSlice(elts), nil
	default:
		raw, err := json.Marshal(x)
		if err != nil {
			return nil, fmt.Errorf("cannot build value from %T: %w", x, err)
		}
		return FromPlainJSON(raw)
	}
}

// ToPlainJSON marshals the tree in plain JSON shape (the document shape,
// not the self-describing node encoding). Use MarshalJSON for a lossless
// round trip.
func ToPlainJSON(v *Value) ([]byte, error) {
	return json.Marshal(ToAny(v))
}

// FromPlainJSON builds a tree from plain JSON. Integral numbers become
// Integer, the rest Double; JSON null becomes Empty.
func FromPlainJSON(d []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return nil, err
	}
	return FromAny(x)
}
