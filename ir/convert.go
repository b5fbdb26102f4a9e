package ir

import (
	"reflect"
	"time"
)

// converters maps a target Go type to its func(*Value) (T, bool). The
// registry is consulted by the caller's declared T, never by inspecting
// the stored Kind alone: the same stored value may convert for one T and
// fail for another. Registration is expected at init time; the map takes
// no lock.
var converters = map[reflect.Type]any{}

// RegisterConverter installs the conversion used by Get[T] and TryGet[T].
// Registering for an already-covered T replaces the previous converter.
// fn reports failure with false; it must not panic.
func RegisterConverter[T any](fn func(*Value) (T, bool)) {
	converters[reflect.TypeOf((*T)(nil)).Elem()] = fn
}

func converterFor[T any]() (func(*Value) (T, bool), bool) {
	fn, ok := converters[reflect.TypeOf((*T)(nil)).Elem()].(func(*Value) (T, bool))
	return fn, ok
}

// Get retrieves v's Map entry for key converted to T, substituting def
// when the receiver is not a Map, the key is absent, no converter covers
// T, or the stored value does not convert. Get never fails loudly.
func Get[T any](v *Value, key string, def T) T {
	res, ok := TryGet[T](v, key)
	if !ok {
		return def
	}
	return res
}

// TryGet retrieves v's Map entry for key converted to T. It returns
// (zero, false) under exactly the conditions Get substitutes its default.
func TryGet[T any](v *Value, key string) (T, bool) {
	var zero T
	if v == nil || v.kind != KindMap {
		return zero, false
	}
	child, ok := v.ents[key]
	if !ok {
		return zero, false
	}
	fn, ok := converterFor[T]()
	if !ok {
		return zero, false
	}
	return fn(child)
}

// sliceOf lifts an element converter to whole-Array conversion. Every
// element must convert or the whole conversion fails.
func sliceOf[E any](conv func(*Value) (E, bool)) func(*Value) ([]E, bool) {
	return func(v *Value) ([]E, bool) {
		if v == nil || v.kind != KindArray {
			return nil, false
		}
		res := make([]E, len(v.elts))
		for i, c := range v.elts {
			e, ok := conv(c)
			if !ok {
				return nil, false
			}
			res[i] = e
		}
		return res, true
	}
}

func asString(v *Value) (string, bool)  { return v.AsString() }
func asInt64(v *Value) (int64, bool)    { return v.AsInt() }
func asFloat(v *Value) (float64, bool)  { return v.AsFloat() }
func asBool(v *Value) (bool, bool)      { return v.AsBool() }
func asTime(v *Value) (time.Time, bool) { return v.AsTime() }

func asInt(v *Value) (int, bool) {
	i, ok := v.AsInt()
	return int(i), ok
}

// Built-in converters cover the five scalar source types of the
// construction surface plus their Array shapes. int and int64 are one
// native shape in Go; both target the Integer kind.
func init() {
	RegisterConverter(asString)
	RegisterConverter(asInt64)
	RegisterConverter(asInt)
	RegisterConverter(asFloat)
	RegisterConverter(asBool)
	RegisterConverter(asTime)

	RegisterConverter(sliceOf(asString))
	RegisterConverter(sliceOf(asInt64))
	RegisterConverter(sliceOf(asInt))
	RegisterConverter(sliceOf(asFloat))
	RegisterConverter(sliceOf(asBool))
	RegisterConverter(sliceOf(asTime))
}
