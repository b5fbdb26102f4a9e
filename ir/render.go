package ir

import (
	"strconv"
	"strings"
	"time"
)

// String returns a kind-specific human-readable rendering: "Empty" for
// Empty, the raw text for String, locale-invariant text for the other
// scalars, and an inline structural form for Map and Array. The rendering
// is a debugging aid; it is not the nota serialization format and is not
// guaranteed parseable.
func (v *Value) String() string {
	var sb strings.Builder
	v.render(&sb)
	return sb.String()
}

func (v *Value) render(sb *strings.Builder) {
	switch v.Kind() {
	case KindEmpty:
		sb.WriteString("Empty")
	case KindString:
		sb.WriteString(v.str)
	case KindInteger:
		sb.WriteString(strconv.FormatInt(v.i64, 10))
	case KindDouble:
		sb.WriteString(strconv.FormatFloat(v.f64, 'g', -1, 64))
	case KindBoolean:
		sb.WriteString(strconv.FormatBool(v.b))
	case KindTimestamp:
		sb.WriteString(v.ts.Format(time.RFC3339Nano))
	case KindArray:
		sb.WriteByte('[')
		for i, c := range v.elts {
			if i > 0 {
				sb.WriteString(", ")
			}
			c.render(sb)
		}
		sb.WriteByte(']')
	case KindMap:
		sb.WriteByte('{')
		for i, k := range v.Keys() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteString(": ")
			v.ents[k].render(sb)
		}
		sb.WriteByte('}')
	}
}
