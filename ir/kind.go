package ir

import "fmt"

type Kind int

const (
	KindEmpty Kind = iota
	KindString
	KindInteger
	KindDouble
	KindBoolean
	KindTimestamp
	KindMap
	KindArray
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindEmpty:     "Empty",
		KindString:    "String",
		KindInteger:   "Integer",
		KindDouble:    "Double",
		KindBoolean:   "Boolean",
		KindTimestamp: "Timestamp",
		KindMap:       "Map",
		KindArray:     "Array",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Empty":     KindEmpty,
		"String":    KindString,
		"Integer":   KindInteger,
		"Double":    KindDouble,
		"Boolean":   KindBoolean,
		"Timestamp": KindTimestamp,
		"Map":       KindMap,
		"Array":     KindArray,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		KindEmpty,
		KindString,
		KindInteger,
		KindDouble,
		KindBoolean,
		KindTimestamp,
		KindMap,
		KindArray,
	}
}

func (k Kind) IsScalar() bool {
	switch k {
	case KindMap, KindArray, KindEmpty:
		return false
	default:
		return true
	}
}
