package ir

import (
	"errors"
	"testing"
)

func TestLenSentinel(t *testing.T) {
	for _, v := range []*Value{
		Empty(), FromString("x"), FromInt(1), FromFloat(1.0),
		FromBool(true), FromTime(testStamp), FromMap(nil),
	} {
		if v.Len() != -1 {
			t.Errorf("Len() on %s = %d, want -1", v.Kind(), v.Len())
		}
	}
	if got := FromInts([]int64{1, 2, 3}).Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestKeys(t *testing.T) {
	for _, v := range []*Value{
		Empty(), FromString("x"), FromInt(1), FromSlice(nil),
	} {
		ks := v.Keys()
		if ks == nil || len(ks) != 0 {
			t.Errorf("Keys() on %s = %v, want empty non-nil", v.Kind(), ks)
		}
	}
	m := FromMap(map[string]*Value{
		"b": FromInt(2),
		"a": FromInt(1),
		"c": FromInt(3),
	})
	ks := m.Keys()
	want := []string{"a", "b", "c"}
	if len(ks) != len(want) {
		t.Fatalf("Keys() = %v, want %v", ks, want)
	}
	for i := range want {
		if ks[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, ks[i], want[i])
		}
	}
}

func TestIndexRead(t *testing.T) {
	arr := FromInts([]int64{10, 20})
	if got, _ := arr.Index(1).AsInt(); got != 20 {
		t.Errorf("Index(1) = %d, want 20", got)
	}
	for _, i := range []int{-1, 2, 100} {
		if !arr.Index(i).IsEmpty() {
			t.Errorf("Index(%d) not Empty", i)
		}
	}
	for _, v := range []*Value{Empty(), FromString("x"), FromMap(nil)} {
		if !v.Index(0).IsEmpty() {
			t.Errorf("Index(0) on %s not Empty", v.Kind())
		}
	}
}

func TestKeyRead(t *testing.T) {
	m := FromMap(map[string]*Value{"a": FromString("v")})
	if got, _ := m.Key("a").AsString(); got != "v" {
		t.Errorf(`Key("a") = %q, want "v"`, got)
	}
	if !m.Key("missing").IsEmpty() {
		t.Error(`Key("missing") not Empty`)
	}
	for _, v := range []*Value{Empty(), FromInt(1), FromSlice(nil)} {
		if !v.Key("a").IsEmpty() {
			t.Errorf(`Key("a") on %s not Empty`, v.Kind())
		}
	}
}

func TestSetIndex(t *testing.T) {
	arr := FromInts([]int64{1, 2, 3})
	if err := arr.SetIndex(1, FromInt(20)); err != nil {
		t.Fatalf("SetIndex(1) = %v", err)
	}
	if got, _ := arr.Index(1).AsInt(); got != 20 {
		t.Errorf("after SetIndex, Index(1) = %d", got)
	}
	if arr.Len() != 3 {
		t.Errorf("SetIndex changed Len to %d", arr.Len())
	}

	// out of range is a hard error, not growth
	for _, i := range []int{-1, 3, 100} {
		err := arr.SetIndex(i, FromInt(0))
		if !errors.Is(err, ErrIndex) {
			t.Errorf("SetIndex(%d) = %v, want ErrIndex", i, err)
		}
	}
	if arr.Len() != 3 {
		t.Errorf("failed SetIndex changed Len to %d", arr.Len())
	}

	for _, v := range []*Value{Empty(), FromString("x"), FromMap(nil)} {
		if err := v.SetIndex(0, FromInt(0)); !errors.Is(err, ErrKind) {
			t.Errorf("SetIndex on %s = %v, want ErrKind", v.Kind(), err)
		}
	}
}

func TestSetKey(t *testing.T) {
	m := FromMap(map[string]*Value{"a": FromInt(1)})
	if err := m.SetKey("b", FromInt(2)); err != nil {
		t.Fatalf(`SetKey("b") = %v`, err)
	}
	if err := m.SetKey("a", FromInt(10)); err != nil {
		t.Fatalf(`SetKey("a") = %v`, err)
	}
	if got, _ := m.Key("a").AsInt(); got != 10 {
		t.Errorf(`Key("a") = %d, want 10`, got)
	}
	if got, _ := m.Key("b").AsInt(); got != 2 {
		t.Errorf(`Key("b") = %d, want 2`, got)
	}
	if len(m.Keys()) != 2 {
		t.Errorf("Keys() = %v", m.Keys())
	}

	for _, v := range []*Value{Empty(), FromInt(1), FromSlice(nil)} {
		if err := v.SetKey("a", FromInt(0)); !errors.Is(err, ErrKind) {
			t.Errorf("SetKey on %s = %v, want ErrKind", v.Kind(), err)
		}
	}
}

func TestAdd(t *testing.T) {
	arr := FromSlice(nil)
	if !arr.Add(FromInt(1)) {
		t.Fatal("Add on Array returned false")
	}
	if arr.Len() != 1 {
		t.Errorf("Len() = %d, want 1", arr.Len())
	}
	for _, v := range []*Value{Empty(), FromString("x"), FromMap(nil)} {
		if v.Add(FromInt(1)) {
			t.Errorf("Add on %s returned true", v.Kind())
		}
	}
}

func TestContainsKeyAllPresent(t *testing.T) {
	m := FromMap(map[string]*Value{
		"a": FromInt(1),
		"b": FromInt(2),
	})
	if !m.ContainsKey("a") || !m.ContainsKey("b") {
		t.Error("ContainsKey misses present keys")
	}
	if m.ContainsKey("c") {
		t.Error(`ContainsKey("c") = true`)
	}
	if !m.AllPresent() {
		t.Error("AllPresent() on empty key list = false")
	}
	if !m.AllPresent("a", "b") {
		t.Error(`AllPresent("a","b") = false`)
	}
	if m.AllPresent("a", "c") {
		t.Error(`AllPresent("a","c") = true`)
	}

	for _, v := range []*Value{Empty(), FromInt(1), FromSlice(nil)} {
		if v.ContainsKey("a") {
			t.Errorf("ContainsKey on %s = true", v.Kind())
		}
		if v.AllPresent("a") {
			t.Errorf(`AllPresent("a") on %s = true`, v.Kind())
		}
		if !v.AllPresent() {
			t.Errorf("AllPresent() on %s = false", v.Kind())
		}
	}
}

// The array scenario: build from [1,2,3], read, miss, append.
func TestArrayScenario(t *testing.T) {
	v := FromInts([]int64{1, 2, 3})
	if v.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", v.Len())
	}
	if got, _ := v.Index(0).AsInt(); got != 1 {
		t.Errorf("Index(0) = %d, want 1", got)
	}
	if !v.Index(5).IsEmpty() {
		t.Error("Index(5) not Empty")
	}
	if !v.Add(FromInt(4)) {
		t.Fatal("Add failed")
	}
	if v.Len() != 4 {
		t.Errorf("Len() = %d, want 4", v.Len())
	}
	if got, _ := v.Index(3).AsInt(); got != 4 {
		t.Errorf("Index(3) = %d, want 4", got)
	}
}

// The map scenario: presence checks and typed extraction with defaults.
func TestMapScenario(t *testing.T) {
	v := FromMap(map[string]*Value{"a": FromInt(5)})
	if !v.ContainsKey("a") {
		t.Error(`ContainsKey("a") = false`)
	}
	if v.ContainsKey("b") {
		t.Error(`ContainsKey("b") = true`)
	}
	if !v.AllPresent("a") {
		t.Error(`AllPresent("a") = false`)
	}
	if v.AllPresent("a", "b") {
		t.Error(`AllPresent("a","b") = true`)
	}
	if got := Get(v, "a", -1); got != 5 {
		t.Errorf(`Get("a", -1) = %d, want 5`, got)
	}
	if got := Get(v, "b", -1); got != -1 {
		t.Errorf(`Get("b", -1) = %d, want -1`, got)
	}
}
