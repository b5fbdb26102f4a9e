package debug

import (
	"strings"
	"testing"

	"github.com/signadot/nota-format/go-nota/ir"
)

func TestDump(t *testing.T) {
	v := ir.FromMap(map[string]*ir.Value{
		"name":  ir.FromString("svc"),
		"ports": ir.FromInts([]int64{80, 443}),
		"sub": ir.FromMap(map[string]*ir.Value{
			"on": ir.FromBool(true),
		}),
		"none": ir.FromMap(nil),
	})
	want := strings.Join([]string{
		"name: svc",
		"none: {}",
		"ports:",
		"  [0]: 80",
		"  [1]: 443",
		"sub:",
		"  on: true",
		"",
	}, "\n")
	if got := Dump(v); got != want {
		t.Errorf("Dump() =\n%s\nwant:\n%s", got, want)
	}
}

func TestDumpScalarRoot(t *testing.T) {
	if got := Dump(ir.FromInt(7)); got != "7\n" {
		t.Errorf("Dump() = %q", got)
	}
	if got := Dump(ir.Empty()); got != "Empty\n" {
		t.Errorf("Dump() = %q", got)
	}
}

func TestDiff(t *testing.T) {
	a := ir.FromMap(map[string]*ir.Value{
		"a": ir.FromInt(1),
		"b": ir.FromInt(2),
	})
	b := ir.FromMap(map[string]*ir.Value{
		"a": ir.FromInt(1),
		"b": ir.FromInt(3),
	})
	if got := Diff(a, a.Clone()); got != "" {
		t.Errorf("Diff of equal trees = %q", got)
	}
	got := Diff(a, b)
	if !strings.Contains(got, "-b: 2\n") || !strings.Contains(got, "+b: 3\n") {
		t.Errorf("Diff() =\n%s", got)
	}
	if !strings.Contains(got, " a: 1\n") {
		t.Errorf("Diff() lost common line:\n%s", got)
	}
}
