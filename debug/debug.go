// Package debug provides env-var-gated debug logging and human-oriented
// renderings of value trees: a colorized structural dump and a line diff
// of two renderings for test failure output.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Merge bool
	Patch bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Merge = boolEnv("NOTA_DEBUG_MERGE")
	d.Patch = boolEnv("NOTA_DEBUG_PATCH")
	d.Eval = boolEnv("NOTA_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Merge() bool {
	return d.Merge
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
