package debug

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/nota-format/go-nota/ir"
)

// Diff returns a unified-style line diff of the Dump renderings of two
// value trees: removed lines prefixed "-", added "+", common " ". Handy
// in test failure messages; empty means the renderings agree.
func Diff(from, to *ir.Value) string {
	fromD, toD := Dump(from), Dump(to)
	if fromD == toD {
		return ""
	}
	dmp := diffpatch.New()
	fromRunes, toRunes, lines := dmp.DiffLinesToRunes(fromD, toD)
	diffs := dmp.DiffMainRunes(fromRunes, toRunes, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var out []byte
	for i := range diffs {
		diff := &diffs[i]
		var mark byte
		switch diff.Type {
		case diffpatch.DiffDelete:
			mark = '-'
		case diffpatch.DiffInsert:
			mark = '+'
		case diffpatch.DiffEqual:
			mark = ' '
		}
		splitKeepNL(diff.Text)(func(line string) bool {
			out = append(out, mark)
			out = append(out, line...)
			return true
		})
	}
	return string(out)
}

// splitKeepNL iterates the newline-terminated lines of s, keeping each
// terminator with its line.
func splitKeepNL(s string) func(yield func(string) bool) {
	return func(yield func(string) bool) {
		for len(s) > 0 {
			i := 0
			for i < len(s) && s[i] != '\n' {
				i++
			}
			if i < len(s) {
				i++
			}
			if !yield(s[:i]) {
				return
			}
			s = s[i:]
		}
	}
}
