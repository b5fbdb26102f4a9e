package debug

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/signadot/nota-format/go-nota/ir"
)

type colors struct {
	Key       func(format string, a ...any) string
	String    func(format string, a ...any) string
	Number    func(format string, a ...any) string
	Bool      func(format string, a ...any) string
	Timestamp func(format string, a ...any) string
	Empty     func(format string, a ...any) string
}

var plainColors = &colors{
	Key:       fmt.Sprintf,
	String:    fmt.Sprintf,
	Number:    fmt.Sprintf,
	Bool:      fmt.Sprintf,
	Timestamp: fmt.Sprintf,
	Empty:     fmt.Sprintf,
}

var ttyColors = &colors{
	Key:       color.RGB(196, 96, 16).SprintfFunc(),
	String:    color.GreenString,
	Number:    color.RGB(128, 216, 236).SprintfFunc(),
	Bool:      color.MagentaString,
	Timestamp: color.CyanString,
	Empty:     color.RGB(74, 92, 138).SprintfFunc(),
}

// Dump returns an uncolored multi-line rendering of a value tree, one
// entry per line, nested children indented.
func Dump(v *ir.Value) string {
	var sb strings.Builder
	dump(&sb, v, "", plainColors)
	return sb.String()
}

// Fdump writes the multi-line rendering to w, colorized when w is a
// terminal.
func Fdump(w io.Writer, v *ir.Value) {
	c := plainColors
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		c = ttyColors
	}
	var sb strings.Builder
	dump(&sb, v, "", c)
	io.WriteString(w, sb.String())
}

func dump(sb *strings.Builder, v *ir.Value, prefix string, c *colors) {
	switch v.Kind() {
	case ir.KindMap:
		if len(v.Keys()) == 0 {
			sb.WriteString(prefix + "{}\n")
			return
		}
		for _, k := range v.Keys() {
			dumpEntry(sb, c.Key("%s", k), v.Key(k), prefix, c)
		}
	case ir.KindArray:
		if v.Len() == 0 {
			sb.WriteString(prefix + "[]\n")
			return
		}
		for i, e := range v.Elems() {
			dumpEntry(sb, c.Key("[%s]", strconv.Itoa(i)), e, prefix, c)
		}
	default:
		sb.WriteString(prefix + scalar(v, c) + "\n")
	}
}

func dumpEntry(sb *strings.Builder, label string, child *ir.Value, prefix string, c *colors) {
	switch child.Kind() {
	case ir.KindMap:
		if len(child.Keys()) == 0 {
			sb.WriteString(prefix + label + ": {}\n")
			return
		}
		sb.WriteString(prefix + label + ":\n")
		dump(sb, child, prefix+"  ", c)
	case ir.KindArray:
		if child.Len() == 0 {
			sb.WriteString(prefix + label + ": []\n")
			return
		}
		sb.WriteString(prefix + label + ":\n")
		dump(sb, child, prefix+"  ", c)
	default:
		sb.WriteString(prefix + label + ": " + scalar(child, c) + "\n")
	}
}

func scalar(v *ir.Value, c *colors) string {
	s := v.String()
	switch v.Kind() {
	case ir.KindString:
		return c.String("%s", s)
	case ir.KindInteger, ir.KindDouble:
		return c.Number("%s", s)
	case ir.KindBoolean:
		return c.Bool("%s", s)
	case ir.KindTimestamp:
		return c.Timestamp("%s", s)
	default:
		return c.Empty("%s", s)
	}
}
