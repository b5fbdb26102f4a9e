// Package eval runs expression queries against nota value trees using
// the expr language (expr-lang.org).
//
// The queried tree is exported to native Go data and bound to the
// environment: the whole document under "doc", and, when the document is
// a Map, each top-level entry under its own key. A query can therefore
// read `port` or `doc.port` interchangeably:
//
//	v, err := eval.Query(doc, `hosts[0]`)
//	n, err := eval.QueryAny(doc, `len(filter(ports, # > 1000))`)
package eval

import (
	"github.com/expr-lang/expr"

	"github.com/signadot/nota-format/go-nota/debug"
	"github.com/signadot/nota-format/go-nota/ir"
)

// Query compiles and runs src against doc and converts the result back
// into a value tree.
func Query(doc *ir.Value, src string) (*ir.Value, error) {
	res, err := QueryAny(doc, src)
	if err != nil {
		return nil, err
	}
	return ir.FromAny(res)
}

// QueryAny compiles and runs src against doc and returns the raw expr
// result.
func QueryAny(doc *ir.Value, src string) (any, error) {
	if debug.Eval() {
		debug.Logf("eval %q on %s\n", src, doc.Kind())
	}
	env := environ(doc)
	prg, err := expr.Compile(src, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}
	return expr.Run(prg, env)
}

func environ(doc *ir.Value) map[string]any {
	data := ir.ToAny(doc)
	env := map[string]any{"doc": data}
	if m, ok := data.(map[string]any); ok {
		for k, v := range m {
			if k == "doc" {
				continue
			}
			env[k] = v
		}
	}
	return env
}
