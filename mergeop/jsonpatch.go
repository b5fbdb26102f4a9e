package mergeop

import (
	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/signadot/nota-format/go-nota/debug"
	"github.com/signadot/nota-format/go-nota/ir"
)

// ApplyPatch applies an RFC 6902 JSON patch document to a value tree.
// The tree crosses the plain-JSON bridge both ways, so Timestamp entries
// come back as String and Empty entries as JSON null round-tripped to
// Empty.
func ApplyPatch(doc *ir.Value, patch []byte) (*ir.Value, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("json-patch with %d ops\n", len(ops))
	}
	d, err := ir.ToPlainJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return ir.FromPlainJSON(out)
}

// MergePatch applies an RFC 7396 merge patch document to a value tree,
// with the same plain-JSON bridge caveats as ApplyPatch. For a native
// merge that preserves kinds, use Merge.
func MergePatch(doc *ir.Value, patch []byte) (*ir.Value, error) {
	d, err := ir.ToPlainJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, err
	}
	return ir.FromPlainJSON(out)
}
