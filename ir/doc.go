// Package ir provides the in-memory value representation for nota documents.
//
// # Overview
//
// Every nota document, whether parsed from text or built programmatically,
// is a tree of ir.Value nodes. The Value is the single currency passed
// between the parser, application code, and the encoder; none of those
// collaborators live in this package.
//
// # Value Structure
//
// A Value is a tagged union. Its Kind is fixed at construction and selects
// which payload is meaningful:
//
//   - Scalars: String, Integer, Double, Boolean, Timestamp
//   - Composites: Map (string key to Value), Array (ordered sequence)
//   - Empty: no payload, the sentinel returned by failed lookups
//
// Scalars and Empty are immutable. Map and Array values are mutable in
// their contents (SetKey, SetIndex, Add) but never in Kind.
//
// # Creating Values
//
// Use constructor functions to create values:
//
//	v := ir.FromString("hello")
//	n := ir.FromInt(42)
//	m := ir.FromMap(map[string]*ir.Value{
//	    "key": ir.FromString("value"),
//	})
//	a := ir.FromInts([]int64{1, 2, 3})
//
// # Reading Values
//
// Reads never fail. Scalar accessors return a comma-ok pair, composite
// lookups return the Empty sentinel on any miss:
//
//	s, ok := v.Key("name").AsString()
//	elt := v.Index(3) // Empty value when out of range or not an Array
//
// Mutating a value of the wrong Kind is programmer error and is reported:
// SetKey and SetIndex return errors wrapping ErrKind or ErrIndex, while the
// speculative Add reports failure with a plain false.
//
// Get and TryGet extract a Map entry converted to a caller-chosen Go type
// through a registered converter; see RegisterConverter.
//
// # Constraints
//
// Values form ownership trees. Nothing prevents inserting a value into
// itself or into an ancestor; trees with such aliasing make Clone, Visit,
// Compare, and String diverge. Callers own cycle avoidance.
//
// # Thread Safety
//
// Value trees are not thread-safe. Synchronize externally or Clone per
// goroutine when sharing across goroutines.
//
// # Related Packages
//
//   - github.com/signadot/nota-format/go-nota/mergeop - merge and patch over value trees
//   - github.com/signadot/nota-format/go-nota/eval - expression queries over value trees
//   - github.com/signadot/nota-format/go-nota/debug - debug logging and tree dumps
package ir
