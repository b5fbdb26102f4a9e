// Package mergeop provides merge and patch operations over nota value
// trees.
//
// Merge is the native deep merge: maps merge entry-wise with the overlay
// winning, Empty overlay entries delete, everything else (arrays
// included) is replaced wholesale. ApplyPatch and MergePatch apply
// RFC 6902 and RFC 7396 patches respectively, bridged through the plain
// JSON shape of the tree; Timestamp kinds degrade to strings across that
// bridge.
//
// All operations return fresh trees and leave their inputs untouched.
package mergeop
