// Package libdiff computes structural diffs between VDF document
// trees.
//
// # Usage
//
//	changes := libdiff.Diff(oldNode, newNode)
//	libdiff.Render(os.Stdout, changes)
//
// Changes are reported as a flat list of paths with the old and new
// value at each, which keeps them easy to print, filter, or convert
// to patch operations.
//
// # Related Packages
//
//   - github.com/vdf-format/go-vdf/ir - document tree representation
package libdiff
