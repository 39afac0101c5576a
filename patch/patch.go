// Package patch applies RFC 6902 JSON patches to VDF document trees
// by way of their JSON form. Values created by a patch are
// stringified the same way the JSON bridge stringifies them.
package patch

import (
	"github.com/vdf-format/go-vdf/debug"
	"github.com/vdf-format/go-vdf/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

type Patch struct {
	ops jsonpatch.Patch
}

// Decode parses a JSON patch document (an array of operations).
func Decode(data []byte) (*Patch, error) {
	ops, err := jsonpatch.DecodePatch(data)
	if err != nil {
		return nil, err
	}
	return &Patch{ops: ops}, nil
}

// Apply returns a patched copy of n. n itself is not modified.
func (p *Patch) Apply(n *ir.Node) (*ir.Node, error) {
	d, err := n.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patch input %s\n", d)
	}
	out, err := p.ops.Apply(d)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patch output %s\n", out)
	}
	res := &ir.Node{}
	if err := res.UnmarshalJSON(out); err != nil {
		return nil, err
	}
	return res, nil
}
