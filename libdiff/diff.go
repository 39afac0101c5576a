package libdiff

import (
	"strings"

	"github.com/vdf-format/go-vdf/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Kind int

const (
	Add Kind = iota
	Delete
	Modify
)

func (k Kind) String() string {
	switch k {
	case Add:
		return "add"
	case Delete:
		return "delete"
	case Modify:
		return "modify"
	default:
		return "libdiff.Kind(?)"
	}
}

// Change is one difference between two trees. Path addresses the
// changed entry from the root; From is nil for additions and To is
// nil for deletions.
type Change struct {
	Path []string
	Kind Kind
	From *ir.Node
	To   *ir.Node
}

// Key returns the path as a dot-joined string.
func (c *Change) Key() string {
	return strings.Join(c.Path, ".")
}

// Diff returns the changes that turn from into to, in document order.
// A nil result means the trees are equal.
func Diff(from, to *ir.Node) []Change {
	var changes []Change
	return diffNode(changes, nil, from, to)
}

func diffNode(changes []Change, path []string, from, to *ir.Node) []Change {
	switch {
	case from == nil && to == nil:
		return changes
	case from == nil:
		return append(changes, Change{Path: clonePath(path), Kind: Add, To: to})
	case to == nil:
		return append(changes, Change{Path: clonePath(path), Kind: Delete, From: from})
	}
	if from.Type != to.Type {
		return append(changes, Change{Path: clonePath(path), Kind: Modify, From: from, To: to})
	}
	if from.Type == ir.StringType {
		if from.String != to.String {
			changes = append(changes, Change{Path: clonePath(path), Kind: Modify, From: from, To: to})
		}
		return changes
	}
	return diffObject(changes, path, from, to)
}

// diffObject aligns the two field sequences with a character-level
// diff over per-key runes, so reordered or interleaved keys pair up
// correctly instead of degrading into delete-everything/add-everything.
func diffObject(changes []Change, path []string, from, to *ir.Node) []Change {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				changes = diffNode(changes, append(path, runeMap[r]), from.Values[fi], nil)
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				changes = diffNode(changes, append(path, runeMap[r]), from.Values[fi], to.Values[ti])
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				changes = diffNode(changes, append(path, runeMap[r]), nil, to.Values[ti])
				ti++
			}
		}
	}
	return changes
}

func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i, f := range node.Fields {
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}

func clonePath(path []string) []string {
	if len(path) == 0 {
		return nil
	}
	return append([]string(nil), path...)
}
