// Package ir holds the generic in-memory form of a VDF document: a
// tree of nodes where every node is either a string or an object of
// ordered string-keyed entries. It is the shape-agnostic client of the
// vdf codec used by tooling that has no schema for its input.
package ir

import (
	"fmt"

	"github.com/vdf-format/go-vdf"
	"github.com/vdf-format/go-vdf/token"
)

type Type int

const (
	StringType Type = iota
	ObjectType
)

func (t Type) String() string {
	switch t {
	case StringType:
		return "string"
	case ObjectType:
		return "object"
	default:
		return fmt.Sprintf("ir.Type(%d)", int(t))
	}
}

// Node is one value of a document. Object entries keep their input
// order: Fields[i] is the key of Values[i].
type Node struct {
	Type   Type
	String string
	Fields []string
	Values []*Node
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func Object() *Node {
	return &Node{Type: ObjectType}
}

// Set appends or replaces the entry for key.
func (n *Node) Set(key string, v *Node) *Node {
	for i, f := range n.Fields {
		if f == key {
			n.Values[i] = v
			return n
		}
	}
	n.Fields = append(n.Fields, key)
	n.Values = append(n.Values, v)
	return n
}

// Get returns the value for key, or nil.
func (n *Node) Get(key string) *Node {
	for i, f := range n.Fields {
		if f == key {
			return n.Values[i]
		}
	}
	return nil
}

func (n *Node) Len() int {
	return len(n.Values)
}

// Equal reports structural equality, including entry order.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Type != o.Type {
		return false
	}
	if n.Type == StringType {
		return n.String == o.String
	}
	if len(n.Fields) != len(o.Fields) {
		return false
	}
	for i, f := range n.Fields {
		if f != o.Fields[i] || !n.Values[i].Equal(o.Values[i]) {
			return false
		}
	}
	return true
}

// MarshalVDF writes the node: strings as items, objects as groups.
func (n *Node) MarshalVDF(e *vdf.Encoder) error {
	if n.Type == StringType {
		e.String(n.String)
		return nil
	}
	w := e.BeginMap()
	for i, f := range n.Fields {
		if err := w.Field(f, n.Values[i].MarshalVDF); err != nil {
			return err
		}
	}
	w.End()
	return nil
}

// UnmarshalVDF reads either an item or a group, chosen by one token of
// lookahead.
func (n *Node) UnmarshalVDF(d *vdf.Decoder) error {
	kind, err := d.PeekKind()
	if err != nil {
		return err
	}
	if kind != token.TGroupStart {
		s, err := d.String()
		if err != nil {
			return err
		}
		n.Type = StringType
		n.String = s
		return nil
	}
	mr, err := d.Map()
	if err != nil {
		return err
	}
	n.Type = ObjectType
	n.Fields = nil
	n.Values = nil
	for {
		more, err := mr.Next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
		key, err := d.String()
		if err != nil {
			return err
		}
		val := &Node{}
		if err := val.UnmarshalVDF(d); err != nil {
			return err
		}
		n.Fields = append(n.Fields, key)
		n.Values = append(n.Values, val)
	}
	return mr.Close()
}
