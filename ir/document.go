package ir

import (
	"errors"

	"github.com/vdf-format/go-vdf"
	"github.com/vdf-format/go-vdf/token"
)

// Document is a full VDF document: the top-level quoted name and the
// outermost object. Name may be empty for unnamed documents.
type Document struct {
	Name string
	Root *Node
}

// Parse decodes one document from data.
func Parse(data []byte) (*Document, error) {
	doc := &Document{}
	if err := vdf.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Encode returns the document's canonical text, with no trailing
// newline.
func (doc *Document) Encode() ([]byte, error) {
	return vdf.Marshal(doc)
}

func (doc *Document) MarshalVDF(e *vdf.Encoder) error {
	if doc.Root == nil {
		return &vdf.MessageError{Msg: "can't encode document without a root object"}
	}
	if doc.Name != "" {
		e.String(doc.Name)
	}
	return doc.Root.MarshalVDF(e)
}

// UnmarshalVDF reads an optional leading name item followed by the
// root group. Documents whose root is a bare item have no name slot.
func (doc *Document) UnmarshalVDF(d *vdf.Decoder) error {
	kind, err := d.PeekKind()
	if err != nil {
		return err
	}
	if kind == token.TItem {
		name, err := d.String()
		if err != nil {
			return err
		}
		doc.Name = name
		kind, err = d.PeekKind()
		if errors.Is(err, vdf.ErrEarlyEOF) {
			// A lone item is a nameless one-string document.
			doc.Root = FromString(doc.Name)
			doc.Name = ""
			return nil
		}
		if err != nil {
			return err
		}
		if kind != token.TGroupStart {
			// A lone item is a nameless one-string document.
			doc.Root = FromString(doc.Name)
			doc.Name = ""
			return nil
		}
	}
	doc.Root = &Node{}
	return doc.Root.UnmarshalVDF(d)
}

// Equal reports whether two documents have the same name and content.
func (doc *Document) Equal(o *Document) bool {
	if doc == nil || o == nil {
		return doc == o
	}
	return doc.Name == o.Name && doc.Root.Equal(o.Root)
}
