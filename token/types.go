package token

import "fmt"

type Type int

const (
	// TItem is an atomic scalar: a double-quoted string or an
	// unquoted bareword. Item bytes are stored unescaped.
	TItem Type = iota
	// TGroupStart is '{'.
	TGroupStart
	// TGroupEnd is '}'.
	TGroupEnd
)

func (t Type) String() string {
	switch t {
	case TItem:
		return "item"
	case TGroupStart:
		return "'{'"
	case TGroupEnd:
		return "'}'"
	default:
		return fmt.Sprintf("token.Type(%d)", int(t))
	}
}

type Token struct {
	Type Type
	// Bytes holds the token text. For TItem the escapes have already
	// been resolved; when the source text contains no escapes this is
	// a subslice of the input.
	Bytes []byte
}

func (t *Token) String() string {
	if t.Type == TItem {
		return string(t.Bytes)
	}
	return t.Type.String()
}

// Info describes a token for error messages: items are shown quoted,
// delimiters as themselves.
func (t *Token) Info() string {
	if t.Type == TItem {
		return fmt.Sprintf("item %q", t.Bytes)
	}
	return t.Type.String()
}
