package vdf

import (
	"errors"
	"strconv"
	"unicode/utf8"

	"github.com/vdf-format/go-vdf/token"
)

// Decoder pulls tokens on demand from the remaining input and exposes
// the operations a type needs to construct itself from the format.
//
// A Decoder is created fresh per document and is not safe for
// concurrent use.
type Decoder struct {
	rest []byte
	// pending holds produced-but-unconsumed tokens. It holds at most
	// one token (a single peek of lookahead) except transiently.
	pending []token.Token
	// topLevel marks that the document's leading quoted name has not
	// been consumed yet. It is consulted by Named and cleared on
	// first use.
	topLevel bool
}

// NewDecoder returns a Decoder reading one document from data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{rest: data, topLevel: true}
}

// fill tokenizes one more token into the pending queue.
func (d *Decoder) fill() error {
	tok, rest, err := token.Next(d.rest)
	if err != nil {
		if errors.Is(err, token.ErrIncomplete) {
			return ErrEarlyEOF
		}
		return &TokenizeError{Err: err}
	}
	d.rest = rest
	d.pending = append(d.pending, tok)
	return nil
}

// peek returns the next token without consuming it.
func (d *Decoder) peek() (*token.Token, error) {
	if len(d.pending) == 0 {
		if err := d.fill(); err != nil {
			return nil, err
		}
	}
	return &d.pending[0], nil
}

// next consumes and returns the next token.
func (d *Decoder) next() (token.Token, error) {
	if len(d.pending) == 0 {
		if err := d.fill(); err != nil {
			return token.Token{}, err
		}
	}
	tok := d.pending[0]
	d.pending = d.pending[1:]
	return tok, nil
}

// nextItem consumes the next token and requires it to be an item.
func (d *Decoder) nextItem() (string, error) {
	tok, err := d.next()
	if err != nil {
		return "", err
	}
	if tok.Type != token.TItem {
		return "", &ExpectedError{Want: "item", Got: tok.Info()}
	}
	return string(tok.Bytes), nil
}

// PeekKind reports the kind of the next token without consuming it.
func (d *Decoder) PeekKind() (token.Type, error) {
	tok, err := d.peek()
	if err != nil {
		return 0, err
	}
	return tok.Type, nil
}

// Bool decodes a boolean. Only the literal texts "0" and "1" are
// accepted.
func (d *Decoder) Bool() (bool, error) {
	tok, err := d.next()
	if err != nil {
		return false, err
	}
	if tok.Type == token.TItem {
		switch string(tok.Bytes) {
		case "0":
			return false, nil
		case "1":
			return true, nil
		}
	}
	return false, &ExpectedError{Want: `bool ("0" or "1")`, Got: tok.Info()}
}

// Int decodes a signed integer of the given bit width (8, 16, 32, 64).
func (d *Decoder) Int(bitSize int) (int64, error) {
	s, err := d.nextItem()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, bitSize)
	if err != nil {
		return 0, &ParseValueError{Err: err}
	}
	return v, nil
}

// Uint decodes an unsigned integer of the given bit width.
func (d *Decoder) Uint(bitSize int) (uint64, error) {
	s, err := d.nextItem()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 10, bitSize)
	if err != nil {
		return 0, &ParseValueError{Err: err}
	}
	return v, nil
}

// Float decodes a floating point number of the given bit width (32, 64).
func (d *Decoder) Float(bitSize int) (float64, error) {
	s, err := d.nextItem()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, bitSize)
	if err != nil {
		return 0, &ParseValueError{Err: err}
	}
	return v, nil
}

// Rune decodes a single-character item.
func (d *Decoder) Rune() (rune, error) {
	s, err := d.nextItem()
	if err != nil {
		return 0, err
	}
	r, sz := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || sz != len(s) {
		return 0, &ParseValueError{Err: errors.New("item is not a single character: " + strconv.Quote(s))}
	}
	return r, nil
}

// String decodes one item and returns its text verbatim. Keys and
// identifiers decode the same way.
func (d *Decoder) String() (string, error) {
	return d.nextItem()
}

// Enum decodes one item and returns its text as a variant tag. Only
// variants without associated data are representable.
func (d *Decoder) Enum() (string, error) {
	return d.nextItem()
}

// Named performs the top-level-name step shared by named records and
// single-field wrapper types: if the leading document name has not
// been consumed yet, consume one item and require its text to equal
// name. Afterwards the step is permanently disabled for this Decoder.
func (d *Decoder) Named(name string) error {
	if !d.topLevel {
		return nil
	}
	tok, err := d.next()
	if err != nil {
		return err
	}
	if tok.Type != token.TItem || string(tok.Bytes) != name {
		return &ExpectedError{Want: strconv.Quote(name), Got: tok.Info()}
	}
	d.topLevel = false
	return nil
}

// Map consumes a group-start delimiter and returns a MapReader for the
// group's entries.
func (d *Decoder) Map() (*MapReader, error) {
	tok, err := d.next()
	if err != nil {
		return nil, err
	}
	if tok.Type != token.TGroupStart {
		return nil, &ExpectedError{Want: "'{'", Got: tok.Info()}
	}
	return &MapReader{d: d}, nil
}

// Struct decodes the top-level name if pending, then opens the
// record's group. Record fields are ordinary keys: there is no schema
// validation against the field set here.
func (d *Decoder) Struct(name string) (*MapReader, error) {
	if err := d.Named(name); err != nil {
		return nil, err
	}
	return d.Map()
}

// Any rejects the unconstrained decode-whatever-you-find request: the
// format does not carry enough type information to honor it.
func (d *Decoder) Any() error {
	return &UnsupportedTypeError{Kind: "any"}
}

// MapReader iterates a group's key/value entries. The caller decodes
// each key and value through the owning Decoder between calls to Next.
type MapReader struct {
	d *Decoder
}

// Next reports whether another entry follows. It peeks without
// consuming: the group-end delimiter is left for Close.
func (m *MapReader) Next() (bool, error) {
	tok, err := m.d.peek()
	if err != nil {
		return false, err
	}
	return tok.Type != token.TGroupEnd, nil
}

// Close consumes the group-end delimiter.
func (m *MapReader) Close() error {
	tok, err := m.d.next()
	if err != nil {
		return err
	}
	if tok.Type != token.TGroupEnd {
		return &ExpectedError{Want: "'}'", Got: tok.Info()}
	}
	return nil
}

// checkEOF verifies that nothing but whitespace remains after a
// complete top-level decode.
func (d *Decoder) checkEOF() error {
	if len(d.pending) != 0 {
		return ErrLateEOF
	}
	_, _, err := token.Next(d.rest)
	if errors.Is(err, token.ErrIncomplete) {
		return nil
	}
	return ErrLateEOF
}
