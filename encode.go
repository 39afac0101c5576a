package vdf

import (
	"bytes"
	"strconv"

	"github.com/vdf-format/go-vdf/token"
)

// Encoder accumulates formatted output while a value walks itself
// through the operations below. The indent level always equals the
// nesting depth of open-but-unclosed groups.
//
// An Encoder is created fresh per document and is not safe for
// concurrent use.
type Encoder struct {
	buf    bytes.Buffer
	indent int
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the accumulated output. There is no trailing newline.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Bool writes "1" or "0", quoted.
func (e *Encoder) Bool(v bool) {
	if v {
		e.buf.WriteString(`"1"`)
	} else {
		e.buf.WriteString(`"0"`)
	}
}

// Int writes a signed integer. Narrower widths are widened to int64
// before formatting.
func (e *Encoder) Int(v int64) {
	e.buf.WriteByte('"')
	e.buf.WriteString(strconv.FormatInt(v, 10))
	e.buf.WriteByte('"')
}

// Uint writes an unsigned integer.
func (e *Encoder) Uint(v uint64) {
	e.buf.WriteByte('"')
	e.buf.WriteString(strconv.FormatUint(v, 10))
	e.buf.WriteByte('"')
}

// Float writes a floating point number in its shortest round-tripping
// form. float32 values should be widened by the caller.
func (e *Encoder) Float(v float64) {
	e.buf.WriteByte('"')
	e.buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	e.buf.WriteByte('"')
}

// String writes an escaped, quoted item.
func (e *Encoder) String(v string) {
	e.buf.WriteString(token.Quote(v))
}

// Rune writes a single character as a one-character string.
func (e *Encoder) Rune(r rune) {
	e.String(string(r))
}

// Enum writes a unit variant's tag as a quoted string. No other
// variant shape is supported.
func (e *Encoder) Enum(tag string) {
	e.String(tag)
}

// BeginMap opens a group. A trailing key-separator tab is trimmed: it
// is retranscribed as part of entering the nested value.
func (e *Encoder) BeginMap() *MapWriter {
	b := e.buf.Bytes()
	if len(b) > 0 && b[len(b)-1] == '\t' {
		e.buf.Truncate(len(b) - 1)
	}
	e.buf.WriteByte('\n')
	e.writeIndent()
	e.buf.WriteString("{\n")
	e.indent++
	return &MapWriter{e: e}
}

// BeginStruct opens a record's group. The outermost record writes its
// declared name as a quoted string before the opening brace.
func (e *Encoder) BeginStruct(name string) *MapWriter {
	if e.indent == 0 {
		e.String(name)
	}
	return e.BeginMap()
}

func (e *Encoder) writeIndent() {
	for i := 0; i < e.indent; i++ {
		e.buf.WriteByte('\t')
	}
}

// MapWriter writes a group's key/value entries through the owning
// Encoder.
type MapWriter struct {
	e *Encoder
}

// Key writes the indentation for the entry, the key via fn, and the
// key-separator tab. Keys run through the encoder's own operations, so
// non-string keys render in their scalar textual form.
func (w *MapWriter) Key(fn func(e *Encoder) error) error {
	w.e.writeIndent()
	if err := fn(w.e); err != nil {
		return err
	}
	w.e.buf.WriteByte('\t')
	return nil
}

// Value writes the entry's value via fn and terminates the entry line.
func (w *MapWriter) Value(fn func(e *Encoder) error) error {
	if err := fn(w.e); err != nil {
		return err
	}
	w.e.buf.WriteByte('\n')
	return nil
}

// Field writes one string-keyed entry.
func (w *MapWriter) Field(name string, fn func(e *Encoder) error) error {
	if err := w.Key(func(e *Encoder) error {
		e.String(name)
		return nil
	}); err != nil {
		return err
	}
	return w.Value(fn)
}

// End closes the group. The closing brace carries no trailing newline;
// when the group is itself an entry's value, Value supplies the line
// break.
func (w *MapWriter) End() {
	if w.e.indent > 0 {
		w.e.indent--
	}
	w.e.writeIndent()
	w.e.buf.WriteByte('}')
}
