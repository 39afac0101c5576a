package vdf

// Marshaler is implemented by types that write their own VDF
// representation through an Encoder's operations.
type Marshaler interface {
	MarshalVDF(e *Encoder) error
}

// Unmarshaler is implemented by types that construct themselves from a
// Decoder's operations.
type Unmarshaler interface {
	UnmarshalVDF(d *Decoder) error
}

// Marshal returns the VDF text for v. The output carries no trailing
// newline.
func Marshal(v any) ([]byte, error) {
	e := NewEncoder()
	if err := marshalValue(e, v); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// Unmarshal decodes one VDF document from data into v, which must be a
// non-nil pointer. Anything but whitespace after the document is
// ErrLateEOF.
func Unmarshal(data []byte, v any) error {
	d := NewDecoder(data)
	if err := unmarshalValue(d, v); err != nil {
		return err
	}
	return d.checkEOF()
}
