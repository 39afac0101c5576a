package vdf

import (
	"errors"
	"fmt"
)

var (
	// ErrEarlyEOF reports that the input ended before a token or
	// document could complete.
	ErrEarlyEOF = errors.New("unexpected end of input")
	// ErrLateEOF reports non-whitespace input remaining after a
	// complete document.
	ErrLateEOF = errors.New("trailing data after document")
)

// MessageError carries an error raised by a user type's own
// MarshalVDF/UnmarshalVDF logic, or a shape the encoder cannot write.
type MessageError struct {
	Msg string
}

func (e *MessageError) Error() string { return e.Msg }

// UnsupportedTypeError reports a data shape the format cannot
// represent, such as a sequence or a byte array.
type UnsupportedTypeError struct {
	Kind string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type: %s", e.Kind)
}

// TokenizeError wraps a syntax error reported by the token source.
type TokenizeError struct {
	Err error
}

func (e *TokenizeError) Error() string { return "tokenize: " + e.Err.Error() }
func (e *TokenizeError) Unwrap() error { return e.Err }

// ExpectedError reports a structural mismatch: wrong token kind, wrong
// group delimiter, or wrong top-level name.
type ExpectedError struct {
	Want string
	Got  string
}

func (e *ExpectedError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Want, e.Got)
}

// ParseValueError reports an item whose text failed to parse into the
// target scalar type. It wraps the underlying parser's error.
type ParseValueError struct {
	Err error
}

func (e *ParseValueError) Error() string { return "parse value: " + e.Err.Error() }
func (e *ParseValueError) Unwrap() error { return e.Err }
