package token

import (
	"errors"
	"fmt"
)

// ErrIncomplete reports that the input ended before the current token
// could complete. Callers with more input may retry with a longer
// buffer; callers at end of input should treat it as truncation.
var ErrIncomplete = errors.New("incomplete input")

var (
	ErrBadEscape = errors.New("invalid escape sequence")
	ErrBadUTF8   = errors.New("invalid utf-8")
	ErrControl   = errors.New("control character in item")
)

// SyntaxError reports malformed input at a byte offset of the buffer
// passed to Next.
type SyntaxError struct {
	Err    error
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err.Error(), e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
