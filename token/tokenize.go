package token

import (
	"unicode"
	"unicode/utf8"
)

// Next pulls one token from d. It returns the token and the remaining
// unconsumed input. When d holds only whitespace, or a quoted item is
// not yet terminated, it returns ErrIncomplete; malformed input yields
// a *SyntaxError.
func Next(d []byte) (Token, []byte, error) {
	i := 0
	n := len(d)
	for i < n && isSpace(d[i]) {
		i++
	}
	if i >= n {
		return Token{}, d[i:], ErrIncomplete
	}
	switch d[i] {
	case '{':
		return Token{Type: TGroupStart, Bytes: d[i : i+1]}, d[i+1:], nil
	case '}':
		return Token{Type: TGroupEnd, Bytes: d[i : i+1]}, d[i+1:], nil
	case '"':
		body, end, err := quoted(d, i)
		if err != nil {
			return Token{}, d[i:], err
		}
		return Token{Type: TItem, Bytes: body}, d[end:], nil
	default:
		start := i
		for i < n && !isSpace(d[i]) && d[i] != '{' && d[i] != '}' && d[i] != '"' {
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				return Token{}, d[start:], &SyntaxError{Err: ErrBadUTF8, Offset: i}
			}
			if unicode.IsControl(r) {
				return Token{}, d[start:], &SyntaxError{Err: ErrControl, Offset: i}
			}
			i += sz
		}
		return Token{Type: TItem, Bytes: d[start:i]}, d[i:], nil
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

// quoted scans a double-quoted item starting at d[start] == '"'. It
// returns the unescaped body and the offset just past the closing
// quote. The body is a subslice of d when no escapes occur.
func quoted(d []byte, start int) ([]byte, int, error) {
	i := start + 1
	n := len(d)
	var buf []byte // nil until the first escape
	seg := i       // start of the current no-escape segment
	for i < n {
		r, sz := utf8.DecodeRune(d[i:])
		switch {
		case r == utf8.RuneError && sz == 1:
			return nil, 0, &SyntaxError{Err: ErrBadUTF8, Offset: i}
		case r == '"':
			if buf == nil {
				return d[seg:i], i + 1, nil
			}
			return append(buf, d[seg:i]...), i + 1, nil
		case r == '\\':
			if i+1 >= n {
				return nil, 0, ErrIncomplete
			}
			var c byte
			switch d[i+1] {
			case 'n':
				c = '\n'
			case 't':
				c = '\t'
			case '\\':
				c = '\\'
			case '"':
				c = '"'
			default:
				return nil, 0, &SyntaxError{Err: ErrBadEscape, Offset: i}
			}
			buf = append(buf, d[seg:i]...)
			buf = append(buf, c)
			i += 2
			seg = i
		case unicode.IsControl(r) && r != '\t':
			return nil, 0, &SyntaxError{Err: ErrControl, Offset: i}
		default:
			i += sz
		}
	}
	return nil, 0, ErrIncomplete
}
