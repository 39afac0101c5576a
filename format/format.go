// Package format names the interchange formats the tooling reads and
// writes, and converts documents between them. JSON and YAML carry no
// top-level name; converting to them drops it.
package format

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/vdf-format/go-vdf/ir"
)

type Format int

const (
	VDFFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"v":    VDFFormat,
		"vdf":  VDFFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath guesses the format from a file extension, defaulting to
// VDF.
func FromPath(path string) Format {
	switch filepath.Ext(path) {
	case ".json":
		return JSONFormat
	case ".yaml", ".yml":
		return YAMLFormat
	default:
		return VDFFormat
	}
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case VDFFormat:
		return []byte("vdf"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsVDF() bool  { return f == VDFFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case VDFFormat:
		return ".vdf"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// Decode parses data in format f into a document.
func Decode(data []byte, f Format) (*ir.Document, error) {
	switch f {
	case VDFFormat:
		return ir.Parse(data)
	case JSONFormat:
		root := &ir.Node{}
		if err := root.UnmarshalJSON(data); err != nil {
			return nil, err
		}
		return &ir.Document{Root: root}, nil
	case YAMLFormat:
		root := &ir.Node{}
		if err := root.UnmarshalYAML(data); err != nil {
			return nil, err
		}
		return &ir.Document{Root: root}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
}

// Encode renders doc in format f. VDF output carries no trailing
// newline; JSON and YAML end the way their encoders end.
func Encode(doc *ir.Document, f Format) ([]byte, error) {
	switch f {
	case VDFFormat:
		return doc.Encode()
	case JSONFormat:
		return doc.Root.MarshalJSON()
	case YAMLFormat:
		return doc.Root.MarshalYAML()
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
}
