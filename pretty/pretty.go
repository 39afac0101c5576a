// Package pretty renders VDF documents with syntax coloring for
// terminal display. The uncolored output is the canonical encoding
// plus a trailing newline.
package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/vdf-format/go-vdf/ir"
	"github.com/vdf-format/go-vdf/token"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	NameColor ColorAttr = iota
	KeyColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			NameColor:  color.RGB(128, 168, 196).SprintfFunc(),
			KeyColor:   color.RGB(196, 96, 16).SprintfFunc(),
			ValueColor: color.RGB(8, 196, 16).SprintfFunc(),
			SepColor:   color.RGB(196, 128, 128).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

// NoColors renders everything verbatim.
func NoColors() *Colors {
	return &Colors{Default: colorDefault}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}

// Fprint writes doc to w in canonical form, colored per c. A trailing
// newline is appended.
func Fprint(w io.Writer, c *Colors, doc *ir.Document) error {
	if c == nil {
		c = NoColors()
	}
	if doc.Name != "" {
		if _, err := fmt.Fprint(w, c.Get(NameColor)(token.Quote(doc.Name))); err != nil {
			return err
		}
	}
	if err := printNode(w, c, doc.Root, 0); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func printNode(w io.Writer, c *Colors, n *ir.Node, depth int) error {
	if n.Type == ir.StringType {
		_, err := fmt.Fprint(w, c.Get(ValueColor)(token.Quote(n.String)))
		return err
	}
	indent := strings.Repeat("\t", depth)
	// The opening brace sits on its own line below the key or name.
	if _, err := fmt.Fprint(w, "\n", indent, c.Get(SepColor)("{"), "\n"); err != nil {
		return err
	}
	for i, f := range n.Fields {
		val := n.Values[i]
		if _, err := fmt.Fprint(w, indent, "\t", c.Get(KeyColor)(token.Quote(f))); err != nil {
			return err
		}
		if val.Type == ir.StringType {
			if _, err := fmt.Fprint(w, "\t"); err != nil {
				return err
			}
		}
		if err := printNode(w, c, val, depth+1); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, indent, c.Get(SepColor)("}"))
	return err
}
