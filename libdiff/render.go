package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/vdf-format/go-vdf"
	"github.com/vdf-format/go-vdf/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Render writes one line per change. String modifications carry an
// inline character diff of the two values.
func Render(w io.Writer, changes []Change) error {
	for i := range changes {
		c := &changes[i]
		var err error
		switch c.Kind {
		case Add:
			_, err = fmt.Fprintf(w, "+ %s\t%s\n", c.Key(), renderNode(c.To))
		case Delete:
			_, err = fmt.Fprintf(w, "- %s\t%s\n", c.Key(), renderNode(c.From))
		case Modify:
			if c.From.Type == ir.StringType && c.To.Type == ir.StringType {
				_, err = fmt.Fprintf(w, "~ %s\t%s\n", c.Key(), InlineDiff(c.From.String, c.To.String))
			} else {
				_, err = fmt.Fprintf(w, "~ %s\t%s => %s\n", c.Key(), renderNode(c.From), renderNode(c.To))
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// InlineDiff returns a compact single-line diff of two strings, with
// deletions in [-...] and insertions in [+...].
func InlineDiff(from, to string) string {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	var out []byte
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			out = append(out, "[-"...)
			out = append(out, d.Text...)
			out = append(out, ']')
		case diffpatch.DiffInsert:
			out = append(out, "[+"...)
			out = append(out, d.Text...)
			out = append(out, ']')
		case diffpatch.DiffEqual:
			out = append(out, d.Text...)
		}
	}
	return string(out)
}

func renderNode(n *ir.Node) string {
	e := vdf.NewEncoder()
	if err := n.MarshalVDF(e); err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	// Group encodings start with the newline that would separate them
	// from a key; it has no place at the start of a rendered snippet.
	return strings.TrimPrefix(string(e.Bytes()), "\n")
}
