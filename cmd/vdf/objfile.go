package main

import (
	"fmt"
	"io"
	"os"

	"github.com/vdf-format/go-vdf/format"
	"github.com/vdf-format/go-vdf/ir"
	"github.com/vdf-format/go-vdf/pretty"

	"github.com/scott-cotton/cli"
)

// readDoc reads and decodes one document argument. "-" or "" means
// stdin. The format follows -I / -v/-j/-y, then the file extension.
func readDoc(cfg *MainConfig, cc *cli.Context, arg string) (*ir.Document, error) {
	var r io.Reader
	if arg == "" || arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	doc, err := format.Decode(d, cfg.inFormat(arg))
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", displayName(arg), err)
	}
	return doc, nil
}

// writeDoc renders doc to w in the output format. A trailing newline
// is guaranteed; vdf output is colored per cfg.
func writeDoc(cfg *MainConfig, w io.Writer, doc *ir.Document) error {
	of := cfg.outFormat()
	if of.IsVDF() {
		return pretty.Fprint(w, cfg.colors(w), doc)
	}
	d, err := format.Encode(doc, of)
	if err != nil {
		return err
	}
	if _, err := w.Write(d); err != nil {
		return err
	}
	if len(d) > 0 && d[len(d)-1] != '\n' {
		_, err = fmt.Fprintln(w)
	}
	return err
}

// eachDoc runs fn once per file argument, or once on stdin when no
// files are given.
func eachDoc(cfg *MainConfig, cc *cli.Context, args []string, fn func(arg string, doc *ir.Document) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := readDoc(cfg, cc, arg)
		if err != nil {
			return err
		}
		if err := fn(arg, doc); err != nil {
			return err
		}
	}
	return nil
}

func displayName(arg string) string {
	if arg == "" || arg == "-" {
		return "(stdin)"
	}
	return arg
}
