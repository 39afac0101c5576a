// Package query evaluates expressions against VDF documents. The
// expression language is expr; the document is exposed as nested maps
// under "doc" with its top-level name under "name".
package query

import (
	"fmt"
	"os"
	"strings"

	"github.com/vdf-format/go-vdf/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Query is a compiled expression, reusable across documents.
type Query struct {
	src string
	prg *vm.Program
}

// Compile compiles src into a Query.
func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	return &Query{src: src, prg: prg}, nil
}

// Run evaluates the query against doc.
func (q *Query) Run(doc *ir.Document) (any, error) {
	env := map[string]any{
		"doc":  doc.Root.ToAny(),
		"name": doc.Name,
		"get": func(path string) (any, error) {
			n, err := Lookup(doc.Root, path)
			if err != nil {
				return nil, err
			}
			return n.ToAny(), nil
		},
		"has": func(path string) bool {
			_, err := Lookup(doc.Root, path)
			return err == nil
		},
		"keys": func(path string) ([]string, error) {
			n, err := Lookup(doc.Root, path)
			if err != nil {
				return nil, err
			}
			if n.Type != ir.ObjectType {
				return nil, fmt.Errorf("%s is not an object", path)
			}
			return n.Fields, nil
		},
	}
	res, err := expr.Run(q.prg, env)
	if err != nil {
		return nil, fmt.Errorf("run %q: %w", q.src, err)
	}
	return res, nil
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// Lookup resolves a dot-separated key path from n. The empty path
// returns n itself. Keys containing dots are not addressable this way;
// use an expression for those.
func Lookup(n *ir.Node, path string) (*ir.Node, error) {
	if path == "" {
		return n, nil
	}
	cur := n
	for _, key := range strings.Split(path, ".") {
		if cur.Type != ir.ObjectType {
			return nil, fmt.Errorf("%q: not an object", key)
		}
		next := cur.Get(key)
		if next == nil {
			return nil, fmt.Errorf("%q: no such key", key)
		}
		cur = next
	}
	return cur, nil
}
