package main

import (
	"fmt"

	"github.com/vdf-format/go-vdf/debug"
	"github.com/vdf-format/go-vdf/ir"
	"github.com/vdf-format/go-vdf/query"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a key path", cli.ErrUsage)
	}
	src := args[0]
	args = args[1:]
	if cfg.Expr {
		return getExpr(cfg, cc, src, args)
	}
	return eachDoc(cfg.MainConfig, cc, args, func(arg string, doc *ir.Document) error {
		res, err := query.Lookup(doc.Root, src)
		if err != nil {
			return fmt.Errorf("error querying %s with %q: %w", displayName(arg), src, err)
		}
		return writeDoc(cfg.MainConfig, cc.Out, &ir.Document{Root: res})
	})
}

func getExpr(cfg *GetConfig, cc *cli.Context, src string, args []string) error {
	q, err := query.Compile(src)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return eachDoc(cfg.MainConfig, cc, args, func(arg string, doc *ir.Document) error {
		res, err := q.Run(doc)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", displayName(arg), err)
		}
		if debug.Query() {
			debug.Logf("query %q on %s: %v\n", src, displayName(arg), res)
		}
		switch v := res.(type) {
		case string:
			_, err = fmt.Fprintln(cc.Out, v)
			return err
		case map[string]any:
			node, err := ir.FromAny(v)
			if err != nil {
				return err
			}
			return writeDoc(cfg.MainConfig, cc.Out, &ir.Document{Root: node})
		default:
			_, err = fmt.Fprintln(cc.Out, v)
			return err
		}
	})
}
