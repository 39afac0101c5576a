package main

import (
	"github.com/vdf-format/go-vdf/ir"
	"github.com/vdf-format/go-vdf/pretty"

	"github.com/scott-cotton/cli"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachDoc(cfg.MainConfig, cc, args, func(_ string, doc *ir.Document) error {
		return writeDoc(cfg.MainConfig, cc.Out, doc)
	})
}

// view is fmt pinned to colored vdf output.
func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachDoc(cfg.MainConfig, cc, args, func(_ string, doc *ir.Document) error {
		return pretty.Fprint(cc.Out, pretty.NewColors(), doc)
	})
}
