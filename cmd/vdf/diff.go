package main

import (
	"fmt"

	"github.com/vdf-format/go-vdf/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := readDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	to, err := readDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	changes := libdiff.Diff(from.Root, to.Root)
	if len(changes) == 0 && from.Name == to.Name {
		return nil
	}
	if cfg.Quiet {
		return cli.ExitCodeErr(1)
	}
	if from.Name != to.Name {
		fmt.Fprintf(cc.Out, "~ (name)\t%s\n", libdiff.InlineDiff(from.Name, to.Name))
	}
	return libdiff.Render(cc.Out, changes)
}
