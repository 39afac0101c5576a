package main

import (
	"fmt"
	"os"

	"github.com/vdf-format/go-vdf/ir"
	"github.com/vdf-format/go-vdf/patch"

	"github.com/scott-cotton/cli"
)

func patchRun(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires one argument, a json patch", cli.ErrUsage)
	}
	if cfg.String && cfg.File {
		return fmt.Errorf("%w: -s and -f are mutually exclusive", cli.ErrUsage)
	}
	src := []byte(args[0])
	// Default to file when the argument names one, unless -s forces
	// string interpretation.
	if cfg.File || (!cfg.String && isFile(args[0])) {
		src, err = os.ReadFile(args[0])
		if err != nil {
			return err
		}
	}
	p, err := patch.Decode(src)
	if err != nil {
		return fmt.Errorf("%w: bad patch: %w", cli.ErrUsage, err)
	}
	return eachDoc(cfg.MainConfig, cc, args[1:], func(arg string, doc *ir.Document) error {
		root, err := p.Apply(doc.Root)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", displayName(arg), err)
		}
		return writeDoc(cfg.MainConfig, cc.Out, &ir.Document{Name: doc.Name, Root: root})
	})
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
