package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/locyaml/locyaml"
	"github.com/locyaml/locyaml/encode"
	"github.com/locyaml/locyaml/ir"
	"github.com/locyaml/locyaml/normalize"
	"github.com/locyaml/locyaml/parse"
)

func clean(cfg *CleanConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Clean.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: clean requires at least one file", cli.ErrUsage)
	}
	if cfg.Check {
		return checkFiles(cfg, cc, args)
	}
	for _, path := range args {
		err := locyaml.Clean(path,
			locyaml.Sort(!cfg.NoSort), locyaml.Indent(cfg.unit()))
		if err != nil {
			return err
		}
	}
	return nil
}

func checkFiles(cfg *CleanConfig, cc *cli.Context, args []string) error {
	dirty := 0
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out, err := canonical(cfg, src)
		if err != nil {
			return fmt.Errorf("check %q: %w", path, err)
		}
		if string(src) == out {
			continue
		}
		dirty++
		fmt.Fprintf(cc.Out, "%s: not canonical\n", path)
		if cfg.Color || isTerminal(cc.Out) {
			dmp := diffpatch.New()
			diffs := dmp.DiffMain(string(src), out, true)
			fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
		}
	}
	if dirty > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// canonical runs the clean pipeline in memory, without touching disk.
func canonical(cfg *CleanConfig, src []byte) (string, error) {
	unit := cfg.unit()
	norm := normalize.Normalize(src, normalize.IndentUnit(unit))
	node, err := parse.Parse(norm, parse.IndentUnit(unit), parse.Comments(true))
	if err != nil {
		return "", err
	}
	if !cfg.NoSort {
		node = ir.Sort(node, true)
	}
	return encode.String(node, encode.IndentUnit(unit))
}
