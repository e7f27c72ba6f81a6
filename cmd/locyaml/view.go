package main

import (
	"github.com/scott-cotton/cli"

	"github.com/locyaml/locyaml/encode"
	"github.com/locyaml/locyaml/ir"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, path := range orStdin(args) {
		node, err := parseInput(cc, path, cfg.unit(), !cfg.NoComments)
		if err != nil {
			return err
		}
		if !cfg.NoSort {
			node = ir.Sort(node, true)
		}
		opts := append(cfg.encOpts(cc.Out), encode.EncodeComments(!cfg.NoComments))
		if err := encode.Encode(node, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
