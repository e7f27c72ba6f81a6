package main

import (
	"github.com/scott-cotton/cli"

	"github.com/locyaml/locyaml/normalize"
)

func normalizeFiles(cfg *NormalizeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Normalize.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, path := range args {
		if path == "-" {
			d, err := readInput(cc, path)
			if err != nil {
				return err
			}
			out := normalize.Normalize(d, normalize.IndentUnit(cfg.unit()))
			if _, err := cc.Out.Write(out); err != nil {
				return err
			}
			continue
		}
		if err := normalize.File(path, normalize.IndentUnit(cfg.unit())); err != nil {
			return err
		}
	}
	return nil
}
