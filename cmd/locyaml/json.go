package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"
)

func jsonView(cfg *JSONConfig, cc *cli.Context, args []string) error {
	args, err := cfg.JSON.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, path := range orStdin(args) {
		node, err := parseInput(cc, path, cfg.unit(), false)
		if err != nil {
			return err
		}
		d, err := json.MarshalIndent(node, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", d)
	}
	return nil
}
