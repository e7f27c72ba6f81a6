package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/locyaml/locyaml/ir"
	"github.com/locyaml/locyaml/normalize"
	"github.com/locyaml/locyaml/parse"
)

// readInput reads the file at path, or the command's stdin for "-".
func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// parseInput runs normalize+parse over one input without touching disk.
func parseInput(cc *cli.Context, path string, unit int, comments bool) (*ir.Node, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	norm := normalize.Normalize(d, normalize.IndentUnit(unit))
	node, err := parse.Parse(norm, parse.IndentUnit(unit), parse.Comments(comments))
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", path, err)
	}
	return node, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// orStdin makes a bare invocation read standard input.
func orStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
