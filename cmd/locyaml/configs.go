package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/locyaml/locyaml/encode"
)

type MainConfig struct {
	Indent int  `cli:"name=indent desc='spaces per nesting level (default 2)'"`
	Color  bool `cli:"name=color desc='force colored output'"`

	Main *cli.Command
}

func (cfg *MainConfig) unit() int {
	if cfg.Indent > 0 {
		return cfg.Indent
	}
	return 2
}

// encOpts turns on colors when forced or when w is a terminal.
func (cfg *MainConfig) encOpts(w io.Writer) []encode.Option {
	res := []encode.Option{encode.IndentUnit(cfg.unit())}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type CleanConfig struct {
	*MainConfig

	NoSort bool `cli:"name=no-sort desc='keep key order as written'"`
	Check  bool `cli:"name=check desc='report what clean would change, write nothing'"`

	Clean *cli.Command
}

type ViewConfig struct {
	*MainConfig

	NoComments bool `cli:"name=no-comments desc='drop comment lines'"`
	NoSort     bool `cli:"name=no-sort desc='keep key order as written'"`

	View *cli.Command
}

type JSONConfig struct {
	*MainConfig

	JSON *cli.Command
}

type NormalizeConfig struct {
	*MainConfig

	Normalize *cli.Command
}
