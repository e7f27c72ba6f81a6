package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "locyaml").
		WithSynopsis("locyaml [opts] command [opts] [files]").
		WithDescription("locyaml keeps translation YAML files in canonical form.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return locMain(cfg, cc, args)
		}).
		WithSubs(
			CleanCommand(cfg),
			ViewCommand(cfg),
			JSONCommand(cfg),
			NormalizeCommand(cfg))
}

func locMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func CleanCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CleanConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("clean").
		WithAliases("c").
		WithSynopsis("clean [-no-sort] [-check] files...").
		WithDescription("rewrite translation files in canonical, sorted form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return clean(cfg, cc, args)
		})
	cfg.Clean = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("print files in canonical form, colored on terminals").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func JSONCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &JSONConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("json").
		WithAliases("j").
		WithSynopsis("json [files]").
		WithDescription("print the parsed mapping as JSON, entry order preserved").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jsonView(cfg, cc, args)
		})
	cfg.JSON = cmd
	return cmd
}

func NormalizeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NormalizeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("normalize").
		WithAliases("n", "norm").
		WithSynopsis("normalize [files]").
		WithDescription("run only the normalizer; with no files, filter stdin to stdout").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return normalizeFiles(cfg, cc, args)
		})
	cfg.Normalize = cmd
	return cmd
}
