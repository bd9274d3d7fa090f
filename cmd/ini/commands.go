package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "ini").
		WithSynopsis("ini [opts] command [opts]").
		WithDescription("ini is a tool for working with ordered INI configuration.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return iniMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			CheckCommand(cfg),
			GetCommand(cfg),
			ConvertCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view INI files with sections and keys in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c", "ck").
		WithSynopsis("check [files]").
		WithDescription("check that files survive a parse-write-parse round trip").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get [-where expr] <keypath> [files]").
		WithDescription("get key values from files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("convert").
		WithAliases("y", "yaml").
		WithSynopsis("convert [files]").
		WithDescription("convert INI files to yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
	cfg.Convert = cmd
	return cmd
}
