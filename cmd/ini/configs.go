package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	ini "github.com/signadot/ini-format/go-ini"
	"github.com/signadot/ini-format/go-ini/encode"
	"github.com/signadot/ini-format/go-ini/store"
)

type MainConfig struct {
	Root string `cli:"name=root desc='store root path (default user/ini)'"`

	M    bool `cli:"name=m aliases=multiline desc='enable continuation lines'"`
	A    bool `cli:"name=a aliases=array desc='merge repeated keys into arrays'"`
	P    bool `cli:"name=p aliases=preserveorder desc='position-stable insertion on write'"`
	Auto bool `cli:"name=autosections desc='synthesize section headers on write'"`
	Flat bool `cli:"name=flat desc='write without section headers'"`

	Color bool `cli:"name=color desc='colorize output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) plugin() *ini.Plugin {
	return ini.New(ini.Config{
		Multiline:     cfg.M,
		Arrays:        cfg.A,
		PreserveOrder: cfg.P,
		AutoSections:  cfg.Auto,
		Sections:      !cfg.Flat,
	})
}

func (cfg *MainConfig) rootPath() store.Path {
	if cfg.Root == "" {
		return store.ParsePath("user/ini")
	}
	return store.ParsePath(cfg.Root)
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	// -color was given explicitly as false
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Q     bool `cli:"name=q aliases=quiet desc='no diff output, exit status only'"`
	Check *cli.Command
}

type GetConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='filter expression over name, value, section'"`
	Get   *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	Convert *cli.Command
}
