package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for i, file := range inputs(args) {
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "\n"); err != nil {
				return fmt.Errorf("error writing: %w", err)
			}
		}
		st, err := loadFile(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		if err := cfg.plugin().Set(st, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error writing %s: %w", file, err)
		}
	}
	return nil
}
