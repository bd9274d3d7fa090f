package main

import (
	"bytes"
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/scott-cotton/cli"
)

// check verifies that writing a file's store and reparsing the result
// produces the same text again. A stable codec is a fixpoint after one
// write.
func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	bad := 0
	for _, file := range inputs(args) {
		ok, err := checkFile(cfg, cc, file)
		if err != nil {
			return err
		}
		if !ok {
			bad++
		}
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkFile(cfg *CheckConfig, cc *cli.Context, file string) (bool, error) {
	st, err := loadFile(cfg.MainConfig, file)
	if err != nil {
		return false, err
	}
	p := cfg.plugin()
	var first bytes.Buffer
	if err := p.Set(st, &first); err != nil {
		return false, fmt.Errorf("error writing %s: %w", file, err)
	}
	again, err := p.Get(cfg.rootPath(), strings.NewReader(first.String()))
	if err != nil {
		return false, fmt.Errorf("error reparsing %s: %w", file, err)
	}
	var second bytes.Buffer
	if err := p.Set(again, &second); err != nil {
		return false, fmt.Errorf("error rewriting %s: %w", file, err)
	}
	if first.String() == second.String() {
		if !cfg.Q {
			fmt.Fprintf(cc.Out, "%s: ok\n", file)
		}
		return true, nil
	}
	if !cfg.Q {
		fmt.Fprintf(cc.Out, "%s: round trip not stable:\n", file)
		diffCfg := diffpatch.New()
		diffs := diffCfg.DiffMain(first.String(), second.String(), true)
		fmt.Fprint(cc.Out, diffCfg.DiffPrettyText(diffs))
	}
	return false, nil
}
