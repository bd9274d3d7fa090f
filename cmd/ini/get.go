package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/signadot/ini-format/go-ini/store"
)

// whereEnv is the expression environment for -where filters, one
// instance per key entry.
type whereEnv struct {
	Name    string `expr:"name"`
	Value   string `expr:"value"`
	Section string `expr:"section"`
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var prg *vm.Program
	if cfg.Where != "" {
		prg, err = expr.Compile(cfg.Where, expr.Env(whereEnv{}), expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: bad -where expression: %v", cli.ErrUsage, err)
		}
	}
	keyPath := ""
	if prg == nil {
		if len(args) == 0 {
			return fmt.Errorf("%w: get requires a key path or -where expression", cli.ErrUsage)
		}
		keyPath = args[0]
		args = args[1:]
	}
	for _, file := range inputs(args) {
		st, err := loadFile(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		if prg != nil {
			if err := getWhere(cfg, cc, st, prg); err != nil {
				return fmt.Errorf("error querying %s: %w", file, err)
			}
			continue
		}
		if err := getPath(cfg, cc, st, keyPath); err != nil {
			return fmt.Errorf("error querying %s: %w", file, err)
		}
	}
	return nil
}

func getPath(cfg *GetConfig, cc *cli.Context, st *store.Store, keyPath string) error {
	p := cfg.rootPath().Child(store.ParsePath(keyPath)...)
	e := st.Lookup(p)
	if e == nil {
		return fmt.Errorf("no key %q", keyPath)
	}
	if e.IsArrayHead() {
		for i := 0; i < e.ArrayNext; i++ {
			m := st.Lookup(e.MemberPath(i))
			if m == nil {
				continue
			}
			fmt.Fprintln(cc.Out, m.Value)
		}
		return nil
	}
	fmt.Fprintln(cc.Out, e.Value)
	return nil
}

func getWhere(cfg *GetConfig, cc *cli.Context, st *store.Store, prg *vm.Program) error {
	root := cfg.rootPath()
	for _, e := range st.Entries() {
		if !e.IsKey || !e.HasValue || e.IsArrayHead() {
			continue
		}
		section := ""
		if len(e.ParentSection) > 0 {
			section = e.ParentSection.Name(root)
		}
		res, err := vm.Run(prg, whereEnv{
			Name:    e.Path().Base(),
			Value:   e.Value,
			Section: section,
		})
		if err != nil {
			return err
		}
		if res.(bool) {
			fmt.Fprintf(cc.Out, "%s = %s\n", e.Path().Name(root), e.Value)
		}
	}
	return nil
}
