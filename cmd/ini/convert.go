package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/ini-format/go-ini/store"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	for i, file := range inputs(args) {
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return fmt.Errorf("error writing: %w", err)
			}
		}
		st, err := loadFile(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		d, err := yaml.Marshal(toYAML(cfg.MainConfig, st))
		if err != nil {
			return fmt.Errorf("error converting %s: %w", file, err)
		}
		if _, err := cc.Out.Write(d); err != nil {
			return fmt.Errorf("error writing %s: %w", file, err)
		}
	}
	return nil
}

// toYAML regroups the store into an ordered document: global keys
// first, then one mapping per section, in emission order. Array heads
// become sequences.
func toYAML(cfg *MainConfig, st *store.Store) yaml.MapSlice {
	root := cfg.rootPath()
	doc := yaml.MapSlice{}
	sections := map[string]*yaml.MapSlice{}
	consumed := map[string]bool{}
	add := func(section *store.Path, name string, value any) {
		if section == nil {
			doc = append(doc, yaml.MapItem{Key: name, Value: value})
			return
		}
		secName := section.Name(root)
		ms := sections[secName]
		if ms == nil {
			ms = &yaml.MapSlice{}
			sections[secName] = ms
			doc = append(doc, yaml.MapItem{Key: secName, Value: ms})
		}
		*ms = append(*ms, yaml.MapItem{Key: name, Value: value})
	}
	for _, e := range st.ByOrder() {
		if !e.IsKey || consumed[e.Path().String()] {
			continue
		}
		var section *store.Path
		if len(e.ParentSection) > 0 && !e.ParentSection.Equal(root) {
			ps := e.ParentSection
			section = &ps
		}
		name := e.Path().Base()
		if e.IsArrayHead() {
			vals := make([]string, 0, e.ArrayNext)
			for i := 0; i < e.ArrayNext; i++ {
				m := st.Lookup(e.MemberPath(i))
				if m == nil {
					continue
				}
				consumed[m.Path().String()] = true
				vals = append(vals, m.Value)
			}
			add(section, name, vals)
			continue
		}
		if !e.HasValue {
			continue
		}
		add(section, name, e.Value)
	}
	return doc
}
