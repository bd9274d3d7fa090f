package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/signadot/ini-format/go-ini/parse"
	"github.com/signadot/ini-format/go-ini/store"
)

// withInput opens the named file ("-" means stdin), transparently
// decompressing a .gz suffix, and calls fn with the reader.
func withInput(file string, fn func(r io.Reader) error) error {
	var r io.Reader
	if file == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
		if strings.HasSuffix(file, ".gz") {
			zr, err := gzip.NewReader(f)
			if err != nil {
				return fmt.Errorf("could not decompress %q: %w", file, err)
			}
			defer zr.Close()
			r = zr
		}
	}
	if err := fn(r); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

// loadFile parses one input file with the configured plugin.
func loadFile(cfg *MainConfig, file string) (*store.Store, error) {
	var st *store.Store
	err := withInput(file, func(r io.Reader) error {
		var err error
		st, err = cfg.plugin().Get(cfg.rootPath(), r, parse.WithFilename(file))
		return err
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

// inputs defaults to stdin when no file arguments were given.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
