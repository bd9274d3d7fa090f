// Package parse builds a store from INI text.
//
// # Usage
//
//	st, err := parse.Parse(r, store.ParsePath("user/config"))
//	if err != nil {
//	    return err
//	}
//
//	// with repeated-key arrays and continuation lines
//	st, err := parse.Parse(r, root, parse.ParseArrays(true), parse.ParseMultiline(true))
//
// The parser consumes tokenizer events in file order, assigns each entry a
// stable order token and a section id, merges repeated keys into arrays,
// and attaches preceding comment blocks. On any failure no partial store is
// returned.
//
// # Related Packages
//
//   - github.com/signadot/ini-format/go-ini/token - Line tokenization
//   - github.com/signadot/ini-format/go-ini/store - Store representation
//   - github.com/signadot/ini-format/go-ini/encode - Inverse transformation
package parse
