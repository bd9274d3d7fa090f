// Package format holds the structural constants of the INI text format and
// the error taxonomy shared by the token, parse and encode packages.
//
// # Related Packages
//
//   - github.com/signadot/ini-format/go-ini/parse - Parse INI text into a store
//   - github.com/signadot/ini-format/go-ini/encode - Encode a store as INI text
//   - github.com/signadot/ini-format/go-ini/token - Line tokenization
package format
