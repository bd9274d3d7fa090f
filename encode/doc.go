// Package encode writes a store back out as INI text.
//
// # Usage
//
//	err := encode.Encode(st, w)
//
//	// flattened, no [section] headers
//	err := encode.Encode(st, w, encode.EncodeSections(false))
//
// Entries are emitted in order-token order, regrouped by section and array
// boundaries. Emission fails rather than producing structurally malformed
// text.
//
// # Related Packages
//
//   - github.com/signadot/ini-format/go-ini/parse - Inverse transformation
//   - github.com/signadot/ini-format/go-ini/store - Store representation
package encode
