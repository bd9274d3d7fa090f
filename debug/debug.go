// Package debug provides environment-gated diagnostics for codec
// development. All output goes to stderr and is off unless the
// corresponding INI_DEBUG_* variable is set.
package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/signadot/ini-format/go-ini/store"
)

type debug struct {
	Store bool
}

var d *debug

func init() {
	d = &debug{}
	d.Store = boolEnv("INI_DEBUG_STORE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Store() bool {
	return d.Store
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
}

// DumpStore writes every entry of st to stderr, one per line, in order
// token order.
func DumpStore(label string, st *store.Store) {
	fmt.Fprintf(os.Stderr, "=== %s (%s) ===\n", label, st.Root())
	for _, e := range st.ByOrder() {
		fmt.Fprintf(os.Stderr, "  %s\n", e)
	}
}
