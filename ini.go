// Package ini is a bidirectional codec between line-oriented INI text and
// a hierarchical, ordered key store. The Plugin type is the surface a
// configuration-access host drives: Get parses text into a store, Set
// writes a store back out, regrouping entries the host inserted since the
// last Get.
//
// # Usage
//
//	p := ini.New(ini.Config{Sections: true, Multiline: true})
//	st, err := p.Get(store.ParsePath("user/app"), r)
//	...
//	err = p.Set(st, w)
package ini

import (
	"io"
	"os"

	"github.com/signadot/ini-format/go-ini/debug"
	"github.com/signadot/ini-format/go-ini/encode"
	"github.com/signadot/ini-format/go-ini/format"
	"github.com/signadot/ini-format/go-ini/parse"
	"github.com/signadot/ini-format/go-ini/store"
)

// Config holds the recognized plugin switches.
type Config struct {
	// Multiline enables continuation-line parsing.
	Multiline bool
	// AutoSections synthesizes section markers on write for nested keys
	// whose section the host never created.
	AutoSections bool
	// Arrays merges repeated keys into indexed arrays instead of
	// overwriting.
	Arrays bool
	// PreserveOrder inserts host-added keys next to their siblings
	// instead of appending them at the end.
	PreserveOrder bool
	// Sections emits [name] headers; when false output is flattened.
	Sections bool
}

// settings keys recognized by ConfigFromStore; presence enables the
// switch, matching the host's convention for plugin configuration.
const (
	settingMultiline     = "multiline"
	settingAutoSections  = "autosections"
	settingArrays        = "array"
	settingPreserveOrder = "preserveorder"
	settingSections      = "sections"
)

// ConfigFromStore reads switches from a host-supplied settings store.
func ConfigFromStore(settings *store.Store) Config {
	if settings == nil {
		return Config{}
	}
	has := func(name string) bool {
		return settings.Lookup(settings.Root().Child(name)) != nil
	}
	return Config{
		Multiline:     has(settingMultiline),
		AutoSections:  has(settingAutoSections),
		Arrays:        has(settingArrays),
		PreserveOrder: has(settingPreserveOrder),
		Sections:      has(settingSections),
	}
}

// Plugin is the codec with a fixed switch set. It holds no store state;
// concurrent use on distinct stores is safe.
type Plugin struct {
	cfg Config
}

func New(cfg Config) *Plugin {
	return &Plugin{cfg: cfg}
}

// Open creates a Plugin from a host settings store.
func Open(settings *store.Store) *Plugin {
	return New(ConfigFromStore(settings))
}

func (p *Plugin) Config() Config { return p.cfg }

// Get parses INI text from r into a fresh store rooted at parent. On any
// failure no partial store is returned.
func (p *Plugin) Get(parent store.Path, r io.Reader, opts ...parse.ParseOption) (*store.Store, error) {
	opts = append([]parse.ParseOption{
		parse.ParseMultiline(p.cfg.Multiline),
		parse.ParseArrays(p.cfg.Arrays),
	}, opts...)
	st, err := parse.Parse(r, parent, opts...)
	if err != nil {
		return nil, err
	}
	if debug.Store() {
		debug.DumpStore("get", st)
	}
	return st, nil
}

// GetFile is Get over a file; open failures surface as i/o errors.
func (p *Plugin) GetFile(parent store.Path, path string) (*store.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &parse.Error{Err: format.ErrIO, Msg: err.Error()}
	}
	defer f.Close()
	return p.Get(parent, f, parse.WithFilename(path))
}

// Set writes st as INI text to w. Entries the host added without order
// metadata are regrouped first; st itself is not modified.
func (p *Plugin) Set(st *store.Store, w io.Writer, opts ...encode.EncodeOption) error {
	out, err := p.regroup(st)
	if err != nil {
		return err
	}
	if debug.Store() {
		debug.DumpStore("set", out)
	}
	opts = append([]encode.EncodeOption{
		encode.EncodeSections(p.cfg.Sections),
		encode.EncodeArrays(p.cfg.Arrays),
	}, opts...)
	return encode.Encode(out, w, opts...)
}

// SetFile is Set over a file; create failures surface as i/o errors.
func (p *Plugin) SetFile(st *store.Store, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &encode.Error{Err: format.ErrIO, Msg: err.Error()}
	}
	if err := p.Set(st, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return &encode.Error{Err: format.ErrIO, Msg: err.Error()}
	}
	return nil
}
