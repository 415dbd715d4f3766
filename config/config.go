package config

import (
	"sync"

	"github.com/neuronlabs/jsonapi/namer"
)

// Options contains the processwide defaults used while assembling documents.
type Options struct {
	// NamingConvention is the convention used for all publicly visible names.
	NamingConvention namer.NamingConvention

	// BaseURL is the common prefix for all the 'self' and relationship links.
	// It must not contain a trailing slash.
	BaseURL string

	// Links defines if the resource and relationship links should be encoded.
	Links bool
}

// Copy creates a copy of the options 'o'.
func (o *Options) Copy() *Options {
	c := *o
	return &c
}

var (
	defaultMu      sync.Mutex
	defaultOptions = newDefault()
)

func newDefault() *Options {
	return &Options{
		NamingConvention: namer.Default,
		Links:            true,
	}
}

// Default returns a copy of the processwide default options.
func Default() *Options {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultOptions.Copy()
}

// SetDefault sets the processwide default options.
func SetDefault(o *Options) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultOptions = o.Copy()
}

// WithNamingConvention temporarily overrides the default naming convention for
// the duration of 'fn'. The previous convention is restored on every exit
// path, including the error exits.
func WithNamingConvention(convention namer.NamingConvention, fn func() error) error {
	defaultMu.Lock()
	previous := defaultOptions.NamingConvention
	defaultOptions.NamingConvention = convention
	defaultMu.Unlock()

	defer func() {
		defaultMu.Lock()
		defaultOptions.NamingConvention = previous
		defaultMu.Unlock()
	}()

	return fn()
}
