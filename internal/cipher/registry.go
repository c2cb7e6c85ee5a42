package cipher

import (
	"sort"
	"sync"

	"github.com/cipherpipe-go/internal/errors"
)

// Params carries loosely-typed construction parameters, typically decoded
// from a config file. Numbers may arrive as float64 or int.
type Params map[string]any

// Factory builds an encoder from construction parameters
type Factory func(params Params) (Encoder, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

func init() {
	Register("caesar", func(p Params) (Encoder, error) {
		return NewCaesar(p.intOr("shift", 3), p.boolOr("alpha_only", false)), nil
	})
	Register("atbash", func(p Params) (Encoder, error) {
		return NewAtbash(p.boolOr("alpha_only", false)), nil
	})
	Register("affine", func(p Params) (Encoder, error) {
		return NewAffine(p.intOr("key_a", 3), p.intOr("key_b", 3), p.boolOr("alpha_only", false))
	})
	Register("vigenere", func(p Params) (Encoder, error) {
		return NewVigenere(p.stringOr("key", ""), p.boolOr("alpha_only", false))
	})
	Register("railfence", func(p Params) (Encoder, error) {
		return NewRailFence(p.intOr("rails", 3))
	})
	Register("columnar", func(p Params) (Encoder, error) {
		filler := p.stringOr("filler", "_")
		if len(filler) != 1 {
			return nil, errors.NewValidationf("columnar filler must be a single character, got %q", filler)
		}
		return NewColumnar(p.stringOr("key", ""), filler[0])
	})
	Register("salt", func(p Params) (Encoder, error) {
		seed := int64(p.intOr("seed", 42))
		if pass := p.stringOr("passphrase", ""); pass != "" {
			seed = SeedFromPassphrase(pass)
		}
		return NewSalt(
			SaltPosition(p.stringOr("position", string(SaltBetween))),
			seed,
			p.intOr("min_length", 2),
			p.intOr("max_length", 7),
		)
	})
}

// Register adds an encoder factory to the registry
func Register(kind string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[kind] = factory
}

// New creates an encoder of the given kind using the registry
func New(kind string, params Params) (Encoder, error) {
	registryMu.RLock()
	factory, ok := registry[kind]
	registryMu.RUnlock()

	if !ok {
		return nil, errors.NewCapabilityf("unknown encoder kind: %s", kind)
	}
	return factory(params)
}

// ListRegistered returns all registered encoder kinds, sorted
func ListRegistered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// IsRegistered checks if an encoder kind is registered
func IsRegistered(kind string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[kind]
	return ok
}

// Helpers for reading loosely-typed parameter maps

func (p Params) intOr(key string, def int) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

func (p Params) boolOr(key string, def bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return def
}

func (p Params) stringOr(key string, def string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return def
}
