// Package walker applies an encoder to every string leaf of nested data,
// rebuilding the same shape on decode. It works over the loosely-typed
// values produced by encoding/json: maps, slices, strings, and scalars.
package walker

import (
	"github.com/cipherpipe-go/internal/cipher"
)

// Walker recursively applies an Encoder to string leaves
type Walker struct {
	enc cipher.Encoder
}

// New creates a Walker over any Encoder: a single cipher, a Salt, or a
// whole Pipeline
func New(enc cipher.Encoder) *Walker {
	return &Walker{enc: enc}
}

// Encode transforms every string leaf of data
func (w *Walker) Encode(data any) (any, error) {
	return w.apply(data, w.enc.Encode)
}

// Decode reverses Encode over the same shape
func (w *Walker) Decode(data any) (any, error) {
	return w.apply(data, w.enc.Decode)
}

func (w *Walker) apply(data any, fn func(string) (string, error)) (any, error) {
	switch v := data.(type) {
	case string:
		return fn(v)
	case []byte:
		s, err := fn(string(v))
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			item, err := w.apply(item, fn)
			if err != nil {
				return nil, err
			}
			out[i] = item
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			item, err := w.apply(item, fn)
			if err != nil {
				return nil, err
			}
			out[key] = item
		}
		return out, nil
	default:
		// numbers, booleans, nil pass through untouched
		return data, nil
	}
}
