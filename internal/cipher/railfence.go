package cipher

import (
	"github.com/cipherpipe-go/internal/errors"
)

// RailFence writes the text along a zig-zag of rails rows and reads the
// rows off left to right. Decode rebuilds the same zig-zag index pattern
// and inverts it.
type RailFence struct {
	rails int
}

// NewRailFence creates a Rail Fence cipher with at least two rails
func NewRailFence(rails int) (*RailFence, error) {
	if rails < 2 {
		return nil, errors.NewValidationf("rail fence requires at least 2 rails, got %d", rails)
	}
	return &RailFence{rails: rails}, nil
}

// Encode reads the zig-zag rows in order
func (r *RailFence) Encode(text string) (string, error) {
	if err := r.checkInput(text); err != nil {
		return "", err
	}
	if text == "" {
		return "", nil
	}

	rows := r.rowPattern(len(text))
	out := make([]byte, 0, len(text))
	for rail := 0; rail < r.rails; rail++ {
		for i := 0; i < len(text); i++ {
			if rows[i] == rail {
				out = append(out, text[i])
			}
		}
	}
	return string(out), nil
}

// Decode assigns ciphertext back to rails and walks the zig-zag
func (r *RailFence) Decode(text string) (string, error) {
	if err := r.checkInput(text); err != nil {
		return "", err
	}
	if text == "" {
		return "", nil
	}

	rows := r.rowPattern(len(text))

	// slot ciphertext into zig-zag positions rail by rail
	out := make([]byte, len(text))
	pos := 0
	for rail := 0; rail < r.rails; rail++ {
		for i := 0; i < len(text); i++ {
			if rows[i] == rail {
				out[i] = text[pos]
				pos++
			}
		}
	}
	return string(out), nil
}

func (r *RailFence) checkInput(text string) error {
	if err := checkDomain(text); err != nil {
		return err
	}
	if text != "" && r.rails > len(text) {
		return errors.NewValidationf("rail count %d exceeds text length %d", r.rails, len(text))
	}
	return nil
}

// rowPattern returns the rail index of each text position along the
// zig-zag
func (r *RailFence) rowPattern(n int) []int {
	rows := make([]int, n)
	rail, step := 0, 1
	for i := 0; i < n; i++ {
		rows[i] = rail
		if rail == 0 {
			step = 1
		} else if rail == r.rails-1 {
			step = -1
		}
		rail += step
	}
	return rows
}
