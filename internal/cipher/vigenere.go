package cipher

import (
	"github.com/cipherpipe-go/internal/errors"
)

// Vigenere applies a per-position Caesar shift taken from a repeating key.
// Every text position consumes a key character, including positions that
// pass through unchanged in alpha-only mode, so the key stream stays
// aligned between encode and decode.
type Vigenere struct {
	key       string
	alphaOnly bool
}

// NewVigenere creates a Vigenere cipher. The key must be non-empty and
// within the printable ASCII window; in alpha-only mode it must consist
// solely of letters.
func NewVigenere(key string, alphaOnly bool) (*Vigenere, error) {
	if key == "" {
		return nil, errors.NewValidation("vigenere key cannot be empty")
	}
	for i := 0; i < len(key); i++ {
		if key[i] < domainLo || key[i] > domainHi {
			return nil, errors.NewValidationf("vigenere key character at position %d is outside printable ASCII", i)
		}
		if alphaOnly && !isLetter(key[i]) {
			return nil, errors.NewValidationf("vigenere key must be letters only in alpha-only mode, got %q", key[i])
		}
	}
	return &Vigenere{key: key, alphaOnly: alphaOnly}, nil
}

// Encode shifts each symbol forward by its key character's index
func (v *Vigenere) Encode(text string) (string, error) {
	return v.apply(text, 1)
}

// Decode shifts each symbol back by its key character's index
func (v *Vigenere) Decode(text string) (string, error) {
	return v.apply(text, -1)
}

func (v *Vigenere) apply(text string, sign int) (string, error) {
	if err := checkDomain(text); err != nil {
		return "", err
	}

	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		b := text[i]
		k := v.key[i%len(v.key)]
		if v.alphaOnly {
			shift := sign * letterIndex(k)
			switch {
			case isUpper(b):
				out[i] = byte('A' + mod(int(b)-'A'+shift, letterRange))
			case isLower(b):
				out[i] = byte('a' + mod(int(b)-'a'+shift, letterRange))
			default:
				out[i] = b
			}
		} else {
			shift := sign * (int(k) - domainLo)
			out[i] = byte(domainLo + mod(int(b)-domainLo+shift, fullRange))
		}
	}
	return string(out), nil
}

// letterIndex returns the 0-25 alphabet index of a letter, ignoring case
func letterIndex(b byte) int {
	if isLower(b) {
		return int(b - 'a')
	}
	return int(b - 'A')
}
