package cipher

import (
	"github.com/cipherpipe-go/internal/errors"
)

// Affine applies E(x) = (a*x + b) mod m over symbol indices, m being 26
// in alpha-only mode and 95 over the full printable range. Invertibility
// requires gcd(a, m) == 1, checked at construction.
type Affine struct {
	keyA      int
	keyB      int
	keyAInv   int
	m         int
	alphaOnly bool
}

// NewAffine creates an Affine cipher and precomputes the modular inverse
// of keyA
func NewAffine(keyA, keyB int, alphaOnly bool) (*Affine, error) {
	m := fullRange
	if alphaOnly {
		m = letterRange
	}

	if keyA < 1 {
		return nil, errors.NewValidationf("affine key_a must be positive, got %d", keyA)
	}
	if gcd(keyA, m) != 1 {
		return nil, errors.NewValidationf("affine key_a %d is not coprime with alphabet size %d", keyA, m)
	}

	return &Affine{
		keyA:      keyA,
		keyB:      keyB,
		keyAInv:   modInverse(keyA, m),
		m:         m,
		alphaOnly: alphaOnly,
	}, nil
}

// Encode applies the affine transform to each symbol
func (a *Affine) Encode(text string) (string, error) {
	return a.apply(text, func(x int) int {
		return mod(a.keyA*x+a.keyB, a.m)
	})
}

// Decode applies the inverse transform D(y) = aInv * (y - b) mod m
func (a *Affine) Decode(text string) (string, error) {
	return a.apply(text, func(y int) int {
		return mod(a.keyAInv*(y-a.keyB), a.m)
	})
}

func (a *Affine) apply(text string, fn func(int) int) (string, error) {
	if err := checkDomain(text); err != nil {
		return "", err
	}

	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		b := text[i]
		switch {
		case !a.alphaOnly:
			out[i] = byte(domainLo + fn(int(b)-domainLo))
		case isUpper(b):
			out[i] = byte('A' + fn(int(b)-'A'))
		case isLower(b):
			out[i] = byte('a' + fn(int(b)-'a'))
		default:
			out[i] = b
		}
	}
	return string(out), nil
}
