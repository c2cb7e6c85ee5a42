package cipher

import (
	"github.com/cipherpipe-go/internal/errors"
)

// Printable ASCII window shared by all ciphers. Full-range mode treats the
// whole window as a closed alphabet; alpha-only mode transforms letters and
// passes the rest through.
const (
	domainLo    = 32
	domainHi    = 126
	fullRange   = domainHi - domainLo + 1 // 95 symbols
	letterRange = 26
)

// checkDomain validates the entire input before any transformation, so a
// failing call never yields partially-encoded output.
func checkDomain(text string) error {
	for i := 0; i < len(text); i++ {
		if text[i] < domainLo || text[i] > domainHi {
			return errors.NewDomainf("character %q at position %d is outside printable ASCII 32-126", text[i], i)
		}
	}
	return nil
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

func isLower(b byte) bool { return b >= 'a' && b <= 'z' }

func isLetter(b byte) bool { return isUpper(b) || isLower(b) }

// mod returns a mod m in [0, m), unlike the % operator for negative a
func mod(a, m int) int {
	a %= m
	if a < 0 {
		a += m
	}
	return a
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// modInverse returns the multiplicative inverse of a mod m, or -1 when a
// and m are not coprime
func modInverse(a, m int) int {
	a = mod(a, m)
	for i := 1; i < m; i++ {
		if (a*i)%m == 1 {
			return i
		}
	}
	return -1
}
