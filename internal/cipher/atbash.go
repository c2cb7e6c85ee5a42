package cipher

// Atbash mirrors every symbol about the alphabet midpoint (A<->Z, a<->z,
// or the full printable-range reflection). The transform is its own
// inverse.
type Atbash struct {
	alphaOnly bool
}

// NewAtbash creates an Atbash cipher
func NewAtbash(alphaOnly bool) *Atbash {
	return &Atbash{alphaOnly: alphaOnly}
}

// Encode reflects each symbol
func (a *Atbash) Encode(text string) (string, error) {
	if err := checkDomain(text); err != nil {
		return "", err
	}

	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		b := text[i]
		switch {
		case !a.alphaOnly:
			out[i] = byte(domainHi - (int(b) - domainLo))
		case isUpper(b):
			out[i] = 'Z' - (b - 'A')
		case isLower(b):
			out[i] = 'z' - (b - 'a')
		default:
			out[i] = b
		}
	}
	return string(out), nil
}

// Decode is identical to Encode; the reflection is self-inverse
func (a *Atbash) Decode(text string) (string, error) {
	return a.Encode(text)
}
