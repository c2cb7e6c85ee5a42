package cipher

// Caesar shifts every symbol a fixed number of positions around the
// alphabet. With alphaOnly only ASCII letters move, keeping their case;
// otherwise the full 95-symbol printable range wraps around.
type Caesar struct {
	shift     int
	alphaOnly bool
}

// NewCaesar creates a Caesar cipher with the given shift. Any shift is
// valid; it is reduced modulo the alphabet size.
func NewCaesar(shift int, alphaOnly bool) *Caesar {
	return &Caesar{shift: shift, alphaOnly: alphaOnly}
}

// Encode shifts each symbol forward
func (c *Caesar) Encode(text string) (string, error) {
	return c.shiftBy(text, c.shift)
}

// Decode shifts each symbol back
func (c *Caesar) Decode(text string) (string, error) {
	return c.shiftBy(text, -c.shift)
}

func (c *Caesar) shiftBy(text string, shift int) (string, error) {
	if err := checkDomain(text); err != nil {
		return "", err
	}

	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		b := text[i]
		switch {
		case !c.alphaOnly:
			out[i] = byte(domainLo + mod(int(b)-domainLo+shift, fullRange))
		case isUpper(b):
			out[i] = byte('A' + mod(int(b)-'A'+shift, letterRange))
		case isLower(b):
			out[i] = byte('a' + mod(int(b)-'a'+shift, letterRange))
		default:
			out[i] = b
		}
	}
	return string(out), nil
}
