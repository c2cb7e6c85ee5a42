// Package cipher implements classical text ciphers (Caesar, Atbash,
// Affine, Vigenere, Rail Fence, Columnar Transposition), a randomized
// Salt transform, and a Pipeline that composes encoders reversibly. All
// transforms operate over printable ASCII and guarantee that decoding an
// encoded text returns the original.
package cipher

// Encoder is implemented by every transform in this package: the classical
// ciphers, Salt, and Pipeline. Decode(Encode(x)) == x for every x in the
// encoder's input domain.
//
// Implementations are pure functions of their own configuration except for
// Salt, which owns a deterministic random stream that advances with each
// call.
type Encoder interface {
	// Encode transforms plaintext into ciphertext
	Encode(text string) (string, error)
	// Decode reverses Encode
	Decode(text string) (string, error)
}
