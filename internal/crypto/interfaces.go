// Package crypto holds the keyed text obfuscation used to seal keeper
// submissions until they are revealed.
//
// The transform is reversible and deliberately weak: it keeps submissions
// from being read at a glance in the shared store, nothing more. The mass
// reveal depends on recovering every team password with a fixed system key,
// so replacing the codec with authenticated encryption also means replacing
// that key recovery.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// Codec encodes and decodes text under a password and computes the integrity
// digest used to detect a wrong password.
type Codec interface {
	// Encode XORs plaintext with the cyclically repeated key and returns the
	// result as standard base64. Returns ErrEmptyKey for an empty key.
	Encode(plaintext, key string) (string, error)

	// Decode reverses Encode. A ciphertext that is not valid base64 yields
	// ErrMalformedCiphertext. A wrong key is not detected here, only by
	// comparing digests.
	Decode(ciphertext, key string) (string, error)

	// Digest returns a short order-sensitive checksum of text. It is a
	// correctness gate, not a security primitive.
	Digest(text string) string
}
