package crypto

import "errors"

var (
	// ErrMalformedCiphertext is returned by Decode when the base64 layer
	// cannot be decoded.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrEmptyKey is returned when Encode or Decode is called without a key.
	ErrEmptyKey = errors.New("empty key")
)
