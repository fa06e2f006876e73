// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"unicode/utf16"
)

type xorCodec struct{}

// NewCodec returns the XOR + base64 [Codec].
func NewCodec() Codec {
	return xorCodec{}
}

// Encode implements [Codec].
func (xorCodec) Encode(plaintext, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	return base64.StdEncoding.EncodeToString(xorWithKey([]byte(plaintext), []byte(key))), nil
}

// Decode implements [Codec].
func (xorCodec) Decode(ciphertext, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
	}

	return string(xorWithKey(raw, []byte(key))), nil
}

// Digest implements [Codec]. It runs h = h*31 + c over the UTF-16 code units
// of text with 32-bit wrap-around and prints |h| in lower-case hex, so
// digests match the ones produced by the browser submission form.
func (xorCodec) Digest(text string) string {
	var h int32
	for _, unit := range utf16.Encode([]rune(text)) {
		h = (h << 5) - h + int32(unit)
	}

	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}

	return strconv.FormatInt(abs, 16)
}

func xorWithKey(data, key []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}
	return out
}
