package cryptox

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"

	"github.com/syncbox/syncbox/internal/common"
)

// Encrypt seals plaintext under a 32-byte key with XSalsa20-Poly1305 and a
// fresh random nonce; the nonce is never caller-supplied, which removes
// nonce-reuse mistakes at call sites. The returned bundle layout is fixed:
//
//	[TagSize tag][ciphertext][NonceSize nonce]
//
// so its length is always len(plaintext) + EnvelopeOverhead.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	var nonce [NonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomGenerationFailed, err)
	}

	var k [KeySize]byte
	copy(k[:], key)
	defer common.WipeByteArray(k[:])

	bundle := make([]byte, 0, len(plaintext)+EnvelopeOverhead)
	bundle = secretbox.Seal(bundle, plaintext, &nonce, &k)
	return append(bundle, nonce[:]...), nil
}

// Decrypt splits the nonce off the tail of a bundle produced by Encrypt,
// verifies the authenticator and returns the plaintext. Any corruption of
// tag, ciphertext or nonce, or a wrong key, yields ErrDecryptionFailed with
// no partial plaintext; the error carries no further detail.
func Decrypt(bundle, key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}
	if len(bundle) < EnvelopeOverhead {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrBundleTooShort, len(bundle), EnvelopeOverhead)
	}

	var nonce [NonceSize]byte
	copy(nonce[:], bundle[len(bundle)-NonceSize:])

	var k [KeySize]byte
	copy(k[:], key)
	defer common.WipeByteArray(k[:])

	plaintext, ok := secretbox.Open(nil, bundle[:len(bundle)-NonceSize], &nonce, &k)
	if !ok {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}
