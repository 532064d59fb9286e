package cryptox

import "golang.org/x/crypto/nacl/secretbox"

const (
	// PrimaryKeySize is the size of the Argon2id output and of every master
	// key accepted by DeriveSubkey.
	PrimaryKeySize = 32
	// VerifierSize is the size of the password verifier subkey.
	VerifierSize = 32
	// StretchKeySize is the size of the stretch key subkey. Only its first
	// KeySize bytes are used as the envelope encryption key.
	StretchKeySize = 64
	// DataKeySize is the size of the randomly generated data-encryption key.
	DataKeySize = 32
	// SaltSize is the Argon2id salt length. User ids are zero-padded or
	// truncated to this size.
	SaltSize = 16

	// KeySize is the XSalsa20-Poly1305 key size.
	KeySize = 32
	// NonceSize is the XSalsa20-Poly1305 nonce size.
	NonceSize = 24
	// TagSize is the Poly1305 authenticator size.
	TagSize = secretbox.Overhead

	// EnvelopeOverhead is the fixed per-bundle overhead: tag plus nonce.
	EnvelopeOverhead = TagSize + NonceSize
	// ProtectedDataKeySize is the size of the encrypted data-key envelope.
	ProtectedDataKeySize = DataKeySize + EnvelopeOverhead

	// ContextSize is the exact length of a subkey derivation context.
	ContextSize = 8
)
