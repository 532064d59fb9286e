package cryptox

import "errors"

var (
	// Input validation errors. These are checked locally and never reach
	// the underlying primitives.
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrInvalidPassword     = errors.New("invalid password")
	ErrInvalidSaltSize     = errors.New("invalid salt size")
	ErrInvalidKeySize      = errors.New("invalid key size")
	ErrInvalidContextSize  = errors.New("invalid context size")
	ErrInvalidSubkeyLength = errors.New("invalid subkey length")
	ErrBundleTooShort      = errors.New("encrypted bundle too short")

	// ErrHashingFailed is returned when the password hash primitive rejects
	// its cost parameters or otherwise fails.
	ErrHashingFailed = errors.New("password hashing failed")

	// Account bootstrap step failures.
	ErrPrimaryKeyDerivationFailed = errors.New("primary key derivation failed")
	ErrVerifierDerivationFailed   = errors.New("verifier derivation failed")
	ErrStretchKeyDerivationFailed = errors.New("stretch key derivation failed")
	ErrEnvelopeEncryptionFailed   = errors.New("envelope encryption failed")

	// ErrRandomGenerationFailed is returned when the entropy source is
	// unavailable. It is fatal for account creation; no weaker source is
	// ever substituted.
	ErrRandomGenerationFailed = errors.New("random generation failed")

	// ErrDecryptionFailed is returned when authentication of a bundle fails:
	// tampered tag, ciphertext or nonce, or a wrong key. It is deliberately
	// not more specific.
	ErrDecryptionFailed = errors.New("decryption failed")
)
