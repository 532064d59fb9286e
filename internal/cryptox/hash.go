package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Params configures the Argon2id cost. Memory is in KiB, as the underlying
// primitive expects.
type Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

var (
	// InteractiveParams bounds the hash to foreground-friendly cost:
	// acceptable latency for a login prompt, still memory-hard.
	InteractiveParams = Params{Time: 2, MemoryKiB: 64 * 1024, Threads: 1}

	// ModerateParams is the higher cost class used when producing a stored,
	// server-comparable verifier hash string.
	ModerateParams = Params{Time: 3, MemoryKiB: 256 * 1024, Threads: 1}
)

func (p Params) valid() bool {
	return p.Time >= 1 && p.Threads >= 1 && p.MemoryKiB >= 8*uint32(p.Threads)
}

// SaltFromUserID maps a user id onto the fixed-size hash salt: the id is
// copied left-aligned into a zeroed buffer of SaltSize bytes, so shorter ids
// are right-padded with zeros and longer ids are truncated. Two distinct ids
// that share the first SaltSize bytes therefore collide in salt value; this
// is an accepted property of the scheme, the password still separates them.
func SaltFromUserID(userID []byte) []byte {
	salt := make([]byte, SaltSize)
	copy(salt, userID)
	return salt
}

// HashPassword stretches a password into a 32-byte primary key with Argon2id.
// The salt must be exactly SaltSize bytes (see SaltFromUserID). The call
// blocks for the duration of the memory-hard hash and cannot be interrupted.
func HashPassword(password, salt []byte, p Params) ([]byte, error) {
	if len(password) == 0 {
		return nil, ErrInvalidPassword
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSaltSize, len(salt), SaltSize)
	}
	if !p.valid() {
		return nil, fmt.Errorf("%w: unusable cost parameters %+v", ErrHashingFailed, p)
	}
	return argon2.IDKey(password, salt, p.Time, p.MemoryKiB, p.Threads, PrimaryKeySize), nil
}

// HashForVerifier hashes the primary key itself (not the raw password) into
// a self-describing PHC string, for APIs that need a stored, comparable
// password-hash string rather than a binary proof. A fresh random salt is
// generated per call, so the output is not deterministic.
func HashForVerifier(primaryKey []byte, p Params) (string, error) {
	if len(primaryKey) != PrimaryKeySize {
		return "", fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(primaryKey), PrimaryKeySize)
	}
	if !p.valid() {
		return "", fmt.Errorf("%w: unusable cost parameters %+v", ErrHashingFailed, p)
	}

	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRandomGenerationFailed, err)
	}

	hash := argon2.IDKey(primaryKey, salt, p.Time, p.MemoryKiB, p.Threads, PrimaryKeySize)

	enc := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.MemoryKiB, p.Time, p.Threads,
		enc.EncodeToString(salt), enc.EncodeToString(hash)), nil
}
