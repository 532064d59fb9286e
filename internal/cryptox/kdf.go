package cryptox

import (
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveSubkey expands a 32-byte master key into an independent subkey of
// the requested length using HKDF-SHA-512. The 8-byte context string plus
// the subkey index form the info input, so two calls with different
// (index, context) pairs on the same master key yield computationally
// independent outputs. The derivation is pure: same inputs, same subkey.
func DeriveSubkey(masterKey []byte, index uint64, context string, length int) ([]byte, error) {
	if len(masterKey) != PrimaryKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(masterKey), PrimaryKeySize)
	}
	if len(context) != ContextSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidContextSize, len(context), ContextSize)
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSubkeyLength, length)
	}

	info := make([]byte, 0, ContextSize+8)
	info = append(info, context...)
	info = binary.LittleEndian.AppendUint64(info, index)

	subkey := make([]byte, length)
	if _, err := io.ReadFull(hkdf.New(sha512.New, masterKey, nil, info), subkey); err != nil {
		return nil, fmt.Errorf("subkey derivation: %w", err)
	}
	return subkey, nil
}
