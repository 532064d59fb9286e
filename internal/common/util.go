package common

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
)

// MakeRandHexString returns a hex string built from size random bytes,
// so the result is 2*size characters long.
func MakeRandHexString(size int) (string, error) {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// GenerateRandByteArray returns size cryptographically random bytes.
// It panics if the system entropy source fails; callers that need an
// explicit failure path should read crypto/rand directly.
func GenerateRandByteArray(size int) []byte {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return buf
}

// WipeByteArray overwrites b with zeros. subtle.ConstantTimeCopy keeps the
// compiler from eliding the store. Safe on nil and empty slices.
func WipeByteArray(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}
