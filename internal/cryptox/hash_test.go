package cryptox

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// Tiny cost keeps unit tests fast; production callers use InteractiveParams.
var testParams = Params{Time: 1, MemoryKiB: 64, Threads: 1}

func TestSaltFromUserID(t *testing.T) {
	tests := []struct {
		name   string
		userID []byte
		want   []byte
	}{
		{
			name:   "short id is right-padded with zeros",
			userID: []byte("abc"),
			want:   append([]byte("abc"), make([]byte, SaltSize-3)...),
		},
		{
			name:   "exact-size id is unchanged",
			userID: []byte("0123456789abcdef"),
			want:   []byte("0123456789abcdef"),
		},
		{
			name:   "long id is truncated",
			userID: []byte("0123456789abcdefEXTRA"),
			want:   []byte("0123456789abcdef"),
		},
		{
			name:   "empty id yields all-zero salt",
			userID: nil,
			want:   make([]byte, SaltSize),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SaltFromUserID(tt.userID)
			if len(got) != SaltSize {
				t.Fatalf("salt length = %d, want %d", len(got), SaltSize)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("salt = %x, want %x", got, tt.want)
			}
		})
	}
}

func TestSaltFromUserID_SharedPrefixCollision(t *testing.T) {
	// Ids sharing the first SaltSize bytes collide in salt value; this is a
	// documented property of the scheme, not an accident.
	a := SaltFromUserID([]byte("0123456789abcdef-one"))
	b := SaltFromUserID([]byte("0123456789abcdef-two"))
	if !bytes.Equal(a, b) {
		t.Errorf("expected colliding salts for shared prefix, got %x vs %x", a, b)
	}
}

func TestHashPassword_Deterministic(t *testing.T) {
	salt := SaltFromUserID([]byte("user-1234"))

	k1, err := HashPassword([]byte("correct horse"), salt, testParams)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	k2, err := HashPassword([]byte("correct horse"), salt, testParams)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if len(k1) != PrimaryKeySize {
		t.Fatalf("key length = %d, want %d", len(k1), PrimaryKeySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Error("same inputs produced different primary keys")
	}
}

func TestHashPassword_DifferentInputs(t *testing.T) {
	salt := SaltFromUserID([]byte("user-1234"))

	k1, err := HashPassword([]byte("correct horse"), salt, testParams)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	k2, err := HashPassword([]byte("wrong horse"), salt, testParams)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	k3, err := HashPassword([]byte("correct horse"), SaltFromUserID([]byte("user-5678")), testParams)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if bytes.Equal(k1, k2) {
		t.Error("different passwords produced the same primary key")
	}
	if bytes.Equal(k1, k3) {
		t.Error("different salts produced the same primary key")
	}
}

func TestHashPassword_InvalidInput(t *testing.T) {
	salt := make([]byte, SaltSize)

	tests := []struct {
		name     string
		password []byte
		salt     []byte
		params   Params
		wantErr  error
	}{
		{"empty password", nil, salt, testParams, ErrInvalidPassword},
		{"short salt", []byte("pw"), make([]byte, SaltSize-1), testParams, ErrInvalidSaltSize},
		{"long salt", []byte("pw"), make([]byte, SaltSize+1), testParams, ErrInvalidSaltSize},
		{"zero time cost", []byte("pw"), salt, Params{Time: 0, MemoryKiB: 64, Threads: 1}, ErrHashingFailed},
		{"zero threads", []byte("pw"), salt, Params{Time: 1, MemoryKiB: 64, Threads: 0}, ErrHashingFailed},
		{"memory below floor", []byte("pw"), salt, Params{Time: 1, MemoryKiB: 4, Threads: 1}, ErrHashingFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := HashPassword(tt.password, tt.salt, tt.params)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if key != nil {
				t.Error("expected no key material on error")
			}
		})
	}
}

func TestHashForVerifier(t *testing.T) {
	primaryKey := bytes.Repeat([]byte{0x42}, PrimaryKeySize)

	s, err := HashForVerifier(primaryKey, testParams)
	if err != nil {
		t.Fatalf("HashForVerifier() error = %v", err)
	}

	if !strings.HasPrefix(s, "$argon2id$v=19$m=64,t=1,p=1$") {
		t.Errorf("unexpected PHC prefix: %q", s)
	}
	if got := strings.Count(s, "$"); got != 5 {
		t.Errorf("PHC field count: got %d separators, want 5", got)
	}

	// A fresh salt is drawn per call, so repeated hashes must differ.
	s2, err := HashForVerifier(primaryKey, testParams)
	if err != nil {
		t.Fatalf("HashForVerifier() error = %v", err)
	}
	if s == s2 {
		t.Error("two verifier hashes are identical; salt not refreshed")
	}
}

func TestHashForVerifier_InvalidInput(t *testing.T) {
	if _, err := HashForVerifier(make([]byte, PrimaryKeySize-1), testParams); !errors.Is(err, ErrInvalidKeySize) {
		t.Errorf("error = %v, want ErrInvalidKeySize", err)
	}
	if _, err := HashForVerifier(make([]byte, PrimaryKeySize), Params{}); !errors.Is(err, ErrHashingFailed) {
		t.Errorf("error = %v, want ErrHashingFailed", err)
	}
}
