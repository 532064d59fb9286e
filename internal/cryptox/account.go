package cryptox

import (
	"crypto/rand"
	"fmt"

	"github.com/syncbox/syncbox/internal/common"
)

// Subkey derivation slots. The contexts are exactly ContextSize bytes and
// are part of the wire contract: changing either breaks every stored
// verifier and envelope.
const (
	verifierSubkeyIndex = 1
	verifierContext     = "Password"

	stretchSubkeyIndex = 2
	stretchContext     = "Stretchy"
)

// AccountKeys is the account-bootstrap bundle produced by CreateAccountKeys.
//
// The caller persists PrimaryKey (the recovery secret) and DataKey (the
// ongoing payload-encryption key) securely, sends PasswordVerifier and
// ProtectedDataKey to the server, and discards everything else. The package
// holds no copy of any field after returning.
type AccountKeys struct {
	PrimaryKey       []byte // 32 bytes, deterministic from (userID, password)
	DataKey          []byte // 32 bytes, random per account
	PasswordVerifier []byte // 32 bytes, deterministic from PrimaryKey
	ProtectedDataKey []byte // 72 bytes, DataKey sealed under the stretch key
}

// Wipe zeroes all key material held by k.
func (k *AccountKeys) Wipe() {
	if k == nil {
		return
	}
	common.WipeByteArray(k.PrimaryKey)
	common.WipeByteArray(k.DataKey)
	common.WipeByteArray(k.PasswordVerifier)
	common.WipeByteArray(k.ProtectedDataKey)
}

// CreateAccountKeys turns (userID, password) into a complete account
// bundle: primary key, password verifier, random data key and the protected
// envelope of that data key.
//
// The envelope is sealed under the password-derived stretch key, never the
// random data key, so a client holding only the password can recover the
// data key later (see RecoverDataKey) and a compromised server learns
// nothing from the stored blob. Repeated calls with the same credentials
// reproduce PrimaryKey and PasswordVerifier but yield a fresh DataKey and
// envelope each time.
func CreateAccountKeys(userID, password []byte) (*AccountKeys, error) {
	if err := Initialize(); err != nil {
		return nil, err
	}
	if len(userID) == 0 {
		return nil, ErrInvalidUserID
	}
	if len(password) == 0 {
		return nil, ErrInvalidPassword
	}

	primaryKey, err := HashPassword(password, SaltFromUserID(userID), InteractiveParams)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrimaryKeyDerivationFailed, err)
	}

	verifier, err := DeriveSubkey(primaryKey, verifierSubkeyIndex, verifierContext, VerifierSize)
	if err != nil {
		common.WipeByteArray(primaryKey)
		return nil, fmt.Errorf("%w: %v", ErrVerifierDerivationFailed, err)
	}

	stretchKey, err := DeriveSubkey(primaryKey, stretchSubkeyIndex, stretchContext, StretchKeySize)
	if err != nil {
		common.WipeByteArray(primaryKey)
		common.WipeByteArray(verifier)
		return nil, fmt.Errorf("%w: %v", ErrStretchKeyDerivationFailed, err)
	}
	defer common.WipeByteArray(stretchKey)

	dataKey := make([]byte, DataKeySize)
	if _, err := rand.Read(dataKey); err != nil {
		common.WipeByteArray(primaryKey)
		common.WipeByteArray(verifier)
		return nil, fmt.Errorf("%w: %v", ErrRandomGenerationFailed, err)
	}

	protected, err := Encrypt(dataKey, stretchKey[:KeySize])
	if err != nil {
		common.WipeByteArray(primaryKey)
		common.WipeByteArray(verifier)
		common.WipeByteArray(dataKey)
		return nil, fmt.Errorf("%w: %v", ErrEnvelopeEncryptionFailed, err)
	}

	return &AccountKeys{
		PrimaryKey:       primaryKey,
		DataKey:          dataKey,
		PasswordVerifier: verifier,
		ProtectedDataKey: protected,
	}, nil
}

// DerivePasswordVerifier recomputes the password verifier from a stored
// primary key, for later logins that must not re-run the full password
// stretch. The result matches the verifier produced at account creation.
func DerivePasswordVerifier(primaryKey []byte) ([]byte, error) {
	verifier, err := DeriveSubkey(primaryKey, verifierSubkeyIndex, verifierContext, VerifierSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVerifierDerivationFailed, err)
	}
	return verifier, nil
}

// RecoverDataKey is the recovery path: given the original user id, the
// re-entered password and the server-held envelope, it re-derives the
// stretch key and opens the envelope. ErrDecryptionFailed here means a
// wrong password or a tampered envelope; callers must surface it distinctly
// from transport failures.
func RecoverDataKey(userID, password, protected []byte) ([]byte, error) {
	if err := Initialize(); err != nil {
		return nil, err
	}
	if len(userID) == 0 {
		return nil, ErrInvalidUserID
	}
	if len(password) == 0 {
		return nil, ErrInvalidPassword
	}

	primaryKey, err := HashPassword(password, SaltFromUserID(userID), InteractiveParams)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrimaryKeyDerivationFailed, err)
	}
	defer common.WipeByteArray(primaryKey)

	return OpenProtectedDataKey(primaryKey, protected)
}

// OpenProtectedDataKey opens an envelope using an already-derived primary
// key, for callers that have run the password stretch once and need both
// the verifier and the data key (a login does exactly this). The stretch
// key exists only for the duration of the call.
func OpenProtectedDataKey(primaryKey, protected []byte) ([]byte, error) {
	if len(protected) < EnvelopeOverhead {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrBundleTooShort, len(protected), EnvelopeOverhead)
	}

	stretchKey, err := DeriveSubkey(primaryKey, stretchSubkeyIndex, stretchContext, StretchKeySize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStretchKeyDerivationFailed, err)
	}
	defer common.WipeByteArray(stretchKey)

	return Decrypt(protected, stretchKey[:KeySize])
}
