package cli

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"github.com/syncbox/syncbox/internal/common"
	"github.com/syncbox/syncbox/internal/cryptox"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// CreateAccount prompts for a user id (generating a UUID when left blank)
// and a password, derives the account key bundle, and prints it: the
// recovery and data keys for the user to store, the verifier and protected
// envelope for the application to submit to the server. The password and
// all key material are wiped before returning.
func (a *App) CreateAccount(ctx context.Context) error {
	userID, err := getSimpleText(a.reader, "Enter user id (leave blank to generate)", a.out)
	if err != nil {
		return err
	}
	if userID == "" {
		userID = uuid.NewString()
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.log.Debug(ctx, "creating account keys", "user_id", userID)

	keys, err := cryptox.CreateAccountKeys([]byte(userID), password)
	if err != nil {
		return err
	}
	defer keys.Wipe()

	enc := base64.StdEncoding
	fmt.Fprintf(a.out, "User id:                      %s\n", userID)
	fmt.Fprintf(a.out, "Recovery key (keep secret):   %s\n", hex.EncodeToString(keys.PrimaryKey))
	fmt.Fprintf(a.out, "Data key (keep secret):       %s\n", hex.EncodeToString(keys.DataKey))
	fmt.Fprintf(a.out, "Password verifier (server):   %s\n", enc.EncodeToString(keys.PasswordVerifier))
	fmt.Fprintf(a.out, "Protected key (server):       %s\n", enc.EncodeToString(keys.ProtectedDataKey))
	return nil
}

// RecoverKey prompts for the user id, the password and the base64 protected
// envelope, and prints the recovered data key. A decryption failure means a
// wrong password or a tampered envelope and is reported as such.
func (a *App) RecoverKey(ctx context.Context) error {
	userID, err := getSimpleText(a.reader, "Enter user id", a.out)
	if err != nil {
		return err
	}

	encoded, err := getSimpleText(a.reader, "Enter protected key (base64)", a.out)
	if err != nil {
		return err
	}
	protected, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("protected key is not valid base64: %w", err)
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	dataKey, err := cryptox.RecoverDataKey([]byte(userID), password, protected)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(dataKey)

	fmt.Fprintf(a.out, "Data key: %s\n", hex.EncodeToString(dataKey))
	return nil
}

// Verifier recomputes the password verifier from a stored recovery key, for
// logins that must not re-run the full password stretch.
func (a *App) Verifier(ctx context.Context) error {
	encoded, err := getSimpleText(a.reader, "Enter recovery key (hex)", a.out)
	if err != nil {
		return err
	}
	primaryKey, err := hex.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("recovery key is not valid hex: %w", err)
	}
	defer common.WipeByteArray(primaryKey)

	verifier, err := cryptox.DerivePasswordVerifier(primaryKey)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Password verifier: %s\n", base64.StdEncoding.EncodeToString(verifier))
	return nil
}
