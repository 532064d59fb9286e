// Package services contains application services for the syncbox client.
// This file defines the account service: account bootstrap against the
// server and password-only recovery of the data key.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/syncbox/syncbox/internal/client/client"
	"github.com/syncbox/syncbox/internal/common"
	"github.com/syncbox/syncbox/internal/cryptox"
	"github.com/syncbox/syncbox/internal/logging"
)

// Account is what a successful bootstrap leaves on the client: the user id,
// the recovery key (primary key, to be persisted securely by the caller)
// and the data key for ongoing payload encryption. The verifier and the
// protected envelope have already been handed to the server.
type Account struct {
	UserID      string
	RecoveryKey []byte
	DataKey     []byte
}

// Wipe zeroes the account's key material.
func (a *Account) Wipe() {
	if a == nil {
		return
	}
	common.WipeByteArray(a.RecoveryKey)
	common.WipeByteArray(a.DataKey)
}

// AccountService defines account operations for the client.
//
// Contract:
//   - CreateAccount: derive the key bundle locally and sign up on the server.
//   - RecoverKey: fetch the envelope from the server and open it with the password.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
//
// All methods must honor context cancellation/timeouts. The password slice
// is never retained; callers wipe it when done.
type AccountService interface {
	CreateAccount(ctx context.Context, userID string, password []byte) (*Account, error)
	RecoverKey(ctx context.Context, userID string, password []byte) ([]byte, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type accountService struct {
	client client.Client
	log    logging.Logger
}

// NewAccountService constructs an AccountService bound to the given API
// client. The logger never receives key material.
func NewAccountService(c client.Client, log logging.Logger) AccountService {
	return &accountService{client: c, log: log}
}

// CreateAccount builds the account key bundle locally and registers the
// verifier and protected envelope with the server. When userID is empty a
// fresh UUID is generated, so user ids carry no personal information.
// Nothing is persisted on failure; on success only the returned Account
// holds secrets, and the caller owns them.
func (s *accountService) CreateAccount(ctx context.Context, userID string, password []byte) (*Account, error) {
	if userID == "" {
		userID = uuid.NewString()
	}

	keys, err := cryptox.CreateAccountKeys([]byte(userID), password)
	if err != nil {
		return nil, fmt.Errorf("account key bundle: %w", err)
	}

	if err := s.client.Signup(ctx, userID, keys.PasswordVerifier, keys.ProtectedDataKey); err != nil {
		keys.Wipe()
		return nil, fmt.Errorf("signup: %w", err)
	}

	s.log.Info(ctx, "account created", "user_id", userID)

	account := &Account{
		UserID:      userID,
		RecoveryKey: keys.PrimaryKey,
		DataKey:     keys.DataKey,
	}
	common.WipeByteArray(keys.PasswordVerifier)
	return account, nil
}

// RecoverKey re-derives the primary key from the password, authenticates
// with the verifier, fetches the stored envelope and opens it. A transport
// failure surfaces as a wrapped client error; cryptox.ErrDecryptionFailed
// specifically means a wrong password or a tampered envelope.
func (s *accountService) RecoverKey(ctx context.Context, userID string, password []byte) ([]byte, error) {
	if userID == "" {
		return nil, cryptox.ErrInvalidUserID
	}
	if len(password) == 0 {
		return nil, cryptox.ErrInvalidPassword
	}

	primaryKey, err := cryptox.HashPassword(password, cryptox.SaltFromUserID([]byte(userID)), cryptox.InteractiveParams)
	if err != nil {
		return nil, fmt.Errorf("primary key: %w", err)
	}
	defer common.WipeByteArray(primaryKey)

	verifier, err := cryptox.DerivePasswordVerifier(primaryKey)
	if err != nil {
		return nil, fmt.Errorf("verifier: %w", err)
	}
	defer common.WipeByteArray(verifier)

	protected, err := s.client.GetProtectedKey(ctx, userID, verifier)
	if err != nil {
		return nil, fmt.Errorf("fetch protected key: %w", err)
	}

	dataKey, err := cryptox.OpenProtectedDataKey(primaryKey, protected)
	if err != nil {
		if errors.Is(err, cryptox.ErrDecryptionFailed) {
			s.log.Warn(ctx, "envelope rejected", "user_id", userID)
		}
		return nil, err
	}

	s.log.Info(ctx, "data key recovered", "user_id", userID)
	return dataKey, nil
}

// Ping proxies a liveness check to the underlying client.
func (s *accountService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (s *accountService) Close(ctx context.Context) error {
	return s.client.Close()
}
