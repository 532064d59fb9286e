// Package client defines the transport-facing interface of the syncbox
// account API. The crypto and service layers depend only on this interface;
// concrete wire implementations live with the embedding application.
package client

import "context"

// Client is the account API surface the service layer talks to. The server
// stores the password verifier and the protected key envelope opaquely; no
// other key material ever crosses this boundary.
//
// All methods must honor context cancellation and timeouts.
type Client interface {
	// Signup registers a new account: the server associates userID with the
	// password verifier and stores the protected key envelope.
	Signup(ctx context.Context, userID string, verifier []byte, protectedKey []byte) error

	// GetProtectedKey authenticates with the password verifier and returns
	// the stored protected key envelope for recovery.
	GetProtectedKey(ctx context.Context, userID string, verifier []byte) ([]byte, error)

	// Ping checks server liveness.
	Ping(ctx context.Context) error

	// Close releases underlying transport resources.
	Close() error
}
