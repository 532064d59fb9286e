// Package cryptox implements the account key-derivation chain and the
// envelope-encryption construction used by the syncbox client.
//
// A password is stretched into a 32-byte primary key with Argon2id, using a
// salt derived deterministically from the user id. Two independent subkeys
// are then derived from the primary key under separate 8-byte contexts: the
// password verifier ("Password", index 1), which is sent to the server as
// proof of knowledge, and the stretch key ("Stretchy", index 2), which
// protects a randomly generated data key inside an authenticated envelope.
//
// The envelope format is fixed: [16-byte tag][ciphertext][24-byte nonce],
// produced by XSalsa20-Poly1305. Neither the primary key nor the stretch key
// ever leaves the client; the server stores only the verifier and the
// envelope, both opaque. Recovery therefore needs nothing but the password
// and the user id.
//
// All operations are synchronous and stateless. Sensitive intermediates are
// wiped on every exit path, including error paths.
package cryptox
