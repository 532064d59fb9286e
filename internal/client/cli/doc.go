// Package cli implements the interactive syncbox key-management tool.
//
// The tool runs the account crypto locally and never talks to a server
// itself: it produces the opaque values (password verifier, protected key
// envelope) the embedding application submits over its own transport, and
// recovers the data key from a stored envelope given the password.
//
// Commands
//
//	create-account  derive a full account key bundle from user id + password
//	recover         open a protected key envelope with the password
//	verifier        recompute the password verifier from a stored recovery key
//	help, exit
package cli
