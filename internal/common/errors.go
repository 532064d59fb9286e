// Package common defines shared sentinel errors and small byte-slice
// utilities used across syncbox client layers. Callers should use
// errors.Is to match the sentinel values.
package common

import "errors"

var (
	// Generic flow-control errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
)
