package cryptox

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
)

var (
	initOnce sync.Once
	initErr  error
)

// Initialize performs the process-wide crypto preflight: it probes the
// system entropy source once and records the outcome. It is idempotent and
// safe for concurrent use; every later call returns the recorded result.
// The host application should call it at startup so that an unusable
// entropy source fails loudly rather than on the first account operation.
// All package entry points that consume randomness call it themselves.
func Initialize() error {
	initOnce.Do(func() {
		var probe [16]byte
		if _, err := io.ReadFull(rand.Reader, probe[:]); err != nil {
			initErr = fmt.Errorf("%w: %v", ErrRandomGenerationFailed, err)
		}
	})
	return initErr
}
