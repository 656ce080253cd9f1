// Package crypto provides cryptographic primitives for the vault's envelope
// encryption scheme: key derivation, authenticated encryption, and
// secure random byte generation. This is security-critical code - changes
// here directly affect whether stored secrets stay confidential.
package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// RandomBytes generates n cryptographically secure random bytes.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("fatal crypto/rand error: %w", err)
	}

	// Sanity check: bytes should not be all zeros.
	allZero := true
	for _, v := range b {
		if v != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return nil, errors.New("fatal crypto/rand error: produced zero bytes")
	}

	return b, nil
}
