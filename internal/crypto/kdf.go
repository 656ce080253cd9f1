package crypto

import (
	"bytes"
	"crypto/sha256"
	"errors"

	"golang.org/x/crypto/pbkdf2"
)

// MinIterations is the hard minimum PBKDF2 iteration count enforced by
// callers that derive a vault's root key. The primitive itself (Derive)
// accepts any positive value; this constant exists for the orchestrator's
// init path.
const MinIterations = 600_000

// SaltSize is the length in bytes of a freshly generated root-key salt.
const SaltSize = 16

// KeySize is the length in bytes of a derived root key or generated DEK.
const KeySize = 32

// Derive derives a 32-byte key from password and salt using PBKDF2-HMAC-SHA256.
//
// CRITICAL: iterations MUST NOT change across the lifetime of a vault file:
// any other count re-derives a different key and existing ciphertext becomes
// unreadable. Callers
// enforce iterations >= MinIterations; Derive itself only rejects
// non-positive values.
func Derive(password, salt []byte, iterations int) ([]byte, error) {
	if iterations <= 0 {
		return nil, errors.New("crypto: iterations must be positive")
	}

	key := pbkdf2.Key(password, salt, iterations, KeySize, sha256.New)

	// Sanity check: key should not be all zeros.
	if bytes.Equal(key, make([]byte, KeySize)) {
		return nil, errors.New("fatal crypto/pbkdf2 error: produced zero key")
	}

	return key, nil
}
