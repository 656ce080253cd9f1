package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"secretvault/internal/vaulterr"
)

// NonceSize is the length in bytes of the random nonce used for every
// AES-256-GCM operation.
const NonceSize = 12

// Encrypt seals plaintext under a 32-byte key with AES-256-GCM, using a
// freshly drawn random nonce and empty associated data. The returned
// ciphertext includes the 16-byte authentication tag appended by the
// standard library's GCM implementation.
func Encrypt(key, plaintext []byte) (nonce, ciphertext []byte, err error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, fmt.Errorf("crypto: new AES cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, fmt.Errorf("crypto: new GCM: %w", err)
	}

	nonce, err = RandomBytes(NonceSize)
	if err != nil {
		return nil, nil, err
	}

	ciphertext = gcm.Seal(nil, nonce, plaintext, nil)
	return nonce, ciphertext, nil
}

// Decrypt opens ciphertext sealed by Encrypt using the given key and nonce.
// Returns vaulterr.ErrAuthFailed (wrapped) when the authentication tag does
// not verify - never partial plaintext on failure.
func Decrypt(key, nonce, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("crypto: new AES cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("crypto: new GCM: %w", err)
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid key or tampered data", vaulterr.ErrAuthFailed)
	}
	return plaintext, nil
}
