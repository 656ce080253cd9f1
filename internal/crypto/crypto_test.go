package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	password := []byte("correct horse battery staple")
	salt := make([]byte, SaltSize)
	for i := range salt {
		salt[i] = byte(i)
	}

	key1, err := Derive(password, salt, 1000)
	require.NoError(t, err)
	require.Len(t, key1, KeySize)

	key2, err := Derive(password, salt, 1000)
	require.NoError(t, err)
	assert.Equal(t, key1, key2, "same inputs should produce the same key")

	key3, err := Derive(password, salt, 1001)
	require.NoError(t, err)
	assert.NotEqual(t, key1, key3, "different iteration counts should produce different keys")
}

func TestDeriveRejectsNonPositiveIterations(t *testing.T) {
	salt := make([]byte, SaltSize)
	_, err := Derive([]byte("pw"), salt, 0)
	assert.Error(t, err, "expected error for zero iterations")

	_, err = Derive([]byte("pw"), salt, -1)
	assert.Error(t, err, "expected error for negative iterations")
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key, err := RandomBytes(KeySize)
	require.NoError(t, err)

	plaintext := []byte("a secret value")
	nonce, ciphertext, err := Encrypt(key, plaintext)
	require.NoError(t, err)
	require.Len(t, nonce, NonceSize)

	got, err := Decrypt(key, nonce, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestDecryptFailsOnTamperedCiphertext(t *testing.T) {
	key, err := RandomBytes(KeySize)
	require.NoError(t, err)
	nonce, ciphertext, err := Encrypt(key, []byte("hello"))
	require.NoError(t, err)

	tampered := append([]byte(nil), ciphertext...)
	tampered[0] ^= 0xFF

	_, err = Decrypt(key, nonce, tampered)
	assert.Error(t, err, "expected decryption error for tampered ciphertext")
}

func TestDecryptFailsOnWrongKey(t *testing.T) {
	key1, err := RandomBytes(KeySize)
	require.NoError(t, err)
	key2, err := RandomBytes(KeySize)
	require.NoError(t, err)
	nonce, ciphertext, err := Encrypt(key1, []byte("hello"))
	require.NoError(t, err)

	_, err = Decrypt(key2, nonce, ciphertext)
	assert.Error(t, err, "expected decryption error for wrong key")
}

func TestRandomBytesLength(t *testing.T) {
	b, err := RandomBytes(32)
	require.NoError(t, err)
	assert.Len(t, b, 32)
}
