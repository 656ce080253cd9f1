package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecureZero(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	SecureZero(b)
	assert.Equal(t, []byte{0, 0, 0, 0}, b)
}

func TestKeyMaterialClose(t *testing.T) {
	km := NewKeyMaterial([]byte{1, 2, 3})
	require.Equal(t, 3, km.Len())

	km.Close()
	assert.True(t, km.IsClosed(), "expected IsClosed() == true after Close()")
	assert.Nil(t, km.Bytes(), "expected Bytes() == nil after Close()")
	assert.Equal(t, 0, km.Len())

	km.Close() // Close must be idempotent.
}

func TestKeyMaterialCopiesInput(t *testing.T) {
	original := []byte{1, 2, 3}
	km := NewKeyMaterial(original)
	original[0] = 0xFF
	assert.Equal(t, byte(1), km.Bytes()[0], "KeyMaterial must own a copy, not alias the caller's slice")
}

func TestEnvelopeContextClose(t *testing.T) {
	cc := &EnvelopeContext{
		RootKey:   []byte{1, 2, 3},
		DEK:       []byte{4, 5, 6},
		Plaintext: []byte{7, 8, 9},
	}
	cc.Close()
	assert.Nil(t, cc.RootKey)
	assert.Nil(t, cc.DEK)
	assert.Nil(t, cc.Plaintext)

	cc.Close() // idempotent
}

func TestEnvelopeContextClosePartiallyPopulated(t *testing.T) {
	cc := &EnvelopeContext{RootKey: []byte{1, 2, 3}}
	cc.Close()
	assert.Nil(t, cc.RootKey)
	assert.Nil(t, cc.DEK)
	assert.Nil(t, cc.Plaintext)
}
