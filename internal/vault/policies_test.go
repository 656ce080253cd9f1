package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secretvault/internal/vaulterr"
)

func TestAddPolicyRejectsEmptyCapabilities(t *testing.T) {
	v := unsealedTestVault(t)
	_, err := v.AddPolicy("admin", "**", nil)
	assert.True(t, vaulterr.Is(err, vaulterr.ErrNoCapabilities))
}

func TestAddPolicyRejectsInvalidCapability(t *testing.T) {
	v := unsealedTestVault(t)
	_, err := v.AddPolicy("admin", "**", []string{"fly"})
	assert.True(t, vaulterr.Is(err, vaulterr.ErrInvalidCap))
}

func TestPolicyPersistsAcrossSealUnseal(t *testing.T) {
	v := unsealedTestVault(t)
	_, err := v.AddPolicy("service-a", "app/**", []string{"read"})
	require.NoError(t, err)
	_, err = v.PutSecret("app/db", "v", "service-a")
	require.Error(t, err, "expected denial, service-a lacks write")

	_, err = v.Seal()
	require.NoError(t, err)
	_, err = v.Unseal("correct-horse")
	require.NoError(t, err)

	_, err = v.AddPolicy("admin", "**", []string{"write"})
	require.NoError(t, err)
	_, err = v.PutSecret("app/db", "v", "admin")
	require.NoError(t, err)

	_, err = v.GetSecret("app/db", "service-a", nil)
	assert.NoError(t, err, "expected service-a's read policy to survive seal/unseal")
}

func TestRemovePolicy(t *testing.T) {
	v := unsealedTestVault(t)
	_, err := v.AddPolicy("admin", "**", []string{"read"})
	require.NoError(t, err)

	msg, err := v.RemovePolicy("admin", "**")
	require.NoError(t, err)
	assert.Equal(t, "Policy removed: identity='admin', path='**'", msg)

	_, err = v.RemovePolicy("admin", "**")
	assert.True(t, vaulterr.Is(err, vaulterr.ErrPolicyNotFound), "expected ErrPolicyNotFound on second removal")
}
