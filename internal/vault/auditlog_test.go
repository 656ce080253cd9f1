package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secretvault/internal/vaulterr"
)

func TestAuditLogOrdering(t *testing.T) {
	v := unsealedTestVault(t)
	_, err := v.AddPolicy("admin", "**", []string{"write", "read"})
	require.NoError(t, err)
	_, err = v.PutSecret("app/db", "v1", "admin")
	require.NoError(t, err)
	_, err = v.GetSecret("app/db", "nobody", nil)
	require.Error(t, err, "expected denial for nobody")

	lines, err := v.AuditLog(0)
	require.NoError(t, err)

	// init, unseal, add-policy, store, retrieve(denied)
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "| system | init |")
	assert.Contains(t, lines[1], "| system | unseal |")
	assert.Contains(t, lines[2], "| system | add-policy |")
	assert.Contains(t, lines[3], "| admin | store | app/db | success")
	assert.Contains(t, lines[4], "| nobody | retrieve | app/db | denied | requires read")
}

func TestAuditLogMissingFile(t *testing.T) {
	v := newTestVault(t)
	_, err := v.AuditLog(0)
	assert.True(t, vaulterr.Is(err, vaulterr.ErrAuditNotFound))
}
