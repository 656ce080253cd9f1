package audit

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secretvault/internal/vaulterr"
)

func TestAppendAndReadLast(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "audit.log")

	entries := []Entry{
		{Identity: SystemIdentity, Operation: "init", Outcome: OutcomeSuccess},
		{Identity: "admin", Operation: "store", Path: "app/db", Outcome: OutcomeSuccess},
		{Identity: "svc", Operation: "retrieve", Path: "app/db", Outcome: OutcomeDenied, Detail: "requires read"},
	}
	for _, e := range entries {
		require.NoError(t, Append(path, e))
	}

	lines, err := ReadLast(path, 0)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "| system | init | - | success")
	assert.Contains(t, lines[1], "| admin | store | app/db | success")
	assert.Contains(t, lines[2], "| svc | retrieve | app/db | denied | requires read")

	last1, err := ReadLast(path, 1)
	require.NoError(t, err)
	require.Len(t, last1, 1)
	assert.Equal(t, lines[2], last1[0])
}

func TestReadLastMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadLast(filepath.Join(dir, "missing.log"), 0)
	require.Error(t, err)
	assert.True(t, vaulterr.Is(err, vaulterr.ErrAuditNotFound))
}
