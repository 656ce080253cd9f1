package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secretvault/internal/vault"
)

// run executes the root command with args against a fresh flag parse and
// returns cobra's reported error (nil on success). It exercises the real
// command tree exactly as main() does, short of the process exit call.
func run(t *testing.T, args ...string) error {
	t.Helper()
	// Flag values and their "set" state live on the shared command tree;
	// reset them so nothing carries over from an earlier call.
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.Flags().VisitAll(reset)
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestCLIInitUnsealPutGet(t *testing.T) {
	dir := t.TempDir()
	vaultFile := filepath.Join(dir, "vault.enc")
	auditFile := filepath.Join(dir, "audit.log")

	require.NoError(t, run(t, "init", "--vault-file", vaultFile, "--audit-file", auditFile, "--password", "correct-horse"))
	_, err := os.Stat(vaultFile)
	require.NoError(t, err, "expected vault file to exist")

	require.NoError(t, run(t, "unseal", "--vault-file", vaultFile, "--audit-file", auditFile, "--password", "correct-horse"))

	require.NoError(t, run(t, "add-policy",
		"--vault-file", vaultFile, "--audit-file", auditFile,
		"--identity", "admin", "--path-pattern", "**", "--capabilities", "read, write"))

	require.NoError(t, run(t, "put", "app/db", "hunter2",
		"--vault-file", vaultFile, "--audit-file", auditFile, "--identity", "admin"))

	require.NoError(t, run(t, "get", "app/db",
		"--vault-file", vaultFile, "--audit-file", auditFile, "--identity", "admin"))

	v := vault.New(vaultFile, auditFile)
	status, err := v.Status()
	require.NoError(t, err)
	assert.Equal(t, "unsealed", status)
}

func TestCLIUnsealWrongPassword(t *testing.T) {
	dir := t.TempDir()
	vaultFile := filepath.Join(dir, "vault.enc")
	auditFile := filepath.Join(dir, "audit.log")

	require.NoError(t, run(t, "init", "--vault-file", vaultFile, "--audit-file", auditFile, "--password", "correct-horse"))

	err := run(t, "unseal", "--vault-file", vaultFile, "--audit-file", auditFile, "--password", "wrong")
	assert.Error(t, err, "expected unseal with wrong password to fail")
}

func TestCLIGetRequiresIdentity(t *testing.T) {
	dir := t.TempDir()
	vaultFile := filepath.Join(dir, "vault.enc")
	auditFile := filepath.Join(dir, "audit.log")

	require.NoError(t, run(t, "init", "--vault-file", vaultFile, "--audit-file", auditFile, "--password", "pw"))

	err := run(t, "get", "app/db", "--vault-file", vaultFile, "--audit-file", auditFile)
	assert.Error(t, err, "expected get without --identity to fail")
}

func TestCLIStatusMissingVault(t *testing.T) {
	dir := t.TempDir()
	vaultFile := filepath.Join(dir, "vault.enc")

	err := run(t, "status", "--vault-file", vaultFile)
	assert.Error(t, err, "expected status on a missing vault to fail")
}
