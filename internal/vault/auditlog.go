package vault

import "secretvault/internal/audit"

// AuditLog returns the audit log's entries, or only the last lastN when
// lastN > 0. Reading the audit log requires no unseal: it is a record of
// what happened, not a secret.
func (v *Vault) AuditLog(lastN int) ([]string, error) {
	return audit.ReadLast(v.auditFile, lastN)
}
