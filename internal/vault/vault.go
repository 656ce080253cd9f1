// Package vault implements the orchestrator: the transactional coordinator
// that combines crypto, persistence, policy evaluation, and audit emission
// into the vault's public operations, upholding the ordering and atomicity
// invariants of the lifecycle state machine.
package vault

import (
	"github.com/google/uuid"

	"secretvault/internal/log"
)

// Vault coordinates initialization, the seal/unseal lifecycle, secret CRUD,
// policy management, and audit logging for one vault file. It holds no
// cryptographic key material between calls: the root key is re-read from
// the session file on every operation that needs it and zeroed before the
// call returns.
type Vault struct {
	vaultFile   string
	auditFile   string
	sessionFile string
	instanceID  string
	logger      log.Logger
}

// Option configures a Vault at construction time.
type Option func(*Vault)

// WithLogger overrides the logger used for internal diagnostics (distinct
// from the audit log). Without it, New uses log.GetLogger(), which is a null
// logger unless log.SetLogger was called first.
func WithLogger(l log.Logger) Option {
	return func(v *Vault) {
		v.logger = l
	}
}

// New creates a Vault bound to vaultFile and auditFile. The session file
// path is derived from vaultFile by appending ".session", matching the
// original implementation's convention.
func New(vaultFile, auditFile string, opts ...Option) *Vault {
	v := &Vault{
		vaultFile:   vaultFile,
		auditFile:   auditFile,
		sessionFile: vaultFile + ".session",
		instanceID:  uuid.NewString(),
		logger:      log.GetLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// InstanceID returns this Vault instance's correlation id, used only for
// internal diagnostic log fields - it never appears in the audit log, whose
// wire format is a fixed contract.
func (v *Vault) InstanceID() string {
	return v.instanceID
}

func (v *Vault) log() log.Logger {
	return v.logger.WithFields(log.String("instance", v.instanceID))
}
