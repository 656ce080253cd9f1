package vault

import (
	"strings"

	"secretvault/internal/audit"
	"secretvault/internal/crypto"
	"secretvault/internal/policy"
	"secretvault/internal/store"
	"secretvault/internal/vaulterr"
)

// AddPolicy grants identity the given capabilities on paths matching
// pathPattern. Requires the vault to be unsealed; capability validation
// happens before the vault is touched, so a bad request never reaches
// persistence.
func (v *Vault) AddPolicy(identity, pathPattern string, capabilities []string) (string, error) {
	rootKey, err := v.ensureUnsealed()
	if err != nil {
		return "", err
	}
	crypto.SecureZero(rootKey)

	if len(capabilities) == 0 {
		return "", vaulterr.New(vaulterr.ErrNoCapabilities, "At least one capability must be specified")
	}
	if invalid, ok := policy.ValidateCapabilities(capabilities); !ok {
		return "", vaulterr.Newf(vaulterr.ErrInvalidCap,
			"Invalid capability '%s'. Valid capabilities: read, write, list, delete", invalid)
	}

	doc, err := store.Load(v.vaultFile)
	if err != nil {
		return "", err
	}

	doc.Policies = append(doc.Policies, store.Policy{
		Identity:     identity,
		PathPattern:  pathPattern,
		Capabilities: capabilities,
	})
	if err := store.Save(doc, v.vaultFile); err != nil {
		return "", err
	}

	_ = audit.Append(v.auditFile, audit.Entry{
		Identity: audit.SystemIdentity, Operation: "add-policy", Outcome: audit.OutcomeSuccess,
		Detail: "identity='" + identity + "', path='" + pathPattern + "'",
	})
	return "Policy added: identity='" + identity + "', path='" + pathPattern +
		"', capabilities=[" + strings.Join(capabilities, ", ") + "]", nil
}

// RemovePolicy removes the first policy matching both identity and
// pathPattern exactly.
func (v *Vault) RemovePolicy(identity, pathPattern string) (string, error) {
	rootKey, err := v.ensureUnsealed()
	if err != nil {
		return "", err
	}
	crypto.SecureZero(rootKey)

	doc, err := store.Load(v.vaultFile)
	if err != nil {
		return "", err
	}

	index := -1
	for i, p := range doc.Policies {
		if p.Identity == identity && p.PathPattern == pathPattern {
			index = i
			break
		}
	}
	if index == -1 {
		return "", vaulterr.Newf(vaulterr.ErrPolicyNotFound,
			"No policy found for identity '%s' on path '%s'", identity, pathPattern)
	}
	doc.Policies = append(doc.Policies[:index], doc.Policies[index+1:]...)

	if err := store.Save(doc, v.vaultFile); err != nil {
		return "", err
	}

	_ = audit.Append(v.auditFile, audit.Entry{
		Identity: audit.SystemIdentity, Operation: "remove-policy", Outcome: audit.OutcomeSuccess,
		Detail: "identity='" + identity + "', path='" + pathPattern + "'",
	})
	return "Policy removed: identity='" + identity + "', path='" + pathPattern + "'", nil
}
