package vault

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"secretvault/internal/audit"
	"secretvault/internal/crypto"
	"secretvault/internal/policy"
	"secretvault/internal/store"
	"secretvault/internal/vaulterr"
)

// SecretResult is the decrypted outcome of GetSecret.
type SecretResult struct {
	Path    string
	Version int
	Value   string
}

// PutSecret stores value at path under a fresh version, envelope-encrypting
// it with a new per-version DEK wrapped by the vault's root key. Creating a
// path that does not yet exist starts it at version 1; writing to an
// existing path appends a new, monotonically numbered version - prior
// versions are retained, never overwritten.
func (v *Vault) PutSecret(path, value, identity string) (string, error) {
	rootKey, err := v.ensureUnsealed()
	if err != nil {
		return "", err
	}
	envelope := &crypto.EnvelopeContext{RootKey: rootKey}
	defer envelope.Close()

	if !policy.ValidatePath(path) {
		return "", vaulterr.Newf(vaulterr.ErrInvalidPath, "Invalid path format: '%s'", path)
	}
	if value == "" {
		return "", vaulterr.New(vaulterr.ErrEmptyValue, "Secret value must not be empty")
	}

	doc, err := store.Load(v.vaultFile)
	if err != nil {
		return "", err
	}

	if !policy.Check(doc.Policies, identity, path, "write") {
		_ = audit.Append(v.auditFile, audit.Entry{
			Identity: identity, Operation: "store", Path: path, Outcome: audit.OutcomeDenied,
			Detail: "requires write",
		})
		return "", vaulterr.Newf(vaulterr.ErrAccessDenied,
			"Access denied for identity '%s' on path '%s' (requires write)", identity, path)
	}

	dek, err := crypto.RandomBytes(crypto.KeySize)
	if err != nil {
		return "", err
	}
	envelope.DEK = dek

	valueNonce, encryptedValue, err := crypto.Encrypt(envelope.DEK, []byte(value))
	if err != nil {
		return "", err
	}
	dekNonce, encryptedDEK, err := crypto.Encrypt(envelope.RootKey, envelope.DEK)
	if err != nil {
		return "", err
	}

	version := store.Version{
		EncryptedDEK:   encryptedDEK,
		DEKNonce:       dekNonce,
		EncryptedValue: encryptedValue,
		ValueNonce:     valueNonce,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	existing, found := doc.Secrets[path]
	var versionNumber int
	var created bool
	if found {
		versionNumber = len(existing.Versions) + 1
		version.VersionNumber = versionNumber
		existing.Versions = append(existing.Versions, version)
	} else {
		versionNumber = 1
		version.VersionNumber = versionNumber
		doc.Secrets[path] = &store.Secret{Path: path, Versions: []store.Version{version}}
		created = true
	}

	if err := store.Save(doc, v.vaultFile); err != nil {
		return "", err
	}

	operation := "update"
	if created {
		operation = "store"
	}
	_ = audit.Append(v.auditFile, audit.Entry{
		Identity: identity, Operation: operation, Path: path, Outcome: audit.OutcomeSuccess,
	})

	if created {
		return fmt.Sprintf("Secret stored at %s (version 1)", path), nil
	}
	return fmt.Sprintf("Secret updated at %s (version %d)", path, versionNumber), nil
}

// GetSecret retrieves a secret's value, decrypting its envelope. When
// version is nil, the latest version is returned.
func (v *Vault) GetSecret(path, identity string, version *int) (SecretResult, error) {
	rootKey, err := v.ensureUnsealed()
	if err != nil {
		return SecretResult{}, err
	}
	envelope := &crypto.EnvelopeContext{RootKey: rootKey}
	defer envelope.Close()

	doc, err := store.Load(v.vaultFile)
	if err != nil {
		return SecretResult{}, err
	}

	if !policy.Check(doc.Policies, identity, path, "read") {
		_ = audit.Append(v.auditFile, audit.Entry{
			Identity: identity, Operation: "retrieve", Path: path, Outcome: audit.OutcomeDenied,
			Detail: "requires read",
		})
		return SecretResult{}, vaulterr.Newf(vaulterr.ErrAccessDenied,
			"Access denied for identity '%s' on path '%s' (requires read)", identity, path)
	}

	secret, found := doc.Secrets[path]
	if !found {
		return SecretResult{}, vaulterr.Newf(vaulterr.ErrSecretNotFound, "Secret not found at path '%s'", path)
	}

	var selected *store.Version
	if version == nil {
		selected = &secret.Versions[len(secret.Versions)-1]
	} else {
		for i := range secret.Versions {
			if secret.Versions[i].VersionNumber == *version {
				selected = &secret.Versions[i]
				break
			}
		}
		if selected == nil {
			return SecretResult{}, vaulterr.Newf(vaulterr.ErrVersionNotFound,
				"Version %d not found for path '%s'", *version, path)
		}
	}

	dek, err := crypto.Decrypt(rootKey, selected.DEKNonce, selected.EncryptedDEK)
	if err != nil {
		return SecretResult{}, err
	}
	envelope.DEK = dek

	plaintext, err := crypto.Decrypt(envelope.DEK, selected.ValueNonce, selected.EncryptedValue)
	if err != nil {
		return SecretResult{}, err
	}
	envelope.Plaintext = plaintext

	_ = audit.Append(v.auditFile, audit.Entry{
		Identity: identity, Operation: "retrieve", Path: path, Outcome: audit.OutcomeSuccess,
	})
	return SecretResult{Path: path, Version: selected.VersionNumber, Value: string(envelope.Plaintext)}, nil
}

// DeleteSecret removes a path and all of its versions.
func (v *Vault) DeleteSecret(path, identity string) (string, error) {
	rootKey, err := v.ensureUnsealed()
	if err != nil {
		return "", err
	}
	crypto.SecureZero(rootKey)

	doc, err := store.Load(v.vaultFile)
	if err != nil {
		return "", err
	}

	if !policy.Check(doc.Policies, identity, path, "delete") {
		_ = audit.Append(v.auditFile, audit.Entry{
			Identity: identity, Operation: "delete", Path: path, Outcome: audit.OutcomeDenied,
			Detail: "requires delete",
		})
		return "", vaulterr.Newf(vaulterr.ErrAccessDenied,
			"Access denied for identity '%s' on path '%s' (requires delete)", identity, path)
	}

	if _, found := doc.Secrets[path]; !found {
		return "", vaulterr.Newf(vaulterr.ErrSecretNotFound, "Secret not found at path '%s'", path)
	}
	delete(doc.Secrets, path)

	if err := store.Save(doc, v.vaultFile); err != nil {
		return "", err
	}

	_ = audit.Append(v.auditFile, audit.Entry{
		Identity: identity, Operation: "delete", Path: path, Outcome: audit.OutcomeSuccess,
	})
	return "Secret deleted at " + path, nil
}

// ListSecrets returns every secret path with prefix as a leading substring,
// sorted. An empty prefix matches every path as far as the path-prefix test
// goes, but the access check runs against the empty string itself, so it is
// authorized only by a policy whose pattern matches "": "**" (or a bare "*")
// does, while any pattern with a literal character, such as "app/*", does not.
func (v *Vault) ListSecrets(identity, prefix string) ([]string, error) {
	rootKey, err := v.ensureUnsealed()
	if err != nil {
		return nil, err
	}
	crypto.SecureZero(rootKey)

	doc, err := store.Load(v.vaultFile)
	if err != nil {
		return nil, err
	}

	if !policy.Check(doc.Policies, identity, prefix, "list") {
		_ = audit.Append(v.auditFile, audit.Entry{
			Identity: identity, Operation: "list", Path: prefix, Outcome: audit.OutcomeDenied,
			Detail: "requires list",
		})
		return nil, vaulterr.Newf(vaulterr.ErrAccessDenied,
			"Access denied for identity '%s' on path '%s' (requires list)", identity, prefix)
	}

	matching := make([]string, 0)
	for secretPath := range doc.Secrets {
		if prefix == "" || strings.HasPrefix(secretPath, prefix) {
			matching = append(matching, secretPath)
		}
	}
	sort.Strings(matching)

	_ = audit.Append(v.auditFile, audit.Entry{
		Identity: identity, Operation: "list", Path: prefix, Outcome: audit.OutcomeSuccess,
	})
	return matching, nil
}
