package vault

import (
	"secretvault/internal/audit"
	"secretvault/internal/crypto"
	"secretvault/internal/log"
	"secretvault/internal/store"
	"secretvault/internal/vaulterr"
)

// verificationPlaintext is encrypted under the root key at init time and
// decrypted on unseal to confirm the supplied password is correct, without
// ever storing the password itself.
const verificationPlaintext = "vault-verification-token"

// ensureUnsealed loads the root key from the session file. Callers own the
// returned slice and must zero it - directly via crypto.SecureZero for a
// quick unsealed-check, or via crypto.KeyMaterial/crypto.EnvelopeContext when
// the key is carried across several statements in the same operation.
func (v *Vault) ensureUnsealed() ([]byte, error) {
	rootKey, err := store.LoadSession(v.sessionFile)
	if err != nil {
		return nil, err
	}
	if rootKey == nil {
		return nil, vaulterr.New(vaulterr.ErrSealed, "Vault is sealed")
	}
	return rootKey, nil
}

// Init creates a new vault file protected by password, leaving it sealed.
func (v *Vault) Init(password string) (string, error) {
	if password == "" {
		return "", vaulterr.New(vaulterr.ErrEmptyPassword, "Master password must not be empty")
	}
	if store.Exists(v.vaultFile) {
		return "", vaulterr.Newf(vaulterr.ErrAlreadyExists, "Vault file already exists at %s", v.vaultFile)
	}

	salt, err := crypto.RandomBytes(crypto.SaltSize)
	if err != nil {
		return "", err
	}

	derived, err := crypto.Derive([]byte(password), salt, crypto.MinIterations)
	if err != nil {
		return "", err
	}
	km := crypto.NewKeyMaterial(derived)
	crypto.SecureZero(derived)
	defer km.Close()

	vNonce, vToken, err := crypto.Encrypt(km.Bytes(), []byte(verificationPlaintext))
	if err != nil {
		return "", err
	}

	doc := store.NewDocument(salt, crypto.MinIterations, vNonce, vToken)
	if err := store.Save(doc, v.vaultFile); err != nil {
		return "", err
	}

	// A freshly initialized vault is always sealed, even if a stale session
	// file from a previous vault at this path happens to be lying around.
	if err := store.DeleteSession(v.sessionFile); err != nil {
		return "", err
	}

	v.log().Info("vault initialized", log.String("vault_file", v.vaultFile))
	_ = audit.Append(v.auditFile, audit.Entry{
		Identity: audit.SystemIdentity, Operation: "init", Outcome: audit.OutcomeSuccess,
	})
	return "Vault initialized at " + v.vaultFile, nil
}

// Unseal derives the root key from password and, if it matches the vault's
// verification token, materializes it into the session file.
func (v *Vault) Unseal(password string) (string, error) {
	if !store.Exists(v.vaultFile) {
		return "", vaulterr.Newf(vaulterr.ErrVaultNotFound, "Vault file not found at %s", v.vaultFile)
	}

	doc, err := store.Load(v.vaultFile)
	if err != nil {
		return "", err
	}

	derived, err := crypto.Derive([]byte(password), doc.Salt, doc.Iterations)
	if err != nil {
		return "", err
	}
	km := crypto.NewKeyMaterial(derived)
	crypto.SecureZero(derived)
	defer km.Close()

	if _, err := crypto.Decrypt(km.Bytes(), doc.VerificationNonce, doc.VerificationToken); err != nil {
		_ = audit.Append(v.auditFile, audit.Entry{
			Identity: audit.SystemIdentity, Operation: "unseal", Outcome: audit.OutcomeError,
			Detail: "Incorrect master password",
		})
		return "", vaulterr.New(vaulterr.ErrIncorrectPassword, "Incorrect master password")
	}

	if err := store.SaveSession(v.sessionFile, km.Bytes()); err != nil {
		return "", err
	}

	v.log().Info("vault unsealed")
	_ = audit.Append(v.auditFile, audit.Entry{
		Identity: audit.SystemIdentity, Operation: "unseal", Outcome: audit.OutcomeSuccess,
	})
	return "Vault unsealed successfully.", nil
}

// Seal discards the materialized root key, returning the vault to its
// sealed state.
func (v *Vault) Seal() (string, error) {
	rootKey, err := store.LoadSession(v.sessionFile)
	if err != nil {
		return "", err
	}
	if rootKey == nil {
		return "", vaulterr.New(vaulterr.ErrAlreadySealed, "Vault is already sealed")
	}
	crypto.SecureZero(rootKey)

	if err := store.DeleteSession(v.sessionFile); err != nil {
		return "", err
	}

	v.log().Info("vault sealed")
	_ = audit.Append(v.auditFile, audit.Entry{
		Identity: audit.SystemIdentity, Operation: "seal", Outcome: audit.OutcomeSuccess,
	})
	return "Vault sealed.", nil
}

// Status reports "sealed" or "unsealed" based on the session file's
// presence.
func (v *Vault) Status() (string, error) {
	if !store.Exists(v.vaultFile) {
		return "", vaulterr.Newf(vaulterr.ErrVaultNotFound, "Vault file not found at %s", v.vaultFile)
	}

	rootKey, err := store.LoadSession(v.sessionFile)
	if err != nil {
		return "", err
	}
	if rootKey != nil {
		crypto.SecureZero(rootKey)
		return "unsealed", nil
	}
	return "sealed", nil
}
