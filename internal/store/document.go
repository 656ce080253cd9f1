// Package store handles persistence of the vault document: the on-disk JSON
// representation of secrets and policies, and the session slot that holds
// the materialized root key while the vault is unsealed.
package store

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// VaultDocument is the full in-memory, in-the-clear-structure representation
// of a vault file. Binary fields hold raw bytes; base64 coding only happens
// at the JSON marshal/unmarshal boundary (see rawVaultDocument).
type VaultDocument struct {
	Salt              []byte
	Iterations        int
	VerificationNonce []byte
	VerificationToken []byte
	Secrets           map[string]*Secret
	Policies          []Policy
}

// Secret is one hierarchical path's append-only version history.
type Secret struct {
	Path     string    `json:"path"`
	Versions []Version `json:"versions"`
}

// Version is one encrypted revision of a secret's value, sealed with
// envelope encryption: the value under a per-version DEK, the DEK under the
// vault's root key.
type Version struct {
	VersionNumber  int
	EncryptedDEK   []byte
	DEKNonce       []byte
	EncryptedValue []byte
	ValueNonce     []byte
	CreatedAt      string `json:"created_at"`
}

// Policy is an access-control rule: identity matched by exact equality,
// path_pattern matched by glob, capabilities the non-empty set it grants.
type Policy struct {
	Identity     string   `json:"identity"`
	PathPattern  string   `json:"path_pattern"`
	Capabilities []string `json:"capabilities"`
}

// NewDocument builds an empty vault document with the given KDF parameters
// and verification token, as produced at init time.
func NewDocument(salt []byte, iterations int, verificationNonce, verificationToken []byte) *VaultDocument {
	return &VaultDocument{
		Salt:              salt,
		Iterations:        iterations,
		VerificationNonce: verificationNonce,
		VerificationToken: verificationToken,
		Secrets:           make(map[string]*Secret),
		Policies:          []Policy{},
	}
}

// rawVersion mirrors Version with binary fields as base64 text, matching the
// original implementation's explicit encode/decode-at-the-boundary approach.
type rawVersion struct {
	VersionNumber  int    `json:"version_number"`
	EncryptedDEK   string `json:"encrypted_dek"`
	DEKNonce       string `json:"dek_nonce"`
	EncryptedValue string `json:"encrypted_value"`
	ValueNonce     string `json:"value_nonce"`
	CreatedAt      string `json:"created_at"`
}

type rawSecret struct {
	Path     string       `json:"path"`
	Versions []rawVersion `json:"versions"`
}

type rawVaultDocument struct {
	Salt              string                `json:"salt"`
	Iterations        int                   `json:"iterations"`
	VerificationNonce string                `json:"verification_nonce"`
	VerificationToken string                `json:"verification_token"`
	Secrets           map[string]*rawSecret `json:"secrets"`
	Policies          []Policy              `json:"policies"`
}

func b64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

func unb64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("store: invalid base64 field: %w", err)
	}
	return b, nil
}

// MarshalJSON encodes binary fields as base64 text before serialization.
func (d *VaultDocument) MarshalJSON() ([]byte, error) {
	raw := rawVaultDocument{
		Salt:              b64(d.Salt),
		Iterations:        d.Iterations,
		VerificationNonce: b64(d.VerificationNonce),
		VerificationToken: b64(d.VerificationToken),
		Secrets:           make(map[string]*rawSecret, len(d.Secrets)),
		Policies:          d.Policies,
	}
	if raw.Policies == nil {
		raw.Policies = []Policy{}
	}

	for path, secret := range d.Secrets {
		rs := &rawSecret{Path: secret.Path, Versions: make([]rawVersion, len(secret.Versions))}
		for i, v := range secret.Versions {
			rs.Versions[i] = rawVersion{
				VersionNumber:  v.VersionNumber,
				EncryptedDEK:   b64(v.EncryptedDEK),
				DEKNonce:       b64(v.DEKNonce),
				EncryptedValue: b64(v.EncryptedValue),
				ValueNonce:     b64(v.ValueNonce),
				CreatedAt:      v.CreatedAt,
			}
		}
		raw.Secrets[path] = rs
	}

	return json.MarshalIndent(raw, "", "  ")
}

// UnmarshalJSON decodes base64 binary fields back to raw bytes.
func (d *VaultDocument) UnmarshalJSON(data []byte) error {
	var raw rawVaultDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("store: malformed vault document: %w", err)
	}

	salt, err := unb64(raw.Salt)
	if err != nil {
		return err
	}
	vn, err := unb64(raw.VerificationNonce)
	if err != nil {
		return err
	}
	vt, err := unb64(raw.VerificationToken)
	if err != nil {
		return err
	}

	d.Salt = salt
	d.Iterations = raw.Iterations
	d.VerificationNonce = vn
	d.VerificationToken = vt
	d.Policies = raw.Policies
	if d.Policies == nil {
		d.Policies = []Policy{}
	}
	d.Secrets = make(map[string]*Secret, len(raw.Secrets))

	for path, rs := range raw.Secrets {
		secret := &Secret{Path: rs.Path, Versions: make([]Version, len(rs.Versions))}
		for i, rv := range rs.Versions {
			dek, err := unb64(rv.EncryptedDEK)
			if err != nil {
				return err
			}
			dn, err := unb64(rv.DEKNonce)
			if err != nil {
				return err
			}
			ev, err := unb64(rv.EncryptedValue)
			if err != nil {
				return err
			}
			vnonce, err := unb64(rv.ValueNonce)
			if err != nil {
				return err
			}
			secret.Versions[i] = Version{
				VersionNumber:  rv.VersionNumber,
				EncryptedDEK:   dek,
				DEKNonce:       dn,
				EncryptedValue: ev,
				ValueNonce:     vnonce,
				CreatedAt:      rv.CreatedAt,
			}
		}
		d.Secrets[path] = secret
	}

	return nil
}
