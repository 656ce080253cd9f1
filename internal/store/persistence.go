package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"secretvault/internal/vaulterr"
)

// Exists reports whether a vault file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Save serializes doc and writes it atomically to path: a temp file is
// written in the same directory, fsynced, then renamed over the target. On
// any error the temp file is removed. A reader of path therefore only ever
// observes the previously committed document or the fully written new one,
// never a truncated file.
func Save(doc *VaultDocument, path string) error {
	dir := filepath.Dir(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, ".vault-*.tmp")
	if err != nil {
		return fmt.Errorf("store: create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := writeAndCommit(tmp, tmpPath, doc, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

func writeAndCommit(tmp *os.File, tmpPath string, doc *VaultDocument, path string) error {
	data, err := json.Marshal(doc)
	if err != nil {
		_ = tmp.Close()
		return fmt.Errorf("store: marshal vault document: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("store: write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("store: fsync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("store: rename temp file into place: %w", err)
	}
	return nil
}

// Load reads and deserializes the vault document at path. Returns a
// vaulterr.ErrVaultNotFound-wrapping error, distinct from a malformed-content
// error, when the file is absent.
func Load(path string) (*VaultDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, vaulterr.Newf(vaulterr.ErrVaultNotFound, "Vault file not found at %s", path)
		}
		return nil, fmt.Errorf("store: read vault file: %w", err)
	}

	var doc VaultDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
