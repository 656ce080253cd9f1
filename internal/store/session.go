package store

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
)

// sessionFileMode restricts the session slot (holding the hex-encoded root
// key) to owner read/write only.
const sessionFileMode = 0o600

// SaveSession writes the hex-encoded root key to the session file. The
// session's mere presence signals the unsealed state; its content is never
// consulted by anything outside LoadSession.
func SaveSession(path string, rootKey []byte) error {
	if err := os.WriteFile(path, []byte(hex.EncodeToString(rootKey)), sessionFileMode); err != nil {
		return fmt.Errorf("store: write session file: %w", err)
	}
	return nil
}

// LoadSession reads the root key from the session file. Returns (nil, nil)
// when the session file does not exist - that absence is the canonical
// signal of sealed state, not an error condition.
func LoadSession(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: read session file: %w", err)
	}

	key, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("store: malformed session file: %w", err)
	}
	return key, nil
}

// DeleteSession removes the session file if present. Idempotent: deleting an
// already-absent session is not an error.
func DeleteSession(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("store: delete session file: %w", err)
	}
	return nil
}
