// Package audit implements the vault's append-only audit trail: one
// pipe-separated line per operation attempt, success or denial. Lines are
// plain text with no signature or checksum, so later edits to the file are
// not detected.
package audit

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"secretvault/internal/vaulterr"
)

// Outcome values recorded on every audit entry.
const (
	OutcomeSuccess = "success"
	OutcomeDenied  = "denied"
	OutcomeError   = "error"
)

// Identity used for lifecycle events that have no caller-supplied identity
// (init, unseal, seal, add-policy, remove-policy).
const SystemIdentity = "system"

// pathDash is the placeholder written when an operation has no target path.
const pathDash = "-"

// Entry is one audit record. Path and Detail are optional: an empty Path is
// rendered as "-"; an empty Detail omits the trailing field entirely.
type Entry struct {
	Identity  string
	Operation string
	Path      string
	Outcome   string
	Detail    string
}

// Append formats entry as
//
//	<rfc3339-utc> | <identity> | <operation> | <path-or-dash> | <outcome> [ | <detail> ]
//
// and appends it as one line to the audit file at path, creating the file if
// it does not yet exist. The timestamp is generated at call time in UTC.
func Append(path string, entry Entry) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("audit: open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(format(entry) + "\n"); err != nil {
		return fmt.Errorf("audit: write log entry: %w", err)
	}
	return nil
}

func format(e Entry) string {
	p := e.Path
	if p == "" {
		p = pathDash
	}

	line := fmt.Sprintf("%s | %s | %s | %s | %s",
		time.Now().UTC().Format(time.RFC3339),
		e.Identity, e.Operation, p, e.Outcome)
	if e.Detail != "" {
		line += " | " + e.Detail
	}
	return line
}

// ReadLast returns the audit log's lines, or only its last n if n > 0.
// Returns a vaulterr.ErrAuditNotFound-wrapping error, distinct from other I/O
// failures, when the file does not exist.
func ReadLast(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, vaulterr.Newf(vaulterr.ErrAuditNotFound, "Audit log file not found at %s", path)
		}
		return nil, fmt.Errorf("audit: open log file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("audit: read log file: %w", err)
	}

	if n > 0 && n < len(lines) {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}
