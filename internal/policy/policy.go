// Package policy implements path validation, glob matching, and the
// default-deny capability evaluator that mediates every vault operation.
package policy

import (
	"regexp"
	"strings"

	"secretvault/internal/store"
)

// ValidCapabilities is the fixed, exhaustive set of capabilities a policy may
// grant.
var ValidCapabilities = []string{"read", "write", "list", "delete"}

var pathPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+(/[A-Za-z0-9_-]+)*$`)

// ValidatePath reports whether path is one or more segments drawn from
// [A-Za-z0-9_-], joined by single forward slashes. Empty strings, leading or
// trailing slashes, consecutive slashes, or any other character are invalid.
func ValidatePath(path string) bool {
	if path == "" {
		return false
	}
	return pathPattern.MatchString(path)
}

// ValidateCapabilities returns the first capability in caps that is not in
// ValidCapabilities, preserving caller order so the error message can name
// the precise offender. ok is true iff every capability was valid.
func ValidateCapabilities(caps []string) (invalid string, ok bool) {
	for _, c := range caps {
		valid := false
		for _, v := range ValidCapabilities {
			if c == v {
				valid = true
				break
			}
		}
		if !valid {
			return c, false
		}
	}
	return "", true
}

// Match reports whether path matches the glob pattern. Within pattern, "**"
// matches any sequence of characters including zero or more slashes, and "*"
// matches any sequence of characters within a single path segment (it never
// spans a slash). All other characters match literally. The match is
// anchored at both ends.
//
// Algorithm: split pattern at every "**"; within each piece, split at "*"
// and join the regexp.QuoteMeta-escaped literal fragments with a
// single-segment wildcard ("[^/]*"); join the "**"-delimited pieces with a
// multi-segment wildcard (".*"); require the whole string to match.
func Match(pattern, path string) bool {
	if pattern == "**" {
		return true
	}

	pieces := strings.Split(pattern, "**")
	regexPieces := make([]string, len(pieces))
	for i, piece := range pieces {
		segments := strings.Split(piece, "*")
		escaped := make([]string, len(segments))
		for j, seg := range segments {
			escaped[j] = regexp.QuoteMeta(seg)
		}
		regexPieces[i] = strings.Join(escaped, "[^/]*")
	}

	full := "^" + strings.Join(regexPieces, ".*") + "$"
	matched, err := regexp.MatchString(full, path)
	if err != nil {
		// full is built entirely from QuoteMeta output and our own fixed
		// wildcard fragments, so it is always a valid regexp.
		return false
	}
	return matched
}

// Check reports whether at least one policy in policies grants capability to
// identity on path. Evaluation is default-deny: it scans policies in
// insertion order and returns true on the first grant; there is no explicit
// deny rule.
func Check(policies []store.Policy, identity, path, capability string) bool {
	for _, p := range policies {
		if p.Identity != identity {
			continue
		}
		if !hasCapability(p.Capabilities, capability) {
			continue
		}
		if Match(p.PathPattern, path) {
			return true
		}
	}
	return false
}

func hasCapability(caps []string, capability string) bool {
	for _, c := range caps {
		if c == capability {
			return true
		}
	}
	return false
}
