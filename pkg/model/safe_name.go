package model

import (
	"fmt"
	"strings"
)

// uniqueSafeName derives a generator-compatible identifier from displayName
// and registers it in used, appending a numeric suffix if needed to keep it
// unique across the model. The mapping is deterministic and idempotent:
// calling SafeName on an already-safe, already-unique name returns it
// unchanged.
func uniqueSafeName(displayName string, used map[string]bool) string {
	base := SafeName(displayName)
	candidate := base
	suffix := 2
	for used[candidate] {
		candidate = fmt.Sprintf("%s_%d", base, suffix)
		suffix++
	}
	used[candidate] = true
	return candidate
}

// SafeName maps a display name to a generator-safe token: runs of characters
// outside [A-Za-z0-9_] become a single underscore, leading digits and
// underscores are trimmed, and an empty result falls back to "param". It does
// not guarantee uniqueness across a model; callers needing that guarantee use
// uniqueSafeName (via BuildModel) instead.
func SafeName(displayName string) string {
	var b strings.Builder
	prevUnderscore := false
	for _, r := range displayName {
		if isSafeRune(r) {
			b.WriteRune(r)
			prevUnderscore = false
			continue
		}
		if !prevUnderscore {
			b.WriteByte('_')
			prevUnderscore = true
		}
	}

	s := strings.TrimLeft(b.String(), "_0123456789")
	if s == "" {
		return "param"
	}
	return s
}

func isSafeRune(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	default:
		return false
	}
}
