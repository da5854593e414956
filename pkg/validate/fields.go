package validate

import (
	"strings"

	"github.com/unlockegypt/contentsync/pkg/rules"
)

// Atomic field checks. All are pure predicates; the row validators
// decide what a failure means for a particular table.

// NonEmpty reports whether the cell holds any non-blank text.
func NonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// InRange reports whether v lies in [min, max].
func InRange(v, min, max float64) bool {
	return v >= min && v <= max
}

// EnumMember reports whether v belongs to the closed vocabulary.
func EnumMember(v string, allowed map[string]struct{}) bool {
	_, ok := allowed[v]
	return ok
}

// ContainsScript reports whether at least one code point of s falls
// into any of the given inclusive ranges.
func ContainsScript(s string, ranges []rules.ScriptRange) bool {
	for _, r := range s {
		for _, sr := range ranges {
			if r >= sr.Lo && r <= sr.Hi {
				return true
			}
		}
	}
	return false
}

// LooksLikeImageRef reports whether the cell is acceptable as an image
// reference: empty, an http(s) URL, or a file name with a known image
// extension.
func LooksLikeImageRef(s string, extensions []string) bool {
	if s == "" {
		return true
	}
	if IsRemoteURL(s) {
		return true
	}
	lower := strings.ToLower(s)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// IsRemoteURL reports whether the cell points at an external resource.
func IsRemoteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
