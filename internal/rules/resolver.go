package rules

import "strings"

// Tier identifies which precedence level produced a resolver match.
type Tier int

// Match tiers, in precedence order
const (
	TierNone Tier = iota
	TierExact
	TierPrefix
	TierSubstring
)

// String returns a human-readable tier name
func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierPrefix:
		return "prefix"
	case TierSubstring:
		return "substring"
	default:
		return "none"
	}
}

// NormalizeName lowercases a display name and strips every character
// outside [a-z0-9], so "Iron Sword" and "ironsword" compare equal.
func NormalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Resolve matches a free-text search against owned item names in three
// ordered tiers: exact, prefix, then substring. Within a tier the first
// name in list order wins; ties are deliberately caller-order dependent.
// Returns the index of the match and the tier that produced it, or
// (-1, TierNone) when no tier hits.
func Resolve(search string, names []string) (int, Tier) {
	needle := NormalizeName(search)
	if needle == "" {
		return -1, TierNone
	}

	normalized := make([]string, len(names))
	for i, name := range names {
		normalized[i] = NormalizeName(name)
	}

	for i, name := range normalized {
		if name == needle {
			return i, TierExact
		}
	}
	for i, name := range normalized {
		if strings.HasPrefix(name, needle) {
			return i, TierPrefix
		}
	}
	for i, name := range normalized {
		if strings.Contains(name, needle) {
			return i, TierSubstring
		}
	}
	return -1, TierNone
}
