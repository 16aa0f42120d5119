// Package cache provides the per-query Result Cache and the small TTL memo
// maps used by provider adapters.
package cache

import (
	"sort"
	"strings"

	"github.com/jonathan/opportunity-scout/internal/types"
)

// Key builds the canonical cache key for a discovery input: sorted lowercased
// skills plus the time, risk, and work-preference bands. Two inputs that
// normalize to the same key are interchangeable for caching purposes.
func Key(input *types.DiscoveryInput) string {
	skills := make([]string, 0, len(input.Skills))
	for _, s := range input.Skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			skills = append(skills, s)
		}
	}
	sort.Strings(skills)

	parts := []string{
		strings.Join(skills, ","),
		strings.ToLower(strings.TrimSpace(input.TimeAvailability)),
		strings.ToLower(string(input.RiskAppetite)),
		strings.ToLower(input.WorkPreference),
	}
	return strings.Join(parts, "|")
}

// SkillKey builds the adapter-level memo key: just the sorted lowercased
// skill list. Adapters are insensitive to the rest of the profile.
func SkillKey(skills []string) string {
	sorted := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			sorted = append(sorted, s)
		}
	}
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}
