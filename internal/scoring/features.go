package scoring

import (
	"strings"

	"github.com/jonathan/opportunity-scout/internal/types"
)

// FeatureVector holds the per-feature sub-scores, each in [0,1].
type FeatureVector struct {
	SkillMatch float64 `json:"skill_match"`
	TimeFit    float64 `json:"time_fit"`
	RiskFit    float64 `json:"risk_fit"`
	IncomeFit  float64 `json:"income_fit"`
	Quality    float64 `json:"quality"`
	Popularity float64 `json:"popularity"`
}

// neutralScore is used where a feature has nothing to measure.
const neutralScore = 0.5

// skillsOverlap reports whether two skill phrasings refer to the same skill.
// Natural-language phrasing varies ("javascript" vs "javascript development"),
// so either string containing the other counts as a match.
func skillsOverlap(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// computeSkillMatch scores required-skill coverage and splits the candidate's
// skills into matched, missing, and related groups. An opportunity with no
// required skills scores neutral rather than zero or one.
func computeSkillMatch(opp *types.RawOpportunity, userSkills []string) (float64, types.SkillMatch) {
	detail := types.SkillMatch{}

	if len(opp.RequiredSkills) == 0 {
		return neutralScore, detail
	}

	for _, required := range opp.RequiredSkills {
		found := false
		for _, have := range userSkills {
			if skillsOverlap(required, have) {
				found = true
				break
			}
		}
		if found {
			detail.Matched = append(detail.Matched, required)
		} else {
			detail.Missing = append(detail.Missing, required)
		}
	}

	// Related: nice-to-have skills the user already covers.
	for _, nice := range opp.NiceToHaves {
		for _, have := range userSkills {
			if skillsOverlap(nice, have) {
				detail.Related = append(detail.Related, nice)
				break
			}
		}
	}

	return float64(len(detail.Matched)) / float64(len(opp.RequiredSkills)), detail
}

// computeTimeFit compares the candidate's average weekly hours against the
// user's availability through a decreasing step function: at or under
// capacity scores high, far over capacity scores low.
func computeTimeFit(candidateWeekly, userWeekly float64) float64 {
	if userWeekly <= 0 {
		userWeekly = DefaultWeeklyHours
	}
	if candidateWeekly <= 0 {
		return neutralScore
	}

	ratio := candidateWeekly / userWeekly
	switch {
	case ratio <= 0.6:
		return 1.0
	case ratio <= 1.0:
		return 0.85
	case ratio <= 1.25:
		return 0.6
	case ratio <= 1.5:
		return 0.4
	case ratio <= 2.0:
		return 0.2
	default:
		return 0.1
	}
}

// computeRiskFit compares the candidate's entry barrier to the user's risk
// appetite on the low/medium/high ordinal scale. An exact match is best, a
// user with appetite to spare is second best, and a barrier above the user's
// appetite scores lowest.
func computeRiskFit(barrier, appetite types.Level) float64 {
	diff := appetite.Ordinal() - barrier.Ordinal()
	switch {
	case diff == 0:
		return 1.0
	case diff > 0:
		return 0.7
	case diff == -1:
		return 0.3
	default:
		return 0.1
	}
}

// computeIncomeFit compares the candidate's normalized monthly midpoint to
// the user's goal through a step function that rewards meeting or exceeding it.
func computeIncomeFit(monthlyMid, goal float64) float64 {
	if goal <= 0 {
		return neutralScore
	}

	ratio := monthlyMid / goal
	switch {
	case ratio >= 1.5:
		return 1.0
	case ratio >= 1.0:
		return 0.9
	case ratio >= 0.75:
		return 0.7
	case ratio >= 0.5:
		return 0.5
	case ratio >= 0.25:
		return 0.3
	default:
		return 0.15
	}
}

// fullQualityLength is the description length at which the quality proxy saturates.
const fullQualityLength = 600

// computeQuality is a weak tiebreaker derived from description length,
// bounded so verbosity past fullQualityLength earns nothing extra.
func computeQuality(description string) float64 {
	n := len(strings.TrimSpace(description))
	if n >= fullQualityLength {
		return 1.0
	}
	return float64(n) / fullQualityLength
}

// computePopularity maps an externally supplied 0-100 engagement score into
// [0,1], clamping out-of-range values.
func computePopularity(engagement float64) float64 {
	if engagement < 0 {
		return 0
	}
	if engagement > 100 {
		return 1
	}
	return engagement / 100
}
