// Package ranking assigns scored opportunities to strategic categories and produces the final ordering.
package ranking

import (
	"github.com/jonathan/opportunity-scout/internal/config"
	"github.com/jonathan/opportunity-scout/internal/scoring"
	"github.com/jonathan/opportunity-scout/internal/types"
)

// aspirationalCeilingFactor marks a candidate as aspirational when its income
// ceiling exceeds this multiple of the user's goal.
const aspirationalCeilingFactor = 2.0

// Categorizer assigns each candidate to exactly one of the four buckets.
type Categorizer struct {
	cfg config.Scoring
}

// NewCategorizer creates a Categorizer with the configured thresholds.
func NewCategorizer(cfg config.Scoring) *Categorizer {
	return &Categorizer{cfg: cfg}
}

// Assign picks the candidate's category. Checks run in priority order and the
// first match wins, so an easy high-scoring digital product is a quick win,
// not a passive stream.
func (c *Categorizer) Assign(opp *types.EnrichedOpportunity, input *types.DiscoveryInput) types.Category {
	if opp.MatchScore > c.cfg.QuickWinThreshold && opp.EntryBarrier == types.LevelLow {
		return types.CategoryQuickWin
	}

	if opp.Type == types.TypePassiveIncome || opp.Type == types.TypeDigitalProduct {
		return types.CategoryPassive
	}

	_, ceiling := scoring.MonthlyIncome(opp.Income)
	if ceiling > aspirationalCeilingFactor*input.IncomeGoal &&
		(opp.EntryBarrier == types.LevelHigh || opp.MatchScore < c.cfg.ModerateThreshold) {
		return types.CategoryAspirational
	}

	return types.CategoryGrowth
}

// displayRank orders categories for presentation. This is independent of the
// assignment priority above: quick wins first, aspirational paths last.
func displayRank(cat types.Category) int {
	switch cat {
	case types.CategoryQuickWin:
		return 0
	case types.CategoryGrowth:
		return 1
	case types.CategoryPassive:
		return 2
	case types.CategoryAspirational:
		return 3
	default:
		return 4
	}
}
