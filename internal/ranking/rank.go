package ranking

import (
	"math"
	"sort"

	"github.com/jonathan/opportunity-scout/internal/scoring"
	"github.com/jonathan/opportunity-scout/internal/types"
)

// Sort orders enriched opportunities in place for display: category rank
// first, then match score descending when scores differ by more than the
// noise window, then normalized monthly income descending. Treating
// near-equal scores as ties keeps score noise from reordering candidates
// purely on income.
func Sort(opportunities []types.EnrichedOpportunity, noiseWindow float64) {
	sort.SliceStable(opportunities, func(i, j int) bool {
		a, b := &opportunities[i], &opportunities[j]

		ra, rb := displayRank(a.Category), displayRank(b.Category)
		if ra != rb {
			return ra < rb
		}

		if math.Abs(a.MatchScore-b.MatchScore) > noiseWindow {
			return a.MatchScore > b.MatchScore
		}

		return scoring.MonthlyMidpoint(a.Income) > scoring.MonthlyMidpoint(b.Income)
	})
}

// Index builds the category -> opportunity-id lookup for a sorted result set.
// Every category key is present even when empty, so consumers can range over
// a stable shape.
func Index(opportunities []types.EnrichedOpportunity) map[types.Category][]string {
	index := map[types.Category][]string{
		types.CategoryQuickWin:     {},
		types.CategoryGrowth:       {},
		types.CategoryPassive:      {},
		types.CategoryAspirational: {},
	}
	for i := range opportunities {
		opp := &opportunities[i]
		index[opp.Category] = append(index[opp.Category], opp.ID)
	}
	return index
}
