// Package stories supplies short social-proof narratives attached to ranked
// opportunities.
package stories

import (
	"strings"

	"github.com/jonathan/opportunity-scout/internal/types"
)

// maxPerOpportunity caps how many narratives one candidate carries.
const maxPerOpportunity = 2

// Pool hands out success stories by opportunity type. External stories can be
// loaded on top of the built-in fallbacks.
type Pool struct {
	byType map[types.OpportunityType][]string
}

// NewPool creates a Pool seeded with the built-in narratives.
func NewPool() *Pool {
	return &Pool{byType: defaultStories()}
}

// Add registers an external narrative for one opportunity type. It is
// prepended so curated external content outranks the built-ins.
func (p *Pool) Add(t types.OpportunityType, story string) {
	story = strings.TrimSpace(story)
	if story == "" {
		return
	}
	p.byType[t] = append([]string{story}, p.byType[t]...)
}

// For returns up to maxPerOpportunity stories for an opportunity type.
// Unknown types fall back to the freelance narratives.
func (p *Pool) For(t types.OpportunityType) []string {
	stories, ok := p.byType[t]
	if !ok || len(stories) == 0 {
		stories = p.byType[types.TypeFreelance]
	}
	if len(stories) > maxPerOpportunity {
		stories = stories[:maxPerOpportunity]
	}
	out := make([]string, len(stories))
	copy(out, stories)
	return out
}

func defaultStories() map[types.OpportunityType][]string {
	return map[types.OpportunityType][]string{
		types.TypeFreelance: {
			"A part-time developer replaced their salary within a year by taking two retainer clients at 15 hours a week.",
			"A copywriter landed their first paying client in nine days by pitching agencies directly.",
		},
		types.TypeDigitalProduct: {
			"A designer's icon pack sold 400 copies in its first quarter with no paid marketing.",
			"A solo developer's Notion template line crossed $2,000/month after eight months of weekly releases.",
		},
		types.TypePassiveIncome: {
			"A hobbyist's niche review site reached $1,500/month in affiliate revenue after 14 months of weekend writing.",
			"A photographer's stock portfolio now pays out monthly with no new uploads in a year.",
		},
		types.TypeService: {
			"A local organizer booked out three months ahead within a season of launching on neighborhood boards.",
		},
		types.TypeContent: {
			"A newsletter writer converted 3% of free readers to a paid tier after one year of weekly issues.",
		},
		types.TypeInfoProduct: {
			"A self-taught analyst's first cohort course earned more in a launch week than a month of freelancing.",
		},
	}
}
