package providers

import (
	"context"
	"strings"
	"time"

	"github.com/jonathan/opportunity-scout/internal/cache"
	"github.com/jonathan/opportunity-scout/internal/types"
)

// skillToken is the placeholder substituted with the user's skill when a
// template is instantiated.
const skillToken = "{skill}"

// template is one curated opportunity shape. Instantiation substitutes the
// matching user skill into the text fields.
type template struct {
	title       string
	description string
	oppType     types.OpportunityType
	required    []string
	niceToHave  []string
	income      types.IncomeRange
	cost        types.CostRange
	timeReq     types.TimeCommitment
	location    types.LocationMode
	barrier     types.Level
	competition types.Level
	steps       []string
}

// instantiate fills the template for one skill and source.
func (t template) instantiate(source, skill string) types.RawOpportunity {
	fill := func(s string) string { return strings.ReplaceAll(s, skillToken, skill) }
	fillAll := func(in []string) []string {
		out := make([]string, len(in))
		for i, s := range in {
			out[i] = fill(s)
		}
		return out
	}

	opp := types.RawOpportunity{
		Title:          fill(t.title),
		Description:    fill(t.description),
		Source:         source,
		Type:           t.oppType,
		RequiredSkills: fillAll(t.required),
		NiceToHaves:    fillAll(t.niceToHave),
		Income:         t.income,
		StartupCost:    t.cost,
		TimeRequired:   t.timeReq,
		Location:       t.location,
		EntryBarrier:   t.barrier,
		Competition:    t.competition,
		StepsToStart:   fillAll(t.steps),
	}
	opp.Normalize()
	return opp
}

// CatalogAdapter models a marketplace through curated per-skill-family
// opportunity templates. It is the static-table stand-in for the upstream
// content-generation step, which is outside the engine.
type CatalogAdapter struct {
	source   string
	families map[string][]template
	generic  []template
	memo     *cache.Memo[[]types.RawOpportunity]
}

// NewCatalogAdapter builds a catalog-backed provider. memoTTL bounds how
// long a skill set's expansion is reused.
func NewCatalogAdapter(source string, families map[string][]template, generic []template, memoTTL time.Duration) *CatalogAdapter {
	if memoTTL <= 0 {
		memoTTL = time.Hour
	}
	return &CatalogAdapter{
		source:   source,
		families: families,
		generic:  generic,
		memo:     cache.NewMemo[[]types.RawOpportunity](memoTTL),
	}
}

// Source implements Provider.
func (a *CatalogAdapter) Source() string { return a.source }

// Fetch expands the catalog for each user skill. Skills that match a curated
// family get that family's templates; the rest get the generic ones.
func (a *CatalogAdapter) Fetch(_ context.Context, input *types.DiscoveryInput) []types.RawOpportunity {
	key := cache.SkillKey(input.Skills)
	if hit, ok := a.memo.Get(key); ok {
		return copyOpportunities(hit)
	}

	var out []types.RawOpportunity
	for _, skill := range input.Skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		templates, curated := a.templatesFor(skill)
		for _, t := range templates {
			opp := t.instantiate(a.source, skill)
			if !curated {
				// No curated path exists for this skill, so entry is harder
				// than the generic template claims.
				opp.EntryBarrier = EscalateBarrier(opp.EntryBarrier)
			}
			out = append(out, opp)
		}
	}

	a.memo.Set(key, copyOpportunities(out))
	return out
}

// templatesFor resolves the template set for one skill via substring-aware
// family matching. curated is false when it fell back to the generic set.
func (a *CatalogAdapter) templatesFor(skill string) (templates []template, curated bool) {
	lower := strings.ToLower(skill)
	for family, templates := range a.families {
		if strings.Contains(lower, family) || strings.Contains(family, lower) {
			return templates, true
		}
	}
	return a.generic, false
}

// copyOpportunities protects the memoized slice from caller mutation; the
// adapter must not share state with the engine beyond returned values.
func copyOpportunities(in []types.RawOpportunity) []types.RawOpportunity {
	out := make([]types.RawOpportunity, len(in))
	copy(out, in)
	return out
}
