// Package skillgap resolves learning resources and effort estimates for the
// skills a user is missing.
package skillgap

import (
	"fmt"
	"strings"

	"github.com/jonathan/opportunity-scout/internal/config"
	"github.com/jonathan/opportunity-scout/internal/types"
)

// Difficulty tiers reported on a skill gap.
const (
	TierBeginner     = "beginner"
	TierIntermediate = "intermediate"
	TierAdvanced     = "advanced"
)

// skillClass is the static classification of one skill family.
type skillClass struct {
	tier       string
	learnHours int
	resources  []types.LearningResource
}

// classification maps skill-family keys to curated resources and effort
// estimates. Matching is substring-aware, so "react native" hits "react".
var classification = map[string]skillClass{
	"javascript": {
		tier:       TierIntermediate,
		learnHours: 120,
		resources: []types.LearningResource{
			{Title: "The Modern JavaScript Tutorial", URL: "https://javascript.info", Provider: "javascript.info", Hours: 60},
			{Title: "JavaScript Algorithms and Data Structures", URL: "https://www.freecodecamp.org/learn", Provider: "freeCodeCamp", Hours: 60},
		},
	},
	"react": {
		tier:       TierIntermediate,
		learnHours: 80,
		resources: []types.LearningResource{
			{Title: "React Official Tutorial", URL: "https://react.dev/learn", Provider: "react.dev", Hours: 30},
			{Title: "Full Stack Open", URL: "https://fullstackopen.com", Provider: "University of Helsinki", Hours: 50},
		},
	},
	"python": {
		tier:       TierBeginner,
		learnHours: 100,
		resources: []types.LearningResource{
			{Title: "Automate the Boring Stuff with Python", URL: "https://automatetheboringstuff.com", Provider: "Al Sweigart", Hours: 40},
		},
	},
	"seo": {
		tier:       TierBeginner,
		learnHours: 40,
		resources: []types.LearningResource{
			{Title: "SEO Starter Guide", URL: "https://developers.google.com/search/docs", Provider: "Google", Hours: 10},
		},
	},
	"writing": {
		tier:       TierBeginner,
		learnHours: 60,
		resources: []types.LearningResource{
			{Title: "On Writing Well (book)", Provider: "William Zinsser", Hours: 15},
		},
	},
	"marketing": {
		tier:       TierIntermediate,
		learnHours: 80,
		resources: []types.LearningResource{
			{Title: "Digital Marketing Fundamentals", URL: "https://learndigital.withgoogle.com", Provider: "Google", Hours: 40},
		},
	},
	"design": {
		tier:       TierIntermediate,
		learnHours: 100,
		resources: []types.LearningResource{
			{Title: "Design for Non-Designers", Provider: "community curriculum", Hours: 30},
		},
	},
	"teaching": {
		tier:       TierBeginner,
		learnHours: 30,
		resources: []types.LearningResource{
			{Title: "Instructional Design Basics", Provider: "community curriculum", Hours: 15},
		},
	},
	"machine learning": {
		tier:       TierAdvanced,
		learnHours: 200,
		resources: []types.LearningResource{
			{Title: "Machine Learning Specialization", URL: "https://www.coursera.org", Provider: "Coursera", Hours: 100},
		},
	},
}

// genericLearnHours is assumed for skills missing from the classification.
const genericLearnHours = 50

// Resolver looks up learning resources for missing skills. Resolution never
// fails: unknown skills get a generic search placeholder.
type Resolver struct {
	cfg config.SkillGap
}

// NewResolver creates a Resolver with the configured caps.
func NewResolver(cfg config.SkillGap) *Resolver {
	if cfg.MaxResourcesPerSkill <= 0 {
		cfg.MaxResourcesPerSkill = 2
	}
	if cfg.MaxResourcesPerCandidate <= 0 {
		cfg.MaxResourcesPerCandidate = 6
	}
	return &Resolver{cfg: cfg}
}

// Resolve builds the skill gap for one candidate's missing-skill list.
// Returns nil when nothing is missing.
func (r *Resolver) Resolve(missing []string) *types.SkillGap {
	if len(missing) == 0 {
		return nil
	}

	gap := &types.SkillGap{}
	highestTier := 0
	for _, skill := range missing {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}

		class, ok := classify(skill)
		if !ok {
			class = skillClass{
				tier:       TierIntermediate,
				learnHours: genericLearnHours,
				resources: []types.LearningResource{{
					Title: fmt.Sprintf("Search beginner resources for %s", skill),
					Hours: genericLearnHours,
				}},
			}
		}

		gap.TotalHours += class.learnHours
		if rank := tierRank(class.tier); rank > highestTier {
			highestTier = rank
			gap.DifficultyTier = class.tier
		}

		perSkill := 0
		for _, res := range class.resources {
			if perSkill >= r.cfg.MaxResourcesPerSkill || len(gap.Resources) >= r.cfg.MaxResourcesPerCandidate {
				break
			}
			res.Skill = skill
			gap.Resources = append(gap.Resources, res)
			perSkill++
		}
	}

	if gap.DifficultyTier == "" {
		gap.DifficultyTier = TierIntermediate
	}
	return gap
}

// classify finds the skill family for a free-text skill name.
func classify(skill string) (skillClass, bool) {
	lower := strings.ToLower(skill)
	if class, ok := classification[lower]; ok {
		return class, true
	}
	for family, class := range classification {
		if strings.Contains(lower, family) || strings.Contains(family, lower) {
			return class, true
		}
	}
	return skillClass{}, false
}

func tierRank(tier string) int {
	switch tier {
	case TierBeginner:
		return 1
	case TierIntermediate:
		return 2
	case TierAdvanced:
		return 3
	default:
		return 0
	}
}
