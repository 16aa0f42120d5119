package scoring

import (
	"log"
	"math"
	"strings"

	"github.com/jonathan/opportunity-scout/internal/config"
	"github.com/jonathan/opportunity-scout/internal/types"
)

// minStartupCost floors a zero startup cost before the ROI division.
const minStartupCost = 100.0

// hourlyOpportunityCost values a user's invested hour when computing ROI.
const hourlyOpportunityCost = 15.0

// Result is the outcome of scoring one candidate.
type Result struct {
	Score      float64          // 0-100 composite, after the ROI pass
	Features   FeatureVector    // Per-feature sub-scores in [0,1]
	SkillMatch types.SkillMatch // Matched/missing/related skill groups
	Fallback   bool             // True when the Jaccard fallback produced the score
}

// Scorer computes match scores with a configured weight set.
type Scorer struct {
	cfg config.Scoring
}

// NewScorer creates a Scorer from scoring configuration.
func NewScorer(cfg config.Scoring) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score computes the composite match score for one candidate against the
// user profile. engagement is the externally supplied 0-100 popularity
// signal for this opportunity. If the primary weighted model panics, the
// panic is recovered and the Jaccard skill-only fallback scores the
// candidate instead, so one degenerate record never aborts a batch.
func (s *Scorer) Score(opp *types.RawOpportunity, input *types.DiscoveryInput, engagement float64) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[scoring] primary model panic for %q: %v, using fallback", opp.Title, r)
			score, detail := fallbackScore(opp, input.Skills)
			res = Result{Score: score, SkillMatch: detail, Fallback: true}
		}
	}()

	skillScore, detail := computeSkillMatch(opp, input.Skills)
	features := FeatureVector{
		SkillMatch: skillScore,
		TimeFit:    computeTimeFit(opp.AverageWeeklyHours(), ParseWeeklyHours(input.TimeAvailability)),
		RiskFit:    computeRiskFit(opp.EntryBarrier, input.RiskAppetite),
		IncomeFit:  computeIncomeFit(MonthlyMidpoint(opp.Income), input.IncomeGoal),
		Quality:    computeQuality(opp.Description),
		Popularity: computePopularity(engagement),
	}

	base := s.combine(features) * 100
	adjusted := s.applyROI(base, opp)

	return Result{
		Score:      clampScore(adjusted),
		Features:   features,
		SkillMatch: detail,
	}
}

// combine produces the weighted sum of the feature vector with weights
// normalized to sum to 1.
func (s *Scorer) combine(f FeatureVector) float64 {
	total := s.cfg.SkillWeight + s.cfg.TimeWeight + s.cfg.RiskWeight +
		s.cfg.IncomeWeight + s.cfg.QualityWeight + s.cfg.PopularityWeight
	if total <= 0 {
		panic("scoring weights sum to zero")
	}

	sum := s.cfg.SkillWeight*f.SkillMatch +
		s.cfg.TimeWeight*f.TimeFit +
		s.cfg.RiskWeight*f.RiskFit +
		s.cfg.IncomeWeight*f.IncomeFit +
		s.cfg.QualityWeight*f.Quality +
		s.cfg.PopularityWeight*f.Popularity
	return sum / total
}

// applyROI blends a simplified return-on-investment figure into the base
// score at the configured minority weight. ROI is the monthly income
// midpoint over the sum of startup cost (floored above zero) and a month of
// invested hours, squashed into [0,1] so extreme ratios stay bounded.
func (s *Scorer) applyROI(base float64, opp *types.RawOpportunity) float64 {
	monthly := MonthlyMidpoint(opp.Income)

	cost := (opp.StartupCost.Min + opp.StartupCost.Max) / 2
	if cost < minStartupCost {
		cost = minStartupCost
	}
	investment := cost + opp.AverageWeeklyHours()*weeksPerMonth*hourlyOpportunityCost

	roi := monthly / investment
	roiNorm := roi / (roi + 1)
	if math.IsNaN(roiNorm) || math.IsInf(roiNorm, 0) {
		roiNorm = 0
	}

	blend := s.cfg.ROIBlend
	return (1-blend)*base + blend*roiNorm*100
}

// fallbackScore is the skill-only Jaccard model: exact lowercase token
// intersection over union between required skills and user skills. It has no
// panic surface and is only reached when the primary model fails.
func fallbackScore(opp *types.RawOpportunity, userSkills []string) (float64, types.SkillMatch) {
	detail := types.SkillMatch{}
	if len(opp.RequiredSkills) == 0 {
		return neutralScore * 100, detail
	}

	required := make(map[string]bool, len(opp.RequiredSkills))
	for _, skill := range opp.RequiredSkills {
		required[strings.ToLower(strings.TrimSpace(skill))] = true
	}
	have := make(map[string]bool, len(userSkills))
	for _, skill := range userSkills {
		have[strings.ToLower(strings.TrimSpace(skill))] = true
	}

	intersection := 0
	for skill := range required {
		if have[skill] {
			intersection++
			detail.Matched = append(detail.Matched, skill)
		} else {
			detail.Missing = append(detail.Missing, skill)
		}
	}
	union := len(required) + len(have) - intersection
	if union == 0 {
		return 0, detail
	}

	return clampScore(float64(intersection) / float64(union) * 100), detail
}

// EstimateTimeToFirstRevenue estimates days until first income from the
// entry barrier, startup cost band, and opportunity type.
func EstimateTimeToFirstRevenue(opp *types.RawOpportunity) int {
	days := 45
	switch opp.EntryBarrier {
	case types.LevelLow:
		days = 14
	case types.LevelHigh:
		days = 90
	}

	if opp.StartupCost.Max > 1000 {
		days += 30
	}
	if opp.Type == types.TypePassiveIncome {
		days += 30
	}

	return days
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
