package scoring

import (
	"testing"

	"github.com/jonathan/opportunity-scout/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestSkillsOverlap(t *testing.T) {
	assert.True(t, skillsOverlap("javascript", "JavaScript"))
	assert.True(t, skillsOverlap("javascript", "javascript development"))
	assert.True(t, skillsOverlap("technical writing", "writing"))
	assert.False(t, skillsOverlap("python", "javascript"))
	assert.False(t, skillsOverlap("", "javascript"))
}

func TestComputeSkillMatch_PartialMatch(t *testing.T) {
	opp := &types.RawOpportunity{
		RequiredSkills: []string{"javascript", "react"},
		NiceToHaves:    []string{"writing"},
	}

	score, detail := computeSkillMatch(opp, []string{"JavaScript", "writing"})

	assert.InDelta(t, 0.5, score, 0.001)
	assert.Equal(t, []string{"javascript"}, detail.Matched)
	assert.Equal(t, []string{"react"}, detail.Missing)
	assert.Equal(t, []string{"writing"}, detail.Related)
}

func TestComputeSkillMatch_NoRequiredSkillsIsNeutral(t *testing.T) {
	score, detail := computeSkillMatch(&types.RawOpportunity{}, []string{"writing"})

	assert.Equal(t, neutralScore, score)
	assert.Empty(t, detail.Matched)
	assert.Empty(t, detail.Missing)
}

func TestComputeTimeFit_Decreasing(t *testing.T) {
	user := 15.0
	previous := 1.1
	for _, candidate := range []float64{5, 12, 17, 21, 28, 40} {
		fit := computeTimeFit(candidate, user)
		assert.Less(t, fit, previous, "time fit must decrease as required hours grow (candidate=%v)", candidate)
		previous = fit
	}
}

func TestComputeTimeFit_UnderCapacityScoresHighest(t *testing.T) {
	assert.Equal(t, 1.0, computeTimeFit(5, 15))
	assert.Equal(t, neutralScore, computeTimeFit(0, 15))
}

func TestComputeRiskFit(t *testing.T) {
	// Exact match beats spare appetite beats insufficient appetite.
	exact := computeRiskFit(types.LevelMedium, types.LevelMedium)
	spare := computeRiskFit(types.LevelLow, types.LevelHigh)
	short := computeRiskFit(types.LevelHigh, types.LevelMedium)
	veryShort := computeRiskFit(types.LevelHigh, types.LevelLow)

	assert.Greater(t, exact, spare)
	assert.Greater(t, spare, short)
	assert.Greater(t, short, veryShort)
}

func TestComputeIncomeFit(t *testing.T) {
	goal := 2000.0

	assert.Equal(t, 1.0, computeIncomeFit(3500, goal))
	assert.Equal(t, 0.9, computeIncomeFit(2000, goal))
	assert.Equal(t, 0.5, computeIncomeFit(1000, goal))
	assert.Equal(t, 0.15, computeIncomeFit(100, goal))
	assert.Equal(t, neutralScore, computeIncomeFit(1000, 0))
}

func TestComputeQuality_Bounded(t *testing.T) {
	long := make([]byte, 5000)
	for i := range long {
		long[i] = 'a'
	}

	assert.Equal(t, 0.0, computeQuality(""))
	assert.Equal(t, 1.0, computeQuality(string(long)))
	assert.Less(t, computeQuality("short description"), 0.1)
}

func TestComputePopularity_Clamped(t *testing.T) {
	assert.Equal(t, 0.5, computePopularity(50))
	assert.Equal(t, 0.0, computePopularity(-3))
	assert.Equal(t, 1.0, computePopularity(250))
}
