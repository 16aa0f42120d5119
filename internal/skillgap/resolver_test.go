package skillgap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/opportunity-scout/internal/config"
)

func newTestResolver() *Resolver {
	return NewResolver(config.Default().SkillGap)
}

func TestResolveNoMissingSkills(t *testing.T) {
	r := newTestResolver()
	assert.Nil(t, r.Resolve(nil))
	assert.Nil(t, r.Resolve([]string{}))
}

func TestResolveKnownSkill(t *testing.T) {
	r := newTestResolver()

	gap := r.Resolve([]string{"react"})
	require.NotNil(t, gap)

	assert.Equal(t, TierIntermediate, gap.DifficultyTier)
	assert.Equal(t, 80, gap.TotalHours)
	require.Len(t, gap.Resources, 2)
	for _, res := range gap.Resources {
		assert.Equal(t, "react", res.Skill)
		assert.NotEmpty(t, res.Title)
	}
}

func TestResolveSubstringMatch(t *testing.T) {
	r := newTestResolver()

	gap := r.Resolve([]string{"React Native"})
	require.NotNil(t, gap)
	assert.Equal(t, 80, gap.TotalHours)
	assert.Equal(t, "React Native", gap.Resources[0].Skill)
}

func TestResolveUnknownSkillGetsPlaceholder(t *testing.T) {
	r := newTestResolver()

	gap := r.Resolve([]string{"underwater basket weaving"})
	require.NotNil(t, gap)
	require.Len(t, gap.Resources, 1)

	assert.Contains(t, gap.Resources[0].Title, "underwater basket weaving")
	assert.Equal(t, genericLearnHours, gap.TotalHours)
	assert.Equal(t, TierIntermediate, gap.DifficultyTier)
}

func TestResolveHighestTierWins(t *testing.T) {
	r := newTestResolver()

	gap := r.Resolve([]string{"seo", "machine learning"})
	require.NotNil(t, gap)
	assert.Equal(t, TierAdvanced, gap.DifficultyTier)
	assert.Equal(t, 240, gap.TotalHours)
}

func TestResolvePerCandidateCap(t *testing.T) {
	r := newTestResolver()

	gap := r.Resolve([]string{"javascript", "react", "python", "seo", "writing"})
	require.NotNil(t, gap)
	assert.LessOrEqual(t, len(gap.Resources), 6)
}

func TestResolvePerSkillCap(t *testing.T) {
	r := NewResolver(config.SkillGap{MaxResourcesPerSkill: 1, MaxResourcesPerCandidate: 6})

	gap := r.Resolve([]string{"javascript"})
	require.NotNil(t, gap)
	assert.Len(t, gap.Resources, 1)
}

func TestResolveSkipsBlankSkills(t *testing.T) {
	r := newTestResolver()

	gap := r.Resolve([]string{"  ", "seo"})
	require.NotNil(t, gap)
	assert.Equal(t, 40, gap.TotalHours)
}
