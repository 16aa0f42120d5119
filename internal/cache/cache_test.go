package cache

import (
	"context"
	"testing"
	"time"

	"github.com/jonathan/opportunity-scout/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey_CanonicalForm(t *testing.T) {
	a := &types.DiscoveryInput{
		Skills:           []string{"Writing", "javascript "},
		TimeAvailability: "10-20 Hours/Week",
		RiskAppetite:     types.LevelMedium,
		WorkPreference:   "Remote",
	}
	b := &types.DiscoveryInput{
		Skills:           []string{"javascript", "writing"},
		TimeAvailability: "10-20 hours/week",
		RiskAppetite:     types.LevelMedium,
		WorkPreference:   "remote",
	}

	assert.Equal(t, Key(a), Key(b), "order, case, and whitespace must not change the key")
	assert.Equal(t, "javascript,writing|10-20 hours/week|medium|remote", Key(b))
}

func TestKey_DistinguishesBands(t *testing.T) {
	base := &types.DiscoveryInput{
		Skills:           []string{"writing"},
		TimeAvailability: "10 hours/week",
		RiskAppetite:     types.LevelLow,
		WorkPreference:   "remote",
	}
	other := *base
	other.RiskAppetite = types.LevelHigh

	assert.NotEqual(t, Key(base), Key(&other))
}

func TestSkillKey(t *testing.T) {
	assert.Equal(t, "go,writing", SkillKey([]string{"Writing", "go"}))
	assert.Equal(t, SkillKey([]string{"a", "b"}), SkillKey([]string{"b", "a", ""}))
}

func TestMemo_GetSetExpiry(t *testing.T) {
	memo := NewMemo[[]string](time.Minute)
	now := time.Now()
	memo.now = func() time.Time { return now }

	_, ok := memo.Get("k")
	assert.False(t, ok)

	memo.Set("k", []string{"v"})
	got, ok := memo.Get("k")
	require.True(t, ok)
	assert.Equal(t, []string{"v"}, got)

	now = now.Add(2 * time.Minute)
	_, ok = memo.Get("k")
	assert.False(t, ok, "entries past TTL must read as misses")
}

func testResult(id string) *types.DiscoveryResult {
	return &types.DiscoveryResult{RequestID: id, GeneratedAt: time.Now()}
}

func TestMemoryStore_HitWithinTTL(t *testing.T) {
	store := NewMemoryStore(MemoryConfig{TTL: time.Hour, Retention: 24 * time.Hour})
	ctx := context.Background()

	_, ok := store.Get(ctx, "key")
	assert.False(t, ok)

	want := testResult("req-1")
	store.Set(ctx, "key", want)

	got, ok := store.Get(ctx, "key")
	require.True(t, ok)
	assert.Same(t, want, got, "a hit returns the same immutable value")
}

func TestMemoryStore_MissAfterTTL(t *testing.T) {
	store := NewMemoryStore(MemoryConfig{TTL: time.Hour, Retention: 24 * time.Hour})
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	store.Set(ctx, "key", testResult("req-1"))

	now = now.Add(2 * time.Hour)
	_, ok := store.Get(ctx, "key")
	assert.False(t, ok)
}

func TestMemoryStore_SweepHonorsRetention(t *testing.T) {
	store := NewMemoryStore(MemoryConfig{TTL: time.Hour, Retention: 24 * time.Hour})
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	store.Set(ctx, "old", testResult("req-old"))
	now = now.Add(25 * time.Hour)
	store.Set(ctx, "fresh", testResult("req-fresh"))

	removed := store.Sweep()

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len(), "stale-but-retained entries stay until the sweep ages them out")
	_, ok := store.Get(ctx, "fresh")
	assert.True(t, ok)
}

func TestMemoryStore_LastWriterWins(t *testing.T) {
	store := NewMemoryStore(DefaultMemoryConfig())
	ctx := context.Background()

	store.Set(ctx, "key", testResult("first"))
	second := testResult("second")
	store.Set(ctx, "key", second)

	got, ok := store.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, "second", got.RequestID)
	assert.Same(t, second, got)
}

func TestMemoryStore_SweeperLifecycle(t *testing.T) {
	store := NewMemoryStore(MemoryConfig{SweepSpec: "@every 1h"})

	require.NoError(t, store.StartSweeper())
	require.NoError(t, store.StartSweeper(), "starting twice is a no-op")
	store.StopSweeper()
}

func TestMemoryStore_BadSweepSpec(t *testing.T) {
	store := NewMemoryStore(MemoryConfig{SweepSpec: "not a cron spec"})
	assert.Error(t, store.StartSweeper())
}
