package popularity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticSourceKnown(t *testing.T) {
	s := NewStaticSource(map[string]int{"upcraft-1a2b3c4d5e6f": 85, "gigboard-0f0f0f0f0f0f": 30})

	assert.Equal(t, 85, s.Score(context.Background(), "upcraft-1a2b3c4d5e6f"))
	assert.Equal(t, 30, s.Score(context.Background(), "gigboard-0f0f0f0f0f0f"))
}

func TestStaticSourceUnknownIsNeutral(t *testing.T) {
	s := NewStaticSource(nil)
	assert.Equal(t, NeutralScore, s.Score(context.Background(), "nowhere-000000000000"))
}

func TestStaticSourceCaseInsensitive(t *testing.T) {
	s := NewStaticSource(map[string]int{"Upcraft-1a2b3c4d5e6f": 85})
	assert.Equal(t, 85, s.Score(context.Background(), "UPCRAFT-1A2B3C4D5E6F"))
}

func TestStaticSourceClampsScores(t *testing.T) {
	s := NewStaticSource(map[string]int{"hot-111111111111": 300, "cold-222222222222": -5})

	assert.Equal(t, 100, s.Score(context.Background(), "hot-111111111111"))
	assert.Equal(t, 0, s.Score(context.Background(), "cold-222222222222"))
}
