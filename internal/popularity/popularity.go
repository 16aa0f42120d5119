// Package popularity supplies engagement signals for scored opportunities.
package popularity

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NeutralScore is reported when no engagement data exists for an opportunity.
const NeutralScore = 50

// EngagementSource resolves a 0-100 engagement score for one opportunity id.
type EngagementSource interface {
	Score(ctx context.Context, opportunityID string) int
}

// StaticSource serves scores from a fixed map with a neutral default.
type StaticSource struct {
	scores map[string]int
}

// NewStaticSource creates a StaticSource. A nil map means every opportunity
// is neutral.
func NewStaticSource(scores map[string]int) *StaticSource {
	normalized := make(map[string]int, len(scores))
	for id, score := range scores {
		normalized[strings.ToLower(id)] = clamp(score)
	}
	return &StaticSource{scores: normalized}
}

// Score returns the configured engagement score for an opportunity id.
func (s *StaticSource) Score(_ context.Context, opportunityID string) int {
	if score, ok := s.scores[strings.ToLower(opportunityID)]; ok {
		return score
	}
	return NeutralScore
}

// PGSource reads engagement scores from the opportunity_engagement table.
// Lookup failures degrade to the neutral score so discovery never depends on
// the database being up.
type PGSource struct {
	pool *pgxpool.Pool
}

// ConnectPG establishes a connection pool to the engagement database.
func ConnectPG(ctx context.Context, databaseURL string) (*PGSource, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PGSource{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PGSource) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Score returns the stored engagement score for an opportunity id, or the
// neutral score when the id is unknown or the query fails.
func (s *PGSource) Score(ctx context.Context, opportunityID string) int {
	var score int
	err := s.pool.QueryRow(ctx,
		`SELECT engagement_score FROM opportunity_engagement WHERE opportunity_id = $1`,
		strings.ToLower(opportunityID),
	).Scan(&score)
	if err != nil {
		if err != pgx.ErrNoRows {
			log.Printf("[popularity] lookup failed for %s: %v", opportunityID, err)
		}
		return NeutralScore
	}
	return clamp(score)
}

// RecordEngagement upserts an engagement score for an opportunity id.
func (s *PGSource) RecordEngagement(ctx context.Context, opportunityID string, score int) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO opportunity_engagement (opportunity_id, engagement_score)
		 VALUES ($1, $2)
		 ON CONFLICT (opportunity_id) DO UPDATE SET engagement_score = $2, updated_at = NOW()`,
		strings.ToLower(opportunityID), clamp(score),
	)
	if err != nil {
		return fmt.Errorf("failed to record engagement for %s: %w", opportunityID, err)
	}
	return nil
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
