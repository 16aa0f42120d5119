package providers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/opportunity-scout/internal/config"
	"github.com/jonathan/opportunity-scout/internal/types"
)

// OpportunityID derives a stable engine-assigned identifier, namespaced by
// source so identical titles from different providers never collide. The
// same (source, title) pair always yields the same id.
func OpportunityID(source, title string) string {
	id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(source+"/"+title))
	return fmt.Sprintf("%s-%s", source, id.String()[:12])
}

// withRetry runs fn with a bounded per-attempt timeout and a small bounded
// retry count using exponential backoff. When retries exhaust, the last
// error is returned; callers degrade to an empty result rather than
// propagating it.
func withRetry(ctx context.Context, source string, cfg config.Providers, fn func(ctx context.Context) error) error {
	backoff := cfg.Backoff
	if backoff <= 0 {
		backoff = 500 * time.Millisecond
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			log.Printf("[provider:%s] attempt %d failed: %v, retrying in %s", source, attempt, lastErr, backoff)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
			backoff *= 2
		}

		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		lastErr = fn(attemptCtx)
		cancel()
		if lastErr == nil {
			return nil
		}
	}
	return lastErr
}

// EscalateBarrier bumps an entry barrier one level up, capped at high.
// Catalog adapters apply it to generic fallback listings, where the skill
// has no curated path into the opportunity.
func EscalateBarrier(level types.Level) types.Level {
	switch level {
	case types.LevelLow:
		return types.LevelMedium
	default:
		return types.LevelHigh
	}
}
