// Package aggregate fans a discovery request out to every enabled provider
// and flattens the results with per-provider failure isolation.
package aggregate

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/opportunity-scout/internal/providers"
	"github.com/jonathan/opportunity-scout/internal/types"
)

// Result is the flattened output of one fan-out.
type Result struct {
	Opportunities   []types.RawOpportunity
	SourcesSearched int            // Providers attempted, including those that produced nothing
	PerSource       map[string]int // Candidate count per source
}

// Fetch invokes every provider concurrently and waits for the full settled
// set. Providers honor the no-error contract themselves; a panicking
// provider is additionally recovered here and attributed in the logs, so a
// broken source reduces coverage but never aborts the batch. Arrival order
// is not preserved: results are flattened in provider registration order
// once everything has settled, and downstream ranking is order-independent.
func Fetch(ctx context.Context, sources []providers.Provider, input *types.DiscoveryInput) Result {
	results := make([][]types.RawOpportunity, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, p := range sources {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[aggregate] provider %s panicked: %v, dropping its results", p.Source(), r)
					results[i] = nil
				}
			}()
			results[i] = p.Fetch(ctx, input)
			return nil
		})
	}
	// Group tasks never return errors; Wait is purely a join.
	_ = g.Wait()

	out := Result{
		SourcesSearched: len(sources),
		PerSource:       make(map[string]int, len(sources)),
	}
	for i, p := range sources {
		out.PerSource[p.Source()] = len(results[i])
		out.Opportunities = append(out.Opportunities, results[i]...)
	}
	return out
}
