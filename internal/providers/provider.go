// Package providers defines the opportunity-source plugin contract, the
// registry of enabled sources, and the built-in adapters.
package providers

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonathan/opportunity-scout/internal/types"
)

// Provider is the single extension point of the discovery engine. Fetch
// never returns an error: on internal failure an adapter logs with source
// attribution and returns an empty list, so one broken source degrades
// coverage, never availability. Adapters must not retain references to the
// opportunities they return.
type Provider interface {
	// Source returns the stable source identifier used for opportunity-id
	// namespacing and metrics attribution.
	Source() string
	// Fetch returns candidate opportunities for the given profile.
	Fetch(ctx context.Context, input *types.DiscoveryInput) []types.RawOpportunity
}

// Registry holds registered providers and their enabled state.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]*registryEntry
}

type registryEntry struct {
	provider Provider
	enabled  bool
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*registryEntry)}
}

// Register adds a provider, enabled by default. Registering a duplicate
// source identifier is a programming error.
func (r *Registry) Register(p Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	source := p.Source()
	if _, exists := r.entries[source]; exists {
		return fmt.Errorf("provider %q already registered", source)
	}
	r.entries[source] = &registryEntry{provider: p, enabled: true}
	r.order = append(r.order, source)
	return nil
}

// SetEnabled flips a provider's enabled state. Unknown sources are reported.
func (r *Registry) SetEnabled(source string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[source]
	if !ok {
		return fmt.Errorf("unknown provider %q", source)
	}
	entry.enabled = enabled
	return nil
}

// Enabled returns the enabled providers in registration order.
func (r *Registry) Enabled() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Provider, 0, len(r.order))
	for _, source := range r.order {
		if entry := r.entries[source]; entry.enabled {
			out = append(out, entry.provider)
		}
	}
	return out
}

// Sources returns all registered source identifiers in registration order,
// with their enabled state.
func (r *Registry) Sources() map[string]bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]bool, len(r.entries))
	for source, entry := range r.entries {
		out[source] = entry.enabled
	}
	return out
}

// Order returns registered source identifiers in registration order.
func (r *Registry) Order() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
