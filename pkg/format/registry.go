package format

import (
	"fmt"
	"sort"
	"sync"
)

// DefaultID names the bundle returned when a lookup misses.
const DefaultID = "wellbound"

// Registry stores bundles by ID. Unknown IDs resolve to the designated
// default bundle; silent fallback is the documented policy, so Resolve
// never fails. Callers that need strictness should check Has first.
type Registry struct {
	mu        sync.RWMutex
	bundles   map[string]Bundle
	defaultID string
}

// NewRegistry creates an empty registry whose fallback bundle is
// DefaultID. The fallback can be repointed with SetDefault.
func NewRegistry() *Registry {
	return &Registry{
		bundles:   make(map[string]Bundle),
		defaultID: DefaultID,
	}
}

// Register adds a bundle by its ID. Duplicate IDs return an error.
func (r *Registry) Register(bundle Bundle) error {
	if bundle.ID == "" {
		return fmt.Errorf("format: bundle ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bundles[bundle.ID]; exists {
		return fmt.Errorf("format: bundle %q already registered", bundle.ID)
	}

	r.bundles[bundle.ID] = bundle.clone()
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(bundle Bundle) {
	if err := r.Register(bundle); err != nil {
		panic(err)
	}
}

// SetDefault repoints the fallback bundle. The ID does not need to be
// registered yet; Resolve falls through to a zero Bundle only if the
// default itself is missing at lookup time.
func (r *Registry) SetDefault(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id != "" {
		r.defaultID = id
	}
}

// Resolve returns the bundle for id, or the default bundle when id is
// empty or unknown. It never returns an error.
func (r *Registry) Resolve(id string) Bundle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if bundle, ok := r.bundles[id]; ok {
		return bundle.clone()
	}
	return r.bundles[r.defaultID].clone()
}

// Has reports whether a bundle is registered under id.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.bundles[id]
	return ok
}

// List returns the sorted bundle IDs.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.bundles))
	for id := range r.bundles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
