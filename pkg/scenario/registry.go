// Package scenario tracks which response variant is active per endpoint and
// the global artificial response delay. The registry is the operator-facing
// mutable state behind the control API; every mock request reads it.
package scenario

import (
	"errors"
	"sync"
	"time"

	"github.com/extramock/extramock/pkg/catalog"
)

// Delay bounds in milliseconds. SetDelay clamps silently.
const (
	MinDelayMs = 0
	MaxDelayMs = 10000
)

// Registry errors.
var (
	ErrUnknownEndpoint = errors.New("unknown endpoint")
	ErrUnknownVariant  = errors.New("unknown response variant")
)

// Registry holds the active variant selection per endpoint and the global
// delay. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	catalog *catalog.Catalog
	active  map[catalog.EndpointID]string
	delay   time.Duration
}

// New creates a Registry with every endpoint set to its default variant and
// the given initial delay (clamped).
func New(cat *catalog.Catalog, delayMs int) *Registry {
	active := make(map[catalog.EndpointID]string)
	for _, ep := range cat.Endpoints() {
		d, _ := cat.Default(ep)
		active[ep] = d.Name
	}
	return &Registry{
		catalog: cat,
		active:  active,
		delay:   clamp(delayMs),
	}
}

// Active returns the active variant name for an endpoint. Endpoints the
// registry has never seen fall back to the catalog default.
func (r *Registry) Active(id catalog.EndpointID) string {
	r.mu.RLock()
	name, ok := r.active[id]
	r.mu.RUnlock()
	if ok {
		return name
	}
	if d, found := r.catalog.Default(id); found {
		return d.Name
	}
	return ""
}

// IsForced reports whether the endpoint's active variant is a forced
// (non-default) variant, and returns it when so.
func (r *Registry) IsForced(id catalog.EndpointID) (*catalog.Variant, bool) {
	name := r.Active(id)
	v, ok := r.catalog.Variant(id, name)
	if !ok || v.Default {
		return nil, false
	}
	return v, true
}

// SetActive selects the active variant for an endpoint. The change is
// visible to all subsequent requests immediately.
func (r *Registry) SetActive(id catalog.EndpointID, name string) error {
	if _, ok := r.catalog.Descriptor(id); !ok {
		return ErrUnknownEndpoint
	}
	if _, ok := r.catalog.Variant(id, name); !ok {
		return ErrUnknownVariant
	}

	r.mu.Lock()
	r.active[id] = name
	r.mu.Unlock()
	return nil
}

// Reset restores every endpoint to its default variant.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ep := range r.catalog.Endpoints() {
		d, _ := r.catalog.Default(ep)
		r.active[ep] = d.Name
	}
}

// Delay returns the current artificial response delay.
func (r *Registry) Delay() time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.delay
}

// SetDelay sets the artificial response delay in milliseconds, clamping
// silently to [MinDelayMs, MaxDelayMs]. There is no error path.
func (r *Registry) SetDelay(ms int) {
	d := clamp(ms)
	r.mu.Lock()
	r.delay = d
	r.mu.Unlock()
}

// Snapshot returns the active variant per endpoint, in catalog order, for
// the control API.
func (r *Registry) Snapshot() map[catalog.EndpointID]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[catalog.EndpointID]string, len(r.active))
	for ep, name := range r.active {
		out[ep] = name
	}
	return out
}

func clamp(ms int) time.Duration {
	if ms < MinDelayMs {
		ms = MinDelayMs
	}
	if ms > MaxDelayMs {
		ms = MaxDelayMs
	}
	return time.Duration(ms) * time.Millisecond
}
