package costs

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// ExtraEmergencyBuffer is the registry identifier of EmergencyBuffer.
const ExtraEmergencyBuffer = "emergency_buffer"

// DefaultExtras is the allow-list resolved when configuration names none.
var DefaultExtras = []string{ExtraEmergencyBuffer}

// ExtraSettings carries the configuration extra component factories may read.
type ExtraSettings struct {
	EmergencyBufferPercent float64
}

// Factory builds an extra component. A returned error drops the component.
type Factory func(settings ExtraSettings) (Component, error)

type registryEntry struct {
	id      string
	factory Factory
}

// Registry maps stable identifiers to extra component factories.
// Registration order is kept for listing.
type Registry struct {
	entries []registryEntry
	index   map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

// DefaultRegistry returns a registry holding the built-in extras.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(ExtraEmergencyBuffer, func(s ExtraSettings) (Component, error) {
		return NewEmergencyBuffer(s.EmergencyBufferPercent)
	})
	return r
}

// Register adds a factory. Registering an existing id replaces its factory.
func (r *Registry) Register(id string, factory Factory) {
	if i, ok := r.index[id]; ok {
		r.entries[i].factory = factory
		return
	}
	r.index[id] = len(r.entries)
	r.entries = append(r.entries, registryEntry{id: id, factory: factory})
}

// Get returns the factory for id.
func (r *Registry) Get(id string) (Factory, bool) {
	i, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return r.entries[i].factory, true
}

// IDs returns the registered identifiers in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		ids = append(ids, e.id)
	}
	return ids
}

// Resolve builds the components named in ids, in the order given.
// Unknown ids, failing factories and repeated ids are skipped silently.
func (r *Registry) Resolve(ids []string, settings ExtraSettings) []Component {
	components := make([]Component, 0, len(ids))
	seen := make(map[string]bool, len(ids))

	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		factory, ok := r.Get(id)
		if !ok {
			log.Debug().Str("component", id).Msg("costs: extra component not registered, skipping")
			continue
		}
		c, err := safeBuild(factory, settings)
		if err != nil || c == nil {
			log.Debug().Err(err).Str("component", id).Msg("costs: extra component failed to build, skipping")
			continue
		}
		components = append(components, c)
	}
	return components
}

// safeBuild runs a factory and turns a panic into an error.
func safeBuild(factory Factory, settings ExtraSettings) (c Component, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			c = nil
			err = fmt.Errorf("factory panicked: %v", rec)
		}
	}()
	return factory(settings)
}
