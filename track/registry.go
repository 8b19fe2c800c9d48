package track

import (
	"log"

	"github.com/lixenwraith/vi-racer/parameter"
)

// Registry is an ordered set of maps keyed by id
type Registry struct {
	order []string
	maps  map[string]*Map
	def   string
}

// NewRegistry returns the built-in circuits with gp1 as the fallback
func NewRegistry() *Registry {
	r := &Registry{maps: make(map[string]*Map), def: parameter.DefaultMapID}
	for _, m := range []*Map{GP1(), Oval(), Sprint()} {
		r.Register(m)
	}
	return r
}

// Register adds or replaces a map, replacing keeps the original position
func (r *Registry) Register(m *Map) {
	if _, ok := r.maps[m.ID]; !ok {
		r.order = append(r.order, m.ID)
	}
	r.maps[m.ID] = m
}

// Get returns the map for id
func (r *Registry) Get(id string) (*Map, bool) {
	m, ok := r.maps[id]
	return m, ok
}

// Lookup returns the map for id, falling back to the default map
func (r *Registry) Lookup(id string) *Map {
	if m, ok := r.maps[id]; ok {
		return m
	}
	log.Printf("track: unknown map %q, using %q", id, r.def)
	return r.maps[r.def]
}

// Default returns the fallback map
func (r *Registry) Default() *Map {
	return r.maps[r.def]
}

// All returns maps in registration order
func (r *Registry) All() []*Map {
	out := make([]*Map, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.maps[id])
	}
	return out
}

// Next returns the map registered after id, wrapping around
func (r *Registry) Next(id string) *Map {
	for i, cur := range r.order {
		if cur == id {
			return r.maps[r.order[(i+1)%len(r.order)]]
		}
	}
	return r.Default()
}
