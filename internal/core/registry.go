package core

import (
	"fmt"
)

// SpeciesHeader is the mandatory primary-name column.
const SpeciesHeader = "species"

// Registry is an immutable, ordered set of column descriptors keyed by
// header identifier. Iteration follows construction order, which is also the
// attribute order of built records.
type Registry struct {
	name  string
	order []string
	byKey map[string]Descriptor
}

// NewRegistry builds a registry from descs.
// Returns an error if a header identifier is empty, normalizes differently,
// or is registered twice.
func NewRegistry(name string, descs ...Descriptor) (*Registry, error) {
	r := &Registry{
		name:  name,
		order: make([]string, 0, len(descs)),
		byKey: make(map[string]Descriptor, len(descs)),
	}

	for _, d := range descs {
		if d.Header == "" || NormalizeID(d.Header) != d.Header {
			return nil, fmt.Errorf("registry %s: invalid header identifier %q", name, d.Header)
		}
		if d.Parse == nil {
			return nil, fmt.Errorf("registry %s: header %q has no parser", name, d.Header)
		}
		if _, exists := r.byKey[d.Header]; exists {
			return nil, fmt.Errorf("registry %s: header already registered: %s", name, d.Header)
		}
		if d.Attribute == "" {
			d.Attribute = d.Header
		}
		r.order = append(r.order, d.Header)
		r.byKey[d.Header] = d
	}

	return r, nil
}

// MustRegistry is like NewRegistry but panics on error.
// Use it only for schemas defined in code.
func MustRegistry(name string, descs ...Descriptor) *Registry {
	r, err := NewRegistry(name, descs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Name returns the schema version name.
func (r *Registry) Name() string {
	return r.name
}

// Get returns the descriptor for a header identifier.
// Returns false if not found.
func (r *Registry) Get(header string) (Descriptor, bool) {
	d, ok := r.byKey[header]
	return d, ok
}

// Has reports whether header is recognized.
func (r *Registry) Has(header string) bool {
	_, ok := r.byKey[header]
	return ok
}

// All returns descriptors in registry order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.order))
	for i, key := range r.order {
		out[i] = r.byKey[key]
	}
	return out
}

// Headers returns recognized header identifiers in registry order.
func (r *Registry) Headers() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of descriptors.
func (r *Registry) Len() int {
	return len(r.order)
}
